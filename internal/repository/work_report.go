package repository

import (
	"sitelabour/internal/abstraction"
	"sitelabour/internal/model"
	"sitelabour/pkg/util/general"

	"gorm.io/gorm"
)

type WorkReport interface {
	FindById(ctx *abstraction.Context, id int) (*model.WorkReportEntityModel, error)
	Find(ctx *abstraction.Context, no_paging bool) (data []*model.WorkReportEntityModel, err error)
	Count(ctx *abstraction.Context) (data *int, err error)
	Create(ctx *abstraction.Context, data *model.WorkReportEntityModel) *gorm.DB
	CreateAllotment(ctx *abstraction.Context, data *model.WorkAllotmentEntityModel) *gorm.DB
	CreateLabourBatch(ctx *abstraction.Context, data []*model.WorkReportLabourEntityModel) *gorm.DB
}

type workReport struct {
	abstraction.Repository
}

func NewWorkReport(db *gorm.DB) *workReport {
	return &workReport{
		Repository: abstraction.Repository{
			Db: db,
		},
	}
}

func (r *workReport) FindById(ctx *abstraction.Context, id int) (*model.WorkReportEntityModel, error) {
	conn := r.CheckTrx(ctx)

	var data model.WorkReportEntityModel
	err := conn.
		Where("id = ?", id).
		Preload("Project").
		Preload("Allotments").
		Preload("Allotments.Labours").
		Preload("Allotments.Labours.Team").
		Preload("Allotments.Labours.LabourType").
		First(&data).
		Error
	if err != nil {
		return nil, err
	}
	return &data, nil
}

func (r *workReport) Find(ctx *abstraction.Context, no_paging bool) (data []*model.WorkReportEntityModel, err error) {
	where, whereParam := general.ProcessWhereParam(ctx, "work_report", "")
	limit, offset := general.ProcessLimitOffset(ctx, no_paging)
	err = r.CheckTrx(ctx).
		Where(where, whereParam).
		Order("date DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Preload("Project").
		Preload("Allotments").
		Preload("Allotments.Labours").
		Find(&data).
		Error
	return
}

func (r *workReport) Count(ctx *abstraction.Context) (data *int, err error) {
	where, whereParam := general.ProcessWhereParam(ctx, "work_report", "")
	var count model.WorkReportCountDataModel
	err = r.CheckTrx(ctx).
		Table("work_reports").
		Select("COUNT(*) AS count").
		Where(where, whereParam).
		Find(&count).
		Error
	data = &count.Count
	return
}

func (r *workReport) Create(ctx *abstraction.Context, data *model.WorkReportEntityModel) *gorm.DB {
	return r.CheckTrx(ctx).Create(data)
}

func (r *workReport) CreateAllotment(ctx *abstraction.Context, data *model.WorkAllotmentEntityModel) *gorm.DB {
	return r.CheckTrx(ctx).Create(data)
}

func (r *workReport) CreateLabourBatch(ctx *abstraction.Context, data []*model.WorkReportLabourEntityModel) *gorm.DB {
	return r.CheckTrx(ctx).Create(data)
}
