package repository

import (
	"sitelabour/internal/abstraction"
	"sitelabour/internal/model"
	"sitelabour/pkg/util/general"

	"gorm.io/gorm"
)

type LabourType interface {
	FindById(ctx *abstraction.Context, id int) (*model.LabourTypeEntityModel, error)
	Find(ctx *abstraction.Context, no_paging bool) (data []*model.LabourTypeEntityModel, err error)
	FindByTeamId(ctx *abstraction.Context, teamId int) (data []*model.LabourTypeEntityModel, err error)
	FindAllActive(ctx *abstraction.Context) (data []*model.LabourTypeEntityModel, err error)
	Count(ctx *abstraction.Context) (data *int, err error)
	Create(ctx *abstraction.Context, data *model.LabourTypeEntityModel) *gorm.DB
	Update(ctx *abstraction.Context, data *model.LabourTypeEntityModel) *gorm.DB
}

type labourType struct {
	abstraction.Repository
}

func NewLabourType(db *gorm.DB) *labourType {
	return &labourType{
		Repository: abstraction.Repository{
			Db: db,
		},
	}
}

func (r *labourType) FindById(ctx *abstraction.Context, id int) (*model.LabourTypeEntityModel, error) {
	conn := r.CheckTrx(ctx)

	var data model.LabourTypeEntityModel
	err := conn.
		Where("id = ? AND is_delete = ?", id, false).
		Preload("Team").
		First(&data).
		Error
	if err != nil {
		return nil, err
	}
	return &data, nil
}

func (r *labourType) Find(ctx *abstraction.Context, no_paging bool) (data []*model.LabourTypeEntityModel, err error) {
	where, whereParam := general.ProcessWhereParam(ctx, "labour_type", "is_delete = @false")
	limit, offset := general.ProcessLimitOffset(ctx, no_paging)
	err = r.CheckTrx(ctx).
		Where(where, whereParam).
		Order("type_name ASC").
		Limit(limit).
		Offset(offset).
		Preload("Team").
		Find(&data).
		Error
	return
}

func (r *labourType) FindByTeamId(ctx *abstraction.Context, teamId int) (data []*model.LabourTypeEntityModel, err error) {
	err = r.CheckTrx(ctx).
		Where("team_id = ? AND is_delete = ?", teamId, false).
		Order("type_name ASC").
		Find(&data).
		Error
	return
}

func (r *labourType) FindAllActive(ctx *abstraction.Context) (data []*model.LabourTypeEntityModel, err error) {
	err = r.CheckTrx(ctx).
		Where("is_delete = ?", false).
		Order("team_id ASC, type_name ASC").
		Find(&data).
		Error
	return
}

func (r *labourType) Count(ctx *abstraction.Context) (data *int, err error) {
	where, whereParam := general.ProcessWhereParam(ctx, "labour_type", "is_delete = @false")
	var count model.LabourTypeCountDataModel
	err = r.CheckTrx(ctx).
		Table("labour_types").
		Select("COUNT(*) AS count").
		Where(where, whereParam).
		Find(&count).
		Error
	data = &count.Count
	return
}

func (r *labourType) Create(ctx *abstraction.Context, data *model.LabourTypeEntityModel) *gorm.DB {
	return r.CheckTrx(ctx).Create(data)
}

func (r *labourType) Update(ctx *abstraction.Context, data *model.LabourTypeEntityModel) *gorm.DB {
	return r.CheckTrx(ctx).Model(data).Where("id = ?", data.ID).Updates(data)
}
