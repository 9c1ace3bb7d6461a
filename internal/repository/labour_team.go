package repository

import (
	"sitelabour/internal/abstraction"
	"sitelabour/internal/model"
	"sitelabour/pkg/util/general"

	"gorm.io/gorm"
)

type LabourTeam interface {
	FindById(ctx *abstraction.Context, id int) (*model.LabourTeamEntityModel, error)
	Find(ctx *abstraction.Context, no_paging bool) (data []*model.LabourTeamEntityModel, err error)
	FindAllActive(ctx *abstraction.Context) (data []*model.LabourTeamEntityModel, err error)
	Count(ctx *abstraction.Context) (data *int, err error)
	Create(ctx *abstraction.Context, data *model.LabourTeamEntityModel) *gorm.DB
	Update(ctx *abstraction.Context, data *model.LabourTeamEntityModel) *gorm.DB
}

type labourTeam struct {
	abstraction.Repository
}

func NewLabourTeam(db *gorm.DB) *labourTeam {
	return &labourTeam{
		Repository: abstraction.Repository{
			Db: db,
		},
	}
}

func (r *labourTeam) FindById(ctx *abstraction.Context, id int) (*model.LabourTeamEntityModel, error) {
	conn := r.CheckTrx(ctx)

	var data model.LabourTeamEntityModel
	err := conn.
		Where("id = ? AND is_delete = ?", id, false).
		First(&data).
		Error
	if err != nil {
		return nil, err
	}
	return &data, nil
}

func (r *labourTeam) Find(ctx *abstraction.Context, no_paging bool) (data []*model.LabourTeamEntityModel, err error) {
	where, whereParam := general.ProcessWhereParam(ctx, "labour_team", "is_delete = @false")
	limit, offset := general.ProcessLimitOffset(ctx, no_paging)
	err = r.CheckTrx(ctx).
		Where(where, whereParam).
		Order("name ASC").
		Limit(limit).
		Offset(offset).
		Find(&data).
		Error
	return
}

func (r *labourTeam) FindAllActive(ctx *abstraction.Context) (data []*model.LabourTeamEntityModel, err error) {
	err = r.CheckTrx(ctx).
		Where("is_delete = ?", false).
		Order("name ASC").
		Find(&data).
		Error
	return
}

func (r *labourTeam) Count(ctx *abstraction.Context) (data *int, err error) {
	where, whereParam := general.ProcessWhereParam(ctx, "labour_team", "is_delete = @false")
	var count model.LabourTeamCountDataModel
	err = r.CheckTrx(ctx).
		Table("labour_teams").
		Select("COUNT(*) AS count").
		Where(where, whereParam).
		Find(&count).
		Error
	data = &count.Count
	return
}

func (r *labourTeam) Create(ctx *abstraction.Context, data *model.LabourTeamEntityModel) *gorm.DB {
	return r.CheckTrx(ctx).Create(data)
}

func (r *labourTeam) Update(ctx *abstraction.Context, data *model.LabourTeamEntityModel) *gorm.DB {
	return r.CheckTrx(ctx).Model(data).Where("id = ?", data.ID).Updates(data)
}
