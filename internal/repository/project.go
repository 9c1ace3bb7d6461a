package repository

import (
	"sitelabour/internal/abstraction"
	"sitelabour/internal/model"
	"sitelabour/pkg/util/general"

	"gorm.io/gorm"
)

type Project interface {
	FindById(ctx *abstraction.Context, id int) (*model.ProjectEntityModel, error)
	Find(ctx *abstraction.Context, no_paging bool) (data []*model.ProjectEntityModel, err error)
	FindAllActive(ctx *abstraction.Context) (data []*model.ProjectEntityModel, err error)
	FindByIds(ctx *abstraction.Context, ids []int) (data []*model.ProjectEntityModel, err error)
	Count(ctx *abstraction.Context) (data *int, err error)
	Create(ctx *abstraction.Context, data *model.ProjectEntityModel) *gorm.DB
	Update(ctx *abstraction.Context, data *model.ProjectEntityModel) *gorm.DB
}

type project struct {
	abstraction.Repository
}

func NewProject(db *gorm.DB) *project {
	return &project{
		Repository: abstraction.Repository{
			Db: db,
		},
	}
}

func (r *project) FindById(ctx *abstraction.Context, id int) (*model.ProjectEntityModel, error) {
	conn := r.CheckTrx(ctx)

	var data model.ProjectEntityModel
	err := conn.
		Where("id = ? AND is_delete = ?", id, false).
		First(&data).
		Error
	if err != nil {
		return nil, err
	}
	return &data, nil
}

// Find orders by name: list screens render the admin tabs alphabetically.
func (r *project) Find(ctx *abstraction.Context, no_paging bool) (data []*model.ProjectEntityModel, err error) {
	where, whereParam := general.ProcessWhereParam(ctx, "project", "is_delete = @false")
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

func (r *project) FindAllActive(ctx *abstraction.Context) (data []*model.ProjectEntityModel, err error) {
	err = r.CheckTrx(ctx).
		Where("is_delete = ?", false).
		Order("name ASC").
		Find(&data).
		Error
	return
}

func (r *project) FindByIds(ctx *abstraction.Context, ids []int) (data []*model.ProjectEntityModel, err error) {
	err = r.CheckTrx(ctx).
		Where("id IN ? AND is_delete = ?", ids, false).
		Order("name ASC").
		Find(&data).
		Error
	return
}

func (r *project) Count(ctx *abstraction.Context) (data *int, err error) {
	where, whereParam := general.ProcessWhereParam(ctx, "project", "is_delete = @false")
	var count model.ProjectCountDataModel
	err = r.CheckTrx(ctx).
		Table("projects").
		Select("COUNT(*) AS count").
		Where(where, whereParam).
		Find(&count).
		Error
	data = &count.Count
	return
}

func (r *project) Create(ctx *abstraction.Context, data *model.ProjectEntityModel) *gorm.DB {
	return r.CheckTrx(ctx).Create(data)
}

func (r *project) Update(ctx *abstraction.Context, data *model.ProjectEntityModel) *gorm.DB {
	return r.CheckTrx(ctx).Model(data).Where("id = ?", data.ID).Updates(data)
}
