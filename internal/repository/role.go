package repository

import (
	"sitelabour/internal/abstraction"
	"sitelabour/internal/model"

	"gorm.io/gorm"
)

type Role interface {
	FindById(ctx *abstraction.Context, id int) (*model.RoleEntityModel, error)
	Find(ctx *abstraction.Context) (data []*model.RoleEntityModel, err error)
}

type role struct {
	abstraction.Repository
}

func NewRole(db *gorm.DB) *role {
	return &role{
		Repository: abstraction.Repository{
			Db: db,
		},
	}
}

func (r *role) FindById(ctx *abstraction.Context, id int) (*model.RoleEntityModel, error) {
	conn := r.CheckTrx(ctx)

	var data model.RoleEntityModel
	err := conn.
		Where("id = ? AND is_delete = ?", id, false).
		First(&data).
		Error
	if err != nil {
		return nil, err
	}
	return &data, nil
}

func (r *role) Find(ctx *abstraction.Context) (data []*model.RoleEntityModel, err error) {
	err = r.CheckTrx(ctx).
		Where("is_delete = ?", false).
		Order("id ASC").
		Find(&data).
		Error
	return
}
