package repository

import (
	"sitelabour/internal/abstraction"
	"sitelabour/internal/model"
	"sitelabour/pkg/util/general"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type User interface {
	FindByEmail(ctx *abstraction.Context, email string) (*model.UserEntityModel, error)
	FindById(ctx *abstraction.Context, id int) (*model.UserEntityModel, error)
	Create(ctx *abstraction.Context, data *model.UserEntityModel) *gorm.DB
	Upsert(ctx *abstraction.Context, data *model.UserEntityModel) *gorm.DB
	Find(ctx *abstraction.Context, no_paging bool) (data []*model.UserEntityModel, err error)
	Count(ctx *abstraction.Context) (data *int, err error)
	Update(ctx *abstraction.Context, data *model.UserEntityModel) *gorm.DB
}

type user struct {
	abstraction.Repository
}

func NewUser(db *gorm.DB) *user {
	return &user{
		Repository: abstraction.Repository{
			Db: db,
		},
	}
}

func (r *user) FindByEmail(ctx *abstraction.Context, email string) (*model.UserEntityModel, error) {
	conn := r.CheckTrx(ctx)

	var data model.UserEntityModel
	err := conn.
		Where("LOWER(email) = LOWER(?) AND is_delete = ?", email, false).
		Preload("Role").
		First(&data).
		Error
	if err != nil {
		return nil, err
	}
	return &data, nil
}

func (r *user) FindById(ctx *abstraction.Context, id int) (*model.UserEntityModel, error) {
	conn := r.CheckTrx(ctx)

	var data model.UserEntityModel
	err := conn.
		Where("id = ? AND is_delete = ?", id, false).
		Preload("Role").
		First(&data).
		Error
	if err != nil {
		return nil, err
	}
	return &data, nil
}

func (r *user) Create(ctx *abstraction.Context, data *model.UserEntityModel) *gorm.DB {
	return r.CheckTrx(ctx).Create(data)
}

// Upsert keeps profile-row creation idempotent: registering twice with the
// same email updates the profile columns instead of failing on the unique key.
func (r *user) Upsert(ctx *abstraction.Context, data *model.UserEntityModel) *gorm.DB {
	return r.CheckTrx(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "role_id"}),
	}).Create(data)
}

func (r *user) Find(ctx *abstraction.Context, no_paging bool) (data []*model.UserEntityModel, err error) {
	where, whereParam := general.ProcessWhereParam(ctx, "user", "is_delete = @false")
	limit, offset := general.ProcessLimitOffset(ctx, no_paging)
	order := general.ProcessOrder(ctx)
	err = r.CheckTrx(ctx).
		Where(where, whereParam).
		Order(order).
		Limit(limit).
		Offset(offset).
		Preload("Role").
		Find(&data).
		Error
	return
}

func (r *user) Count(ctx *abstraction.Context) (data *int, err error) {
	where, whereParam := general.ProcessWhereParam(ctx, "user", "is_delete = @false")
	var count model.UserCountDataModel
	err = r.CheckTrx(ctx).
		Table("users").
		Select("COUNT(*) AS count").
		Where(where, whereParam).
		Find(&count).
		Error
	data = &count.Count
	return
}

func (r *user) Update(ctx *abstraction.Context, data *model.UserEntityModel) *gorm.DB {
	return r.CheckTrx(ctx).Model(data).Where("id = ?", data.ID).Updates(data)
}
