package repository

import (
	"sitelabour/internal/abstraction"
	"sitelabour/internal/model"
	"sitelabour/pkg/util/general"

	"gorm.io/gorm"
)

type ProjectAssignment interface {
	FindById(ctx *abstraction.Context, id int) (*model.ProjectAssignmentEntityModel, error)
	Find(ctx *abstraction.Context, no_paging bool) (data []*model.ProjectAssignmentEntityModel, err error)
	FindByUserId(ctx *abstraction.Context, userId int) (data []*model.ProjectAssignmentEntityModel, err error)
	FindByUserAndProject(ctx *abstraction.Context, userId, projectId int) (*model.ProjectAssignmentEntityModel, error)
	Count(ctx *abstraction.Context) (data *int, err error)
	Create(ctx *abstraction.Context, data *model.ProjectAssignmentEntityModel) *gorm.DB
	Delete(ctx *abstraction.Context, data *model.ProjectAssignmentEntityModel) *gorm.DB
}

type projectAssignment struct {
	abstraction.Repository
}

func NewProjectAssignment(db *gorm.DB) *projectAssignment {
	return &projectAssignment{
		Repository: abstraction.Repository{
			Db: db,
		},
	}
}

func (r *projectAssignment) FindById(ctx *abstraction.Context, id int) (*model.ProjectAssignmentEntityModel, error) {
	conn := r.CheckTrx(ctx)

	var data model.ProjectAssignmentEntityModel
	err := conn.
		Where("id = ?", id).
		Preload("User").
		Preload("Project").
		First(&data).
		Error
	if err != nil {
		return nil, err
	}
	return &data, nil
}

func (r *projectAssignment) Find(ctx *abstraction.Context, no_paging bool) (data []*model.ProjectAssignmentEntityModel, err error) {
	where, whereParam := general.ProcessWhereParam(ctx, "project_assignment", "")
	limit, offset := general.ProcessLimitOffset(ctx, no_paging)
	err = r.CheckTrx(ctx).
		Where(where, whereParam).
		Order("id ASC").
		Limit(limit).
		Offset(offset).
		Preload("User").
		Preload("Project").
		Find(&data).
		Error
	return
}

func (r *projectAssignment) FindByUserId(ctx *abstraction.Context, userId int) (data []*model.ProjectAssignmentEntityModel, err error) {
	err = r.CheckTrx(ctx).
		Where("user_id = ?", userId).
		Preload("Project").
		Find(&data).
		Error
	return
}

func (r *projectAssignment) FindByUserAndProject(ctx *abstraction.Context, userId, projectId int) (*model.ProjectAssignmentEntityModel, error) {
	conn := r.CheckTrx(ctx)

	var data model.ProjectAssignmentEntityModel
	err := conn.
		Where("user_id = ? AND project_id = ?", userId, projectId).
		First(&data).
		Error
	if err != nil {
		return nil, err
	}
	return &data, nil
}

func (r *projectAssignment) Count(ctx *abstraction.Context) (data *int, err error) {
	where, whereParam := general.ProcessWhereParam(ctx, "project_assignment", "")
	var count model.ProjectAssignmentCountDataModel
	err = r.CheckTrx(ctx).
		Table("project_assignments").
		Select("COUNT(*) AS count").
		Where(where, whereParam).
		Find(&count).
		Error
	data = &count.Count
	return
}

func (r *projectAssignment) Create(ctx *abstraction.Context, data *model.ProjectAssignmentEntityModel) *gorm.DB {
	return r.CheckTrx(ctx).Create(data)
}

// Delete removes the join row for real; there is nothing to soft-keep on a
// plain link table.
func (r *projectAssignment) Delete(ctx *abstraction.Context, data *model.ProjectAssignmentEntityModel) *gorm.DB {
	return r.CheckTrx(ctx).Where("id = ?", data.ID).Delete(&model.ProjectAssignmentEntityModel{})
}
