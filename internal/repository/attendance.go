package repository

import (
	"sitelabour/internal/abstraction"
	"sitelabour/internal/model"

	"gorm.io/gorm"
)

type Attendance interface {
	FindByProjectAndDate(ctx *abstraction.Context, projectId int, date string) (data []*model.AttendanceEntityModel, err error)
	DeleteByProjectAndDate(ctx *abstraction.Context, projectId int, date string) *gorm.DB
	CreateBatch(ctx *abstraction.Context, data []*model.AttendanceEntityModel) *gorm.DB
}

type attendance struct {
	abstraction.Repository
}

func NewAttendance(db *gorm.DB) *attendance {
	return &attendance{
		Repository: abstraction.Repository{
			Db: db,
		},
	}
}

func (r *attendance) FindByProjectAndDate(ctx *abstraction.Context, projectId int, date string) (data []*model.AttendanceEntityModel, err error) {
	err = r.CheckTrx(ctx).
		Where("project_id = ? AND date = ?", projectId, date).
		Order("team_id ASC, labour_type_id ASC").
		Preload("Team").
		Preload("LabourType").
		Find(&data).
		Error
	return
}

// DeleteByProjectAndDate clears the whole row set for the key even when it
// is already empty; save is replace-not-merge.
func (r *attendance) DeleteByProjectAndDate(ctx *abstraction.Context, projectId int, date string) *gorm.DB {
	return r.CheckTrx(ctx).
		Where("project_id = ? AND date = ?", projectId, date).
		Delete(&model.AttendanceEntityModel{})
}

func (r *attendance) CreateBatch(ctx *abstraction.Context, data []*model.AttendanceEntityModel) *gorm.DB {
	return r.CheckTrx(ctx).Create(data)
}
