package model

import "sitelabour/internal/abstraction"

type AttendanceEntity struct {
	ProjectId    int    `json:"project_id"`
	Date         string `json:"date" gorm:"type:date"`
	TeamId       int    `json:"team_id"`
	LabourTypeId int    `json:"labour_type_id"`
	Count        int    `json:"count"`
}

// AttendanceEntityModel is one attendance row. The row set for a
// (project, date) pair is always replaced whole on save.
type AttendanceEntityModel struct {
	ID int `json:"id" param:"id" form:"id" validate:"number,min=1" gorm:"primaryKey;autoIncrement;"`

	// entity
	AttendanceEntity

	abstraction.EntityWithBy

	Team       LabourTeamEntityModel `json:"team" gorm:"foreignKey:TeamId"`
	LabourType LabourTypeEntityModel `json:"labour_type" gorm:"foreignKey:LabourTypeId"`

	// context
	Context *abstraction.Context `json:"-" gorm:"-"`
}

// TableName ...
func (AttendanceEntityModel) TableName() string {
	return "attendance"
}

type AttendanceCountDataModel struct {
	Count int `json:"count"`
}
