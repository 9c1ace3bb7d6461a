package model

import "sitelabour/internal/abstraction"

type ProjectAssignmentEntity struct {
	UserId    int `json:"user_id"`
	ProjectId int `json:"project_id"`
}

// ProjectAssignmentEntityModel links engineers to the projects they may
// log attendance for.
type ProjectAssignmentEntityModel struct {
	ID int `json:"id" param:"id" form:"id" validate:"number,min=1" gorm:"primaryKey;autoIncrement;"`

	// entity
	ProjectAssignmentEntity

	abstraction.EntityJustCreated

	User    UserEntityModel    `json:"user" gorm:"foreignKey:UserId"`
	Project ProjectEntityModel `json:"project" gorm:"foreignKey:ProjectId"`

	// context
	Context *abstraction.Context `json:"-" gorm:"-"`
}

// TableName ...
func (ProjectAssignmentEntityModel) TableName() string {
	return "project_assignments"
}

type ProjectAssignmentCountDataModel struct {
	Count int `json:"count"`
}
