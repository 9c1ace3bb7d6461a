package model

import "sitelabour/internal/abstraction"

type ProjectEntity struct {
	Name     string `json:"name"`
	IsDelete bool   `json:"is_delete"`
}

// ProjectEntityModel ...
type ProjectEntityModel struct {
	ID int `json:"id" param:"id" form:"id" validate:"number,min=1" gorm:"primaryKey;autoIncrement;"`

	// entity
	ProjectEntity

	abstraction.Entity

	// context
	Context *abstraction.Context `json:"-" gorm:"-"`
}

// TableName ...
func (ProjectEntityModel) TableName() string {
	return "projects"
}

type ProjectCountDataModel struct {
	Count int `json:"count"`
}
