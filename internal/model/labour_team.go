package model

import "sitelabour/internal/abstraction"

type LabourTeamEntity struct {
	Name     string `json:"name"`
	IsDelete bool   `json:"is_delete"`
}

// LabourTeamEntityModel ...
type LabourTeamEntityModel struct {
	ID int `json:"id" param:"id" form:"id" validate:"number,min=1" gorm:"primaryKey;autoIncrement;"`

	// entity
	LabourTeamEntity

	abstraction.Entity

	// context
	Context *abstraction.Context `json:"-" gorm:"-"`
}

// TableName ...
func (LabourTeamEntityModel) TableName() string {
	return "labour_teams"
}

type LabourTeamCountDataModel struct {
	Count int `json:"count"`
}
