package model

import "sitelabour/internal/abstraction"

type LabourTypeEntity struct {
	TypeName string `json:"type_name"`
	TeamId   int    `json:"team_id"`
	IsDelete bool   `json:"is_delete"`
}

// LabourTypeEntityModel ...
type LabourTypeEntityModel struct {
	ID int `json:"id" param:"id" form:"id" validate:"number,min=1" gorm:"primaryKey;autoIncrement;"`

	// entity
	LabourTypeEntity

	abstraction.Entity

	Team LabourTeamEntityModel `json:"team" gorm:"foreignKey:TeamId"`

	// context
	Context *abstraction.Context `json:"-" gorm:"-"`
}

// TableName ...
func (LabourTypeEntityModel) TableName() string {
	return "labour_types"
}

type LabourTypeCountDataModel struct {
	Count int `json:"count"`
}
