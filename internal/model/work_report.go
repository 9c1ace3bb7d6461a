package model

import "sitelabour/internal/abstraction"

type WorkReportEntity struct {
	ProjectId   int    `json:"project_id"`
	Date        string `json:"date" gorm:"type:date"`
	Description string `json:"description"`
}

// WorkReportEntityModel is the header of one submission. Allotments and
// their labour rows are created with it and never edited afterwards.
type WorkReportEntityModel struct {
	ID int `json:"id" param:"id" form:"id" validate:"number,min=1" gorm:"primaryKey;autoIncrement;"`

	// entity
	WorkReportEntity

	abstraction.EntityWithBy

	Project    ProjectEntityModel         `json:"project" gorm:"foreignKey:ProjectId"`
	Allotments []WorkAllotmentEntityModel `json:"allotments" gorm:"foreignKey:ReportId"`

	// context
	Context *abstraction.Context `json:"-" gorm:"-"`
}

// TableName ...
func (WorkReportEntityModel) TableName() string {
	return "work_reports"
}

type WorkReportCountDataModel struct {
	Count int `json:"count"`
}

type WorkAllotmentEntity struct {
	ReportId        int    `json:"report_id"`
	WorkDescription string `json:"work_description"`
	Quantity        string `json:"quantity"`
	Uom             string `json:"uom"`
}

// WorkAllotmentEntityModel ...
type WorkAllotmentEntityModel struct {
	ID int `json:"id" param:"id" form:"id" validate:"number,min=1" gorm:"primaryKey;autoIncrement;"`

	// entity
	WorkAllotmentEntity

	Labours []WorkReportLabourEntityModel `json:"labours" gorm:"foreignKey:WorkAllotmentId"`

	// context
	Context *abstraction.Context `json:"-" gorm:"-"`
}

// TableName ...
func (WorkAllotmentEntityModel) TableName() string {
	return "work_allotments"
}

type WorkReportLabourEntity struct {
	WorkAllotmentId int `json:"work_allotment_id"`
	TeamId          int `json:"team_id"`
	LabourTypeId    int `json:"labour_type_id"`
	Count           int `json:"count"`
}

// WorkReportLabourEntityModel ...
type WorkReportLabourEntityModel struct {
	ID int `json:"id" param:"id" form:"id" validate:"number,min=1" gorm:"primaryKey;autoIncrement;"`

	// entity
	WorkReportLabourEntity

	Team       LabourTeamEntityModel `json:"team" gorm:"foreignKey:TeamId"`
	LabourType LabourTypeEntityModel `json:"labour_type" gorm:"foreignKey:LabourTypeId"`

	// context
	Context *abstraction.Context `json:"-" gorm:"-"`
}

// TableName ...
func (WorkReportLabourEntityModel) TableName() string {
	return "work_report_labours"
}
