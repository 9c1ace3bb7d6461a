package dto

type AttendanceRow struct {
	TeamId       int `json:"team_id" form:"team_id" validate:"required"`
	LabourTypeId int `json:"labour_type_id" form:"labour_type_id" validate:"required"`
	Count        int `json:"count" form:"count" validate:"required,gt=0"`
}

type AttendanceGetRequest struct {
	ProjectId int    `query:"project_id" validate:"required"`
	Date      string `query:"date" validate:"required"`
}

type AttendanceSaveRequest struct {
	ProjectId int             `json:"project_id" form:"project_id" validate:"required"`
	Date      string          `json:"date" form:"date" validate:"required"`
	Rows      []AttendanceRow `json:"rows" validate:"required,min=1,dive"`
}
