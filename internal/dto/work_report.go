package dto

type WorkAllocationRow struct {
	TeamId       int `json:"team_id" validate:"required"`
	LabourTypeId int `json:"labour_type_id" validate:"required"`
	Count        int `json:"count" validate:"required,gt=0"`
}

type WorkItemPayload struct {
	WorkDescription string              `json:"work_description" validate:"required"`
	Quantity        string              `json:"quantity" validate:"required"`
	Uom             string              `json:"uom" validate:"required"`
	Allocations     []WorkAllocationRow `json:"allocations" validate:"dive"`
}

type WorkReportCreateRequest struct {
	ProjectId   int               `json:"project_id" validate:"required"`
	Date        string            `json:"date" validate:"required"`
	Description string            `json:"description"`
	Items       []WorkItemPayload `json:"items" validate:"required,min=1,dive"`
}

type WorkReportFindByIDRequest struct {
	ID int `param:"id" validate:"required"`
}

// WorkReportRemainingRequest carries a report in progress; items may be
// partially filled, only allocation rows participate.
type WorkReportRemainingRequest struct {
	ProjectId int               `json:"project_id" validate:"required"`
	Date      string            `json:"date" validate:"required"`
	Items     []WorkItemPayload `json:"items"`
}

type WorkReportExportRequest struct {
	Format string `query:"format" validate:"required"`
}
