package dto

type LabourTeamCreateRequest struct {
	Name string `json:"name" form:"name" validate:"required"`
}

type LabourTeamFindByIDRequest struct {
	ID int `param:"id" validate:"required"`
}

type LabourTeamUpdateRequest struct {
	ID   int     `param:"id" validate:"required"`
	Name *string `json:"name" form:"name"`
}

type LabourTeamDeleteByIDRequest struct {
	ID int `param:"id" validate:"required"`
}

type LabourTypeCreateRequest struct {
	TypeName string `json:"type_name" form:"type_name" validate:"required"`
	TeamId   int    `json:"team_id" form:"team_id" validate:"required"`
}

type LabourTypeFindByIDRequest struct {
	ID int `param:"id" validate:"required"`
}

type LabourTypeUpdateRequest struct {
	ID       int     `param:"id" validate:"required"`
	TypeName *string `json:"type_name" form:"type_name"`
	TeamId   *int    `json:"team_id" form:"team_id"`
}

type LabourTypeDeleteByIDRequest struct {
	ID int `param:"id" validate:"required"`
}
