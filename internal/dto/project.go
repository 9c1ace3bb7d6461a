package dto

type ProjectCreateRequest struct {
	Name string `json:"name" form:"name" validate:"required"`
}

type ProjectFindByIDRequest struct {
	ID int `param:"id" validate:"required"`
}

type ProjectUpdateRequest struct {
	ID   int     `param:"id" validate:"required"`
	Name *string `json:"name" form:"name"`
}

type ProjectDeleteByIDRequest struct {
	ID int `param:"id" validate:"required"`
}

type ProjectAssignmentCreateRequest struct {
	UserId    int `json:"user_id" form:"user_id" validate:"required"`
	ProjectId int `json:"project_id" form:"project_id" validate:"required"`
}

type ProjectAssignmentDeleteRequest struct {
	ID int `param:"id" validate:"required"`
}
