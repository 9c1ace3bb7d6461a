package dto

type UserFindByIDRequest struct {
	ID int `param:"id" validate:"required"`
}

type UserUpdateRequest struct {
	ID     int     `param:"id" validate:"required"`
	Name   *string `json:"name" form:"name"`
	Email  *string `json:"email" form:"email"`
	RoleId *int    `json:"role_id" form:"role_id"`
}

type UserDeleteByIDRequest struct {
	ID int `param:"id" validate:"required"`
}

type UserChangePasswordRequest struct {
	ID          int    `param:"id" validate:"required"`
	OldPassword string `json:"old_password" form:"old_password" validate:"required"`
	NewPassword string `json:"new_password" form:"new_password" validate:"required,min=8"`
}
