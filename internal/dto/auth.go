package dto

type AuthLoginRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
}

type AuthRegisterRequest struct {
	Name     string `json:"name" form:"name" validate:"required"`
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required,min=8"`
	RoleId   int    `json:"role_id" form:"role_id" validate:"required"`
}

type AuthSendEmailForgotPasswordRequest struct {
	Email string `json:"email" form:"email" validate:"required"`
}

type AuthValidationResetPasswordRequest struct {
	Token string `param:"token" validate:"required"`
}
