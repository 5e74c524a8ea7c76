package dto

type RegisterRequest struct {
	UserName     string `json:"user_name" validate:"required,min=2,max=100"`
	UserEmail    string `json:"user_email" validate:"required,email"`
	UserPassword string `json:"user_password" validate:"required,min=8"`
}

type LoginRequest struct {
	UserEmail    string `json:"user_email" validate:"required,email"`
	UserPassword string `json:"user_password" validate:"required"`
}

type GoogleLoginRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}
