package payload

type RegisterRequest struct {
	Username string `form:"username"  validate:"required,min=3,max=32"`
	Email    string `form:"email"     validate:"required,email"`
	Password string `form:"password"  validate:"required"`
}

type LoginRequest struct {
	Email    string `form:"email"     validate:"required,email"`
	Password string `form:"password"  validate:"required"`
}

type ForgotPasswordRequest struct {
	Email string `form:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Password        string `form:"password"        validate:"required"`
	ConfirmPassword string `form:"confirmPassword" validate:"required"`
}
