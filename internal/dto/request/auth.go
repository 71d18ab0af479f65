package request

type AdminLoginRequest struct {
	Password string `json:"password" validate:"required"`
}

type SessionTokenRequest struct {
	Token string `json:"token" validate:"required"`
}
