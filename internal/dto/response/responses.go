package response

// RootResponse is the liveness body.
type RootResponse struct {
	Message string `json:"message"`
}

type AdminLoginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token,omitempty"`
	Message string `json:"message"`
}

type LogoutResponse struct {
	Success bool `json:"success"`
}

type SessionValidResponse struct {
	Valid bool `json:"valid"`
}

type PromoResponse struct {
	Valid    bool   `json:"valid"`
	Discount int    `json:"discount"`
	Message  string `json:"message"`
}

type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type CampaignResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type ContactResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
