package request

type StatusCheckCreateRequest struct {
	ClientName string `json:"client_name" validate:"required"`
}
