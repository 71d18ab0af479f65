package request

type SendMessageRequest struct {
	ToEmail    string `json:"to_email" validate:"required,email"`
	ToName     string `json:"to_name" validate:"required"`
	Subject    string `json:"subject" validate:"required"`
	Message    string `json:"message" validate:"required"`
	CustomerID string `json:"customer_id"`
}

type ContactFormRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}
