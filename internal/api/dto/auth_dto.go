package dto

// LoginRequest payload for login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// MessageResponse is the body of every non-entity success response.
type MessageResponse struct {
	Message string `json:"message"`
}

// Response messages.
const (
	MessageLoginSuccess    = "Login success"
	MessageEnquiryAdded    = "Enquiry is added"
	MessageEnquiryDeleted  = "Enquiry deleted"
	MessageCustomerAdded   = "Customer is added"
	MessageCustomerDeleted = "Customer deleted"
)
