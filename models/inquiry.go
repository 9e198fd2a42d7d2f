package models

// InquiryRequest is the payload forwarded to the upstream inquiries endpoint.
// Company is always sent as null; the upstream API expects the field even
// though the storefront no longer collects it.
type InquiryRequest struct {
	FirstName         string  `json:"first_name" binding:"required"`
	LastName          string  `json:"last_name" binding:"required"`
	Email             string  `json:"email" binding:"required,email"`
	Phone             *string `json:"phone"`
	Message           *string `json:"message"`
	Company           *string `json:"company"`
	ConsentContact    bool    `json:"consent_contact"`
	ConsentRodo       bool    `json:"consent_rodo"`
	InquiryType       string  `json:"inquiry_type"`
	Source            string  `json:"source"`
	ConfigurationData any     `json:"configuration_data,omitempty"`
}

// InquiryResponse carries the reference number assigned upstream.
type InquiryResponse struct {
	ReferenceNumber string `json:"reference_number"`
}

// Known inquiry types accepted by the upstream API.
const (
	InquiryQuoteRequest       = "quote_request"
	InquiryGeneralContact     = "general_contact"
	InquiryConfigurationCheck = "configuration_check"
	InquiryFindForMe          = "find_for_me"
)
