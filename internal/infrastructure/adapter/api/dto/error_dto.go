package dto

// ErrorResponse represents a standardized error response for the API
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Code    int    `json:"code"`
}

// NewErrorResponse builds a failed response body
func NewErrorResponse(message string, code int) ErrorResponse {
	return ErrorResponse{Success: false, Error: message, Code: code}
}
