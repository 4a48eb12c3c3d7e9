package dto

// Response wraps every successful payload
type Response struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

// OK wraps data in a successful response body
func OK(data any) Response {
	return Response{Success: true, Data: data}
}

// HealthResponse is returned by GET /health
type HealthResponse struct {
	Status   string `json:"status"`
	Database any    `json:"database"`
}
