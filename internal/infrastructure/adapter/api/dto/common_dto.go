package dto

// APIResponse is the uniform JSON envelope for all endpoints
type APIResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// ErrorResponse is the envelope for failed requests
type ErrorResponse struct {
	Success bool   `json:"success"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// OK wraps data in a success envelope
func OK(message string, data any) APIResponse {
	return APIResponse{Success: true, Message: message, Data: data}
}

// Error wraps an error code and message in a failure envelope
func Error(code int, message string) ErrorResponse {
	return ErrorResponse{Success: false, Code: code, Message: message}
}

// PagedData wraps a listing page with its unpaged total
type PagedData struct {
	Items any   `json:"items"`
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
}
