package dto

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewErrorResponse creates an error response
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}

// ValidationDetail is one entry of a validation failure
type ValidationDetail struct {
	Msg  string `json:"msg"`
	Path string `json:"path"`
}

// ValidationErrorResponse is the body of a request that failed input validation
type ValidationErrorResponse struct {
	Errors []ValidationDetail `json:"errors"`
}

// NewValidationErrorResponse creates a validation error response
func NewValidationErrorResponse(details []ValidationDetail) ValidationErrorResponse {
	return ValidationErrorResponse{Errors: details}
}
