package shared

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Error codes shared across domains
const (
	CodeNotFound     = "NOT_FOUND"
	CodeConflict     = "CONFLICT"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeForbidden    = "FORBIDDEN"
	CodeInvalidInput = "INVALID_INPUT"
	CodeInternal     = "INTERNAL_ERROR"
)

// NewNotFoundError creates a not-found error with a caller-safe message
func NewNotFoundError(message string) *DomainError {
	return NewDomainError(CodeNotFound, message)
}

// NewConflictError creates a conflict error for duplicates and state clashes
func NewConflictError(message string) *DomainError {
	return NewDomainError(CodeConflict, message)
}

// NewUnauthorizedError creates an authentication error
func NewUnauthorizedError(message string) *DomainError {
	return NewDomainError(CodeUnauthorized, message)
}

// NewForbiddenError creates an authorization error
func NewForbiddenError(message string) *DomainError {
	return NewDomainError(CodeForbidden, message)
}

// NewValidationError creates an invalid-input error
func NewValidationError(message string) *DomainError {
	return NewDomainError(CodeInvalidInput, message)
}

// NewInternalError creates an internal error with a safe message
func NewInternalError(message string) *DomainError {
	return NewDomainError(CodeInternal, message)
}

// Common domain errors
var (
	ErrNotFound      = NewNotFoundError("Resource not found")
	ErrAlreadyExists = NewConflictError("Resource already exists")
	ErrInvalidInput  = NewValidationError("Invalid input provided")
	ErrUnauthorized  = NewUnauthorizedError("Not authorized to perform this action")
	ErrForbidden     = NewForbiddenError("Access to this resource is forbidden")
)
