package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"requestId,omitempty"`
}

// FailureResponse is the body written by the catch-all error handler.
type FailureResponse struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON      = "INVALID_JSON"
	ErrCodeMissingField     = "MISSING_FIELD"
	ErrCodeProductNotFound  = "PRODUCT_NOT_FOUND"
	ErrCodeRouteNotFound    = "ROUTE_NOT_FOUND"
	ErrCodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	ErrCodeInternalError    = "INTERNAL_ERROR"
)

// Domain errors for business logic
type DomainError struct {
	Code    string
	Message string
}

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

// Common domain errors
var (
	ErrInvalidJSON      = NewDomainError(ErrCodeInvalidJSON, "Cuerpo de la petición inválido")
	ErrMissingFields    = NewDomainError(ErrCodeMissingField, "Nombre y precio son requeridos")
	ErrProductNotFound  = NewDomainError(ErrCodeProductNotFound, "Producto no encontrado")
	ErrRouteNotFound    = NewDomainError(ErrCodeRouteNotFound, "Ruta no encontrada")
	ErrMethodNotAllowed = NewDomainError(ErrCodeMethodNotAllowed, "Método no permitido")
	ErrInternal         = NewDomainError(ErrCodeInternalError, "Error interno del servidor")
)
