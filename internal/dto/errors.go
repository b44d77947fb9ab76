package dto

// BaseError — универсальный формат ошибки API.
// Code — машинный код (snake_case), Message — краткое описание,
// Details — дополнительная строка, Fields — ошибки валидации по полям.
type BaseError struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Details string       `json:"details,omitempty"`
	Fields  []FieldError `json:"fields,omitempty"`
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Tag     string `json:"tag,omitempty"`
}

// Семантические обёртки — совместимы по JSON, различаются только в swagger.

// ValidationErrorResponse 400
type ValidationErrorResponse BaseError

// UnauthorizedErrorResponse 401
type UnauthorizedErrorResponse BaseError

// NotFoundErrorResponse 404
type NotFoundErrorResponse BaseError

// RateLimitedErrorResponse 429
type RateLimitedErrorResponse BaseError

// InternalErrorResponse 500
type InternalErrorResponse BaseError

func NewValidationError(msg string, fields []FieldError) ValidationErrorResponse {
	return ValidationErrorResponse(BaseError{Code: "validation_error", Message: msg, Fields: fields})
}
func NewUnauthorizedError(msg string) UnauthorizedErrorResponse {
	return UnauthorizedErrorResponse(BaseError{Code: "unauthorized", Message: msg})
}
func NewNotFoundError(msg string) NotFoundErrorResponse {
	return NotFoundErrorResponse(BaseError{Code: "not_found", Message: msg})
}
func NewRateLimitedError(msg string) RateLimitedErrorResponse {
	return RateLimitedErrorResponse(BaseError{Code: "rate_limited", Message: msg})
}
func NewInternalError(details string) InternalErrorResponse {
	return InternalErrorResponse(BaseError{Code: "internal_error", Message: "internal server error", Details: details})
}
