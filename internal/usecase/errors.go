package usecase

// Error codes carried by DomainError. Handlers map these onto HTTP
// statuses; the precedence (existence before ownership before
// validation) is enforced where the errors are produced, not here.
const (
	CodeNotFound   = "NOT_FOUND"
	CodeForbidden  = "FORBIDDEN"
	CodeValidation = "VALIDATION_ERROR"
)

type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	_, ok := err.(*DomainError)
	return ok
}

func NotFound(message string) *DomainError {
	return &DomainError{Code: CodeNotFound, Message: message}
}

func Forbidden(message string) *DomainError {
	return &DomainError{Code: CodeForbidden, Message: message}
}

func Invalid(message string) *DomainError {
	return &DomainError{Code: CodeValidation, Message: message}
}

// ErrorCode returns the domain error code, or "" for technical errors.
func ErrorCode(err error) string {
	if derr, ok := err.(*DomainError); ok {
		return derr.Code
	}
	return ""
}

type TechnicalError struct {
	Code    string
	Message string
}

func (e *TechnicalError) Error() string {
	return e.Message
}

func IsTechnicalError(err error) bool {
	_, ok := err.(*TechnicalError)
	return ok
}
