package apperror

// AppError is an error carrying the HTTP status it should map to. Domain
// packages declare their failure modes as package-level AppError sentinels
// and compare with errors.Is.
type AppError struct {
	Code    int    // HTTP status code (e.g. 400, 404, 409)
	Message string // User-facing error message
}

func (e *AppError) Error() string {
	return e.Message
}

// New creates a new AppError with a status code and message.
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}
