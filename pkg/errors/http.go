package errors

import "net/http"

// HTTPError is an error that already knows how it should be rendered.
type HTTPError struct {
	StatusCode int
	Message    string
	Data       any
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError returns an HTTPError without a payload.
func NewHTTPError(code int, msg string) *HTTPError {
	return &HTTPError{StatusCode: code, Message: msg}
}

// NewHTTPErrorWithData returns an HTTPError carrying data in the envelope.
func NewHTTPErrorWithData(code int, msg string, data any) *HTTPError {
	return &HTTPError{StatusCode: code, Message: msg, Data: data}
}

var (
	ErrTooManyRequests     = NewHTTPError(http.StatusTooManyRequests, "Too many requests")
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "An unexpected error occurred")
)

// NewInternalError is ErrInternalServerError with the cause appended to its message.
func NewInternalError(cause error) *HTTPError {
	msg := ErrInternalServerError.Message
	if cause != nil {
		msg += ": " + cause.Error()
	}
	return NewHTTPError(http.StatusInternalServerError, msg)
}
