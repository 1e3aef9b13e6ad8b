package ez

import (
	"errors"
	"net/http"

	"todo-backend/internal/domain"
)

// AErr carries an HTTP status and the message shown to the client.
type AErr struct {
	Code int
	Msg  string
	Err  error
}

func (e *AErr) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "action error"
}

func (e *AErr) Unwrap() error { return e.Err }

func BadRequest(msg string) error   { return &AErr{Code: http.StatusBadRequest, Msg: msg} }
func Unauthorized(msg string) error { return &AErr{Code: http.StatusUnauthorized, Msg: msg} }
func NotFound(msg string) error     { return &AErr{Code: http.StatusNotFound, Msg: msg} }
func Conflict(msg string) error     { return &AErr{Code: http.StatusConflict, Msg: msg} }
func Internal(err error) error {
	return &AErr{Code: http.StatusInternalServerError, Msg: internalMsg, Err: err}
}

const internalMsg = "Internal server error"

// FromError classifies err. Anything unknown becomes a generic 500 so
// storage and hashing details never reach the client.
func FromError(err error) *AErr {
	var ae *AErr
	if errors.As(err, &ae) {
		return ae
	}
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		return &AErr{Code: http.StatusBadRequest, Msg: ve.Message, Err: err}
	case errors.Is(err, domain.ErrNotFound):
		return &AErr{Code: http.StatusNotFound, Msg: "Not found", Err: err}
	case errors.Is(err, domain.ErrInvalidCredentials):
		return &AErr{Code: http.StatusUnauthorized, Msg: "Invalid Email or Password", Err: err}
	case errors.Is(err, domain.ErrInvalidToken):
		return &AErr{Code: http.StatusUnauthorized, Msg: "Invalid token", Err: err}
	case errors.Is(err, domain.ErrEmailTaken):
		return &AErr{Code: http.StatusConflict, Msg: "User already exists", Err: err}
	}
	return &AErr{Code: http.StatusInternalServerError, Msg: internalMsg, Err: err}
}
