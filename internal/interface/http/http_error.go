package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	apperrors "github.com/ecolife/ecolife-api/pkg/errors"
)

// HTTPError captures the metadata required to serialize an error response consistently.
type HTTPError struct {
	Status  int
	Code    string
	Message string
	Err     error
	// Fields maps request fields to the validation rule they failed.
	Fields map[string]string
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

// NewHTTPError is a helper to build an HTTPError instance.
func NewHTTPError(status int, code, message string, err error) *HTTPError {
	return &HTTPError{Status: status, Code: code, Message: message, Err: err}
}

// bindingError converts a gin binding failure into a 400 with per-field detail.
func bindingError(err error) *HTTPError {
	httpErr := NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err)
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		httpErr.Message = "request validation failed"
		httpErr.Fields = make(map[string]string, len(verrs))
		for _, fe := range verrs {
			httpErr.Fields[fe.Field()] = fe.Tag()
		}
	}
	return httpErr
}

// domainError maps an AppError code onto a transport status. notFoundCode names
// the resource for 404s; fallbackCode is used for anything unclassified.
func domainError(err error, notFoundCode, fallbackCode string) *HTTPError {
	switch apperrors.CodeOf(err) {
	case apperrors.CodeInvalidInput:
		return NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err)
	case apperrors.CodeNotFound:
		return NewHTTPError(http.StatusNotFound, notFoundCode, errMessage(err), err)
	case apperrors.CodeSessionInvalid:
		return NewHTTPError(http.StatusUnauthorized, "session_invalid", errMessage(err), err)
	case apperrors.CodeGardenFull:
		return NewHTTPError(http.StatusConflict, "garden_full", errMessage(err), err)
	default:
		return NewHTTPError(http.StatusInternalServerError, fallbackCode, "something went wrong", err)
	}
}

func asHTTPError(err error) *HTTPError {
	if err == nil {
		return nil
	}
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}
	return &HTTPError{
		Status:  http.StatusInternalServerError,
		Code:    "internal_error",
		Message: "something went wrong",
		Err:     err,
	}
}

func abortWithError(c *gin.Context, err *HTTPError) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
