package handlers

import (
	"errors"
	"net/http"

	"gitlab.com/codetrial.net/internal/handlers/response"
	"gitlab.com/codetrial.net/internal/static/errs"
)

// WriteServiceError maps service sentinels onto HTTP status codes. Anything
// unrecognized is reported as a 500 without leaking the underlying error.
func WriteServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, errs.ChallengeNotFound), errors.Is(err, errs.AttemptNotFound):
		response.WriteError(w, response.ErrorMessage{Message: err.Error(), StatusCode: http.StatusNotFound})
	case errors.Is(err, errs.ValidationFailed):
		response.WriteError(w, response.ErrorMessage{Message: err.Error(), StatusCode: http.StatusBadRequest})
	case errors.Is(err, errs.AccessDenied):
		response.WriteError(w, response.ErrorMessage{Message: err.Error(), StatusCode: http.StatusForbidden})
	case errors.Is(err, errs.WindowExpired), errors.Is(err, errs.ChallengeExpired):
		response.WriteError(w, response.ErrorMessage{Message: err.Error(), StatusCode: http.StatusUnprocessableEntity})
	case errors.Is(err, errs.InvalidCredentials), errors.Is(err, errs.EmailDomainDenied):
		response.WriteError(w, response.ErrorMessage{Message: err.Error(), StatusCode: http.StatusUnauthorized})
	default:
		response.WriteError(w, response.ErrorMessage{Message: "internal server error", StatusCode: http.StatusInternalServerError})
	}
}
