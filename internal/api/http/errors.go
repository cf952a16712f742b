package http

import (
	"errors"
	"net/http"

	"shareit-backend/internal/domain"
	"shareit-backend/internal/logger"
)

// errUnauthenticated marks a bearer token that failed validation.
var errUnauthenticated = errors.New("invalid or expired token")

type errorResponse struct {
	Error string `json:"error"`
}

func statusFor(err error) int {
	if errors.Is(err, errUnauthenticated) {
		return http.StatusUnauthorized
	}
	switch domain.KindOf(err) {
	case domain.KindInvalid, domain.KindBookingRejected, domain.KindCommentRejected:
		return http.StatusBadRequest
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindAccessDenied:
		return http.StatusForbidden
	case domain.KindConflict:
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// writeError maps err to a status and writes {"error": ...}. Unexpected
// errors are logged in full and answered with a generic message.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	l := logger.FromContext(r.Context())
	msg := err.Error()
	if status == http.StatusInternalServerError {
		l.Error("Unhandled error", "error", err, "path", r.URL.Path)
		msg = "internal server error"
	} else {
		l.Warn("Request rejected", "status", status, "error", msg, "path", r.URL.Path)
	}
	writeJSON(w, status, errorResponse{Error: msg})
}
