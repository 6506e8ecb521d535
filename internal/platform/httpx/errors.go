package httpx

import (
	"errors"
	"net/http"

	"github.com/odyssey-erp/odyssey-admin/internal/shared"
)

// RespondError maps domain errors to RFC7807 responses. The detail text is
// always the operator-safe message, never err.Error().
func RespondError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, shared.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, shared.ErrInvalidPreference):
		status = http.StatusBadRequest
	case errors.Is(err, shared.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	case errors.Is(err, shared.ErrCSRFTokenMissing), errors.Is(err, shared.ErrCSRFTokenMismatch):
		status = http.StatusForbidden
	}
	Problem(w, status, http.StatusText(status), shared.UserSafeMessage(err))
}
