package web

import (
	"errors"
	"net/http"

	"github.com/sheetcast/sheetcast/internal/logging"
	"github.com/sheetcast/sheetcast/pkg/sheetcast"
)

// respondConvertError maps a conversion error to an HTTP status.
// Unknown format names are client faults; ingestion failures and
// defects map to a processing fault since the service cannot tell bad
// input from unsupported input without deeper inspection.
func respondConvertError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, sheetcast.ErrUnknownFormat) {
		status = http.StatusBadRequest
	}
	respondError(w, r, status, err.Error())
}

// respondError logs the failure with request context and writes a
// plain-text message as the entire response body.
func respondError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	logging.FromContext(r.Context()).Error("request failed",
		"path", r.URL.Path,
		"method", r.Method,
		"status", status,
		"error", msg,
	)
	http.Error(w, msg, status)
}
