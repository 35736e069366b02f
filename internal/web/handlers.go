package web

import (
	"io"
	"net/http"

	"github.com/sheetcast/sheetcast/internal/logging"
	"github.com/sheetcast/sheetcast/pkg/sheetcast"
)

// handleConvert accepts a multipart form with a "format" field and a
// "file" part, converts the upload, and responds with the serialized
// payload under its content type. A failed conversion yields a single
// descriptive message and no payload.
func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	maxSize := s.cfg.Upload.MaxFileSize
	r.Body = http.MaxBytesReader(w, r.Body, maxSize)

	if err := r.ParseMultipartForm(maxSize); err != nil {
		respondError(w, r, http.StatusBadRequest, "file too large or invalid multipart form")
		return
	}

	format := r.FormValue("format")
	if format == "" {
		respondError(w, r, http.StatusBadRequest, "missing 'format' field")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, r, http.StatusBadRequest, "no file provided")
		return
	}
	defer file.Close()

	if header.Filename == "" {
		respondError(w, r, http.StatusBadRequest, "missing file name")
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, "failed to read file")
		return
	}

	result, err := sheetcast.Convert(data, header.Filename, format)
	if err != nil {
		respondConvertError(w, r, err)
		return
	}

	logging.FromContext(r.Context()).Info("conversion complete",
		"source", header.Filename,
		"format", format,
		"bytes", len(result.Payload),
	)

	w.Header().Set("Content-Type", result.ContentType)
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, result.Payload)
}

// handleHealthz reports liveness.
func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	io.WriteString(w, "ok\n")
}
