package handler

import (
	"errors"
	"mime"
	"net/http"

	"resume-search/internal/domain"
	apperrors "resume-search/pkg/errors"

	"github.com/gorilla/mux"
)

// FileHandler serves raw PDFs from the résumé directory.
type FileHandler struct {
	pdfs   domain.PDFSource
	logger domain.Logger
}

// NewFileHandler creates a new file handler
func NewFileHandler(pdfs domain.PDFSource, logger domain.Logger) *FileHandler {
	return &FileHandler{
		pdfs:   pdfs,
		logger: logger,
	}
}

// Download sends the named PDF as an attachment carrying its original filename.
func (h *FileHandler) Download(w http.ResponseWriter, r *http.Request) {
	filename := mux.Vars(r)["filename"]

	f, info, err := h.pdfs.Open(filename)
	switch {
	case errors.Is(err, domain.ErrInvalidFilename):
		writeAppError(w, r, h.logger, apperrors.NewValidationError("Invalid filename", "only bare *.pdf names can be downloaded"))
		return
	case errors.Is(err, domain.ErrFileNotFound):
		writeAppError(w, r, h.logger, apperrors.NewNotFoundError("File not found"))
		return
	case err != nil:
		writeAppError(w, r, h.logger, apperrors.NewInternalError("Failed to open file", err))
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", attachmentHeader(filename))
	http.ServeContent(w, r, filename, info.ModTime(), f)
}

// attachmentHeader builds a Content-Disposition value; non-ASCII names are
// encoded per RFC 6266.
func attachmentHeader(filename string) string {
	return mime.FormatMediaType("attachment", map[string]string{"filename": filename})
}
