package handler

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
	"time"

	"resume-search/internal/domain"
	apperrors "resume-search/pkg/errors"
)

//go:embed templates/search.html
var templateFS embed.FS

var searchPage = template.Must(template.ParseFS(templateFS, "templates/search.html"))

// ExportFilename is the attachment name of the XLSX export.
const ExportFilename = "resumes.xlsx"

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type searchPageData struct {
	Keyword string
	Count   int
	Results []domain.SearchResult
	Error   string
}

// SearchHandler serves the search page, the search API and the export.
type SearchHandler struct {
	searchService domain.SearchService
	logger        domain.Logger
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(searchService domain.SearchService, logger domain.Logger) *SearchHandler {
	return &SearchHandler{
		searchService: searchService,
		logger:        logger,
	}
}

// Page renders the HTML search page for the "q" query parameter.
func (h *SearchHandler) Page(w http.ResponseWriter, r *http.Request) {
	keyword := r.URL.Query().Get("q")
	data := searchPageData{Keyword: keyword}
	status := http.StatusOK

	_, results, err := h.searchService.Search(keyword)
	if err != nil {
		status = apperrors.GetStatusCode(err)
		h.logger.Error("Search page failed", err, "keyword", keyword, "request_id", RequestIDFromContext(r.Context()))
		data.Error = apperrors.Message(err)
	} else {
		data.Count = len(results)
		data.Results = results
	}

	var buf bytes.Buffer
	if err := searchPage.Execute(&buf, data); err != nil {
		h.logger.Error("Failed to render search page", err)
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// Search returns the filtered results as JSON.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	keyword := r.URL.Query().Get("q")

	_, results, err := h.searchService.Search(keyword)
	if err != nil {
		writeAppError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, domain.SearchResponse{
		Keyword: keyword,
		Count:   len(results),
		Results: results,
	})
}

// Export streams the filtered index as an XLSX attachment.
func (h *SearchHandler) Export(w http.ResponseWriter, r *http.Request) {
	keyword := r.URL.Query().Get("q")

	var buf bytes.Buffer
	n, err := h.searchService.Export(&buf, keyword)
	if err != nil {
		writeAppError(w, r, h.logger, err)
		return
	}

	h.logger.Debug("Export served", "keyword", keyword, "records", n, "bytes", buf.Len())
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", attachmentHeader(ExportFilename))
	http.ServeContent(w, r, ExportFilename, time.Time{}, bytes.NewReader(buf.Bytes()))
}
