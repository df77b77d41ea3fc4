package service

import (
	"io"
	"net/url"
	"strings"

	"resume-search/internal/domain"

	"golang.org/x/text/unicode/norm"
)

// TruncationMarker always follows a preview, even when nothing was cut.
const TruncationMarker = "..."

// Filter returns the records whose name or full text contains keyword,
// case-insensitively, in index order. An empty keyword returns index itself.
// Both sides are compared in NFC, the form extracted text is stored in.
func Filter(index *domain.Index, keyword string) *domain.Index {
	if keyword == "" {
		return index
	}
	if index == nil {
		return domain.NewIndex()
	}

	keyword = foldText(keyword)
	out := domain.NewIndex()
	for _, rec := range index.Records {
		if strings.Contains(foldText(rec.Name), keyword) ||
			strings.Contains(foldText(rec.FullText), keyword) {
			out.Records = append(out.Records, rec)
		}
	}
	return out
}

func foldText(s string) string {
	return strings.ToLower(norm.NFC.String(s))
}

// Preview returns the first n characters of text followed by TruncationMarker.
func Preview(text string, n int) string {
	runes := []rune(text)
	if len(runes) > n {
		runes = runes[:n]
	}
	return string(runes) + TruncationMarker
}

// DownloadURL is the route serving the raw PDF for filename.
func DownloadURL(filename string) string {
	return "/files/" + url.PathEscape(filename)
}

// SearchService implements domain.SearchService.
type SearchService struct {
	indexes      domain.IndexService
	pdfs         domain.PDFSource
	exporter     *Exporter
	previewChars int
	logger       domain.Logger
}

// NewSearchService creates the search service.
func NewSearchService(
	indexes domain.IndexService,
	pdfs domain.PDFSource,
	previewChars int,
	logger domain.Logger,
) *SearchService {
	return &SearchService{
		indexes:      indexes,
		pdfs:         pdfs,
		exporter:     NewExporter(),
		previewChars: previewChars,
		logger:       logger,
	}
}

// Search loads the index and filters it by keyword. The returned results
// are ready to render; download availability is checked against the PDF
// directory now, not at build time.
func (s *SearchService) Search(keyword string) (*domain.Index, []domain.SearchResult, error) {
	index, err := s.indexes.Load()
	if err != nil {
		return nil, nil, err
	}

	matched := Filter(index, keyword)
	results := make([]domain.SearchResult, 0, matched.Len())
	for _, rec := range matched.Records {
		res := domain.SearchResult{
			Filename: rec.Filename,
			Name:     rec.Name,
			Preview:  Preview(rec.FullText, s.previewChars),
		}
		if strings.HasSuffix(rec.Filename, ".pdf") && s.pdfs.Exists(rec.Filename) {
			res.Downloadable = true
			res.DownloadURL = DownloadURL(rec.Filename)
		}
		results = append(results, res)
	}

	s.logger.Debug("Search served", "keyword", keyword, "matched", matched.Len(), "total", index.Len())
	return matched, results, nil
}

// Export writes the filtered index to w as an XLSX workbook and returns the
// number of records written.
func (s *SearchService) Export(w io.Writer, keyword string) (int, error) {
	index, err := s.indexes.Load()
	if err != nil {
		return 0, err
	}
	matched := Filter(index, keyword)
	if err := s.exporter.Write(w, matched); err != nil {
		return 0, err
	}
	s.logger.Info("Index exported", "keyword", keyword, "records", matched.Len())
	return matched.Len(), nil
}
