package domain

// UnknownName is the display name used when a document has no non-blank line.
const UnknownName = "unknown"

// Cache artifact column names, in on-disk order.
const (
	ColumnFilename = "filename"
	ColumnName     = "name"
	ColumnFullText = "full_text"
)

// Columns lists the cache artifact header.
var Columns = []string{ColumnFilename, ColumnName, ColumnFullText}

// Record is one indexed résumé.
type Record struct {
	Filename string `json:"filename"`
	Name     string `json:"name"`
	FullText string `json:"full_text"`
}

// Index is the ordered collection of records. Order is the directory
// listing order at build time.
type Index struct {
	Records []Record `json:"records"`
}

// NewIndex returns an index with zero records.
func NewIndex() *Index {
	return &Index{Records: make([]Record, 0)}
}

// Len returns the number of records.
func (i *Index) Len() int {
	if i == nil {
		return 0
	}
	return len(i.Records)
}

// SearchResult is the rendered form of a matching record.
type SearchResult struct {
	Filename     string `json:"filename"`
	Name         string `json:"name"`
	Preview      string `json:"preview"`
	Downloadable bool   `json:"downloadable"`
	DownloadURL  string `json:"download_url,omitempty"`
}

// SearchResponse is the payload of the search API.
type SearchResponse struct {
	Keyword string         `json:"keyword"`
	Count   int            `json:"count"`
	Results []SearchResult `json:"results"`
}
