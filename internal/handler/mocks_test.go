package handler

import (
	"io"

	"resume-search/internal/domain"
)

type mockSearchService struct {
	results     []domain.SearchResult
	err         error
	lastKeyword string
	exported    []byte
}

func (m *mockSearchService) Search(keyword string) (*domain.Index, []domain.SearchResult, error) {
	m.lastKeyword = keyword
	if m.err != nil {
		return nil, nil, m.err
	}
	index := domain.NewIndex()
	for _, res := range m.results {
		index.Records = append(index.Records, domain.Record{Filename: res.Filename, Name: res.Name})
	}
	return index, m.results, nil
}

func (m *mockSearchService) Export(w io.Writer, keyword string) (int, error) {
	m.lastKeyword = keyword
	if m.err != nil {
		return 0, m.err
	}
	_, err := w.Write(m.exported)
	return len(m.results), err
}

type mockIndexService struct {
	index  *domain.Index
	err    error
	builds int
}

func (m *mockIndexService) Build() (*domain.Index, error) {
	m.builds++
	return m.index, m.err
}

func (m *mockIndexService) Load() (*domain.Index, error) {
	return m.index, m.err
}
