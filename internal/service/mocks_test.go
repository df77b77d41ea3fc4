package service

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"resume-search/internal/domain"
)

type MockLogger struct {
	mu       sync.Mutex
	messages []string
}

func NewMockLogger() *MockLogger {
	return &MockLogger{messages: []string{}}
}

func (m *MockLogger) Info(msg string, args ...interface{}) {
	m.record("INFO: " + msg)
}

func (m *MockLogger) Error(msg string, err error, args ...interface{}) {
	m.record("ERROR: " + msg + " - " + err.Error())
}

func (m *MockLogger) Debug(msg string, args ...interface{}) {
	m.record("DEBUG: " + msg)
}

func (m *MockLogger) Warn(msg string, args ...interface{}) {
	m.record("WARN: " + msg)
}

func (m *MockLogger) record(line string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, line)
}

// MockPDFOpener serves page texts keyed by file base name.
type MockPDFOpener struct {
	mu      sync.Mutex
	pages   map[string][]string
	openErr map[string]error
	pageErr map[string]error
	opened  []string
}

func NewMockPDFOpener() *MockPDFOpener {
	return &MockPDFOpener{
		pages:   make(map[string][]string),
		openErr: make(map[string]error),
		pageErr: make(map[string]error),
	}
}

func (m *MockPDFOpener) Open(path string) (domain.PDFDocument, error) {
	name := filepath.Base(path)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.opened = append(m.opened, name)
	if err, ok := m.openErr[name]; ok {
		return nil, err
	}
	pages, ok := m.pages[name]
	if !ok {
		return nil, errors.New("no such document")
	}
	return &MockPDFDocument{pages: pages, pageErr: m.pageErr[name]}, nil
}

type MockPDFDocument struct {
	pages   []string
	pageErr error
	closed  bool
}

func (d *MockPDFDocument) NumPage() int {
	return len(d.pages)
}

func (d *MockPDFDocument) PageText(page int) (string, error) {
	if d.pageErr != nil && page == len(d.pages)-1 {
		return "", d.pageErr
	}
	return d.pages[page], nil
}

func (d *MockPDFDocument) Close() error {
	d.closed = true
	return nil
}

// touchPDFs creates placeholder files so the directory listing sees them.
func touchPDFs(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("%PDF-1.4"), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
}
