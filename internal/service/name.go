package service

import (
	"strings"

	"resume-search/internal/domain"
)

// FirstLineNamer takes the first non-blank line of a résumé as the
// candidate's name. It is a weak heuristic and can be swapped for any
// domain.NameExtractor.
type FirstLineNamer struct{}

// NewFirstLineNamer creates the default name strategy.
func NewFirstLineNamer() *FirstLineNamer {
	return &FirstLineNamer{}
}

// ExtractName returns the first line whose trimmed content is non-empty,
// trimmed, or domain.UnknownName.
func (FirstLineNamer) ExtractName(text string) string {
	for _, line := range strings.Split(text, "\n") {
		if name := strings.TrimSpace(line); name != "" {
			return name
		}
	}
	return domain.UnknownName
}
