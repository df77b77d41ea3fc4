package service

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"resume-search/internal/domain"
	apperrors "resume-search/pkg/errors"

	"golang.org/x/sync/errgroup"
)

// IndexOptions tunes a build.
type IndexOptions struct {
	// SkipUnreadable logs and skips PDFs that fail to parse instead of
	// failing the whole build.
	SkipUnreadable bool
	// Workers bounds concurrent extractions. Values below 1 mean 1.
	Workers int
}

// IndexService builds the résumé index from the PDF directory and keeps the
// cache artifact.
type IndexService struct {
	pdfs      domain.PDFSource
	repo      domain.IndexRepository
	extractor domain.TextExtractor
	namer     domain.NameExtractor
	opts      IndexOptions
	logger    domain.Logger

	// serializes builds within this process; other processes writing the
	// same cache file are not coordinated.
	buildMu sync.Mutex
}

// NewIndexService wires the builder. Unless opts.SkipUnreadable is set, an
// unreadable PDF aborts the whole build.
func NewIndexService(
	pdfs domain.PDFSource,
	repo domain.IndexRepository,
	extractor domain.TextExtractor,
	namer domain.NameExtractor,
	opts IndexOptions,
	logger domain.Logger,
) *IndexService {
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	return &IndexService{
		pdfs:      pdfs,
		repo:      repo,
		extractor: extractor,
		namer:     namer,
		opts:      opts,
		logger:    logger,
	}
}

// Build extracts every *.pdf in the directory, in listing order, and
// overwrites the cache artifact with the result.
func (s *IndexService) Build() (*domain.Index, error) {
	s.buildMu.Lock()
	defer s.buildMu.Unlock()

	start := time.Now()
	names, err := s.pdfs.ListPDFs()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list PDF directory", err)
	}

	paths := make([]string, len(names))
	for i, filename := range names {
		path, err := s.pdfs.Path(filename)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to resolve PDF path", err)
		}
		paths[i] = path
	}

	// Without SkipUnreadable, files listed after the earliest failure so far
	// are not extracted. Every earlier file still is, so the reported failure
	// is the first one in listing order regardless of scheduling.
	texts := make([]string, len(names))
	errs := make([]error, len(names))
	var firstFailed atomic.Int64
	firstFailed.Store(int64(len(names)))
	var g errgroup.Group
	g.SetLimit(s.opts.Workers)
	for i := range names {
		if !s.opts.SkipUnreadable && int64(i) > firstFailed.Load() {
			break
		}
		g.Go(func() error {
			if !s.opts.SkipUnreadable && int64(i) > firstFailed.Load() {
				return nil
			}
			texts[i], errs[i] = s.extractor.ExtractText(paths[i])
			if errs[i] != nil {
				for {
					cur := firstFailed.Load()
					if int64(i) >= cur || firstFailed.CompareAndSwap(cur, int64(i)) {
						break
					}
				}
			}
			return nil
		})
	}
	_ = g.Wait()

	index := domain.NewIndex()
	skipped := 0
	for i, filename := range names {
		if err := errs[i]; err != nil {
			if s.opts.SkipUnreadable && errors.Is(err, domain.ErrDocumentRead) {
				s.logger.Warn("Skipping unreadable PDF", "file", filename, "error", err)
				skipped++
				continue
			}
			s.logger.Error("Index build aborted", err, "file", filename)
			return nil, apperrors.NewExtractionError("failed to read "+filename, err)
		}

		index.Records = append(index.Records, domain.Record{
			Filename: filename,
			Name:     s.namer.ExtractName(texts[i]),
			FullText: texts[i],
		})
	}

	if err := s.repo.Save(index); err != nil {
		return nil, apperrors.NewCacheError("failed to write cache artifact", err)
	}

	s.logger.Info("Index built",
		"records", index.Len(),
		"skipped", skipped,
		"workers", s.opts.Workers,
		"cache", s.repo.Path(),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return index, nil
}

// Load returns the cached index when the artifact exists, without checking
// it against the PDF directory. Otherwise it builds from a non-empty PDF
// directory, or returns an empty index.
func (s *IndexService) Load() (*domain.Index, error) {
	exists, err := s.repo.Exists()
	if err != nil {
		return nil, apperrors.NewCacheError("failed to check cache artifact", err)
	}
	if exists {
		index, err := s.repo.Load()
		if err != nil {
			return nil, apperrors.NewCacheError("failed to read cache artifact", err)
		}
		return index, nil
	}

	empty, err := s.pdfs.IsEmpty()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to read PDF directory", err)
	}
	if !empty {
		s.logger.Info("No cache artifact, building index", "cache", s.repo.Path())
		return s.Build()
	}

	return domain.NewIndex(), nil
}
