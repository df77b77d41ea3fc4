package config

import (
	"fmt"

	"resume-search/internal/domain"
	"resume-search/internal/infra/pdf"
	"resume-search/internal/repository"
	"resume-search/internal/service"
	"resume-search/pkg/logger"
)

// Container holds all application dependencies
type Container struct {
	Config          domain.Config
	Logger          domain.Logger
	PDFs            *repository.PDFDirectory
	IndexRepository *repository.CSVIndexRepository
	IndexService    *service.IndexService
	SearchService   *service.SearchService
}

// NewContainer creates a new dependency injection container from the
// environment.
func NewContainer() (*Container, error) {
	cfg := NewConfig()
	return NewContainerWithConfig(cfg, logger.NewLogger(cfg.GetLogLevel()))
}

// NewContainerWithConfig wires the application around cfg. The PDF directory
// is created when missing.
func NewContainerWithConfig(cfg domain.Config, appLogger domain.Logger) (*Container, error) {
	pdfs := repository.NewPDFDirectory(cfg.GetPDFDir(), appLogger)
	if err := pdfs.EnsureExists(); err != nil {
		return nil, err
	}

	opener, err := pdf.NewOpener(cfg.GetPDFBackend())
	if err != nil {
		return nil, fmt.Errorf("configure PDF backend: %w", err)
	}

	indexRepo := repository.NewCSVIndexRepository(cfg.GetCacheFile(), appLogger)
	indexService := service.NewIndexService(
		pdfs,
		indexRepo,
		service.NewExtractor(opener, appLogger),
		service.NewFirstLineNamer(),
		service.IndexOptions{
			SkipUnreadable: cfg.GetSkipUnreadable(),
			Workers:        cfg.GetBuildWorkers(),
		},
		appLogger,
	)
	searchService := service.NewSearchService(indexService, pdfs, cfg.GetPreviewChars(), appLogger)

	appLogger.Info("Container initialized",
		"pdf_dir", pdfs.Dir(),
		"cache_file", indexRepo.Path(),
		"pdf_backend", cfg.GetPDFBackend(),
		"skip_unreadable", cfg.GetSkipUnreadable(),
	)

	return &Container{
		Config:          cfg,
		Logger:          appLogger,
		PDFs:            pdfs,
		IndexRepository: indexRepo,
		IndexService:    indexService,
		SearchService:   searchService,
	}, nil
}

