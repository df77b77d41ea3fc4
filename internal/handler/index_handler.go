package handler

import (
	"net/http"
	"time"

	"resume-search/internal/domain"

	"golang.org/x/time/rate"
)

// NewRebuildLimiter allows perMinute forced rebuilds per minute with no burst.
// A non-positive perMinute disables limiting.
func NewRebuildLimiter(perMinute int) *rate.Limiter {
	if perMinute <= 0 {
		return nil
	}
	return rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), 1)
}

// IndexHandler exposes maintenance operations on the index.
type IndexHandler struct {
	indexService domain.IndexService
	cacheFile    string
	limiter      *rate.Limiter
	logger       domain.Logger
}

// NewIndexHandler creates a new index handler. A nil limiter allows every
// rebuild request.
func NewIndexHandler(indexService domain.IndexService, cacheFile string, limiter *rate.Limiter, logger domain.Logger) *IndexHandler {
	return &IndexHandler{
		indexService: indexService,
		cacheFile:    cacheFile,
		limiter:      limiter,
		logger:       logger,
	}
}

// Rebuild re-extracts every PDF and overwrites the cache artifact.
func (h *IndexHandler) Rebuild(w http.ResponseWriter, r *http.Request) {
	if h.limiter != nil && !h.limiter.Allow() {
		writeError(w, http.StatusTooManyRequests, "Rebuild already requested recently")
		return
	}

	index, err := h.indexService.Build()
	if err != nil {
		writeAppError(w, r, h.logger, err)
		return
	}

	h.logger.Info("Index rebuilt on request",
		"records", index.Len(),
		"cache", h.cacheFile,
		"request_id", RequestIDFromContext(r.Context()),
	)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "rebuilt",
		"records": index.Len(),
	})
}
