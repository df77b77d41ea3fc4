package handler

import (
	"net/http"

	"resume-search/internal/domain"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// NewRouter creates a new HTTP router with all routes configured
func NewRouter(
	searchHandler *SearchHandler,
	fileHandler *FileHandler,
	indexHandler *IndexHandler,
	allowedOrigins []string,
	logger domain.Logger,
) http.Handler {
	router := mux.NewRouter()
	router.Use(RequestIDMiddleware, LoggingMiddleware(logger))

	// Health check endpoint
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok","service":"resume-search"}`))
	}).Methods("GET")

	// Search page and downloads
	router.HandleFunc("/", searchHandler.Page).Methods("GET")
	router.HandleFunc("/files/{filename}", fileHandler.Download).Methods("GET")

	// API prefix
	api := router.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/search", searchHandler.Search).Methods("GET")
	api.HandleFunc("/export.xlsx", searchHandler.Export).Methods("GET")
	api.HandleFunc("/index/rebuild", indexHandler.Rebuild).Methods("POST")

	// Configure CORS
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Content-Type",
			RequestIDHeader,
		},
		ExposedHeaders: []string{
			"Content-Disposition",
			RequestIDHeader,
		},
		MaxAge: 300, // Maximum value not ignored by any of major browsers
	})

	return c.Handler(router)
}
