package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"resume-search/internal/config"
	"resume-search/internal/handler"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or could not be loaded: %v", err)
	}
	// Wiring
	container, err := config.NewContainer()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	// Handlers
	searchHandler := handler.NewSearchHandler(
		container.SearchService,
		container.Logger,
	)
	fileHandler := handler.NewFileHandler(
		container.PDFs,
		container.Logger,
	)
	indexHandler := handler.NewIndexHandler(
		container.IndexService,
		container.IndexRepository.Path(),
		handler.NewRebuildLimiter(container.Config.GetRebuildsPerMinute()),
		container.Logger,
	)

	// Router
	router := handler.NewRouter(
		searchHandler,
		fileHandler,
		indexHandler,
		container.Config.GetAllowedOrigins(),
		container.Logger,
	)

	// start server
	server := &http.Server{
		Addr:              ":" + container.Config.GetServerPort(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Run server
	go func() {
		container.Logger.Info("Server listening", "address", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			container.Logger.Error("Server failed to start", err)
			os.Exit(1)
		}
	}()
	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	container.Logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		container.Logger.Error("Server forced to shutdown", err)
	}

	container.Logger.Info("Server exited")
}
