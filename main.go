package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	httpLayer "card-optimizer/http"
	"card-optimizer/repository"
	"card-optimizer/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	var prefRepo repository.PreferenceRepository
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		prefRepo = repository.NewRedisPreferenceStore(addr)
	} else {
		prefRepo = repository.NewPreferenceRepositoryMemory()
	}

	preferenceService := service.NewPreferenceService(prefRepo)
	optimizerService := service.NewOptimizerService()

	optimizeHandler := httpLayer.NewOptimizeHandler(optimizerService, preferenceService)
	projectionHandler := httpLayer.NewProjectionHandler(preferenceService)
	preferenceHandler := httpLayer.NewPreferenceHandler(preferenceService)
	healthHandler := httpLayer.NewHealthHandler(optimizerService)

	rateLimiter := httpLayer.NewRateLimiter(5, time.Minute)
	defer rateLimiter.Stop()

	mux := http.NewServeMux()
	mux.Handle(
		"/optimize",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(optimizeHandler.Optimize),
		),
	)
	mux.Handle("/projection", http.HandlerFunc(projectionHandler.Project))
	mux.Handle("/preferences", http.HandlerFunc(preferenceHandler.Preferences))
	mux.Handle("/health", http.HandlerFunc(healthHandler.Health))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	server := &http.Server{
		Addr:         ":" + port,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("Card optimizer listening on http://localhost:%s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.Printf("Error starting server: %v", err)
		return
	case <-quit:
		log.Println("Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	}

	log.Println("Server exited")
}
