package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"focustube-backend/internal/config"
	"focustube-backend/internal/handlers"
	"focustube-backend/internal/router"
	"focustube-backend/internal/services"
	"focustube-backend/internal/storage"
	"focustube-backend/internal/tracking"
)

func main() {
	log.Println("🚀 Starting FocusTube Backend...")

	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	log.Println("✓ Environment variables loaded")
	if cfg.YouTubeAPIKey == "" {
		log.Println("⚠ YOUTUBE_API_KEY is not set; listings will serve placeholder data until a key is provided")
	}

	// ──── Step 2: Open Storage ────
	store, err := storage.Open(cfg)
	if err != nil {
		log.Fatalf("✗ Storage initialization failed: %v", err)
	}
	log.Printf("✓ Storage ready (%s)", cfg.StorageType)

	// ──── Step 3: Initialize Services ────
	ledger := tracking.NewLedger(store)
	youtubeService := services.NewYouTubeService(
		cfg.YouTubeBaseURL,
		cfg.YouTubeAPIKey,
		time.Duration(cfg.HTTPTimeoutSeconds)*time.Second,
		store,
	)
	log.Println("✓ YouTube client initialized")

	// ──── Step 4: Initialize Handlers ────
	searchHandler := handlers.NewSearchHandler(youtubeService, ledger)
	videoHandler := handlers.NewVideoHandler(youtubeService)
	playlistHandler := handlers.NewPlaylistHandler(youtubeService, ledger)
	activityHandler := handlers.NewActivityHandler(ledger)
	preferencesHandler := handlers.NewPreferencesHandler(ledger)
	settingsHandler := handlers.NewSettingsHandler(ledger)
	keyHandler := handlers.NewKeyHandler(youtubeService)

	// ──── Step 5: Start HTTP Server ────
	r := router.New(
		searchHandler,
		videoHandler,
		playlistHandler,
		activityHandler,
		preferencesHandler,
		settingsHandler,
		keyHandler,
		cfg.FrontendURL,
	)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)

		if closer, ok := store.(interface{ Close() error }); ok {
			closer.Close()
		}
	}()

	log.Printf("✓ FocusTube Backend ready on http://localhost:%s", cfg.Port)
	log.Printf("  API: http://localhost:%s/api/v1", cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}
