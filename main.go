package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"vogue/internal/app"
	"vogue/internal/config"
)

func main() {
	// --- Configuration ---
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// --- Initialize store, broker and routes ---
	catalog, err := app.New(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to initialize catalog service: %v", err)
	}
	defer catalog.Close()

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s (store: %s)", cfg.App.Port, cfg.Store.Driver)

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := catalog.Listen(cfg.App.Port); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := catalog.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}
	log.Println("Server gracefully stopped")
}
