package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"cursor-arcade/arcade"
)

func main() {
	addr := flag.String("addr", ":8080", "HTTP listen address")
	dbPath := flag.String("db", "arcade.db", "SQLite database path (empty disables persistence)")
	configPath := flag.String("config", "", "Game tuning YAML (default: built-in)")
	clientDir := flag.String("client", "", "Path to client directory (default: ../client)")
	chatUpstream := flag.String("chat-upstream", "", "URL /api/chat relays to (empty disables chat)")
	publicURL := flag.String("public-url", "", "Share URL encoded by /api/qr")
	flag.Parse()

	if *clientDir == "" {
		exe, _ := os.Executable()
		*clientDir = filepath.Join(filepath.Dir(exe), "..", "client")
		// Fallback for development
		if _, err := os.Stat(*clientDir); os.IsNotExist(err) {
			*clientDir = "../client"
		}
		if _, err := os.Stat(*clientDir); os.IsNotExist(err) {
			*clientDir = ""
		}
	}

	cfg := arcade.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = arcade.LoadConfig(*configPath); err != nil {
			log.Fatalf("config: %v", err)
		}
	}

	var db *DB
	if *dbPath != "" {
		var err error
		if db, err = OpenDB(*dbPath); err != nil {
			log.Fatalf("database: %v", err)
		}
		defer db.Close()
	}

	hub := NewHub(db, cfg)
	go hub.Run()

	mux := SetupRoutes(hub, Options{
		ClientDir:    *clientDir,
		ChatUpstream: *chatUpstream,
		PublicURL:    *publicURL,
	})

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	server := &http.Server{Addr: *addr, Handler: mux}

	go func() {
		log.Printf("Server starting on %s", *addr)
		if *clientDir != "" {
			log.Printf("Serving client files from %s", *clientDir)
		}
		if *chatUpstream == "" {
			log.Printf("Chat relay disabled")
		}
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("shutdown: %v", err)
	}
	hub.Shutdown()
}
