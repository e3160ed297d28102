// Command blockfall-debug is a thin HTTP/WS host around the engine
// core, for manual play and debugging. It is not a multiplayer
// server: every session is a single player talking to its own
// engine, and the websocket stream is read-only spectator output.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	"github.com/sk8metalme/blockfall/internal/devtools"
)

func main() {
	if os.Getenv("APP_ENV") != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("warning: could not load .env file (fine in production): %v", err)
		}
	}

	host := devtools.NewHost()
	handlers := devtools.NewHandlers(host)

	r := mux.NewRouter()
	r.HandleFunc("/healthz", handlers.HealthCheck).Methods("GET")
	r.HandleFunc("/sessions", handlers.CreateSession).Methods("POST")
	r.HandleFunc("/sessions/{id}/input", handlers.SubmitInput).Methods("POST")
	r.HandleFunc("/sessions/{id}/ws", handlers.StreamEvents).Methods("GET")

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("blockfall-debug listening on :%s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	<-quit
	log.Println("shutting down...")

	host.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("error during shutdown: %v", err)
	}

	log.Println("shutdown complete.")
}
