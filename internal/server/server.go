// Package server provides the HTTP REST API for the resume manager.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/resume-manager/internal/llm"
	"github.com/jonathan/resume-manager/internal/store"
)

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	repo       *store.Repository
	llm        llm.Client
}

// Config holds server configuration
type Config struct {
	Port     int
	DataFile string
	APIKey   string
	Model    string
}

// New creates a new server instance. The resume collection is loaded from the
// data file once, at startup.
func New(cfg Config) (*Server, error) {
	repo, err := store.NewRepository(store.NewFileStore(cfg.DataFile))
	if err != nil {
		return nil, fmt.Errorf("failed to load resume store: %w", err)
	}
	log.Printf("Loaded %d resumes from %s", repo.Len(), cfg.DataFile)

	client, err := llm.NewClient(context.Background(), llm.DefaultConfig().WithModel(cfg.Model), cfg.APIKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	s := newServer(repo, client)
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // LLM calls block until the upstream responds
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// newServer wires a server around an existing repository and LLM client.
// Split out from New so tests can inject both.
func newServer(repo *store.Repository, client llm.Client) *Server {
	return &Server{
		repo: repo,
		llm:  client,
	}
}

// handler builds the route table and middleware chain.
func (s *Server) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)

	// Resume CRUD endpoints
	mux.HandleFunc("GET /resumes", s.handleListResumes)
	mux.HandleFunc("GET /resume/{id}", s.handleGetResume)
	mux.HandleFunc("DELETE /resume/{id}", s.handleDeleteResume)
	mux.HandleFunc("POST /save-resume", s.handleSaveResume)

	// AI endpoints
	mux.HandleFunc("POST /parse-resume", s.handleParseResume)
	mux.HandleFunc("POST /ai-enhance", s.handleEnhance)
	mux.HandleFunc("POST /ai-enhance-suggestions", s.handleSuggestions)

	// Document upload
	mux.HandleFunc("POST /extract-text", s.handleExtractText)

	return s.withRequestID(s.withLogging(s.withCORS(mux)))
}

// Start begins listening for requests
func (s *Server) Start() error {
	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if err := s.llm.Close(); err != nil {
		log.Printf("Error closing LLM client: %v", err)
	}
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers. The frontend is served from a different origin,
// so all origins, methods and headers are permitted.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "*")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// withRequestID tags each request with an ID so log lines from a single
// request can be correlated.
func (s *Server) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		w.Header().Set("X-Request-ID", requestID)
		next.ServeHTTP(w, r)
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response with a human-readable detail
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"detail": message})
}
