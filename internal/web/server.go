package web

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"github.com/taxamatch/taxamatch"
	"github.com/taxamatch/taxamatch/internal/pgoracle"
	"github.com/taxamatch/taxamatch/internal/web/middleware"
)

// Server is the HTTP front end over a pgoracle-backed lexicon, exposing
// the matcher factory and neighborhood generator as JSON endpoints.
type Server struct {
	config     *Config
	db         *sql.DB
	oracle     taxamatch.Oracle
	httpServer *http.Server
	router     *mux.Router
}

// NewServer creates a new web server instance.
func NewServer(config *Config) (*Server, error) {
	db, err := pgoracle.Open(config.Database.URL, config.Database.MaxConnections)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	oracle, err := pgoracle.New(db, config.Matcher.Table, config.Matcher.Column)
	if err != nil {
		return nil, fmt.Errorf("failed to construct oracle: %w", err)
	}

	server := &Server{
		config: config,
		db:     db,
		oracle: oracle,
	}

	server.setupRoutes()

	server.httpServer = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", config.Server.Host, config.Server.Port),
		Handler:      server.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return server, nil
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	s.router = mux.NewRouter()

	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/match", s.handleMatch).Methods("GET")
	api.HandleFunc("/neighborhood", s.handleNeighborhood).Methods("GET")
	api.HandleFunc("/ping", s.handlePing).Methods("GET")

	s.router.Use(middleware.CORS())
	s.router.Use(middleware.RequestLogging())
}

// Start runs the HTTP server until it receives SIGINT/SIGTERM, then shuts
// down gracefully.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		fmt.Printf("Starting server on http://%s\n", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Printf("Server error: %v\n", err)
		}
	}()

	<-stop
	fmt.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		fmt.Printf("Server shutdown error: %v\n", err)
	}

	if err := s.db.Close(); err != nil {
		fmt.Printf("Database close error: %v\n", err)
	}

	fmt.Println("Server stopped")
	return nil
}
