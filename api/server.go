package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/lightlink-network/dai-tracker/explorer"
	"github.com/lightlink-network/dai-tracker/metrics"
	"github.com/lightlink-network/dai-tracker/tracker"
	"github.com/prometheus/client_golang/prometheus"
)

// TransferView is the read side of the tracker
type TransferView interface {
	Snapshot() tracker.Snapshot
}

// API server
type Server struct {
	r        chi.Router
	srv      *http.Server
	log      *slog.Logger
	view     TransferView
	explorer *explorer.Explorer
	metrics  *metrics.Metrics
	page     *template.Template
	opts     ServerOpts
}

type ServerOpts struct {
	Logger   *slog.Logger
	Port     string
	View     TransferView
	Explorer *explorer.Explorer
	Metrics  *metrics.Metrics
	Gatherer prometheus.Gatherer
}

// Create API server
func NewServer(opts ServerOpts) (*Server, error) {
	if opts.View == nil {
		return nil, errors.New("transfer view is required")
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Gatherer == nil {
		opts.Gatherer = prometheus.DefaultGatherer
	}
	if opts.Explorer == nil {
		e, err := explorer.New(explorer.DefaultBaseURL)
		if err != nil {
			return nil, err
		}
		opts.Explorer = e
	}

	page, err := parseTemplates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	s := &Server{
		log:      opts.Logger,
		view:     opts.View,
		explorer: opts.Explorer,
		metrics:  opts.Metrics,
		page:     page,
		opts:     opts,
	}
	s.routes()
	s.srv = &http.Server{
		Addr:              ":" + opts.Port,
		Handler:           s.r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s, nil
}

// Starts the HTTP server. Blocks until the server is shut down.
func (s *Server) StartServer() error {
	s.log.Info("📡 Server Started. DAI Tracker is now listening on http://localhost:" + s.opts.Port)
	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to serve: %w", err)
	}
	return nil
}

// Gracefully stops a server started with StartServer
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

// Turns server into http server
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.r.ServeHTTP(w, r)
}

// Returns JSON response to the API user. HTTP status code
// and data must be provided
func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.WriteHeader(statusCode)
	err := json.NewEncoder(w).Encode(data)
	if err != nil {
		fmt.Fprintf(w, "%s", err.Error())
	}
}

// Returns an error to the API user
func ERROR(w http.ResponseWriter, statusCode int, err error) {
	w.WriteHeader(statusCode)
	err = json.NewEncoder(w).Encode(map[string]interface{}{"error": err.Error()})
	if err != nil {
		fmt.Fprintf(w, "%s", err.Error())
	}
}
