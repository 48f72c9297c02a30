package web

import (
	"fmt"
	"log/slog"
	"net/http"
)

// Server serves the browser table over the exported JSON file. It never
// touches the database; the page consumes grossing_films.json exactly as a
// static file host would.
type Server struct {
	port     int
	jsonPath string
	logger   *slog.Logger
}

// NewServer creates a presentation server for the given JSON export.
func NewServer(port int, jsonPath string, logger *slog.Logger) *Server {
	return &Server{
		port:     port,
		jsonPath: jsonPath,
		logger:   logger.With("component", "web"),
	}
}

// Handler returns the route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /grossing_films.json", s.handleJSON)
	return mux
}

// ListenAndServe blocks serving the table until the process exits.
func (s *Server) ListenAndServe() error {
	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Info("web server starting", "addr", addr, "json", s.jsonPath)
	return http.ListenAndServe(addr, s.Handler())
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(filmsHTML))
}

func (s *Server) handleJSON(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	http.ServeFile(w, r, s.jsonPath)
}
