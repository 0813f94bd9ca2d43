// Package server is the local development server for iterating on a pitch
// figure. It re-reads the config on every request, so editing and saving the
// YAML is enough to see the new figure.
package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/minimav/pitchplot/pkg/config"
	"github.com/minimav/pitchplot/pkg/figure"
)

// Server serves a pitch figure and its diagnostics over HTTP.
type Server struct {
	configPath string
	port       int
}

// New creates a server for the given figure config file.
func New(configPath string, port int) *Server {
	return &Server{
		configPath: configPath,
		port:       port,
	}
}

// Start launches the HTTP server.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("pitchplot server starting on http://localhost%s", addr)
	log.Printf("Config: %s", s.configPath)

	return http.ListenAndServe(addr, s.Handler())
}

// Handler returns the route table. Split from Start so tests can drive it
// without a listener.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /figure.svg", s.handleFigure("svg", "image/svg+xml"))
	mux.HandleFunc("GET /figure.png", s.handleFigure("png", "image/png"))
	mux.HandleFunc("GET /api/diagram", s.handleDiagram)
	mux.HandleFunc("GET /api/validation", s.handleValidation)
	mux.HandleFunc("GET /api/config", s.handleConfig)
	mux.HandleFunc("GET /", s.handleIndex)

	return mux
}

// buildFigure runs the whole pipeline from the config file on disk.
func (s *Server) buildFigure() (*figure.Figure, error) {
	cfg, err := config.Load(s.configPath)
	if err != nil {
		return nil, err
	}
	resolved, err := config.Resolve(cfg)
	if err != nil {
		return nil, err
	}
	fig, err := figure.New(resolved.Dimensions, resolved.FigureOptions()...)
	if err != nil {
		return nil, err
	}
	if resolved.Grid != nil {
		if err := fig.AddHeatmap(resolved.Grid, resolved.HeatmapOptions()...); err != nil {
			return nil, err
		}
	}
	return fig, nil
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html")
	fmt.Fprintf(w, `<!DOCTYPE html>
<html><head><title>pitchplot</title><meta http-equiv="refresh" content="2"></head>
<body style="margin:0;background:#111;color:#fff;font-family:system-ui;display:flex;align-items:center;justify-content:center;height:100vh">
<div style="text-align:center">
<img src="/figure.svg" alt="pitch figure" style="max-width:90vw;max-height:85vh"/>
<p style="font-size:14px;color:#999">%s &middot; edit and save to re-render</p>
</div>
</body></html>`, s.configPath)
}

func (s *Server) handleFigure(format, contentType string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		fig, err := s.buildFigure()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", contentType)
		if err := fig.WriteTo(w, format); err != nil {
			log.Printf("writing %s figure: %v", format, err)
		}
	}
}

func (s *Server) handleDiagram(w http.ResponseWriter, _ *http.Request) {
	fig, err := s.buildFigure()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(fig.Diagram)
}

func (s *Server) handleValidation(w http.ResponseWriter, _ *http.Request) {
	cfg, err := config.Load(s.configPath)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(config.Validate(cfg))
}

func (s *Server) handleConfig(w http.ResponseWriter, _ *http.Request) {
	cfg, err := config.Load(s.configPath)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(cfg)
}
