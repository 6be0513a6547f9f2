package server

import (
	"net/http"
	"strings"

	mcpserver "github.com/mark3labs/mcp-go/server"
)

// registerRoutes sets up all REST API routes on the mux.
func (s *Server) registerRoutes(mux *http.ServeMux) {
	// MCP over Streamable HTTP
	mux.Handle("/mcp", mcpserver.NewStreamableHTTPServer(s.app.MCPServer,
		mcpserver.WithStateLess(true),
	))

	// System
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/version", s.handleVersion)

	// Analysis
	mux.HandleFunc("/api/analyze/", s.routeAnalyze)
	mux.HandleFunc("/api/analyze", s.handleAnalyze)

	// Quotes
	mux.HandleFunc("/api/quote/", s.handleQuote)

	// Reports
	mux.HandleFunc("/api/reports/", s.handleReportByID)
}

// routeAnalyze dispatches /api/analyze/{ticker}/* to the appropriate handler.
func (s *Server) routeAnalyze(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api/analyze/")
	if path == "" {
		WriteError(w, http.StatusBadRequest, "ticker is required in path")
		return
	}

	if strings.HasSuffix(path, "/football-field.png") {
		s.handleFootballField(w, r)
		return
	}

	WriteError(w, http.StatusNotFound, "Not found")
}
