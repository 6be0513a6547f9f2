package server

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/choulifeisgood/valuation-agent/internal/common"
	"github.com/choulifeisgood/valuation-agent/internal/models"
)

var startTime = time.Now()

// --- System handlers ---

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "ok",
		"version": common.GetVersion(),
		"uptime":  time.Since(startTime).Round(time.Second).String(),
	})
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"version": common.GetVersion(),
		"build":   common.GetBuild(),
		"commit":  common.GetGitCommit(),
	})
}

// --- Analysis handlers ---

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var req struct {
		Ticker string `json:"ticker"`
	}
	if !DecodeJSON(w, r, &req) {
		return
	}

	ticker := strings.TrimSpace(req.Ticker)
	if ticker == "" {
		WriteError(w, http.StatusBadRequest, "ticker is required")
		return
	}

	report, err := s.app.Analysis.Analyze(r.Context(), ticker)
	if err != nil {
		if errors.Is(err, models.ErrDataUnavailable) {
			WriteError(w, http.StatusNotFound, fmt.Sprintf("No usable data for %s", ticker))
			return
		}
		WriteError(w, http.StatusBadGateway, fmt.Sprintf("Analysis error: %v", err))
		return
	}

	WriteJSON(w, http.StatusOK, report)
}

func (s *Server) handleQuote(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	ticker := PathParam(r, "/api/quote/", "")
	if ticker == "" {
		WriteError(w, http.StatusBadRequest, "ticker is required in path")
		return
	}

	quote, err := s.app.Analysis.QuickQuote(r.Context(), ticker)
	if err != nil {
		if errors.Is(err, models.ErrDataUnavailable) {
			WriteError(w, http.StatusNotFound, fmt.Sprintf("No quote for %s", ticker))
			return
		}
		WriteError(w, http.StatusBadGateway, fmt.Sprintf("Quote error: %v", err))
		return
	}

	WriteJSON(w, http.StatusOK, quote)
}

func (s *Server) handleReportByID(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	id := PathParam(r, "/api/reports/", "")
	if id == "" {
		WriteError(w, http.StatusBadRequest, "report id is required in path")
		return
	}

	report, err := s.app.Analysis.GetReport(r.Context(), id)
	if err != nil {
		WriteError(w, http.StatusNotFound, fmt.Sprintf("Report not found: %v", err))
		return
	}

	WriteJSON(w, http.StatusOK, report)
}

// handleFootballField renders the valuation range chart for the ticker's
// most recent report, running a fresh analysis when none exists.
func (s *Server) handleFootballField(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	ticker := PathParam(r, "/api/analyze/", "/football-field.png")
	if ticker == "" {
		WriteError(w, http.StatusBadRequest, "ticker is required in path")
		return
	}

	report, err := s.app.Analysis.LatestReport(r.Context(), ticker)
	if err != nil {
		report, err = s.app.Analysis.Analyze(r.Context(), ticker)
		if err != nil {
			if errors.Is(err, models.ErrDataUnavailable) {
				WriteError(w, http.StatusNotFound, fmt.Sprintf("No usable data for %s", ticker))
				return
			}
			WriteError(w, http.StatusBadGateway, fmt.Sprintf("Analysis error: %v", err))
			return
		}
	}

	png, err := s.app.Analysis.RenderFootballField(r.Context(), report)
	if err != nil {
		WriteError(w, http.StatusUnprocessableEntity, fmt.Sprintf("Chart error: %v", err))
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}
