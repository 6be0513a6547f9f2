// Package interfaces defines service contracts for the valuation agent
package interfaces

import (
	"context"

	"github.com/choulifeisgood/valuation-agent/internal/models"
)

// AnalysisService runs the full valuation pipeline for a ticker
type AnalysisService interface {
	// Analyze runs normalization, forensic scoring, valuation, and
	// synthesis, returning the complete report
	Analyze(ctx context.Context, ticker string) (*models.ValuationReport, error)

	// QuickQuote returns the latest price snapshot without running the
	// full pipeline
	QuickQuote(ctx context.Context, ticker string) (*models.QuickQuote, error)

	// GetReport retrieves a report generated earlier in this process by ID
	GetReport(ctx context.Context, id string) (*models.ValuationReport, error)

	// LatestReport retrieves the most recent in-memory report for a ticker
	LatestReport(ctx context.Context, ticker string) (*models.ValuationReport, error)

	// RenderFootballField renders the valuation range chart for a report
	// as a PNG image
	RenderFootballField(ctx context.Context, report *models.ValuationReport) ([]byte, error)
}
