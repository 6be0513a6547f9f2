package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/choulifeisgood/valuation-agent/internal/common"
	"github.com/choulifeisgood/valuation-agent/internal/interfaces"
	"github.com/choulifeisgood/valuation-agent/internal/models"
)

// handleGetVersion implements the get_version tool
func handleGetVersion() server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result := fmt.Sprintf("Valuation Agent\nVersion: %s\nBuild: %s\nCommit: %s\nStatus: OK",
			common.GetVersion(), common.GetBuild(), common.GetGitCommit())
		return textResult(result), nil
	}
}

// handleAnalyzeTicker implements the analyze_ticker tool
func handleAnalyzeTicker(analysisService interfaces.AnalysisService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ticker, err := request.RequireString("ticker")
		if err != nil || ticker == "" {
			return errorResult("Error: ticker parameter is required"), nil
		}

		report, err := analysisService.Analyze(ctx, ticker)
		if err != nil {
			logger.Error().Err(err).Str("ticker", ticker).Msg("Analysis failed")
			return errorResult(fmt.Sprintf("Analysis error: %v", err)), nil
		}

		return textResult(report.AnalysisSummary), nil
	}
}

// handleQuickQuote implements the quick_quote tool
func handleQuickQuote(analysisService interfaces.AnalysisService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ticker, err := request.RequireString("ticker")
		if err != nil || ticker == "" {
			return errorResult("Error: ticker parameter is required"), nil
		}

		quote, err := analysisService.QuickQuote(ctx, ticker)
		if err != nil {
			logger.Error().Err(err).Str("ticker", ticker).Msg("Quote fetch failed")
			return errorResult(fmt.Sprintf("Quote error: %v", err)), nil
		}

		return textResult(formatQuote(quote)), nil
	}
}

// handleGetReport implements the get_report tool
func handleGetReport(analysisService interfaces.AnalysisService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		reportID := request.GetString("report_id", "")
		ticker := request.GetString("ticker", "")

		var report *models.ValuationReport
		var err error
		switch {
		case reportID != "":
			report, err = analysisService.GetReport(ctx, reportID)
		case ticker != "":
			report, err = analysisService.LatestReport(ctx, ticker)
		default:
			return errorResult("Error: report_id or ticker parameter is required"), nil
		}
		if err != nil {
			logger.Error().Err(err).Str("report_id", reportID).Str("ticker", ticker).Msg("Report fetch failed")
			return errorResult(fmt.Sprintf("Report error: %v", err)), nil
		}
		if report == nil {
			return errorResult("No report found"), nil
		}

		return textResult(report.AnalysisSummary), nil
	}
}

func formatQuote(q *models.QuickQuote) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s", q.Ticker)
	if q.Name != "" {
		fmt.Fprintf(&sb, " (%s)", q.Name)
	}
	fmt.Fprintf(&sb, "\nPrice: %.2f", q.Price)
	if q.Change != nil && q.ChangePct != nil {
		fmt.Fprintf(&sb, "\nChange: %+.2f (%+.2f%%)", *q.Change, *q.ChangePct)
	}
	if q.Volume != nil {
		fmt.Fprintf(&sb, "\nVolume: %d", *q.Volume)
	}
	if q.MarketCap != nil {
		fmt.Fprintf(&sb, "\nMarket Cap: %.0f", *q.MarketCap)
	}
	fmt.Fprintf(&sb, "\nAs of: %s", q.Timestamp.UTC().Format("2006-01-02 15:04:05 UTC"))
	return sb.String()
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(text),
		},
	}
}

func errorResult(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(message),
		},
		IsError: true,
	}
}
