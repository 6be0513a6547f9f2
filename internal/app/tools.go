package app

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// createGetVersionTool returns the get_version tool definition
func createGetVersionTool() mcp.Tool {
	return mcp.NewTool("get_version",
		mcp.WithDescription("Get the valuation agent version and status. Use this to verify connectivity."),
	)
}

// createAnalyzeTickerTool returns the analyze_ticker tool definition
func createAnalyzeTickerTool() mcp.Tool {
	return mcp.NewTool("analyze_ticker",
		mcp.WithDescription("Run a full valuation analysis for a ticker: normalized fundamentals, forensic risk screening (Altman Z-Score, Piotroski F-Score, Beneish M-Score), DCF and multiples-based fair value, and a final rating. Returns a markdown report."),
		mcp.WithString("ticker",
			mcp.Required(),
			mcp.Description("Stock ticker, optionally with exchange suffix (e.g., 'AAPL', 'BHP.AU'). Bare tickers default to US listings."),
		),
	)
}

// createQuickQuoteTool returns the quick_quote tool definition
func createQuickQuoteTool() mcp.Tool {
	return mcp.NewTool("quick_quote",
		mcp.WithDescription("Get the latest price, daily change, and volume for a ticker without running a full analysis."),
		mcp.WithString("ticker",
			mcp.Required(),
			mcp.Description("Stock ticker, optionally with exchange suffix (e.g., 'AAPL', 'BHP.AU')"),
		),
	)
}

// createGetReportTool returns the get_report tool definition
func createGetReportTool() mcp.Tool {
	return mcp.NewTool("get_report",
		mcp.WithDescription("Retrieve a previously generated valuation report. Pass a report ID, or a ticker to fetch the most recent report for that ticker."),
		mcp.WithString("report_id",
			mcp.Description("ID of the report to retrieve"),
		),
		mcp.WithString("ticker",
			mcp.Description("Ticker to retrieve the latest report for (used when report_id is not given)"),
		),
	)
}
