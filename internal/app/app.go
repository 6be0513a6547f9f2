package app

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mark3labs/mcp-go/server"

	"github.com/choulifeisgood/valuation-agent/internal/clients/eodhd"
	"github.com/choulifeisgood/valuation-agent/internal/clients/peers"
	"github.com/choulifeisgood/valuation-agent/internal/common"
	"github.com/choulifeisgood/valuation-agent/internal/interfaces"
	"github.com/choulifeisgood/valuation-agent/internal/services/analysis"
	"github.com/choulifeisgood/valuation-agent/internal/storage/badger"
)

// App holds all initialized services, clients, and the MCP server.
// It is the shared core used by the server binary.
type App struct {
	Config      *common.Config
	Logger      *common.Logger
	Storage     interfaces.CacheStore
	Market      interfaces.MarketDataClient
	Peers       interfaces.PeerProvider
	Analysis    interfaces.AnalysisService
	MCPServer   *server.MCPServer
	StartupTime time.Time
}

// getBinaryDir returns the directory containing the executable.
func getBinaryDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

// NewApp initializes storage, clients, services, and the MCP server.
// configPath may be empty, in which case the default resolution logic is used.
func NewApp(configPath string) (*App, error) {
	startupStart := time.Now()

	// Load version from .version file (fallback if ldflags not set)
	common.LoadVersionFromFile()

	// Get binary directory for self-contained operation
	binDir := getBinaryDir()

	// Load configuration - check provided path, VALUATION_CONFIG, then binary dir, then fallback
	if configPath == "" {
		configPath = os.Getenv("VALUATION_CONFIG")
	}
	if configPath == "" {
		configPath = filepath.Join(binDir, "valuation.toml")
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			configPath = "config/valuation.toml" // fallback for development
		}
	}

	config, err := common.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Resolve relative cache path to binary directory
	if config.Storage.Path != "" && !filepath.IsAbs(config.Storage.Path) {
		config.Storage.Path = filepath.Join(binDir, config.Storage.Path)
	}

	// Initialize logger
	logger := common.NewLogger(config.Logging.Level)

	// Initialize storage
	store, err := badger.NewStore(logger, config.Storage.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	if config.Clients.EODHD.APIKey == "" {
		logger.Warn().Msg("EODHD API key not configured - market data requests will fail")
	}

	// Initialize API client
	eodhdClient := eodhd.NewClient(config.Clients.EODHD.APIKey,
		eodhd.WithLogger(logger),
		eodhd.WithBaseURL(config.Clients.EODHD.BaseURL),
		eodhd.WithRateLimit(config.Clients.EODHD.RateLimit),
		eodhd.WithTimeout(config.Clients.EODHD.GetTimeout()),
	)

	peerProvider := peers.NewProvider(eodhdClient, logger)

	// Initialize services
	analysisService := analysis.NewService(eodhdClient, peerProvider, store, config, logger)

	// Create MCP server
	mcpServer := server.NewMCPServer(
		"valuation-agent",
		common.GetVersion(),
		server.WithToolCapabilities(true),
	)

	a := &App{
		Config:      config,
		Logger:      logger,
		Storage:     store,
		Market:      eodhdClient,
		Peers:       peerProvider,
		Analysis:    analysisService,
		MCPServer:   mcpServer,
		StartupTime: startupStart,
	}

	// Register all MCP tools
	a.registerTools()

	logger.Info().Dur("startup", time.Since(startupStart)).Msg("App initialized")

	return a, nil
}

// Close releases all resources held by the App.
func (a *App) Close() {
	if a.Storage != nil {
		a.Storage.Close()
		a.Storage = nil
	}
}

// registerTools registers all MCP tools on the App's MCPServer.
func (a *App) registerTools() {
	s := a.MCPServer

	s.AddTool(createGetVersionTool(), handleGetVersion())
	s.AddTool(createAnalyzeTickerTool(), handleAnalyzeTicker(a.Analysis, a.Logger))
	s.AddTool(createQuickQuoteTool(), handleQuickQuote(a.Analysis, a.Logger))
	s.AddTool(createGetReportTool(), handleGetReport(a.Analysis, a.Logger))
}
