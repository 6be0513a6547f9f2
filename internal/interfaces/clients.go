// Package interfaces defines service contracts for the valuation agent
package interfaces

import (
	"context"

	"github.com/choulifeisgood/valuation-agent/internal/models"
)

// MarketDataClient provides access to the market data provider
type MarketDataClient interface {
	// GetFundamentals retrieves the raw fundamentals document for a ticker
	GetFundamentals(ctx context.Context, ticker string) (*models.FundamentalsPayload, error)

	// GetRealTimeQuote retrieves the latest price snapshot for a ticker
	GetRealTimeQuote(ctx context.Context, ticker string) (*models.RealTimeQuote, error)
}

// PeerProvider supplies sector peer multiples for relative valuation
type PeerProvider interface {
	// GetPeerMultiples returns the representative peer multiples for a
	// sector, excluding the subject ticker from the peer set when present
	GetPeerMultiples(ctx context.Context, sector, industry, exclude string) (*models.PeerMultiples, error)
}
