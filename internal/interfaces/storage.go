// Package interfaces defines service contracts for the valuation agent
package interfaces

import (
	"context"
	"time"

	"github.com/choulifeisgood/valuation-agent/internal/models"
)

// CacheStore persists raw fundamentals payloads between provider fetches.
// Reports are never persisted; they exist only for the process lifetime.
type CacheStore interface {
	// GetFundamentals returns the cached payload for a ticker if one
	// exists no older than maxAge. The bool reports a cache hit.
	GetFundamentals(ctx context.Context, ticker string, maxAge time.Duration) (*models.FundamentalsPayload, bool, error)

	// PutFundamentals stores the payload for a ticker, replacing any
	// previous entry.
	PutFundamentals(ctx context.Context, ticker string, payload *models.FundamentalsPayload) error

	// Lifecycle
	Close() error
}
