// Package badger provides BadgerDB-backed persistence for fundamentals
// payloads fetched from the market-data provider.
package badger

import (
	"context"
	"fmt"
	"time"

	"github.com/timshannon/badgerhold/v4"

	"github.com/choulifeisgood/valuation-agent/internal/common"
	"github.com/choulifeisgood/valuation-agent/internal/interfaces"
	"github.com/choulifeisgood/valuation-agent/internal/models"
)

// Store wraps badgerhold for typed storage
type Store struct {
	store  *badgerhold.Store
	logger *common.Logger
}

var _ interfaces.CacheStore = (*Store)(nil)

// payloadEntry is a cached fundamentals payload keyed by ticker.
type payloadEntry struct {
	Ticker   string `badgerhold:"key"`
	StoredAt time.Time
	Payload  models.FundamentalsPayload
}

// NewStore opens a badgerhold store at the given path
func NewStore(logger *common.Logger, path string) (*Store, error) {
	opts := badgerhold.DefaultOptions
	opts.Dir = path
	opts.ValueDir = path
	opts.Logger = nil // Disable badger's internal logging

	store, err := badgerhold.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger store: %w", err)
	}

	logger.Debug().Str("path", path).Msg("Badger store opened")

	return &Store{
		store:  store,
		logger: logger,
	}, nil
}

// Close closes the database
func (s *Store) Close() error {
	if s.store != nil {
		return s.store.Close()
	}
	return nil
}

// GetFundamentals returns the cached payload for a ticker if it is no older
// than maxAge.
func (s *Store) GetFundamentals(ctx context.Context, ticker string, maxAge time.Duration) (*models.FundamentalsPayload, bool, error) {
	var entry payloadEntry
	err := s.store.Get(ticker, &entry)
	if err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get cached fundamentals: %w", err)
	}

	if time.Since(entry.StoredAt) > maxAge {
		s.logger.Debug().Str("ticker", ticker).Time("stored_at", entry.StoredAt).Msg("Cached fundamentals stale")
		return nil, false, nil
	}

	return &entry.Payload, true, nil
}

// PutFundamentals stores the payload for a ticker, replacing any previous
// entry.
func (s *Store) PutFundamentals(ctx context.Context, ticker string, payload *models.FundamentalsPayload) error {
	entry := payloadEntry{
		Ticker:   ticker,
		StoredAt: time.Now(),
		Payload:  *payload,
	}
	if err := s.store.Upsert(ticker, &entry); err != nil {
		return fmt.Errorf("failed to cache fundamentals: %w", err)
	}
	s.logger.Debug().Str("ticker", ticker).Msg("Fundamentals cached")
	return nil
}
