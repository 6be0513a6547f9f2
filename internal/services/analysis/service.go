// Package analysis orchestrates the valuation pipeline: fetch, normalize,
// score and value concurrently, then synthesize the report.
package analysis

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/choulifeisgood/valuation-agent/internal/common"
	"github.com/choulifeisgood/valuation-agent/internal/forensic"
	"github.com/choulifeisgood/valuation-agent/internal/interfaces"
	"github.com/choulifeisgood/valuation-agent/internal/models"
	"github.com/choulifeisgood/valuation-agent/internal/normalize"
	"github.com/choulifeisgood/valuation-agent/internal/synthesis"
	"github.com/choulifeisgood/valuation-agent/internal/valuation"
)

// Service implements the AnalysisService interface
type Service struct {
	market     interfaces.MarketDataClient
	peers      interfaces.PeerProvider
	cache      interfaces.CacheStore
	normalizer *normalize.Normalizer
	scorer     *forensic.Scorer
	engine     *valuation.Engine
	synth      *synthesis.Synthesizer
	cacheTTL   time.Duration
	logger     *common.Logger

	// Reports live in memory only for the process lifetime.
	mu       sync.RWMutex
	byID     map[string]*models.ValuationReport
	byTicker map[string]*models.ValuationReport
}

var _ interfaces.AnalysisService = (*Service)(nil)

// NewService creates an analysis service
func NewService(
	market interfaces.MarketDataClient,
	peers interfaces.PeerProvider,
	cache interfaces.CacheStore,
	config *common.Config,
	logger *common.Logger,
) *Service {
	return &Service{
		market:     market,
		peers:      peers,
		cache:      cache,
		normalizer: normalize.New(logger),
		scorer:     forensic.NewScorer(logger),
		engine:     valuation.NewEngine(config.Valuation, logger),
		synth:      synthesis.NewSynthesizer(config.Valuation, logger),
		cacheTTL:   config.Storage.GetCacheTTL(),
		logger:     logger,
		byID:       make(map[string]*models.ValuationReport),
		byTicker:   make(map[string]*models.ValuationReport),
	}
}

// Analyze runs the full pipeline for a ticker.
func (s *Service) Analyze(ctx context.Context, ticker string) (*models.ValuationReport, error) {
	started := time.Now()

	var payload *models.FundamentalsPayload
	var quote *models.RealTimeQuote

	// Fundamentals and the quote come from independent endpoints.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		payload, err = s.fetchFundamentals(gctx, ticker)
		return err
	})
	g.Go(func() error {
		var err error
		quote, err = s.market.GetRealTimeQuote(gctx, ticker)
		if err != nil {
			return fmt.Errorf("fetch quote for %s: %w", ticker, err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	fin, err := s.normalizer.Normalize(payload, quote)
	if err != nil {
		return nil, err
	}

	// The forensic scorer and the valuation engine are independent; a gap
	// on one side never degrades the other.
	var risk *models.RiskAssessment
	var val *models.ValuationResult

	g, gctx = errgroup.WithContext(ctx)
	g.Go(func() error {
		risk = s.scorer.Assess(fin)
		return nil
	})
	g.Go(func() error {
		peerMultiples, err := s.peers.GetPeerMultiples(gctx, fin.Sector, fin.Industry, fin.Ticker)
		if err != nil {
			s.logger.Warn().Err(err).Str("ticker", ticker).Msg("Peer multiples unavailable, valuing on DCF alone")
			peerMultiples = nil
		}
		val = s.engine.Run(fin, peerMultiples)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := s.synth.Compose(fin, risk, val)
	s.remember(report)

	s.logger.Info().
		Str("ticker", fin.Ticker).
		Str("rating", string(report.Recommendation.Rating)).
		Dur("elapsed", time.Since(started)).
		Msg("Analysis complete")

	return report, nil
}

// fetchFundamentals serves from the cache when fresh, otherwise fetches and
// repopulates. Cache failures degrade to a direct fetch.
func (s *Service) fetchFundamentals(ctx context.Context, ticker string) (*models.FundamentalsPayload, error) {
	cached, hit, err := s.cache.GetFundamentals(ctx, ticker, s.cacheTTL)
	if err != nil {
		s.logger.Warn().Err(err).Str("ticker", ticker).Msg("Fundamentals cache read failed")
	}
	if hit {
		s.logger.Debug().Str("ticker", ticker).Msg("Fundamentals cache hit")
		return cached, nil
	}

	payload, err := s.market.GetFundamentals(ctx, ticker)
	if err != nil {
		return nil, fmt.Errorf("fetch fundamentals for %s: %w", ticker, err)
	}

	if err := s.cache.PutFundamentals(ctx, ticker, payload); err != nil {
		s.logger.Warn().Err(err).Str("ticker", ticker).Msg("Fundamentals cache write failed")
	}

	return payload, nil
}

// QuickQuote returns the latest price snapshot without running the full
// pipeline. Identity fields fill in from the fundamentals cache when a
// fresh entry happens to exist.
func (s *Service) QuickQuote(ctx context.Context, ticker string) (*models.QuickQuote, error) {
	quote, err := s.market.GetRealTimeQuote(ctx, ticker)
	if err != nil {
		return nil, fmt.Errorf("fetch quote for %s: %w", ticker, err)
	}

	price := quote.Close.Ptr()
	if price == nil || *price <= 0 {
		price = quote.PreviousClose.Ptr()
	}
	if price == nil || *price <= 0 {
		return nil, fmt.Errorf("quote for %s: %w", ticker, models.ErrDataUnavailable)
	}

	q := &models.QuickQuote{
		Ticker:    quote.Code,
		Price:     *price,
		Change:    quote.Change.Ptr(),
		ChangePct: quote.ChangePct.Ptr(),
		Timestamp: time.Unix(quote.Timestamp, 0).UTC(),
	}
	if v := quote.Volume.Ptr(); v != nil {
		vol := int64(*v)
		q.Volume = &vol
	}
	if quote.Timestamp == 0 {
		q.Timestamp = time.Now().UTC()
	}

	if cached, hit, err := s.cache.GetFundamentals(ctx, ticker, s.cacheTTL); err == nil && hit {
		q.Name = cached.General.Name
		q.MarketCap = cached.Highlights.MarketCapitalization.Ptr()
	}

	return q, nil
}

// remember keeps the report addressable by ID and ticker for the rest of
// the process lifetime.
func (s *Service) remember(report *models.ValuationReport) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byID[report.ID] = report
	s.byTicker[report.BasicInfo.Ticker] = report
}

// GetReport retrieves a report generated earlier in this process by ID.
func (s *Service) GetReport(ctx context.Context, id string) (*models.ValuationReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	report, ok := s.byID[id]
	if !ok {
		return nil, fmt.Errorf("report '%s' not found", id)
	}
	return report, nil
}

// LatestReport retrieves the most recent in-memory report for a ticker.
func (s *Service) LatestReport(ctx context.Context, ticker string) (*models.ValuationReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	report, ok := s.byTicker[strings.ToUpper(strings.TrimSpace(ticker))]
	if !ok {
		return nil, fmt.Errorf("no reports for '%s'", ticker)
	}
	return report, nil
}
