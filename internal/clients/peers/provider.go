// Package peers supplies sector peer multiples for relative valuation.
package peers

import (
	"context"
	"strings"

	"github.com/choulifeisgood/valuation-agent/internal/common"
	"github.com/choulifeisgood/valuation-agent/internal/interfaces"
	"github.com/choulifeisgood/valuation-agent/internal/models"
)

// Sanity bands for peer multiples. Values outside these ranges are
// distortions (loss years, near-zero denominators) and are excluded from
// the aggregate.
const (
	maxSanePE       = 100.0
	maxSaneEVEBITDA = 50.0
	maxSaneEVRev    = 20.0
	maxSanePB       = 50.0
)

// sectorPeers maps a sector to a representative peer set.
var sectorPeers = map[string][]string{
	"Technology":             {"AAPL", "MSFT", "GOOGL", "META", "ORCL", "CRM"},
	"Communication Services": {"GOOGL", "META", "NFLX", "DIS", "TMUS", "VZ"},
	"Consumer Cyclical":      {"AMZN", "TSLA", "HD", "MCD", "NKE", "SBUX"},
	"Consumer Defensive":     {"WMT", "PG", "KO", "PEP", "COST", "CL"},
	"Healthcare":             {"JNJ", "UNH", "LLY", "PFE", "ABBV", "MRK"},
	"Financial Services":     {"JPM", "BAC", "WFC", "GS", "MS", "BLK"},
	"Industrials":            {"CAT", "HON", "UPS", "BA", "GE", "DE"},
	"Energy":                 {"XOM", "CVX", "COP", "SLB", "EOG", "PSX"},
	"Utilities":              {"NEE", "DUK", "SO", "D", "AEP", "EXC"},
	"Basic Materials":        {"LIN", "APD", "SHW", "FCX", "NEM", "DOW"},
	"Real Estate":            {"PLD", "AMT", "EQIX", "SPG", "O", "PSA"},
}

// marketAverages is the broad-market fallback when no sector peers resolve.
var marketAverages = models.PeerMultiples{
	PE:          models.Float(20.0),
	EVToEBITDA:  models.Float(13.0),
	EVToRevenue: models.Float(3.0),
	PB:          models.Float(3.5),
	Source:      "market_average",
}

// Provider aggregates peer multiples via the market data client.
type Provider struct {
	client interfaces.MarketDataClient
	logger *common.Logger
}

var _ interfaces.PeerProvider = (*Provider)(nil)

// NewProvider creates a peer multiples provider
func NewProvider(client interfaces.MarketDataClient, logger *common.Logger) *Provider {
	return &Provider{client: client, logger: logger}
}

// GetPeerMultiples fetches the sector peer set, filters each peer's
// multiples through the sanity bands, and returns harmonic means. Falls
// back to broad-market averages when the sector is unknown or no peer
// produced a usable multiple.
func (p *Provider) GetPeerMultiples(ctx context.Context, sector, industry, exclude string) (*models.PeerMultiples, error) {
	tickers := sectorPeers[sector]
	if len(tickers) == 0 {
		p.logger.Debug().Str("sector", sector).Msg("No peer table for sector, using market averages")
		avg := marketAverages
		return &avg, nil
	}

	var pes, evEbitdas, evRevs, pbs []float64
	peerCount := 0

	for _, ticker := range tickers {
		if strings.EqualFold(ticker, baseTicker(exclude)) {
			continue
		}

		payload, err := p.client.GetFundamentals(ctx, ticker)
		if err != nil {
			p.logger.Warn().Err(err).Str("peer", ticker).Msg("Skipping peer, fundamentals unavailable")
			continue
		}
		peerCount++

		appendSane(&pes, payload.Valuation.TrailingPE.Ptr(), maxSanePE)
		appendSane(&evEbitdas, payload.Valuation.EnterpriseValueEbitda.Ptr(), maxSaneEVEBITDA)
		appendSane(&evRevs, payload.Valuation.EnterpriseValueRevenue.Ptr(), maxSaneEVRev)
		appendSane(&pbs, payload.Valuation.PriceBookMRQ.Ptr(), maxSanePB)
	}

	result := &models.PeerMultiples{
		PE:          harmonicMean(pes),
		EVToEBITDA:  harmonicMean(evEbitdas),
		EVToRevenue: harmonicMean(evRevs),
		PB:          harmonicMean(pbs),
		PeerCount:   peerCount,
		Source:      "peer_analysis",
	}

	if result.PE == nil && result.EVToEBITDA == nil && result.EVToRevenue == nil && result.PB == nil {
		p.logger.Debug().Str("sector", sector).Msg("No usable peer multiples, using market averages")
		avg := marketAverages
		return &avg, nil
	}

	p.logger.Debug().
		Str("sector", sector).
		Int("peers", peerCount).
		Msg("Peer multiples aggregated")

	return result, nil
}

// appendSane keeps v when it is present, positive, and inside the band.
func appendSane(dst *[]float64, v *float64, max float64) {
	if v == nil || *v <= 0 || *v >= max {
		return
	}
	*dst = append(*dst, *v)
}

// harmonicMean dampens the pull of outlier multiples better than an
// arithmetic mean. Returns nil for an empty sample.
func harmonicMean(values []float64) *float64 {
	if len(values) == 0 {
		return nil
	}
	sum := 0.0
	for _, v := range values {
		sum += 1 / v
	}
	return models.Float(float64(len(values)) / sum)
}

// baseTicker strips an exchange suffix so AAPL.US matches AAPL.
func baseTicker(ticker string) string {
	base, _, _ := strings.Cut(strings.ToUpper(ticker), ".")
	return base
}
