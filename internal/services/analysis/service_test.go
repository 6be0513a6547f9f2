package analysis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/choulifeisgood/valuation-agent/internal/common"
	"github.com/choulifeisgood/valuation-agent/internal/models"
)

// --- Mock market data client ---

type mockMarketClient struct {
	payload      *models.FundamentalsPayload
	payloadErr   error
	quote        *models.RealTimeQuote
	quoteErr     error
	fundamentals int
}

func (m *mockMarketClient) GetFundamentals(_ context.Context, _ string) (*models.FundamentalsPayload, error) {
	m.fundamentals++
	return m.payload, m.payloadErr
}

func (m *mockMarketClient) GetRealTimeQuote(_ context.Context, _ string) (*models.RealTimeQuote, error) {
	return m.quote, m.quoteErr
}

// --- Mock peer provider ---

type mockPeerProvider struct {
	multiples *models.PeerMultiples
	err       error
}

func (m *mockPeerProvider) GetPeerMultiples(_ context.Context, _, _, _ string) (*models.PeerMultiples, error) {
	return m.multiples, m.err
}

// --- Mock cache store ---

type mockCache struct {
	payload *models.FundamentalsPayload
	hit     bool
}

func (m *mockCache) GetFundamentals(_ context.Context, _ string, _ time.Duration) (*models.FundamentalsPayload, bool, error) {
	return m.payload, m.hit, nil
}

func (m *mockCache) PutFundamentals(_ context.Context, _ string, payload *models.FundamentalsPayload) error {
	m.payload = payload
	return nil
}

func (m *mockCache) Close() error { return nil }

// --- Fixtures ---

func analyzePayload() *models.FundamentalsPayload {
	p := &models.FundamentalsPayload{}
	p.General.Code = "TEST"
	p.General.Name = "Test Corp"
	p.General.Sector = "Technology"
	p.SharesStats.SharesOutstanding = models.FlexOf(100)
	p.Highlights.MarketCapitalization = models.FlexOf(10000)

	p.Financials.IncomeStatement.Yearly = map[string]models.IncomeStatementRaw{
		"2024-12-31": {
			TotalRevenue: models.FlexOf(800),
			NetIncome:    models.FlexOf(100),
		},
	}
	p.Financials.CashFlow.Yearly = map[string]models.CashFlowRaw{
		"2024-12-31": {
			TotalCashFromOperatingActivity: models.FlexOf(130),
			FreeCashFlow:                   models.FlexOf(90),
		},
	}
	return p
}

func newTestService(market *mockMarketClient, peers *mockPeerProvider, cache *mockCache) *Service {
	return NewService(market, peers, cache, common.NewDefaultConfig(), common.NewLogger("error"))
}

// --- Tests ---

func TestAnalyze_EndToEnd(t *testing.T) {
	market := &mockMarketClient{
		payload: analyzePayload(),
		quote:   &models.RealTimeQuote{Code: "TEST.US", Close: models.FlexOf(50)},
	}
	peers := &mockPeerProvider{multiples: &models.PeerMultiples{
		PE:     models.Float(20),
		Source: "peer_analysis",
	}}
	cache := &mockCache{}

	svc := newTestService(market, peers, cache)
	report, err := svc.Analyze(context.Background(), "TEST")
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	if report.ID == "" {
		t.Error("report ID is empty")
	}
	if report.BasicInfo.Ticker != "TEST" {
		t.Errorf("Ticker = %s, want TEST", report.BasicInfo.Ticker)
	}
	if report.Recommendation.Rating == "" {
		t.Error("Rating is empty")
	}
	if report.AnalysisSummary == "" {
		t.Error("AnalysisSummary is empty")
	}
	// Fetched payload should have been cached for next time.
	if cache.payload == nil {
		t.Error("payload was not written to the cache")
	}

	// The report stays addressable by ID and by ticker for this process.
	got, err := svc.GetReport(context.Background(), report.ID)
	if err != nil || got.ID != report.ID {
		t.Errorf("GetReport(%s) = %v, %v", report.ID, got, err)
	}
	latest, err := svc.LatestReport(context.Background(), "test")
	if err != nil || latest.ID != report.ID {
		t.Errorf("LatestReport(test) = %v, %v", latest, err)
	}
}

func TestAnalyze_CacheHitSkipsFetch(t *testing.T) {
	market := &mockMarketClient{
		quote: &models.RealTimeQuote{Code: "TEST.US", Close: models.FlexOf(50)},
	}
	cache := &mockCache{payload: analyzePayload(), hit: true}

	svc := newTestService(market, &mockPeerProvider{err: errors.New("no peers")}, cache)
	_, err := svc.Analyze(context.Background(), "TEST")
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	if market.fundamentals != 0 {
		t.Errorf("fundamentals fetched %d times, want 0 on cache hit", market.fundamentals)
	}
}

func TestAnalyze_PeerFailureDegradesToDCF(t *testing.T) {
	market := &mockMarketClient{
		payload: analyzePayload(),
		quote:   &models.RealTimeQuote{Code: "TEST.US", Close: models.FlexOf(50)},
	}
	peers := &mockPeerProvider{err: errors.New("provider down")}

	svc := newTestService(market, peers, &mockCache{})
	report, err := svc.Analyze(context.Background(), "TEST")
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	if report.Methodology.RelativeWeight != 0 {
		t.Errorf("RelativeWeight = %v, want 0 when peers fail", report.Methodology.RelativeWeight)
	}
	if report.Methodology.DCFWeight != 1 {
		t.Errorf("DCFWeight = %v, want 1", report.Methodology.DCFWeight)
	}
}

func TestAnalyze_QuoteFailure(t *testing.T) {
	market := &mockMarketClient{
		payload:  analyzePayload(),
		quoteErr: errors.New("endpoint down"),
	}

	svc := newTestService(market, &mockPeerProvider{}, &mockCache{})
	_, err := svc.Analyze(context.Background(), "TEST")
	if err == nil {
		t.Fatal("Analyze succeeded, want error when the quote fetch fails")
	}
}

func TestQuickQuote(t *testing.T) {
	market := &mockMarketClient{
		quote: &models.RealTimeQuote{
			Code:      "TEST.US",
			Timestamp: 1756600000,
			Close:     models.FlexOf(51.2),
			Change:    models.FlexOf(1.2),
			ChangePct: models.FlexOf(2.4),
			Volume:    models.FlexOf(1_000_000),
		},
	}
	cache := &mockCache{payload: analyzePayload(), hit: true}

	svc := newTestService(market, &mockPeerProvider{}, cache)
	q, err := svc.QuickQuote(context.Background(), "TEST")
	if err != nil {
		t.Fatalf("QuickQuote failed: %v", err)
	}

	if q.Price != 51.2 {
		t.Errorf("Price = %v, want 51.2", q.Price)
	}
	if q.Volume == nil || *q.Volume != 1_000_000 {
		t.Errorf("Volume = %v, want 1000000", q.Volume)
	}
	if q.Name != "Test Corp" {
		t.Errorf("Name = %q, want from cached fundamentals", q.Name)
	}
	if q.Timestamp.IsZero() {
		t.Error("Timestamp is zero")
	}
}

func TestQuickQuote_NoPrice(t *testing.T) {
	market := &mockMarketClient{quote: &models.RealTimeQuote{Code: "TEST.US"}}

	svc := newTestService(market, &mockPeerProvider{}, &mockCache{})
	_, err := svc.QuickQuote(context.Background(), "TEST")
	if !errors.Is(err, models.ErrDataUnavailable) {
		t.Errorf("err = %v, want ErrDataUnavailable", err)
	}
}

func TestGetReport_UnknownID(t *testing.T) {
	svc := newTestService(&mockMarketClient{}, &mockPeerProvider{}, &mockCache{})

	if _, err := svc.GetReport(context.Background(), "missing"); err == nil {
		t.Error("GetReport succeeded for a missing ID, want error")
	}
	if _, err := svc.LatestReport(context.Background(), "NOPE"); err == nil {
		t.Error("LatestReport succeeded for an unanalyzed ticker, want error")
	}
}
