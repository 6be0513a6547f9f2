package valuation

import (
	"math"
	"testing"

	"github.com/choulifeisgood/valuation-agent/internal/models"
)

func TestRunDCF_HappyPath(t *testing.T) {
	cfg := defaultAssumptions()
	fin := &models.CompanyFinancials{
		MarketCap:         models.Float(1000),
		SharesOutstanding: models.Float(10),
		Cash:              models.CashFlow{FreeCashFlow: models.Float(100)},
	}

	result := runDCF(cfg, fin)

	if result.WACC == nil {
		t.Fatal("WACC is nil, want a value")
	}
	if result.Degenerate {
		t.Fatal("Degenerate = true, want false")
	}
	if result.IntrinsicValue == nil {
		t.Fatal("IntrinsicValue is nil, want a value")
	}
	if *result.IntrinsicValue <= 0 {
		t.Errorf("IntrinsicValue = %v, want positive", *result.IntrinsicValue)
	}
	if len(result.ProjectedFCF) != cfg.ProjectionYears {
		t.Errorf("ProjectedFCF has %d years, want %d", len(result.ProjectedFCF), cfg.ProjectionYears)
	}
	// No debt and no cash: equity value equals enterprise value.
	if math.Abs(*result.EquityValue-*result.EnterpriseValue) > 1e-9 {
		t.Errorf("EquityValue = %v, EnterpriseValue = %v, want equal", *result.EquityValue, *result.EnterpriseValue)
	}
	if math.Abs(*result.IntrinsicValue-*result.EquityValue/10) > 0.011 {
		t.Errorf("IntrinsicValue = %v, want equity/shares = %v", *result.IntrinsicValue, *result.EquityValue/10)
	}
}

func TestRunDCF_DegeneratesWhenWACCBelowTerminal(t *testing.T) {
	cfg := defaultAssumptions()
	cfg.RiskFreeRate = 0.01
	cfg.EquityRiskPremium = 0.005
	cfg.TerminalGrowth = 0.03

	fin := &models.CompanyFinancials{
		MarketCap:         models.Float(1000),
		SharesOutstanding: models.Float(10),
		Cash:              models.CashFlow{FreeCashFlow: models.Float(100)},
	}

	result := runDCF(cfg, fin)

	if !result.Degenerate {
		t.Error("Degenerate = false, want true when WACC <= terminal growth")
	}
	if result.IntrinsicValue != nil {
		t.Errorf("IntrinsicValue = %v, want nil", *result.IntrinsicValue)
	}
}

func TestRunDCF_RequiresPositiveBaseFCF(t *testing.T) {
	cfg := defaultAssumptions()
	fin := &models.CompanyFinancials{
		MarketCap:         models.Float(1000),
		SharesOutstanding: models.Float(10),
		Cash:              models.CashFlow{FreeCashFlow: models.Float(-50)},
	}

	result := runDCF(cfg, fin)

	if result.IntrinsicValue != nil {
		t.Errorf("IntrinsicValue = %v, want nil for negative base FCF", *result.IntrinsicValue)
	}
	if result.Degenerate {
		t.Error("Degenerate = true, want false")
	}
}

func TestRunDCF_BuildsFCFFWhenCashFlowIncomplete(t *testing.T) {
	cfg := defaultAssumptions()
	fin := &models.CompanyFinancials{
		MarketCap:         models.Float(1000),
		SharesOutstanding: models.Float(10),
		Income:            models.IncomeStatement{EBIT: models.Float(200)},
		Cash: models.CashFlow{
			Depreciation:           models.Float(50),
			CapitalExpenditure:     models.Float(40),
			ChangeInWorkingCapital: models.Float(10),
		},
	}

	result := runDCF(cfg, fin)

	if result.BaseFCF == nil {
		t.Fatal("BaseFCF is nil, want FCFF built from EBIT")
	}
	// 200*(1-0.21) + 50 - 40 - 10 = 158
	if math.Abs(*result.BaseFCF-158) > 1e-9 {
		t.Errorf("BaseFCF = %v, want 158", *result.BaseFCF)
	}
	if result.IntrinsicValue == nil {
		t.Error("IntrinsicValue is nil, want a value from the derived base")
	}
}

func TestBaseFCF_RequiresEBITWithoutCashFlow(t *testing.T) {
	cfg := defaultAssumptions()
	fin := &models.CompanyFinancials{
		Cash: models.CashFlow{Depreciation: models.Float(50)},
	}

	if got := baseFCF(cfg, fin); got != nil {
		t.Errorf("baseFCF = %v, want nil without EBIT or reported FCF", *got)
	}
}

func TestRunDCF_NoMarketCapNoWACC(t *testing.T) {
	cfg := defaultAssumptions()
	fin := &models.CompanyFinancials{
		SharesOutstanding: models.Float(10),
		Cash:              models.CashFlow{FreeCashFlow: models.Float(100)},
	}

	result := runDCF(cfg, fin)

	if result.WACC != nil {
		t.Errorf("WACC = %v, want nil", *result.WACC)
	}
	if result.IntrinsicValue != nil {
		t.Errorf("IntrinsicValue = %v, want nil", *result.IntrinsicValue)
	}
}

func TestGrowthEstimate(t *testing.T) {
	cfg := defaultAssumptions()

	cases := []struct {
		name     string
		earnings *float64
		revenue  *float64
		want     float64
	}{
		{"earnings preferred", models.Float(0.10), models.Float(0.30), 0.10},
		{"revenue fallback", nil, models.Float(0.08), 0.08},
		{"clamped to max", models.Float(0.50), nil, cfg.MaxFCFGrowth},
		{"clamped to min", models.Float(-0.10), nil, cfg.MinFCFGrowth},
		{"conservative fallback without data", nil, nil, cfg.FallbackGrowth},
	}
	for _, tc := range cases {
		fin := &models.CompanyFinancials{
			Metrics: models.KeyRatios{EarningsGrowth: tc.earnings, RevenueGrowth: tc.revenue},
		}
		got := growthEstimate(cfg, fin)
		if got == nil {
			t.Fatalf("%s: growth is nil", tc.name)
		}
		if math.Abs(*got-tc.want) > 1e-9 {
			t.Errorf("%s: growth = %v, want %v", tc.name, *got, tc.want)
		}
	}
}
