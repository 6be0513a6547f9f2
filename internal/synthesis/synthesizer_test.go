package synthesis

import (
	"strings"
	"testing"

	"github.com/choulifeisgood/valuation-agent/internal/common"
	"github.com/choulifeisgood/valuation-agent/internal/models"
)

func composeFixtures() (*models.CompanyFinancials, *models.RiskAssessment, *models.ValuationResult) {
	fin := &models.CompanyFinancials{
		Ticker:       "AAPL",
		Name:         "Apple Inc",
		Sector:       "Technology",
		Currency:     "USD",
		CurrentPrice: 150,
		MarketCap:    models.Float(2_400_000_000_000),
		Metrics: models.KeyRatios{
			PE:           models.Float(25.1234),
			ProfitMargin: models.Float(0.253),
		},
	}

	risk := &models.RiskAssessment{
		AltmanZ:     models.AltmanResult{Zone: models.ZoneSafe, Interpretation: "Z-Score 4.10: Safe zone - low bankruptcy risk"},
		PiotroskiF:  models.PiotroskiResult{Rating: models.FScoreStrong, Interpretation: "F-Score 8/9: Strong financial quality"},
		Beneish:     models.BeneishResult{Interpretation: "M-Score -2.40: below manipulation threshold"},
		OverallRisk: models.RiskLow,
	}

	val := &models.ValuationResult{
		DCF:      models.DCFResult{IntrinsicValue: models.Float(180), WACC: models.Float(0.09)},
		Relative: models.RelativeResult{PEImplied: models.Float(165)},
		FairValue: models.FairValueRange{
			Low:  models.Float(150.75),
			Mid:  models.Float(172.5),
			High: models.Float(194.25),
		},
		AppliedWeights: models.MethodWeights{DCF: 0.5, Relative: 0.5},
	}
	return fin, risk, val
}

func TestCompose_FullReport(t *testing.T) {
	synth := NewSynthesizer(common.NewDefaultConfig().Valuation, common.NewLogger("error"))
	fin, risk, val := composeFixtures()

	report := synth.Compose(fin, risk, val)

	if report.ID == "" {
		t.Error("ID is empty")
	}
	if report.BasicInfo.Ticker != "AAPL" {
		t.Errorf("Ticker = %s, want AAPL", report.BasicInfo.Ticker)
	}
	if report.BasicInfo.AnalysisDate.IsZero() {
		t.Error("AnalysisDate is zero")
	}
	if report.Recommendation.Rating != models.RatingBuy {
		t.Errorf("Rating = %s, want BUY at +15%% upside", report.Recommendation.Rating)
	}
	if report.Methodology.DCFWeight != 0.5 || report.Methodology.RelativeWeight != 0.5 {
		t.Errorf("Methodology weights = %v/%v, want 0.5/0.5",
			report.Methodology.DCFWeight, report.Methodology.RelativeWeight)
	}
	if report.Disclaimer != Disclaimer {
		t.Error("Disclaimer not attached")
	}

	// Ratios surface as rounded percentages.
	if pm := report.KeyMetrics.Profitability.ProfitMargin; pm == nil || *pm != 25.3 {
		t.Errorf("ProfitMargin = %v, want 25.3", pm)
	}
	if pe := report.KeyMetrics.Valuation.PE; pe == nil || *pe != 25.12 {
		t.Errorf("PE = %v, want 25.12", pe)
	}
	if wacc := report.Valuation.DCF.WACCPct; wacc == nil || *wacc != 9.0 {
		t.Errorf("WACCPct = %v, want 9.0", wacc)
	}
}

func TestCompose_SummaryLayout(t *testing.T) {
	synth := NewSynthesizer(common.NewDefaultConfig().Valuation, common.NewLogger("error"))
	fin, risk, val := composeFixtures()

	report := synth.Compose(fin, risk, val)
	summary := report.AnalysisSummary

	for _, want := range []string{
		"# Apple Inc (AAPL)",
		"## Recommendation: Buy",
		"Target price 172.50 vs current 150.00 (+15.0%)",
		"- DCF intrinsic value: 180.00",
		"- Fair value range: 150.75 - 194.25 (mid 172.50)",
		"- Weights: DCF 50% / Relative 50%",
		"## Risk: LOW",
		Disclaimer,
	} {
		if !strings.Contains(summary, want) {
			t.Errorf("summary missing %q", want)
		}
	}
}

func TestCompose_UnresolvedValuation(t *testing.T) {
	synth := NewSynthesizer(common.NewDefaultConfig().Valuation, common.NewLogger("error"))
	fin, risk, _ := composeFixtures()
	val := &models.ValuationResult{}

	report := synth.Compose(fin, risk, val)

	if report.Recommendation.Rating != models.RatingUnknown {
		t.Errorf("Rating = %s, want UNKNOWN", report.Recommendation.Rating)
	}
	if !strings.Contains(report.AnalysisSummary, "Fair value range: unavailable") {
		t.Error("summary missing the unavailable fair-value line")
	}
}
