package forensic

import (
	"testing"

	"github.com/choulifeisgood/valuation-agent/internal/common"
	"github.com/choulifeisgood/valuation-agent/internal/models"
)

func TestAssess_HealthyCompany(t *testing.T) {
	scorer := NewScorer(common.NewLogger("error"))
	assessment := scorer.Assess(healthyFinancials())

	if assessment.OverallRisk != models.RiskLow {
		t.Errorf("OverallRisk = %s, want LOW", assessment.OverallRisk)
	}
	if len(assessment.Flags) != 0 {
		t.Errorf("Flags = %v, want none", assessment.Flags)
	}
	if assessment.AltmanZ.Zone != models.ZoneSafe {
		t.Errorf("Zone = %s, want SAFE", assessment.AltmanZ.Zone)
	}
	if assessment.PiotroskiF.Rating != models.FScoreStrong {
		t.Errorf("F rating = %s, want STRONG", assessment.PiotroskiF.Rating)
	}
	if assessment.RiskSummary == "" {
		t.Error("RiskSummary is empty")
	}
}

func TestAssess_DistressedCompany(t *testing.T) {
	fin := healthyFinancials()
	fin.Balance.WorkingCapital = models.Float(-100)
	fin.Balance.RetainedEarnings = models.Float(-200)
	fin.Income.EBIT = models.Float(-50)
	fin.MarketCap = models.Float(100)
	fin.Income.Revenue = models.Float(400)
	fin.Balance.StockholdersEquity = models.Float(-100)

	scorer := NewScorer(common.NewLogger("error"))
	assessment := scorer.Assess(fin)

	if assessment.OverallRisk != models.RiskHigh {
		t.Errorf("OverallRisk = %s, want HIGH", assessment.OverallRisk)
	}
	if assessment.CriticalCount() < 2 {
		t.Errorf("CriticalCount = %d, want at least 2 (distress + negative equity)", assessment.CriticalCount())
	}
	if !hasFlag(assessment.Flags, "altman_distress") {
		t.Error("missing altman_distress flag")
	}
	if !hasFlag(assessment.Flags, "negative_equity") {
		t.Error("missing negative_equity flag")
	}
}

func TestAssess_WarningsElevateRisk(t *testing.T) {
	fin := healthyFinancials()
	// A smaller market cap drops the Z-Score into the grey zone, so the
	// safe-and-strong shortcut to LOW does not apply.
	fin.MarketCap = models.Float(400)
	fin.Cash.FreeCashFlow = models.Float(-20)
	fin.Metrics.DebtToEquity = models.Float(3.0)
	fin.Metrics.InterestCoverage = models.Float(1.2)

	scorer := NewScorer(common.NewLogger("error"))
	assessment := scorer.Assess(fin)

	if assessment.AltmanZ.Zone != models.ZoneGrey {
		t.Fatalf("Zone = %s, want GREY", assessment.AltmanZ.Zone)
	}
	if assessment.CriticalCount() != 0 {
		t.Errorf("CriticalCount = %d, want 0", assessment.CriticalCount())
	}
	if assessment.WarningCount() < 2 {
		t.Errorf("WarningCount = %d, want at least 2", assessment.WarningCount())
	}
	if assessment.OverallRisk != models.RiskElevated {
		t.Errorf("OverallRisk = %s, want ELEVATED", assessment.OverallRisk)
	}
	if !hasFlag(assessment.Flags, "altman_grey") {
		t.Error("missing altman_grey flag")
	}
	if !hasFlag(assessment.Flags, "negative_free_cash_flow") {
		t.Error("missing negative_free_cash_flow flag")
	}
	if !hasFlag(assessment.Flags, "high_leverage") {
		t.Error("missing high_leverage flag")
	}
	if !hasFlag(assessment.Flags, "low_interest_coverage") {
		t.Error("missing low_interest_coverage flag")
	}
}

func TestAssess_SafeAndStrongStaysLowDespiteWarnings(t *testing.T) {
	fin := healthyFinancials()
	fin.Cash.FreeCashFlow = models.Float(-20)
	fin.Metrics.DebtToEquity = models.Float(3.0)

	scorer := NewScorer(common.NewLogger("error"))
	assessment := scorer.Assess(fin)

	if assessment.AltmanZ.Zone != models.ZoneSafe {
		t.Fatalf("Zone = %s, want SAFE", assessment.AltmanZ.Zone)
	}
	if assessment.PiotroskiF.Rating != models.FScoreStrong {
		t.Fatalf("F rating = %s, want STRONG", assessment.PiotroskiF.Rating)
	}
	if assessment.WarningCount() < 2 {
		t.Fatalf("WarningCount = %d, want at least 2", assessment.WarningCount())
	}
	// Warnings never outrank a safe zone with strong fundamentals.
	if assessment.OverallRisk != models.RiskLow {
		t.Errorf("OverallRisk = %s, want LOW", assessment.OverallRisk)
	}
}

func TestCollectFlags_DecliningRevenue(t *testing.T) {
	fin := healthyFinancials()
	fin.Income.Revenue = models.Float(600)

	scorer := NewScorer(common.NewLogger("error"))
	assessment := scorer.Assess(fin)

	if !hasFlag(assessment.Flags, "declining_revenue") {
		t.Error("missing declining_revenue flag")
	}
}

func TestAssess_EmptySnapshotIsModerate(t *testing.T) {
	scorer := NewScorer(common.NewLogger("error"))
	assessment := scorer.Assess(&models.CompanyFinancials{Ticker: "EMPTY"})

	// No data means no flags: everything degrades to unknown, not to HIGH.
	if assessment.OverallRisk != models.RiskModerate {
		t.Errorf("OverallRisk = %s, want MODERATE", assessment.OverallRisk)
	}
	if len(assessment.Flags) != 0 {
		t.Errorf("Flags = %v, want none", assessment.Flags)
	}
}

func hasFlag(flags []models.RiskFlag, code string) bool {
	for _, f := range flags {
		if f.Code == code {
			return true
		}
	}
	return false
}
