package forensic

import (
	"fmt"

	"github.com/choulifeisgood/valuation-agent/internal/models"
)

const (
	highLeverageAbove     = 2.0
	lowInterestCoverBelow = 2.0
)

// collectFlags runs the rule table over the snapshot and the three scores.
func collectFlags(fin *models.CompanyFinancials, altman models.AltmanResult, piotroski models.PiotroskiResult, beneish models.BeneishResult) []models.RiskFlag {
	var flags []models.RiskFlag

	if altman.Zone == models.ZoneDistress {
		flags = append(flags, models.RiskFlag{
			Severity: models.SeverityCritical,
			Code:     "altman_distress",
			Message:  fmt.Sprintf("Altman Z-Score %.2f is in the distress zone", models.Val(altman.Score)),
		})
	}

	if altman.Zone == models.ZoneGrey {
		flags = append(flags, models.RiskFlag{
			Severity: models.SeverityWarning,
			Code:     "altman_grey",
			Message:  fmt.Sprintf("Altman Z-Score %.2f is in the grey zone", models.Val(altman.Score)),
		})
	}

	if eq := fin.Balance.StockholdersEquity; eq != nil && *eq <= 0 {
		flags = append(flags, models.RiskFlag{
			Severity: models.SeverityCritical,
			Code:     "negative_equity",
			Message:  "Stockholders' equity is negative",
		})
	}

	if beneish.RedFlag {
		flags = append(flags, models.RiskFlag{
			Severity: models.SeverityWarning,
			Code:     "beneish_red_flag",
			Message:  fmt.Sprintf("Beneish M-Score %.2f exceeds the manipulation threshold", models.Val(beneish.Score)),
		})
	}

	if piotroski.Rating == models.FScoreWeak && piotroski.Score != nil {
		flags = append(flags, models.RiskFlag{
			Severity: models.SeverityWarning,
			Code:     "weak_fundamentals",
			Message:  fmt.Sprintf("Piotroski F-Score %d/%d indicates weak financial quality", *piotroski.Score, piotroski.MaxScore),
		})
	}

	if fcf := fin.Cash.FreeCashFlow; fcf != nil && *fcf < 0 {
		flags = append(flags, models.RiskFlag{
			Severity: models.SeverityWarning,
			Code:     "negative_free_cash_flow",
			Message:  "Free cash flow is negative",
		})
	}

	if de := fin.Metrics.DebtToEquity; de != nil && *de > highLeverageAbove {
		flags = append(flags, models.RiskFlag{
			Severity: models.SeverityWarning,
			Code:     "high_leverage",
			Message:  fmt.Sprintf("Debt-to-equity of %.1f exceeds %.1f", *de, highLeverageAbove),
		})
	}

	if ic := fin.Metrics.InterestCoverage; ic != nil && *ic < lowInterestCoverBelow {
		flags = append(flags, models.RiskFlag{
			Severity: models.SeverityWarning,
			Code:     "low_interest_coverage",
			Message:  fmt.Sprintf("Interest coverage of %.1fx is below %.1fx", *ic, lowInterestCoverBelow),
		})
	}

	if models.Avail(fin.Income.Revenue, fin.Income.RevenuePrev) && *fin.Income.RevenuePrev > 0 && *fin.Income.Revenue < *fin.Income.RevenuePrev {
		flags = append(flags, models.RiskFlag{
			Severity: models.SeverityWarning,
			Code:     "declining_revenue",
			Message:  "Revenue declined year over year",
		})
	}

	return flags
}

// overallRisk maps the assessment pieces onto the four-level scale. A
// critical flag or a distress zone dominates everything else; a safe zone
// with strong fundamentals resolves LOW regardless of warning count.
func overallRisk(assessment *models.RiskAssessment) models.RiskLevel {
	if assessment.CriticalCount() > 0 || assessment.AltmanZ.Zone == models.ZoneDistress {
		return models.RiskHigh
	}
	if assessment.AltmanZ.Zone == models.ZoneSafe && assessment.PiotroskiF.Rating == models.FScoreStrong {
		return models.RiskLow
	}
	if assessment.WarningCount() >= 2 {
		return models.RiskElevated
	}
	return models.RiskModerate
}
