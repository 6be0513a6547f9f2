package forensic

import (
	"fmt"

	"github.com/choulifeisgood/valuation-agent/internal/common"
	"github.com/choulifeisgood/valuation-agent/internal/models"
)

// Scorer runs the full forensic assessment over a snapshot.
type Scorer struct {
	logger *common.Logger
}

// NewScorer creates a forensic scorer
func NewScorer(logger *common.Logger) *Scorer {
	return &Scorer{logger: logger}
}

// Assess computes the three scores, the flag table, and the overall risk
// level. It never fails: unavailable inputs degrade individual scores to
// their unknown states.
func (s *Scorer) Assess(fin *models.CompanyFinancials) *models.RiskAssessment {
	assessment := &models.RiskAssessment{
		AltmanZ:    AltmanZScore(fin),
		PiotroskiF: PiotroskiFScore(fin),
		Beneish:    BeneishMScore(fin),
	}

	assessment.Flags = collectFlags(fin, assessment.AltmanZ, assessment.PiotroskiF, assessment.Beneish)
	assessment.OverallRisk = overallRisk(assessment)
	assessment.RiskSummary = riskSummary(assessment)

	s.logger.Debug().
		Str("ticker", fin.Ticker).
		Str("zone", string(assessment.AltmanZ.Zone)).
		Str("f_rating", string(assessment.PiotroskiF.Rating)).
		Str("overall", string(assessment.OverallRisk)).
		Int("flags", len(assessment.Flags)).
		Msg("Forensic assessment complete")

	return assessment
}

func riskSummary(a *models.RiskAssessment) string {
	summary := a.OverallRisk.Label()
	if n := len(a.Flags); n > 0 {
		summary = fmt.Sprintf("%s. %d flag(s): %d critical, %d warning.",
			summary, n, a.CriticalCount(), a.WarningCount())
	}
	return summary
}
