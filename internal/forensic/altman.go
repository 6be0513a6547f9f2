// Package forensic scores financial health and earnings quality: Altman
// Z-Score, Piotroski F-Score, Beneish M-Score, and the risk flag table.
package forensic

import (
	"fmt"

	"github.com/choulifeisgood/valuation-agent/internal/models"
)

// Z-Score zone boundaries for public manufacturers, per Altman (1968).
const (
	zoneDistressBelow = 1.81
	zoneGreyBelow     = 2.99
)

// ZoneForScore classifies a Z-Score into its zone.
func ZoneForScore(z float64) models.AltmanZone {
	switch {
	case z < zoneDistressBelow:
		return models.ZoneDistress
	case z < zoneGreyBelow:
		return models.ZoneGrey
	default:
		return models.ZoneSafe
	}
}

// AltmanZScore computes the five-ratio bankruptcy score. All five components
// must be computable; otherwise the score is nil and the zone UNKNOWN.
func AltmanZScore(fin *models.CompanyFinancials) models.AltmanResult {
	unknown := models.AltmanResult{
		Zone:           models.ZoneUnknown,
		Interpretation: models.ZoneUnknown.Label(),
	}

	ta := fin.Balance.TotalAssets
	if ta == nil || *ta <= 0 {
		return unknown
	}
	tl := fin.Balance.TotalLiabilities
	if tl == nil || *tl <= 0 {
		return unknown
	}

	if !models.Avail(
		fin.Balance.WorkingCapital,
		fin.Balance.RetainedEarnings,
		fin.Income.EBIT,
		fin.MarketCap,
		fin.Income.Revenue,
	) {
		return unknown
	}

	a := *fin.Balance.WorkingCapital / *ta
	b := *fin.Balance.RetainedEarnings / *ta
	c := *fin.Income.EBIT / *ta
	d := *fin.MarketCap / *tl
	e := *fin.Income.Revenue / *ta

	z := 1.2*a + 1.4*b + 3.3*c + 0.6*d + 1.0*e
	zone := ZoneForScore(z)

	return models.AltmanResult{
		Score:          models.Round2(models.Float(z)),
		Zone:           zone,
		Interpretation: fmt.Sprintf("Z-Score %.2f: %s", z, zone.Label()),
		Components: map[string]float64{
			"working_capital_to_assets":   a,
			"retained_earnings_to_assets": b,
			"ebit_to_assets":              c,
			"market_cap_to_liabilities":   d,
			"revenue_to_assets":           e,
		},
	}
}
