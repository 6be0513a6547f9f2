// Package synthesis turns the forensic and valuation outputs into the final
// report: rating, narrative, key metrics, and summary.
package synthesis

import (
	"fmt"

	"github.com/choulifeisgood/valuation-agent/internal/models"
)

// Upside thresholds (in percent) for the rating ladder. The ladder is
// monotonic: a higher upside never yields a worse rating.
const (
	strongBuyAbove  = 30.0
	buyAbove        = 15.0
	accumulateAbove = 5.0
	holdAbove       = -5.0
	reduceAbove     = -15.0
)

// RatingForUpside maps an upside percentage onto the rating scale. A nil
// upside (unresolved fair value) yields UNKNOWN rather than a default hold.
func RatingForUpside(upsidePct *float64) models.Rating {
	if upsidePct == nil {
		return models.RatingUnknown
	}
	switch {
	case *upsidePct >= strongBuyAbove:
		return models.RatingStrongBuy
	case *upsidePct >= buyAbove:
		return models.RatingBuy
	case *upsidePct >= accumulateAbove:
		return models.RatingAccumulate
	case *upsidePct >= holdAbove:
		return models.RatingHold
	case *upsidePct >= reduceAbove:
		return models.RatingReduce
	default:
		return models.RatingSell
	}
}

// buildRecommendation derives the verdict from the fair-value range and the
// risk level.
func buildRecommendation(fin *models.CompanyFinancials, fairValue models.FairValueRange, risk models.RiskLevel) models.Recommendation {
	rec := models.Recommendation{
		CurrentPrice: fin.CurrentPrice,
	}

	if fairValue.Available() && fin.CurrentPrice > 0 {
		rec.TargetPrice = fairValue.Mid
		rec.UpsidePct = models.Round1(models.Float((*fairValue.Mid/fin.CurrentPrice - 1) * 100))
	}

	rec.Rating = RatingForUpside(rec.UpsidePct)
	rec.Description = describe(rec, risk)
	return rec
}

// describe renders the narrative for a (rating, risk) pair from fixed
// templates.
func describe(rec models.Recommendation, risk models.RiskLevel) string {
	base := ratingNarrative(rec)
	return fmt.Sprintf("%s %s", base, riskNarrative(risk))
}

func ratingNarrative(rec models.Recommendation) string {
	if rec.UpsidePct == nil {
		return "Insufficient data to estimate a fair value; no rating is assigned."
	}

	upside := *rec.UpsidePct
	switch rec.Rating {
	case models.RatingStrongBuy:
		return fmt.Sprintf("Shares trade well below estimated fair value (upside %.1f%%); the margin of safety is substantial.", upside)
	case models.RatingBuy:
		return fmt.Sprintf("Shares trade below estimated fair value (upside %.1f%%).", upside)
	case models.RatingAccumulate:
		return fmt.Sprintf("Shares trade modestly below estimated fair value (upside %.1f%%); gradual accumulation is reasonable.", upside)
	case models.RatingHold:
		return fmt.Sprintf("Shares trade near estimated fair value (%.1f%%).", upside)
	case models.RatingReduce:
		return fmt.Sprintf("Shares trade above estimated fair value (downside %.1f%%); trimming exposure is reasonable.", -upside)
	case models.RatingSell:
		return fmt.Sprintf("Shares trade well above estimated fair value (downside %.1f%%).", -upside)
	case models.RatingUnknown:
		return "Insufficient data to estimate a fair value; no rating is assigned."
	}
	panic(fmt.Sprintf("unhandled Rating %q", string(rec.Rating)))
}

func riskNarrative(risk models.RiskLevel) string {
	switch risk {
	case models.RiskLow:
		return "Forensic indicators are sound."
	case models.RiskModerate:
		return "Forensic indicators warrant routine monitoring."
	case models.RiskElevated:
		return "Multiple forensic warnings suggest added caution with position sizing."
	case models.RiskHigh:
		return "Forensic indicators show material distress; any position carries elevated risk of permanent loss."
	}
	panic(fmt.Sprintf("unhandled RiskLevel %q", string(risk)))
}
