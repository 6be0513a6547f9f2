package synthesis

import (
	"fmt"
	"strings"

	"github.com/choulifeisgood/valuation-agent/internal/models"
)

// renderSummary produces the markdown analysis summary embedded in the
// report. The layout is fixed so summaries diff cleanly between runs.
func renderSummary(r *models.ValuationReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s (%s)\n\n", r.BasicInfo.CompanyName, r.BasicInfo.Ticker)
	fmt.Fprintf(&b, "%s | %s | %s %.2f\n\n",
		orDash(r.BasicInfo.Sector), orDash(r.BasicInfo.Industry),
		orDash(r.BasicInfo.Currency), r.BasicInfo.CurrentPrice)

	fmt.Fprintf(&b, "## Recommendation: %s\n\n", r.Recommendation.Rating.Label())
	if r.Recommendation.TargetPrice != nil {
		fmt.Fprintf(&b, "Target price %.2f vs current %.2f (%s%.1f%%).\n\n",
			*r.Recommendation.TargetPrice, r.Recommendation.CurrentPrice,
			signPrefix(models.Val(r.Recommendation.UpsidePct)), models.Val(r.Recommendation.UpsidePct))
	}
	fmt.Fprintf(&b, "%s\n\n", r.Recommendation.Description)

	b.WriteString("## Valuation\n\n")
	writeRow(&b, "DCF intrinsic value", r.Valuation.DCF.IntrinsicValue)
	writeRow(&b, "WACC (%)", r.Valuation.DCF.WACCPct)
	writeRow(&b, "P/E implied", r.Valuation.Relative.PEImplied)
	writeRow(&b, "EV/EBITDA implied", r.Valuation.Relative.EVEBITDAImplied)
	writeRow(&b, "EV/Revenue implied", r.Valuation.Relative.EVRevenueImplied)
	writeRow(&b, "P/B implied", r.Valuation.Relative.PBImplied)
	if r.Valuation.FairValue.Available() {
		fmt.Fprintf(&b, "- Fair value range: %.2f - %.2f (mid %.2f)\n",
			*r.Valuation.FairValue.Low, *r.Valuation.FairValue.High, *r.Valuation.FairValue.Mid)
	} else {
		b.WriteString("- Fair value range: unavailable\n")
	}
	fmt.Fprintf(&b, "- Weights: DCF %.0f%% / Relative %.0f%%\n\n",
		r.Methodology.DCFWeight*100, r.Methodology.RelativeWeight*100)

	fmt.Fprintf(&b, "## Risk: %s\n\n", r.RiskAssessment.OverallRisk)
	fmt.Fprintf(&b, "- Altman Z-Score: %s\n", r.RiskAssessment.AltmanZ.Interpretation)
	fmt.Fprintf(&b, "- Piotroski F-Score: %s\n", r.RiskAssessment.PiotroskiF.Interpretation)
	fmt.Fprintf(&b, "- Beneish M-Score: %s\n", r.RiskAssessment.Beneish.Interpretation)
	if len(r.RiskAssessment.Flags) > 0 {
		b.WriteString("\n")
		for _, f := range r.RiskAssessment.Flags {
			fmt.Fprintf(&b, "- **%s** %s\n", f.Severity, f.Message)
		}
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "---\n\n*%s*\n", r.Disclaimer)

	return b.String()
}

func writeRow(b *strings.Builder, label string, v *float64) {
	if v == nil {
		fmt.Fprintf(b, "- %s: n/a\n", label)
		return
	}
	fmt.Fprintf(b, "- %s: %.2f\n", label, *v)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func signPrefix(v float64) string {
	if v >= 0 {
		return "+"
	}
	return ""
}
