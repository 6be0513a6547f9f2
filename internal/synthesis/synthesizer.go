package synthesis

import (
	"time"

	"github.com/google/uuid"

	"github.com/choulifeisgood/valuation-agent/internal/common"
	"github.com/choulifeisgood/valuation-agent/internal/models"
)

// Disclaimer accompanies every report.
const Disclaimer = "This report is generated from published financial data for informational purposes only. It is not investment advice. Verify all figures independently before making investment decisions."

// Synthesizer assembles the final report from the pipeline stage outputs.
type Synthesizer struct {
	cfg    common.ValuationConfig
	logger *common.Logger
}

// NewSynthesizer creates a synthesizer
func NewSynthesizer(cfg common.ValuationConfig, logger *common.Logger) *Synthesizer {
	return &Synthesizer{cfg: cfg, logger: logger}
}

// Compose builds the complete report for a snapshot plus the forensic and
// valuation outputs.
func (s *Synthesizer) Compose(fin *models.CompanyFinancials, risk *models.RiskAssessment, val *models.ValuationResult) *models.ValuationReport {
	report := &models.ValuationReport{
		ID: uuid.New().String(),
		BasicInfo: models.BasicInfo{
			Ticker:       fin.Ticker,
			CompanyName:  fin.Name,
			Sector:       fin.Sector,
			Industry:     fin.Industry,
			Currency:     fin.Currency,
			CurrentPrice: fin.CurrentPrice,
			MarketCap:    fin.MarketCap,
			AnalysisDate: time.Now().UTC(),
		},
		KeyMetrics:     buildKeyMetrics(fin),
		Valuation:      buildValuationSummary(val),
		RiskAssessment: *risk,
		FootballField:  val.FootballField,
		Methodology: models.Methodology{
			DCFWeight:      val.AppliedWeights.DCF,
			RelativeWeight: val.AppliedWeights.Relative,
			Note:           "Fair value blends discounted cash flow and peer multiples; weights renormalize over the methods that resolved.",
		},
		Disclaimer: Disclaimer,
	}

	report.Recommendation = buildRecommendation(fin, val.FairValue, risk.OverallRisk)
	report.AnalysisSummary = renderSummary(report)

	s.logger.Info().
		Str("ticker", fin.Ticker).
		Str("report_id", report.ID).
		Str("rating", string(report.Recommendation.Rating)).
		Str("risk", string(risk.OverallRisk)).
		Msg("Report composed")

	return report
}

func buildKeyMetrics(fin *models.CompanyFinancials) models.KeyMetrics {
	m := fin.Metrics
	return models.KeyMetrics{
		Valuation: models.ValuationRatios{
			PE:          models.Round2(m.PE),
			ForwardPE:   models.Round2(m.ForwardPE),
			PB:          models.Round2(m.PB),
			PS:          models.Round2(m.PS),
			EVToEBITDA:  models.Round2(m.EVToEBITDA),
			EVToRevenue: models.Round2(m.EVToRevenue),
		},
		Profitability: models.ProfitabilityRatios{
			ProfitMargin:    asPct(m.ProfitMargin),
			OperatingMargin: asPct(m.OperatingMargin),
			EBITDAMargin:    asPct(models.Ratio(fin.Income.EBITDA, fin.Income.Revenue)),
			ROE:             asPct(m.ROE),
			ROA:             asPct(m.ROA),
		},
		Health: models.HealthRatios{
			DebtToEquity: models.Round2(m.DebtToEquity),
			CurrentRatio: models.Round2(m.CurrentRatio),
		},
		Growth: models.GrowthRatios{
			RevenueGrowth:  asPct(m.RevenueGrowth),
			EarningsGrowth: asPct(m.EarningsGrowth),
		},
		Yield: models.YieldRatios{
			DividendYield: asPct(m.DividendYield),
			FCFYield:      asPct(models.Ratio(fin.Cash.FreeCashFlow, fin.MarketCap)),
		},
	}
}

func buildValuationSummary(val *models.ValuationResult) models.ValuationSummary {
	return models.ValuationSummary{
		DCF: models.DCFSummary{
			IntrinsicValue:    val.DCF.IntrinsicValue,
			WACCPct:           asPct(val.DCF.WACC),
			TerminalGrowthPct: val.DCF.TerminalGrowth * 100,
			FCFGrowthPct:      asPct(val.DCF.FCFGrowth),
		},
		Relative: models.RelativeSummary{
			PEImplied:          val.Relative.PEImplied,
			EVEBITDAImplied:    val.Relative.EVEBITDAImplied,
			EVRevenueImplied:   val.Relative.EVRevenueImplied,
			PBImplied:          val.Relative.PBImplied,
			PeerMedianPE:       models.Round2(val.Relative.PeerMedians.PE),
			PeerMedianEVEBITDA: models.Round2(val.Relative.PeerMedians.EVToEBITDA),
			PeerCount:          val.Relative.PeerMedians.PeerCount,
		},
		FairValue: val.FairValue,
	}
}

// asPct converts a fraction to a rounded percentage, propagating
// unavailability.
func asPct(v *float64) *float64 {
	return models.Round2(models.Scale(v, 100))
}
