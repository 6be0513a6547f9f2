package models

import (
	"fmt"
	"time"
)

// Rating is the discrete recommendation scale.
type Rating string

const (
	RatingStrongBuy  Rating = "STRONG_BUY"
	RatingBuy        Rating = "BUY"
	RatingAccumulate Rating = "ACCUMULATE"
	RatingHold       Rating = "HOLD"
	RatingReduce     Rating = "REDUCE"
	RatingSell       Rating = "SELL"
	RatingUnknown    Rating = "UNKNOWN"
)

// Label returns the display label for the rating. Every rating variant must
// have a case here.
func (r Rating) Label() string {
	switch r {
	case RatingStrongBuy:
		return "Strong Buy"
	case RatingBuy:
		return "Buy"
	case RatingAccumulate:
		return "Accumulate"
	case RatingHold:
		return "Hold"
	case RatingReduce:
		return "Reduce"
	case RatingSell:
		return "Sell"
	case RatingUnknown:
		return "No Rating"
	}
	panic(fmt.Sprintf("unhandled Rating %q", string(r)))
}

// Recommendation is the synthesis stage's verdict. TargetPrice and UpsidePct
// are nil when the fair-value range did not resolve.
type Recommendation struct {
	Rating       Rating   `json:"rating"`
	TargetPrice  *float64 `json:"target_price"`
	CurrentPrice float64  `json:"current_price"`
	UpsidePct    *float64 `json:"upside_pct"`
	Description  string   `json:"description"`
}

// BasicInfo identifies the company under analysis.
type BasicInfo struct {
	Ticker       string    `json:"ticker"`
	CompanyName  string    `json:"company_name"`
	Sector       string    `json:"sector"`
	Industry     string    `json:"industry"`
	Currency     string    `json:"currency"`
	CurrentPrice float64   `json:"current_price"`
	MarketCap    *float64  `json:"market_cap"`
	AnalysisDate time.Time `json:"analysis_date"`
}

// KeyMetrics groups the provider's ready-made ratios for the report.
type KeyMetrics struct {
	Valuation     ValuationRatios     `json:"valuation_ratios"`
	Profitability ProfitabilityRatios `json:"profitability"`
	Health        HealthRatios        `json:"financial_health"`
	Growth        GrowthRatios        `json:"growth"`
	Yield         YieldRatios         `json:"yield"`
}

// ValuationRatios holds market-pricing multiples.
type ValuationRatios struct {
	PE          *float64 `json:"pe_ratio"`
	ForwardPE   *float64 `json:"forward_pe"`
	PB          *float64 `json:"pb_ratio"`
	PS          *float64 `json:"ps_ratio"`
	EVToEBITDA  *float64 `json:"ev_ebitda"`
	EVToRevenue *float64 `json:"ev_revenue"`
}

// ProfitabilityRatios holds margin and return ratios, as percentages.
type ProfitabilityRatios struct {
	ProfitMargin    *float64 `json:"profit_margin_pct"`
	OperatingMargin *float64 `json:"operating_margin_pct"`
	EBITDAMargin    *float64 `json:"ebitda_margin_pct"`
	ROE             *float64 `json:"roe_pct"`
	ROA             *float64 `json:"roa_pct"`
}

// HealthRatios holds leverage and liquidity ratios.
type HealthRatios struct {
	DebtToEquity *float64 `json:"debt_equity"`
	CurrentRatio *float64 `json:"current_ratio"`
}

// GrowthRatios holds year-over-year growth rates, as percentages.
type GrowthRatios struct {
	RevenueGrowth  *float64 `json:"revenue_growth_pct"`
	EarningsGrowth *float64 `json:"earnings_growth_pct"`
}

// YieldRatios holds shareholder-yield figures, as percentages.
type YieldRatios struct {
	DividendYield *float64 `json:"dividend_yield_pct"`
	FCFYield      *float64 `json:"fcf_yield_pct"`
}

// ValuationSummary condenses the valuation engine output for the report.
type ValuationSummary struct {
	DCF       DCFSummary      `json:"dcf_valuation"`
	Relative  RelativeSummary `json:"relative_valuation"`
	FairValue FairValueRange  `json:"fair_value_range"`
}

// DCFSummary is the report-facing view of the DCF result.
type DCFSummary struct {
	IntrinsicValue    *float64 `json:"intrinsic_value"`
	WACCPct           *float64 `json:"wacc_pct"`
	TerminalGrowthPct float64  `json:"terminal_growth_pct"`
	FCFGrowthPct      *float64 `json:"fcf_growth_pct"`
}

// RelativeSummary is the report-facing view of the relative valuation.
type RelativeSummary struct {
	PEImplied          *float64 `json:"pe_implied"`
	EVEBITDAImplied    *float64 `json:"ev_ebitda_implied"`
	EVRevenueImplied   *float64 `json:"ev_revenue_implied"`
	PBImplied          *float64 `json:"pb_implied"`
	PeerMedianPE       *float64 `json:"peer_median_pe"`
	PeerMedianEVEBITDA *float64 `json:"peer_median_ev_ebitda"`
	PeerCount          int      `json:"peer_count"`
}

// Methodology declares the weighting scheme a report used.
type Methodology struct {
	DCFWeight      float64 `json:"dcf_weight"`
	RelativeWeight float64 `json:"relative_weight"`
	Note           string  `json:"note"`
}

// ValuationReport is the pipeline's final output, consumed by the
// presentation layer. All numeric fields are nullable so gaps surface as
// nulls inside an otherwise complete report.
type ValuationReport struct {
	ID              string           `json:"id"`
	BasicInfo       BasicInfo        `json:"basic_info"`
	KeyMetrics      KeyMetrics       `json:"key_metrics"`
	Valuation       ValuationSummary `json:"valuation"`
	RiskAssessment  RiskAssessment   `json:"risk_assessment"`
	Recommendation  Recommendation   `json:"recommendation"`
	FootballField   FootballField    `json:"football_field"`
	AnalysisSummary string           `json:"analysis_summary"`
	Methodology     Methodology      `json:"methodology"`
	Disclaimer      string           `json:"disclaimer"`
}

// QuickQuote is a lightweight price snapshot for the quote endpoint.
type QuickQuote struct {
	Ticker    string    `json:"ticker"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Change    *float64  `json:"change"`
	ChangePct *float64  `json:"change_pct"`
	Volume    *int64    `json:"volume"`
	MarketCap *float64  `json:"market_cap"`
	Timestamp time.Time `json:"timestamp"`
}
