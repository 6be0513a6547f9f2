package models

// DCFResult holds the intrinsic-value output of the discounted-cash-flow
// model. IntrinsicValue is nil when WACC could not be estimated, the model
// was degenerate (WACC at or below terminal growth), or base free cash flow
// was unavailable or non-positive.
type DCFResult struct {
	IntrinsicValue  *float64  `json:"intrinsic_value"`
	EnterpriseValue *float64  `json:"enterprise_value"`
	EquityValue     *float64  `json:"equity_value"`
	WACC            *float64  `json:"wacc"`
	TerminalGrowth  float64   `json:"terminal_growth"`
	FCFGrowth       *float64  `json:"fcf_growth"`
	BaseFCF         *float64  `json:"base_fcf"`
	ProjectedFCF    []float64 `json:"projected_fcf,omitempty"`
	ProjectionYears int       `json:"projection_years"`
	Degenerate      bool      `json:"degenerate,omitempty"` // WACC <= terminal growth
}

// RelativeResult holds the peer-multiple implied prices. Each implied price
// is nil when its peer median, the company metric, or shares outstanding is
// unavailable or non-positive.
type RelativeResult struct {
	PEImplied         *float64      `json:"pe_implied_price"`
	EVEBITDAImplied   *float64      `json:"ev_ebitda_implied_price"`
	EVRevenueImplied  *float64      `json:"ev_revenue_implied_price"`
	PBImplied         *float64      `json:"pb_implied_price"`
	EPS               *float64      `json:"eps"`
	BookValuePerShare *float64      `json:"book_value_per_share"`
	PeerMedians       PeerMultiples `json:"peer_medians"`
}

// FairValueRange is the blended low/mid/high estimate. All three are nil
// when no valuation method produced a result; otherwise Low <= Mid <= High.
type FairValueRange struct {
	Low  *float64 `json:"low"`
	Mid  *float64 `json:"mid"`
	High *float64 `json:"high"`
}

// Available reports whether the range resolved.
func (r FairValueRange) Available() bool {
	return r.Low != nil && r.Mid != nil && r.High != nil
}

// ValuationBar is one football-field bar: a per-method low/mid/high band.
type ValuationBar struct {
	Method string  `json:"method"`
	Low    float64 `json:"low"`
	Mid    float64 `json:"mid"`
	High   float64 `json:"high"`
}

// FootballField carries the per-method bars alongside the current price for
// the presentation layer.
type FootballField struct {
	CurrentPrice float64        `json:"current_price"`
	Bars         []ValuationBar `json:"bars"`
}

// MethodWeights records the DCF/relative weighting actually applied after
// renormalizing over available methods.
type MethodWeights struct {
	DCF      float64 `json:"dcf"`
	Relative float64 `json:"relative"`
}

// ValuationResult is the valuation engine's complete output.
type ValuationResult struct {
	DCF            DCFResult      `json:"dcf"`
	Relative       RelativeResult `json:"relative"`
	FairValue      FairValueRange `json:"fair_value_range"`
	FootballField  FootballField  `json:"football_field"`
	AppliedWeights MethodWeights  `json:"applied_weights"`
}
