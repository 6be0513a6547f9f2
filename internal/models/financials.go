package models

import "time"

// CompanyFinancials is the canonical snapshot the whole pipeline computes
// from. It is built once per analysis request by the normalizer and never
// mutated afterwards. Every numeric field is nil when the provider did not
// supply it; downstream formulas must check presence before use.
type CompanyFinancials struct {
	Ticker   string `json:"ticker"`
	Name     string `json:"name"`
	Sector   string `json:"sector"`
	Industry string `json:"industry"`
	Currency string `json:"currency"`

	CurrentPrice      float64  `json:"current_price"`
	SharesOutstanding *float64 `json:"shares_outstanding"`
	MarketCap         *float64 `json:"market_cap"`
	EnterpriseValue   *float64 `json:"enterprise_value"`
	Beta              *float64 `json:"beta"`

	Income  IncomeStatement `json:"income_statement"`
	Balance BalanceSheet    `json:"balance_sheet"`
	Cash    CashFlow        `json:"cash_flow"`
	Metrics KeyRatios       `json:"metrics"`

	FetchedAt time.Time `json:"fetched_at"`
}

// IncomeStatement holds the latest period's income-statement line items,
// with previous-period values where trend criteria need them.
type IncomeStatement struct {
	Revenue         *float64 `json:"revenue"`
	RevenuePrev     *float64 `json:"revenue_prev"`
	GrossProfit     *float64 `json:"gross_profit"`
	GrossProfitPrev *float64 `json:"gross_profit_prev"`
	OperatingIncome *float64 `json:"operating_income"`
	EBIT            *float64 `json:"ebit"`
	EBITDA          *float64 `json:"ebitda"`
	NetIncome       *float64 `json:"net_income"`
	NetIncomePrev   *float64 `json:"net_income_prev"`
	InterestExpense *float64 `json:"interest_expense"`
	Depreciation    *float64 `json:"depreciation"`
	SGA             *float64 `json:"sga"`
	SGAPrev         *float64 `json:"sga_prev"`
}

// BalanceSheet holds balance-sheet line items for the trailing two periods.
type BalanceSheet struct {
	TotalAssets            *float64 `json:"total_assets"`
	TotalAssetsPrev        *float64 `json:"total_assets_prev"`
	CurrentAssets          *float64 `json:"current_assets"`
	CurrentAssetsPrev      *float64 `json:"current_assets_prev"`
	TotalLiabilities       *float64 `json:"total_liabilities"`
	CurrentLiabilities     *float64 `json:"current_liabilities"`
	CurrentLiabilitiesPrev *float64 `json:"current_liabilities_prev"`
	TotalDebt              *float64 `json:"total_debt"`
	TotalDebtPrev          *float64 `json:"total_debt_prev"`
	LongTermDebt           *float64 `json:"long_term_debt"`
	StockholdersEquity     *float64 `json:"stockholders_equity"`
	StockholdersEquityPrev *float64 `json:"stockholders_equity_prev"`
	RetainedEarnings       *float64 `json:"retained_earnings"`
	WorkingCapital         *float64 `json:"working_capital"`
	Cash                   *float64 `json:"cash"`
	Receivables            *float64 `json:"receivables"`
	ReceivablesPrev        *float64 `json:"receivables_prev"`
	PPE                    *float64 `json:"ppe"`
	PPEPrev                *float64 `json:"ppe_prev"`
	SharesIssued           *float64 `json:"shares_issued"`
	SharesIssuedPrev       *float64 `json:"shares_issued_prev"`
}

// CashFlow holds cash-flow-statement line items for the latest period.
type CashFlow struct {
	OperatingCashFlow      *float64 `json:"operating_cash_flow"`
	CapitalExpenditure     *float64 `json:"capital_expenditure"` // reported as a positive outflow
	FreeCashFlow           *float64 `json:"free_cash_flow"`
	Depreciation           *float64 `json:"depreciation"`
	DepreciationPrev       *float64 `json:"depreciation_prev"`
	ChangeInWorkingCapital *float64 `json:"change_in_working_capital"`
}

// KeyRatios holds ready-made ratios from the provider profile. They feed the
// report's key-metrics section and the growth estimate; none of them is
// required for the pipeline to run.
type KeyRatios struct {
	PE               *float64 `json:"pe_ratio"`
	ForwardPE        *float64 `json:"forward_pe"`
	PB               *float64 `json:"pb_ratio"`
	PS               *float64 `json:"ps_ratio"`
	EVToEBITDA       *float64 `json:"ev_ebitda"`
	EVToRevenue      *float64 `json:"ev_revenue"`
	ProfitMargin     *float64 `json:"profit_margin"`
	OperatingMargin  *float64 `json:"operating_margin"`
	ROE              *float64 `json:"roe"`
	ROA              *float64 `json:"roa"`
	DebtToEquity     *float64 `json:"debt_equity"`
	CurrentRatio     *float64 `json:"current_ratio"`
	DividendYield    *float64 `json:"dividend_yield"`
	PayoutRatio      *float64 `json:"payout_ratio"`
	RevenueGrowth    *float64 `json:"revenue_growth"`
	EarningsGrowth   *float64 `json:"earnings_growth"`
	InterestCoverage *float64 `json:"interest_coverage"`
}

// PeerMultiples carries the peer-median multiples the relative valuation
// consumes. It is supplied by an external collaborator; absent entries are
// legal and propagate as unavailable implied prices.
type PeerMultiples struct {
	PE          *float64 `json:"pe"`
	EVToEBITDA  *float64 `json:"ev_ebitda"`
	EVToRevenue *float64 `json:"ev_revenue"`
	PB          *float64 `json:"pb"`
	PeerCount   int      `json:"peer_count"`
	Source      string   `json:"source"` // "peer_analysis" or "market_average"
}
