package models

import "time"

// FundamentalsPayload is the raw fundamentals document as returned by the
// market data provider. Statement values arrive as numbers, numeric strings,
// or nulls, so everything numeric goes through FlexFloat. The normalizer
// turns this into CompanyFinancials.
type FundamentalsPayload struct {
	General         GeneralInfo     `json:"General"`
	Highlights      Highlights      `json:"Highlights"`
	Valuation       ValuationBlock  `json:"Valuation"`
	SharesStats     SharesStats     `json:"SharesStats"`
	Technicals      Technicals      `json:"Technicals"`
	SplitsDividends SplitsDividends `json:"SplitsDividends"`
	Financials      Financials      `json:"Financials"`

	// FetchedAt is set by the client when the payload is retrieved, not by
	// the provider.
	FetchedAt time.Time `json:"fetched_at,omitempty"`
}

// GeneralInfo holds the company identity block.
type GeneralInfo struct {
	Code         string `json:"Code"`
	Name         string `json:"Name"`
	Type         string `json:"Type"` // "Common Stock", "ETF", etc.
	Sector       string `json:"Sector"`
	Industry     string `json:"Industry"`
	CurrencyCode string `json:"CurrencyCode"`
	Description  string `json:"Description"`
}

// Highlights holds headline metrics.
type Highlights struct {
	MarketCapitalization       FlexFloat `json:"MarketCapitalization"`
	EBITDA                     FlexFloat `json:"EBITDA"`
	PERatio                    FlexFloat `json:"PERatio"`
	DividendYield              FlexFloat `json:"DividendYield"`
	EarningsShare              FlexFloat `json:"EarningsShare"`
	ProfitMargin               FlexFloat `json:"ProfitMargin"`
	OperatingMarginTTM         FlexFloat `json:"OperatingMarginTTM"`
	ReturnOnEquityTTM          FlexFloat `json:"ReturnOnEquityTTM"`
	ReturnOnAssetsTTM          FlexFloat `json:"ReturnOnAssetsTTM"`
	RevenueTTM                 FlexFloat `json:"RevenueTTM"`
	QuarterlyRevenueGrowthYOY  FlexFloat `json:"QuarterlyRevenueGrowthYOY"`
	QuarterlyEarningsGrowthYOY FlexFloat `json:"QuarterlyEarningsGrowthYOY"`
}

// ValuationBlock holds provider-computed multiples.
type ValuationBlock struct {
	TrailingPE             FlexFloat `json:"TrailingPE"`
	ForwardPE              FlexFloat `json:"ForwardPE"`
	PriceSalesTTM          FlexFloat `json:"PriceSalesTTM"`
	PriceBookMRQ           FlexFloat `json:"PriceBookMRQ"`
	EnterpriseValue        FlexFloat `json:"EnterpriseValue"`
	EnterpriseValueRevenue FlexFloat `json:"EnterpriseValueRevenue"`
	EnterpriseValueEbitda  FlexFloat `json:"EnterpriseValueEbitda"`
}

// SharesStats holds share count data.
type SharesStats struct {
	SharesOutstanding FlexFloat `json:"SharesOutstanding"`
	SharesFloat       FlexFloat `json:"SharesFloat"`
}

// Technicals holds market statistics.
type Technicals struct {
	Beta FlexFloat `json:"Beta"`
}

// SplitsDividends holds dividend policy data.
type SplitsDividends struct {
	PayoutRatio FlexFloat `json:"PayoutRatio"`
}

// Financials holds the annual statements, keyed by fiscal year end date
// (YYYY-MM-DD).
type Financials struct {
	BalanceSheet struct {
		Yearly map[string]BalanceSheetRaw `json:"yearly"`
	} `json:"Balance_Sheet"`
	IncomeStatement struct {
		Yearly map[string]IncomeStatementRaw `json:"yearly"`
	} `json:"Income_Statement"`
	CashFlow struct {
		Yearly map[string]CashFlowRaw `json:"yearly"`
	} `json:"Cash_Flow"`
}

// BalanceSheetRaw is one annual balance sheet as sent by the provider.
type BalanceSheetRaw struct {
	Date                         string    `json:"date"`
	TotalAssets                  FlexFloat `json:"totalAssets"`
	TotalLiab                    FlexFloat `json:"totalLiab"`
	TotalCurrentAssets           FlexFloat `json:"totalCurrentAssets"`
	TotalCurrentLiabilities      FlexFloat `json:"totalCurrentLiabilities"`
	Cash                         FlexFloat `json:"cash"`
	CashAndEquivalents           FlexFloat `json:"cashAndEquivalents"`
	ShortTermDebt                FlexFloat `json:"shortTermDebt"`
	LongTermDebt                 FlexFloat `json:"longTermDebt"`
	ShortLongTermDebtTotal       FlexFloat `json:"shortLongTermDebtTotal"`
	TotalStockholderEquity       FlexFloat `json:"totalStockholderEquity"`
	RetainedEarnings             FlexFloat `json:"retainedEarnings"`
	NetReceivables               FlexFloat `json:"netReceivables"`
	PropertyPlantEquipment       FlexFloat `json:"propertyPlantEquipment"`
	NetWorkingCapital            FlexFloat `json:"netWorkingCapital"`
	CommonStockSharesOutstanding FlexFloat `json:"commonStockSharesOutstanding"`
}

// IncomeStatementRaw is one annual income statement as sent by the provider.
type IncomeStatementRaw struct {
	Date                         string    `json:"date"`
	TotalRevenue                 FlexFloat `json:"totalRevenue"`
	GrossProfit                  FlexFloat `json:"grossProfit"`
	OperatingIncome              FlexFloat `json:"operatingIncome"`
	EBIT                         FlexFloat `json:"ebit"`
	EBITDA                       FlexFloat `json:"ebitda"`
	NetIncome                    FlexFloat `json:"netIncome"`
	InterestExpense              FlexFloat `json:"interestExpense"`
	DepreciationAndAmortization  FlexFloat `json:"depreciationAndAmortization"`
	SellingGeneralAdministrative FlexFloat `json:"sellingGeneralAdministrative"`
	IncomeTaxExpense             FlexFloat `json:"incomeTaxExpense"`
	IncomeBeforeTax              FlexFloat `json:"incomeBeforeTax"`
}

// CashFlowRaw is one annual cash flow statement as sent by the provider.
type CashFlowRaw struct {
	Date                            string    `json:"date"`
	TotalCashFromOperatingActivity  FlexFloat `json:"totalCashFromOperatingActivities"`
	CapitalExpenditures             FlexFloat `json:"capitalExpenditures"`
	FreeCashFlow                    FlexFloat `json:"freeCashFlow"`
	Depreciation                    FlexFloat `json:"depreciation"`
	ChangeInWorkingCapital          FlexFloat `json:"changeInWorkingCapital"`
	NetIncome                       FlexFloat `json:"netIncome"`
	TotalCashflowsFromInvestingActs FlexFloat `json:"totalCashflowsFromInvestingActivities"`
}

// RealTimeQuote is the delayed/real-time price snapshot for a ticker.
type RealTimeQuote struct {
	Code          string    `json:"code"`
	Timestamp     int64     `json:"timestamp"`
	Open          FlexFloat `json:"open"`
	High          FlexFloat `json:"high"`
	Low           FlexFloat `json:"low"`
	Close         FlexFloat `json:"close"`
	PreviousClose FlexFloat `json:"previousClose"`
	Change        FlexFloat `json:"change"`
	ChangePct     FlexFloat `json:"change_p"`
	Volume        FlexFloat `json:"volume"`
}
