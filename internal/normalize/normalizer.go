// Package normalize builds the canonical financial snapshot consumed by the
// forensic and valuation stages from raw provider payloads.
package normalize

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/choulifeisgood/valuation-agent/internal/common"
	"github.com/choulifeisgood/valuation-agent/internal/models"
)

// Normalizer converts raw fundamentals payloads into CompanyFinancials.
// Missing statement lines become nil fields; only a missing ticker or price
// is fatal.
type Normalizer struct {
	logger *common.Logger
}

// New creates a normalizer
func New(logger *common.Logger) *Normalizer {
	return &Normalizer{logger: logger}
}

// Normalize builds the snapshot for a ticker. The quote supplies the current
// price; the payload supplies everything else.
func (n *Normalizer) Normalize(payload *models.FundamentalsPayload, quote *models.RealTimeQuote) (*models.CompanyFinancials, error) {
	if payload == nil || payload.General.Code == "" {
		return nil, fmt.Errorf("normalize: missing ticker identity: %w", models.ErrDataUnavailable)
	}

	price, ok := currentPrice(quote)
	if !ok {
		return nil, fmt.Errorf("normalize: no current price for %s: %w", payload.General.Code, models.ErrDataUnavailable)
	}

	latestBS, prevBS := latestTwoBalance(payload.Financials.BalanceSheet.Yearly)
	latestIS, prevIS := latestTwoIncome(payload.Financials.IncomeStatement.Yearly)
	latestCF, prevCF := latestTwoCashFlow(payload.Financials.CashFlow.Yearly)

	fin := &models.CompanyFinancials{
		Ticker:       payload.General.Code,
		Name:         payload.General.Name,
		Sector:       payload.General.Sector,
		Industry:     payload.General.Industry,
		Currency:     payload.General.CurrencyCode,
		CurrentPrice: price,

		SharesOutstanding: positive(payload.SharesStats.SharesOutstanding.Ptr()),
		Beta:              payload.Technicals.Beta.Ptr(),
		FetchedAt:         payload.FetchedAt,
	}
	if fin.FetchedAt.IsZero() {
		fin.FetchedAt = time.Now()
	}

	fin.Income = normalizeIncome(latestIS, prevIS, payload.Highlights)
	fin.Balance = normalizeBalance(latestBS, prevBS)
	fin.Cash = normalizeCashFlow(latestCF, prevCF)
	fin.Metrics = normalizeRatios(payload, fin)

	fin.MarketCap = payload.Highlights.MarketCapitalization.Ptr()
	if fin.MarketCap == nil && fin.SharesOutstanding != nil {
		fin.MarketCap = models.Float(price * *fin.SharesOutstanding)
	}

	fin.EnterpriseValue = positive(payload.Valuation.EnterpriseValue.Ptr())
	if fin.EnterpriseValue == nil && fin.MarketCap != nil {
		// EV = market cap + total debt - cash; debt and cash default to 0
		// when unreported so a thin payload still yields an EV.
		ev := *fin.MarketCap + models.Val(fin.Balance.TotalDebt) - models.Val(fin.Balance.Cash)
		fin.EnterpriseValue = models.Float(ev)
	}

	n.logger.Debug().
		Str("ticker", fin.Ticker).
		Float64("price", fin.CurrentPrice).
		Bool("has_income", fin.Income.Revenue != nil).
		Bool("has_balance", fin.Balance.TotalAssets != nil).
		Bool("has_cashflow", fin.Cash.OperatingCashFlow != nil).
		Msg("Normalized fundamentals")

	return fin, nil
}

func currentPrice(quote *models.RealTimeQuote) (float64, bool) {
	if quote == nil {
		return 0, false
	}
	if p := quote.Close.Ptr(); p != nil && *p > 0 {
		return *p, true
	}
	if p := quote.PreviousClose.Ptr(); p != nil && *p > 0 {
		return *p, true
	}
	return 0, false
}

func normalizeIncome(latest, prev *models.IncomeStatementRaw, highlights models.Highlights) models.IncomeStatement {
	is := models.IncomeStatement{}
	if latest != nil {
		is.Revenue = latest.TotalRevenue.Ptr()
		is.GrossProfit = latest.GrossProfit.Ptr()
		is.OperatingIncome = latest.OperatingIncome.Ptr()
		is.EBIT = latest.EBIT.Ptr()
		is.EBITDA = latest.EBITDA.Ptr()
		is.NetIncome = latest.NetIncome.Ptr()
		is.InterestExpense = latest.InterestExpense.Ptr()
		is.Depreciation = latest.DepreciationAndAmortization.Ptr()
		is.SGA = latest.SellingGeneralAdministrative.Ptr()
	}
	if prev != nil {
		is.RevenuePrev = prev.TotalRevenue.Ptr()
		is.GrossProfitPrev = prev.GrossProfit.Ptr()
		is.NetIncomePrev = prev.NetIncome.Ptr()
		is.SGAPrev = prev.SellingGeneralAdministrative.Ptr()
	}

	// Provider profile fallbacks for statements with sparse line items.
	if is.Revenue == nil {
		is.Revenue = highlights.RevenueTTM.Ptr()
	}
	if is.EBITDA == nil {
		is.EBITDA = highlights.EBITDA.Ptr()
	}
	if is.EBIT == nil {
		is.EBIT = is.OperatingIncome
	}
	return is
}

func normalizeBalance(latest, prev *models.BalanceSheetRaw) models.BalanceSheet {
	bs := models.BalanceSheet{}
	if latest != nil {
		bs.TotalAssets = latest.TotalAssets.Ptr()
		bs.CurrentAssets = latest.TotalCurrentAssets.Ptr()
		bs.TotalLiabilities = latest.TotalLiab.Ptr()
		bs.CurrentLiabilities = latest.TotalCurrentLiabilities.Ptr()
		bs.LongTermDebt = latest.LongTermDebt.Ptr()
		bs.TotalDebt = totalDebt(latest)
		bs.StockholdersEquity = latest.TotalStockholderEquity.Ptr()
		bs.RetainedEarnings = latest.RetainedEarnings.Ptr()
		bs.Cash = cashPosition(latest)
		bs.Receivables = latest.NetReceivables.Ptr()
		bs.PPE = latest.PropertyPlantEquipment.Ptr()
		bs.SharesIssued = latest.CommonStockSharesOutstanding.Ptr()

		bs.WorkingCapital = latest.NetWorkingCapital.Ptr()
		if bs.WorkingCapital == nil && models.Avail(bs.CurrentAssets, bs.CurrentLiabilities) {
			bs.WorkingCapital = models.Float(*bs.CurrentAssets - *bs.CurrentLiabilities)
		}
	}
	if prev != nil {
		bs.TotalAssetsPrev = prev.TotalAssets.Ptr()
		bs.CurrentAssetsPrev = prev.TotalCurrentAssets.Ptr()
		bs.CurrentLiabilitiesPrev = prev.TotalCurrentLiabilities.Ptr()
		bs.TotalDebtPrev = totalDebt(prev)
		bs.StockholdersEquityPrev = prev.TotalStockholderEquity.Ptr()
		bs.ReceivablesPrev = prev.NetReceivables.Ptr()
		bs.PPEPrev = prev.PropertyPlantEquipment.Ptr()
		bs.SharesIssuedPrev = prev.CommonStockSharesOutstanding.Ptr()
	}
	return bs
}

// totalDebt prefers the provider's combined figure, then sums the short and
// long term components, treating a single missing component as zero.
func totalDebt(bs *models.BalanceSheetRaw) *float64 {
	if v := bs.ShortLongTermDebtTotal.Ptr(); v != nil {
		return v
	}
	short := bs.ShortTermDebt.Ptr()
	long := bs.LongTermDebt.Ptr()
	if short == nil && long == nil {
		return nil
	}
	return models.Float(models.Val(short) + models.Val(long))
}

func cashPosition(bs *models.BalanceSheetRaw) *float64 {
	if v := bs.Cash.Ptr(); v != nil {
		return v
	}
	return bs.CashAndEquivalents.Ptr()
}

func normalizeCashFlow(latest, prev *models.CashFlowRaw) models.CashFlow {
	cf := models.CashFlow{}
	if latest != nil {
		cf.OperatingCashFlow = latest.TotalCashFromOperatingActivity.Ptr()
		cf.Depreciation = latest.Depreciation.Ptr()
		cf.ChangeInWorkingCapital = latest.ChangeInWorkingCapital.Ptr()

		// Providers report capex with inconsistent sign conventions. Keep it
		// as a positive outflow.
		if v := latest.CapitalExpenditures.Ptr(); v != nil {
			cf.CapitalExpenditure = models.Float(math.Abs(*v))
		}

		cf.FreeCashFlow = latest.FreeCashFlow.Ptr()
		if cf.FreeCashFlow == nil && models.Avail(cf.OperatingCashFlow, cf.CapitalExpenditure) {
			cf.FreeCashFlow = models.Float(*cf.OperatingCashFlow - *cf.CapitalExpenditure)
		}
	}
	if prev != nil {
		cf.DepreciationPrev = prev.Depreciation.Ptr()
	}
	return cf
}

func normalizeRatios(payload *models.FundamentalsPayload, fin *models.CompanyFinancials) models.KeyRatios {
	r := models.KeyRatios{
		PE:             positive(payload.Valuation.TrailingPE.Ptr()),
		ForwardPE:      positive(payload.Valuation.ForwardPE.Ptr()),
		PB:             positive(payload.Valuation.PriceBookMRQ.Ptr()),
		PS:             positive(payload.Valuation.PriceSalesTTM.Ptr()),
		EVToEBITDA:     positive(payload.Valuation.EnterpriseValueEbitda.Ptr()),
		EVToRevenue:    positive(payload.Valuation.EnterpriseValueRevenue.Ptr()),
		ProfitMargin:   payload.Highlights.ProfitMargin.Ptr(),
		ROE:            payload.Highlights.ReturnOnEquityTTM.Ptr(),
		ROA:            payload.Highlights.ReturnOnAssetsTTM.Ptr(),
		DividendYield:  payload.Highlights.DividendYield.Ptr(),
		PayoutRatio:    payload.SplitsDividends.PayoutRatio.Ptr(),
		RevenueGrowth:  payload.Highlights.QuarterlyRevenueGrowthYOY.Ptr(),
		EarningsGrowth: payload.Highlights.QuarterlyEarningsGrowthYOY.Ptr(),
	}

	if r.PE == nil {
		r.PE = positive(payload.Highlights.PERatio.Ptr())
	}

	r.OperatingMargin = payload.Highlights.OperatingMarginTTM.Ptr()
	if r.OperatingMargin == nil {
		r.OperatingMargin = models.Ratio(fin.Income.OperatingIncome, fin.Income.Revenue)
	}

	r.DebtToEquity = leverageRatio(fin.Balance.TotalDebt, fin.Balance.StockholdersEquity)
	r.CurrentRatio = liquidityRatio(fin.Balance.CurrentAssets, fin.Balance.CurrentLiabilities)
	r.InterestCoverage = interestCoverage(fin.Income.EBIT, fin.Income.InterestExpense)

	return r
}

// leverageRatio computes debt/equity only for positive equity; a negative
// book value makes the ratio meaningless.
func leverageRatio(debt, equity *float64) *float64 {
	if !models.Avail(debt, equity) || *equity <= 0 {
		return nil
	}
	return models.Float(*debt / *equity)
}

func liquidityRatio(assets, liabilities *float64) *float64 {
	if !models.Avail(assets, liabilities) || *liabilities <= 0 {
		return nil
	}
	return models.Float(*assets / *liabilities)
}

// interestCoverage computes EBIT over the absolute interest expense. A zero
// interest expense reads as unavailable rather than infinite coverage.
func interestCoverage(ebit, interest *float64) *float64 {
	if !models.Avail(ebit, interest) || *interest == 0 {
		return nil
	}
	return models.Float(*ebit / math.Abs(*interest))
}

// positive filters non-positive provider values, which indicate "no
// meaningful figure" for multiples and counts.
func positive(v *float64) *float64 {
	if v == nil || *v <= 0 {
		return nil
	}
	return v
}

func latestTwoBalance(yearly map[string]models.BalanceSheetRaw) (latest, prev *models.BalanceSheetRaw) {
	for _, key := range sortedDatesDesc(keysOfBalance(yearly)) {
		entry := yearly[key]
		if latest == nil {
			latest = &entry
		} else if prev == nil {
			prev = &entry
			break
		}
	}
	return latest, prev
}

func latestTwoIncome(yearly map[string]models.IncomeStatementRaw) (latest, prev *models.IncomeStatementRaw) {
	for _, key := range sortedDatesDesc(keysOfIncome(yearly)) {
		entry := yearly[key]
		if latest == nil {
			latest = &entry
		} else if prev == nil {
			prev = &entry
			break
		}
	}
	return latest, prev
}

func latestTwoCashFlow(yearly map[string]models.CashFlowRaw) (latest, prev *models.CashFlowRaw) {
	for _, key := range sortedDatesDesc(keysOfCashFlow(yearly)) {
		entry := yearly[key]
		if latest == nil {
			latest = &entry
		} else if prev == nil {
			prev = &entry
			break
		}
	}
	return latest, prev
}

func keysOfBalance(m map[string]models.BalanceSheetRaw) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

func keysOfIncome(m map[string]models.IncomeStatementRaw) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

func keysOfCashFlow(m map[string]models.CashFlowRaw) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

// sortedDatesDesc sorts YYYY-MM-DD keys newest first. Lexical order matches
// chronological order for this format.
func sortedDatesDesc(keys []string) []string {
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))
	return keys
}
