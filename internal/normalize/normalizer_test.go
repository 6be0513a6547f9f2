package normalize

import (
	"errors"
	"math"
	"testing"

	"github.com/choulifeisgood/valuation-agent/internal/common"
	"github.com/choulifeisgood/valuation-agent/internal/models"
)

func testNormalizer() *Normalizer {
	return New(common.NewLogger("error"))
}

func quoteAt(price float64) *models.RealTimeQuote {
	return &models.RealTimeQuote{Code: "TEST.US", Close: models.FlexOf(price)}
}

func fullPayload() *models.FundamentalsPayload {
	p := &models.FundamentalsPayload{}
	p.General.Code = "TEST"
	p.General.Name = "Test Corp"
	p.General.Sector = "Technology"
	p.General.CurrencyCode = "USD"
	p.SharesStats.SharesOutstanding = models.FlexOf(100)
	p.Technicals.Beta = models.FlexOf(1.2)
	p.Highlights.MarketCapitalization = models.FlexOf(5000)

	p.Financials.BalanceSheet.Yearly = map[string]models.BalanceSheetRaw{
		"2024-12-31": {
			TotalAssets:             models.FlexOf(1000),
			TotalCurrentAssets:      models.FlexOf(400),
			TotalLiab:               models.FlexOf(400),
			TotalCurrentLiabilities: models.FlexOf(200),
			ShortTermDebt:           models.FlexOf(50),
			LongTermDebt:            models.FlexOf(200),
			TotalStockholderEquity:  models.FlexOf(600),
			RetainedEarnings:        models.FlexOf(300),
			Cash:                    models.FlexOf(120),
		},
		"2023-12-31": {
			TotalAssets:             models.FlexOf(950),
			TotalCurrentAssets:      models.FlexOf(380),
			TotalCurrentLiabilities: models.FlexOf(210),
			ShortLongTermDebtTotal:  models.FlexOf(260),
		},
	}
	p.Financials.IncomeStatement.Yearly = map[string]models.IncomeStatementRaw{
		"2024-12-31": {
			TotalRevenue:    models.FlexOf(800),
			GrossProfit:     models.FlexOf(320),
			OperatingIncome: models.FlexOf(140),
			NetIncome:       models.FlexOf(100),
			InterestExpense: models.FlexOf(-20),
		},
		"2023-12-31": {
			TotalRevenue: models.FlexOf(700),
			NetIncome:    models.FlexOf(80),
		},
	}
	p.Financials.CashFlow.Yearly = map[string]models.CashFlowRaw{
		"2024-12-31": {
			TotalCashFromOperatingActivity: models.FlexOf(130),
			CapitalExpenditures:            models.FlexOf(-40),
		},
		"2023-12-31": {},
	}
	return p
}

func TestNormalize_MissingTicker(t *testing.T) {
	_, err := testNormalizer().Normalize(&models.FundamentalsPayload{}, quoteAt(50))
	if !errors.Is(err, models.ErrDataUnavailable) {
		t.Errorf("err = %v, want ErrDataUnavailable", err)
	}
}

func TestNormalize_MissingPrice(t *testing.T) {
	_, err := testNormalizer().Normalize(fullPayload(), &models.RealTimeQuote{})
	if !errors.Is(err, models.ErrDataUnavailable) {
		t.Errorf("err = %v, want ErrDataUnavailable", err)
	}
}

func TestNormalize_PreviousCloseFallback(t *testing.T) {
	quote := &models.RealTimeQuote{PreviousClose: models.FlexOf(48.5)}
	fin, err := testNormalizer().Normalize(fullPayload(), quote)
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	if fin.CurrentPrice != 48.5 {
		t.Errorf("CurrentPrice = %v, want 48.5 from previous close", fin.CurrentPrice)
	}
}

func TestNormalize_StatementSelection(t *testing.T) {
	fin, err := testNormalizer().Normalize(fullPayload(), quoteAt(50))
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}

	if fin.Income.Revenue == nil || *fin.Income.Revenue != 800 {
		t.Errorf("Revenue = %v, want 800 from the latest year", fin.Income.Revenue)
	}
	if fin.Income.RevenuePrev == nil || *fin.Income.RevenuePrev != 700 {
		t.Errorf("RevenuePrev = %v, want 700 from the prior year", fin.Income.RevenuePrev)
	}
	if fin.Balance.TotalAssets == nil || *fin.Balance.TotalAssets != 1000 {
		t.Errorf("TotalAssets = %v, want 1000", fin.Balance.TotalAssets)
	}
	if fin.Balance.TotalAssetsPrev == nil || *fin.Balance.TotalAssetsPrev != 950 {
		t.Errorf("TotalAssetsPrev = %v, want 950", fin.Balance.TotalAssetsPrev)
	}
}

func TestNormalize_DerivedFields(t *testing.T) {
	fin, err := testNormalizer().Normalize(fullPayload(), quoteAt(50))
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}

	// Debt sums short and long term; the prior year uses the combined figure.
	if fin.Balance.TotalDebt == nil || *fin.Balance.TotalDebt != 250 {
		t.Errorf("TotalDebt = %v, want 250", fin.Balance.TotalDebt)
	}
	if fin.Balance.TotalDebtPrev == nil || *fin.Balance.TotalDebtPrev != 260 {
		t.Errorf("TotalDebtPrev = %v, want 260", fin.Balance.TotalDebtPrev)
	}

	// Working capital falls back to current assets minus current liabilities.
	if fin.Balance.WorkingCapital == nil || *fin.Balance.WorkingCapital != 200 {
		t.Errorf("WorkingCapital = %v, want 200", fin.Balance.WorkingCapital)
	}

	// Capex keeps a positive sign; FCF derives from OCF minus capex.
	if fin.Cash.CapitalExpenditure == nil || *fin.Cash.CapitalExpenditure != 40 {
		t.Errorf("CapitalExpenditure = %v, want 40", fin.Cash.CapitalExpenditure)
	}
	if fin.Cash.FreeCashFlow == nil || *fin.Cash.FreeCashFlow != 90 {
		t.Errorf("FreeCashFlow = %v, want 90", fin.Cash.FreeCashFlow)
	}

	// EBIT falls back to operating income.
	if fin.Income.EBIT == nil || *fin.Income.EBIT != 140 {
		t.Errorf("EBIT = %v, want 140 from operating income", fin.Income.EBIT)
	}

	// Interest coverage uses the absolute interest expense.
	if ic := fin.Metrics.InterestCoverage; ic == nil || math.Abs(*ic-7) > 1e-9 {
		t.Errorf("InterestCoverage = %v, want 7", ic)
	}

	// EV = market cap + debt - cash when the provider omits it.
	if ev := fin.EnterpriseValue; ev == nil || *ev != 5130 {
		t.Errorf("EnterpriseValue = %v, want 5130", ev)
	}
}

func TestNormalize_MarketCapFallback(t *testing.T) {
	p := fullPayload()
	p.Highlights.MarketCapitalization = models.FlexFloat{}

	fin, err := testNormalizer().Normalize(p, quoteAt(50))
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	if fin.MarketCap == nil || *fin.MarketCap != 5000 {
		t.Errorf("MarketCap = %v, want 5000 (price x shares)", fin.MarketCap)
	}
}

func TestNormalize_EmptyStatements(t *testing.T) {
	p := &models.FundamentalsPayload{}
	p.General.Code = "THIN"

	fin, err := testNormalizer().Normalize(p, quoteAt(10))
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	if fin.Income.Revenue != nil {
		t.Errorf("Revenue = %v, want nil", *fin.Income.Revenue)
	}
	if fin.Balance.TotalAssets != nil {
		t.Errorf("TotalAssets = %v, want nil", *fin.Balance.TotalAssets)
	}
	if fin.MarketCap != nil {
		t.Errorf("MarketCap = %v, want nil without shares", *fin.MarketCap)
	}
}
