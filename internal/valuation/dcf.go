package valuation

import (
	"math"

	"github.com/choulifeisgood/valuation-agent/internal/common"
	"github.com/choulifeisgood/valuation-agent/internal/models"
)

// runDCF projects free cash flow with linearly fading growth, discounts at
// WACC, and closes with a Gordon terminal value. The intrinsic value is nil
// whenever a required input is missing or the model degenerates (WACC at or
// below terminal growth).
func runDCF(cfg common.ValuationConfig, fin *models.CompanyFinancials) models.DCFResult {
	result := models.DCFResult{
		TerminalGrowth:  cfg.TerminalGrowth,
		ProjectionYears: cfg.ProjectionYears,
	}

	result.WACC = computeWACC(cfg, fin)
	result.BaseFCF = baseFCF(cfg, fin)
	result.FCFGrowth = growthEstimate(cfg, fin)

	if result.WACC == nil {
		return result
	}
	if result.BaseFCF == nil || *result.BaseFCF <= 0 {
		return result
	}

	wacc := *result.WACC
	if wacc <= cfg.TerminalGrowth {
		result.Degenerate = true
		return result
	}

	growth := models.Val(result.FCFGrowth)
	years := cfg.ProjectionYears

	// Growth fades linearly from the first-year estimate to the terminal
	// rate across the projection window.
	fcf := *result.BaseFCF
	pvSum := 0.0
	projected := make([]float64, 0, years)
	for i := 1; i <= years; i++ {
		g := growth
		if years > 1 {
			g = growth + (cfg.TerminalGrowth-growth)*float64(i-1)/float64(years-1)
		}
		fcf *= 1 + g
		projected = append(projected, fcf)
		pvSum += fcf / math.Pow(1+wacc, float64(i))
	}
	result.ProjectedFCF = projected

	terminalValue := fcf * (1 + cfg.TerminalGrowth) / (wacc - cfg.TerminalGrowth)
	pvSum += terminalValue / math.Pow(1+wacc, float64(years))

	result.EnterpriseValue = models.Float(pvSum)

	equity := pvSum - models.Val(fin.Balance.TotalDebt) + models.Val(fin.Balance.Cash)
	result.EquityValue = models.Float(equity)

	shares := fin.SharesOutstanding
	if shares == nil || *shares <= 0 || equity <= 0 {
		return result
	}

	result.IntrinsicValue = models.Round2(models.Float(equity / *shares))
	return result
}

// baseFCF prefers reported free cash flow (or the CFO minus capex figure
// the snapshot derives from it). With an incomplete cash flow statement it
// rebuilds FCFF from the income side: EBIT(1-tax) + D&A - capex - change in
// working capital.
func baseFCF(cfg common.ValuationConfig, fin *models.CompanyFinancials) *float64 {
	if v := fin.Cash.FreeCashFlow; v != nil {
		return v
	}

	ebit := fin.Income.EBIT
	if ebit == nil {
		return nil
	}
	da := fin.Cash.Depreciation
	if da == nil {
		da = fin.Income.Depreciation
	}

	fcff := *ebit*(1-cfg.TaxRate) +
		models.Val(da) -
		models.Val(fin.Cash.CapitalExpenditure) -
		models.Val(fin.Cash.ChangeInWorkingCapital)
	return models.Float(fcff)
}

// growthEstimate picks the first-year FCF growth rate from reported growth
// figures, clamped to the configured band. With no growth data at all the
// conservative fallback rate applies.
func growthEstimate(cfg common.ValuationConfig, fin *models.CompanyFinancials) *float64 {
	raw := fin.Metrics.EarningsGrowth
	if raw == nil {
		raw = fin.Metrics.RevenueGrowth
	}

	g := cfg.FallbackGrowth
	if raw != nil {
		g = *raw
	}
	if g < cfg.MinFCFGrowth {
		g = cfg.MinFCFGrowth
	}
	if g > cfg.MaxFCFGrowth {
		g = cfg.MaxFCFGrowth
	}
	return models.Float(g)
}
