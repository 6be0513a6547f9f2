// Package valuation implements the DCF and peer-multiple valuation engine
// and the fair-value blend.
package valuation

import (
	"github.com/choulifeisgood/valuation-agent/internal/common"
	"github.com/choulifeisgood/valuation-agent/internal/models"
)

// defaultBeta is used when the provider reports no beta. A market-average
// beta keeps the CAPM estimate usable for thinly covered tickers.
const defaultBeta = 1.0

// Credit spread tiers keyed to interest coverage. An uncovered or unknown
// interest burden falls into the widest spread.
const (
	spreadTight    = 0.01 // coverage > 8
	spreadNormal   = 0.02 // coverage > 4
	spreadStressed = 0.04 // coverage > 2
	spreadWide     = 0.08
)

// costOfEquity applies CAPM.
func costOfEquity(cfg common.ValuationConfig, beta *float64) float64 {
	b := defaultBeta
	if beta != nil {
		b = *beta
	}
	return cfg.RiskFreeRate + b*cfg.EquityRiskPremium
}

// costOfDebt is the risk-free rate plus a credit spread inferred from
// interest coverage.
func costOfDebt(cfg common.ValuationConfig, interestCoverage *float64) float64 {
	spread := spreadWide
	if interestCoverage != nil {
		switch {
		case *interestCoverage > 8:
			spread = spreadTight
		case *interestCoverage > 4:
			spread = spreadNormal
		case *interestCoverage > 2:
			spread = spreadStressed
		}
	}
	return cfg.RiskFreeRate + spread
}

// computeWACC blends the cost of equity and after-tax cost of debt by
// capital structure. Market cap is required; debt defaults to zero so an
// unlevered company still gets a discount rate.
func computeWACC(cfg common.ValuationConfig, fin *models.CompanyFinancials) *float64 {
	if fin.MarketCap == nil || *fin.MarketCap <= 0 {
		return nil
	}

	equity := *fin.MarketCap
	debt := models.Val(fin.Balance.TotalDebt)
	if debt < 0 {
		debt = 0
	}

	total := equity + debt
	ke := costOfEquity(cfg, fin.Beta)
	kd := costOfDebt(cfg, fin.Metrics.InterestCoverage)

	wacc := (equity/total)*ke + (debt/total)*kd*(1-cfg.TaxRate)
	return models.Float(wacc)
}
