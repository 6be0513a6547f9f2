package forensic

import (
	"fmt"

	"github.com/choulifeisgood/valuation-agent/internal/models"
)

// criterion is one Piotroski test. eval returns (pass, evaluable): a
// criterion whose inputs are missing is skipped and shrinks the maximum
// score instead of scoring zero.
type criterion struct {
	name string
	eval func(fin *models.CompanyFinancials) (bool, bool)
}

var piotroskiCriteria = []criterion{
	{"positive_net_income", func(f *models.CompanyFinancials) (bool, bool) {
		if f.Income.NetIncome == nil {
			return false, false
		}
		return *f.Income.NetIncome > 0, true
	}},
	{"positive_operating_cash_flow", func(f *models.CompanyFinancials) (bool, bool) {
		if f.Cash.OperatingCashFlow == nil {
			return false, false
		}
		return *f.Cash.OperatingCashFlow > 0, true
	}},
	{"improving_roa", func(f *models.CompanyFinancials) (bool, bool) {
		cur := assetReturn(f.Income.NetIncome, f.Balance.TotalAssets)
		prev := assetReturn(f.Income.NetIncomePrev, f.Balance.TotalAssetsPrev)
		if cur == nil || prev == nil {
			return false, false
		}
		return *cur > *prev, true
	}},
	{"cash_flow_exceeds_income", func(f *models.CompanyFinancials) (bool, bool) {
		if !models.Avail(f.Cash.OperatingCashFlow, f.Income.NetIncome) {
			return false, false
		}
		return *f.Cash.OperatingCashFlow > *f.Income.NetIncome, true
	}},
	{"decreasing_leverage", func(f *models.CompanyFinancials) (bool, bool) {
		cur := debtRatio(f.Balance.TotalDebt, f.Balance.TotalAssets)
		prev := debtRatio(f.Balance.TotalDebtPrev, f.Balance.TotalAssetsPrev)
		if cur == nil || prev == nil {
			return false, false
		}
		return *cur <= *prev, true
	}},
	{"improving_current_ratio", func(f *models.CompanyFinancials) (bool, bool) {
		cur := currentRatio(f.Balance.CurrentAssets, f.Balance.CurrentLiabilities)
		prev := currentRatio(f.Balance.CurrentAssetsPrev, f.Balance.CurrentLiabilitiesPrev)
		if cur == nil || prev == nil {
			return false, false
		}
		return *cur > *prev, true
	}},
	{"no_share_dilution", func(f *models.CompanyFinancials) (bool, bool) {
		if !models.Avail(f.Balance.SharesIssued, f.Balance.SharesIssuedPrev) {
			return false, false
		}
		return *f.Balance.SharesIssued <= *f.Balance.SharesIssuedPrev, true
	}},
	{"improving_gross_margin", func(f *models.CompanyFinancials) (bool, bool) {
		cur := models.Ratio(f.Income.GrossProfit, f.Income.Revenue)
		prev := models.Ratio(f.Income.GrossProfitPrev, f.Income.RevenuePrev)
		if cur == nil || prev == nil {
			return false, false
		}
		return *cur > *prev, true
	}},
	{"improving_asset_turnover", func(f *models.CompanyFinancials) (bool, bool) {
		cur := turnover(f.Income.Revenue, f.Balance.TotalAssets)
		prev := turnover(f.Income.RevenuePrev, f.Balance.TotalAssetsPrev)
		if cur == nil || prev == nil {
			return false, false
		}
		return *cur > *prev, true
	}},
}

// PiotroskiFScore evaluates the nine criteria. Skipped criteria reduce
// MaxScore; the rating is taken from the score rescaled to the full
// nine-point range so a sparse statement set is not penalized.
func PiotroskiFScore(fin *models.CompanyFinancials) models.PiotroskiResult {
	score := 0
	maxScore := 0
	components := make(map[string]int, len(piotroskiCriteria))
	var skipped []string

	for _, c := range piotroskiCriteria {
		pass, evaluable := c.eval(fin)
		if !evaluable {
			skipped = append(skipped, c.name)
			continue
		}
		maxScore++
		if pass {
			components[c.name] = 1
			score++
		} else {
			components[c.name] = 0
		}
	}

	if maxScore == 0 {
		return models.PiotroskiResult{
			Rating:         models.FScoreUnknown,
			Interpretation: models.FScoreUnknown.Label(),
			Skipped:        skipped,
		}
	}

	rating := ratingForScore(score, maxScore)

	return models.PiotroskiResult{
		Score:          &score,
		MaxScore:       maxScore,
		Rating:         rating,
		Interpretation: fmt.Sprintf("F-Score %d/%d: %s", score, maxScore, rating.Label()),
		Components:     components,
		Skipped:        skipped,
	}
}

// ratingForScore rescales score to the nine-point range before applying the
// standard thresholds.
func ratingForScore(score, maxScore int) models.FScoreRating {
	scaled := float64(score) * 9.0 / float64(maxScore)
	switch {
	case scaled >= 7:
		return models.FScoreStrong
	case scaled >= 4:
		return models.FScoreModerate
	default:
		return models.FScoreWeak
	}
}

func assetReturn(income, assets *float64) *float64 {
	if !models.Avail(income, assets) || *assets <= 0 {
		return nil
	}
	return models.Float(*income / *assets)
}

func debtRatio(debt, assets *float64) *float64 {
	if !models.Avail(debt, assets) || *assets <= 0 {
		return nil
	}
	return models.Float(*debt / *assets)
}

func currentRatio(assets, liabilities *float64) *float64 {
	if !models.Avail(assets, liabilities) || *liabilities <= 0 {
		return nil
	}
	return models.Float(*assets / *liabilities)
}

func turnover(revenue, assets *float64) *float64 {
	if !models.Avail(revenue, assets) || *assets <= 0 {
		return nil
	}
	return models.Float(*revenue / *assets)
}
