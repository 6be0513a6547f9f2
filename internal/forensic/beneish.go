package forensic

import (
	"fmt"

	"github.com/choulifeisgood/valuation-agent/internal/models"
)

// BeneishThreshold is the M-Score above which earnings manipulation is
// likely, per Beneish (1999).
const BeneishThreshold = -1.78

// BeneishMScore computes the eight-variable earnings-manipulation screen.
// The score requires sales growth and total accruals to be computable; the
// remaining indexes fall back to their neutral value of 1.0 when a line item
// is missing, since a missing SG&A or depreciation figure says nothing about
// manipulation.
func BeneishMScore(fin *models.CompanyFinancials) models.BeneishResult {
	unknown := models.BeneishResult{
		Threshold:      BeneishThreshold,
		Interpretation: "Insufficient data to screen",
	}

	sgi := index(fin.Income.Revenue, fin.Income.RevenuePrev)
	tata := totalAccruals(fin)
	if sgi == nil || tata == nil {
		return unknown
	}

	dsri := indexOfRatios(
		fin.Balance.Receivables, fin.Income.Revenue,
		fin.Balance.ReceivablesPrev, fin.Income.RevenuePrev,
	)
	gmi := indexOfRatios(
		fin.Income.GrossProfitPrev, fin.Income.RevenuePrev,
		fin.Income.GrossProfit, fin.Income.Revenue,
	)
	aqi := assetQualityIndex(fin)
	depi := depreciationIndex(fin)
	sgai := indexOfRatios(
		fin.Income.SGA, fin.Income.Revenue,
		fin.Income.SGAPrev, fin.Income.RevenuePrev,
	)
	lvgi := leverageIndex(fin)

	m := -4.84 +
		0.92*neutral(dsri) +
		0.528*neutral(gmi) +
		0.404*neutral(aqi) +
		0.892**sgi +
		0.115*neutral(depi) -
		0.172*neutral(sgai) +
		4.679**tata -
		0.327*neutral(lvgi)

	redFlag := m > BeneishThreshold
	interp := fmt.Sprintf("M-Score %.2f: below manipulation threshold", m)
	if redFlag {
		interp = fmt.Sprintf("M-Score %.2f: earnings manipulation characteristics present", m)
	}

	return models.BeneishResult{
		Score:          models.Round2(models.Float(m)),
		RedFlag:        redFlag,
		Interpretation: interp,
		Threshold:      BeneishThreshold,
	}
}

// index computes cur/prev, nil when uncomputable.
func index(cur, prev *float64) *float64 {
	if !models.Avail(cur, prev) || *prev == 0 {
		return nil
	}
	return models.Float(*cur / *prev)
}

// indexOfRatios computes (a1/b1)/(a2/b2), nil when uncomputable.
func indexOfRatios(a1, b1, a2, b2 *float64) *float64 {
	r1 := models.Ratio(a1, b1)
	r2 := models.Ratio(a2, b2)
	return index(r1, r2)
}

// totalAccruals is (net income - operating cash flow) / total assets.
func totalAccruals(fin *models.CompanyFinancials) *float64 {
	if !models.Avail(fin.Income.NetIncome, fin.Cash.OperatingCashFlow) {
		return nil
	}
	ta := fin.Balance.TotalAssets
	if ta == nil || *ta <= 0 {
		return nil
	}
	return models.Float((*fin.Income.NetIncome - *fin.Cash.OperatingCashFlow) / *ta)
}

// assetQualityIndex compares the share of assets that is neither current
// assets nor PP&E across the two years.
func assetQualityIndex(fin *models.CompanyFinancials) *float64 {
	cur := softAssetShare(fin.Balance.CurrentAssets, fin.Balance.PPE, fin.Balance.TotalAssets)
	prev := softAssetShare(fin.Balance.CurrentAssetsPrev, fin.Balance.PPEPrev, fin.Balance.TotalAssetsPrev)
	return index(cur, prev)
}

func softAssetShare(currentAssets, ppe, totalAssets *float64) *float64 {
	if !models.Avail(currentAssets, ppe, totalAssets) || *totalAssets <= 0 {
		return nil
	}
	return models.Float(1 - (*currentAssets+*ppe)/(*totalAssets))
}

// depreciationIndex compares depreciation rates, prior year over current.
func depreciationIndex(fin *models.CompanyFinancials) *float64 {
	cur := depreciationRate(fin.Cash.Depreciation, fin.Balance.PPE)
	prev := depreciationRate(fin.Cash.DepreciationPrev, fin.Balance.PPEPrev)
	return index(prev, cur)
}

func depreciationRate(dep, ppe *float64) *float64 {
	if !models.Avail(dep, ppe) || *dep+*ppe <= 0 {
		return nil
	}
	return models.Float(*dep / (*dep + *ppe))
}

// leverageIndex compares total debt plus current liabilities over assets
// across the two years.
func leverageIndex(fin *models.CompanyFinancials) *float64 {
	cur := leverage(fin.Balance.TotalDebt, fin.Balance.CurrentLiabilities, fin.Balance.TotalAssets)
	prev := leverage(fin.Balance.TotalDebtPrev, fin.Balance.CurrentLiabilitiesPrev, fin.Balance.TotalAssetsPrev)
	return index(cur, prev)
}

func leverage(debt, currentLiabilities, totalAssets *float64) *float64 {
	if !models.Avail(debt, currentLiabilities, totalAssets) || *totalAssets <= 0 {
		return nil
	}
	return models.Float((*debt + *currentLiabilities) / *totalAssets)
}

// neutral substitutes 1.0 for an uncomputable index.
func neutral(v *float64) float64 {
	if v == nil {
		return 1.0
	}
	return *v
}
