package valuation

import (
	"github.com/choulifeisgood/valuation-agent/internal/models"
)

// runRelative applies peer-median multiples to the company's own metrics.
// Each implied price resolves independently; a missing peer multiple or
// company metric nils only that method.
func runRelative(fin *models.CompanyFinancials, peers *models.PeerMultiples) models.RelativeResult {
	result := models.RelativeResult{}
	if peers != nil {
		result.PeerMedians = *peers
	}

	shares := fin.SharesOutstanding
	if shares == nil || *shares <= 0 {
		return result
	}

	result.EPS = models.Ratio(fin.Income.NetIncome, shares)
	result.BookValuePerShare = models.Ratio(fin.Balance.StockholdersEquity, shares)

	if peers == nil {
		return result
	}

	// P/E and P/B apply directly to per-share figures, and only when those
	// figures are positive.
	result.PEImplied = impliedFromMultiple(peers.PE, result.EPS)
	result.PBImplied = impliedFromMultiple(peers.PB, result.BookValuePerShare)

	// Enterprise multiples bridge to equity per share through net debt.
	netDebt := models.Val(fin.Balance.TotalDebt) - models.Val(fin.Balance.Cash)
	result.EVEBITDAImplied = impliedFromEV(peers.EVToEBITDA, fin.Income.EBITDA, netDebt, *shares)
	result.EVRevenueImplied = impliedFromEV(peers.EVToRevenue, fin.Income.Revenue, netDebt, *shares)

	return result
}

// impliedFromMultiple computes multiple * perShare, nil unless both are
// present and the per-share base is positive.
func impliedFromMultiple(multiple, perShare *float64) *float64 {
	if !models.Avail(multiple, perShare) || *perShare <= 0 {
		return nil
	}
	return models.Round2(models.Float(*multiple * *perShare))
}

// impliedFromEV converts an implied enterprise value to an equity price per
// share. A non-positive implied equity reads as unavailable.
func impliedFromEV(multiple, metric *float64, netDebt, shares float64) *float64 {
	if !models.Avail(multiple, metric) || *metric <= 0 {
		return nil
	}
	equity := *multiple**metric - netDebt
	if equity <= 0 {
		return nil
	}
	return models.Round2(models.Float(equity / shares))
}
