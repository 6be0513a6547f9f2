package valuation

import (
	"github.com/choulifeisgood/valuation-agent/internal/common"
	"github.com/choulifeisgood/valuation-agent/internal/models"
)

// blend combines the DCF intrinsic value and the mean of the available
// implied prices into one fair-value range. Weights renormalize over the
// methods that actually produced a value; with neither available the range
// stays unresolved.
func blend(cfg common.ValuationConfig, dcf models.DCFResult, relative models.RelativeResult) (models.FairValueRange, models.MethodWeights) {
	dcfMid := dcf.IntrinsicValue
	relMid := relativeMid(relative)

	switch {
	case dcfMid == nil && relMid == nil:
		return models.FairValueRange{}, models.MethodWeights{}

	case relMid == nil:
		return bandRange(*dcfMid, cfg.DCFBandPct), models.MethodWeights{DCF: 1}

	case dcfMid == nil:
		return bandRange(*relMid, cfg.MultipleBandPct), models.MethodWeights{Relative: 1}
	}

	weights := models.MethodWeights{DCF: cfg.DCFWeight, Relative: cfg.RelativeWeight}

	mid := weights.DCF**dcfMid + weights.Relative**relMid
	low := weights.DCF**dcfMid*(1-cfg.DCFBandPct) + weights.Relative**relMid*(1-cfg.MultipleBandPct)
	high := weights.DCF**dcfMid*(1+cfg.DCFBandPct) + weights.Relative**relMid*(1+cfg.MultipleBandPct)

	return models.FairValueRange{
		Low:  models.Round2(models.Float(low)),
		Mid:  models.Round2(models.Float(mid)),
		High: models.Round2(models.Float(high)),
	}, weights
}

// relativeMid averages the implied prices that resolved.
func relativeMid(relative models.RelativeResult) *float64 {
	implied := []*float64{
		relative.PEImplied,
		relative.EVEBITDAImplied,
		relative.EVRevenueImplied,
		relative.PBImplied,
	}

	sum := 0.0
	n := 0
	for _, v := range implied {
		if v != nil {
			sum += *v
			n++
		}
	}
	if n == 0 {
		return nil
	}
	return models.Float(sum / float64(n))
}

func bandRange(mid, band float64) models.FairValueRange {
	return models.FairValueRange{
		Low:  models.Round2(models.Float(mid * (1 - band))),
		Mid:  models.Round2(models.Float(mid)),
		High: models.Round2(models.Float(mid * (1 + band))),
	}
}

// buildFootballField lays out one bar per resolved method.
func buildFootballField(cfg common.ValuationConfig, fin *models.CompanyFinancials, dcf models.DCFResult, relative models.RelativeResult) models.FootballField {
	field := models.FootballField{CurrentPrice: fin.CurrentPrice}

	addBar := func(method string, mid *float64, band float64) {
		if mid == nil {
			return
		}
		field.Bars = append(field.Bars, models.ValuationBar{
			Method: method,
			Low:    *mid * (1 - band),
			Mid:    *mid,
			High:   *mid * (1 + band),
		})
	}

	addBar("DCF", dcf.IntrinsicValue, cfg.DCFBandPct)
	addBar("P/E Multiple", relative.PEImplied, cfg.MultipleBandPct)
	addBar("EV/EBITDA Multiple", relative.EVEBITDAImplied, cfg.MultipleBandPct)
	addBar("EV/Revenue Multiple", relative.EVRevenueImplied, cfg.MultipleBandPct)
	addBar("P/B Multiple", relative.PBImplied, cfg.MultipleBandPct)

	return field
}
