package valuation

import (
	"github.com/choulifeisgood/valuation-agent/internal/common"
	"github.com/choulifeisgood/valuation-agent/internal/models"
)

// Engine runs the valuation side of the pipeline: DCF, relative valuation,
// and the blended fair-value range. It is stateless apart from its
// configured assumptions.
type Engine struct {
	cfg    common.ValuationConfig
	logger *common.Logger
}

// NewEngine creates a valuation engine with the given model assumptions
func NewEngine(cfg common.ValuationConfig, logger *common.Logger) *Engine {
	return &Engine{cfg: cfg, logger: logger}
}

// Run values the company. Peers may be nil, in which case the relative
// methods stay unresolved and the blend falls back to DCF alone.
func (e *Engine) Run(fin *models.CompanyFinancials, peers *models.PeerMultiples) *models.ValuationResult {
	dcf := runDCF(e.cfg, fin)
	relative := runRelative(fin, peers)
	fairValue, weights := blend(e.cfg, dcf, relative)

	result := &models.ValuationResult{
		DCF:            dcf,
		Relative:       relative,
		FairValue:      fairValue,
		FootballField:  buildFootballField(e.cfg, fin, dcf, relative),
		AppliedWeights: weights,
	}

	e.logger.Debug().
		Str("ticker", fin.Ticker).
		Bool("dcf_resolved", dcf.IntrinsicValue != nil).
		Bool("fair_value_resolved", fairValue.Available()).
		Float64("dcf_weight", weights.DCF).
		Float64("relative_weight", weights.Relative).
		Msg("Valuation complete")

	return result
}
