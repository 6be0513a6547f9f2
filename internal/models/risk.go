package models

import "fmt"

// AltmanZone classifies an Altman Z-Score.
type AltmanZone string

const (
	ZoneSafe     AltmanZone = "SAFE"
	ZoneGrey     AltmanZone = "GREY"
	ZoneDistress AltmanZone = "DISTRESS"
	ZoneUnknown  AltmanZone = "UNKNOWN"
)

// Label returns the human-readable interpretation of the zone. Every zone
// variant must have a case here; an unhandled variant is a programming error.
func (z AltmanZone) Label() string {
	switch z {
	case ZoneSafe:
		return "Safe zone - low bankruptcy risk"
	case ZoneGrey:
		return "Grey zone - financial stress warrants attention"
	case ZoneDistress:
		return "Distress zone - high bankruptcy risk"
	case ZoneUnknown:
		return "Insufficient data to classify"
	}
	panic(fmt.Sprintf("unhandled AltmanZone %q", string(z)))
}

// FScoreRating classifies a Piotroski F-Score.
type FScoreRating string

const (
	FScoreStrong   FScoreRating = "STRONG"
	FScoreModerate FScoreRating = "MODERATE"
	FScoreWeak     FScoreRating = "WEAK"
	FScoreUnknown  FScoreRating = "UNKNOWN"
)

// Label returns the human-readable interpretation of the rating.
func (r FScoreRating) Label() string {
	switch r {
	case FScoreStrong:
		return "Strong financial quality"
	case FScoreModerate:
		return "Moderate financial quality"
	case FScoreWeak:
		return "Weak financial quality"
	case FScoreUnknown:
		return "Insufficient data to rate"
	}
	panic(fmt.Sprintf("unhandled FScoreRating %q", string(r)))
}

// RiskLevel is the overall risk classification.
type RiskLevel string

const (
	RiskLow      RiskLevel = "LOW"
	RiskModerate RiskLevel = "MODERATE"
	RiskElevated RiskLevel = "ELEVATED"
	RiskHigh     RiskLevel = "HIGH"
)

// Label returns the human-readable description of the risk level.
func (l RiskLevel) Label() string {
	switch l {
	case RiskLow:
		return "Low risk - financial position is sound"
	case RiskModerate:
		return "Moderate risk - some caution warranted"
	case RiskElevated:
		return "Elevated risk - multiple financial warnings present"
	case RiskHigh:
		return "High risk - material financial distress indicators"
	}
	panic(fmt.Sprintf("unhandled RiskLevel %q", string(l)))
}

// FlagSeverity grades a risk flag.
type FlagSeverity string

const (
	SeverityWarning  FlagSeverity = "WARNING"
	SeverityCritical FlagSeverity = "CRITICAL"
)

// RiskFlag is a single rule-table hit.
type RiskFlag struct {
	Severity FlagSeverity `json:"severity"`
	Code     string       `json:"code"`
	Message  string       `json:"message"`
}

// AltmanResult holds the Z-Score output. Score is nil when any of the five
// component ratios could not be computed.
type AltmanResult struct {
	Score          *float64           `json:"score"`
	Zone           AltmanZone         `json:"zone"`
	Interpretation string             `json:"interpretation"`
	Components     map[string]float64 `json:"components,omitempty"`
}

// PiotroskiResult holds the F-Score output. Criteria with unavailable inputs
// are skipped and reduce MaxScore instead of counting against the company.
type PiotroskiResult struct {
	Score          *int           `json:"score"`
	MaxScore       int            `json:"max_score"`
	Rating         FScoreRating   `json:"rating"`
	Interpretation string         `json:"interpretation"`
	Components     map[string]int `json:"components,omitempty"`
	Skipped        []string       `json:"skipped,omitempty"`
}

// BeneishResult holds the M-Score earnings-manipulation screen.
type BeneishResult struct {
	Score          *float64 `json:"score"`
	RedFlag        bool     `json:"red_flag"`
	Interpretation string   `json:"interpretation"`
	Threshold      float64  `json:"threshold"`
}

// RiskAssessment is the forensic scorer's complete output.
type RiskAssessment struct {
	AltmanZ     AltmanResult    `json:"altman_z_score"`
	PiotroskiF  PiotroskiResult `json:"piotroski_f_score"`
	Beneish     BeneishResult   `json:"beneish_m_score"`
	Flags       []RiskFlag      `json:"risk_flags"`
	OverallRisk RiskLevel       `json:"overall_risk"`
	RiskSummary string          `json:"risk_summary"`
}

// CriticalCount returns the number of CRITICAL flags.
func (r *RiskAssessment) CriticalCount() int {
	n := 0
	for _, f := range r.Flags {
		if f.Severity == SeverityCritical {
			n++
		}
	}
	return n
}

// WarningCount returns the number of WARNING flags.
func (r *RiskAssessment) WarningCount() int {
	n := 0
	for _, f := range r.Flags {
		if f.Severity == SeverityWarning {
			n++
		}
	}
	return n
}
