package scoring

// Threshold separates the two verdicts. A probability strictly above it is
// FRAUD; exactly at the threshold is SAFE.
const Threshold = 0.5

// Gauge band boundaries for the risk dial (percent).
const (
	BandLowMax      = 50
	BandElevatedMax = 80
	BandCriticalMax = 100
)

// GaugeBand is one colored segment of the risk dial.
type GaugeBand struct {
	From  float64 `json:"from"`
	To    float64 `json:"to"`
	Label string  `json:"label"`
}

// Gauge is the single scalar the UI renders as a dial, plus the fixed band
// layout so the client does not recompute thresholds.
type Gauge struct {
	Value float64     `json:"value"`
	Min   float64     `json:"min"`
	Max   float64     `json:"max"`
	Bands []GaugeBand `json:"bands"`
}

// NewGauge builds the dial payload for a risk score in [0,100].
func NewGauge(riskScore float64) Gauge {
	return Gauge{
		Value: riskScore,
		Min:   0,
		Max:   BandCriticalMax,
		Bands: []GaugeBand{
			{From: 0, To: BandLowMax, Label: "low"},
			{From: BandLowMax, To: BandElevatedMax, Label: "elevated"},
			{From: BandElevatedMax, To: BandCriticalMax, Label: "critical"},
		},
	}
}

// Per-verdict rationale is fixed text. It deliberately does not explain which
// feature drove the score.
var (
	fraudRationale = []string{
		"Pattern match: resembles known malicious transaction signatures.",
		"Anomaly: irregular balance discrepancy detected.",
	}
	safeRationale = []string{
		"Behavior: consistent with standard account activity.",
	}
)

// Recommended actions per verdict.
const (
	ActionBlock   = "Block transaction immediately."
	ActionProcess = "Process transaction normally."
)
