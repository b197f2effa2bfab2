package ai

// Personality tunes how a strategy weighs its options. Values are in [0,1].
type Personality struct {
	Name                string  `json:"name"`
	RiskTolerance       float64 `json:"riskTolerance"`
	DeceptionPropensity float64 `json:"deceptionPropensity"`
	ChatFrequency       float64 `json:"chatFrequency"`
}

var (
	CautiousConservative = Personality{
		Name:                "cautious_conservative",
		RiskTolerance:       0.2,
		DeceptionPropensity: 0.3,
		ChatFrequency:       0.4,
	}
	BoldAggressor = Personality{
		Name:                "bold_aggressor",
		RiskTolerance:       0.8,
		DeceptionPropensity: 0.6,
		ChatFrequency:       0.8,
	}
	QuietObserver = Personality{
		Name:                "quiet_observer",
		RiskTolerance:       0.5,
		DeceptionPropensity: 0.4,
		ChatFrequency:       0.1,
	}
)

// Personalities is the rotation used when filling seats.
var Personalities = []Personality{CautiousConservative, BoldAggressor, QuietObserver}
