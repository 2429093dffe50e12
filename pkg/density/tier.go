package density

// Tier is a quality class for a texel density.
type Tier int

const (
	TierLow Tier = iota
	TierMedium
	TierGood
	TierHigh
)

// Inclusive lower bounds, in px/cm.
const (
	HighThreshold   = 20.0
	GoodThreshold   = 10.0
	MediumThreshold = 5.0
)

// Classify maps a density to its tier. NaN classifies as TierLow.
func Classify(density float64) Tier {
	switch {
	case density >= HighThreshold:
		return TierHigh
	case density >= GoodThreshold:
		return TierGood
	case density >= MediumThreshold:
		return TierMedium
	default:
		return TierLow
	}
}

func (t Tier) String() string {
	switch t {
	case TierHigh:
		return "High"
	case TierGood:
		return "Good"
	case TierMedium:
		return "Medium"
	default:
		return "Low"
	}
}

// Color returns the hex display color for the tier.
func (t Tier) Color() string {
	switch t {
	case TierHigh:
		return "#10b981"
	case TierGood:
		return "#3b82f6"
	case TierMedium:
		return "#f59e0b"
	default:
		return "#ef4444"
	}
}

// Tiers lists all tiers from best to worst.
func Tiers() []Tier {
	return []Tier{TierHigh, TierGood, TierMedium, TierLow}
}
