package model

type Tier string

var (
	TierNone Tier = "none"
	Tier2of8 Tier = "2/8"
	Tier4of4 Tier = "4/4"
	Tier8of8 Tier = "8/8"
)

// TierReport summarizes how many reward credentials an account holds.
type TierReport struct {
	Has2of8    bool
	Has4of4    bool
	Has8of8    bool
	TotalCount int
}

// NewTierReport derives tier flags from the number of held credentials.
func NewTierReport(total int) TierReport {
	return TierReport{
		Has2of8:    total >= 2,
		Has4of4:    total >= 4,
		Has8of8:    total == len(RewardCredentials),
		TotalCount: total,
	}
}

// Eligibility returns the highest tier the report qualifies for.
func (r TierReport) Eligibility() Tier {
	switch {
	case r.Has8of8:
		return Tier8of8
	case r.Has4of4:
		return Tier4of4
	case r.Has2of8:
		return Tier2of8
	default:
		return TierNone
	}
}
