package tier

import (
	"fmt"
	"io"

	"github.com/goodnatureofminers/credtier/internal/model"
)

// Format writes the human-readable eligibility report for r.
func Format(w io.Writer, r model.TierReport) error {
	_, err := fmt.Fprintf(w,
		"Credential check results: { has2of8: %t, has4of4: %t, has8of8: %t, totalCount: %d }\n"+
			"User has %d out of %d credentials\n%s\n",
		r.Has2of8, r.Has4of4, r.Has8of8, r.TotalCount,
		r.TotalCount, len(model.RewardCredentials),
		eligibilitySentence(r),
	)
	return err
}

func eligibilitySentence(r model.TierReport) string {
	switch r.Eligibility() {
	case model.Tier8of8:
		return "User eligible for 8/8 rewards (has all credentials)"
	case model.Tier4of4:
		return fmt.Sprintf("User eligible for 4/4 rewards (has %d credentials)", r.TotalCount)
	case model.Tier2of8:
		return fmt.Sprintf("User eligible for 2/8 rewards (has %d credentials)", r.TotalCount)
	default:
		return fmt.Sprintf("User not eligible for any rewards (has only %d credentials)", r.TotalCount)
	}
}
