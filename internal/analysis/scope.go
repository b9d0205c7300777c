package analysis

import (
	"fmt"
	"math"
)

const maxScopeFeatures = 5

// ScopeCheck is the verdict of the scope-protection gate.
type ScopeCheck struct {
	Valid           bool    `json:"valid"`
	Reason          string  `json:"reason,omitempty"`
	WeeksPerFeature float64 `json:"weeks_per_feature"`
}

// ProtectScope flags feature counts that cannot fit the timeline. With no
// features there is nothing to protect and the check passes.
func ProtectScope(featureCount int, timelineWeeks float64) ScopeCheck {
	if featureCount <= 0 {
		return ScopeCheck{Valid: true, WeeksPerFeature: math.Inf(1)}
	}

	wpf := timelineWeeks / float64(featureCount)
	check := ScopeCheck{WeeksPerFeature: wpf}

	switch {
	case wpf < 1:
		check.Reason = fmt.Sprintf("Impossible timeline: %.1f weeks per feature", wpf)
	case wpf < 2 && featureCount > 3:
		check.Reason = fmt.Sprintf("Risky timeline: %.1f weeks per feature across %d features", wpf, featureCount)
	case featureCount > maxScopeFeatures:
		check.Reason = fmt.Sprintf("Too many features: %d (keep it to %d or fewer)", featureCount, maxScopeFeatures)
	default:
		check.Valid = true
	}
	return check
}
