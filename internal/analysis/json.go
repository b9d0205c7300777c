package analysis

import (
	"encoding/json"
	"math"
)

// Finite returns nil for infinite or NaN values so they encode as JSON null.
func Finite(v float64) *float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return nil
	}
	return &v
}

func (c CapacityAnalysis) MarshalJSON() ([]byte, error) {
	type plain CapacityAnalysis
	return json.Marshal(struct {
		plain
		UtilizationPercent *float64 `json:"utilization_percent"`
	}{plain(c), Finite(c.UtilizationPercent)})
}

func (s ScopeCheck) MarshalJSON() ([]byte, error) {
	type plain ScopeCheck
	return json.Marshal(struct {
		plain
		WeeksPerFeature *float64 `json:"weeks_per_feature"`
	}{plain(s), Finite(s.WeeksPerFeature)})
}
