package domain

// CoalesceStr returns the first non-empty string from vals.
func CoalesceStr(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

// IntOrDefault returns v when it is positive, otherwise fallback.
func IntOrDefault(v, fallback int) int {
	if v > 0 {
		return v
	}
	return fallback
}
