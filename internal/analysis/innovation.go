package analysis

import "strings"

// InnovationTokenBudget is how many unfamiliar technologies a solo MVP can
// afford.
const InnovationTokenBudget = 3

// InnovationBudget counts the innovation tokens a tech stack spends.
type InnovationBudget struct {
	Boring   []string `json:"boring"`
	Novel    []string `json:"novel"`
	Spent    int      `json:"spent"`
	Budget   int      `json:"budget"`
	Exceeded bool     `json:"exceeded"`
}

// CountInnovationTokens charges one token for every stack entry that is not
// on the boring-technology list.
func CountInnovationTokens(techStack []string) InnovationBudget {
	b := InnovationBudget{Budget: InnovationTokenBudget}
	for _, tech := range techStack {
		name := strings.TrimSpace(tech)
		if name == "" {
			continue
		}
		if isBoring(strings.ToLower(name)) {
			b.Boring = append(b.Boring, name)
			continue
		}
		b.Novel = append(b.Novel, name)
	}
	b.Spent = len(b.Novel)
	b.Exceeded = b.Spent > b.Budget
	return b
}

// isBoring matches whole names or prefixes ("postgresql", "react native")
// rather than substrings, so "go" does not match "mongodb".
func isBoring(name string) bool {
	for _, tech := range boringTechnology {
		if name == tech || strings.HasPrefix(name, tech+" ") || strings.HasPrefix(name, tech+".") {
			return true
		}
	}
	return false
}
