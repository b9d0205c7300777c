package analysis

import (
	"fmt"
	"strings"
)

const (
	kubernetesUserThreshold    = 10000
	microserviceFeatureMinimum = 10
	redisUserThreshold         = 1000
	graphQLFeatureMinimum      = 5
)

// OverengineeringReport lists technology choices that are out of proportion
// to the stated scale. Issues and Suggestions are parallel slices.
type OverengineeringReport struct {
	Detected    bool     `json:"detected"`
	Issues      []string `json:"issues"`
	Suggestions []string `json:"suggestions"`
}

func (r *OverengineeringReport) add(issue, suggestion string) {
	r.Issues = append(r.Issues, issue)
	r.Suggestions = append(r.Suggestions, suggestion)
}

// DetectOverengineering applies each rule independently to the declared tech
// stack, feature list and expected user count.
func DetectOverengineering(techStack, features []string, userCount int) OverengineeringReport {
	var report OverengineeringReport

	has := func(keyword string) bool {
		return anyContainsAny(techStack, []string{keyword})
	}

	if (has("kubernetes") || has("k8s")) && userCount < kubernetesUserThreshold {
		report.add(
			fmt.Sprintf("Kubernetes is overkill for %d users", userCount),
			"Deploy to a single VPS or a PaaS (Render, Fly.io, Heroku) until you outgrow it",
		)
	}

	if has("microservice") && len(features) < microserviceFeatureMinimum {
		report.add(
			fmt.Sprintf("Microservices for %d features adds operational overhead", len(features)),
			"Start with a monolith and split services only when a boundary hurts",
		)
	}

	if has("redis") && userCount < redisUserThreshold {
		report.add(
			fmt.Sprintf("Redis is unnecessary for %d users", userCount),
			"Use an in-memory cache inside the application process",
		)
	}

	if has("graphql") && len(features) < graphQLFeatureMinimum {
		report.add(
			fmt.Sprintf("GraphQL for %d features is more schema than you need", len(features)),
			"Use a handful of REST endpoints",
		)
	}

	if dbs := distinctDatabases(techStack); len(dbs) > 1 {
		report.add(
			fmt.Sprintf("Multiple databases: %s", strings.Join(dbs, ", ")),
			"Pick a single database; Postgres covers most MVP needs",
		)
	}

	if anyContainsAny(features, realtimeFeatureKeywords) && !anyContainsAny(features, collaborationFeatureKeywords) {
		report.add(
			"Real-time updates without a chat or collaboration feature",
			"Use polling or a manual refresh instead of websockets",
		)
	}

	report.Detected = len(report.Issues) > 0
	return report
}

func distinctDatabases(techStack []string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, tech := range techStack {
		for _, db := range matchKeywords(strings.ToLower(tech), databaseKeywords) {
			if !seen[db] {
				seen[db] = true
				out = append(out, db)
			}
		}
	}
	return out
}
