package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountInnovationTokens(t *testing.T) {
	tests := []struct {
		name         string
		stack        []string
		wantNovel    []string
		wantExceeded bool
	}{
		{"boring stack", []string{"Rails", "PostgreSQL", "Heroku"}, nil, false},
		{"prefix forms count as boring", []string{"Node.js", "React Native", "Ruby on Rails"}, nil, false},
		{"go does not match mongodb", []string{"Go", "MongoDB"}, []string{"MongoDB"}, false},
		{"within budget", []string{"Rust", "Svelte", "Postgres"}, []string{"Rust", "Svelte"}, false},
		{"exceeded", []string{"Rust", "Svelte", "Kafka", "Kubernetes"}, []string{"Rust", "Svelte", "Kafka", "Kubernetes"}, true},
		{"blank entries ignored", []string{" ", ""}, nil, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := CountInnovationTokens(tc.stack)
			assert.Equal(t, tc.wantNovel, got.Novel)
			assert.Equal(t, len(tc.wantNovel), got.Spent)
			assert.Equal(t, InnovationTokenBudget, got.Budget)
			assert.Equal(t, tc.wantExceeded, got.Exceeded)
		})
	}
}
