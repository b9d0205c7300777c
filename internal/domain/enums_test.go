package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseExperienceLevel(t *testing.T) {
	cases := map[string]ExperienceLevel{
		"":             ExperienceIntermediate,
		"beginner":     ExperienceBeginner,
		"  Expert ":    ExperienceExpert,
		"INTERMEDIATE": ExperienceIntermediate,
	}
	for in, want := range cases {
		got, err := ParseExperienceLevel(in)
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, want, got, "input %q", in)
	}
}

func TestParseExperienceLevel_Unknown(t *testing.T) {
	_, err := ParseExperienceLevel("wizard")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "wizard")
}

func TestDerivedContext_AllFeatures(t *testing.T) {
	dc := DerivedContext{
		CoreFeatures:  []string{"login", "todo list"},
		ExtraFeatures: []string{"dark mode"},
	}
	assert.Equal(t, []string{"login", "todo list", "dark mode"}, dc.AllFeatures())
	assert.Empty(t, DerivedContext{}.AllFeatures())
}

func TestCoalesceStr(t *testing.T) {
	assert.Equal(t, "b", CoalesceStr("", "b", "c"))
	assert.Equal(t, "", CoalesceStr())
	assert.Equal(t, 4, IntOrDefault(4, 9))
	assert.Equal(t, 9, IntOrDefault(0, 9))
}
