package analysis

import (
	"testing"

	"github.com/alexanderramin/mvpcoach/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func answer(question, text string) domain.AnswerEntry {
	return domain.AnswerEntry{QuestionText: question, AnswerText: text}
}

func TestCheckConsistency_AudienceRedefined(t *testing.T) {
	history := []domain.AnswerEntry{
		answer("Who is your target audience?", "Indie developers"),
		answer("What problem are you solving?", "Shipping is slow"),
		answer("Describe your target audience in one sentence", "Small agencies"),
	}

	got := CheckConsistency(history, domain.DerivedContext{})

	assert.False(t, got.IsConsistent)
	require.Len(t, got.Issues, 1)
	assert.Contains(t, got.Issues[0], "redefined")
	assert.Contains(t, got.Issues[0], "2 different answers")
	assert.Equal(t, []string{"Who is your target audience?", "Describe your target audience in one sentence"}, got.AffectedQuestions)
}

func TestCheckConsistency_SameAudienceIgnoringCase(t *testing.T) {
	history := []domain.AnswerEntry{
		answer("Who is your target audience?", "Indie developers"),
		answer("Confirm your audience", " indie developers "),
	}

	got := CheckConsistency(history, domain.DerivedContext{})

	assert.True(t, got.IsConsistent)
	assert.Empty(t, got.Issues)
	assert.Empty(t, got.AffectedQuestions)
}

func TestCheckConsistency_TightTimeline(t *testing.T) {
	history := []domain.AnswerEntry{
		answer("What are your core features?", "a, b, c, d"),
		answer("How many weeks until launch?", "6 weeks"),
		answer("What problem are you solving?", "x"),
	}
	dc := domain.DerivedContext{Timeline: "6 weeks", CoreFeatures: []string{"a", "b", "c", "d"}}

	got := CheckConsistency(history, dc)

	assert.False(t, got.IsConsistent)
	require.Len(t, got.Issues, 1)
	assert.Equal(t, "Timeline very tight: only 1.5 weeks per feature", got.Issues[0])
	assert.Equal(t, []string{"What are your core features?", "How many weeks until launch?"}, got.AffectedQuestions)
}

func TestCheckConsistency_UnparsableTimelineIsSkipped(t *testing.T) {
	dc := domain.DerivedContext{Timeline: "about two months", CoreFeatures: []string{"a", "b", "c", "d", "e"}}
	assert.True(t, CheckConsistency(nil, dc).IsConsistent)
}

func TestCheckConsistency_NotesDoNotAffectVerdict(t *testing.T) {
	tests := []struct {
		name      string
		dc        domain.DerivedContext
		wantNotes int
	}{
		{
			name:      "disjoint age ranges",
			dc:        domain.DerivedContext{Problem: "Teens aged 13-17 can't find tutors", TargetAudience: "Parents aged 35 to 50"},
			wantNotes: 1,
		},
		{
			name:      "overlapping age ranges",
			dc:        domain.DerivedContext{Problem: "Students aged 18-25 overspend", TargetAudience: "People aged 20-30"},
			wantNotes: 0,
		},
		{
			name:      "sport missing from audience",
			dc:        domain.DerivedContext{Problem: "Amateur football teams struggle to schedule matches", TargetAudience: "busy parents"},
			wantNotes: 1,
		},
		{
			name:      "sport audience",
			dc:        domain.DerivedContext{Problem: "Amateur football teams struggle to schedule matches", TargetAudience: "Football coaches"},
			wantNotes: 0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := CheckConsistency(nil, tc.dc)
			assert.True(t, got.IsConsistent)
			assert.Len(t, got.Notes, tc.wantNotes)
		})
	}
}

func TestCheckConsistency_VerdictMatchesIssues(t *testing.T) {
	histories := [][]domain.AnswerEntry{
		nil,
		{answer("Target users?", "A"), answer("Target users again?", "B")},
		{answer("Target users?", "A"), answer("Target users again?", "a")},
	}
	for _, h := range histories {
		got := CheckConsistency(h, domain.DerivedContext{})
		assert.Equal(t, len(got.Issues) == 0, got.IsConsistent)
	}
}

func TestParseLeadingInt(t *testing.T) {
	tests := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{"8 weeks", 8, true},
		{"  12", 12, true},
		{"10-12 weeks", 10, true},
		{"about 8 weeks", 0, false},
		{"", 0, false},
	}
	for _, tc := range tests {
		got, ok := ParseLeadingInt(tc.in)
		assert.Equal(t, tc.wantOK, ok, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}
