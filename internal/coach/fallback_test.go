package coach

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/mvpcoach/internal/classifier"
	"github.com/alexanderramin/mvpcoach/internal/domain"
	"github.com/alexanderramin/mvpcoach/internal/questions"
)

func TestDeterministicFeedback(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		answer   string
		dc       domain.DerivedContext
		wantType domain.QuestionType
		wantTags []string
		score    int
	}{
		{
			name:     "specific problem",
			id:       questions.IDProblem,
			answer:   "Freelancers lose hours every week chasing invoices in spreadsheets",
			wantType: domain.QuestionProblemValidation,
			score:    10,
		},
		{
			name:     "solution pitched as problem",
			id:       questions.IDProblem,
			answer:   "An app for everyone to track habits",
			wantType: domain.QuestionProblemValidation,
			wantTags: []string{"solution_not_problem", "vague_audience", "no_frequency"},
			score:    5,
		},
		{
			name:     "low pain",
			id:       questions.IDPainLevel,
			answer:   "3",
			wantType: domain.QuestionProblemValidation,
			wantTags: []string{"no_pain_evidence"},
			score:    7,
		},
		{
			name:     "value without customer",
			id:       questions.IDValueProposition,
			answer:   "Unlike spreadsheets, invoices are sent automatically",
			wantType: domain.QuestionValueProposition,
			wantTags: []string{"no_target_customer"},
			score:    9,
		},
		{
			name:     "value as feature list",
			id:       questions.IDValueProposition,
			answer:   "Dashboards, reminders, exports",
			dc:       domain.DerivedContext{TargetAudience: "freelancers"},
			wantType: domain.QuestionValueProposition,
			wantTags: []string{"no_differentiator", "feature_list_not_value"},
			score:    6,
		},
		{
			name:     "heavy and vague features",
			id:       questions.IDCoreFeatures,
			answer:   "Real-time chat with AI-powered translation, user login, export",
			wantType: domain.QuestionMVPScope,
			wantTags: []string{"high_complexity_feature", "vague_feature"},
			score:    8,
		},
		{
			name:     "features do not fit timeline",
			id:       questions.IDCoreFeatures,
			answer:   "share lists, invite friends, mark done, set reminders",
			dc:       domain.DerivedContext{TimelineWeeks: 4},
			wantType: domain.QuestionMVPScope,
			wantTags: []string{"scope_creep"},
			score:    7,
		},
		{
			name:     "extras push total over the limit",
			id:       questions.IDExtraFeatures,
			answer:   "dark mode theme, csv import",
			dc:       domain.DerivedContext{CoreFeatures: []string{"share lists", "invite friends", "mark done", "set reminders"}},
			wantType: domain.QuestionMVPScope,
			wantTags: []string{"too_many_features"},
			score:    7,
		},
		{
			name:     "no extras is fine",
			id:       questions.IDExtraFeatures,
			answer:   "",
			wantType: domain.QuestionMVPScope,
			score:    10,
		},
		{
			name:     "kubernetes for fifty users",
			id:       questions.IDTechStack,
			answer:   "Kubernetes, PostgreSQL",
			dc:       domain.DerivedContext{UserCount: 50, CoreFeatures: []string{"user login"}},
			wantType: domain.QuestionTechStack,
			wantTags: []string{"overengineering"},
			score:    7,
		},
		{
			name:     "novel tech for a beginner",
			id:       questions.IDTechStack,
			answer:   "Rails, Elixir",
			dc:       domain.DerivedContext{UserCount: 50000, Experience: domain.ExperienceBeginner},
			wantType: domain.QuestionTechStack,
			wantTags: []string{"unfamiliar_tech"},
			score:    9,
		},
		{
			name:     "user scale re-checks the stack",
			id:       questions.IDUserScale,
			answer:   "200",
			dc:       domain.DerivedContext{TechStack: []string{"Rails", "Redis"}},
			wantType: domain.QuestionTechStack,
			wantTags: []string{"overengineering"},
			score:    7,
		},
		{
			name:     "launch with channels and metric",
			id:       questions.IDLaunchPlan,
			answer:   "Post on Reddit and Indie Hackers, aim for 50 signups",
			dc:       domain.DerivedContext{TimelineWeeks: 8},
			wantType: domain.QuestionLaunchPlan,
			score:    10,
		},
		{
			name:     "launch with no channel",
			id:       questions.IDLaunchPlan,
			answer:   "We will see what happens",
			wantType: domain.QuestionLaunchPlan,
			wantTags: []string{"no_channel", "no_success_metric"},
			score:    6,
		},
		{
			name:     "late launch",
			id:       questions.IDTimeline,
			answer:   "16 weeks",
			wantType: domain.QuestionLaunchPlan,
			wantTags: []string{"launch_too_late"},
			score:    9,
		},
		{
			name:     "generic name",
			id:       questions.IDProjectName,
			answer:   "My App",
			wantType: domain.QuestionProjectName,
			wantTags: []string{"generic_name"},
			score:    9,
		},
		{
			name:     "empty description",
			id:       questions.IDProjectDescription,
			answer:   "  ",
			wantType: domain.QuestionProjectDescription,
			wantTags: []string{"empty_description"},
			score:    7,
		},
		{
			name:     "buzzword description",
			id:       questions.IDProjectDescription,
			answer:   "A revolutionary, seamless way to send invoices.",
			wantType: domain.QuestionProjectDescription,
			wantTags: []string{"buzzwords"},
			score:    9,
		},
		{
			name:     "terse audience",
			id:       questions.IDLaunchAudience,
			answer:   "Designers",
			wantType: domain.QuestionGeneric,
			wantTags: []string{"too_short"},
			score:    9,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, ok := questions.ByID(tt.id)
			require.True(t, ok)

			fb := DeterministicFeedback(q, tt.answer, tt.dc)

			assert.Equal(t, SourceDeterministic, fb.Source)
			assert.Equal(t, tt.wantType, fb.Type)
			assert.Equal(t, tt.wantType, fb.Assessment.Type())
			if tt.wantTags == nil {
				assert.Empty(t, fb.Issues)
			} else {
				assert.Equal(t, tt.wantTags, fb.Tags())
			}
			assert.Equal(t, tt.score, fb.Score)
		})
	}
}

func TestDeterministicFeedback_Assessments(t *testing.T) {
	t.Run("scope", func(t *testing.T) {
		q, _ := questions.ByID(questions.IDCoreFeatures)
		fb := DeterministicFeedback(q, "Real-time chat with AI-powered translation, user login", domain.DerivedContext{})

		a, ok := fb.Assessment.(*classifier.ScopeAssessment)
		require.True(t, ok)
		assert.Equal(t, []string{"Real-time chat with AI-powered translation", "user login"}, a.CoreFeatures)
		assert.Equal(t, []string{"Real-time chat with AI-powered translation"}, a.CutCandidates)
		assert.NotEmpty(t, a.ComplexityWarnings)
	})

	t.Run("tech stack", func(t *testing.T) {
		q, _ := questions.ByID(questions.IDTechStack)
		fb := DeterministicFeedback(q, "Kubernetes, PostgreSQL", domain.DerivedContext{UserCount: 50})

		a, ok := fb.Assessment.(*classifier.TechStackAssessment)
		require.True(t, ok)
		assert.Equal(t, []string{"Kubernetes", "PostgreSQL"}, a.Technologies)
		assert.Equal(t, 1, a.InnovationTokens)
		require.Len(t, a.Overkill, 1)
		assert.Contains(t, a.Overkill[0], "Kubernetes")
		assert.True(t, fb.HasCritical())
	})

	t.Run("launch", func(t *testing.T) {
		q, _ := questions.ByID(questions.IDLaunchPlan)
		fb := DeterministicFeedback(q, "Post on Reddit and Indie Hackers, aim for 50 signups", domain.DerivedContext{})

		a, ok := fb.Assessment.(*classifier.LaunchAssessment)
		require.True(t, ok)
		assert.Equal(t, []string{"reddit", "indie hackers"}, a.Channels)
		assert.Equal(t, "signup", a.SuccessMetric)
	})

	t.Run("feature count", func(t *testing.T) {
		q := questions.Question{Text: "How many features do you plan?", Kind: questions.KindNumber}
		fb := DeterministicFeedback(q, "8", domain.DerivedContext{})

		require.Equal(t, domain.QuestionFeatureCount, fb.Type)
		a, ok := fb.Assessment.(*classifier.FeatureCountAssessment)
		require.True(t, ok)
		assert.Equal(t, 8, a.Count)
		assert.Equal(t, []string{"too_many_features"}, fb.Tags())
		assert.True(t, fb.HasCritical())
	})
}

func TestScoreIssues_NeverNegative(t *testing.T) {
	issues := make([]Issue, 5)
	for i := range issues {
		issues[i] = Issue{Severity: domain.SeverityCritical}
	}
	assert.Equal(t, 0, scoreIssues(issues))
	assert.Equal(t, MaxScore, scoreIssues(nil))
}
