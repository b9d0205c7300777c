package formatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/alexanderramin/mvpcoach/internal/analysis"
	"github.com/alexanderramin/mvpcoach/internal/classifier"
	"github.com/alexanderramin/mvpcoach/internal/coach"
	"github.com/alexanderramin/mvpcoach/internal/domain"
	"github.com/alexanderramin/mvpcoach/internal/questions"
	"github.com/alexanderramin/mvpcoach/internal/report"
)

func listlyContext() domain.DerivedContext {
	return domain.DerivedContext{
		ProjectName:      "Listly",
		Problem:          "Remote teams lose track of small tasks every day",
		PainLevel:        9,
		TargetAudience:   "remote teams",
		ValueProposition: "Share todo lists instantly without accounts",
		MVPGoal:          "share todo lists",
		CoreFeatures:     []string{"Create todo items", "Share list by link"},
		ExtraFeatures:    []string{"Real-time collaborative editing", "Dark mode toggle"},
		TechStack:        []string{"Rails", "Postgres"},
		UserCount:        100,
		Timeline:         "8 weeks",
		TimelineWeeks:    8,
		LaunchPlan:       "Post on Reddit",
	}
}

func TestFormatQuestion(t *testing.T) {
	q, ok := questions.ByID(questions.IDProblem)
	assert.True(t, ok)

	assert.Equal(t, "Question 3 of 14 · problem\n", stripANSI(FormatStep(q, 3, 14)))

	out := stripANSI(FormatQuestion(q))
	assert.Contains(t, out, q.Text+"\n")
	assert.Contains(t, out, q.Help)
}

func TestFormatFeedback(t *testing.T) {
	fb := &coach.Feedback{
		Type:  domain.QuestionProblemValidation,
		Score: 6,
		Issues: []coach.Issue{
			{Tag: "no_frequency", Severity: domain.SeverityWarning, Message: "How often does this happen?"},
			{Tag: "solution_not_problem", Severity: domain.SeverityCritical, Message: "This describes a solution."},
		},
		Suggestions: []string{"Describe the moment the pain shows up"},
		Assessment:  classifier.NewAssessment(domain.QuestionProblemValidation),
		Source:      coach.SourceDeterministic,
	}

	out := stripANSI(FormatFeedback(fb))
	assert.Contains(t, out, "[██████░░░░] 6/10")
	assert.Contains(t, out, "(deterministic)")
	assert.Contains(t, out, "▲ warning How often does this happen?")
	assert.Contains(t, out, "✖ critical This describes a solution.")
	assert.Contains(t, out, "Suggestions")
	assert.Contains(t, out, "  - Describe the moment the pain shows up")
}

func TestFormatFeedback_Clean(t *testing.T) {
	out := stripANSI(FormatFeedback(&coach.Feedback{Score: 10, Source: coach.SourceLLM}))
	assert.Contains(t, out, "No issues found")
	assert.NotContains(t, out, "Suggestions")
	assert.Empty(t, FormatFeedback(nil))
}

func TestFormatSessionListFrom(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	sessions := []*domain.Session{
		{ID: "0123456789abcdef", ProjectName: "Listly", Experience: domain.ExperienceExpert, Status: domain.SessionInProgress, UpdatedAt: now.Add(-5 * time.Minute)},
		{ID: "fedcba9876543210", Experience: domain.ExperienceBeginner, Status: domain.SessionCompleted, UpdatedAt: now.Add(-3 * time.Hour)},
	}

	out := stripANSI(FormatSessionListFrom(sessions, map[string]int{"0123456789abcdef": 4}, 14, now))
	assert.Contains(t, out, "01234567")
	assert.NotContains(t, out, "89abcdef")
	assert.Contains(t, out, "Listly")
	assert.Contains(t, out, "4/14")
	assert.Contains(t, out, "0/14")
	assert.Contains(t, out, "5m ago")
	assert.Contains(t, out, "3h ago")
	assert.Contains(t, out, "Completed")
	assert.Contains(t, out, "--")

	assert.Contains(t, stripANSI(FormatSessionList(nil, nil, 14)), "No sessions yet")
}

func TestFormatHistory(t *testing.T) {
	entries := []domain.AnswerEntry{
		{Seq: 1, QuestionText: "What is the name of your project?", QuestionType: domain.QuestionProjectName, AnswerText: "Listly"},
		{Seq: 2, QuestionText: "List your core features", QuestionType: domain.QuestionMVPScope, AnswerText: "a\nb"},
	}
	out := stripANSI(FormatHistory(entries))
	assert.Contains(t, out, " 1. What is the name of your project? [project-name]")
	assert.Contains(t, out, "    Listly\n")
	assert.Contains(t, out, "    a\n    b\n")

	assert.Contains(t, stripANSI(FormatHistory(nil)), "No answers recorded.")
}

func TestFormatClassification_Generic(t *testing.T) {
	out := stripANSI(FormatClassification("Anything else?"))
	assert.Contains(t, out, "generic")
	assert.Contains(t, out, "No type reached its minimum score")
	assert.Contains(t, out, "Answers the question directly")
}

func TestFormatCapacity_InfiniteUtilization(t *testing.T) {
	c := analysis.ValidateCapacity([]string{"login"}, 0, domain.ExperienceIntermediate)
	out := stripANSI(FormatCapacity(c))
	assert.Contains(t, out, "Utilization: n/a")
	assert.Contains(t, out, "Feasible:    ✖")
}

func TestFormatScope(t *testing.T) {
	assert.Contains(t, stripANSI(FormatScope(analysis.ProtectScope(2, 8))), "Scope fits (4 weeks per feature)")
	assert.Contains(t, stripANSI(FormatScope(analysis.ProtectScope(0, 8))), "∞ per feature")

	bad := analysis.ProtectScope(10, 5)
	assert.Contains(t, stripANSI(FormatScope(bad)), bad.Reason)
}

func TestFormatStack(t *testing.T) {
	o := analysis.DetectOverengineering([]string{"Kubernetes"}, nil, 10)
	in := analysis.CountInnovationTokens([]string{"Kubernetes"})

	out := stripANSI(FormatStack(o, in))
	assert.True(t, o.Detected)
	for _, issue := range o.Issues {
		assert.Contains(t, out, issue)
	}
	assert.Contains(t, out, "innovation tokens")

	clean := stripANSI(FormatStack(analysis.OverengineeringReport{}, analysis.InnovationBudget{Budget: 3}))
	assert.Contains(t, clean, "No over-engineering detected")
	assert.Contains(t, clean, "0 of 3 innovation tokens")
}

func TestFormatPlanReport(t *testing.T) {
	dc := listlyContext()
	r := analysis.Validate(analysis.PlanInput{Context: dc})

	out := stripANSI(FormatPlanReport(dc, &r))
	for _, h := range []string{"LISTLY", "FEATURES", "PRIORITIES", "CAPACITY", "TIMELINE", "SCOPE", "TECH STACK", "CONSISTENCY"} {
		assert.Contains(t, out, h)
	}
	assert.Contains(t, out, "Real-time collaborative editing")
	assert.Contains(t, out, "Utilization: 81.2%")
	assert.Contains(t, out, "must-have")
	assert.Contains(t, out, "Readiness")
}

func TestFormatRoadmap(t *testing.T) {
	dc := listlyContext()
	rm := report.BuildRoadmap(dc, analysis.Validate(analysis.PlanInput{Context: dc}))

	out := stripANSI(FormatRoadmap(rm))
	assert.Contains(t, out, "Build (weeks 1-2)")
	assert.Contains(t, out, "Polish (week 3)")
	assert.Contains(t, out, "Launch (week 4)")
	assert.Contains(t, out, "  - Deploy to production")
	assert.Contains(t, out, "Backlog")
	assert.Contains(t, out, "Real-time collaborative editing nice-to-have")
}

func TestVerdict(t *testing.T) {
	assert.Contains(t, stripANSI(Verdict(true)), "Ready to build")
	assert.Contains(t, stripANSI(Verdict(false)), "readiness of 60+")
}

func TestPriorityCounts(t *testing.T) {
	items := analysis.Prioritize([]string{"Create todo items", "Share list by link"}, 8, "share todo lists")
	assert.Contains(t, PriorityCounts(items), "must-have")
	assert.Equal(t, "none", stripANSI(PriorityCounts(nil)))
}
