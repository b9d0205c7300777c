package coach

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/alexanderramin/mvpcoach/internal/analysis"
	"github.com/alexanderramin/mvpcoach/internal/classifier"
	"github.com/alexanderramin/mvpcoach/internal/domain"
	"github.com/alexanderramin/mvpcoach/internal/questions"
)

const (
	criticalPenalty = 3
	warningPenalty  = 1

	lowPainThreshold      = 6
	maxCoreFeatures       = 5
	maxNameRunes          = 30
	maxNameWords          = 4
	maxDescriptionWords   = 30
	minGenericAnswerWords = 3
	latestLaunchWeeks     = 12
	recommendedFeatures   = 3
)

var (
	frequencyWords  = []string{"daily", "every day", "weekly", "every week", "monthly", "each", "always", "often", "hours", "times a"}
	workaroundWords = []string{"spreadsheet", "excel", "email", "manually", "by hand", "paper", "notes", "whatsapp", "google sheets"}
	solutionOpeners = []string{"an app", "a app", "a platform", "a tool", "a website", "a saas", "i want to build", "we build", "we will build"}
	vagueAudiences  = []string{"everyone", "everybody", "anyone", "all people", "anybody"}
	differentiators = []string{"instead of", "unlike", "faster", "cheaper", "without", "only", "first", "better than", "no need", "automatically", "in one place"}
	channels        = []string{"reddit", "hacker news", "product hunt", "twitter", "linkedin", "newsletter", "email", "discord", "slack", "indie hackers", "youtube", "tiktok", "instagram", "blog", "seo", "ads", "forum", "community", "meetup", "friends"}
	metricWords     = []string{"signup", "sign-up", "users", "customers", "paying", "revenue", "retention", "waitlist", "downloads"}
	genericNames    = []string{"app", "my app", "project", "my project", "test", "untitled", "mvp", "startup", "idea"}
	buzzwords       = []string{"revolutionary", "disruptive", "synergy", "leverage", "next-generation", "next generation", "world-class", "cutting-edge", "seamless", "game-changing", "paradigm"}
)

// checkInput is one answer plus the context with that answer already folded in.
type checkInput struct {
	question questions.Question
	answer   string
	lower    string
	dc       domain.DerivedContext
	cfg      classifier.TypeConfig
}

// free reports whether the answer is prose rather than a number or yes/no.
func (in checkInput) free() bool {
	switch in.question.Kind {
	case questions.KindText, questions.KindList, "":
		return true
	}
	return false
}

type checkFunc func(in checkInput, fb *Feedback)

var checks = map[domain.QuestionType]checkFunc{
	domain.QuestionProjectName:        checkName,
	domain.QuestionProjectDescription: checkDescription,
	domain.QuestionFeatureCount:       checkFeatureCount,
	domain.QuestionProblemValidation:  checkProblem,
	domain.QuestionValueProposition:   checkValue,
	domain.QuestionMVPScope:           checkScope,
	domain.QuestionTechStack:          checkTechStack,
	domain.QuestionLaunchPlan:         checkLaunch,
	domain.QuestionGeneric:            checkGeneric,
}

// DeterministicFeedback critiques an answer with the analysis engine only.
// dc is the context before this answer.
func DeterministicFeedback(q questions.Question, answer string, dc domain.DerivedContext) *Feedback {
	t := q.Type()
	in := checkInput{
		question: q,
		answer:   strings.TrimSpace(answer),
		lower:    strings.ToLower(strings.TrimSpace(answer)),
		dc:       questions.Apply(dc, q.ID, answer),
		cfg:      classifier.Config(t),
	}

	fb := &Feedback{Type: t, Assessment: classifier.NewAssessment(t), Source: SourceDeterministic}
	checks[t](in, fb)
	fb.Score = scoreIssues(fb.Issues)
	return fb
}

func scoreIssues(issues []Issue) int {
	score := MaxScore
	for _, is := range issues {
		switch is.Severity {
		case domain.SeverityCritical:
			score -= criticalPenalty
		case domain.SeverityWarning:
			score -= warningPenalty
		}
	}
	return max(score, 0)
}

func (in checkInput) flag(fb *Feedback, tag, message, suggestion string) {
	fb.Issues = append(fb.Issues, Issue{Tag: tag, Severity: in.cfg.Severity(tag), Message: message})
	if suggestion != "" {
		fb.Suggestions = append(fb.Suggestions, suggestion)
	}
}

func checkName(in checkInput, fb *Feedback) {
	fb.Assessment = &classifier.NameAssessment{}
	if utf8.RuneCountInString(in.answer) > maxNameRunes || len(strings.Fields(in.answer)) > maxNameWords {
		in.flag(fb, "too_long", "The name is long to say out loud", "Try one or two words")
	}
	for _, g := range genericNames {
		if in.lower == g {
			in.flag(fb, "generic_name", fmt.Sprintf("%q does not say what the product does", in.answer), "Pick a name that hints at the outcome")
			break
		}
	}
}

func checkDescription(in checkInput, fb *Feedback) {
	oneLiner, _, _ := strings.Cut(in.answer, ".")
	fb.Assessment = &classifier.DescriptionAssessment{OneLiner: strings.TrimSpace(oneLiner)}

	if in.answer == "" {
		in.flag(fb, "empty_description", "No description given", "Write one sentence: who it is for and what it does")
		return
	}
	if n := len(strings.Fields(in.answer)); n > maxDescriptionWords {
		in.flag(fb, "too_long", fmt.Sprintf("%d words is more than one sentence", n), "Cut it down to the first sentence")
	}
	if found := matchAll(in.lower, buzzwords); len(found) > 0 {
		in.flag(fb, "buzzwords", "Buzzwords: "+strings.Join(found, ", "), "Say plainly what the user can do")
	}
}

func checkFeatureCount(in checkInput, fb *Feedback) {
	a := &classifier.FeatureCountAssessment{Recommended: recommendedFeatures}
	fb.Assessment = a

	n, ok := analysis.ParseLeadingInt(in.answer)
	if !ok {
		in.flag(fb, "not_a_number", "Answer with a number", "")
		return
	}
	a.Count = n
	if n > maxCoreFeatures {
		in.flag(fb, "too_many_features", fmt.Sprintf("%d features is too many for a first release", n),
			fmt.Sprintf("Start with %d", recommendedFeatures))
	}
}

func checkProblem(in checkInput, fb *Feedback) {
	a := &classifier.ProblemAssessment{PainLevel: in.dc.PainLevel}
	fb.Assessment = a

	if in.dc.PainLevel > 0 && in.dc.PainLevel < lowPainThreshold {
		in.flag(fb, "no_pain_evidence", fmt.Sprintf("Pain level %d/10 suggests people can live with this problem", in.dc.PainLevel),
			"Find a sharper version of the problem or a group that feels it more")
	}
	if !in.free() {
		return
	}

	a.Frequency = firstMatch(in.lower, frequencyWords)
	a.ExistingWorkarounds = firstMatch(in.lower, workaroundWords)

	if hasPrefixAny(in.lower, solutionOpeners) {
		in.flag(fb, "solution_not_problem", "This describes a solution, not a problem", "Describe what goes wrong for people today")
	}
	if containsAny(in.lower, vagueAudiences) {
		in.flag(fb, "vague_audience", "Everyone is not an audience", "Name the one group that hurts most")
	}
	if a.Frequency == "" {
		in.flag(fb, "no_frequency", "No sense of how often this happens", "Say whether it happens daily, weekly or monthly")
	}
}

func checkValue(in checkInput, fb *Feedback) {
	a := &classifier.ValueAssessment{
		Differentiator: firstMatch(in.lower, differentiators),
		TargetCustomer: in.dc.TargetAudience,
	}
	fb.Assessment = a

	if a.Differentiator == "" {
		in.flag(fb, "no_differentiator", "Nothing says why this beats the current way", "Finish the sentence: unlike X, we ...")
	}
	if len(questions.SplitList(in.answer)) > 2 {
		in.flag(fb, "feature_list_not_value", "This reads as a feature list", "Describe the outcome, not the features")
	}
	if a.TargetCustomer == "" && !strings.Contains(in.lower, "for ") {
		in.flag(fb, "no_target_customer", "No customer named", "Say who gets this value")
	}
}

func checkScope(in checkInput, fb *Feedback) {
	features := questions.SplitList(in.answer)
	a := &classifier.ScopeAssessment{CoreFeatures: features}
	fb.Assessment = a

	if len(features) == 0 {
		if !in.question.Optional {
			in.flag(fb, "vague_feature", "No features listed", "List three to five things a user can do")
		}
		return
	}

	for _, f := range features {
		cs := analysis.AnalyzeComplexity(f)
		a.ComplexityWarnings = append(a.ComplexityWarnings, cs.Warnings...)
		if cs.Level == domain.ComplexityHigh || cs.Level == domain.ComplexityExtreme {
			a.CutCandidates = append(a.CutCandidates, f)
			in.flag(fb, "high_complexity_feature", fmt.Sprintf("%q is %s complexity (about %d weeks)", f, cs.Level, cs.EstimatedWeeks),
				"Simplify or defer "+f)
		}
		if len(strings.Fields(f)) < 2 {
			in.flag(fb, "vague_feature", fmt.Sprintf("%q is not a user action", f), "Phrase it as something a user does")
		}
	}

	all := in.dc.AllFeatures()
	if len(all) > maxCoreFeatures {
		in.flag(fb, "too_many_features", fmt.Sprintf("%d features in total", len(all)), "Cut to the three that prove the idea")
		return
	}
	if in.dc.TimelineWeeks > 0 {
		if sc := analysis.ProtectScope(len(all), float64(in.dc.TimelineWeeks)); !sc.Valid {
			in.flag(fb, "scope_creep", sc.Reason, "Drop features or extend the timeline")
		}
	}
}

func checkTechStack(in checkInput, fb *Feedback) {
	dc := in.dc
	budget := analysis.CountInnovationTokens(dc.TechStack)
	over := analysis.DetectOverengineering(dc.TechStack, dc.AllFeatures(), dc.UserCount)
	fb.Assessment = &classifier.TechStackAssessment{
		Technologies:     dc.TechStack,
		InnovationTokens: budget.Spent,
		Overkill:         over.Issues,
	}

	for i, issue := range over.Issues {
		in.flag(fb, "overengineering", issue, over.Suggestions[i])
	}
	if budget.Exceeded {
		in.flag(fb, "innovation_budget_exceeded", fmt.Sprintf("%d innovation tokens spent, budget is %d", budget.Spent, budget.Budget),
			"Swap some of "+strings.Join(budget.Novel, ", ")+" for tools you know")
	}
	if dc.Experience == domain.ExperienceBeginner && len(budget.Novel) > 0 {
		in.flag(fb, "unfamiliar_tech", "Unfamiliar for a beginner: "+strings.Join(budget.Novel, ", "), "Pick one mainstream stack and stick to it")
	}
}

func checkLaunch(in checkInput, fb *Feedback) {
	a := &classifier.LaunchAssessment{}
	fb.Assessment = a

	if in.dc.TimelineWeeks > latestLaunchWeeks {
		in.flag(fb, "launch_too_late", fmt.Sprintf("%d weeks is a long time without user feedback", in.dc.TimelineWeeks),
			fmt.Sprintf("Aim to launch within %d weeks", latestLaunchWeeks))
	}
	if !in.free() {
		return
	}

	a.Channels = matchAll(in.lower, channels)
	a.SuccessMetric = firstMatch(in.lower, metricWords)
	if len(a.Channels) == 0 {
		in.flag(fb, "no_channel", "No launch channel named", "Name the community where your users already hang out")
	}
	if a.SuccessMetric == "" && !strings.ContainsAny(in.lower, "0123456789") {
		in.flag(fb, "no_success_metric", "No definition of a successful launch", "Set a number, for example 50 signups in two weeks")
	}
}

func checkGeneric(in checkInput, fb *Feedback) {
	fb.Assessment = &classifier.GenericAssessment{}
	if in.question.Kind == questions.KindText && len(strings.Fields(in.answer)) < minGenericAnswerWords {
		in.flag(fb, "too_short", "The answer is very short", "Add a concrete detail")
	}
}

func containsAny(s string, words []string) bool {
	return firstMatch(s, words) != ""
}

func firstMatch(s string, words []string) string {
	for _, w := range words {
		if strings.Contains(s, w) {
			return w
		}
	}
	return ""
}

func matchAll(s string, words []string) []string {
	var out []string
	for _, w := range words {
		if strings.Contains(s, w) {
			out = append(out, w)
		}
	}
	return out
}

func hasPrefixAny(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
