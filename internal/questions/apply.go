package questions

import (
	"math"
	"strconv"
	"strings"

	"github.com/alexanderramin/mvpcoach/internal/analysis"
	"github.com/alexanderramin/mvpcoach/internal/domain"
)

const (
	minPainLevel = 1
	maxPainLevel = 10
)

// goalStopwords are dropped when the value proposition is reduced to the
// goal words used for prioritisation.
var goalStopwords = map[string]bool{
	"that": true, "with": true, "from": true, "they": true, "them": true,
	"their": true, "this": true, "your": true, "what": true, "when": true,
	"have": true, "will": true, "into": true, "than": true, "more": true,
	"less": true, "make": true, "makes": true, "help": true, "helps": true,
	"people": true, "users": true, "today": true, "without": true, "instead": true,
	"solution": true, "different": true,
}

// Apply folds one answer into dc. Unknown question IDs leave dc unchanged.
func Apply(dc domain.DerivedContext, questionID, answer string) domain.DerivedContext {
	text := strings.TrimSpace(answer)

	switch questionID {
	case IDProjectName:
		dc.ProjectName = text
	case IDProjectDescription:
		dc.Description = text
	case IDProblem:
		dc.Problem = text
	case IDPainLevel:
		if n, ok := analysis.ParseLeadingInt(text); ok {
			dc.PainLevel = min(max(n, minPainLevel), maxPainLevel)
		}
	case IDTargetAudience, IDLaunchAudience:
		dc.TargetAudience = text
	case IDValueProposition:
		dc.ValueProposition = text
		dc.MVPGoal = GoalWords(text)
	case IDCoreFeatures:
		dc.CoreFeatures = SplitList(text)
	case IDExtraFeatures:
		dc.ExtraFeatures = SplitList(text)
	case IDTechStack:
		dc.TechStack = SplitList(text)
	case IDUserScale:
		if n, ok := ParseCount(text); ok {
			dc.UserCount = n
		}
	case IDTimeline:
		dc.Timeline = text
		if n, ok := analysis.ParseLeadingInt(text); ok {
			dc.TimelineWeeks = n
		}
	case IDReuseCode:
		dc.ReuseExistingCode = ParseYesNo(text)
	case IDLaunchPlan:
		dc.LaunchPlan = text
	}
	return dc
}

// BuildContext replays history in order. Later answers to the same question
// overwrite earlier ones.
func BuildContext(history []domain.AnswerEntry, experience domain.ExperienceLevel) domain.DerivedContext {
	dc := domain.DerivedContext{Experience: experience}
	for _, e := range history {
		dc = Apply(dc, e.QuestionID, e.AnswerText)
	}
	return dc
}

// SplitList splits on newlines, commas and semicolons, strips bullet and
// numbering prefixes and drops empty items.
func SplitList(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == '\n' || r == ',' || r == ';'
	})
	var out []string
	for _, f := range fields {
		item := strings.TrimSpace(stripBullet(strings.TrimSpace(f)))
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}

func stripBullet(s string) string {
	for _, p := range []string{"- ", "* ", "• "} {
		if strings.HasPrefix(s, p) {
			return s[len(p):]
		}
	}
	// "1. item" or "2) item"
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	// A decimal such as "1.5 hours" is text, not a marker.
	if i > 0 && i < len(s) && (s[i] == '.' || s[i] == ')') && (i+1 == len(s) || s[i+1] == ' ') {
		return s[i+1:]
	}
	return s
}

// ParseYesNo treats y, yes, yeah, yep, true and sure as yes.
func ParseYesNo(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes", "yeah", "yep", "true", "sure":
		return true
	}
	return false
}

// ParseCount parses a user count such as "500", "1,000", "5k" or "2m".
func ParseCount(s string) (int, bool) {
	text := strings.ToLower(strings.TrimSpace(s))
	text = strings.ReplaceAll(text, ",", "")
	text = strings.ReplaceAll(text, "_", "")

	end := 0
	for end < len(text) && (text[end] >= '0' && text[end] <= '9' || text[end] == '.') {
		end++
	}
	if end == 0 {
		return 0, false
	}
	n, err := strconv.ParseFloat(text[:end], 64)
	if err != nil {
		return 0, false
	}

	switch rest := strings.TrimSpace(text[end:]); {
	case strings.HasPrefix(rest, "k"):
		n *= 1_000
	case strings.HasPrefix(rest, "m"):
		n *= 1_000_000
	}
	return int(min(n, math.MaxInt32)), true
}

// GoalWords reduces a value proposition to its content words: lower-cased,
// at least four letters, stopwords removed, first occurrence kept.
func GoalWords(s string) string {
	words := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '-')
	})
	seen := make(map[string]bool)
	var out []string
	for _, w := range words {
		if len(w) < 4 || goalStopwords[w] || seen[w] {
			continue
		}
		seen[w] = true
		out = append(out, w)
	}
	return strings.Join(out, " ")
}
