package analysis

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/alexanderramin/mvpcoach/internal/domain"
)

const minWeeksPerFeature = 2.0

var (
	leadingIntPattern = regexp.MustCompile(`^\s*(\d+)`)
	ageRangePattern   = regexp.MustCompile(`(\d{1,2})\s*(?:-|–|to)\s*(\d{1,2})`)
)

var timelineQuestionKeywords = []string{"week", "timeline"}
var featureQuestionKeywords = []string{"feature"}

var sportKeywords = []string{
	"football", "soccer", "basketball", "tennis", "golf", "running", "cycling",
	"swimming", "climbing", "yoga", "hockey", "baseball", "volleyball", "surf",
}

var sportAudienceKeywords = []string{"athlete", "player", "coach", "team", "club", "runner", "cyclist"}

// ConsistencyCheck reports contradictions between answers about the same
// facet. Notes are advisory cross-checks and never affect IsConsistent.
type ConsistencyCheck struct {
	IsConsistent      bool     `json:"is_consistent"`
	Issues            []string `json:"issues"`
	AffectedQuestions []string `json:"affected_questions"`
	Notes             []string `json:"notes,omitempty"`
}

// CheckConsistency compares the answer history and the context derived from
// it. IsConsistent holds exactly when no issue was raised.
func CheckConsistency(history []domain.AnswerEntry, dc domain.DerivedContext) ConsistencyCheck {
	var c ConsistencyCheck
	affected := newOrderedSet()

	checkAudienceRedefinition(history, &c, affected)
	checkTimelineDensity(history, dc, &c, affected)

	c.Notes = append(c.Notes, ageRangeNotes(dc)...)
	c.Notes = append(c.Notes, sportNotes(dc)...)

	c.AffectedQuestions = affected.items
	c.IsConsistent = len(c.Issues) == 0
	return c
}

func checkAudienceRedefinition(history []domain.AnswerEntry, c *ConsistencyCheck, affected *orderedSet) {
	var group []domain.AnswerEntry
	distinct := make(map[string]bool)
	for _, e := range history {
		if !containsAny(strings.ToLower(e.QuestionText), audienceKeywords) {
			continue
		}
		group = append(group, e)
		distinct[strings.ToLower(strings.TrimSpace(e.AnswerText))] = true
	}
	if len(distinct) <= 1 {
		return
	}

	questions := newOrderedSet()
	for _, e := range group {
		questions.add(e.QuestionText)
		affected.add(e.QuestionText)
	}
	c.Issues = append(c.Issues, fmt.Sprintf("Target audience redefined multiple times (%d different answers): %s",
		len(distinct), strings.Join(questions.items, "; ")))
}

func checkTimelineDensity(history []domain.AnswerEntry, dc domain.DerivedContext, c *ConsistencyCheck, affected *orderedSet) {
	weeks, ok := ParseLeadingInt(dc.Timeline)
	features := dc.AllFeatures()
	if !ok || len(features) == 0 {
		return
	}

	wpf := float64(weeks) / float64(len(features))
	if wpf >= minWeeksPerFeature {
		return
	}

	c.Issues = append(c.Issues, fmt.Sprintf("Timeline very tight: only %.1f weeks per feature", wpf))
	for _, e := range history {
		q := strings.ToLower(e.QuestionText)
		if containsAny(q, timelineQuestionKeywords) || containsAny(q, featureQuestionKeywords) {
			affected.add(e.QuestionText)
		}
	}
}

// ageRangeNotes flags a problem statement and audience that name age ranges
// which do not overlap.
func ageRangeNotes(dc domain.DerivedContext) []string {
	pLo, pHi, ok1 := parseAgeRange(dc.Problem)
	aLo, aHi, ok2 := parseAgeRange(dc.TargetAudience)
	if !ok1 || !ok2 {
		return nil
	}
	if pHi < aLo || aHi < pLo {
		return []string{fmt.Sprintf("Problem mentions ages %d-%d but the audience is %d-%d", pLo, pHi, aLo, aHi)}
	}
	return nil
}

// sportNotes flags a sport-specific problem whose audience never mentions the
// sport or anyone who plays it.
func sportNotes(dc domain.DerivedContext) []string {
	sports := matchKeywords(strings.ToLower(dc.Problem), sportKeywords)
	audience := strings.ToLower(dc.TargetAudience)
	if len(sports) == 0 || audience == "" {
		return nil
	}
	if containsAny(audience, sports) || containsAny(audience, sportAudienceKeywords) {
		return nil
	}
	return []string{fmt.Sprintf("Problem is about %s but the audience does not mention it", strings.Join(sports, ", "))}
}

func parseAgeRange(s string) (lo, hi int, ok bool) {
	m := ageRangePattern.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, false
	}
	lo, _ = strconv.Atoi(m[1])
	hi, _ = strconv.Atoi(m[2])
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo, hi, true
}

// ParseLeadingInt parses the integer a string starts with, ignoring leading
// whitespace: "8 weeks" -> 8.
func ParseLeadingInt(s string) (int, bool) {
	m := leadingIntPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

type orderedSet struct {
	seen  map[string]bool
	items []string
}

func newOrderedSet() *orderedSet {
	return &orderedSet{seen: make(map[string]bool)}
}

func (s *orderedSet) add(v string) {
	if s.seen[v] {
		return
	}
	s.seen[v] = true
	s.items = append(s.items, v)
}
