package coach

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/alexanderramin/mvpcoach/internal/classifier"
	"github.com/alexanderramin/mvpcoach/internal/domain"
)

const challengeSystemPromptTemplate = `You are a blunt MVP coach for solo developers. You review one answer from a planning wizard and push back on anything vague, oversized or unvalidated.

The question is of type "%TYPE%". A good answer meets these requirements:
%REQUIREMENTS%

You may only raise issues with these tags:
%TAGS%

Output ONLY a JSON object with these exact fields:
{
  "score": 0-10,
  "issues": [{"tag": "one of the tags above", "message": "one sentence"}],
  "suggestions": ["a concrete improvement"],
  "details": %DETAILS%
}

RULES:
1. Never invent tags. If nothing is wrong, return an empty issues list.
2. Judge the answer against the project context, not against a generic product.
3. Keep messages short; this is a terminal.
4. Output ONLY the JSON object, no markdown fences, no text before or after.`

const improveSystemPrompt = `You rewrite answers from an MVP planning wizard. Keep the developer's intent and facts, fix the problems listed in the critique, and stay concise. Output ONLY the rewritten answer as plain text.`

func buildChallengeSystemPrompt(cfg classifier.TypeConfig) string {
	var reqs strings.Builder
	for _, r := range cfg.ValidationRequirements() {
		reqs.WriteString("- ")
		reqs.WriteString(r)
		reqs.WriteString("\n")
	}

	var tags strings.Builder
	for _, tag := range cfg.Critical {
		fmt.Fprintf(&tags, "- %s (critical)\n", tag)
	}
	for _, tag := range cfg.Warning {
		fmt.Fprintf(&tags, "- %s (warning)\n", tag)
	}
	if tags.Len() == 0 {
		tags.WriteString("- none\n")
	}

	details, _ := json.Marshal(classifier.NewAssessment(cfg.Type))

	return strings.NewReplacer(
		"%TYPE%", string(cfg.Type),
		"%REQUIREMENTS%", strings.TrimRight(reqs.String(), "\n"),
		"%TAGS%", strings.TrimRight(tags.String(), "\n"),
		"%DETAILS%", string(details),
	).Replace(challengeSystemPromptTemplate)
}

func buildChallengeUserPrompt(question, answer string, dc domain.DerivedContext) string {
	var b strings.Builder
	b.WriteString("## Project context\n")
	writeField(&b, "Project", dc.ProjectName)
	writeField(&b, "Problem", dc.Problem)
	writeField(&b, "Audience", dc.TargetAudience)
	writeField(&b, "Features", strings.Join(dc.AllFeatures(), "; "))
	writeField(&b, "Tech stack", strings.Join(dc.TechStack, ", "))
	if dc.TimelineWeeks > 0 {
		writeField(&b, "Timeline", fmt.Sprintf("%d weeks", dc.TimelineWeeks))
	}
	writeField(&b, "Experience", string(dc.Experience))

	b.WriteString("\n## Question\n")
	b.WriteString(question)
	b.WriteString("\n\n## Answer\n")
	b.WriteString(answer)
	return b.String()
}

func buildImproveUserPrompt(question, answer string, fb *Feedback) string {
	var b strings.Builder
	b.WriteString("## Question\n")
	b.WriteString(question)
	b.WriteString("\n\n## Answer\n")
	b.WriteString(answer)
	b.WriteString("\n\n## Critique\n")
	for _, is := range fb.Issues {
		fmt.Fprintf(&b, "- [%s] %s\n", is.Severity, is.Message)
	}
	for _, s := range fb.Suggestions {
		fmt.Fprintf(&b, "- Suggestion: %s\n", s)
	}
	return b.String()
}

func writeField(b *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(b, "%s: %s\n", label, value)
}
