package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/mvpcoach/internal/coach"
	"github.com/alexanderramin/mvpcoach/internal/questions"
)

// FormatStep renders the wizard position line above each question.
func FormatStep(q questions.Question, current, total int) string {
	return RenderStep(current, total) + Dim(" · "+string(q.Phase)) + "\n"
}

// FormatQuestion renders a question with its help text for line prompts.
func FormatQuestion(q questions.Question) string {
	var b strings.Builder
	b.WriteString(StyleHeader.Render(q.Text))
	b.WriteString("\n")
	if q.Help != "" {
		b.WriteString(Dim(q.Help))
		b.WriteString("\n")
	}
	return b.String()
}

// FormatFeedback renders coaching feedback for one answer.
func FormatFeedback(fb *coach.Feedback) string {
	if fb == nil {
		return ""
	}

	var b strings.Builder
	score := RenderScore(fb.Score, coach.MaxScore, 10)
	b.WriteString(fmt.Sprintf("%s %s  %s\n", Bold("Answer score"), score, Dim("("+fb.Source+")")))

	if len(fb.Issues) == 0 {
		b.WriteString(StyleGreen.Render("  ✔ No issues found"))
		b.WriteString("\n")
	}
	for _, is := range fb.Issues {
		b.WriteString(fmt.Sprintf("  %s %s\n", SeverityBadge(is.Severity), is.Message))
	}

	if len(fb.Suggestions) > 0 {
		b.WriteString("\n")
		b.WriteString(Bold("Suggestions"))
		b.WriteString("\n")
		b.WriteString(Bullets(fb.Suggestions, StyleFg))
	}
	return b.String()
}
