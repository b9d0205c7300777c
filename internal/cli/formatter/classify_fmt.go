package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/mvpcoach/internal/classifier"
	"github.com/alexanderramin/mvpcoach/internal/domain"
)

// FormatClassification renders the detected type of question alongside every
// type's keyword score and the detected type's answer requirements.
func FormatClassification(question string) string {
	detected := classifier.DetectType(question)
	cfg := classifier.Config(detected)

	var b strings.Builder
	b.WriteString(Header("Classification"))
	b.WriteString("\n")
	list := "no"
	if classifier.IsListQuestion(question) {
		list = "yes"
	}
	b.WriteString(RenderFields([][2]string{
		{"Question", question},
		{"Type", StyleHeader.Render(string(detected))},
		{"List answer", list},
	}))
	b.WriteString("\n")

	rows := make([][]string, 0, len(classifier.Types()))
	for _, t := range classifier.Types() {
		score := classifier.Score(question, t)
		name := "  " + string(t)
		if t == detected {
			name = StyleGreen.Render("> " + string(t))
		}
		rows = append(rows, []string{name, fmt.Sprintf("%d", score)})
	}
	b.WriteString(RenderTable([]string{"TYPE", "SCORE"}, rows))

	b.WriteString("\n")
	b.WriteString(Bold("A good answer"))
	b.WriteString("\n")
	b.WriteString(Bullets(cfg.ValidationRequirements(), StyleFg))
	if detected == domain.QuestionGeneric {
		b.WriteString(Dim("No type reached its minimum score; generic checks apply."))
		b.WriteString("\n")
	}
	return b.String()
}
