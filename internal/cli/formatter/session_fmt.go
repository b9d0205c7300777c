package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/mvpcoach/internal/domain"
)

// FormatSessionList renders the sessions table.
func FormatSessionList(sessions []*domain.Session, answered map[string]int, total int) string {
	return FormatSessionListFrom(sessions, answered, total, time.Now())
}

// FormatSessionListFrom is FormatSessionList against a fixed reference time.
func FormatSessionListFrom(sessions []*domain.Session, answered map[string]int, total int, now time.Time) string {
	if len(sessions) == 0 {
		return Dim("No sessions yet. Run 'mvpcoach start' to begin.") + "\n"
	}

	rows := make([][]string, 0, len(sessions))
	for _, s := range sessions {
		rows = append(rows, []string{
			TruncID(s.ID),
			OrDash(s.ProjectName),
			string(s.Experience),
			StatusPill(s.Status),
			fmt.Sprintf("%d/%d", answered[s.ID], total),
			HumanTimestampFrom(s.UpdatedAt, now),
		})
	}
	return RenderTable([]string{"ID", "PROJECT", "EXPERIENCE", "STATUS", "ANSWERED", "UPDATED"}, rows)
}

// FormatSession renders a one-session summary.
func FormatSession(s *domain.Session) string {
	var b strings.Builder
	b.WriteString(Header(domain.CoalesceStr(s.ProjectName, "Untitled MVP")))
	b.WriteString("\n")
	b.WriteString(RenderFields([][2]string{
		{"ID", s.ID},
		{"Experience", string(s.Experience)},
		{"Status", StatusPill(s.Status)},
		{"Started", s.CreatedAt.Local().Format("Jan 2, 2006 15:04")},
	}))
	return b.String()
}

// FormatHistory renders a session's answers in order.
func FormatHistory(entries []domain.AnswerEntry) string {
	if len(entries) == 0 {
		return Dim("No answers recorded.") + "\n"
	}

	var b strings.Builder
	for _, e := range entries {
		b.WriteString(fmt.Sprintf("%s %s %s\n",
			Dim(fmt.Sprintf("%2d.", e.Seq)),
			Bold(e.QuestionText),
			Dim("["+string(e.QuestionType)+"]"),
		))
		for _, line := range strings.Split(e.AnswerText, "\n") {
			b.WriteString("    ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	return b.String()
}
