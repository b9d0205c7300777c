package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/mvpcoach/internal/classifier"
	"github.com/alexanderramin/mvpcoach/internal/cli/formatter"
	"github.com/alexanderramin/mvpcoach/internal/domain"
	"github.com/spf13/cobra"
)

type classification struct {
	Question     string                      `json:"question"`
	Type         domain.QuestionType         `json:"type"`
	List         bool                        `json:"list"`
	Scores       map[domain.QuestionType]int `json:"scores"`
	Requirements []string                    `json:"requirements"`
}

func classify(question string) classification {
	t := classifier.DetectType(question)
	c := classification{
		Question:     question,
		Type:         t,
		List:         classifier.IsListQuestion(question),
		Scores:       make(map[domain.QuestionType]int),
		Requirements: classifier.Config(t).ValidationRequirements(),
	}
	for _, qt := range classifier.Types() {
		c.Scores[qt] = classifier.Score(question, qt)
	}
	return c
}

func newClassifyCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "classify <question text>",
		Short: "Show which question type a question is coached as",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			question := strings.Join(args, " ")
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), classify(question))
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatClassification(question))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the classification as JSON")
	return cmd
}
