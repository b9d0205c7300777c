package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/alexanderramin/mvpcoach/internal/analysis"
	"github.com/alexanderramin/mvpcoach/internal/cli/formatter"
	"github.com/alexanderramin/mvpcoach/internal/domain"
	"github.com/alexanderramin/mvpcoach/internal/questions"
	"github.com/spf13/cobra"
)

// answersFile is a wizard run written down ahead of time:
//
//	experience: beginner
//	answers:
//	  project_name: Listly
//	  core_features:
//	    - Create todo items
//	    - Share list by link
type answersFile struct {
	Experience string                 `yaml:"experience"`
	Answers    map[string]answerValue `yaml:"answers"`
}

// answerValue accepts a scalar or a list of scalars. Lists are joined one
// item per line, the way list questions are answered in the wizard.
type answerValue string

func (a *answerValue) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*a = answerValue(node.Value)
	case yaml.SequenceNode:
		var items []string
		if err := node.Decode(&items); err != nil {
			return err
		}
		*a = answerValue(strings.Join(items, "\n"))
	default:
		return fmt.Errorf("line %d: an answer must be text or a list", node.Line)
	}
	return nil
}

// loadAnswersFile turns an answers file into a history in script order.
func loadAnswersFile(path string) ([]domain.AnswerEntry, domain.ExperienceLevel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("reading answers: %w", err)
	}

	var f answersFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, "", fmt.Errorf("parsing %s: %w", path, err)
	}

	experience, err := domain.ParseExperienceLevel(f.Experience)
	if err != nil {
		return nil, "", fmt.Errorf("parsing %s: %w", path, err)
	}

	var unknown []string
	for id := range f.Answers {
		if _, ok := questions.ByID(id); !ok {
			unknown = append(unknown, id)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, "", fmt.Errorf("parsing %s: unknown question id(s): %s", path, strings.Join(unknown, ", "))
	}

	var history []domain.AnswerEntry
	for _, q := range questions.Script() {
		v, ok := f.Answers[q.ID]
		if !ok {
			continue
		}
		history = append(history, domain.AnswerEntry{
			Seq:          len(history) + 1,
			QuestionID:   q.ID,
			QuestionText: q.Text,
			QuestionType: q.Type(),
			AnswerText:   strings.TrimSpace(string(v)),
		})
	}
	return history, experience, nil
}

func sessionPlan(ctx context.Context, app *App, sessionID string) (domain.DerivedContext, *analysis.PlanReport, error) {
	plan, err := app.Validation.ValidateSession(ctx, sessionID)
	if err != nil {
		return domain.DerivedContext{}, nil, err
	}
	dc, err := app.Sessions.Context(ctx, sessionID)
	if err != nil {
		return domain.DerivedContext{}, nil, err
	}
	return dc, plan, nil
}

// loadPlan validates either the session named in args or an answers file.
func loadPlan(ctx context.Context, app *App, args []string, answersPath string) (domain.DerivedContext, *analysis.PlanReport, error) {
	switch {
	case len(args) == 1 && answersPath != "":
		return domain.DerivedContext{}, nil, errors.New("give a session id or --answers, not both")
	case len(args) == 1:
		session, err := app.Sessions.Get(ctx, args[0])
		if err != nil {
			return domain.DerivedContext{}, nil, err
		}
		return sessionPlan(ctx, app, session.ID)
	case answersPath != "":
		history, experience, err := loadAnswersFile(answersPath)
		if err != nil {
			return domain.DerivedContext{}, nil, err
		}
		dc := questions.BuildContext(history, experience)
		plan := app.Validation.ValidateContext(dc, history)
		return dc, &plan, nil
	default:
		return domain.DerivedContext{}, nil, errors.New("a session id or --answers FILE is required")
	}
}

func newValidateCmd(app *App) *cobra.Command {
	var answers string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "validate [session-id]",
		Short: "Run every analysis check against a session or an answers file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dc, plan, err := loadPlan(context.Background(), app, args, answers)
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), plan)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPlanReport(dc, plan))
			return nil
		},
	}

	cmd.Flags().StringVar(&answers, "answers", "", "YAML file of answers keyed by question id")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the report as JSON")
	return cmd
}

func newRenderCmd(app *App) *cobra.Command {
	var answers, outDir string

	cmd := &cobra.Command{
		Use:   "render [session-id]",
		Short: "Write the PRD and roadmap for a session or an answers file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dc, plan, err := loadPlan(context.Background(), app, args, answers)
			if err != nil {
				return err
			}
			return renderPlan(cmd.OutOrStdout(), dc, plan, app.outDir(outDir))
		},
	}

	cmd.Flags().StringVar(&answers, "answers", "", "YAML file of answers keyed by question id")
	cmd.Flags().StringVar(&outDir, "out", "", "Output directory (default $MVPCOACH_OUT or ./"+DefaultOutDir+")")
	return cmd
}
