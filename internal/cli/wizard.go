package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/alexanderramin/mvpcoach/internal/analysis"
	"github.com/alexanderramin/mvpcoach/internal/cli/formatter"
	"github.com/alexanderramin/mvpcoach/internal/coach"
	"github.com/alexanderramin/mvpcoach/internal/domain"
	"github.com/alexanderramin/mvpcoach/internal/questions"
	"github.com/alexanderramin/mvpcoach/internal/report"
)

const (
	actionKeep    = "keep"
	actionImprove = "improve"
	actionRevise  = "revise"
	actionQuit    = "quit"
)

// wizard walks one session through the remaining script questions.
type wizard struct {
	app      *App
	coach    coach.CoachService
	prompter Prompter
	out      io.Writer
	improve  bool
	spinner  bool
	outDir   string
}

func newWizard(app *App, out io.Writer, f *wizardFlags) *wizard {
	interactive := app.interactive() && !f.plain

	w := &wizard{
		app:      app,
		coach:    app.Coach,
		prompter: newPrompter(app.input(), out, interactive),
		out:      out,
		improve:  app.AIEnabled && !f.noAI,
		spinner:  interactive,
		outDir:   app.outDir(f.outDir),
	}
	if w.coach == nil || f.noAI {
		w.coach = coach.NewCoachService(nil)
	}
	return w
}

// run asks every unanswered question, then completes the session and
// writes its documents. A user who quits keeps their answers and can resume.
func (w *wizard) run(ctx context.Context, session *domain.Session) error {
	for {
		q, ok, err := w.app.Sessions.NextQuestion(ctx, session.ID)
		if err != nil {
			return err
		}
		if !ok {
			break
		}

		err = w.askOne(ctx, session.ID, q)
		if errors.Is(err, errAborted) {
			fmt.Fprintf(w.out, "\n%s\n", formatter.Dim(fmt.Sprintf("Progress saved. Resume with: mvpcoach resume %s", shortID(session.ID))))
			return nil
		}
		if err != nil {
			return err
		}
	}

	return w.finish(ctx, session.ID)
}

func (w *wizard) askOne(ctx context.Context, sessionID string, q questions.Question) error {
	history, err := w.app.Sessions.History(ctx, sessionID)
	if err != nil {
		return err
	}
	answered, total := questions.Progress(history)
	dc, err := w.app.Sessions.Context(ctx, sessionID)
	if err != nil {
		return err
	}

	fmt.Fprintf(w.out, "\n%s", formatter.FormatStep(q, answered+1, total))
	answer, err := w.prompter.Ask(q)
	if err != nil {
		return err
	}

	for {
		fb, err := w.challenge(ctx, q, answer, dc)
		if err != nil {
			return err
		}
		fmt.Fprint(w.out, formatter.FormatFeedback(fb))

		if len(fb.Issues) == 0 {
			break
		}

		action, err := w.prompter.Choose("What would you like to do?", w.actions(fb))
		if err != nil {
			return err
		}

		switch action {
		case actionImprove:
			improved, err := w.coach.Improve(ctx, q, answer, fb)
			if err != nil {
				return err
			}
			if improved == answer {
				fmt.Fprintln(w.out, formatter.Dim("No rewrite available. Try revising it yourself."))
				continue
			}
			fmt.Fprintf(w.out, "%s\n  %s\n", formatter.Bold("Suggested rewrite"), improved)
			answer = improved
			continue
		case actionRevise:
			if answer, err = w.prompter.Ask(q); err != nil {
				return err
			}
			continue
		case actionQuit:
			return errAborted
		}
		break
	}

	_, err = w.app.Sessions.RecordAnswer(ctx, sessionID, q, answer)
	return err
}

func (w *wizard) challenge(ctx context.Context, q questions.Question, answer string, dc domain.DerivedContext) (*coach.Feedback, error) {
	if w.spinner {
		stop := formatter.StartSpinner(w.out, "Challenging your answer...")
		defer stop()
	}
	return w.coach.Challenge(ctx, q, answer, dc)
}

// actions lists what the user can do with a flagged answer. Keeping is the
// default unless something is critical.
func (w *wizard) actions(fb *coach.Feedback) []option {
	keep := option{Key: actionKeep, Label: "Keep my answer and move on"}
	revise := option{Key: actionRevise, Label: "Revise my answer"}

	opts := []option{keep, revise}
	if fb.HasCritical() {
		opts = []option{revise, keep}
	}
	if w.improve {
		opts = append(opts, option{Key: actionImprove, Label: "Let the coach rewrite it"})
	}
	return append(opts, option{Key: actionQuit, Label: "Save and quit"})
}

func (w *wizard) finish(ctx context.Context, sessionID string) error {
	if _, err := w.app.Sessions.Complete(ctx, sessionID); err != nil {
		return err
	}
	dc, plan, err := sessionPlan(ctx, w.app, sessionID)
	if err != nil {
		return err
	}
	return renderPlan(w.out, dc, plan, w.outDir)
}

// renderPlan prints the report and roadmap and writes the document set to
// dir.
func renderPlan(out io.Writer, dc domain.DerivedContext, plan *analysis.PlanReport, dir string) error {
	fmt.Fprintln(out)
	fmt.Fprint(out, formatter.FormatPlanReport(dc, plan))
	fmt.Fprint(out, formatter.Header("Roadmap")+"\n")
	fmt.Fprint(out, formatter.FormatRoadmap(report.BuildRoadmap(dc, *plan)))
	fmt.Fprintln(out)

	paths, err := report.WriteAll(dir, dc, *plan)
	if err != nil {
		return err
	}
	fmt.Fprint(out, formatter.FormatWritten(paths))
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
