package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/alexanderramin/mvpcoach/internal/cli/formatter"
	"github.com/alexanderramin/mvpcoach/internal/domain"
	"github.com/alexanderramin/mvpcoach/internal/questions"
	"github.com/spf13/cobra"
)

func newStartCmd(app *App) *cobra.Command {
	var flags wizardFlags
	var experience experienceValue

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start a new MVP planning session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			out := cmd.OutOrStdout()

			session, err := app.Sessions.Start(ctx, "", experience.level())
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Started session %s %s\n", formatter.Bold(shortID(session.ID)), formatter.Dim("("+string(session.Experience)+")"))

			return newWizard(app, out, &flags).run(ctx, session)
		},
	}

	cmd.Flags().Var(&experience, "experience", "Your experience level: beginner, intermediate or expert")
	flags.register(cmd.Flags())
	return cmd
}

func newResumeCmd(app *App) *cobra.Command {
	var flags wizardFlags

	cmd := &cobra.Command{
		Use:   "resume <session-id>",
		Short: "Continue a session from its next unanswered question",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			out := cmd.OutOrStdout()

			session, err := app.Sessions.Get(ctx, args[0])
			if err != nil {
				return err
			}
			if session.Status == domain.SessionCompleted {
				return fmt.Errorf("session %s is already completed; use 'mvpcoach render %s' to regenerate its documents", shortID(session.ID), shortID(session.ID))
			}

			fmt.Fprintf(out, "Resuming %s %s\n", formatter.Bold(domain.CoalesceStr(session.ProjectName, "Untitled MVP")), formatter.Dim(shortID(session.ID)))
			return newWizard(app, out, &flags).run(ctx, session)
		},
	}

	flags.register(cmd.Flags())
	return cmd
}

func newSessionsCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "sessions",
		Short: "List planning sessions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			sessions, err := app.Sessions.List(ctx, all)
			if err != nil {
				return err
			}

			answered := make(map[string]int, len(sessions))
			total := len(questions.Script())
			for _, s := range sessions {
				history, err := app.Sessions.History(ctx, s.ID)
				if err != nil {
					return err
				}
				answered[s.ID], _ = questions.Progress(history)
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSessionList(sessions, answered, total))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include completed and abandoned sessions")
	return cmd
}

func newHistoryCmd(app *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "history <session-id>",
		Short: "Show every answer recorded in a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			out := cmd.OutOrStdout()

			session, err := app.Sessions.Get(ctx, args[0])
			if err != nil {
				return err
			}
			history, err := app.Sessions.History(ctx, session.ID)
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(out, history)
			}
			fmt.Fprint(out, formatter.FormatSession(session))
			fmt.Fprintln(out)
			fmt.Fprint(out, formatter.FormatHistory(history))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the answers as JSON")
	return cmd
}

func newAbandonCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "abandon <session-id>",
		Short: "Mark a session as abandoned",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			session, err := app.Sessions.Get(ctx, args[0])
			if err != nil {
				return err
			}
			if session, err = app.Sessions.Abandon(ctx, session.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Abandoned session %s. Answering it again with 'mvpcoach resume' reopens it.\n", shortID(session.ID))
			return nil
		},
	}
}

func writeJSON(out io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}
	_, err = out.Write(append(data, '\n'))
	return err
}
