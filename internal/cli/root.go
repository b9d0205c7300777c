package cli

import (
	"io"
	"os"

	"github.com/alexanderramin/mvpcoach/internal/coach"
	"github.com/alexanderramin/mvpcoach/internal/service"
	"github.com/spf13/cobra"
)

// DefaultOutDir is where rendered documents go when neither --out nor
// MVPCOACH_OUT is set.
const DefaultOutDir = "mvp-docs"

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Sessions   service.SessionService
	Validation service.ValidationService

	// Coach challenges answers. It may be backed by an LLM; --no-ai swaps in
	// the deterministic coach for one run.
	Coach coach.CoachService

	// AIEnabled is set when Coach is backed by a reachable model. The
	// rewrite action is only offered then.
	AIEnabled bool

	// OutDir is the default directory for rendered documents.
	OutDir string

	// In is where line prompts read from. Nil means os.Stdin.
	In io.Reader

	// IsInteractive reports whether In is a terminal. Nil means it is not.
	IsInteractive func() bool
}

func (a *App) input() io.Reader {
	if a.In != nil {
		return a.In
	}
	return os.Stdin
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) outDir(flag string) string {
	if flag != "" {
		return flag
	}
	if a.OutDir != "" {
		return a.OutDir
	}
	return DefaultOutDir
}

// NewRootCmd creates the top-level "mvpcoach" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "mvpcoach",
		Short:         "Plan a minimum viable product and get challenged on every answer",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newStartCmd(app),
		newResumeCmd(app),
		newSessionsCmd(app),
		newHistoryCmd(app),
		newAbandonCmd(app),
		newValidateCmd(app),
		newRenderCmd(app),
		newAnalyzeCmd(),
		newClassifyCmd(),
	)

	return root
}
