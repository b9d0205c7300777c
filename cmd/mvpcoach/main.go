package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/alexanderramin/mvpcoach/internal/cli"
	"github.com/alexanderramin/mvpcoach/internal/coach"
	"github.com/alexanderramin/mvpcoach/internal/db"
	"github.com/alexanderramin/mvpcoach/internal/llm"
	"github.com/alexanderramin/mvpcoach/internal/repository"
	"github.com/alexanderramin/mvpcoach/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Open database: MVPCOACH_DB or ~/.mvpcoach/mvpcoach.db
	database, err := db.OpenDB(db.DefaultPath())
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	sessionRepo := repository.NewSQLiteSessionRepo(database)
	answerRepo := repository.NewSQLiteAnswerRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	var observers []service.UseCaseObserver
	if logUseCases() {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	// Wire services
	sessionSvc := service.NewSessionService(sessionRepo, answerRepo, uow, observers...)

	app := &cli.App{
		Sessions:   sessionSvc,
		Validation: service.NewValidationService(sessionSvc, observers...),
		Coach:      coach.NewCoachService(nil),
		OutDir:     os.Getenv("MVPCOACH_OUT"),
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// The coach only talks to a model when one is enabled and answering.
	llmCfg := llm.LoadConfig()
	if llmCfg.Enabled {
		var observer llm.Observer = llm.NoopObserver{}
		if llmCfg.LogCalls {
			observer = llm.NewLogObserver(os.Stderr)
		}
		client := llm.NewOllamaClient(llmCfg, observer)

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		available := client.Available(ctx)
		cancel()

		if available {
			app.Coach = coach.NewCoachService(client)
			app.AIEnabled = true
		} else {
			fmt.Fprintf(os.Stderr, "Model server at %s is not reachable; using built-in checks.\n", llmCfg.Endpoint)
		}
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}

// logUseCases reports whether MVPCOACH_LOG_USE_CASES is set to a true value.
func logUseCases() bool {
	on, err := strconv.ParseBool(os.Getenv("MVPCOACH_LOG_USE_CASES"))
	return err == nil && on
}
