package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dmolina/ritmo/internal/cli"
	"github.com/dmolina/ritmo/internal/db"
	"github.com/dmolina/ritmo/internal/intelligence"
	"github.com/dmolina/ritmo/internal/llm"
	"github.com/dmolina/ritmo/internal/planning"
	"github.com/dmolina/ritmo/internal/repository"
	"github.com/dmolina/ritmo/internal/service"
	"github.com/dmolina/ritmo/internal/session"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.ritmo/ritmo.db
	dbPath := os.Getenv("RITMO_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".ritmo", "ritmo.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories and the unit of work for transactional completion.
	blockRepo := repository.NewSQLiteBlockRepo(database)
	taskRepo := repository.NewSQLiteTaskRepo(database)
	checkinRepo := repository.NewSQLiteCheckInRepo(database)
	feedbackRepo := repository.NewSQLiteFeedbackRepo(database)
	settingsRepo := repository.NewSQLiteSettingsRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	// The intent extractor: LLM when enabled, keyword heuristics otherwise.
	llmCfg := llm.LoadConfig()
	var extractor intelligence.IntentExtractor = intelligence.NewHeuristicExtractor()
	if llmCfg.Enabled {
		var observer llm.Observer = llm.NoopObserver{}
		if llmCfg.LogCalls {
			observer = llm.NewLogObserver(os.Stderr)
		}
		extractor = intelligence.NewLLMExtractor(llm.NewOllamaClient(llmCfg, observer))
	}

	recordSvc := service.NewRecordService(blockRepo, taskRepo, checkinRepo, feedbackRepo, settingsRepo, uow)

	app := &cli.App{
		Records:  recordSvc,
		Insights: service.NewInsightService(recordSvc),
		Planning: service.NewPlanningService(
			session.NewSQLiteStore(database),
			extractor,
			recordSvc,
			planning.LoadConfig(),
		),
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
