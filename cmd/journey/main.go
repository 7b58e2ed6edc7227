package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/alexanderramin/journey/internal/cli"
	"github.com/alexanderramin/journey/internal/config"
	"github.com/alexanderramin/journey/internal/db"
	"github.com/alexanderramin/journey/internal/dispatch"
	"github.com/alexanderramin/journey/internal/intelligence"
	"github.com/alexanderramin/journey/internal/llm"
	"github.com/alexanderramin/journey/internal/logging"
	"github.com/alexanderramin/journey/internal/repository"
	"github.com/alexanderramin/journey/internal/service"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// configPath returns JOURNEY_CONFIG or ~/.journey/config.yaml.
func configPath() string {
	if p := os.Getenv("JOURNEY_CONFIG"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".journey", "config.yaml")
}

func run() error {
	cfg, err := config.Load(configPath())
	if err != nil {
		return err
	}

	logger, err := logging.New(os.Stderr, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	loc, err := cfg.Location()
	if err != nil {
		return err
	}
	clock := func() time.Time { return time.Now().In(loc) }

	database, err := db.OpenDB(cfg.DB.Path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	userRepo := repository.NewSQLiteUserRepo(database)
	promptRepo := repository.NewSQLitePromptRepo(database)
	answerRepo := repository.NewSQLiteAnswerRepo(database)
	progressRepo := repository.NewSQLiteProgressRepo(database)
	goalRepo := repository.NewSQLiteGoalRepo(database)
	analysisRepo := repository.NewSQLiteAnalysisRepo(database)

	uow := db.NewSQLiteUnitOfWork(database)

	// Analysis runs only when the LLM is enabled; otherwise jobs are
	// accepted and skipped quietly.
	analyzer := intelligence.NewDisabledAnalysisService()
	llmCfg := cfg.LLMClientConfig()
	if llmCfg.Enabled {
		var observer llm.Observer = llm.NoopObserver{}
		if llmCfg.LogCalls {
			observer = llm.NewLogObserver(logger.Named("llm"))
		}
		analyzer = intelligence.NewAnalysisService(llm.NewOllamaClient(llmCfg, observer))
	}

	pool := dispatch.NewPool(dispatch.Config{
		Workers:    cfg.Analysis.Workers,
		QueueSize:  cfg.Analysis.QueueSize,
		JobTimeout: cfg.JobTimeout(),
	}, logger.Named("dispatch"))
	defer drainPool(pool, cfg.DrainTimeout(), logger)

	observer := service.NewZapUseCaseObserver(logger.Named("service"))
	dispatcher := service.NewAnalysisDispatcher(pool, answerRepo, goalRepo, analysisRepo, analyzer, logger.Named("analysis"),
		service.WithClock(clock))

	app := &cli.App{
		Users:       service.NewUserService(userRepo),
		Prompts:     service.NewPromptService(promptRepo, userRepo, answerRepo),
		Goals:       service.NewGoalService(goalRepo, userRepo),
		Answers:     service.NewAnswerService(answerRepo, analysisRepo, uow, dispatcher, logger, observer),
		Analyses:    service.NewAnalysisQueryService(analysisRepo),
		Progress:    service.NewProgressService(progressRepo, userRepo),
		Reports:     service.NewReportService(userRepo, promptRepo, answerRepo, progressRepo, observer),
		Import:      service.NewImportService(uow),
		Interactive: isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()),
		Location:    loc,
	}

	return cli.NewRootCmd(app).Execute()
}

// drainPool gives queued analyses until timeout to finish before the
// database is closed.
func drainPool(pool *dispatch.Pool, timeout time.Duration, logger *zap.Logger) {
	if pool.Queued() > 0 {
		logger.Info("waiting for background analysis", zap.Int("queued", pool.Queued()))
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := pool.Close(ctx); err != nil {
		logger.Warn("background analysis abandoned", zap.Error(err))
	}
}
