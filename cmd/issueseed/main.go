package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/clintrovert/issueseed/internal/catalog"
	"github.com/clintrovert/issueseed/internal/config"
	"github.com/clintrovert/issueseed/internal/github"
	"github.com/clintrovert/issueseed/internal/report"
	"github.com/clintrovert/issueseed/internal/seeder"
)

func main() {
	// Initialize logger
	logConfig := zap.NewProductionConfig()
	logger, err := logConfig.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to create logger: %v", err))
	}
	defer logger.Sync()

	// Load configuration from .env and the environment
	cfg, err := config.Load(config.DefaultEnvFile)
	if err != nil {
		logger.Fatal("failed to load configuration", zap.Error(err))
	}

	logConfig.Level.SetLevel(cfg.LogLevel)

	records, err := catalog.Resolve(cfg.IssuesFile)
	if err != nil {
		logger.Fatal("failed to load issues", zap.Error(err))
	}

	// Create GitHub client
	githubClient, err := github.NewClient(cfg.Token, cfg.APIURL, logger)
	if err != nil {
		logger.Fatal("failed to create github client", zap.Error(err))
	}

	creator := seeder.NewIssueCreator(githubClient, cfg.Repository(), records, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("creating issues",
		zap.String("repository", cfg.Repository().FullName()),
		zap.Int("count", len(creator.Records())),
	)

	results, runErr := creator.CreateAll(ctx)
	if err := report.Render(os.Stdout, results); err != nil {
		logger.Error("failed to render results", zap.Error(err))
	}

	if runErr != nil {
		logger.Fatal("issue creation aborted", zap.Error(runErr))
	}
}
