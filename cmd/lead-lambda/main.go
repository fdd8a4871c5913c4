package main

import (
	"context"
	"os"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/northstack/lead-intake/internal/app/bootstrap"
	appconfig "github.com/northstack/lead-intake/internal/config"
	"github.com/northstack/lead-intake/internal/intake"
	"github.com/northstack/lead-intake/pkg/logging"
)

func main() {
	cfg, err := appconfig.Load()
	if err != nil {
		// Fail fast: a misconfigured function must never become ready.
		logging.Default().Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.LogLevel)

	deps, err := bootstrap.Build(context.Background(), cfg, logger)
	if err != nil {
		logger.Error("failed to build dependencies", "error", err)
		os.Exit(1)
	}

	handler := intake.NewHandler(deps.Repo, deps.Email, intake.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		OwnerEmails:    cfg.OwnerEmails,
		TTLDays:        cfg.TTLDays,
	}, logger)

	logger.Info("lead intake function ready",
		"table", cfg.TableName,
		"region", cfg.AWSRegion,
		"email_provider", cfg.EmailProvider,
	)

	lambda.Start(handler.Handle)
}
