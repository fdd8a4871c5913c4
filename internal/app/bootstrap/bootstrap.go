package bootstrap

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"

	"github.com/northstack/lead-intake/cmd/mainconfig"
	appconfig "github.com/northstack/lead-intake/internal/config"
	"github.com/northstack/lead-intake/internal/leads"
	"github.com/northstack/lead-intake/internal/notify"
	"github.com/northstack/lead-intake/pkg/logging"
)

// Dependencies are the long-lived collaborators of the intake handler,
// created once per process and reused across invocations.
type Dependencies struct {
	Repo  leads.Repository
	Email notify.EmailSender
}

// Build wires the lead repository and email sender selected by config.
// AWS clients are only created when a component actually needs them.
func Build(ctx context.Context, cfg *appconfig.Config, logger *logging.Logger) (*Dependencies, error) {
	deps := &Dependencies{}

	needAWS := cfg.Store != "memory" || cfg.EmailProvider == "ses"
	if needAWS {
		awsCfg, err := mainconfig.LoadAWSConfig(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("bootstrap: load AWS config: %w", err)
		}

		if cfg.Store != "memory" {
			deps.Repo = leads.NewDynamoRepository(dynamodb.NewFromConfig(awsCfg), cfg.TableName, logger)
		}
		if cfg.EmailProvider == "ses" {
			deps.Email = notify.NewSESSender(sesv2.NewFromConfig(awsCfg), notify.SESConfig{
				FromEmail: cfg.FromEmail,
				FromName:  cfg.FromName,
			}, logger)
		}
	}

	if deps.Repo == nil {
		deps.Repo = leads.NewInMemoryRepository()
	}

	switch cfg.EmailProvider {
	case "ses":
		// built above
	case "sendgrid":
		sender := notify.NewSendGridSender(notify.SendGridConfig{
			APIKey:    cfg.SendGridAPIKey,
			FromEmail: cfg.FromEmail,
			FromName:  cfg.FromName,
		}, logger)
		if sender == nil {
			return nil, fmt.Errorf("bootstrap: EMAIL_PROVIDER=sendgrid requires SENDGRID_API_KEY")
		}
		deps.Email = sender
	case "stub":
		deps.Email = notify.NewStubEmailSender(logger)
	default:
		return nil, fmt.Errorf("bootstrap: unknown EMAIL_PROVIDER %q", cfg.EmailProvider)
	}

	if deps.Email == nil {
		return nil, fmt.Errorf("bootstrap: email sender not configured")
	}

	return deps, nil
}
