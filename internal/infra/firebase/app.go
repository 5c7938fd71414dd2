// Package firebase builds the Firebase app and the per-product clients
// (Authentication, Messaging) injected into the adapters.
package firebase

import (
	"context"
	"log/slog"

	"pescastur/config"
	"pescastur/internal/errors"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"firebase.google.com/go/v4/messaging"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// Params defines the required parameters
type Params struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewApp initializes the Firebase app from the firebase config section.
// Without a credentials path the app falls back to Application Default Credentials.
func NewApp(params Params) (*firebase.App, error) {
	cfg := params.Config.Firebase

	appConfig := &firebase.Config{
		ProjectID:     cfg.ProjectID,
		StorageBucket: cfg.StorageBucket,
	}

	app, err := firebase.NewApp(params.Ctx, appConfig, ClientOptions(params.Config)...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	params.Logger.Info("Firebase app initialized",
		slog.String("project_id", cfg.ProjectID),
		slog.Bool("explicit_credentials", cfg.CredentialsPath != ""),
	)

	return app, nil
}

// ClientOptions returns the Google API options for clients created outside the Firebase app.
func ClientOptions(cfg *config.Config) []option.ClientOption {
	if cfg.Firebase == nil || cfg.Firebase.CredentialsPath == "" {
		return nil
	}

	return []option.ClientOption{option.WithCredentialsFile(cfg.Firebase.CredentialsPath)}
}

func NewAuthClient(ctx context.Context, app *firebase.App) (*auth.Client, error) {
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get auth client")
	}

	return client, nil
}

func NewMessagingClient(ctx context.Context, app *firebase.App) (*messaging.Client, error) {
	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return client, nil
}
