package pubsub

import (
	"context"
	"log/slog"

	"pescastur/config"
	"pescastur/internal/domain/constants"
	"pescastur/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopPublisher drops stock events; the shop runs without a worker.
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishStockLevel(_ context.Context, event *service.StockLevelEvent) error {
	p.logger.Debug("[NoopPubSub] Stock event dropped",
		slog.String("product_id", event.ProductID),
		slog.Int("remaining", event.Remaining),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher picks the stock event transport from pubsub.provider.
// An absent section disables events instead of failing the shop.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" {
		logger.Info("PubSub not configured, stock events are dropped")

		return &noopPublisher{logger: logger}, nil
	}

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	var publisher service.EventPublisher
	if cfg.Provider == constants.PubSubProviderLocal {
		logger.Info("Pushing stock events straight to the worker",
			slog.String("endpoint", cfg.LocalEndpoint),
		)
		publisher = NewLocalHTTPPublisher(cfg.LocalEndpoint, logger, cfg.TopicID)
	} else {
		var err error
		publisher, err = NewGooglePubSubPublisher(params.Ctx, cfg.ProjectID, cfg.TopicID, logger)
		if err != nil {
			return nil, err
		}
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			logger.Info("Closing stock event publisher", slog.String("provider", cfg.Provider))

			return publisher.Close()
		},
	})

	return publisher, nil
}

func validateConfig(cfg *config.PubSubConfig) error {
	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return errors.New("pubsub.localEndpoint: local endpoint is required for local provider")
		}
	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" {
			return errors.New("pubsub.projectId: project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return errors.New("pubsub.topicId: topic ID is required for google provider")
		}
	default:
		return errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}

	return nil
}

// Module provides the stock event publisher to the shop application
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
