package notification

import (
	"context"
	"log/slog"

	"pescastur/internal/domain/service"

	"firebase.google.com/go/v4/errorutils"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
)

// messagingClient is the subset of *messaging.Client used to push alerts.
type messagingClient interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

type firebaseService struct {
	client messagingClient
	logger *slog.Logger
}

// NewFirebaseService creates a Firebase Cloud Messaging notification service
func NewFirebaseService(client *messaging.Client, logger *slog.Logger) service.NotificationService {
	return newFirebaseService(client, logger)
}

func newFirebaseService(client messagingClient, logger *slog.Logger) *firebaseService {
	return &firebaseService{
		client: client,
		logger: logger,
	}
}

// SendTopicNotification pushes one message to every device subscribed to topic
func (s *firebaseService) SendTopicNotification(ctx context.Context, topic, title, body string, data map[string]string) error {
	if topic == "" {
		return errors.New("notification topic is required")
	}

	messageID, err := s.client.Send(ctx, &messaging.Message{
		Topic: topic,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	})
	if err != nil {
		if errorutils.IsUnavailable(err) || errorutils.IsInternal(err) || errorutils.IsResourceExhausted(err) {
			return errors.Wrap(service.ErrProviderUnavailable, err.Error())
		}

		return errors.Wrap(err, "failed to send topic notification")
	}

	s.logger.Debug("Topic notification sent",
		slog.String("topic", topic),
		slog.String("message_id", messageID),
	)

	return nil
}
