package service

import "context"

// NotificationService pushes messages to mobile devices through FCM topics.
// Retryable outages are reported wrapped in ErrProviderUnavailable.
type NotificationService interface {
	SendTopicNotification(ctx context.Context, topic, title, body string, data map[string]string) error
}
