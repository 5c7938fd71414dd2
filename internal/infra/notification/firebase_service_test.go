package notification

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"pescastur/internal/domain/service"

	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMessagingClient struct {
	sent []*messaging.Message
	err  error
}

func (f *fakeMessagingClient) Send(_ context.Context, message *messaging.Message) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.sent = append(f.sent, message)

	return "projects/p/messages/1", nil
}

func TestSendTopicNotification(t *testing.T) {
	client := &fakeMessagingClient{}
	svc := newFirebaseService(client, slog.New(slog.NewTextHandler(io.Discard, nil)))

	err := svc.SendTopicNotification(context.Background(), "stock-alerts", "Stock bajo", "Quedan 2", map[string]string{"product_id": "p1"})
	require.NoError(t, err)

	require.Len(t, client.sent, 1)
	assert.Equal(t, "stock-alerts", client.sent[0].Topic)
	assert.Equal(t, "Stock bajo", client.sent[0].Notification.Title)
	assert.Equal(t, "p1", client.sent[0].Data["product_id"])
}

func TestSendTopicNotification_Errors(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("empty topic", func(t *testing.T) {
		svc := newFirebaseService(&fakeMessagingClient{}, logger)
		assert.Error(t, svc.SendTopicNotification(context.Background(), "", "t", "b", nil))
	})

	t.Run("send failure", func(t *testing.T) {
		svc := newFirebaseService(&fakeMessagingClient{err: errors.New("boom")}, logger)
		err := svc.SendTopicNotification(context.Background(), "topic", "t", "b", nil)
		require.Error(t, err)
		assert.NotErrorIs(t, err, service.ErrProviderUnavailable)
	})
}
