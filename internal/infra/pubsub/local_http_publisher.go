package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"pescastur/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// localHTTPPublisher delivers events straight to a worker endpoint in the
// same envelope a Pub/Sub push subscription would use.
type localHTTPPublisher struct {
	endpoint     string
	subscription string
	httpClient   *http.Client
	logger       *slog.Logger
}

const defaultLocalTopic = "stock-levels"

// PushMessage is the body of a Pub/Sub push request
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewLocalHTTPPublisher creates the development publisher. The optional topic
// only names the simulated push subscription.
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger, topic ...string) service.EventPublisher {
	topicID := defaultLocalTopic
	if len(topic) > 0 && topic[0] != "" {
		topicID = topic[0]
	}

	return &localHTTPPublisher{
		endpoint:     endpoint,
		subscription: "projects/local/subscriptions/" + topicID + "-push",
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: logger,
	}
}

func (p *localHTTPPublisher) PublishStockLevel(ctx context.Context, event *service.StockLevelEvent) error {
	eventData, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	pushMsg := PushMessage{Subscription: p.subscription}
	pushMsg.Message.Data = base64.StdEncoding.EncodeToString(eventData)
	pushMsg.Message.MessageID = uuid.NewString()
	pushMsg.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)
	pushMsg.Message.Attributes = eventAttributes(event)

	body, err := json.Marshal(pushMsg)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if event.RequestID != "" {
		req.Header.Set("X-Request-Id", event.RequestID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "push stock event for %s", event.ProductID)
	}
	defer resp.Body.Close()

	// the worker answers 503 for events it wants redelivered; locally nobody redelivers
	if resp.StatusCode/100 != 2 {
		return errors.Errorf("worker rejected stock event for %s: status %d", event.ProductID, resp.StatusCode)
	}

	p.logger.Debug("[LocalPubSub] Stock event delivered",
		slog.String("subscription", p.subscription),
		slog.String("product_id", event.ProductID),
		slog.String("message_id", pushMsg.Message.MessageID),
	)

	return nil
}

func (p *localHTTPPublisher) Close() error {
	p.httpClient.CloseIdleConnections()

	return nil
}
