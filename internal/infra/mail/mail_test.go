package mail

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pescastur/config"
	"pescastur/internal/domain/entity"
	"pescastur/internal/domain/service"

	"github.com/mailjet/mailjet-apiv3-go/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var testSender = Sender{Email: "no-reply@pescastur.es", Name: "Pescastur"}

func TestHTMLEnvelope(t *testing.T) {
	got := htmlEnvelope("Hola <b>Ana</b>\nGracias & saludos")

	assert.Equal(t, "<html><body><p>Hola &lt;b&gt;Ana&lt;/b&gt;<br>Gracias &amp; saludos</p></body></html>", got)
}

func TestMailjetSender_Send(t *testing.T) {
	var captured map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "public", user)
		assert.Equal(t, "private", pass)
		assert.True(t, strings.HasSuffix(r.URL.Path, "/send"))

		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &captured))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"Messages":[{"Status":"success","To":[{"Email":"ana@example.com"}]}]}`))
	}))
	defer server.Close()

	sender, err := NewMailjetSender("public", "private", testSender, discardLogger(), server.URL+"/v3")
	require.NoError(t, err)

	err = sender.Send(context.Background(), &entity.EmailMessage{To: "ana@example.com", Subject: "Pedido", Body: "Gracias"})
	require.NoError(t, err)

	messages, ok := captured["Messages"].([]any)
	require.True(t, ok)
	require.Len(t, messages, 1)
	msg := messages[0].(map[string]any)
	assert.Equal(t, "Pedido", msg["Subject"])
	assert.Equal(t, "Gracias", msg["TextPart"])
	assert.Equal(t, "<html><body><p>Gracias</p></body></html>", msg["HTMLPart"])
	assert.Equal(t, "no-reply@pescastur.es", msg["From"].(map[string]any)["Email"])
}

func TestMailjetSender_ProviderErrorIsReturned(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	sender, err := NewMailjetSender("public", "private", testSender, discardLogger(), server.URL+"/v3")
	require.NoError(t, err)

	err = sender.Send(context.Background(), &entity.EmailMessage{To: "ana@example.com", Subject: "s", Body: "b"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, service.ErrProviderUnavailable)
}

func TestMailjetSender_OutageIsRetryable(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "empty 503", status: http.StatusServiceUnavailable},
		{name: "json 500", status: http.StatusInternalServerError, body: `{"ErrorIdentifier":"x","ErrorMessage":"internal","StatusCode":500}`},
		{name: "rate limited", status: http.StatusTooManyRequests, body: `{"ErrorMessage":"slow down","StatusCode":429}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			sender, err := NewMailjetSender("public", "private", testSender, discardLogger(), server.URL+"/v3")
			require.NoError(t, err)

			err = sender.Send(context.Background(), &entity.EmailMessage{To: "ana@example.com", Subject: "s", Body: "b"})
			assert.ErrorIs(t, err, service.ErrProviderUnavailable)
		})
	}
}

func TestMailjetError_DecodedStatus(t *testing.T) {
	assert.ErrorIs(t, mailjetError(&mailjet.ErrorInfoV31{StatusCode: http.StatusBadGateway}), service.ErrProviderUnavailable)
	assert.NotErrorIs(t, mailjetError(&mailjet.ErrorInfoV31{StatusCode: http.StatusUnauthorized}), service.ErrProviderUnavailable)
}

func TestSendGridSender_Send(t *testing.T) {
	var captured map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v3/mail/send", r.URL.Path)
		assert.Equal(t, "Bearer sg-key", r.Header.Get("Authorization"))

		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &captured))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	sender, err := NewSendGridSender("sg-key", server.URL, testSender, discardLogger())
	require.NoError(t, err)

	err = sender.Send(context.Background(), &entity.EmailMessage{To: "ana@example.com", Subject: "Pedido", Body: "Gracias"})
	require.NoError(t, err)
	assert.Equal(t, "Pedido", captured["subject"])
}

func TestSendGridSender_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"errors":[{"message":"forbidden"}]}`))
	}))
	defer server.Close()

	sender, err := NewSendGridSender("sg-key", server.URL, testSender, discardLogger())
	require.NoError(t, err)

	err = sender.Send(context.Background(), &entity.EmailMessage{To: "ana@example.com", Subject: "s", Body: "b"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status=403")
	assert.NotErrorIs(t, err, service.ErrProviderUnavailable)
}

func TestSendGridSender_OutageIsRetryable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	sender, err := NewSendGridSender("sg-key", server.URL, testSender, discardLogger())
	require.NoError(t, err)

	err = sender.Send(context.Background(), &entity.EmailMessage{To: "ana@example.com", Subject: "s", Body: "b"})
	assert.ErrorIs(t, err, service.ErrProviderUnavailable)
}

func TestNewEmailSender(t *testing.T) {
	newConfig := func(provider string) *config.Config {
		cfg := &config.Config{Mail: &config.MailConfig{Provider: provider, FromEmail: "no-reply@pescastur.es"}}
		cfg.Mail.Mailjet.APIKey = "public"
		cfg.Mail.Mailjet.SecretKey = "private"
		cfg.Mail.SendGrid.APIKey = "sg-key"

		return cfg
	}

	for _, provider := range []string{"mailjet", "sendgrid", "noop", ""} {
		t.Run("provider "+provider, func(t *testing.T) {
			sender, err := NewEmailSender(Params{Config: newConfig(provider), Logger: discardLogger()})
			require.NoError(t, err)
			assert.NotNil(t, sender)
		})
	}

	_, err := NewEmailSender(Params{Config: newConfig("carrier-pigeon"), Logger: discardLogger()})
	require.Error(t, err)
}

func TestNoopSender_ValidatesRecipient(t *testing.T) {
	sender := &noopSender{sender: testSender, logger: discardLogger()}

	require.NoError(t, sender.Send(context.Background(), &entity.EmailMessage{To: "ana@example.com"}))
	require.Error(t, sender.Send(context.Background(), &entity.EmailMessage{}))
}
