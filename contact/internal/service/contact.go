package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/organicstore/storefront/contact/internal/otel"
	"github.com/organicstore/storefront/contact/pkg/request"
	"github.com/organicstore/storefront/contact/pkg/response"
	"github.com/organicstore/storefront/internal/config"
	"github.com/organicstore/storefront/internal/constants"
	"github.com/organicstore/storefront/internal/metric"
	inOtel "github.com/organicstore/storefront/internal/otel"
)

type ContactService struct {
	cfg    config.Contact
	client *http.Client
}

func NewContactService(cfg config.Contact) *ContactService {
	return &ContactService{cfg: cfg, client: otelhttp.DefaultClient}
}

type webhookPayload struct {
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// Send forwards the submission to the configured webhook. Delivery failures
// never surface to the caller; the submission is accepted as simulated and
// the result carries a warning instead.
func (s *ContactService) Send(c context.Context, param request.Contact) response.Result {
	c, span := otel.Tracer.Start(c, "ContactService Send")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(constants.KEY_TAG, "ContactService Send").
		Str(constants.KEY_WEBHOOK_URL, s.cfg.WebhookURL).
		Str(constants.KEY_EMAIL, param.Email).
		Logger()

	now := time.Now()
	if err := s.deliver(c, param, now); err != nil {
		inOtel.RecordError(err, span)
		logger.Warn().Err(err).Msg("webhook unreachable, accepting submission as simulated")
		metric.ContactDispatches.WithLabelValues("simulated").Inc()
		return response.Result{
			Dispatched: true,
			Simulated:  true,
			Timestamp:  now,
			Warning:    "message accepted but the webhook could not be reached",
		}
	}

	logger.Info().Msg("delivered contact submission")
	metric.ContactDispatches.WithLabelValues("delivered").Inc()
	return response.Result{Dispatched: true, Timestamp: now}
}

func (s *ContactService) deliver(c context.Context, param request.Contact, now time.Time) error {
	encoded, err := json.Marshal(webhookPayload{
		Name:      param.Name,
		Email:     param.Email,
		Phone:     param.Phone,
		Message:   param.Message,
		Timestamp: now,
	})
	if err != nil {
		return fmt.Errorf("failed marshaling webhook payload with error=%w", err)
	}

	req, err := http.NewRequestWithContext(c, http.MethodPost, s.cfg.WebhookURL, bytes.NewReader(encoded))
	if err != nil {
		return fmt.Errorf("failed creating webhook request with error=%w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed posting to webhook with error=%w", err)
	}
	defer res.Body.Close()
	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("webhook responded with statusCode=%d", res.StatusCode)
	}
	return nil
}
