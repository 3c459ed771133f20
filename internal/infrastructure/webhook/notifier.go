// Package webhook delivers submitted requests to the external automation
// endpoint. Delivery is fire-and-forget: the response body is discarded and
// nothing is retried.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/mociber/booking-api/internal/core/ports"
)

// sourceTag identifies this system in every webhook payload. It is part of
// the external contract with the automation flow.
const sourceTag = "mociber-app"

const defaultTimeout = 10 * time.Second

// Config captures the webhook endpoint settings.
type Config struct {
	URL string
	// Timeout bounds each delivery attempt. The original client relied on the
	// transport default; here it is explicit and configurable.
	Timeout time.Duration
}

// Notifier implements ports.Notifier over plain HTTP POST.
type Notifier struct {
	url    string
	client *http.Client
	logger zerolog.Logger
}

func NewNotifier(cfg Config, logger zerolog.Logger) *Notifier {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Notifier{
		url:    cfg.URL,
		client: &http.Client{Timeout: timeout},
		logger: logger,
	}
}

// Notify POSTs the notification as JSON. A non-2xx status is reported as an
// error so the caller can flag it, but the caller never retries.
func (n *Notifier) Notify(ctx context.Context, notification ports.Notification) error {
	notification.Source = sourceTag

	body, err := json.Marshal(notification)
	if err != nil {
		return fmt.Errorf("encode notification: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build notification request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("deliver notification: %w", err)
	}
	defer resp.Body.Close()

	// Drain so the connection can be reused; the response content is ignored.
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("deliver notification: unexpected status %d", resp.StatusCode)
	}

	n.logger.Debug().Str("url", n.url).Msg("notification delivered")
	return nil
}
