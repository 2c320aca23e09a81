package dispatch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/hawaco/booking-backend/internal/models"
)

// Dispatcher delivers completed booking records to the automation
// webhook and, when Twilio is configured, pings the sales team.
type Dispatcher struct {
	webhookURL string
	client     *http.Client
	notifier   *SalesNotifier
}

// NewDispatcher creates a dispatcher for the given webhook URL. notifier
// may be nil when Twilio is not configured.
func NewDispatcher(webhookURL string, notifier *SalesNotifier) *Dispatcher {
	return &Dispatcher{
		webhookURL: webhookURL,
		client:     &http.Client{},
		notifier:   notifier,
	}
}

// Dispatch POSTs the record to the webhook. Exactly one attempt; the
// caller decides what to tell the user when it fails.
func (d *Dispatcher) Dispatch(ctx context.Context, record *models.BookingRecord) error {
	body, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshaling booking record: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("posting booking record: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}

	log.Printf("✅ Booking %s dispatched to webhook", record.BookingRef)

	// Sales alert rides on a successful dispatch; its failure is logged only
	if d.notifier != nil {
		go d.notifier.NotifyBooking(record)
	}

	return nil
}
