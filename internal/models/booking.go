package models

import (
	"time"

	"github.com/google/uuid"
)

// RecordSource tags every forwarded booking with the producing system.
const RecordSource = "hawa-co-bot"

// BookingRecord is the snapshot of a completed dialogue that gets POSTed
// to the automation webhook. Built once at the terminal step, never stored.
type BookingRecord struct {
	Source     string `json:"source"`
	SessionID  string `json:"sessionId"`
	BookingRef string `json:"booking_ref"`
	BookingData
	CreatedAt string `json:"createdAt"`
}

// NewBookingRecord snapshots the collected data for dispatch.
func NewBookingRecord(sessionID string, data BookingData) *BookingRecord {
	return &BookingRecord{
		Source:      RecordSource,
		SessionID:   sessionID,
		BookingRef:  uuid.NewString(),
		BookingData: data,
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
	}
}
