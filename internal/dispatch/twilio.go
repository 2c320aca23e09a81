package dispatch

import (
	"fmt"
	"log"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/hawaco/booking-backend/internal/models"
)

// SalesNotifier sends a short WhatsApp summary of every completed
// booking to the sales team via Twilio.
type SalesNotifier struct {
	client *twilio.RestClient
	from   string // Format: "whatsapp:+14155238886"
	to     string
}

// NewSalesNotifier creates a Twilio-backed notifier.
func NewSalesNotifier(accountSID, authToken, from, to string) (*SalesNotifier, error) {
	if accountSID == "" || authToken == "" || from == "" || to == "" {
		return nil, fmt.Errorf("missing Twilio credentials in configuration")
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})

	return &SalesNotifier{
		client: client,
		from:   from,
		to:     to,
	}, nil
}

// NotifyBooking sends the sales alert. Errors are logged, never returned:
// the customer-facing flow must not depend on this channel.
func (s *SalesNotifier) NotifyBooking(record *models.BookingRecord) {
	message := fmt.Sprintf(
		"🏍️ حجز جديد (%s)\nالاسم: %s\nالموبايل: %s\nالمحافظة: %s - %s\nالموتسيكل: %s\nطريقة الشراء: %s",
		record.BookingRef,
		record.Name,
		record.Phone,
		record.Governorate,
		record.District,
		record.BikeModel,
		record.PaymentMethod,
	)

	params := &twilioApi.CreateMessageParams{}
	params.SetFrom(s.from)
	params.SetTo(fmt.Sprintf("whatsapp:%s", s.to))
	params.SetBody(message)

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		log.Printf("❌ Failed to send sales alert: %v", err)
		return
	}

	log.Printf("✅ Sales alert sent! SID: %s", *resp.Sid)
}
