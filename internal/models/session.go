package models

import "time"

// Step is the current position of a session in the booking dialogue.
type Step string

const (
	StepAskName        Step = "askName"
	StepAskAge         Step = "askAge"
	StepAskPhone       Step = "askPhone"
	StepAskWhatsapp    Step = "askWhatsapp"
	StepAskGovernorate Step = "askGovernorate"
	StepAskDistrict    Step = "askDistrict"
	StepAskBike        Step = "askBike"
	StepAskPayment     Step = "askPayment"
	StepAskDownPayment Step = "askDownPayment"
	StepAskContactTime Step = "askContactTime"
	StepFinished       Step = "finished"
)

// BookingData accumulates the customer's answers over the dialogue.
// Fields are filled in step order; governorate and district may be
// rewritten by the address check or the change-governorate command.
type BookingData struct {
	Name          string `json:"name,omitempty"`
	Age           string `json:"age,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Whatsapp      string `json:"whatsapp,omitempty"`
	Governorate   string `json:"governorate,omitempty"`
	District      string `json:"district,omitempty"`
	BikeModel     string `json:"bikeModel,omitempty"`
	PaymentMethod string `json:"paymentMethod,omitempty"`
	DownPayment   string `json:"downPayment,omitempty"`
	ContactTime   string `json:"contactTime,omitempty"`
}

// Session is one customer's in-progress or completed booking dialogue.
type Session struct {
	ID         string      `json:"session_id"`
	Step       Step        `json:"step"`
	Data       BookingData `json:"data"`
	CreatedAt  time.Time   `json:"created_at"`
	LastActive time.Time   `json:"last_active"`
}
