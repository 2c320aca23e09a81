package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds everything read from the environment. It is built once in
// main and passed to the services that need it, so nothing else in the
// codebase touches os.Getenv.
type Config struct {
	Port string

	OpenAIKey   string
	OpenAIModel string

	WebhookURL string

	TwilioAccountSID   string
	TwilioAuthToken    string
	TwilioWhatsAppFrom string // Format: "whatsapp:+14155238886"
	SalesWhatsAppTo    string

	SessionTTL      time.Duration
	SessionCapacity int

	StaticDir string
}

// DefaultWebhookURL is the Make.com scenario that receives completed bookings.
const DefaultWebhookURL = "https://hook.eu2.make.com/pyh4mn7phqis5liyl4u8fysgphvj9klj"

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getIntEnv(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func getDurationEnv(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}

// Load reads all env vars and builds the config
func Load() *Config {
	return &Config{
		Port: getEnv("PORT", "3000"),

		OpenAIKey:   getEnv("OPENAI_API_KEY", ""),
		OpenAIModel: getEnv("OPENAI_MODEL", "gpt-4.1-mini"),

		WebhookURL: getEnv("MAKE_WEBHOOK_URL", DefaultWebhookURL),

		TwilioAccountSID:   getEnv("TWILIO_ACCOUNT_SID", ""),
		TwilioAuthToken:    getEnv("TWILIO_AUTH_TOKEN", ""),
		TwilioWhatsAppFrom: getEnv("TWILIO_WHATSAPP_FROM", ""),
		SalesWhatsAppTo:    getEnv("SALES_WHATSAPP_TO", ""),

		SessionTTL:      getDurationEnv("SESSION_TTL", 12*time.Hour),
		SessionCapacity: getIntEnv("SESSION_CAPACITY", 10000),

		StaticDir: getEnv("STATIC_DIR", "./public"),
	}
}
