package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"github.com/hawaco/booking-backend/internal/address"
	"github.com/hawaco/booking-backend/internal/config"
	"github.com/hawaco/booking-backend/internal/dispatch"
	"github.com/hawaco/booking-backend/internal/flow"
	"github.com/hawaco/booking-backend/internal/routes"
	"github.com/hawaco/booking-backend/internal/storage"
)

func main() {
	// Load .env file for local development
	err := godotenv.Load(".env")
	if err != nil {
		err = godotenv.Load("environments/.env.development")
		if err != nil {
			log.Println("⚠️  No .env file found - checking environment variables")
		}
	}

	cfg := config.Load()

	// Session store (bounded: TTL + capacity)
	store := storage.NewMemoryStore(cfg.SessionTTL, cfg.SessionCapacity)

	// Address check via OpenAI
	var checker address.Checker
	if cfg.OpenAIKey != "" {
		checker = address.NewOpenAIChecker(cfg.OpenAIKey, cfg.OpenAIModel)
		log.Println("✅ OpenAI address check initialized")
	} else {
		log.Println("⚠️  OPENAI_API_KEY not set - address check disabled")
	}

	// Sales team WhatsApp alerts via Twilio
	notifier, err := dispatch.NewSalesNotifier(
		cfg.TwilioAccountSID,
		cfg.TwilioAuthToken,
		cfg.TwilioWhatsAppFrom,
		cfg.SalesWhatsAppTo,
	)
	if err != nil {
		log.Printf("⚠️  Twilio not configured - sales alerts disabled: %v", err)
		notifier = nil
	} else {
		log.Println("✅ Twilio sales alerts initialized")
	}

	dispatcher := dispatch.NewDispatcher(cfg.WebhookURL, notifier)
	engine := flow.NewEngine(store, checker, dispatcher)

	// Create fiber app
	app := fiber.New(fiber.Config{
		AppName: "Hawa Co Booking Bot v1.0.0",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			log.Printf("SERVER ERROR: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"reply": "خطأ داخلي في السيرفر.",
				"done":  false,
			})
		},
	})

	// Middleware
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, OPTIONS",
	}))

	routes.SetupRoutes(app, cfg, store, engine)

	// Handle graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("\n🛑 Gracefully shutting down...")
		store.Close()
		_ = app.Shutdown()
	}()

	log.Println("========================================")
	log.Printf("🚀 Hawa Co Booking Bot running at http://localhost:%s", cfg.Port)
	log.Printf("🧠 Address check: %s", getAddressCheckStatus(cfg.OpenAIKey))
	log.Printf("📨 Webhook: %s", cfg.WebhookURL)
	log.Printf("📱 Sales alerts: %s", getSalesAlertStatus(notifier))
	log.Println("========================================")

	log.Fatal(app.Listen(":" + cfg.Port))
}

func getAddressCheckStatus(openAIKey string) string {
	if openAIKey == "" {
		return "Disabled"
	}
	return "Enabled"
}

func getSalesAlertStatus(notifier *dispatch.SalesNotifier) string {
	if notifier == nil {
		return "Not configured"
	}
	return "Configured"
}
