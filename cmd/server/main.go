// cmd/server/main.go
package main

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/samar-703/Vyapaar/internal/ai"
	"github.com/samar-703/Vyapaar/internal/config"
	"github.com/samar-703/Vyapaar/internal/controller"
	"github.com/samar-703/Vyapaar/internal/db"
	"github.com/samar-703/Vyapaar/internal/handler"
	"github.com/samar-703/Vyapaar/internal/mailer"
	"github.com/samar-703/Vyapaar/internal/model"
	"github.com/samar-703/Vyapaar/internal/queue"
	"github.com/samar-703/Vyapaar/internal/repository"
	"github.com/samar-703/Vyapaar/internal/service"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()
	log := logger.Sugar()

	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Info("⚠️ No .env file found, relying on OS environment variables")
	}

	cfg := config.Load()

	// Init DB
	conn, err := db.Connect(cfg.DatabaseURL())
	if err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}
	defer conn.Close()
	log.Info("✅ Connected to database")

	customerRepo := &repository.CustomerRepository{DB: conn}
	waitlistRepo := &repository.WaitlistRepository{DB: conn}
	leadRepo := &repository.LeadRepository{DB: conn}
	outboundRepo := &repository.OutboundEmailRepository{DB: conn}

	aiClient := ai.NewGroqClient(cfg.GroqAPIKey, cfg.CompletionModel)
	mail := mailer.NewResendMailer(cfg.ResendAPIKey, cfg.EmailFrom)

	// Failed campaign sends go to RabbitMQ for cmd/worker when a broker is
	// configured; otherwise an in-process subscriber retries them.
	var q queue.Queue
	if cfg.AMQPURL != "" {
		amqpQueue, err := queue.NewAMQPQueue(cfg.AMQPURL)
		if err != nil {
			log.Fatalf("failed to connect to RabbitMQ: %v", err)
		}
		defer amqpQueue.Close()
		q = amqpQueue
		log.Info("✅ Connected to RabbitMQ")
	} else {
		inMem := queue.NewInMemoryQueue(log)
		startInProcessRetries(inMem, outboundRepo, mail, log)
		q = inMem
		log.Info("⚠️ AMQP_URL not set, retrying failed sends in-process")
	}

	importService := &service.ImportService{CustomerRepo: customerRepo, Log: log}
	queryService := &service.QueryService{CustomerRepo: customerRepo, AI: aiClient}
	campaignService := &service.CampaignService{
		CustomerRepo: customerRepo,
		OutboundRepo: outboundRepo,
		AI:           aiClient,
		Mailer:       mail,
		Queue:        q,
		Limiter:      rate.NewLimiter(rate.Limit(1), 1), // one send per second
		Log:          log,
	}
	outreachService := &service.OutreachService{AI: aiClient}

	csvController := &controller.CSVController{
		ImportService: importService,
		QueryService:  queryService,
		Log:           log,
	}
	campaignController := &controller.CampaignController{
		CampaignService: campaignService,
		Log:             log,
	}
	chatController := &controller.ChatController{AI: aiClient, Log: log}
	customerController := &controller.CustomerController{CustomerRepo: customerRepo, Log: log}

	waitlistHandler := &handler.WaitlistHandler{Repo: waitlistRepo, Log: log}
	leadHandler := &handler.LeadHandler{
		LeadRepo: leadRepo,
		Outreach: outreachService,
		Log:      log,
	}

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)

	// CRM routes
	r.Post("/api/upload-csv", csvController.UploadCSV)
	r.Post("/api/query-csv", csvController.QueryCSV)
	r.Post("/api/craft-email", campaignController.CraftEmail)
	r.Post("/api/chat", chatController.Chat)
	r.Get("/api/customers", customerController.ListCustomers)

	// Lead-gen routes
	r.Post("/api/waitlist", waitlistHandler.Join)
	r.Get("/api/leads", leadHandler.ListLeads)
	r.Post("/api/generate-message", leadHandler.GenerateMessage)
	r.Post("/api/twitter-monitor", leadHandler.TwitterMonitor)

	log.Infof("🚀 Server running on :%s", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, r))
}

// startInProcessRetries wires the in-memory queue to a direct redelivery
// handler. Used in dev setups without a broker.
func startInProcessRetries(q queue.Queue, repo repository.OutboundEmailRepositoryInterface, mail mailer.Mailer, log *zap.SugaredLogger) {
	jobChan := make(chan int, 64)

	worker := service.NewRetryWorker(repo, jobChan, func(e *model.OutboundEmail) error {
		return mail.Send(context.Background(), e.Recipient, e.Subject, e.Body)
	}, log)
	go worker.Start()

	q.Subscribe(queue.EmailRetryQueue, func(payload any) error {
		job, ok := payload.(queue.RetryJob)
		if !ok {
			log.Warn("⚠️ Invalid payload type, expected RetryJob")
			return nil
		}
		jobChan <- job.OutboundEmailID
		return nil
	})
}
