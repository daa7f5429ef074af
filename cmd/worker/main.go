// cmd/worker/main.go
package main

import (
	"context"
	"encoding/json"

	"github.com/joho/godotenv"
	"github.com/streadway/amqp"
	"go.uber.org/zap"

	"github.com/samar-703/Vyapaar/internal/config"
	"github.com/samar-703/Vyapaar/internal/db"
	"github.com/samar-703/Vyapaar/internal/mailer"
	"github.com/samar-703/Vyapaar/internal/queue"
	"github.com/samar-703/Vyapaar/internal/repository"
	"github.com/samar-703/Vyapaar/internal/service"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()
	log := logger.Sugar()

	if err := godotenv.Load(); err != nil {
		log.Info("⚠️ No .env file found, relying on OS environment variables")
	}

	cfg := config.Load()

	conn, err := db.Connect(cfg.DatabaseURL())
	if err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}
	defer conn.Close()

	outboundRepo := &repository.OutboundEmailRepository{DB: conn}
	mail := mailer.NewResendMailer(cfg.ResendAPIKey, cfg.EmailFrom)

	// Connect to RabbitMQ
	amqpConn, err := amqp.Dial(cfg.AMQPURL)
	if err != nil {
		log.Fatalf("Failed to connect to RabbitMQ: %v", err)
	}
	defer amqpConn.Close()

	ch, err := amqpConn.Channel()
	if err != nil {
		log.Fatalf("Failed to open a channel: %v", err)
	}
	defer ch.Close()

	q, err := ch.QueueDeclare(
		queue.EmailRetryQueue,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		log.Fatalf("Failed to declare queue: %v", err)
	}

	msgs, err := ch.Consume(
		q.Name,
		"",
		false, // autoAck = false for reliability
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		log.Fatalf("Failed to register consumer: %v", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var job queue.RetryJob
			if err := json.Unmarshal(d.Body, &job); err != nil {
				log.Warnf("Invalid job: %v", err)
				d.Ack(false)
				continue
			}

			if err := redeliver(job.OutboundEmailID, outboundRepo, mail, log); err != nil {
				log.Warnf("Failed to redeliver message %d: %v", job.OutboundEmailID, err)
				d.Nack(false, true) // requeue; redeliver stops erroring once the retry cap trips
				continue
			}

			d.Ack(false)
		}
	}()

	log.Info("Worker running, waiting for messages...")
	<-forever
}

// redeliver re-attempts one journaled email and records the outcome. It
// returns nil once the persisted retry count reaches the cap so the message
// is acked instead of circulating forever.
func redeliver(id int, repo repository.OutboundEmailRepositoryInterface, mail mailer.Mailer, log *zap.SugaredLogger) error {
	email, err := repo.GetByID(id)
	if err != nil {
		return err
	}
	if email == nil {
		log.Warnf("⚠️ Outbound email not found for ID: %d", id)
		return nil // no retry
	}
	if email.Status == "sent" {
		return nil // already delivered
	}
	if email.RetryCount >= service.MaxRedeliveries {
		log.Warnf("Giving up on email %d after %d retries", email.ID, email.RetryCount)
		return nil
	}

	sendErr := mail.Send(context.Background(), email.Recipient, email.Subject, email.Body)
	if sendErr != nil {
		email.Status = "failed"
		email.LastError = sendErr.Error()
	} else {
		email.Status = "sent"
		email.LastError = ""
		log.Infof("✅ Redelivered email %d to %s", email.ID, email.Recipient)
	}
	email.RetryCount++

	if err := repo.Update(email); err != nil {
		return err
	}
	return sendErr
}
