package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/oksasatya/go-users-tasks-api/config"
	"github.com/oksasatya/go-users-tasks-api/pkg/helpers"
	"github.com/oksasatya/go-users-tasks-api/pkg/mailer"
)

// email_worker consumes user events and sends the welcome / goodbye mail.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-email-worker", cfg.Env, cfg.LogLevel)

	if !cfg.MailSendEnabled {
		logger.Info("MAIL_SEND_ENABLED=false; email worker disabled")
		return
	}
	if cfg.RabbitMQURL == "" || cfg.RabbitMQEventsQueue == "" {
		logger.Fatal("RabbitMQ not configured")
	}
	if cfg.MailgunDomain == "" || cfg.MailgunAPIKey == "" || cfg.MailgunSender == "" {
		logger.Fatal("Mailgun not configured")
	}

	conn, err := amqp.Dial(cfg.RabbitMQURL)
	if err != nil {
		logger.WithError(err).Fatal("amqp dial")
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		logger.WithError(err).Fatal("amqp channel")
	}
	defer func() { _ = ch.Close() }()

	if err := ch.Qos(16, 0, false); err != nil {
		logger.WithError(err).Fatal("qos")
	}
	if _, err := helpers.DeclareQueue(ch, cfg.RabbitMQEventsQueue); err != nil {
		logger.WithError(err).Fatal("queue declare")
	}
	msgs, err := ch.Consume(cfg.RabbitMQEventsQueue, "", false, false, false, false, nil)
	if err != nil {
		logger.WithError(err).Fatal("consume")
	}

	events := mailer.NewEventMailer(mailer.NewMailgun(cfg.MailgunDomain, cfg.MailgunAPIKey, cfg.MailgunSender), cfg.AppName, logger)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	errc := make(chan error, 1)
	go func() { errc <- events.Consume(ctx, msgs) }()

	logger.Infof("email worker listening on queue=%s", cfg.RabbitMQEventsQueue)
	select {
	case <-stop:
		logger.Info("shutting down...")
		cancel()
		_ = ch.Close()
		select {
		case <-errc:
		case <-time.After(2 * time.Second):
		}
	case err := <-errc:
		// Nothing left to drain; let the supervisor restart us.
		logger.WithError(err).Fatal("consumer stopped")
	}
}
