package mailer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-users-tasks-api/internal/domain/entity"
	tpl "github.com/oksasatya/go-users-tasks-api/pkg/mailer/templates"
)

// ErrPermanent marks a message that will never succeed; the worker drops it
// instead of requeueing.
var ErrPermanent = errors.New("permanent failure")

var eventTemplates = map[string]string{
	entity.EventUserCreated: tpl.Welcome,
	entity.EventUserDeleted: tpl.Goodbye,
}

// EventMailer turns user events from the queue into emails.
type EventMailer struct {
	Sender  Sender
	AppName string
	Logger  *logrus.Logger
	Timeout time.Duration

	// Requeue backoff used by Consume.
	RetryBase time.Duration
	RetryMax  time.Duration
}

func NewEventMailer(sender Sender, appName string, logger *logrus.Logger) *EventMailer {
	return &EventMailer{
		Sender:    sender,
		AppName:   appName,
		Logger:    logger,
		Timeout:   15 * time.Second,
		RetryBase: 500 * time.Millisecond,
		RetryMax:  30 * time.Second,
	}
}

// Handle processes one message. msgType is the AMQP message type; when empty
// the type inside the body is used. Unknown types are ignored.
func (m *EventMailer) Handle(ctx context.Context, msgType string, body []byte) error {
	var ev entity.UserEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		return fmt.Errorf("%w: decode event: %v", ErrPermanent, err)
	}
	if msgType == "" {
		msgType = ev.Type
	}
	name, ok := eventTemplates[msgType]
	if !ok {
		m.Logger.WithField("type", msgType).Debug("ignoring event")
		return nil
	}
	if ev.Email == "" {
		return fmt.Errorf("%w: event %s has no email", ErrPermanent, msgType)
	}
	at := ev.OccurredAt
	if at.IsZero() {
		at = time.Now()
	}

	subject, text, html, err := tpl.Render(name, tpl.EmailData{Name: ev.Name, Email: ev.Email, AppName: m.AppName, Time: at})
	if err != nil {
		return fmt.Errorf("%w: render %s: %v", ErrPermanent, name, err)
	}

	c, cancel := context.WithTimeout(ctx, m.Timeout)
	defer cancel()
	if err := m.Sender.Send(c, ev.Email, subject, text, html); err != nil {
		return fmt.Errorf("send %s: %w", name, err)
	}
	m.Logger.WithFields(logrus.Fields{"type": msgType, "user_id": ev.UserID}).Info("email sent")
	return nil
}
