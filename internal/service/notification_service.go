package service

import (
	"context"
	"encoding/json"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk/internal/config"
	"github.com/spec-kit/helpdesk/internal/domain"
	"github.com/spec-kit/helpdesk/internal/events"
	"github.com/spec-kit/helpdesk/internal/mail"
	"github.com/spec-kit/helpdesk/internal/persistence"
)

// NotificationService is the notifier adapter: it consumes lifecycle
// events, renders the email for each one, and hands it to the delivery
// backends. Email delivery itself is a stub (structured log); each
// event is additionally published to a Redis channel when Redis is
// configured, and to a webhook stub when a URL is set. Any failure here
// is logged and never reaches the mutation path.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	redis      *persistence.Redis
	redisCh    string
	cfg        config.NotificationConfig
}

// NewNotificationService creates the service. redis may be nil.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, redis *persistence.Redis, redisChannel string, cfg config.NotificationConfig) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
		redis:      redis,
		redisCh:    redisChannel,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to the lifecycle events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventTicketCreated, n.handleTicketCreated)
	n.dispatcher.Subscribe(events.EventTicketUpdated, n.handleTicketUpdated)
	n.dispatcher.Subscribe(events.EventCommentAdded, n.handleCommentAdded)
}

func (n *NotificationService) handleTicketCreated(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.TicketCreatedPayload)
	if !ok {
		return nil
	}
	ticket := payload.Ticket
	recipients := []string{ticket.RequesterEmail}
	if n.cfg.SupportEmail != "" {
		recipients = append(recipients, n.cfg.SupportEmail)
	}
	n.sendEmail(recipients, mail.TicketCreated(ticket, n.cfg.BaseURL), event)
	n.publishExternal(ctx, event)
	return nil
}

func (n *NotificationService) handleTicketUpdated(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.TicketUpdatedPayload)
	if !ok {
		return nil
	}
	ticket := payload.Ticket
	recipients := []string{ticket.RequesterEmail}
	if email, ok := domain.AgentEmail(ticket.AssignedTo); ok {
		recipients = append(recipients, email)
	}
	// A reassignment also notifies the new assignee directly.
	if payload.Changed.AssignedTo != nil && *payload.Changed.AssignedTo != payload.Previous.AssignedTo {
		if email, ok := domain.AgentEmail(*payload.Changed.AssignedTo); ok {
			recipients = append(recipients, email)
		}
	}
	n.sendEmail(recipients, mail.TicketUpdated(ticket, payload.Changed, n.cfg.BaseURL), event)
	n.publishExternal(ctx, event)
	return nil
}

func (n *NotificationService) handleCommentAdded(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.CommentAddedPayload)
	if !ok {
		return nil
	}
	ticket := payload.Ticket
	recipients := []string{ticket.RequesterEmail}
	if email, ok := domain.AgentEmail(ticket.AssignedTo); ok {
		recipients = append(recipients, email)
	}
	n.sendEmail(recipients, mail.CommentAdded(ticket, payload.Comment, n.cfg.BaseURL), event)
	n.publishExternal(ctx, event)
	return nil
}

// sendEmail is the delivery stub: it logs what a real backend would
// send.
func (n *NotificationService) sendEmail(recipients []string, msg mail.Message, event events.Event) {
	to := dedupe(recipients)
	if len(to) == 0 {
		return
	}
	n.logger.Info("email notification",
		zap.String("event_type", string(event.Type)),
		zap.String("ticket_id", event.TicketID),
		zap.String("from", n.cfg.EmailFrom),
		zap.Strings("to", to),
		zap.String("subject", msg.Subject))
	if strings.TrimSpace(n.cfg.WebhookURL) != "" {
		n.logger.Debug("webhook notification stub",
			zap.String("url", n.cfg.WebhookURL),
			zap.String("ticket_id", event.TicketID),
			zap.String("event_type", string(event.Type)))
	}
}

// publishExternal forwards the raw event to the Redis channel for
// out-of-process consumers. Failures are logged only.
func (n *NotificationService) publishExternal(ctx context.Context, event events.Event) {
	if n.redis == nil {
		return
	}
	payload, err := json.Marshal(event)
	if err != nil {
		n.logger.Warn("event marshal failed", zap.Error(err))
		return
	}
	if err := n.redis.Publish(ctx, n.redisCh, payload); err != nil {
		n.logger.Warn("redis publish failed",
			zap.String("channel", n.redisCh),
			zap.String("event_type", string(event.Type)),
			zap.Error(err))
	}
}

func dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
