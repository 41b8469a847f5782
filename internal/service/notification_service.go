package service

import (
	"context"
	"fmt"
	"html"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/business-site-service/internal/config"
	"github.com/spec-kit/business-site-service/internal/events"
	"github.com/spec-kit/business-site-service/internal/mail"
)

// NotificationService turns domain events into outgoing email. Delivery is
// best-effort: a failed send is logged and the originating request still
// succeeds.
type NotificationService struct {
	dispatcher events.Dispatcher
	mailer     mail.Sender
	logger     *zap.Logger
	cfg        config.NotificationConfig
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, mailer mail.Sender, logger *zap.Logger, cfg config.NotificationConfig) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		mailer:     mailer,
		logger:     logger,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventLeadSubmitted, n.handleLeadSubmitted)
	n.dispatcher.Subscribe(events.EventPasswordResetRequested, n.handlePasswordResetRequested)
}

func (n *NotificationService) handleLeadSubmitted(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.LeadSubmittedPayload)
	if !ok {
		return nil
	}
	n.logger.Info("LeadSubmitted",
		zap.String("lead_id", event.EntityID),
		zap.String("reference", payload.Reference),
		zap.String("kind", string(payload.Kind)))

	if strings.TrimSpace(n.cfg.LeadInbox) == "" || n.mailer == nil {
		return nil
	}

	subject := fmt.Sprintf("New %s lead: %s", strings.ToLower(string(payload.Kind)), payload.Name)
	body := fmt.Sprintf(
		"<p>A new lead arrived via the website.</p>"+
			"<p><b>Reference:</b> %s<br/><b>Name:</b> %s<br/><b>Email:</b> %s<br/><b>Phone:</b> %s</p>"+
			"<p>%s</p>",
		html.EscapeString(payload.Reference),
		html.EscapeString(payload.Name),
		html.EscapeString(payload.Email),
		html.EscapeString(payload.Phone),
		html.EscapeString(payload.Message),
	)
	if payload.ServiceType != "" {
		body += fmt.Sprintf("<p><b>Service:</b> %s</p>", html.EscapeString(payload.ServiceType))
	}

	if err := n.mailer.Send(n.cfg.LeadInbox, subject, body); err != nil {
		n.logger.Error("lead notification email failed", zap.Error(err), zap.String("lead_id", event.EntityID))
	}
	return nil
}

func (n *NotificationService) handlePasswordResetRequested(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.PasswordResetRequestedPayload)
	if !ok {
		return nil
	}
	n.logger.Info("PasswordResetRequested", zap.String("account_id", event.EntityID))

	if n.mailer == nil {
		return nil
	}

	body := fmt.Sprintf(
		"<p>A password reset was requested for your account.</p>"+
			"<p>Your reset code is <b>%s</b>. It expires at %s.</p>"+
			"<p>If you did not request this, you can ignore this email.</p>",
		html.EscapeString(payload.Token),
		payload.ExpiresAt.Format("15:04 MST, Jan 2"),
	)

	if err := n.mailer.Send(payload.Email, "Password reset", body); err != nil {
		n.logger.Error("password reset email failed", zap.Error(err), zap.String("account_id", event.EntityID))
	}
	return nil
}
