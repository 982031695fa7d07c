package publisher

import (
	"VCS_Uptime_Monitor/internal/monitor-service/model"
	"VCS_Uptime_Monitor/pkg/mail"
	"context"
	"fmt"
	"html"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const alertSubject = "Connection Error"

type alertNotifier struct {
	sender     mail.Sender
	recipients []string
	limiter    *rate.Limiter
	logger     *zap.Logger

	mu      sync.Mutex
	failing map[string]bool
}

// Publish mails the recipients when a monitor goes from healthy to failing.
// Consecutive failures of the same monitor produce a single alert.
func (a *alertNotifier) Publish(_ context.Context, m model.Monitor) error {
	failing := m.Status == model.StatusOffline && m.Error

	a.mu.Lock()
	wasFailing := a.failing[m.ID]
	if failing {
		a.failing[m.ID] = true
	} else {
		delete(a.failing, m.ID)
	}
	a.mu.Unlock()

	if !failing || wasFailing {
		return nil
	}
	if !a.limiter.Allow() {
		a.logger.Warn("alert rate limit reached, skipping mail", zap.String("monitor_id", m.ID), zap.String("url", m.URL))
		return nil
	}

	textBody := fmt.Sprintf("%s is unreachable!", m.URL)
	htmlBody := fmt.Sprintf("<p><b>%s</b> (%s) is unreachable!</p><p>Reason: %s</p>",
		html.EscapeString(m.Name), html.EscapeString(m.URL), html.EscapeString(m.ErrorMessage))
	if err := a.sender.SendMail(a.recipients, alertSubject, htmlBody, textBody); err != nil {
		a.mu.Lock()
		delete(a.failing, m.ID)
		a.mu.Unlock()
		return fmt.Errorf("AlertNotifier.Publish: %w", err)
	}
	a.logger.Info("connection error alert sent", zap.String("monitor_id", m.ID), zap.String("url", m.URL))
	return nil
}

// Forget drops the failure state of a deleted or deactivated monitor.
func (a *alertNotifier) Forget(id string) {
	a.mu.Lock()
	delete(a.failing, id)
	a.mu.Unlock()
}

// NewAlertNotifier allows burst alerts at once and refills one every interval.
func NewAlertNotifier(sender mail.Sender, recipients []string, limit rate.Limit, burst int, logger *zap.Logger) Publisher {
	return &alertNotifier{
		sender:     sender,
		recipients: recipients,
		limiter:    rate.NewLimiter(limit, burst),
		logger:     logger,
		failing:    make(map[string]bool),
	}
}
