// Package notify sends the post-submission emails: the admin notification
// carrying the rendered document and uploads, and the applicant
// confirmation. Delivery is best-effort and never affects the submission
// outcome.
package notify

import (
	"context"
	"time"

	"jobapply-server/internal/common/config"
	"jobapply-server/internal/common/errors"
	"jobapply-server/internal/common/logger"
	"jobapply-server/internal/common/metrics"
	"jobapply-server/internal/models"
)

// Recipient roles, used for logging and metric labels.
const (
	RoleAdmin     = "admin"
	RoleApplicant = "applicant"
)

// Attachment is one file attached to an outgoing message.
type Attachment struct {
	Filename    string
	ContentType string
	Content     []byte
}

// Message is a fully-composed outgoing email.
type Message struct {
	From        string
	To          string
	ReplyTo     string
	Subject     string
	HTMLBody    string
	Attachments []Attachment
}

// Receipt reports a completed delivery.
type Receipt struct {
	MessageID string
	Provider  string
	SentAt    time.Time
}

// Dispatcher delivers a composed message through one provider.
type Dispatcher interface {
	Send(ctx context.Context, msg *Message) (*Receipt, error)
}

// Notifier composes and dispatches the two submission emails.
type Notifier struct {
	dispatcher Dispatcher
	config     config.NotificationConfig
	company    string
	logger     logger.Logger
}

func NewNotifier(dispatcher Dispatcher, cfg config.NotificationConfig, company string, log logger.Logger) *Notifier {
	return &Notifier{
		dispatcher: dispatcher,
		config:     cfg,
		company:    company,
		logger:     log,
	}
}

// NotifySubmission sends the admin notification and the applicant
// confirmation. Each failure is logged and counted but never returned:
// the submission already succeeded by the time this runs.
func (n *Notifier) NotifySubmission(ctx context.Context, app *models.Application, document []byte, uploads []Attachment) {
	admin, err := n.buildAdminMessage(app, document, uploads)
	if err != nil {
		n.recordFailure(RoleAdmin, app.ID, err)
	} else {
		n.send(ctx, RoleAdmin, app.ID, admin)
	}

	confirmation, err := n.buildApplicantMessage(app)
	if err != nil {
		n.recordFailure(RoleApplicant, app.ID, err)
		return
	}
	n.send(ctx, RoleApplicant, app.ID, confirmation)
}

func (n *Notifier) send(ctx context.Context, role, appID string, msg *Message) {
	receipt, err := n.dispatcher.Send(ctx, msg)
	if err != nil {
		n.recordFailure(role, appID, err)
		return
	}

	metrics.EmailsSent.WithLabelValues(receipt.Provider, role).Inc()
	n.logger.Info("Notification email sent", map[string]interface{}{
		"role":          role,
		"applicationId": appID,
		"to":            msg.To,
		"messageId":     receipt.MessageID,
		"provider":      receipt.Provider,
	})
}

func (n *Notifier) recordFailure(role, appID string, err error) {
	metrics.EmailsFailed.WithLabelValues(n.config.Provider, role).Inc()
	n.logger.WithError(errors.NewEmailSendFailedError(role, err)).Error(
		"Notification email failed", map[string]interface{}{
			"role":          role,
			"applicationId": appID,
		})
}

func (n *Notifier) buildAdminMessage(app *models.Application, document []byte, uploads []Attachment) (*Message, error) {
	body, err := renderAdminBody(app, n.company)
	if err != nil {
		return nil, err
	}

	attachments := make([]Attachment, 0, len(uploads)+1)
	attachments = append(attachments, Attachment{
		Filename:    app.ID + ".pdf",
		ContentType: "application/pdf",
		Content:     document,
	})
	attachments = append(attachments, uploads...)

	return &Message{
		From:        n.config.FromEmail,
		To:          n.config.AdminEmail,
		ReplyTo:     app.PersonalInfo.Email,
		Subject:     adminSubject(app),
		HTMLBody:    body,
		Attachments: attachments,
	}, nil
}

func (n *Notifier) buildApplicantMessage(app *models.Application) (*Message, error) {
	body, err := renderApplicantBody(app, n.company)
	if err != nil {
		return nil, err
	}

	return &Message{
		From:     n.config.FromEmail,
		To:       app.PersonalInfo.Email,
		Subject:  applicantSubject(app, n.company),
		HTMLBody: body,
	}, nil
}
