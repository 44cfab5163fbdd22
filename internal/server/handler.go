package server

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"jobapply-server/internal/common/config"
	"jobapply-server/internal/common/errors"
	"jobapply-server/internal/common/logger"
	"jobapply-server/internal/common/metrics"
	"jobapply-server/internal/intake"
	"jobapply-server/internal/layout"
	"jobapply-server/internal/models"
	"jobapply-server/internal/notify"
)

// notifyTimeout bounds the post-response email dispatch.
const notifyTimeout = 30 * time.Second

// DocumentRenderer renders a validated application into a document.
type DocumentRenderer interface {
	Render(app *models.Application, photo []byte) (*layout.Result, error)
}

// SubmissionNotifier sends the post-submission emails. Implementations
// swallow delivery errors; the submission already succeeded.
type SubmissionNotifier interface {
	NotifySubmission(ctx context.Context, app *models.Application, document []byte, uploads []notify.Attachment)
}

// Handler owns the submission endpoint.
type Handler struct {
	config   *config.Config
	renderer DocumentRenderer
	notifier SubmissionNotifier
	logger   logger.Logger
}

func NewHandler(cfg *config.Config, renderer DocumentRenderer, notifier SubmissionNotifier, log logger.Logger) *Handler {
	return &Handler{
		config:   cfg,
		renderer: renderer,
		notifier: notifier,
		logger:   log,
	}
}

// SubmitApplication accepts a job application as either a multipart form or
// a JSON body, validates it, renders the document, and queues the
// notification emails. Email delivery never affects the response.
func (h *Handler) SubmitApplication(w http.ResponseWriter, r *http.Request) {
	metrics.ApplicationsReceived.Inc()

	sub, stdErr := h.parseSubmission(r)
	if stdErr != nil {
		h.reject(w, stdErr)
		return
	}

	app, stdErr := intake.Validate(sub)
	if stdErr != nil {
		h.reject(w, stdErr)
		return
	}

	start := time.Now()
	result, err := h.renderer.Render(app, sub.Photo.Data)
	if err != nil {
		stdErr := errors.Normalize(err)
		metrics.RenderFailures.WithLabelValues(string(stdErr.Code)).Inc()
		h.logger.WithError(stdErr).Error("Document render failed", map[string]interface{}{
			"applicationId": app.ID,
		})
		writeError(w, stdErr)
		return
	}
	metrics.RenderDuration.Observe(time.Since(start).Seconds())
	metrics.RenderPages.Observe(float64(result.Pages))
	metrics.ApplicationsAccepted.Inc()

	h.logger.Info("Application accepted", map[string]interface{}{
		"applicationId": app.ID,
		"position":      app.Position,
		"pages":         result.Pages,
		"renderMs":      time.Since(start).Milliseconds(),
	})

	// Dispatch emails off the request path so SMTP latency or failure
	// cannot delay or fail the response.
	uploads := collectUploads(sub)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()
		h.notifier.NotifySubmission(ctx, app, result.Document, uploads)
	}()

	writeJSON(w, http.StatusOK, submitResponse{
		Success:       true,
		Message:       "Application submitted successfully",
		ApplicationID: app.ID,
		Pages:         result.Pages,
	})
}

func (h *Handler) parseSubmission(r *http.Request) (*intake.Submission, *errors.StandardError) {
	ct := r.Header.Get("Content-Type")
	switch {
	case strings.HasPrefix(ct, "multipart/form-data"):
		return intake.ParseMultipart(r, h.config.Intake)
	case strings.HasPrefix(ct, "application/json"):
		body, err := io.ReadAll(io.LimitReader(r.Body, h.config.Intake.MaxFormMemory))
		if err != nil {
			return nil, errors.NewMalformedRequestError(err)
		}
		return intake.ParseJSON(body, h.config.Intake)
	default:
		return nil, errors.NewUnsupportedMediaError("body", ct)
	}
}

func (h *Handler) reject(w http.ResponseWriter, stdErr *errors.StandardError) {
	metrics.ApplicationsRejected.WithLabelValues(string(stdErr.Code)).Inc()

	fields := map[string]interface{}{
		"errorCode": string(stdErr.Code),
		"details":   stdErr.Details,
	}
	// validation rejections are expected traffic; anything else is ours
	if errors.IsValidation(stdErr.Code) {
		h.logger.Warn("Submission rejected", fields)
	} else {
		h.logger.WithError(stdErr).Error("Submission rejected", fields)
	}
	writeError(w, stdErr)
}

// collectUploads gathers the applicant's original files for the admin email.
func collectUploads(sub *intake.Submission) []notify.Attachment {
	var uploads []notify.Attachment
	if sub.Photo != nil {
		uploads = append(uploads, notify.Attachment{
			Filename:    sub.Photo.Filename,
			ContentType: sub.Photo.ContentType,
			Content:     sub.Photo.Data,
		})
	}
	if sub.Resume != nil {
		uploads = append(uploads, notify.Attachment{
			Filename:    sub.Resume.Filename,
			ContentType: sub.Resume.ContentType,
			Content:     sub.Resume.Data,
		})
	}
	return uploads
}
