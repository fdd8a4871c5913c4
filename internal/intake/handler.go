package intake

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"

	"github.com/northstack/lead-intake/internal/leads"
	"github.com/northstack/lead-intake/internal/notify"
	"github.com/northstack/lead-intake/internal/observability/metrics"
	"github.com/northstack/lead-intake/pkg/logging"
)

const genericErrorMessage = "Internal error. Please try again later."

// Options carries the policy knobs for a Handler.
type Options struct {
	AllowedOrigins []string
	OwnerEmails    []string
	TTLDays        int
	Metrics        *metrics.IntakeMetrics
}

// Handler turns one inbound HTTP event into exactly one of: preflight
// response, validation rejection, persisted lead plus notifications, or
// generic internal error. It holds no mutable state and is safe for
// concurrent invocations.
type Handler struct {
	repo    leads.Repository
	email   notify.EmailSender
	origins *OriginPolicy
	owners  []string
	ttlDays int
	metrics *metrics.IntakeMetrics
	logger  *logging.Logger

	// overridable in tests
	now   func() time.Time
	newID func() string
}

// NewHandler creates an intake handler.
func NewHandler(repo leads.Repository, email notify.EmailSender, opts Options, logger *logging.Logger) *Handler {
	if repo == nil {
		panic("intake: repository cannot be nil")
	}
	if email == nil {
		panic("intake: email sender cannot be nil")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		repo:    repo,
		email:   email,
		origins: NewOriginPolicy(opts.AllowedOrigins),
		owners:  opts.OwnerEmails,
		ttlDays: opts.TTLDays,
		metrics: opts.Metrics,
		logger:  logger,
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

// Handle processes one API Gateway event. Failures are always converted
// to a structured response; the returned error is always nil so the
// runtime never retries or substitutes its own error shape.
func (h *Handler) Handle(ctx context.Context, evt events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	start := h.now()
	origin := headerValue(evt.Headers, "origin")

	if strings.EqualFold(evt.RequestContext.HTTP.Method, http.MethodOptions) {
		return events.APIGatewayV2HTTPResponse{
			StatusCode: http.StatusNoContent,
			Headers:    h.origins.Headers(origin),
		}, nil
	}

	body := parseBody(evt)

	sub := leads.Submission{
		Name:    strings.TrimSpace(body.Name),
		Email:   strings.TrimSpace(body.Email),
		Message: strings.TrimSpace(body.Message),
		UTM:     body.UTM,
	}
	if sub.UTM == nil {
		sub.UTM = map[string]any{}
	}

	if err := sub.Validate(); err != nil {
		var verr *leads.ValidationError
		if errors.As(err, &verr) {
			h.observe("rejected", start)
			return h.respond(http.StatusBadRequest, map[string]string{"message": verr.Reason}, origin), nil
		}
		// Validate only produces ValidationErrors; anything else is a defect.
		h.logger.Error("unexpected validation failure", "error", err)
		h.observe("error", start)
		return h.respond(http.StatusInternalServerError, map[string]string{"message": genericErrorMessage}, origin), nil
	}

	userAgent := body.UserAgent
	if userAgent == "" {
		userAgent = headerValue(evt.Headers, "user-agent")
	}
	referer := body.Referer
	if referer == "" {
		referer = headerValue(evt.Headers, "referer")
	}

	now := h.now().UTC()
	lead := &leads.Lead{
		ID:           h.newID(),
		Name:         sub.Name,
		Email:        sub.Email,
		Message:      sub.Message,
		CreatedAt:    now.Unix(),
		CreatedAtISO: now.Format(time.RFC3339Nano),
		ClientIP:     clientIP(evt),
		UserAgent:    userAgent,
		Referer:      referer,
		UTM:          sub.UTM,
	}
	if h.ttlDays > 0 {
		lead.ExpiresAt = now.Unix() + int64(h.ttlDays)*86400
	}

	// Persist, then notify. The sequence is not transactional: an email
	// failure after a successful write leaves the record in place and the
	// caller still sees the generic error.
	if err := h.repo.Insert(ctx, lead); err != nil {
		h.logger.Error("lead insert failed", "error", err, "id", lead.ID)
		h.observe("error", start)
		return h.respond(http.StatusInternalServerError, map[string]string{"message": genericErrorMessage}, origin), nil
	}

	if err := h.email.Send(ctx, notify.ConfirmationEmail(lead)); err != nil {
		h.logger.Error("visitor confirmation failed", "error", err, "id", lead.ID)
		h.observe("error", start)
		return h.respond(http.StatusInternalServerError, map[string]string{"message": genericErrorMessage}, origin), nil
	}

	if len(h.owners) > 0 {
		if err := h.email.Send(ctx, notify.OwnerAlertEmail(lead, h.owners)); err != nil {
			h.logger.Error("owner notification failed", "error", err, "id", lead.ID)
			h.observe("error", start)
			return h.respond(http.StatusInternalServerError, map[string]string{"message": genericErrorMessage}, origin), nil
		}
	}

	h.logger.Info("lead accepted", "id", lead.ID, "ip", lead.ClientIP)
	h.observe("accepted", start)
	return h.respond(http.StatusOK, map[string]string{"status": "ok", "id": lead.ID}, origin), nil
}

func (h *Handler) respond(status int, payload any, origin string) events.APIGatewayV2HTTPResponse {
	headers := h.origins.Headers(origin)
	headers["Content-Type"] = "application/json"

	body, err := json.Marshal(payload)
	if err != nil {
		// Payloads are fixed-shape maps; this cannot happen in practice.
		h.logger.Error("response marshal failed", "error", err)
		status = http.StatusInternalServerError
		body = []byte(`{"message":"` + genericErrorMessage + `"}`)
	}

	return events.APIGatewayV2HTTPResponse{
		StatusCode: status,
		Headers:    headers,
		Body:       string(body),
	}
}

func (h *Handler) observe(outcome string, start time.Time) {
	h.metrics.ObserveSubmission(outcome, h.now().Sub(start).Seconds())
}
