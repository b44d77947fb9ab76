package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/aimeevoice/aimee-web-app/internal/drafts"
	"github.com/aimeevoice/aimee-web-app/internal/dto"
	"github.com/aimeevoice/aimee-web-app/internal/producer"
	"github.com/aimeevoice/aimee-web-app/internal/sender"
)

// EmailEvents публикует события о доставленных письмах. nil — события
// отключены (Kafka не сконфигурирована).
type EmailEvents interface {
	Publish(ctx context.Context, key string, evt producer.EmailEvent) error
}

type EmailHandler struct {
	sender   sender.MessageSender
	registry *drafts.Registry
	events   EmailEvents
	log      *zap.Logger
	now      func() time.Time
}

func NewEmailHandler(s sender.MessageSender, registry *drafts.Registry, events EmailEvents, log *zap.Logger) *EmailHandler {
	return &EmailHandler{
		sender:   s,
		registry: registry,
		events:   events,
		log:      log,
		now:      time.Now,
	}
}

// Send godoc
// @Summary Send an email directly
// @Description Delivery is simulated unless SMTP is configured
// @Tags email
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param email body dto.SendEmailRequest true "Recipient and body"
// @Success 200 {object} dto.EmailAck
// @Failure 400 {object} dto.ValidationErrorResponse "Invalid request"
// @Failure 401 {object} dto.UnauthorizedErrorResponse "Not authenticated"
// @Failure 500 {object} dto.InternalErrorResponse "Delivery failed"
// @Router /api/v1/email/send [post]
func (h *EmailHandler) Send(c *gin.Context) {
	var req dto.SendEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid send request", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.NewValidationError("recipient and body are required", []dto.FieldError{}))
		return
	}

	if err := h.sender.Send(c.Request.Context(), req.To, req.Body); err != nil {
		h.log.Error("email delivery failed", zap.String("to", req.To), zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.NewInternalError(""))
		return
	}

	h.publish(c.Request.Context(), req.To, req.Body, "direct_send")
	c.JSON(http.StatusOK, dto.EmailAck{Status: "sent", To: req.To, SentAt: h.now()})
}

// Confirm godoc
// @Summary Confirm and send a parked draft
// @Tags email
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param confirm body dto.ConfirmDraftRequest true "Draft id and confirmation code"
// @Success 200 {object} dto.EmailAck
// @Failure 400 {object} dto.ValidationErrorResponse "Bad code or expired draft"
// @Failure 401 {object} dto.UnauthorizedErrorResponse "Not authenticated"
// @Failure 404 {object} dto.NotFoundErrorResponse "Unknown draft"
// @Failure 500 {object} dto.InternalErrorResponse "Delivery failed"
// @Router /api/v1/email/confirm [post]
func (h *EmailHandler) Confirm(c *gin.Context) {
	var req dto.ConfirmDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid confirm request", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.NewValidationError("draft_id and code are required", []dto.FieldError{}))
		return
	}

	id, err := uuid.Parse(req.DraftID)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewValidationError("draft_id must be a uuid", []dto.FieldError{}))
		return
	}

	draft, err := h.registry.Confirm(id, req.Code)
	if err != nil {
		switch {
		case errors.Is(err, drafts.ErrNotFound):
			c.JSON(http.StatusNotFound, dto.NewNotFoundError("draft not found"))
		case errors.Is(err, drafts.ErrExpired):
			c.JSON(http.StatusBadRequest, dto.NewValidationError("draft expired, ask me to draft it again", []dto.FieldError{}))
		default:
			c.JSON(http.StatusBadRequest, dto.NewValidationError("wrong confirmation code", []dto.FieldError{}))
		}
		return
	}

	if err := h.sender.Send(c.Request.Context(), draft.Recipient, draft.Body); err != nil {
		h.log.Error("draft delivery failed", zap.String("to", draft.Recipient), zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.NewInternalError(""))
		return
	}

	h.publish(c.Request.Context(), draft.Recipient, draft.Body, "draft_confirm")
	c.JSON(http.StatusOK, dto.EmailAck{Status: "sent", To: draft.Recipient, SentAt: h.now()})
}

func (h *EmailHandler) publish(ctx context.Context, to, body, source string) {
	if h.events == nil {
		return
	}
	evt := producer.EmailEvent{To: to, Body: body, Source: source, SentAt: h.now()}
	if err := h.events.Publish(ctx, to, evt); err != nil {
		// Событие — best effort: доставка письма уже состоялась.
		h.log.Warn("email event publish failed", zap.Error(err))
	}
}
