package handlers

import (
	"encoding/base64"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/aimeevoice/aimee-web-app/internal/drafts"
	"github.com/aimeevoice/aimee-web-app/internal/dto"
	"github.com/aimeevoice/aimee-web-app/internal/interpreter"
	"github.com/aimeevoice/aimee-web-app/internal/speech"
)

type VoiceHandler struct {
	interp   *interpreter.Interpreter
	synth    speech.Synthesizer
	profile  speech.VoiceProfile
	registry *drafts.Registry
	log      *zap.Logger
}

func NewVoiceHandler(interp *interpreter.Interpreter, synth speech.Synthesizer, profile speech.VoiceProfile, registry *drafts.Registry, log *zap.Logger) *VoiceHandler {
	return &VoiceHandler{
		interp:   interp,
		synth:    synth,
		profile:  profile,
		registry: registry,
		log:      log,
	}
}

// Query godoc
// @Summary Interpret a voice query
// @Description Classifies the utterance, renders a response and optionally synthesized audio
// @Tags voice
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param query body dto.VoiceQueryRequest true "Utterance"
// @Success 200 {object} dto.VoiceQueryResponse
// @Failure 400 {object} dto.ValidationErrorResponse "Missing text"
// @Failure 401 {object} dto.UnauthorizedErrorResponse "Not authenticated"
// @Router /api/v1/voice/query [post]
func (h *VoiceHandler) Query(c *gin.Context) {
	var req dto.VoiceQueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid voice query", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.NewValidationError("text is required", []dto.FieldError{
			{Field: "text", Message: "must be a non-empty string", Tag: "required"},
		}))
		return
	}

	res := h.interp.Interpret(req.Text)

	out := dto.VoiceQueryResponse{
		Intent:   string(res.Intent),
		Response: res.Text,
	}

	if res.Draft != nil {
		pending, err := h.registry.Add(*res.Draft)
		if err != nil {
			// Черновик не припарковался — отвечаем без него, запрос не падает.
			h.log.Error("park draft failed", zap.Error(err))
		} else {
			out.Draft = &dto.DraftInfo{
				ID:        pending.ID.String(),
				Code:      pending.Code,
				Recipient: pending.Draft.Recipient,
				Body:      pending.Draft.Body,
			}
		}
	}

	if req.Speak {
		profile := h.profile
		if req.Voice != "" {
			profile.VoiceID = req.Voice
		}
		audio, err := h.synth.Synthesize(c.Request.Context(), res.Text, profile)
		switch {
		case err == nil:
			out.Audio = base64.StdEncoding.EncodeToString(audio)
		case errors.Is(err, speech.ErrDisabled):
			// Провайдер не настроен — просто без аудио.
		default:
			h.log.Warn("speech synthesis failed", zap.Error(err))
			out.AudioError = "speech synthesis unavailable"
		}
	}

	c.JSON(http.StatusOK, out)
}
