package dto

import (
	"time"

	"github.com/aimeevoice/aimee-web-app/internal/models"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// VoiceQueryRequest — одна голосовая реплика. Speak=true просит синтезировать
// аудио ответа; Voice переопределяет голос по умолчанию.
type VoiceQueryRequest struct {
	Text  string `json:"text" binding:"required"`
	Speak bool   `json:"speak"`
	Voice string `json:"voice"`
}

// DraftInfo возвращается вместе с ответом email-интента: черновик припаркован
// и ждёт подтверждения кодом.
type DraftInfo struct {
	ID        string `json:"id"`
	Code      string `json:"code"`
	Recipient string `json:"recipient"`
	Body      string `json:"body"`
}

type VoiceQueryResponse struct {
	Intent     string     `json:"intent"`
	Response   string     `json:"response"`
	Draft      *DraftInfo `json:"draft,omitempty"`
	Audio      string     `json:"audio,omitempty"` // base64 audio/mpeg
	AudioError string     `json:"audio_error,omitempty"`
}

type SendEmailRequest struct {
	To   string `json:"to" binding:"required,email"`
	Body string `json:"body" binding:"required"`
}

type ConfirmDraftRequest struct {
	DraftID string `json:"draft_id" binding:"required,uuid"`
	Code    string `json:"code" binding:"required"`
}

type EmailAck struct {
	Status string    `json:"status"`
	To     string    `json:"to"`
	SentAt time.Time `json:"sent_at"`
}

type WineListResponse struct {
	Wines []models.Wine `json:"wines"`
	Total int           `json:"total"`
}

type CustomerListResponse struct {
	Customers []models.Customer `json:"customers"`
	Total     int               `json:"total"`
}

type OrderSummaryResponse struct {
	Orders       []models.Order `json:"orders"`
	RevenueCents int64          `json:"revenue_cents"`
	Revenue      string         `json:"revenue"`
	Bottles      int            `json:"bottles"`
}
