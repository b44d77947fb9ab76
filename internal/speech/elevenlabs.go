package speech

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const defaultTimeout = 15 * time.Second

// ElevenLabs вызывает HTTP API синтеза речи. Первичная попытка идёт на модель
// из профиля; при ошибке делается ровно одна повторная попытка на упрощённой
// fallback-модели, после чего клиент сдаётся и возвращает ошибку.
type ElevenLabs struct {
	baseURL       string
	apiKey        string
	fallbackModel string
	client        *http.Client
	log           *zap.Logger
}

func NewElevenLabs(baseURL, apiKey, fallbackModel string, log *zap.Logger) *ElevenLabs {
	return &ElevenLabs{
		baseURL:       baseURL,
		apiKey:        apiKey,
		fallbackModel: fallbackModel,
		client:        &http.Client{Timeout: defaultTimeout},
		log:           log,
	}
}

type voiceSettings struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
	Style           float64 `json:"style"`
	UseSpeakerBoost bool    `json:"use_speaker_boost"`
}

type synthesisRequest struct {
	Text          string        `json:"text"`
	ModelID       string        `json:"model_id"`
	VoiceSettings voiceSettings `json:"voice_settings"`
}

func (e *ElevenLabs) Synthesize(ctx context.Context, text string, profile VoiceProfile) ([]byte, error) {
	audio, err := e.request(ctx, text, profile, profile.ModelID)
	if err == nil {
		return audio, nil
	}

	if e.fallbackModel == "" || e.fallbackModel == profile.ModelID {
		return nil, err
	}

	e.log.Warn("synthesis failed, retrying on fallback model",
		zap.String("model", profile.ModelID),
		zap.String("fallback", e.fallbackModel),
		zap.Error(err))

	return e.request(ctx, text, profile, e.fallbackModel)
}

func (e *ElevenLabs) request(ctx context.Context, text string, profile VoiceProfile, modelID string) ([]byte, error) {
	body, err := json.Marshal(synthesisRequest{
		Text:    text,
		ModelID: modelID,
		VoiceSettings: voiceSettings{
			Stability:       profile.Stability,
			SimilarityBoost: profile.Similarity,
			Style:           profile.Style,
			UseSpeakerBoost: profile.SpeakerBoost,
		},
	})
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/v1/text-to-speech/%s", e.baseURL, profile.VoiceID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "audio/mpeg")
	req.Header.Set("xi-api-key", e.apiKey)

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("synthesis request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("synthesis provider returned %d: %s", resp.StatusCode, string(snippet))
	}

	return io.ReadAll(resp.Body)
}
