// Package speech wraps the external text-to-speech provider behind a narrow
// interface. Callers pass the rendered response text and get opaque audio
// bytes back; when the provider is unavailable the caller degrades to a
// text-only response.
package speech

import (
	"context"
	"errors"
)

// VoiceProfile — настройки синтеза. Выбор модели/голоса — значение
// конфигурации, а не ветвление в коде.
type VoiceProfile struct {
	VoiceID      string  `json:"voice_id"`
	ModelID      string  `json:"model_id"`
	Stability    float64 `json:"stability"`
	Similarity   float64 `json:"similarity"`
	Style        float64 `json:"style"`
	SpeakerBoost bool    `json:"speaker_boost"`
}

// DefaultProfile returns the voice Aimee ships with.
func DefaultProfile() VoiceProfile {
	return VoiceProfile{
		VoiceID:      "EXAVITQu4vr4xnSDxMaL",
		ModelID:      "eleven_multilingual_v2",
		Stability:    0.5,
		Similarity:   0.75,
		Style:        0.0,
		SpeakerBoost: true,
	}
}

// ErrDisabled is returned when no synthesis credentials are configured.
var ErrDisabled = errors.New("speech synthesis disabled")

// Synthesizer converts text to audio.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string, profile VoiceProfile) ([]byte, error)
}

// Disabled — заглушка, когда провайдер не настроен. Запрос при этом не
// падает: ответ просто уходит без аудио.
type Disabled struct{}

func (Disabled) Synthesize(ctx context.Context, text string, profile VoiceProfile) ([]byte, error) {
	return nil, ErrDisabled
}
