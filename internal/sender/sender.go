// Package sender delivers confirmed email drafts. The default implementation
// simulates delivery; real SMTP delivery is opt-in via configuration.
package sender

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type MessageSender interface {
	Send(ctx context.Context, to, body string) error
}

// SimulatedSender имитирует отправку: фиксированная задержка, всегда успех.
// Используется по умолчанию — реальная доставка почты вне контура сервиса.
type SimulatedSender struct {
	delay time.Duration
	log   *zap.Logger
}

func NewSimulatedSender(delay time.Duration, log *zap.Logger) *SimulatedSender {
	return &SimulatedSender{delay: delay, log: log}
}

func (s *SimulatedSender) Send(ctx context.Context, to, body string) error {
	select {
	case <-time.After(s.delay):
	case <-ctx.Done():
		return ctx.Err()
	}
	s.log.Info("simulated email delivery",
		zap.String("to", to),
		zap.Int("body_len", len(body)))
	return nil
}
