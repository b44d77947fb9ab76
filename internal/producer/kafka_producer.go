package producer

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
)

// EmailProducer публикует события об отправленных письмах для внешних
// потребителей (CRM, аналитика). Опционален: без брокеров не создаётся.
type EmailProducer struct {
	writer *kafka.Writer
}

func NewEmailProducer(brokers []string, topic string) *EmailProducer {
	return &EmailProducer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.LeastBytes{},
			RequiredAcks: kafka.RequireAll,
		},
	}
}

type EmailEvent struct {
	To     string    `json:"to"`
	Body   string    `json:"body"`
	Source string    `json:"source"` // "draft_confirm" | "direct_send"
	SentAt time.Time `json:"sent_at"`
}

func (p *EmailProducer) Publish(ctx context.Context, key string, evt EmailEvent) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	value, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: value,
	})
}

func (p *EmailProducer) Close() error {
	return p.writer.Close()
}
