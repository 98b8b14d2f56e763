package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/twmb/franz-go/pkg/kgo"

	"lendflow/internal/domain"
)

// Kafka publishes applicant notifications to the notifications topic; the
// downstream notification service consumes and delivers them per channel.
// Messages are keyed by recipient so retries for one applicant stay ordered.
type Kafka struct {
	producer *kgo.Client
	topic    string
}

func NewKafka(producer *kgo.Client, topic string) *Kafka {
	return &Kafka{producer: producer, topic: topic}
}

type message struct {
	RecipientEmail string `json:"recipient_email"`
	Category       string `json:"category"`
	Subject        string `json:"subject"`
	Body           string `json:"body"`
}

func (k *Kafka) SendNotification(ctx context.Context, req domain.NotificationRequest) error {
	payload, err := json.Marshal(message{
		RecipientEmail: req.RecipientEmail,
		Category:       string(req.Category),
		Subject:        req.Subject,
		Body:           req.Body,
	})
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}

	record := &kgo.Record{
		Topic: k.topic,
		Key:   []byte(req.RecipientEmail),
		Value: payload,
	}
	if err := k.producer.ProduceSync(ctx, record).FirstErr(); err != nil {
		return fmt.Errorf("produce notification: %w", err)
	}
	return nil
}
