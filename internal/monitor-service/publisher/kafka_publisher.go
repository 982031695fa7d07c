package publisher

import (
	"VCS_Uptime_Monitor/internal/monitor-service/model"
	"VCS_Uptime_Monitor/pkg/infra"
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"
)

type kafkaPublisher struct {
	writer infra.KafkaWriter
}

func (k *kafkaPublisher) Publish(ctx context.Context, m model.Monitor) error {
	b, err := json.Marshal(model.NewStatusEvent(m))
	if err != nil {
		return fmt.Errorf("KafkaPublisher.Publish: %w", err)
	}
	err = k.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(m.ID),
		Value: b,
	})
	if err != nil {
		return fmt.Errorf("KafkaPublisher.Publish: %w", err)
	}
	return nil
}

func NewKafkaPublisher(writer infra.KafkaWriter) Publisher {
	return &kafkaPublisher{
		writer: writer,
	}
}
