package status_consumer

import (
	apperrors "VCS_Uptime_Monitor/internal/monitor-service/errors"
	"VCS_Uptime_Monitor/internal/monitor-service/model"
	"VCS_Uptime_Monitor/internal/monitor-service/repository"
	"VCS_Uptime_Monitor/pkg/infra"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

var errMissingMonitorID = errors.New("missing monitor id")

// StatusConsumer stores the status events published by the monitor service.
type StatusConsumer interface {
	Start()
	Stop()
}

type statusConsumer struct {
	kafkaReader infra.KafkaReader
	monitorRepo repository.MonitorRepository
	logger      *zap.Logger
}

func (s *statusConsumer) commit(m kafka.Message) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.kafkaReader.CommitMessages(ctx, m); err != nil {
		err = fmt.Errorf("statusConsumer.Start: %w", err)
		s.logger.Log(zap.ErrorLevel, "failed to commit messages", zap.Error(err))
	}
}

func (s *statusConsumer) Start() {
	go func() {
		for {
			m, err := s.kafkaReader.FetchMessage(context.Background())
			if err != nil {
				if errors.Is(err, io.EOF) {
					return
				}
				err = fmt.Errorf("statusConsumer.Start: %w", err)
				s.logger.Log(zap.ErrorLevel, "failed to fetch message", zap.Error(err))
				continue
			}
			if m.Value == nil {
				s.commit(m)
				continue
			}
			var event model.StatusEvent
			if err = json.Unmarshal(m.Value, &event); err == nil && event.ID == "" {
				err = errMissingMonitorID
			}
			if err != nil {
				s.logger.Log(zap.ErrorLevel, "failed to unmarshal message",
					zap.Error(fmt.Errorf("statusConsumer.Start: %w", err)), zap.ByteString("key", m.Key))
				s.commit(m)
				continue
			}

			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			err = s.monitorRepo.UpdateStatus(ctx, event)
			cancel()
			if err != nil {
				if errors.Is(err, apperrors.ErrMonitorNotFound) {
					// deleted or deactivated after the event was published
					s.logger.Debug("status for unknown or inactive monitor, skipping", zap.String("monitor_id", event.ID))
					s.commit(m)
					continue
				}
				err = fmt.Errorf("statusConsumer.Start: %w", err)
				s.logger.Log(zap.ErrorLevel, "failed to update monitor status", zap.Error(err), zap.String("monitor_id", event.ID))
				continue
			}
			s.commit(m)
		}
	}()
}

func (s *statusConsumer) Stop() {
	s.kafkaReader.Close()
}

func NewStatusConsumer(reader infra.KafkaReader, monitorRepo repository.MonitorRepository, logger *zap.Logger) StatusConsumer {
	return &statusConsumer{
		kafkaReader: reader,
		monitorRepo: monitorRepo,
		logger:      logger,
	}
}
