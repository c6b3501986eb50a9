package events

import (
	"VCS_Status_Monitor/internal/status-service/model"
	"VCS_Status_Monitor/pkg/infra"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
)

// StatusChange is emitted for every service whose status differs from the previous snapshot.
type StatusChange struct {
	Service        string    `json:"service"`
	Category       string    `json:"category"`
	PreviousStatus string    `json:"previous_status,omitempty"`
	Status         string    `json:"status"`
	LatencyMs      *int64    `json:"latency_ms"`
	Error          string    `json:"error,omitempty"`
	CheckedAt      time.Time `json:"checked_at"`
	SnapshotID     string    `json:"snapshot_id"`
}

type Publisher interface {
	PublishChanges(ctx context.Context, prev, next *model.StatusSnapshot) error
	Close() error
}

// Changes lists the transitions between two snapshots. With no previous
// snapshot every service is reported with an empty previous status.
func Changes(prev, next *model.StatusSnapshot) []StatusChange {
	previous := make(map[string]string)
	if prev != nil {
		for _, svc := range prev.Services {
			previous[svc.Descriptor.Name] = svc.Result.Status
		}
	}
	var changes []StatusChange
	for _, svc := range next.Services {
		old, seen := previous[svc.Descriptor.Name]
		if seen && old == svc.Result.Status {
			continue
		}
		change := StatusChange{
			Service:        svc.Descriptor.Name,
			Category:       svc.Descriptor.Category,
			PreviousStatus: old,
			Status:         svc.Result.Status,
			Error:          svc.Result.Error,
			CheckedAt:      svc.Result.CheckedAt,
			SnapshotID:     next.ID,
		}
		if ms, ok := svc.Result.LatencyMillis(); ok {
			change.LatencyMs = &ms
		}
		changes = append(changes, change)
	}
	return changes
}

type kafkaPublisher struct {
	writer infra.KafkaWriter
}

func (k *kafkaPublisher) PublishChanges(ctx context.Context, prev, next *model.StatusSnapshot) error {
	changes := Changes(prev, next)
	if len(changes) == 0 {
		return nil
	}
	messages := make([]kafka.Message, 0, len(changes))
	for _, change := range changes {
		b, err := json.Marshal(change)
		if err != nil {
			return fmt.Errorf("kafkaPublisher.PublishChanges: %w", err)
		}
		messages = append(messages, kafka.Message{
			Key:   []byte(change.Service),
			Value: b,
		})
	}
	if err := k.writer.WriteMessages(ctx, messages...); err != nil {
		return fmt.Errorf("kafkaPublisher.PublishChanges: %w", err)
	}
	return nil
}

func (k *kafkaPublisher) Close() error {
	return k.writer.Close()
}

func NewKafkaPublisher(writer infra.KafkaWriter) Publisher {
	return &kafkaPublisher{writer: writer}
}

type nopPublisher struct{}

func (nopPublisher) PublishChanges(context.Context, *model.StatusSnapshot, *model.StatusSnapshot) error {
	return nil
}

func (nopPublisher) Close() error {
	return nil
}

// NewNopPublisher is used when no broker is configured.
func NewNopPublisher() Publisher {
	return nopPublisher{}
}
