package services

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/nailstudio-booking/internal/logger"
	"github.com/sbilibin2017/nailstudio-booking/internal/models"
	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=events.go -destination=events_mock.go -package=services

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// newEvent stamps an event for the row identified by entityID.
func newEvent(eventType string, entityID int64, data any) models.Event {
	return models.Event{
		EventID:   uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now().Unix(),
		EntityID:  entityID,
		Data:      data,
	}
}

// publishEvent publishes evt to Kafka. Failures are logged and never returned:
// the row is already committed.
func publishEvent(ctx context.Context, w KafkaWriter, evt models.Event) {
	log := logger.FromContext(ctx)
	if w == nil {
		log.Debugw("Kafka writer not configured, skipping publishing", "event_id", evt.EventID, "type", evt.Type)
		return
	}

	data, err := json.Marshal(evt)
	if err != nil {
		log.Errorw("Failed to marshal event for Kafka", "event_id", evt.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(evt.EntityID, 10)),
		Value: data,
		Headers: []kafka.Header{
			{Key: "type", Value: []byte(evt.Type)},
		},
	}

	if err := w.WriteMessages(ctx, msg); err != nil {
		log.Errorw("Failed to publish event to Kafka", "event_id", evt.EventID, "type", evt.Type, "error", err)
	} else {
		log.Infow("Event published to Kafka", "event_id", evt.EventID, "type", evt.Type, "entity_id", evt.EntityID)
	}
}
