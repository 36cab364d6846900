// Package audit consumes record lifecycle events from the EventBus, writes one
// structured audit line per mutation and counts mutations in an OTel counter.
package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/ghuser/storefront/pkg/events"
	"github.com/ghuser/storefront/pkg/logger"
	itemEvents "github.com/ghuser/storefront/services/item/domain/events"
	userEvents "github.com/ghuser/storefront/services/user/domain/events"
)

const meterName = "github.com/ghuser/storefront/pkg/audit"

// Topics lists every lifecycle topic the audit trail follows.
var Topics = []string{
	itemEvents.TopicItemCreated, itemEvents.TopicItemUpdated, itemEvents.TopicItemDeleted,
	userEvents.TopicUserCreated, userEvents.TopicUserUpdated, userEvents.TopicUserDeleted,
}

// envelope holds the fields shared by every lifecycle event.
type envelope struct {
	EventID string `json:"event_id"`
	ItemID  string `json:"item_id"`
	UserID  string `json:"user_id"`
}

// Subscriber is the part of the EventBus audit listens on.
type Subscriber interface {
	Subscribe(ctx context.Context, topic string, handler func(context.Context, *message.Message) error) (<-chan error, error)
}

var _ Subscriber = (*events.EventBus)(nil)

// Register subscribes to all Topics. Subscriptions end when ctx is cancelled
// or the bus is closed.
func Register(ctx context.Context, bus Subscriber, log logger.Logger) error {
	counter, err := otel.Meter(meterName).Int64Counter(
		"storefront.record.mutations",
		metric.WithDescription("Record mutations observed on the event bus"),
		metric.WithUnit("{mutation}"),
	)
	if err != nil {
		return fmt.Errorf("audit: create counter: %w", err)
	}

	for _, topic := range Topics {
		h := handler(topic, counter, log)
		errCh, err := bus.Subscribe(ctx, topic, h)
		if err != nil {
			return fmt.Errorf("audit: %w", err)
		}
		go func() {
			for err := range errCh {
				log.ErrorContext(ctx, "audit: subscriber error", "topic", topic, "error", err)
			}
		}()
	}
	return nil
}

func handler(topic string, counter metric.Int64Counter, log logger.Logger) func(context.Context, *message.Message) error {
	resource, op, _ := strings.Cut(topic, ".")
	attrs := metric.WithAttributes(
		attribute.String("resource", resource),
		attribute.String("op", op),
	)
	return func(ctx context.Context, msg *message.Message) error {
		var env envelope
		if err := json.Unmarshal(msg.Payload, &env); err != nil {
			// A payload that cannot be parsed will never parse; log and drop it.
			log.WarnContext(ctx, "audit: undecodable event", "topic", topic, "message_id", msg.UUID, "error", err)
			return nil
		}
		recordID := env.ItemID
		if recordID == "" {
			recordID = env.UserID
		}

		counter.Add(ctx, 1, attrs)
		log.InfoContext(ctx, "audit",
			"resource", resource,
			"op", op,
			"record_id", recordID,
			"event_id", env.EventID,
		)
		return nil
	}
}
