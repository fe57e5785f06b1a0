package mq

import (
	"context"
	"encoding/json"
	"log"

	"eventcraft/models"
	"eventcraft/rdx"
)

const channel = "entity-events"

// Emit publishes an entity lifecycle event to Redis. Failures are logged,
// never surfaced to the request path.
func Emit(ctx context.Context, eventName string, content models.Index) {
	data, err := json.Marshal(content)
	if err != nil {
		log.Printf("[Emit] Failed to marshal event content: %v", err)
		return
	}

	if err := rdx.Conn.Publish(context.Background(), channel, data).Err(); err != nil {
		log.Printf("[Emit] Failed to publish %s: %v", eventName, err)
	}
}

// StartEventWorker consumes lifecycle events and records an activity trail
// in the server log. Runs for the life of the process.
func StartEventWorker() {
	ctx := context.Background()
	sub := rdx.Conn.Subscribe(ctx, channel)
	ch := sub.Channel()

	log.Println("[EventWorker] Listening for entity events...")

	for msg := range ch {
		var event models.Index
		if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
			log.Printf("[EventWorker] Failed to parse event: %v", err)
			continue
		}
		log.Printf("[EventWorker] %s %s %s", event.Method, event.EntityType, event.EntityId)
	}
}
