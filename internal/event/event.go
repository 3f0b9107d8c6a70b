// Package event records domain events in a transactional outbox and relays them to Kafka.
package event

import (
	"encoding/json"
	"fmt"
)

const (
	TypeScheduleCreated  = "schedule.created"
	TypeScheduleUpdated  = "schedule.updated"
	TypeScheduleDeleted  = "schedule.deleted"
	TypeUsageIncremented = "usage.incremented"
)

// Event is the envelope written to the outbox table.
// The Kafka topic equals EventType.
type Event struct {
	AggregateType string
	AggregateID   string
	EventType     string
	Payload       []byte
}

// New builds an Event with a JSON payload.
func New(aggregateType, aggregateID, eventType string, payload any) (Event, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return Event{}, fmt.Errorf("marshal %s payload: %w", eventType, err)
	}
	return Event{
		AggregateType: aggregateType,
		AggregateID:   aggregateID,
		EventType:     eventType,
		Payload:       b,
	}, nil
}
