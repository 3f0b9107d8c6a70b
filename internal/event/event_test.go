package event

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

const testTraceparent = "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01"

func TestNewMarshalsPayload(t *testing.T) {
	evt, err := New("schedule", "abc", TypeScheduleCreated, map[string]string{"id": "abc"})
	require.NoError(t, err)

	assert.Equal(t, "schedule", evt.AggregateType)
	assert.Equal(t, TypeScheduleCreated, evt.EventType)

	var got map[string]string
	require.NoError(t, json.Unmarshal(evt.Payload, &got))
	assert.Equal(t, "abc", got["id"])
}

func TestNewRejectsUnmarshalablePayload(t *testing.T) {
	_, err := New("schedule", "abc", TypeScheduleCreated, make(chan int))
	assert.Error(t, err)
}

func TestSplitBrokers(t *testing.T) {
	assert.Nil(t, SplitBrokers(""))
	assert.Nil(t, SplitBrokers(" , "))
	assert.Equal(t, []string{"a:9092", "b:9092"}, SplitBrokers("a:9092, ,b:9092 "))
}

func TestHeaderCarrierOverwrites(t *testing.T) {
	c := &headerCarrier{}
	c.Set("k", "1")
	c.Set("k", "2")
	c.Set("j", "3")

	assert.Equal(t, "2", c.Get("k"))
	assert.Equal(t, []string{"k", "j"}, c.Keys())
	assert.Empty(t, c.Get("missing"))
}

func TestBuildMessageCarriesMetadataAndTrace(t *testing.T) {
	prev := otel.GetTextMapPropagator()
	otel.SetTextMapPropagator(propagation.TraceContext{})
	t.Cleanup(func() { otel.SetTextMapPropagator(prev) })

	r := Record{
		ID:          7,
		EventID:     "evt-1",
		AggregateID: "sched-1",
		EventType:   TypeScheduleCreated,
		Payload:     []byte(`{"id":"sched-1"}`),
		Traceparent: testTraceparent,
	}

	msg := buildMessage(context.Background(), r)

	assert.Equal(t, TypeScheduleCreated, msg.Topic)
	assert.Equal(t, []byte("sched-1"), msg.Key)
	assert.Equal(t, "evt-1", HeaderValue(msg.Headers, "event_id"))
	assert.Equal(t, TypeScheduleCreated, HeaderValue(msg.Headers, "event_type"))
	assert.Equal(t, testTraceparent, HeaderValue(msg.Headers, "traceparent"))

	restored := ExtractTraceContext(context.Background(), kafka.Message{Headers: msg.Headers})
	carrier := propagation.MapCarrier{}
	otel.GetTextMapPropagator().Inject(restored, carrier)
	assert.Equal(t, testTraceparent, carrier.Get("traceparent"))
}

func TestPublisherDisabledWithoutBrokers(t *testing.T) {
	p := NewPublisher(nil, NewRepository(), discardLogger(), PublisherConfig{})
	assert.False(t, p.Enabled())

	// Returns immediately instead of blocking.
	p.Run(context.Background())
}
