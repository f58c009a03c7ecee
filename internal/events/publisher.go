package events

import (
	"context"       // Publish deadline
	"encoding/json" // Event payload encoding
	"strings"       // Broker list parsing
	"time"          // Event timestamps

	"github.com/go-faster/errors"   // Error wrapping
	"github.com/segmentio/kafka-go" // Kafka producer
	"github.com/sirupsen/logrus"    // Logging library
)

// Topics
const (
	CartTopic  = "cart_events"  // Cart modifications
	OrderTopic = "order_events" // Submitted orders
)

// Event types
const (
	TypeItemAdded      = "cart.item_added"
	TypeItemRemoved    = "cart.item_removed"
	TypeOrderSubmitted = "order.submitted"
)

// Event is the JSON payload written to Kafka. Total is the decimal string of
// the cart or order total after the change.
type Event struct {
	Type     string    `json:"type"`               // Event type
	Username string    `json:"username"`           // Owner of the cart or order
	ItemID   uint      `json:"itemId,omitempty"`   // Item changed, cart events only
	Quantity int       `json:"quantity,omitempty"` // Requested quantity, cart events only
	OrderID  uint      `json:"orderId,omitempty"`  // New order id, order events only
	Total    string    `json:"total"`              // Total after the change
	At       time.Time `json:"at"`                 // When the change happened
}

// Publisher sends events keyed by username
type Publisher interface {
	Publish(ctx context.Context, topic string, event Event) error
	Close() error
}

// KafkaPublisher writes events with a kafka-go Writer
type KafkaPublisher struct {
	writer *kafka.Writer // Shared writer, topic set per message
}

// NewKafkaPublisher builds a publisher for a comma separated broker list
func NewKafkaPublisher(brokers string) *KafkaPublisher {
	return &KafkaPublisher{writer: &kafka.Writer{
		Addr:                   kafka.TCP(splitBrokers(brokers)...), // Bootstrap brokers
		Balancer:               &kafka.Hash{},                       // Same user, same partition
		RequiredAcks:           kafka.RequireOne,                    // Leader ack is enough
		AllowAutoTopicCreation: true,                                // Create topics on first write
		WriteTimeout:           5 * time.Second,                     // Bound a stuck broker
	}}
}

// Publish implements Publisher
func (p *KafkaPublisher) Publish(ctx context.Context, topic string, event Event) error {
	msg, err := newMessage(topic, event) // Encode the payload
	if err != nil {
		return err
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return errors.Wrapf(err, "kafka write to %s", topic)
	}
	return nil
}

// Close flushes pending writes
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NopPublisher drops every event; used when no brokers are configured
type NopPublisher struct{}

// Publish implements Publisher
func (NopPublisher) Publish(context.Context, string, Event) error { return nil }

// Close implements Publisher
func (NopPublisher) Close() error { return nil }

// PublishAsync sends event in the background with its own deadline so the
// caller's response is never held up by the broker. Failures are only logged.
func PublishAsync(p Publisher, topic string, event Event) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := p.Publish(ctx, topic, event); err != nil {
			logrus.WithFields(logrus.Fields{
				"topic": topic,       // Target topic
				"type":  event.Type,  // Event type
				"error": err.Error(), // Reason
			}).Error("Kafka publish error")
		}
	}()
}

func newMessage(topic string, event Event) (kafka.Message, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return kafka.Message{}, errors.Wrap(err, "encode event")
	}
	return kafka.Message{
		Topic: topic,                  // Per message topic
		Key:   []byte(event.Username), // Partition by user
		Value: data,
		Time:  event.At,
	}, nil
}

func splitBrokers(brokers string) []string {
	var out []string
	for _, b := range strings.Split(brokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			out = append(out, b)
		}
	}
	return out
}
