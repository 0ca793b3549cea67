// Package bus wraps github.com/segmentio/kafka-go into the three
// topics the worker reads and writes: inbound NFT intents and
// outbound Solana events share TopicNftEvents (mirroring the
// "hub-nfts" topic of the system this worker reimplements), signed
// transaction results arrive on TopicTreasuryEvents ("hub-treasuries").
package bus

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"
)

const (
	TopicNftEvents      = "hub-nfts"
	TopicTreasuryEvents = "hub-treasuries"
)

// Envelope is the wire format every message on every topic shares: an
// event-kind discriminant alongside its JSON payload, keyed on the
// correlation id so per-key ordering is best-effort at the partition
// level.
type Envelope struct {
	Kind    string          `json:"kind"`
	Payload json.RawMessage `json:"payload"`
}

// Producer publishes JSON-encoded envelopes, one kafka.Writer per
// topic it has been asked to write to.
type Producer struct {
	writers map[string]*kafka.Writer
}

func NewProducer(brokers []string, topics ...string) *Producer {
	writers := make(map[string]*kafka.Writer, len(topics))
	for _, topic := range topics {
		writers[topic] = &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
			Async:        false,
		}
	}
	return &Producer{writers: writers}
}

// PublishTo marshals kind/payload into an Envelope and writes it to
// topic, keyed for partition-level ordering on key.
func (p *Producer) PublishTo(ctx context.Context, topic, key, kind string, payload interface{}) error {
	writer, ok := p.writers[topic]
	if !ok {
		return fmt.Errorf("bus: no writer configured for topic %q", topic)
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}
	envelope, err := json.Marshal(Envelope{Kind: kind, Payload: body})
	if err != nil {
		return fmt.Errorf("marshal envelope: %w", err)
	}

	return writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: envelope,
	})
}

// Publish writes to TopicNftEvents, satisfying events.Publisher for
// outbound SigningRequested/Submitted/Failed events — the kind comes
// from the event's own EventKind() method (see kindOf), not reflection.
func (p *Producer) Publish(ctx context.Context, key string, event interface{}) error {
	kind, err := kindOf(event)
	if err != nil {
		return err
	}
	return p.PublishTo(ctx, TopicNftEvents, key, kind, event)
}

func (p *Producer) Close() error {
	var firstErr error
	for _, w := range p.writers {
		if err := w.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func kindOf(event interface{}) (string, error) {
	type named interface{ EventKind() string }
	if n, ok := event.(named); ok {
		return n.EventKind(), nil
	}
	return "", fmt.Errorf("bus: event %T does not implement EventKind()", event)
}

// Consumer reads one topic via a consumer-group kafka.Reader,
// decoding each message's Envelope for the caller.
type Consumer struct {
	reader *kafka.Reader
}

func NewConsumer(brokers []string, groupID, topic string) *Consumer {
	return &Consumer{reader: kafka.NewReader(kafka.ReaderConfig{
		Brokers: brokers,
		GroupID: groupID,
		Topic:   topic,
		MinBytes: 1,
		MaxBytes: 10e6,
	})}
}

// Handler processes one decoded message. Returning an error does not
// stop the consume loop — ReadMessage already committed the offset,
// matching the at-least-once, best-effort-ordering delivery model.
type Handler func(ctx context.Context, key string, envelope Envelope) error

// Run reads messages until ctx is cancelled, dispatching each to
// handle. One goroutine per message keeps per-key ordering best-effort
// only, matching the upstream system's own behavior.
func (c *Consumer) Run(ctx context.Context, handle Handler) error {
	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("read message: %w", err)
		}

		var envelope Envelope
		if err := json.Unmarshal(msg.Value, &envelope); err != nil {
			continue
		}

		go func(key string, envelope Envelope) {
			_ = handle(ctx, key, envelope)
		}(string(msg.Key), envelope)
	}
}

func (c *Consumer) Close() error {
	return c.reader.Close()
}
