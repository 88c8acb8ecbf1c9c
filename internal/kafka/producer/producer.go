package producer

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/segmentio/kafka-go"

	"photoGallery/internal/config"
)

const (
	EventPhotosIngested = "photos_ingested"
	EventAlbumDeleted   = "album_deleted"
)

// Event is the notification published after a mutation so downstream
// consumers (sync jobs, backup tooling) can react. Publishing is advisory:
// a failed send never fails the request that triggered it.
type Event struct {
	Type      string `json:"type"`
	AlbumID   string `json:"album_id"`
	AlbumName string `json:"album_name,omitempty"`
	Photos    int    `json:"photos,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ProducerIface
type ProducerIface interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

type Producer struct {
	writer *kafka.Writer
	log    *slog.Logger
}

func NewProducer(kafkaCfg *config.Kafka, log *slog.Logger) (*Producer, error) {
	writer := &kafka.Writer{
		Addr:     kafka.TCP(kafkaCfg.Brokers...),
		Topic:    kafkaCfg.Topic,
		Balancer: &kafka.LeastBytes{},
	}

	return &Producer{
		writer: writer,
		log:    log,
	}, nil
}

func (p *Producer) Publish(ctx context.Context, event Event) error {
	value, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(event.AlbumID),
		Value: value,
	}

	if err = p.writer.WriteMessages(ctx, msg); err != nil {
		p.log.Error("failed to send event to kafka",
			slog.String("topic", p.writer.Topic),
			slog.String("type", event.Type),
			slog.String("error", err.Error()),
		)
		return err
	}

	p.log.Info("event sent to kafka",
		slog.String("topic", p.writer.Topic),
		slog.String("type", event.Type),
	)

	return nil
}

func (p *Producer) Close() error {
	return p.writer.Close()
}

// Nop is used when event publishing is disabled in the config.
type Nop struct{}

func (Nop) Publish(context.Context, Event) error { return nil }
func (Nop) Close() error                         { return nil }
