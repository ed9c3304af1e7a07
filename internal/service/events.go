package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/messenger-service/internal/model"
)

// AppendedEvent is emitted after a message commit. Recipients are the
// audience resolved at append time, the sender excluded.
type AppendedEvent struct {
	Message    model.Message
	Recipients []uuid.UUID
}

type AppendSink interface {
	Consume(evt AppendedEvent)
}

// AppendFanout broadcasts append events to in-process sinks. It is
// best-effort: when the buffer is full the event is dropped rather than
// blocking the send path. Derived views recover on their next read, so
// nothing here is load-bearing for correctness.
type AppendFanout struct {
	events chan AppendedEvent
	sinks  []AppendSink
}

func NewAppendFanout(buffer int) *AppendFanout {
	return &AppendFanout{
		events: make(chan AppendedEvent, buffer),
	}
}

// Add registers a sink. Not safe to call after Run has started.
func (f *AppendFanout) Add(sink AppendSink) {
	f.sinks = append(f.sinks, sink)
}

func (f *AppendFanout) Publish(evt AppendedEvent) {
	select {
	case f.events <- evt:
	default:
	}
}

func (f *AppendFanout) Run(ctx context.Context) error {
	for {
		select {
		case evt := <-f.events:
			for _, sink := range f.sinks {
				sink.Consume(evt)
			}
		case <-ctx.Done():
			return nil
		}
	}
}

const notifyTimeout = 3 * time.Second

// UnreadNotifier recomputes each recipient's total unread after an append
// and pushes it to the notification bridge.
type UnreadNotifier struct {
	aggregator *Service
	producer   NotificationProducer
	logger     logger_lib.LoggerInterface
}

func NewUnreadNotifier(aggregator *Service, producer NotificationProducer, logger logger_lib.LoggerInterface) *UnreadNotifier {
	return &UnreadNotifier{
		aggregator: aggregator,
		producer:   producer,
		logger:     logger,
	}
}

func (n *UnreadNotifier) Consume(evt AppendedEvent) {
	ref := evt.Message.Conversation()

	for _, recipient := range evt.Recipients {
		if recipient == evt.Message.SenderID {
			continue
		}

		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)

		total, err := n.aggregator.TotalUnread(ctx, recipient)
		if err != nil {
			n.logger.Error(fmt.Sprintf("failed to compute total unread for %s: %v", recipient, err))
			cancel()
			continue
		}

		if err := n.producer.NotifyUnread(ctx, recipient, ref, total); err != nil {
			n.logger.Error(fmt.Sprintf("failed to notify %s: %v", recipient, err))
		}

		cancel()
	}
}
