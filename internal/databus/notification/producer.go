package notification

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	kafkalib "github.com/s21platform/kafka-lib"

	"github.com/s21platform/messenger-service/internal/config"
	"github.com/s21platform/messenger-service/internal/model"
)

// Producer publishes unread-total updates to the notification bridge topic.
// Delivery is fire-and-forget: the bridge requires no acknowledgment.
type Producer struct {
	producer *kafkalib.KafkaProducer
}

func New(cfg *config.Config) *Producer {
	producerConfig := kafkalib.DefaultProducerConfig(
		cfg.Kafka.Host,
		cfg.Kafka.Port,
		cfg.Kafka.NotificationTopic,
	)

	return &Producer{
		producer: kafkalib.NewProducer(producerConfig),
	}
}

// newNotification maps the conversation reference to the recipient's point
// of view: for a direct conversation the id is the counterpart user.
func newNotification(userID uuid.UUID, ref model.ConversationRef, totalUnread int64) model.UnreadNotification {
	conversationID := ref.GroupID
	if ref.Kind == model.ConversationDirect {
		conversationID = ref.Counterpart(userID)
	}

	return model.UnreadNotification{
		UserID:           userID.String(),
		ConversationKind: string(ref.Kind),
		ConversationID:   conversationID.String(),
		TotalUnread:      totalUnread,
	}
}

func (p *Producer) NotifyUnread(ctx context.Context, userID uuid.UUID, ref model.ConversationRef, totalUnread int64) error {
	message := newNotification(userID, ref, totalUnread)

	if err := p.producer.ProduceMessage(ctx, message, userID.String()); err != nil {
		return fmt.Errorf("failed to produce notification: %v", err)
	}

	return nil
}
