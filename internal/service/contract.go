//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/s21platform/messenger-service/internal/model"
)

type DBRepo interface {
	AppendMessage(ctx context.Context, message *model.Message) error
	GetMessage(ctx context.Context, id uuid.UUID) (*model.Message, error)
	GetConversationHistory(ctx context.Context, ref model.ConversationRef) (*model.MessageList, error)
	GetLastMessage(ctx context.Context, ref model.ConversationRef) (*model.Message, error)
	MaxConversationSeq(ctx context.Context, ref model.ConversationRef) (int64, error)
	MarkConversationRead(ctx context.Context, ref model.ConversationRef, readerID uuid.UUID, maxSeq int64) (int64, error)
	SetMessageRead(ctx context.Context, id uuid.UUID) error
	CountUnread(ctx context.Context, ref model.ConversationRef, userID uuid.UUID) (int64, error)
	ListDirectCounterparts(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	ListActiveGroups(ctx context.Context, groupIDs []uuid.UUID) ([]uuid.UUID, error)
	GetUser(ctx context.Context, userID string) (*model.ChatUser, error)
	UserExists(ctx context.Context, userID uuid.UUID) (bool, error)

	WithTx(ctx context.Context, cb func(ctx context.Context) error) error
}

type RosterClient interface {
	GetGroupMembers(ctx context.Context, groupID uuid.UUID) ([]uuid.UUID, error)
	GetUserGroups(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}

type NotificationProducer interface {
	NotifyUnread(ctx context.Context, userID uuid.UUID, ref model.ConversationRef, totalUnread int64) error
}
