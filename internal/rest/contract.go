//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package rest

import (
	"context"

	"github.com/google/uuid"

	"github.com/s21platform/messenger-service/internal/model"
	"github.com/s21platform/messenger-service/internal/rest/api"
)

type MessengerService interface {
	SendMessage(ctx context.Context, senderID uuid.UUID, target model.Target, content string) (*model.Message, error)
	GetMessage(ctx context.Context, id uuid.UUID) (*model.Message, error)
	MarkMessageRead(ctx context.Context, id uuid.UUID) error
	History(ctx context.Context, ref model.ConversationRef) (*model.MessageList, error)
	ConversationPreviews(ctx context.Context, userID uuid.UUID) (model.ConversationPreviewList, error)
	Open(ctx context.Context, userID uuid.UUID, ref model.ConversationRef) (*model.OpenedConversation, error)
	MarkConversationRead(ctx context.Context, userID uuid.UUID, ref model.ConversationRef) (int64, error)
	AnnounceTyping(ref model.ConversationRef, userID uuid.UUID)
	ActiveTypers(ref model.ConversationRef) []uuid.UUID
}

type Validator interface {
	ValidateSendMessage(req *api.SendMessageRequest) error
	ValidateConversationRef(ref *api.ConversationRef) error
}
