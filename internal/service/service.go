package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/s21platform/messenger-service/internal/model"
	"github.com/s21platform/messenger-service/internal/pkg/tx"
)

// Service is the conversation surface: the single entry point callers use
// to send, read and acknowledge messages. The message log is the only
// mutable state behind it; everything else is derived per query.
type Service struct {
	repository DBRepo
	roster     RosterClient
	typing     *TypingRegistry
	fanout     *AppendFanout
}

func New(repo DBRepo, roster RosterClient, typing *TypingRegistry, fanout *AppendFanout) *Service {
	return &Service{
		repository: repo,
		roster:     roster,
		typing:     typing,
		fanout:     fanout,
	}
}

// SendMessage validates the target, appends the message and publishes the
// append event. The append itself is all-or-nothing: a failure leaves no
// partial record, and the caller decides whether to resubmit.
func (s *Service) SendMessage(ctx context.Context, senderID uuid.UUID, target model.Target, content string) (*model.Message, error) {
	if senderID == uuid.Nil {
		return nil, model.ErrInvalidMessage
	}

	if strings.TrimSpace(content) == "" {
		return nil, model.ErrInvalidMessage
	}

	if err := target.Validate(); err != nil {
		return nil, err
	}

	recipients, err := s.resolveRecipients(ctx, senderID, target)
	if err != nil {
		return nil, err
	}

	message := &model.Message{
		ID:       uuid.New(),
		SenderID: senderID,
		Target:   target,
		Content:  content,
		SentAt:   time.Now(),
	}

	err = tx.TxExecute(ctx, func(ctx context.Context) error {
		return s.repository.AppendMessage(ctx, message)
	})
	if err != nil {
		return nil, err
	}

	s.fanout.Publish(AppendedEvent{
		Message:    *message,
		Recipients: recipients,
	})

	return message, nil
}

func (s *Service) resolveRecipients(ctx context.Context, senderID uuid.UUID, target model.Target) ([]uuid.UUID, error) {
	if target.Kind == model.TargetDirect {
		if target.ID == senderID {
			return nil, model.ErrInvalidMessage
		}

		exists, err := s.repository.UserExists(ctx, target.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to check receiver: %v", err)
		}

		if !exists {
			return nil, model.ErrInvalidMessage
		}

		return []uuid.UUID{target.ID}, nil
	}

	// group liveness is checked against the roster at send time
	members, err := s.roster.GetGroupMembers(ctx, target.ID)
	if err != nil {
		return nil, err
	}

	recipients := make([]uuid.UUID, 0, len(members))
	for _, member := range members {
		if member != senderID {
			recipients = append(recipients, member)
		}
	}

	return recipients, nil
}

func (s *Service) GetMessage(ctx context.Context, id uuid.UUID) (*model.Message, error) {
	return s.repository.GetMessage(ctx, id)
}

// MarkMessageRead transitions a single message to read. Idempotent: marking
// an already-read message succeeds. No authorship check is applied here,
// that belongs to the conversation-level acknowledgement.
func (s *Service) MarkMessageRead(ctx context.Context, id uuid.UUID) error {
	return tx.TxExecute(ctx, func(ctx context.Context) error {
		return s.repository.SetMessageRead(ctx, id)
	})
}

// History returns the conversation in append order. It stays queryable even
// for archived groups: the log outlives the roster entry.
func (s *Service) History(ctx context.Context, ref model.ConversationRef) (*model.MessageList, error) {
	return s.repository.GetConversationHistory(ctx, ref)
}

// MarkConversationRead transitions every unread message in the conversation
// that the reader did not author. The scan is bounded by the newest seq at
// call time, so a message appended while the call runs is left for the next
// one. Returns the number of messages actually transitioned.
func (s *Service) MarkConversationRead(ctx context.Context, userID uuid.UUID, ref model.ConversationRef) (int64, error) {
	var transitioned int64

	err := tx.TxExecute(ctx, func(ctx context.Context) error {
		maxSeq, err := s.repository.MaxConversationSeq(ctx, ref)
		if err != nil {
			return err
		}

		if maxSeq == 0 {
			return nil
		}

		transitioned, err = s.repository.MarkConversationRead(ctx, ref, userID, maxSeq)

		return err
	})
	if err != nil {
		return 0, err
	}

	return transitioned, nil
}

// Open is the fetch-and-acknowledge read: viewing a conversation marks its
// unread messages read before the history is returned.
func (s *Service) Open(ctx context.Context, userID uuid.UUID, ref model.ConversationRef) (*model.OpenedConversation, error) {
	participants, err := s.ResolveParticipants(ctx, ref)

	archived := false
	if errors.Is(err, model.ErrGroupNotFound) {
		archived = true
		participants = nil
	} else if err != nil {
		return nil, err
	}

	transitioned, err := s.MarkConversationRead(ctx, userID, ref)
	if err != nil {
		return nil, err
	}

	history, err := s.repository.GetConversationHistory(ctx, ref)
	if err != nil {
		return nil, err
	}

	return &model.OpenedConversation{
		Participants:     participants,
		History:          *history,
		UnreadBeforeOpen: transitioned,
		Archived:         archived,
	}, nil
}

func (s *Service) UnreadCount(ctx context.Context, userID uuid.UUID, ref model.ConversationRef) (int64, error) {
	return s.repository.CountUnread(ctx, ref, userID)
}

// TotalUnread sums the unread counts of every conversation the user
// participates in.
func (s *Service) TotalUnread(ctx context.Context, userID uuid.UUID) (int64, error) {
	refs, err := s.ListConversations(ctx, userID)
	if err != nil {
		return 0, err
	}

	var total int64
	for _, ref := range refs {
		count, err := s.repository.CountUnread(ctx, ref, userID)
		if err != nil {
			return 0, err
		}

		total += count
	}

	return total, nil
}

func (s *Service) AnnounceTyping(ref model.ConversationRef, userID uuid.UUID) {
	s.typing.Announce(ref, userID)
}

func (s *Service) ActiveTypers(ref model.ConversationRef) []uuid.UUID {
	return s.typing.Active(ref)
}
