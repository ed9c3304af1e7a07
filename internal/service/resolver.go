package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/s21platform/messenger-service/internal/model"
)

// ListConversations derives the user's conversation set: every direct
// counterpart with at least one exchanged message, plus every roster group
// the user currently belongs to that has at least one message in the log.
// Groups gone from the roster are excluded here but keep their history.
func (s *Service) ListConversations(ctx context.Context, userID uuid.UUID) ([]model.ConversationRef, error) {
	counterparts, err := s.repository.ListDirectCounterparts(ctx, userID)
	if err != nil {
		return nil, err
	}

	refs := make([]model.ConversationRef, 0, len(counterparts))
	for _, counterpart := range counterparts {
		refs = append(refs, model.DirectConversation(userID, counterpart))
	}

	groups, err := s.roster.GetUserGroups(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve group membership: %w", err)
	}

	active, err := s.repository.ListActiveGroups(ctx, groups)
	if err != nil {
		return nil, err
	}

	for _, groupID := range active {
		refs = append(refs, model.GroupConversation(groupID))
	}

	return refs, nil
}

// ResolveParticipants answers who is in the conversation right now. Direct
// pairs are fixed; group membership is re-resolved on every call so roster
// changes apply immediately, even to historical messages.
func (s *Service) ResolveParticipants(ctx context.Context, ref model.ConversationRef) ([]uuid.UUID, error) {
	if ref.Kind == model.ConversationDirect {
		return []uuid.UUID{ref.UserA, ref.UserB}, nil
	}

	return s.roster.GetGroupMembers(ctx, ref.GroupID)
}

// ConversationPreviews builds the conversation list: last message plus
// unread count per conversation, newest activity first.
func (s *Service) ConversationPreviews(ctx context.Context, userID uuid.UUID) (model.ConversationPreviewList, error) {
	refs, err := s.ListConversations(ctx, userID)
	if err != nil {
		return nil, err
	}

	previews := make(model.ConversationPreviewList, 0, len(refs))
	for _, ref := range refs {
		lastMessage, err := s.repository.GetLastMessage(ctx, ref)
		if err != nil {
			return nil, err
		}

		if lastMessage == nil {
			continue
		}

		unread, err := s.repository.CountUnread(ctx, ref, userID)
		if err != nil {
			return nil, err
		}

		preview := model.ConversationPreview{
			Ref:         ref,
			LastMessage: lastMessage,
			UnreadCount: unread,
		}

		if ref.Kind == model.ConversationDirect {
			user, err := s.repository.GetUser(ctx, ref.Counterpart(userID).String())
			if err != nil {
				return nil, err
			}

			if user != nil {
				preview.Name = user.Nickname
				preview.AvatarURL = user.AvatarURL
			}
		}

		previews = append(previews, preview)
	}

	sort.SliceStable(previews, func(i, j int) bool {
		a, b := previews[i].LastMessage, previews[j].LastMessage
		if a.SentAt.Equal(b.SentAt) {
			return a.Seq > b.Seq
		}

		return a.SentAt.After(b.SentAt)
	})

	return previews, nil
}
