package model

import (
	"strings"

	"github.com/google/uuid"
)

type ConversationKind string

const (
	ConversationDirect = ConversationKind("direct")
	ConversationGroup  = ConversationKind("group")
)

// ConversationRef identifies a derived conversation: either the unordered
// pair of direct participants or a group id. Conversations have no stored
// identity of their own, they exist as soon as a message references them.
type ConversationRef struct {
	Kind    ConversationKind
	UserA   uuid.UUID
	UserB   uuid.UUID
	GroupID uuid.UUID
}

// DirectConversation normalizes the participant pair so that the same two
// users always produce the same reference regardless of argument order.
func DirectConversation(a, b uuid.UUID) ConversationRef {
	if strings.Compare(a.String(), b.String()) > 0 {
		a, b = b, a
	}

	return ConversationRef{
		Kind:  ConversationDirect,
		UserA: a,
		UserB: b,
	}
}

func GroupConversation(groupID uuid.UUID) ConversationRef {
	return ConversationRef{
		Kind:    ConversationGroup,
		GroupID: groupID,
	}
}

// Counterpart returns the other direct participant.
func (r ConversationRef) Counterpart(userID uuid.UUID) uuid.UUID {
	if r.UserA == userID {
		return r.UserB
	}

	return r.UserA
}

// Key is a stable string identity, usable as a map key or a kafka
// partitioning key.
func (r ConversationRef) Key() string {
	if r.Kind == ConversationGroup {
		return "group:" + r.GroupID.String()
	}

	return "direct:" + r.UserA.String() + ":" + r.UserB.String()
}

type ConversationPreviewList []ConversationPreview

type ConversationPreview struct {
	Ref         ConversationRef
	Name        string
	AvatarURL   string
	LastMessage *Message
	UnreadCount int64
}

// OpenedConversation is the result of the open operation: a history fetch
// that also acknowledged the unread messages.
type OpenedConversation struct {
	Participants     []uuid.UUID
	History          MessageList
	UnreadBeforeOpen int64
	Archived         bool
}
