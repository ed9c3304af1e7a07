package model

import (
	"time"

	"github.com/google/uuid"
)

type MessageList []Message

// Message is an immutable record in the append-only log. Only Read may
// change after creation, and only false -> true.
type Message struct {
	ID       uuid.UUID `json:"id"`
	Seq      int64     `json:"-"`
	SenderID uuid.UUID `json:"sender_id"`
	Target   Target    `json:"target"`
	Content  string    `json:"content"`
	Read     bool      `json:"read"`
	SentAt   time.Time `json:"sent_at"`
}

type TargetKind string

const (
	TargetDirect = TargetKind("direct")
	TargetGroup  = TargetKind("group")
)

// Target is the addressing variant of a message: exactly one of a direct
// receiver or a group. Construct through DirectTarget/GroupTarget so a
// message can never carry both or neither.
type Target struct {
	Kind TargetKind `json:"kind"`
	ID   uuid.UUID  `json:"id"`
}

func DirectTarget(receiverID uuid.UUID) Target {
	return Target{Kind: TargetDirect, ID: receiverID}
}

func GroupTarget(groupID uuid.UUID) Target {
	return Target{Kind: TargetGroup, ID: groupID}
}

func (t Target) Validate() error {
	if t.Kind != TargetDirect && t.Kind != TargetGroup {
		return ErrInvalidMessage
	}

	if t.ID == uuid.Nil {
		return ErrInvalidMessage
	}

	return nil
}

// Conversation returns the conversation the message belongs to.
func (m Message) Conversation() ConversationRef {
	if m.Target.Kind == TargetGroup {
		return GroupConversation(m.Target.ID)
	}

	return DirectConversation(m.SenderID, m.Target.ID)
}
