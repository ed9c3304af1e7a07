// Package api holds the request and response shapes of the messenger REST
// surface.
package api

type Message struct {
	Id         string `json:"id"`
	SenderId   string `json:"sender_id"`
	TargetKind string `json:"target_kind"`
	TargetId   string `json:"target_id"`
	Content    string `json:"content"`
	Read       bool   `json:"read"`
	SentAt     string `json:"sent_at"`
}

// ConversationRef addresses a conversation from the caller's point of view:
// for kind "direct" the id is the counterpart user, for kind "group" the
// group itself.
type ConversationRef struct {
	Kind string `json:"kind"`
	Id   string `json:"id"`
}

type SendMessageRequest struct {
	TargetKind string `json:"target_kind"`
	TargetId   string `json:"target_id"`
	Content    string `json:"content"`
}

type SendMessageResponse struct {
	Message Message `json:"message"`
}

type GetMessageResponse struct {
	Message Message `json:"message"`
}

type ConversationPreview struct {
	Kind        string   `json:"kind"`
	Id          string   `json:"id"`
	Name        *string  `json:"name,omitempty"`
	AvatarUrl   *string  `json:"avatar_url,omitempty"`
	LastMessage *Message `json:"last_message,omitempty"`
	UnreadCount int64    `json:"unread_count"`
}

type GetConversationsResponse struct {
	Conversations []ConversationPreview `json:"conversations"`
}

type GetHistoryResponse struct {
	Messages []Message `json:"messages"`
}

type OpenConversationRequest struct {
	Conversation ConversationRef `json:"conversation"`
}

type OpenConversationResponse struct {
	Participants     []string  `json:"participants"`
	Messages         []Message `json:"messages"`
	UnreadBeforeOpen int64     `json:"unread_before_open"`
	Archived         bool      `json:"archived"`
}

type MarkReadRequest struct {
	Conversation ConversationRef `json:"conversation"`
}

type MarkReadResponse struct {
	Transitioned int64 `json:"transitioned"`
}

type TypingRequest struct {
	Conversation ConversationRef `json:"conversation"`
}

type GetTypingResponse struct {
	UserIds []string `json:"user_ids"`
}

type Error struct {
	Error string `json:"error"`
}
