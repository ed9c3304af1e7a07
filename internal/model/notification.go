package model

// UnreadNotification is the fire-and-forget payload published to the
// notification bridge whenever an append changes a recipient's total.
type UnreadNotification struct {
	UserID           string `json:"user_id"`
	ConversationKind string `json:"conversation_kind"`
	ConversationID   string `json:"conversation_id"`
	TotalUnread      int64  `json:"total_unread"`
}
