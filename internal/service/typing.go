package service

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/s21platform/messenger-service/internal/model"
)

type typingKey struct {
	conversation string
	userID       uuid.UUID
}

// TypingRegistry is the ephemeral "user is typing" store: in-memory only,
// lost on restart, expired lazily. A new signal from the same user in the
// same conversation supersedes the previous one.
type TypingRegistry struct {
	mu      sync.Mutex
	window  time.Duration
	signals map[typingKey]time.Time
	now     func() time.Time
}

func NewTypingRegistry(window time.Duration) *TypingRegistry {
	return &TypingRegistry{
		window:  window,
		signals: make(map[typingKey]time.Time),
		now:     time.Now,
	}
}

func (t *TypingRegistry) Announce(ref model.ConversationRef, userID uuid.UUID) {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	t.signals[typingKey{conversation: ref.Key(), userID: userID}] = now.Add(t.window)

	// lazy sweep keeps the map from accumulating signals with no follow-up
	for key, expiresAt := range t.signals {
		if !expiresAt.After(now) {
			delete(t.signals, key)
		}
	}
}

func (t *TypingRegistry) Active(ref model.ConversationRef) []uuid.UUID {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	conversation := ref.Key()

	var typers []uuid.UUID
	for key, expiresAt := range t.signals {
		if key.conversation == conversation && expiresAt.After(now) {
			typers = append(typers, key.userID)
		}
	}

	return typers
}
