package user

import (
	"context"
	"encoding/json"
	"fmt"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/messenger-service/internal/config"
	"github.com/s21platform/messenger-service/internal/model"
)

type Handler struct {
	repository DBRepo
}

func New(repo DBRepo) *Handler {
	return &Handler{
		repository: repo,
	}
}

type updateEvent struct {
	UserID     string  `json:"user_id"`
	Nickname   *string `json:"nickname"`
	AvatarLink *string `json:"avatar_link"`
}

// Handler applies user-service profile events to the local display table.
// Only nickname and avatar are mirrored; everything else about a profile
// stays in the user service. A returned error leaves the offset uncommitted
// so the event is redelivered.
func (h *Handler) Handler(ctx context.Context, in []byte) error {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("UserUpdateHandler")

	var event updateEvent
	if err := json.Unmarshal(in, &event); err != nil {
		return fmt.Errorf("failed to unmarshal user event: %v", err)
	}

	if event.UserID == "" {
		return fmt.Errorf("user event without user_id")
	}

	// first event about a user creates the row, later ones only update it
	if err := h.repository.AddNewUser(ctx, &model.ChatUser{ID: event.UserID}); err != nil {
		return fmt.Errorf("failed to ensure user %s: %w", event.UserID, err)
	}

	if event.Nickname != nil {
		if err := h.repository.UpdateUserNickname(ctx, event.UserID, *event.Nickname); err != nil {
			return fmt.Errorf("failed to update nickname for %s: %w", event.UserID, err)
		}
	}

	if event.AvatarLink != nil {
		if err := h.repository.UpdateUserAvatar(ctx, event.UserID, *event.AvatarLink); err != nil {
			return fmt.Errorf("failed to update avatar for %s: %w", event.UserID, err)
		}
	}

	return nil
}
