//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package user

import (
	"context"

	"github.com/s21platform/messenger-service/internal/model"
)

type DBRepo interface {
	AddNewUser(ctx context.Context, userInfo *model.ChatUser) error
	UpdateUserNickname(ctx context.Context, userUUID, newNickname string) error
	UpdateUserAvatar(ctx context.Context, userUUID, avatarLink string) error
}
