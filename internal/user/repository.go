//go:generate go run github.com/golang/mock/mockgen -source=repository.go -destination=mocks/mock_repository.go -package=mocks
package user

import (
	"context"
	"time"

	"github.com/google/uuid"

	models "github.com/appdotbuilder/hacker-chat/internal/user/model"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	UserExists(ctx context.Context, id uuid.UUID) (bool, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	EmailExists(ctx context.Context, email string) (bool, error)

	UpdateUserProfile(ctx context.Context, userID uuid.UUID, username, avatarURL *string) error

	// SetPresence is an idempotent no-op for unknown user ids.
	SetPresence(ctx context.Context, userID uuid.UUID, isOnline bool, lastSeen time.Time) error

	ListOnlineUsers(ctx context.Context, limit int) ([]*models.User, error)
	ListUsers(ctx context.Context) ([]*models.User, error)
	SearchUsers(ctx context.Context, query string, excludeUserID uuid.UUID, limit int) ([]*models.User, error)
}
