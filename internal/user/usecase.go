package user

import (
	"context"

	"github.com/google/uuid"
)

type UserUsecase interface {
	// Register creates the account, marks the user online and issues tokens.
	// Expected negative outcomes (username/email taken, weak input) come
	// back as an unsuccessful AuthResult, not as an error.
	Register(ctx context.Context, cmd RegisterCommand) (*AuthResult, error)

	Login(ctx context.Context, cmd LoginCommand) (*AuthResult, error)

	// Logout marks the user offline. Unknown user ids are a no-op.
	Logout(ctx context.Context, userID uuid.UUID) error

	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*UserDTO, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, cmd UpdateProfileCommand) (*UserDTO, error)

	// UpdateStatus is the explicit client-driven presence toggle. It
	// stamps last-seen regardless of direction.
	UpdateStatus(ctx context.Context, userID uuid.UUID, isOnline bool) error

	GetOnlineUsers(ctx context.Context) ([]*PublicProfileDTO, error)
	GetAllUsers(ctx context.Context) ([]*PublicProfileDTO, error)

	// SearchUsers matches usernames case-insensitively by substring,
	// excluding the caller, capped at 20.
	SearchUsers(ctx context.Context, query string, excludeUserID uuid.UUID) ([]*PublicProfileDTO, error)
}
