package usecase

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/appdotbuilder/hacker-chat/config"
	"github.com/appdotbuilder/hacker-chat/internal/user"
	models "github.com/appdotbuilder/hacker-chat/internal/user/model"
	"github.com/appdotbuilder/hacker-chat/pkg/auth"
	"github.com/appdotbuilder/hacker-chat/pkg/errors"
	"github.com/appdotbuilder/hacker-chat/pkg/logger"
)

const (
	onlineUsersLimit = 100
	searchUsersLimit = 20
)

var validate = validator.New()

type UserUsecase struct {
	repo   user.UserRepository
	logger *logger.Logger
	config *config.Config
}

func NewUserUsecase(repo user.UserRepository, logger *logger.Logger, config *config.Config) *UserUsecase {
	return &UserUsecase{repo: repo, logger: logger, config: config}
}

func (uc *UserUsecase) Register(ctx context.Context, cmd user.RegisterCommand) (*user.AuthResult, error) {
	if err := validate.Struct(cmd); err != nil {
		return &user.AuthResult{Success: false, Message: "username must be 3-30 characters, email must be valid, password at least 8 characters"}, nil
	}

	if taken, err := uc.repo.UsernameExists(ctx, cmd.Username); err != nil {
		uc.logger.Error("database error checking username", "err", err)
		return nil, errors.ErrRegistrationFailed(err)
	} else if taken {
		return &user.AuthResult{Success: false, Message: "username is already taken"}, nil
	}

	if taken, err := uc.repo.EmailExists(ctx, cmd.Email); err != nil {
		uc.logger.Error("database error checking email", "err", err)
		return nil, errors.ErrRegistrationFailed(err)
	} else if taken {
		return &user.AuthResult{Success: false, Message: "email is already registered"}, nil
	}

	hash, err := auth.HashPassword(cmd.Password)
	if err != nil {
		uc.logger.Error("password hashing failed", "err", err)
		return nil, errors.ErrRegistrationFailed(err)
	}

	u := &models.User{
		Username:     cmd.Username,
		Email:        cmd.Email,
		PasswordHash: hash,
	}
	if err := uc.repo.CreateUser(ctx, u); err != nil {
		// A concurrent signup can still hit the unique index between the
		// exists check and the insert; report it as the same result.
		if code := errors.CodeOf(err); code == errors.CodeAlreadyExists {
			return &user.AuthResult{Success: false, Message: "username is already taken"}, nil
		}
		uc.logger.Error("error while saving user in db", "err", err)
		return nil, errors.ErrRegistrationFailed(err)
	}

	return uc.issueTokens(ctx, u)
}

func (uc *UserUsecase) Login(ctx context.Context, cmd user.LoginCommand) (*user.AuthResult, error) {
	if err := validate.Struct(cmd); err != nil {
		return &user.AuthResult{Success: false, Message: "username and password are required"}, nil
	}

	u, err := uc.repo.GetUserByUsername(ctx, cmd.Username)
	if err != nil {
		// Same message for unknown user and wrong password, so login
		// cannot be used to enumerate accounts.
		if code := errors.CodeOf(err); code == errors.CodeNotFound {
			return &user.AuthResult{Success: false, Message: "invalid username or password"}, nil
		}
		uc.logger.Error("database error fetching user", "err", err)
		return nil, errors.ErrLoginFailed(err)
	}

	match, err := auth.ComparePassword(cmd.Password, u.PasswordHash)
	if err != nil || !match {
		return &user.AuthResult{Success: false, Message: "invalid username or password"}, nil
	}

	return uc.issueTokens(ctx, u)
}

// issueTokens marks the user online and builds the successful AuthResult.
func (uc *UserUsecase) issueTokens(ctx context.Context, u *models.User) (*user.AuthResult, error) {
	token, refreshToken, err := auth.GenerateJWTToken(u.ID.String(), u.Username, uc.config)
	if err != nil {
		uc.logger.Error("error while creating tokens", "err", err)
		return nil, errors.Internal("error while creating tokens")
	}

	now := time.Now()
	if err := uc.repo.SetPresence(ctx, u.ID, true, now); err != nil {
		uc.logger.Warn("failed to mark user online", "user_id", u.ID, "err", err)
	}
	u.IsOnline = true
	u.LastSeenAt = &now

	return &user.AuthResult{
		Success:      true,
		Message:      "ok",
		Token:        token,
		RefreshToken: refreshToken,
		User:         toUserDTO(u),
	}, nil
}

func (uc *UserUsecase) Logout(ctx context.Context, userID uuid.UUID) error {
	return uc.repo.SetPresence(ctx, userID, false, time.Now())
}

func (uc *UserUsecase) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*user.UserDTO, error) {
	u, err := uc.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toUserDTO(u), nil
}

func (uc *UserUsecase) UpdateProfile(ctx context.Context, userID uuid.UUID, cmd user.UpdateProfileCommand) (*user.UserDTO, error) {
	if cmd.Username != nil {
		if len(*cmd.Username) < 3 || len(*cmd.Username) > 30 {
			return nil, errors.ErrInvalidUsername
		}
	}

	if err := uc.repo.UpdateUserProfile(ctx, userID, cmd.Username, cmd.AvatarURL); err != nil {
		return nil, err
	}
	return uc.GetCurrentUser(ctx, userID)
}

func (uc *UserUsecase) UpdateStatus(ctx context.Context, userID uuid.UUID, isOnline bool) error {
	return uc.repo.SetPresence(ctx, userID, isOnline, time.Now())
}

func (uc *UserUsecase) GetOnlineUsers(ctx context.Context) ([]*user.PublicProfileDTO, error) {
	users, err := uc.repo.ListOnlineUsers(ctx, onlineUsersLimit)
	if err != nil {
		return nil, err
	}
	return lo.Map(users, toPublicProfile), nil
}

func (uc *UserUsecase) GetAllUsers(ctx context.Context) ([]*user.PublicProfileDTO, error) {
	users, err := uc.repo.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	return lo.Map(users, toPublicProfile), nil
}

func (uc *UserUsecase) SearchUsers(ctx context.Context, query string, excludeUserID uuid.UUID) ([]*user.PublicProfileDTO, error) {
	if query == "" {
		return []*user.PublicProfileDTO{}, nil
	}
	users, err := uc.repo.SearchUsers(ctx, query, excludeUserID, searchUsersLimit)
	if err != nil {
		return nil, err
	}
	return lo.Map(users, toPublicProfile), nil
}

func toUserDTO(u *models.User) *user.UserDTO {
	return &user.UserDTO{
		ID:         u.ID,
		Username:   u.Username,
		Email:      u.Email,
		AvatarURL:  u.AvatarURL,
		IsOnline:   u.IsOnline,
		LastSeenAt: u.LastSeenAt,
	}
}

func toPublicProfile(u *models.User, _ int) *user.PublicProfileDTO {
	return &user.PublicProfileDTO{
		ID:         u.ID,
		Username:   u.Username,
		AvatarURL:  u.AvatarURL,
		IsOnline:   u.IsOnline,
		LastSeenAt: u.LastSeenAt,
	}
}
