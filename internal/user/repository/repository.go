package repository

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	models "github.com/appdotbuilder/hacker-chat/internal/user/model"
	appErrors "github.com/appdotbuilder/hacker-chat/pkg/errors"
	"github.com/appdotbuilder/hacker-chat/pkg/logger"
	"github.com/appdotbuilder/hacker-chat/pkg/pg"
)

type UserRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

func NewUserRepository(db *bun.DB, logger *logger.Logger) *UserRepository {
	return &UserRepository{db: db, logger: logger}
}

func (r *UserRepository) CreateUser(ctx context.Context, user *models.User) error {
	_, err := r.db.NewInsert().Model(user).Returning("*").Exec(ctx)
	if err != nil {
		if pg.IsUniqueViolation(err) {
			return appErrors.ErrUsernameTaken
		}
		return errors.Wrap(err, "userRepo.CreateUser.Insert: ")
	}
	return nil
}

func (r *UserRepository) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user := new(models.User)
	err := r.db.NewSelect().Model(user).Where("id = ?", id).Scan(ctx)
	if err != nil {
		if pg.NoRows(err) {
			return nil, appErrors.ErrUserNotFound
		}
		return nil, errors.Wrap(err, "userRepo.GetUserByID.Scan: ")
	}
	return user, nil
}

func (r *UserRepository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	user := new(models.User)
	err := r.db.NewSelect().Model(user).Where("username = ?", username).Scan(ctx)
	if err != nil {
		if pg.NoRows(err) {
			return nil, appErrors.ErrUserNotFound
		}
		return nil, errors.Wrap(err, "userRepo.GetUserByUsername.Scan: ")
	}
	return user, nil
}

func (r *UserRepository) UserExists(ctx context.Context, id uuid.UUID) (bool, error) {
	exists, err := r.db.NewSelect().Model((*models.User)(nil)).Where("id = ?", id).Exists(ctx)
	if err != nil {
		return false, errors.Wrap(err, "userRepo.UserExists: ")
	}
	return exists, nil
}

func (r *UserRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	exists, err := r.db.NewSelect().Model((*models.User)(nil)).Where("username = ?", username).Exists(ctx)
	if err != nil {
		return false, errors.Wrap(err, "userRepo.UsernameExists: ")
	}
	return exists, nil
}

func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	exists, err := r.db.NewSelect().Model((*models.User)(nil)).Where("email = ?", email).Exists(ctx)
	if err != nil {
		return false, errors.Wrap(err, "userRepo.EmailExists: ")
	}
	return exists, nil
}

func (r *UserRepository) UpdateUserProfile(ctx context.Context, userID uuid.UUID, username, avatarURL *string) error {
	q := r.db.NewUpdate().Model((*models.User)(nil)).
		Set("updated_at = current_timestamp").
		Where("id = ?", userID)
	if username != nil {
		q = q.Set("username = ?", *username)
	}
	if avatarURL != nil {
		q = q.Set("avatar_url = ?", *avatarURL)
	}

	res, err := q.Exec(ctx)
	if err != nil {
		if pg.IsUniqueViolation(err) {
			return appErrors.ErrUsernameTaken
		}
		return errors.Wrap(err, "userRepo.UpdateUserProfile.Update: ")
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return appErrors.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) SetPresence(ctx context.Context, userID uuid.UUID, isOnline bool, lastSeen time.Time) error {
	_, err := r.db.NewUpdate().Model((*models.User)(nil)).
		Set("is_online = ?", isOnline).
		Set("last_seen_at = ?", lastSeen).
		Set("updated_at = current_timestamp").
		Where("id = ?", userID).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "userRepo.SetPresence.Update: ")
	}
	// Zero rows affected means an unknown user: deliberately not an error,
	// logout of a stale session must stay idempotent.
	return nil
}

func (r *UserRepository) ListOnlineUsers(ctx context.Context, limit int) ([]*models.User, error) {
	var users []*models.User
	err := r.db.NewSelect().Model(&users).
		Where("is_online = TRUE").
		OrderExpr("last_seen_at DESC NULLS LAST").
		Order("username ASC").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "userRepo.ListOnlineUsers.Scan: ")
	}
	return users, nil
}

func (r *UserRepository) ListUsers(ctx context.Context) ([]*models.User, error) {
	var users []*models.User
	err := r.db.NewSelect().Model(&users).Order("username ASC").Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "userRepo.ListUsers.Scan: ")
	}
	return users, nil
}

// likeEscaper neutralizes LIKE/ILIKE metacharacters so the query is
// matched as a literal substring.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (r *UserRepository) SearchUsers(ctx context.Context, query string, excludeUserID uuid.UUID, limit int) ([]*models.User, error) {
	var users []*models.User
	err := r.db.NewSelect().Model(&users).
		Where("username ILIKE ?", "%"+likeEscaper.Replace(query)+"%").
		Where("id != ?", excludeUserID).
		Order("username ASC").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "userRepo.SearchUsers.Scan: ")
	}
	return users, nil
}
