package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	chanModel "github.com/appdotbuilder/hacker-chat/internal/channel/model"
	msgModel "github.com/appdotbuilder/hacker-chat/internal/message/model"
	userModel "github.com/appdotbuilder/hacker-chat/internal/user/model"
	appErrors "github.com/appdotbuilder/hacker-chat/pkg/errors"
	"github.com/appdotbuilder/hacker-chat/pkg/logger"
	"github.com/appdotbuilder/hacker-chat/pkg/pg"
)

type DMRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

func NewDMRepository(db *bun.DB, logger *logger.Logger) *DMRepository {
	return &DMRepository{db: db, logger: logger}
}

func (r *DMRepository) FindPrivateChannelByMembers(ctx context.Context, a, b uuid.UUID) (*chanModel.Channel, error) {
	var channels []*chanModel.Channel
	err := r.db.NewSelect().Model(&channels).
		Join("JOIN channel_members AS cm ON cm.channel_id = channel.id").
		Where("channel.is_private = TRUE").
		Where("cm.user_id IN (?)", bun.In([]uuid.UUID{a, b})).
		Group("channel.id").
		Having("COUNT(DISTINCT cm.user_id) = 2").
		Having("(SELECT COUNT(*) FROM channel_members WHERE channel_id = channel.id) = 2").
		Limit(1).
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "dmRepo.FindPrivateChannelByMembers.Scan: ")
	}
	if len(channels) == 0 {
		return nil, nil
	}
	return channels[0], nil
}

func (r *DMRepository) CreatePrivateChat(ctx context.Context, ch *chanModel.Channel, members []*chanModel.ChannelMember) error {
	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewInsert().Model(ch).Returning("*").Exec(ctx); err != nil {
			return err
		}
		for _, m := range members {
			m.ChannelID = ch.ID
		}
		_, err := tx.NewInsert().Model(&members).Exec(ctx)
		return err
	})
	if err != nil {
		if pg.IsUniqueViolation(err) {
			return appErrors.AlreadyExists("private chat already exists")
		}
		return errors.Wrap(err, "dmRepo.CreatePrivateChat: ")
	}
	return nil
}

func (r *DMRepository) ListPrivateChannels(ctx context.Context, userID uuid.UUID) ([]*chanModel.Channel, error) {
	var channels []*chanModel.Channel
	err := r.db.NewSelect().Model(&channels).
		Join("JOIN channel_members AS cm ON cm.channel_id = channel.id").
		Where("channel.is_private = TRUE").
		Where("cm.user_id = ?", userID).
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "dmRepo.ListPrivateChannels.Scan: ")
	}
	return channels, nil
}

func (r *DMRepository) ListOtherMembers(ctx context.Context, channelID, userID uuid.UUID) ([]*userModel.User, error) {
	var users []*userModel.User
	err := r.db.NewSelect().Model(&users).
		Join(`JOIN channel_members AS cm ON cm.user_id = "user".id`).
		Where("cm.channel_id = ?", channelID).
		Where(`"user".id != ?`, userID).
		Order("username ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "dmRepo.ListOtherMembers.Scan: ")
	}
	return users, nil
}

func (r *DMRepository) LastMessage(ctx context.Context, channelID uuid.UUID) (*msgModel.Message, error) {
	msg := new(msgModel.Message)
	err := r.db.NewSelect().Model(msg).
		Where("channel_id = ?", channelID).
		Order("created_at DESC").
		Limit(1).
		Scan(ctx)
	if err != nil {
		if pg.NoRows(err) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "dmRepo.LastMessage.Scan: ")
	}
	return msg, nil
}

func (r *DMRepository) ClearDMKey(ctx context.Context, channelID uuid.UUID) error {
	_, err := r.db.NewUpdate().Model((*chanModel.Channel)(nil)).
		Set("dm_key = NULL").
		Where("id = ?", channelID).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "dmRepo.ClearDMKey: ")
	}
	return nil
}
