package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	"github.com/appdotbuilder/hacker-chat/internal/channel/model"
	appErrors "github.com/appdotbuilder/hacker-chat/pkg/errors"
	"github.com/appdotbuilder/hacker-chat/pkg/logger"
	"github.com/appdotbuilder/hacker-chat/pkg/pg"
)

// roleRankExpr sorts owner before admin before member in SQL, mirroring
// model.Role.Rank.
const roleRankExpr = `CASE channel_member.role WHEN 'owner' THEN 1 WHEN 'admin' THEN 2 ELSE 3 END`

type ChannelRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

func NewChannelRepository(db *bun.DB, logger *logger.Logger) *ChannelRepository {
	return &ChannelRepository{db: db, logger: logger}
}

func (r *ChannelRepository) CreateChannelWithMembers(ctx context.Context, ch *model.Channel, members []*model.ChannelMember) error {
	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewInsert().Model(ch).Returning("*").Exec(ctx); err != nil {
			return err
		}
		for _, m := range members {
			m.ChannelID = ch.ID
		}
		if len(members) > 0 {
			if _, err := tx.NewInsert().Model(&members).Exec(ctx); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if pg.IsUniqueViolation(err) {
			// Only the dm_key unique index can fire here.
			return appErrors.AlreadyExists("private chat already exists")
		}
		return errors.Wrap(err, "chanRepo.CreateChannelWithMembers: ")
	}
	return nil
}

func (r *ChannelRepository) GetChannelByID(ctx context.Context, id uuid.UUID) (*model.Channel, error) {
	ch := new(model.Channel)
	err := r.db.NewSelect().Model(ch).Where("id = ?", id).Scan(ctx)
	if err != nil {
		if pg.NoRows(err) {
			return nil, appErrors.ErrChannelNotFound
		}
		return nil, errors.Wrap(err, "chanRepo.GetChannelByID.Scan: ")
	}
	return ch, nil
}

func (r *ChannelRepository) AddMember(ctx context.Context, member *model.ChannelMember) error {
	_, err := r.db.NewInsert().Model(member).Exec(ctx)
	if err != nil {
		if pg.IsUniqueViolation(err) {
			return appErrors.ErrAlreadyMember
		}
		return errors.Wrap(err, "chanRepo.AddMember.Insert: ")
	}
	return nil
}

func (r *ChannelRepository) GetMember(ctx context.Context, channelID, userID uuid.UUID) (*model.ChannelMember, error) {
	member := new(model.ChannelMember)
	err := r.db.NewSelect().Model(member).
		Where("channel_id = ?", channelID).
		Where("user_id = ?", userID).
		Scan(ctx)
	if err != nil {
		if pg.NoRows(err) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "chanRepo.GetMember.Scan: ")
	}
	return member, nil
}

func (r *ChannelRepository) ListMembers(ctx context.Context, channelID uuid.UUID) ([]*model.ChannelMember, error) {
	var members []*model.ChannelMember
	err := r.db.NewSelect().Model(&members).
		Relation("User").
		Where("channel_id = ?", channelID).
		OrderExpr(roleRankExpr).
		OrderExpr(`"user".username ASC`).
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "chanRepo.ListMembers.Scan: ")
	}
	return members, nil
}

// RemoveMember deletes the membership and hands ownership to the next
// member in the same transaction, so no concurrent reader can observe a
// channel that has members but lost its owner mid-leave.
func (r *ChannelRepository) RemoveMember(ctx context.Context, channelID, userID uuid.UUID) error {
	err := r.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		leaving := new(model.ChannelMember)
		err := tx.NewSelect().Model(leaving).
			Where("channel_id = ?", channelID).
			Where("user_id = ?", userID).
			For("UPDATE").
			Scan(ctx)
		if err != nil {
			return err
		}

		if leaving.Role == model.RoleOwner {
			next := new(model.ChannelMember)
			err := tx.NewSelect().Model(next).
				Where("channel_id = ?", channelID).
				Where("user_id != ?", userID).
				OrderExpr(roleRankExpr).
				Order("joined_at ASC").
				Limit(1).
				For("UPDATE").
				Scan(ctx)
			switch {
			case err == nil:
				if _, err := tx.NewUpdate().Model((*model.ChannelMember)(nil)).
					Set("role = ?", model.RoleOwner).
					Where("channel_id = ?", channelID).
					Where("user_id = ?", next.UserID).
					Exec(ctx); err != nil {
					return err
				}
			case pg.NoRows(err):
				// Sole owner leaving: the channel goes ownerless.
			default:
				return err
			}
		}

		_, err = tx.NewDelete().Model((*model.ChannelMember)(nil)).
			Where("channel_id = ?", channelID).
			Where("user_id = ?", userID).
			Exec(ctx)
		return err
	})
	if err != nil {
		if pg.NoRows(err) {
			return appErrors.ErrNotMember
		}
		return errors.Wrap(err, "chanRepo.RemoveMember: ")
	}
	return nil
}

func (r *ChannelRepository) ListPublicChannels(ctx context.Context) ([]*model.Channel, error) {
	var channels []*model.Channel
	err := r.db.NewSelect().Model(&channels).
		Where("is_private = FALSE").
		Order("created_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "chanRepo.ListPublicChannels.Scan: ")
	}
	return channels, nil
}

func (r *ChannelRepository) ListUserChannels(ctx context.Context, userID uuid.UUID) ([]*model.Channel, error) {
	var channels []*model.Channel
	err := r.db.NewSelect().Model(&channels).
		Join("JOIN channel_members AS cm ON cm.channel_id = channel.id").
		Where("cm.user_id = ?", userID).
		Order("channel.updated_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "chanRepo.ListUserChannels.Scan: ")
	}
	return channels, nil
}

func (r *ChannelRepository) CountMembers(ctx context.Context, channelID uuid.UUID) (int, error) {
	count, err := r.db.NewSelect().Model((*model.ChannelMember)(nil)).
		Where("channel_id = ?", channelID).
		Count(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "chanRepo.CountMembers: ")
	}
	return count, nil
}

func (r *ChannelRepository) SampleMembers(ctx context.Context, channelID uuid.UUID, limit int) ([]*model.ChannelMember, error) {
	var members []*model.ChannelMember
	err := r.db.NewSelect().Model(&members).
		Relation("User").
		Where("channel_id = ?", channelID).
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "chanRepo.SampleMembers.Scan: ")
	}
	return members, nil
}
