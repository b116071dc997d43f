package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	chanModel "github.com/appdotbuilder/hacker-chat/internal/channel/model"
	"github.com/appdotbuilder/hacker-chat/internal/message/model"
	"github.com/appdotbuilder/hacker-chat/pkg/logger"
	"github.com/appdotbuilder/hacker-chat/pkg/pg"
)

type MessageRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

func NewMessageRepository(db *bun.DB, logger *logger.Logger) *MessageRepository {
	return &MessageRepository{db: db, logger: logger}
}

func (r *MessageRepository) InsertMessage(ctx context.Context, msg *model.Message) error {
	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewInsert().Model(msg).Returning("*").Exec(ctx); err != nil {
			return err
		}
		_, err := tx.NewUpdate().Model((*chanModel.Channel)(nil)).
			Set("last_message_at = ?", msg.CreatedAt).
			Set("message_count = message_count + 1").
			Set("updated_at = current_timestamp").
			Where("id = ?", msg.ChannelID).
			Exec(ctx)
		return err
	})
	if err != nil {
		return errors.Wrap(err, "msgRepo.InsertMessage: ")
	}

	// Reload with the author joined so the caller can project it.
	return r.db.NewSelect().Model(msg).
		Relation("Author").
		Where("message.id = ?", msg.ID).
		Scan(ctx)
}

func (r *MessageRepository) GetMessageByID(ctx context.Context, id uuid.UUID) (*model.Message, error) {
	msg := new(model.Message)
	err := r.db.NewSelect().Model(msg).
		Relation("Author").
		Where("message.id = ?", id).
		Scan(ctx)
	if err != nil {
		if pg.NoRows(err) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "msgRepo.GetMessageByID.Scan: ")
	}
	return msg, nil
}

func (r *MessageRepository) GetMessageInChannel(ctx context.Context, id, channelID uuid.UUID) (*model.Message, error) {
	msg := new(model.Message)
	err := r.db.NewSelect().Model(msg).
		Where("id = ?", id).
		Where("channel_id = ?", channelID).
		Scan(ctx)
	if err != nil {
		if pg.NoRows(err) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "msgRepo.GetMessageInChannel.Scan: ")
	}
	return msg, nil
}

func (r *MessageRepository) ListMessages(ctx context.Context, channelID uuid.UUID, limit, offset int) ([]*model.Message, error) {
	var messages []*model.Message
	err := r.db.NewSelect().Model(&messages).
		Relation("Author").
		Where("channel_id = ?", channelID).
		Order("message.created_at DESC").
		Limit(limit).
		Offset(offset).
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "msgRepo.ListMessages.Scan: ")
	}
	return messages, nil
}

func (r *MessageRepository) UpdateContent(ctx context.Context, messageID, authorID uuid.UUID, content string) (*model.Message, error) {
	res, err := r.db.NewUpdate().Model((*model.Message)(nil)).
		Set("content = ?", content).
		Set("edited = TRUE").
		Set("updated_at = current_timestamp").
		Where("id = ?", messageID).
		Where("author_id = ?", authorID).
		Exec(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "msgRepo.UpdateContent.Update: ")
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return nil, nil
	}
	return r.GetMessageByID(ctx, messageID)
}

func (r *MessageRepository) DeleteMessage(ctx context.Context, messageID uuid.UUID) error {
	_, err := r.db.NewDelete().Model((*model.Message)(nil)).
		Where("id = ?", messageID).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "msgRepo.DeleteMessage: ")
	}
	return nil
}
