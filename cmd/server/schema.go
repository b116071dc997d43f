package main

import (
	"context"

	"github.com/uptrace/bun"

	chanModels "github.com/appdotbuilder/hacker-chat/internal/channel/model"
	msgModels "github.com/appdotbuilder/hacker-chat/internal/message/model"
	userModels "github.com/appdotbuilder/hacker-chat/internal/user/model"
)

// createSchema brings up tables and indexes for a fresh database.
// All statements are idempotent so restarts are safe.
func createSchema(ctx context.Context, db *bun.DB) error {
	models := []any{
		(*userModels.User)(nil),
		(*chanModels.Channel)(nil),
		(*chanModels.ChannelMember)(nil),
		(*msgModels.Message)(nil),
	}

	for _, model := range models {
		if _, err := db.NewCreateTable().
			Model(model).
			IfNotExists().
			WithForeignKeys().
			Exec(ctx); err != nil {
			return err
		}
	}

	indexes := []struct {
		name    string
		model   any
		columns []string
	}{
		{"idx_messages_channel_created", (*msgModels.Message)(nil), []string{"channel_id", "created_at"}},
		{"idx_channel_members_user", (*chanModels.ChannelMember)(nil), []string{"user_id"}},
		{"idx_messages_reply_to", (*msgModels.Message)(nil), []string{"reply_to_id"}},
	}

	for _, idx := range indexes {
		if _, err := db.NewCreateIndex().
			Model(idx.model).
			IfNotExists().
			Index(idx.name).
			Column(idx.columns...).
			Exec(ctx); err != nil {
			return err
		}
	}

	return nil
}
