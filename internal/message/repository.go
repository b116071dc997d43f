//go:generate go run github.com/golang/mock/mockgen -source=repository.go -destination=mocks/mock_repository.go -package=mocks
package message

import (
	"context"

	"github.com/google/uuid"

	"github.com/appdotbuilder/hacker-chat/internal/message/model"
)

type MessageRepository interface {
	// InsertMessage stores the message and bumps the channel's
	// last-message time, message count and updated time in one
	// transaction, then reloads the row with its author.
	InsertMessage(ctx context.Context, msg *model.Message) error

	// GetMessageByID returns (nil, nil) when the message does not exist.
	GetMessageByID(ctx context.Context, id uuid.UUID) (*model.Message, error)

	// GetMessageInChannel returns (nil, nil) when no message with that id
	// lives in that channel. Used for reply target validation.
	GetMessageInChannel(ctx context.Context, id, channelID uuid.UUID) (*model.Message, error)

	// ListMessages returns messages with authors, newest first, as a
	// plain offset/limit window.
	ListMessages(ctx context.Context, channelID uuid.UUID, limit, offset int) ([]*model.Message, error)

	// UpdateContent edits the message only when authorID matches; it
	// returns (nil, nil) when no row matched, which covers both a missing
	// message and someone else's message.
	UpdateContent(ctx context.Context, messageID, authorID uuid.UUID, content string) (*model.Message, error)

	DeleteMessage(ctx context.Context, messageID uuid.UUID) error
}
