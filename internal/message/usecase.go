package message

import (
	"context"

	"github.com/google/uuid"

	"github.com/appdotbuilder/hacker-chat/pkg/unfurl"
)

type MessageUsecase interface {
	// SendMessage validates membership and the reply target, resolves a
	// link preview for type=link (best effort, failures swallowed) and
	// persists the message.
	SendMessage(ctx context.Context, cmd SendMessageCommand) (*MessageDTO, error)

	GetMessages(ctx context.Context, query GetMessagesQuery) ([]*MessageDTO, error)

	// UpdateMessage edits content. Only the author may edit; the error
	// for a missing message and a foreign message is identical.
	UpdateMessage(ctx context.Context, messageID, requesterID uuid.UUID, newContent string) (*MessageDTO, error)

	// DeleteMessage removes the message permanently. Allowed for the
	// author and for channel owners/admins.
	DeleteMessage(ctx context.Context, messageID, requesterID uuid.UUID) (*Result, error)

	// UnfurlLink exposes the preview collaborator directly; it never fails.
	UnfurlLink(ctx context.Context, url string) unfurl.Preview
}
