//go:generate go run github.com/golang/mock/mockgen -source=repository.go -destination=mocks/mock_repository.go -package=mocks
package dm

import (
	"context"

	"github.com/google/uuid"

	chanModel "github.com/appdotbuilder/hacker-chat/internal/channel/model"
	msgModel "github.com/appdotbuilder/hacker-chat/internal/message/model"
	userModel "github.com/appdotbuilder/hacker-chat/internal/user/model"
)

type DMRepository interface {
	// FindPrivateChannelByMembers returns the private channel whose
	// member set is exactly {a, b}, or (nil, nil) when none exists.
	// Symmetric in argument order.
	FindPrivateChannelByMembers(ctx context.Context, a, b uuid.UUID) (*chanModel.Channel, error)

	// CreatePrivateChat inserts the channel and both member rows in one
	// transaction. The dm_key unique index turns a concurrent duplicate
	// create into CodeAlreadyExists, which the caller resolves by
	// re-running the lookup.
	CreatePrivateChat(ctx context.Context, ch *chanModel.Channel, members []*chanModel.ChannelMember) error

	// ListPrivateChannels returns all private channels the user belongs to.
	ListPrivateChannels(ctx context.Context, userID uuid.UUID) ([]*chanModel.Channel, error)

	// ListOtherMembers returns the channel's member users minus userID.
	ListOtherMembers(ctx context.Context, channelID, userID uuid.UUID) ([]*userModel.User, error)

	// LastMessage returns (nil, nil) when the channel has no messages.
	LastMessage(ctx context.Context, channelID uuid.UUID) (*msgModel.Message, error)

	// ClearDMKey drops the canonical pair key once a chat grows beyond
	// its original two members.
	ClearDMKey(ctx context.Context, channelID uuid.UUID) error
}
