//go:generate go run github.com/golang/mock/mockgen -source=repository.go -destination=mocks/mock_repository.go -package=mocks
package channel

import (
	"context"

	"github.com/google/uuid"

	"github.com/appdotbuilder/hacker-chat/internal/channel/model"
)

type ChannelRepository interface {
	// CreateChannelWithMembers inserts the channel and all member rows in
	// one transaction.
	CreateChannelWithMembers(ctx context.Context, ch *model.Channel, members []*model.ChannelMember) error

	GetChannelByID(ctx context.Context, id uuid.UUID) (*model.Channel, error)

	// AddMember returns pkg/errors CodeAlreadyExists when the
	// (channel, user) pair is already present; concurrent joins lose the
	// race against the composite primary key, never by duplicating rows.
	AddMember(ctx context.Context, member *model.ChannelMember) error

	// GetMember returns (nil, nil) when the user is not a member.
	GetMember(ctx context.Context, channelID, userID uuid.UUID) (*model.ChannelMember, error)

	// ListMembers loads members with their user rows, ordered by role
	// rank (owner, admin, member) then username.
	ListMembers(ctx context.Context, channelID uuid.UUID) ([]*model.ChannelMember, error)

	// RemoveMember deletes the membership row and, when the leaving user
	// owns the channel and other members remain, promotes the next member
	// (by role rank, then earliest join) to owner in the same transaction.
	RemoveMember(ctx context.Context, channelID, userID uuid.UUID) error

	ListPublicChannels(ctx context.Context) ([]*model.Channel, error)
	ListUserChannels(ctx context.Context, userID uuid.UUID) ([]*model.Channel, error)

	CountMembers(ctx context.Context, channelID uuid.UUID) (int, error)
	SampleMembers(ctx context.Context, channelID uuid.UUID, limit int) ([]*model.ChannelMember, error)
}
