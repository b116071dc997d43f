//go:generate go run github.com/golang/mock/mockgen -source=usecase.go -destination=mocks/mock_usecase.go -package=mocks
package channel

import (
	"context"

	"github.com/google/uuid"

	"github.com/appdotbuilder/hacker-chat/internal/channel/model"
)

type ChannelUsecase interface {
	// CreateChannel inserts the channel with the creator as owner. For a
	// private channel, initial members are added as plain members; the
	// creator's own id and unknown ids are silently skipped.
	CreateChannel(ctx context.Context, cmd CreateChannelCommand) (*ChannelDTO, error)

	// JoinChannel reports expected refusals (missing channel, private
	// channel, already a member) through the Result; an unknown user is a
	// raised NotFound.
	JoinChannel(ctx context.Context, channelID, userID uuid.UUID) (*Result, error)

	// LeaveChannel transfers ownership before the owner's row is removed
	// when other members remain. A sole owner leaving makes the channel
	// ownerless.
	LeaveChannel(ctx context.Context, channelID, userID uuid.UUID) (*Result, error)

	GetChannelMembers(ctx context.Context, channelID, requesterID uuid.UUID) ([]*MemberDTO, error)
	GetPublicChannels(ctx context.Context) ([]*ChannelWithMembersDTO, error)
	GetUserChannels(ctx context.Context, userID uuid.UUID) ([]*ChannelWithMembersDTO, error)

	// Authorization predicates consumed by the message engine and the
	// private-chat resolver.
	IsMember(ctx context.Context, channelID, userID uuid.UUID) (bool, error)
	RoleOf(ctx context.Context, channelID, userID uuid.UUID) (model.Role, bool, error)
}
