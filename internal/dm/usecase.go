package dm

import (
	"context"

	"github.com/google/uuid"

	"github.com/appdotbuilder/hacker-chat/internal/channel"
	"github.com/appdotbuilder/hacker-chat/internal/user"
)

type DMUsecase interface {
	// GetOrCreatePrivateChat finds the private channel whose member set
	// is exactly {userA, userB}, creating it when absent (userA becomes
	// owner, userB member). Symmetric; an existing chat is returned
	// untouched.
	GetOrCreatePrivateChat(ctx context.Context, userA, userB uuid.UUID) (*channel.ChannelDTO, error)

	// GetPrivateChats lists the user's private conversations with the
	// counterpart profile and latest message, most recent activity first.
	GetPrivateChats(ctx context.Context, userID uuid.UUID) ([]*PrivateChatDTO, error)

	// GetPrivateChatUsers returns the other members' public profiles.
	// Missing channel, public channel and non-membership all collapse
	// into the same access error.
	GetPrivateChatUsers(ctx context.Context, channelID, requesterID uuid.UUID) ([]*user.PublicProfileDTO, error)

	// AddUserToPrivateChat grows a private chat beyond two members.
	// Requires owner or admin; expected refusals come back as a Result.
	AddUserToPrivateChat(ctx context.Context, channelID, requesterID, targetID uuid.UUID) (*Result, error)
}
