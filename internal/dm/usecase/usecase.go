package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/appdotbuilder/hacker-chat/internal/channel"
	chanModel "github.com/appdotbuilder/hacker-chat/internal/channel/model"
	"github.com/appdotbuilder/hacker-chat/internal/dm"
	"github.com/appdotbuilder/hacker-chat/internal/user"
	userModel "github.com/appdotbuilder/hacker-chat/internal/user/model"
	"github.com/appdotbuilder/hacker-chat/pkg/errors"
	"github.com/appdotbuilder/hacker-chat/pkg/logger"
)

type DMUsecase struct {
	repo     dm.DMRepository
	chanRepo channel.ChannelRepository
	userRepo user.UserRepository
	logger   *logger.Logger
}

func NewDMUsecase(repo dm.DMRepository, chanRepo channel.ChannelRepository,
	userRepo user.UserRepository, logger *logger.Logger) *DMUsecase {
	return &DMUsecase{repo: repo, chanRepo: chanRepo, userRepo: userRepo, logger: logger}
}

func (uc *DMUsecase) GetOrCreatePrivateChat(ctx context.Context, userA, userB uuid.UUID) (*channel.ChannelDTO, error) {
	if userA == userB {
		return nil, errors.ErrSelfChat
	}

	for _, id := range []uuid.UUID{userA, userB} {
		exists, err := uc.userRepo.UserExists(ctx, id)
		if err != nil {
			return nil, errors.Internal("failed to resolve private chat")
		}
		if !exists {
			return nil, errors.ErrUserNotFound
		}
	}

	existing, err := uc.repo.FindPrivateChannelByMembers(ctx, userA, userB)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return toChannelDTO(existing), nil
	}

	key := chanModel.DMKeyFor(userA, userB)
	ch := &chanModel.Channel{
		Name:      "",
		IsPrivate: true,
		DMKey:     &key,
		CreatedBy: userA,
	}
	members := []*chanModel.ChannelMember{
		{UserID: userA, Role: chanModel.RoleOwner},
		{UserID: userB, Role: chanModel.RoleMember},
	}

	if err := uc.repo.CreatePrivateChat(ctx, ch, members); err != nil {
		// A concurrent call for the same pair hit the dm_key index first;
		// its channel is the one to return.
		if errors.CodeOf(err) == errors.CodeAlreadyExists {
			existing, ferr := uc.repo.FindPrivateChannelByMembers(ctx, userA, userB)
			if ferr == nil && existing != nil {
				return toChannelDTO(existing), nil
			}
		}
		uc.logger.Error("error while creating private chat", "err", err)
		return nil, err
	}

	return toChannelDTO(ch), nil
}

func (uc *DMUsecase) GetPrivateChats(ctx context.Context, userID uuid.UUID) ([]*dm.PrivateChatDTO, error) {
	channels, err := uc.repo.ListPrivateChannels(ctx, userID)
	if err != nil {
		return nil, err
	}

	chats := make([]*dm.PrivateChatDTO, 0, len(channels))
	for _, ch := range channels {
		others, err := uc.repo.ListOtherMembers(ctx, ch.ID, userID)
		if err != nil {
			return nil, err
		}
		if len(others) == 0 {
			// Should not happen while every private chat keeps two or
			// more members; skip rather than show a chat with nobody.
			uc.logger.Warn("private chat without counterpart", "channel_id", ch.ID)
			continue
		}

		chat := &dm.PrivateChatDTO{
			Channel:   *toChannelDTO(ch),
			OtherUser: toPublicProfile(others[0]),
		}

		last, err := uc.repo.LastMessage(ctx, ch.ID)
		if err != nil {
			return nil, err
		}
		if last != nil {
			chat.LastMessage = &dm.LastMessageDTO{Content: last.Content, CreatedAt: last.CreatedAt}
		}
		chats = append(chats, chat)
	}

	sort.Slice(chats, func(i, j int) bool {
		return activityTime(chats[i]).After(activityTime(chats[j]))
	})
	return chats, nil
}

func activityTime(chat *dm.PrivateChatDTO) time.Time {
	if chat.LastMessage != nil {
		return chat.LastMessage.CreatedAt
	}
	return chat.Channel.CreatedAt
}

func (uc *DMUsecase) GetPrivateChatUsers(ctx context.Context, channelID, requesterID uuid.UUID) ([]*user.PublicProfileDTO, error) {
	// Missing channel, public channel and non-membership all produce the
	// same error so outsiders cannot probe which chats exist.
	ch, err := uc.chanRepo.GetChannelByID(ctx, channelID)
	if err != nil {
		if errors.CodeOf(err) == errors.CodeNotFound {
			return nil, errors.ErrPrivateChatAccess
		}
		return nil, err
	}
	if !ch.IsPrivate {
		return nil, errors.ErrPrivateChatAccess
	}

	member, err := uc.chanRepo.GetMember(ctx, channelID, requesterID)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, errors.ErrPrivateChatAccess
	}

	others, err := uc.repo.ListOtherMembers(ctx, channelID, requesterID)
	if err != nil {
		return nil, err
	}
	profiles := make([]*user.PublicProfileDTO, 0, len(others))
	for _, u := range others {
		profiles = append(profiles, toPublicProfile(u))
	}
	return profiles, nil
}

func (uc *DMUsecase) AddUserToPrivateChat(ctx context.Context, channelID, requesterID, targetID uuid.UUID) (*dm.Result, error) {
	ch, err := uc.chanRepo.GetChannelByID(ctx, channelID)
	if err != nil {
		if errors.CodeOf(err) == errors.CodeNotFound {
			return &dm.Result{Success: false, Message: "no permission"}, nil
		}
		return nil, err
	}
	if !ch.IsPrivate {
		return &dm.Result{Success: false, Message: "no permission"}, nil
	}

	requester, err := uc.chanRepo.GetMember(ctx, channelID, requesterID)
	if err != nil {
		return nil, err
	}
	if requester == nil || !requester.Role.CanModerate() {
		return &dm.Result{Success: false, Message: "no permission"}, nil
	}

	exists, err := uc.userRepo.UserExists(ctx, targetID)
	if err != nil {
		return nil, errors.Internal("failed to add user to private chat")
	}
	if !exists {
		return &dm.Result{Success: false, Message: "user not found"}, nil
	}

	member := &chanModel.ChannelMember{
		ChannelID: channelID,
		UserID:    targetID,
		Role:      chanModel.RoleMember,
		JoinedAt:  time.Now(),
	}
	if err := uc.chanRepo.AddMember(ctx, member); err != nil {
		if errors.CodeOf(err) == errors.CodeAlreadyExists {
			return &dm.Result{Success: false, Message: "user is already a member of this chat"}, nil
		}
		return nil, err
	}

	// The member set is no longer a canonical pair; drop the dedup key so
	// the original two users can start a fresh 1:1 chat later.
	if err := uc.repo.ClearDMKey(ctx, channelID); err != nil {
		uc.logger.Warn("failed to clear dm key", "channel_id", channelID, "err", err)
	}

	return &dm.Result{Success: true, Message: "User added to private chat"}, nil
}

func toChannelDTO(ch *chanModel.Channel) *channel.ChannelDTO {
	return &channel.ChannelDTO{
		ID:            ch.ID,
		Name:          ch.Name,
		Description:   ch.Description,
		IsPrivate:     ch.IsPrivate,
		CreatedBy:     ch.CreatedBy,
		CreatedAt:     ch.CreatedAt,
		UpdatedAt:     ch.UpdatedAt,
		LastMessageAt: ch.LastMessageAt,
		MessageCount:  ch.MessageCount,
	}
}

func toPublicProfile(u *userModel.User) *user.PublicProfileDTO {
	return &user.PublicProfileDTO{
		ID:         u.ID,
		Username:   u.Username,
		AvatarURL:  u.AvatarURL,
		IsOnline:   u.IsOnline,
		LastSeenAt: u.LastSeenAt,
	}
}
