package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/appdotbuilder/hacker-chat/internal/channel"
	"github.com/appdotbuilder/hacker-chat/internal/channel/model"
	"github.com/appdotbuilder/hacker-chat/internal/user"
	"github.com/appdotbuilder/hacker-chat/pkg/errors"
	"github.com/appdotbuilder/hacker-chat/pkg/logger"
)

// sampleMembersLimit caps the member preview attached to channel listings.
const sampleMembersLimit = 5

type ChannelUsecase struct {
	repo     channel.ChannelRepository
	userRepo user.UserRepository
	logger   *logger.Logger
}

func NewChannelUsecase(repo channel.ChannelRepository, userRepo user.UserRepository, logger *logger.Logger) *ChannelUsecase {
	return &ChannelUsecase{repo: repo, userRepo: userRepo, logger: logger}
}

func (uc *ChannelUsecase) CreateChannel(ctx context.Context, cmd channel.CreateChannelCommand) (*channel.ChannelDTO, error) {
	exists, err := uc.userRepo.UserExists(ctx, cmd.CreatorID)
	if err != nil {
		uc.logger.Error("database error checking creator", "err", err)
		return nil, errors.Internal("failed to create channel")
	}
	if !exists {
		return nil, errors.ErrUserNotFound
	}

	members := []*model.ChannelMember{{UserID: cmd.CreatorID, Role: model.RoleOwner}}
	if cmd.IsPrivate {
		for _, id := range cmd.InitialMemberIDs {
			if id == cmd.CreatorID {
				continue
			}
			ok, err := uc.userRepo.UserExists(ctx, id)
			if err != nil {
				uc.logger.Error("database error checking initial member", "err", err)
				return nil, errors.Internal("failed to create channel")
			}
			if !ok {
				continue
			}
			members = append(members, &model.ChannelMember{UserID: id, Role: model.RoleMember})
		}
	}

	ch := &model.Channel{
		Name:        cmd.Name,
		Description: cmd.Description,
		IsPrivate:   cmd.IsPrivate,
		CreatedBy:   cmd.CreatorID,
	}
	if err := uc.repo.CreateChannelWithMembers(ctx, ch, members); err != nil {
		uc.logger.Error("error while saving channel in db", "err", err)
		return nil, err
	}

	return toChannelDTO(ch), nil
}

func (uc *ChannelUsecase) JoinChannel(ctx context.Context, channelID, userID uuid.UUID) (*channel.Result, error) {
	exists, err := uc.userRepo.UserExists(ctx, userID)
	if err != nil {
		return nil, errors.Internal("failed to join channel")
	}
	if !exists {
		return nil, errors.ErrUserNotFound
	}

	ch, err := uc.repo.GetChannelByID(ctx, channelID)
	if err != nil {
		if errors.CodeOf(err) == errors.CodeNotFound {
			return &channel.Result{Success: false, Message: "Channel not found"}, nil
		}
		return nil, err
	}
	if ch.IsPrivate {
		return &channel.Result{Success: false, Message: "Cannot join private channel without invitation"}, nil
	}

	member := &model.ChannelMember{
		ChannelID: channelID,
		UserID:    userID,
		Role:      model.RoleMember,
		JoinedAt:  time.Now(),
	}
	if err := uc.repo.AddMember(ctx, member); err != nil {
		// Concurrent joins race on the composite primary key; the loser
		// lands here and is reported exactly like a repeat join.
		if errors.CodeOf(err) == errors.CodeAlreadyExists {
			return &channel.Result{Success: false, Message: "Already a member of this channel"}, nil
		}
		return nil, err
	}

	return &channel.Result{Success: true, Message: "Joined channel"}, nil
}

func (uc *ChannelUsecase) LeaveChannel(ctx context.Context, channelID, userID uuid.UUID) (*channel.Result, error) {
	member, err := uc.repo.GetMember(ctx, channelID, userID)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return &channel.Result{Success: false, Message: "Not a member of this channel"}, nil
	}

	if err := uc.repo.RemoveMember(ctx, channelID, userID); err != nil {
		if errors.Is(err, errors.ErrNotMember) {
			// Lost a race with another leave of the same row.
			return &channel.Result{Success: false, Message: "Not a member of this channel"}, nil
		}
		return nil, err
	}

	return &channel.Result{Success: true, Message: "Left channel"}, nil
}

func (uc *ChannelUsecase) GetChannelMembers(ctx context.Context, channelID, requesterID uuid.UUID) ([]*channel.MemberDTO, error) {
	isMember, err := uc.IsMember(ctx, channelID, requesterID)
	if err != nil {
		return nil, err
	}
	if !isMember {
		return nil, errors.ErrNotMember
	}

	members, err := uc.repo.ListMembers(ctx, channelID)
	if err != nil {
		return nil, err
	}
	return lo.Map(members, toMemberDTO), nil
}

func (uc *ChannelUsecase) GetPublicChannels(ctx context.Context) ([]*channel.ChannelWithMembersDTO, error) {
	channels, err := uc.repo.ListPublicChannels(ctx)
	if err != nil {
		return nil, err
	}
	return uc.withMembers(ctx, channels)
}

func (uc *ChannelUsecase) GetUserChannels(ctx context.Context, userID uuid.UUID) ([]*channel.ChannelWithMembersDTO, error) {
	exists, err := uc.userRepo.UserExists(ctx, userID)
	if err != nil {
		return nil, errors.Internal("failed to list channels")
	}
	if !exists {
		return nil, errors.ErrUserNotFound
	}

	channels, err := uc.repo.ListUserChannels(ctx, userID)
	if err != nil {
		return nil, err
	}
	return uc.withMembers(ctx, channels)
}

func (uc *ChannelUsecase) IsMember(ctx context.Context, channelID, userID uuid.UUID) (bool, error) {
	member, err := uc.repo.GetMember(ctx, channelID, userID)
	if err != nil {
		return false, err
	}
	return member != nil, nil
}

// RoleOf returns the member's role and whether a membership exists.
func (uc *ChannelUsecase) RoleOf(ctx context.Context, channelID, userID uuid.UUID) (model.Role, bool, error) {
	member, err := uc.repo.GetMember(ctx, channelID, userID)
	if err != nil {
		return "", false, err
	}
	if member == nil {
		return "", false, nil
	}
	return member.Role, true, nil
}

func (uc *ChannelUsecase) withMembers(ctx context.Context, channels []*model.Channel) ([]*channel.ChannelWithMembersDTO, error) {
	result := make([]*channel.ChannelWithMembersDTO, 0, len(channels))
	for _, ch := range channels {
		count, err := uc.repo.CountMembers(ctx, ch.ID)
		if err != nil {
			return nil, err
		}
		sample, err := uc.repo.SampleMembers(ctx, ch.ID, sampleMembersLimit)
		if err != nil {
			return nil, err
		}
		result = append(result, &channel.ChannelWithMembersDTO{
			ChannelDTO:  *toChannelDTO(ch),
			MemberCount: count,
			Members:     lo.Map(sample, toMemberDTO),
		})
	}
	return result, nil
}

func toChannelDTO(ch *model.Channel) *channel.ChannelDTO {
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

func toMemberDTO(m *model.ChannelMember, _ int) *channel.MemberDTO {
	dto := &channel.MemberDTO{
		ID:   m.UserID,
		Role: m.Role,
	}
	if m.User != nil {
		dto.Username = m.User.Username
		dto.AvatarURL = m.User.AvatarURL
		dto.IsOnline = m.User.IsOnline
	}
	return dto
}
