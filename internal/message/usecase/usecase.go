package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/appdotbuilder/hacker-chat/internal/channel"
	"github.com/appdotbuilder/hacker-chat/internal/message"
	"github.com/appdotbuilder/hacker-chat/internal/message/model"
	"github.com/appdotbuilder/hacker-chat/pkg/errors"
	"github.com/appdotbuilder/hacker-chat/pkg/logger"
	"github.com/appdotbuilder/hacker-chat/pkg/unfurl"
)

const (
	defaultPageSize = 50
	maxPageSize     = 100
)

type MessageUsecase struct {
	repo       message.MessageRepository
	membership channel.ChannelUsecase
	unfurler   unfurl.Unfurler
	logger     *logger.Logger
}

func NewMessageUsecase(repo message.MessageRepository, membership channel.ChannelUsecase,
	unfurler unfurl.Unfurler, logger *logger.Logger) *MessageUsecase {
	return &MessageUsecase{repo: repo, membership: membership, unfurler: unfurler, logger: logger}
}

func (uc *MessageUsecase) SendMessage(ctx context.Context, cmd message.SendMessageCommand) (*message.MessageDTO, error) {
	if !cmd.Type.Valid() {
		return nil, errors.ErrInvalidMessageType
	}
	// Image messages may arrive without a caption; for links the URL
	// itself lives in the content.
	if cmd.Type != model.TypeImage && strings.TrimSpace(cmd.Content) == "" {
		return nil, errors.ErrEmptyContent
	}

	isMember, err := uc.membership.IsMember(ctx, cmd.ChannelID, cmd.AuthorID)
	if err != nil {
		return nil, err
	}
	if !isMember {
		return nil, errors.ErrNotMember
	}

	if cmd.ReplyToID != nil {
		target, err := uc.repo.GetMessageInChannel(ctx, *cmd.ReplyToID, cmd.ChannelID)
		if err != nil {
			return nil, err
		}
		if target == nil {
			return nil, errors.ErrReplyTargetMissing
		}
	}

	msg := &model.Message{
		ChannelID: cmd.ChannelID,
		AuthorID:  cmd.AuthorID,
		Content:   cmd.Content,
		Type:      cmd.Type,
		ImageURL:  cmd.ImageURL,
		ReplyToID: cmd.ReplyToID,
	}

	if cmd.Type == model.TypeLink {
		// First URL in the content wins; no URL means no preview attempt.
		// A failed fetch still yields a preview carrying the URL with
		// empty metadata, same as a page that exposes none.
		if url := unfurl.FirstURL(cmd.Content); url != "" {
			preview := uc.unfurler.Unfurl(ctx, url)
			msg.LinkTitle = preview.Title
			msg.LinkDescription = preview.Description
			msg.LinkImage = preview.Image
			msg.LinkURL = &preview.URL
		}
	}

	if err := uc.repo.InsertMessage(ctx, msg); err != nil {
		uc.logger.Error("error while saving message in db", "err", err)
		return nil, err
	}

	return toMessageDTO(msg, 0), nil
}

func (uc *MessageUsecase) GetMessages(ctx context.Context, query message.GetMessagesQuery) ([]*message.MessageDTO, error) {
	isMember, err := uc.membership.IsMember(ctx, query.ChannelID, query.RequesterID)
	if err != nil {
		return nil, err
	}
	if !isMember {
		return nil, errors.ErrNotMember
	}

	limit := query.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	offset := query.Offset
	if offset < 0 {
		offset = 0
	}

	messages, err := uc.repo.ListMessages(ctx, query.ChannelID, limit, offset)
	if err != nil {
		return nil, err
	}
	return lo.Map(messages, toMessageDTO), nil
}

func (uc *MessageUsecase) UpdateMessage(ctx context.Context, messageID, requesterID uuid.UUID, newContent string) (*message.MessageDTO, error) {
	if strings.TrimSpace(newContent) == "" {
		return nil, errors.ErrEmptyContent
	}

	msg, err := uc.repo.UpdateContent(ctx, messageID, requesterID, newContent)
	if err != nil {
		return nil, err
	}
	if msg == nil {
		return nil, errors.ErrMessageNotEditable
	}
	return toMessageDTO(msg, 0), nil
}

func (uc *MessageUsecase) DeleteMessage(ctx context.Context, messageID, requesterID uuid.UUID) (*message.Result, error) {
	msg, err := uc.repo.GetMessageByID(ctx, messageID)
	if err != nil {
		return nil, err
	}
	if msg == nil {
		return nil, errors.ErrMessageNotFound
	}

	if msg.AuthorID != requesterID {
		role, isMember, err := uc.membership.RoleOf(ctx, msg.ChannelID, requesterID)
		if err != nil {
			return nil, err
		}
		if !isMember || !role.CanModerate() {
			return nil, errors.ErrMessageNotDeletable
		}
	}

	if err := uc.repo.DeleteMessage(ctx, messageID); err != nil {
		return nil, err
	}
	return &message.Result{Success: true, Message: "Message deleted"}, nil
}

func (uc *MessageUsecase) UnfurlLink(ctx context.Context, url string) unfurl.Preview {
	return uc.unfurler.Unfurl(ctx, url)
}

func toMessageDTO(msg *model.Message, _ int) *message.MessageDTO {
	dto := &message.MessageDTO{
		ID:        msg.ID,
		ChannelID: msg.ChannelID,
		Content:   msg.Content,
		Type:      msg.Type,
		ImageURL:  msg.ImageURL,
		ReplyToID: msg.ReplyToID,
		Edited:    msg.Edited,
		CreatedAt: msg.CreatedAt,
		UpdatedAt: msg.UpdatedAt,
	}
	if msg.Author != nil {
		dto.Author = message.AuthorDTO{
			ID:        msg.Author.ID,
			Username:  msg.Author.Username,
			AvatarURL: msg.Author.AvatarURL,
			IsOnline:  msg.Author.IsOnline,
		}
	}
	if msg.LinkURL != nil {
		dto.LinkPreview = &message.LinkPreviewDTO{
			Title:       msg.LinkTitle,
			Description: msg.LinkDescription,
			Image:       msg.LinkImage,
			URL:         *msg.LinkURL,
		}
	}
	return dto
}
