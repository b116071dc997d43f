package message

import (
	"time"

	"github.com/google/uuid"

	"github.com/appdotbuilder/hacker-chat/internal/message/model"
)

// Input commands
type SendMessageCommand struct {
	ChannelID uuid.UUID
	AuthorID  uuid.UUID
	Content   string
	Type      model.MessageType
	ImageURL  *string
	ReplyToID *uuid.UUID
}

type GetMessagesQuery struct {
	ChannelID   uuid.UUID
	RequesterID uuid.UUID
	Limit       int // clamped to 1..100, default 50
	Offset      int // floored at 0
}

// Output DTOs
type AuthorDTO struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	AvatarURL *string   `json:"avatar_url,omitempty"`
	IsOnline  bool      `json:"is_online"`
}

type LinkPreviewDTO struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
	URL         string  `json:"url"`
}

type MessageDTO struct {
	ID          uuid.UUID         `json:"id"`
	ChannelID   uuid.UUID         `json:"channel_id"`
	Author      AuthorDTO         `json:"author"`
	Content     string            `json:"content"`
	Type        model.MessageType `json:"type"`
	ImageURL    *string           `json:"image_url,omitempty"`
	LinkPreview *LinkPreviewDTO   `json:"link_preview,omitempty"`
	ReplyToID   *uuid.UUID        `json:"reply_to_message_id,omitempty"`
	Edited      bool              `json:"edited"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
