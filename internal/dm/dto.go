package dm

import (
	"time"

	"github.com/appdotbuilder/hacker-chat/internal/channel"
	"github.com/appdotbuilder/hacker-chat/internal/user"
)

type LastMessageDTO struct {
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type PrivateChatDTO struct {
	Channel     channel.ChannelDTO     `json:"channel"`
	OtherUser   *user.PublicProfileDTO `json:"other_user"`
	LastMessage *LastMessageDTO        `json:"last_message,omitempty"`
}

type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
