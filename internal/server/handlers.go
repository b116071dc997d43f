package server

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/appdotbuilder/hacker-chat/internal/channel"
	"github.com/appdotbuilder/hacker-chat/internal/message"
	msgModel "github.com/appdotbuilder/hacker-chat/internal/message/model"
	"github.com/appdotbuilder/hacker-chat/internal/user"
	appErrors "github.com/appdotbuilder/hacker-chat/pkg/errors"
)

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var cmd user.RegisterCommand
	if err := decode(r, &cmd); err != nil {
		s.respondError(w, err)
		return
	}

	result, err := s.userUC.Register(r.Context(), cmd)
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respond(w, http.StatusOK, result)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var cmd user.LoginCommand
	if err := decode(r, &cmd); err != nil {
		s.respondError(w, err)
		return
	}

	result, err := s.userUC.Login(r.Context(), cmd)
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respond(w, http.StatusOK, result)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if err := s.userUC.Logout(r.Context(), callerID(r)); err != nil {
		s.respondError(w, err)
		return
	}
	s.respond(w, http.StatusOK, map[string]bool{"success": true})
}

func (s *Server) handleGetCurrentUser(w http.ResponseWriter, r *http.Request) {
	u, err := s.userUC.GetCurrentUser(r.Context(), callerID(r))
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respond(w, http.StatusOK, u)
}

func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var cmd user.UpdateProfileCommand
	if err := decode(r, &cmd); err != nil {
		s.respondError(w, err)
		return
	}

	u, err := s.userUC.UpdateProfile(r.Context(), callerID(r), cmd)
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respond(w, http.StatusOK, u)
}

func (s *Server) handleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	var body struct {
		IsOnline bool `json:"is_online"`
	}
	if err := decode(r, &body); err != nil {
		s.respondError(w, err)
		return
	}

	if err := s.userUC.UpdateStatus(r.Context(), callerID(r), body.IsOnline); err != nil {
		s.respondError(w, err)
		return
	}
	s.respond(w, http.StatusOK, map[string]bool{"success": true})
}

func (s *Server) handleGetAllUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.userUC.GetAllUsers(r.Context())
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respond(w, http.StatusOK, users)
}

func (s *Server) handleGetOnlineUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.userUC.GetOnlineUsers(r.Context())
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respond(w, http.StatusOK, users)
}

func (s *Server) handleSearchUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.userUC.SearchUsers(r.Context(), r.URL.Query().Get("q"), callerID(r))
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respond(w, http.StatusOK, users)
}

func (s *Server) handleCreateChannel(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name             string      `json:"name"`
		Description      *string     `json:"description"`
		IsPrivate        bool        `json:"is_private"`
		InitialMemberIDs []uuid.UUID `json:"initial_member_ids"`
	}
	if err := decode(r, &body); err != nil {
		s.respondError(w, err)
		return
	}

	ch, err := s.channelUC.CreateChannel(r.Context(), channel.CreateChannelCommand{
		Name:             body.Name,
		Description:      body.Description,
		IsPrivate:        body.IsPrivate,
		InitialMemberIDs: body.InitialMemberIDs,
		CreatorID:        callerID(r),
	})
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respond(w, http.StatusCreated, ch)
}

func (s *Server) handleGetUserChannels(w http.ResponseWriter, r *http.Request) {
	channels, err := s.channelUC.GetUserChannels(r.Context(), callerID(r))
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respond(w, http.StatusOK, channels)
}

func (s *Server) handleGetPublicChannels(w http.ResponseWriter, r *http.Request) {
	channels, err := s.channelUC.GetPublicChannels(r.Context())
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respond(w, http.StatusOK, channels)
}

func (s *Server) handleJoinChannel(w http.ResponseWriter, r *http.Request) {
	channelID, err := pathID(r)
	if err != nil {
		s.respondError(w, err)
		return
	}

	result, err := s.channelUC.JoinChannel(r.Context(), channelID, callerID(r))
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respond(w, http.StatusOK, result)
}

func (s *Server) handleLeaveChannel(w http.ResponseWriter, r *http.Request) {
	channelID, err := pathID(r)
	if err != nil {
		s.respondError(w, err)
		return
	}

	result, err := s.channelUC.LeaveChannel(r.Context(), channelID, callerID(r))
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respond(w, http.StatusOK, result)
}

func (s *Server) handleGetChannelMembers(w http.ResponseWriter, r *http.Request) {
	channelID, err := pathID(r)
	if err != nil {
		s.respondError(w, err)
		return
	}

	members, err := s.channelUC.GetChannelMembers(r.Context(), channelID, callerID(r))
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respond(w, http.StatusOK, members)
}

func (s *Server) handleSendMessage(w http.ResponseWriter, r *http.Request) {
	channelID, err := pathID(r)
	if err != nil {
		s.respondError(w, err)
		return
	}

	var body struct {
		Content   string     `json:"content"`
		Type      string     `json:"type"`
		ImageURL  *string    `json:"image_url"`
		ReplyToID *uuid.UUID `json:"reply_to_message_id"`
	}
	if err := decode(r, &body); err != nil {
		s.respondError(w, err)
		return
	}
	if body.Type == "" {
		body.Type = string(msgModel.TypeText)
	}

	msg, err := s.messageUC.SendMessage(r.Context(), message.SendMessageCommand{
		ChannelID: channelID,
		AuthorID:  callerID(r),
		Content:   body.Content,
		Type:      msgModel.MessageType(body.Type),
		ImageURL:  body.ImageURL,
		ReplyToID: body.ReplyToID,
	})
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respond(w, http.StatusCreated, msg)
}

func (s *Server) handleGetMessages(w http.ResponseWriter, r *http.Request) {
	channelID, err := pathID(r)
	if err != nil {
		s.respondError(w, err)
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	messages, err := s.messageUC.GetMessages(r.Context(), message.GetMessagesQuery{
		ChannelID:   channelID,
		RequesterID: callerID(r),
		Limit:       limit,
		Offset:      offset,
	})
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respond(w, http.StatusOK, messages)
}

func (s *Server) handleUpdateMessage(w http.ResponseWriter, r *http.Request) {
	messageID, err := pathID(r)
	if err != nil {
		s.respondError(w, err)
		return
	}

	var body struct {
		Content string `json:"content"`
	}
	if err := decode(r, &body); err != nil {
		s.respondError(w, err)
		return
	}

	msg, err := s.messageUC.UpdateMessage(r.Context(), messageID, callerID(r), body.Content)
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respond(w, http.StatusOK, msg)
}

func (s *Server) handleDeleteMessage(w http.ResponseWriter, r *http.Request) {
	messageID, err := pathID(r)
	if err != nil {
		s.respondError(w, err)
		return
	}

	result, err := s.messageUC.DeleteMessage(r.Context(), messageID, callerID(r))
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respond(w, http.StatusOK, result)
}

func (s *Server) handleUnfurlLink(w http.ResponseWriter, r *http.Request) {
	url := r.URL.Query().Get("url")
	if url == "" {
		s.respondError(w, appErrors.InvalidArg("url query parameter is required"))
		return
	}
	s.respond(w, http.StatusOK, s.messageUC.UnfurlLink(r.Context(), url))
}

func (s *Server) handleCreatePrivateChat(w http.ResponseWriter, r *http.Request) {
	var body struct {
		UserID uuid.UUID `json:"user_id"`
	}
	if err := decode(r, &body); err != nil {
		s.respondError(w, err)
		return
	}

	ch, err := s.dmUC.GetOrCreatePrivateChat(r.Context(), callerID(r), body.UserID)
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respond(w, http.StatusOK, ch)
}

func (s *Server) handleGetPrivateChats(w http.ResponseWriter, r *http.Request) {
	chats, err := s.dmUC.GetPrivateChats(r.Context(), callerID(r))
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respond(w, http.StatusOK, chats)
}

func (s *Server) handleGetPrivateChatUsers(w http.ResponseWriter, r *http.Request) {
	channelID, err := pathID(r)
	if err != nil {
		s.respondError(w, err)
		return
	}

	users, err := s.dmUC.GetPrivateChatUsers(r.Context(), channelID, callerID(r))
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respond(w, http.StatusOK, users)
}

func (s *Server) handleAddUserToPrivateChat(w http.ResponseWriter, r *http.Request) {
	channelID, err := pathID(r)
	if err != nil {
		s.respondError(w, err)
		return
	}

	var body struct {
		UserID uuid.UUID `json:"user_id"`
	}
	if err := decode(r, &body); err != nil {
		s.respondError(w, err)
		return
	}

	result, err := s.dmUC.AddUserToPrivateChat(r.Context(), channelID, callerID(r), body.UserID)
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respond(w, http.StatusOK, result)
}
