package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/appdotbuilder/hacker-chat/config"
	"github.com/appdotbuilder/hacker-chat/internal/channel"
	"github.com/appdotbuilder/hacker-chat/internal/dm"
	"github.com/appdotbuilder/hacker-chat/internal/message"
	"github.com/appdotbuilder/hacker-chat/internal/user"
	"github.com/appdotbuilder/hacker-chat/pkg/auth"
	appErrors "github.com/appdotbuilder/hacker-chat/pkg/errors"
	"github.com/appdotbuilder/hacker-chat/pkg/logger"
)

type contextKey string

const userKey contextKey = "user"

// Server is the thin HTTP layer: decode request, resolve the caller,
// call the usecase, encode the response. No domain rules live here.
type Server struct {
	config    *config.Config
	logger    *logger.Logger
	userUC    user.UserUsecase
	channelUC channel.ChannelUsecase
	messageUC message.MessageUsecase
	dmUC      dm.DMUsecase
}

func New(cfg *config.Config, log *logger.Logger, userUC user.UserUsecase,
	channelUC channel.ChannelUsecase, messageUC message.MessageUsecase, dmUC dm.DMUsecase) *Server {
	return &Server{
		config:    cfg,
		logger:    log,
		userUC:    userUC,
		channelUC: channelUC,
		messageUC: messageUC,
		dmUC:      dmUC,
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /auth/register", s.handleRegister)
	mux.HandleFunc("POST /auth/login", s.handleLogin)

	protected := func(h http.HandlerFunc) http.HandlerFunc { return s.withUser(h) }

	mux.HandleFunc("POST /auth/logout", protected(s.handleLogout))
	mux.HandleFunc("GET /me", protected(s.handleGetCurrentUser))
	mux.HandleFunc("PUT /me", protected(s.handleUpdateProfile))
	mux.HandleFunc("PUT /me/status", protected(s.handleUpdateStatus))

	mux.HandleFunc("GET /users", protected(s.handleGetAllUsers))
	mux.HandleFunc("GET /users/online", protected(s.handleGetOnlineUsers))
	mux.HandleFunc("GET /users/search", protected(s.handleSearchUsers))

	mux.HandleFunc("POST /channels", protected(s.handleCreateChannel))
	mux.HandleFunc("GET /channels", protected(s.handleGetUserChannels))
	mux.HandleFunc("GET /channels/public", protected(s.handleGetPublicChannels))
	mux.HandleFunc("POST /channels/{id}/join", protected(s.handleJoinChannel))
	mux.HandleFunc("POST /channels/{id}/leave", protected(s.handleLeaveChannel))
	mux.HandleFunc("GET /channels/{id}/members", protected(s.handleGetChannelMembers))

	mux.HandleFunc("POST /channels/{id}/messages", protected(s.handleSendMessage))
	mux.HandleFunc("GET /channels/{id}/messages", protected(s.handleGetMessages))
	mux.HandleFunc("PUT /messages/{id}", protected(s.handleUpdateMessage))
	mux.HandleFunc("DELETE /messages/{id}", protected(s.handleDeleteMessage))
	mux.HandleFunc("GET /unfurl", protected(s.handleUnfurlLink))

	mux.HandleFunc("POST /dms", protected(s.handleCreatePrivateChat))
	mux.HandleFunc("GET /dms", protected(s.handleGetPrivateChats))
	mux.HandleFunc("GET /dms/{id}/users", protected(s.handleGetPrivateChatUsers))
	mux.HandleFunc("POST /dms/{id}/users", protected(s.handleAddUserToPrivateChat))

	return mux
}

// withUser validates the bearer token and stores the resolved user id in
// the request context. Core operations always receive the caller id as
// an explicit argument; the context is transport plumbing only.
func (s *Server) withUser(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			s.respondError(w, appErrors.Unauthorized("missing bearer token"))
			return
		}

		claims, err := auth.ValidateToken(token, s.config)
		if err != nil {
			s.respondError(w, err)
			return
		}

		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			s.respondError(w, appErrors.ErrInvalidToken)
			return
		}

		next(w, r.WithContext(context.WithValue(r.Context(), userKey, userID)))
	}
}

func callerID(r *http.Request) uuid.UUID {
	id, _ := r.Context().Value(userKey).(uuid.UUID)
	return id
}

func pathID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return uuid.Nil, appErrors.InvalidArg("invalid id in path")
	}
	return id, nil
}

func decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return appErrors.InvalidArg("invalid request body")
	}
	return nil
}

func (s *Server) respond(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to encode response", "err", err)
	}
}

func (s *Server) respondError(w http.ResponseWriter, err error) {
	var appErr *appErrors.AppError
	if !appErrors.As(err, &appErr) {
		s.logger.Error("unhandled error", "err", err)
		s.respond(w, http.StatusInternalServerError,
			map[string]string{"code": string(appErrors.CodeInternal), "message": "internal server error"})
		return
	}
	s.respond(w, statusFor(appErr.Code), appErr)
}

func statusFor(code appErrors.Code) int {
	switch code {
	case appErrors.CodeInvalidArgument:
		return http.StatusBadRequest
	case appErrors.CodeNotFound:
		return http.StatusNotFound
	case appErrors.CodeAlreadyExists:
		return http.StatusConflict
	case appErrors.CodePermissionDenied:
		return http.StatusForbidden
	case appErrors.CodeUnauthenticated:
		return http.StatusUnauthorized
	case appErrors.CodeFailedPrecondition:
		return http.StatusPreconditionFailed
	default:
		return http.StatusInternalServerError
	}
}
