package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appdotbuilder/hacker-chat/config"
	"github.com/appdotbuilder/hacker-chat/internal/channel"
	chanMocks "github.com/appdotbuilder/hacker-chat/internal/channel/mocks"
	"github.com/appdotbuilder/hacker-chat/pkg/auth"
	appErrors "github.com/appdotbuilder/hacker-chat/pkg/errors"
	"github.com/appdotbuilder/hacker-chat/pkg/logger"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpiredIn = 15
	cfg.JWT.RefreshExpiredIn = 1440
	return cfg
}

func newTestServer(t *testing.T) (*Server, *chanMocks.MockChannelUsecase, *config.Config) {
	t.Helper()
	ctrl := gomock.NewController(t)
	channelUC := chanMocks.NewMockChannelUsecase(ctrl)
	cfg := testConfig()
	log, _ := logger.NewLogger(cfg)
	return New(cfg, log, nil, channelUC, nil, nil), channelUC, cfg
}

func bearerFor(t *testing.T, userID uuid.UUID, cfg *config.Config) string {
	t.Helper()
	token, _, err := auth.GenerateJWTToken(userID.String(), "tester", cfg)
	require.NoError(t, err)
	return "Bearer " + token
}

func Test_Authentication(t *testing.T) {
	t.Run("missing token is 401", func(t *testing.T) {
		srv, _, _ := newTestServer(t)

		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/channels", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("garbage token is 401", func(t *testing.T) {
		srv, _, _ := newTestServer(t)

		req := httptest.NewRequest(http.MethodGet, "/channels", nil)
		req.Header.Set("Authorization", "Bearer not.a.token")
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token reaches the usecase with the caller id", func(t *testing.T) {
		srv, channelUC, cfg := newTestServer(t)

		userID := uuid.New()
		channelUC.EXPECT().
			GetUserChannels(gomock.Any(), userID).
			Return([]*channel.ChannelWithMembersDTO{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/channels", nil)
		req.Header.Set("Authorization", bearerFor(t, userID, cfg))
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	})
}

func Test_ErrorMapping(t *testing.T) {
	userID := uuid.New()
	channelID := uuid.New()

	cases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"forbidden", appErrors.ErrNotMember, http.StatusForbidden},
		{"not found", appErrors.ErrChannelNotFound, http.StatusNotFound},
		{"conflict", appErrors.ErrAlreadyMember, http.StatusConflict},
		{"bad request", appErrors.InvalidArg("nope"), http.StatusBadRequest},
		{"internal", appErrors.Internal("boom"), http.StatusInternalServerError},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			srv, channelUC, cfg := newTestServer(t)

			channelUC.EXPECT().
				GetChannelMembers(gomock.Any(), channelID, userID).
				Return(nil, c.err)

			req := httptest.NewRequest(http.MethodGet, "/channels/"+channelID.String()+"/members", nil)
			req.Header.Set("Authorization", bearerFor(t, userID, cfg))
			rec := httptest.NewRecorder()
			srv.Handler().ServeHTTP(rec, req)

			assert.Equal(t, c.wantStatus, rec.Code)

			var body map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.NotEmpty(t, body["message"])
		})
	}
}

func Test_PathValidation(t *testing.T) {
	srv, _, cfg := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/channels/not-a-uuid/join", nil)
	req.Header.Set("Authorization", bearerFor(t, uuid.New(), cfg))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func Test_JoinChannelResult(t *testing.T) {
	srv, channelUC, cfg := newTestServer(t)

	userID := uuid.New()
	channelID := uuid.New()
	channelUC.EXPECT().
		JoinChannel(gomock.Any(), channelID, userID).
		Return(&channel.Result{Success: false, Message: "Already a member of this channel"}, nil)

	req := httptest.NewRequest(http.MethodPost, "/channels/"+channelID.String()+"/join", nil)
	req.Header.Set("Authorization", bearerFor(t, userID, cfg))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	// Result payloads are not faults: the transport answers 200 and the
	// body carries the outcome.
	assert.Equal(t, http.StatusOK, rec.Code)

	var result channel.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.False(t, result.Success)
	assert.Equal(t, "Already a member of this channel", result.Message)
}
