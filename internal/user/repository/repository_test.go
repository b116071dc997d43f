package repository

import (
	"context"
	"database/sql"
	"log"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	models "github.com/appdotbuilder/hacker-chat/internal/user/model"
	appErrors "github.com/appdotbuilder/hacker-chat/pkg/errors"
	"github.com/appdotbuilder/hacker-chat/pkg/logger"
)

var testDB *bun.DB

func TestMain(m *testing.M) {
	ctx := context.Background()

	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("hackerchat"),
		postgres.WithUsername("hackerchat"),
		postgres.WithPassword("password"),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		log.Printf("failed to start container: %s", err)
		return
	}
	defer func() {
		if err := postgresContainer.Terminate(ctx); err != nil {
			log.Printf("failed to terminate container: %s", err)
		}
	}()

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable", "application_name=test")
	if err != nil {
		log.Printf("failed to get connection string: %v", err)
		return
	}

	connector := pgdriver.NewConnector(pgdriver.WithDSN(connStr))
	sqlDB := sql.OpenDB(connector)
	testDB = bun.NewDB(sqlDB, pgdialect.New())

	if err := sqlDB.PingContext(ctx); err != nil {
		log.Fatalf("failed to ping db: %v", err)
	}

	if _, err := testDB.NewCreateTable().Model((*models.User)(nil)).IfNotExists().Exec(ctx); err != nil {
		testDB.Close()
		log.Fatalf("failed to create users table: %v", err)
	}

	code := m.Run()

	testDB.Close()

	os.Exit(code)
}

func truncateUsers(t *testing.T) {
	t.Helper()
	_, err := testDB.ExecContext(context.Background(), `TRUNCATE TABLE users RESTART IDENTITY CASCADE`)
	require.NoError(t, err)
}

func newUser(username string) *models.User {
	return &models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "x",
	}
}

func Test_CreateUser(t *testing.T) {
	t.Cleanup(func() { truncateUsers(t) })

	repo := NewUserRepository(testDB, &logger.Logger{})

	u := newUser("alice")
	require.NoError(t, repo.CreateUser(t.Context(), u))
	assert.NotEqual(t, uuid.Nil, u.ID)
	assert.False(t, u.CreatedAt.IsZero())

	t.Run("duplicate username rejected", func(t *testing.T) {
		dup := newUser("alice")
		dup.Email = "other@example.com"
		err := repo.CreateUser(t.Context(), dup)
		require.Error(t, err)
		assert.Equal(t, appErrors.CodeAlreadyExists, appErrors.CodeOf(err))
	})

	t.Run("duplicate email rejected", func(t *testing.T) {
		dup := newUser("bob")
		dup.Email = "alice@example.com"
		err := repo.CreateUser(t.Context(), dup)
		require.Error(t, err)
		assert.Equal(t, appErrors.CodeAlreadyExists, appErrors.CodeOf(err))
	})
}

func Test_Lookups(t *testing.T) {
	t.Cleanup(func() { truncateUsers(t) })

	repo := NewUserRepository(testDB, &logger.Logger{})
	u := newUser("alice")
	require.NoError(t, repo.CreateUser(t.Context(), u))

	t.Run("by id", func(t *testing.T) {
		got, err := repo.GetUserByID(t.Context(), u.ID)
		require.NoError(t, err)
		assert.Equal(t, "alice", got.Username)
	})

	t.Run("by username", func(t *testing.T) {
		got, err := repo.GetUserByUsername(t.Context(), "alice")
		require.NoError(t, err)
		assert.Equal(t, u.ID, got.ID)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := repo.GetUserByID(t.Context(), uuid.New())
		assert.Equal(t, appErrors.ErrUserNotFound, err)
	})

	t.Run("existence checks", func(t *testing.T) {
		exists, err := repo.UserExists(t.Context(), u.ID)
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = repo.UsernameExists(t.Context(), "nobody")
		require.NoError(t, err)
		assert.False(t, exists)

		exists, err = repo.EmailExists(t.Context(), "alice@example.com")
		require.NoError(t, err)
		assert.True(t, exists)
	})
}

func Test_SetPresence(t *testing.T) {
	t.Cleanup(func() { truncateUsers(t) })

	repo := NewUserRepository(testDB, &logger.Logger{})
	u := newUser("alice")
	require.NoError(t, repo.CreateUser(t.Context(), u))

	now := time.Now()
	require.NoError(t, repo.SetPresence(t.Context(), u.ID, true, now))

	got, err := repo.GetUserByID(t.Context(), u.ID)
	require.NoError(t, err)
	assert.True(t, got.IsOnline)
	require.NotNil(t, got.LastSeenAt)
	assert.WithinDuration(t, now, *got.LastSeenAt, time.Second)

	require.NoError(t, repo.SetPresence(t.Context(), u.ID, false, now))
	got, err = repo.GetUserByID(t.Context(), u.ID)
	require.NoError(t, err)
	assert.False(t, got.IsOnline)

	t.Run("unknown user is a no-op", func(t *testing.T) {
		assert.NoError(t, repo.SetPresence(t.Context(), uuid.New(), false, now))
	})
}

func Test_ListOnlineUsers(t *testing.T) {
	t.Cleanup(func() { truncateUsers(t) })

	repo := NewUserRepository(testDB, &logger.Logger{})

	base := time.Now().Add(-time.Hour)
	for i, name := range []string{"alice", "bob", "carol"} {
		u := newUser(name)
		require.NoError(t, repo.CreateUser(t.Context(), u))
		require.NoError(t, repo.SetPresence(t.Context(), u.ID, true, base.Add(time.Duration(i)*time.Minute)))
	}
	offline := newUser("dave")
	require.NoError(t, repo.CreateUser(t.Context(), offline))

	users, err := repo.ListOnlineUsers(t.Context(), 10)
	require.NoError(t, err)
	require.Len(t, users, 3)
	// Most recently seen first.
	assert.Equal(t, "carol", users[0].Username)
	assert.Equal(t, "alice", users[2].Username)

	capped, err := repo.ListOnlineUsers(t.Context(), 2)
	require.NoError(t, err)
	assert.Len(t, capped, 2)
}

func Test_SearchUsers(t *testing.T) {
	t.Cleanup(func() { truncateUsers(t) })

	repo := NewUserRepository(testDB, &logger.Logger{})

	self := newUser("malice")
	require.NoError(t, repo.CreateUser(t.Context(), self))
	for _, name := range []string{"alice", "ALISTAIR", "bob"} {
		require.NoError(t, repo.CreateUser(t.Context(), newUser(name)))
	}

	t.Run("case-insensitive substring match", func(t *testing.T) {
		users, err := repo.SearchUsers(t.Context(), "ali", self.ID, 10)
		require.NoError(t, err)
		require.Len(t, users, 2)
		names := []string{users[0].Username, users[1].Username}
		assert.ElementsMatch(t, []string{"ALISTAIR", "alice"}, names)
	})

	t.Run("caller never sees themselves", func(t *testing.T) {
		users, err := repo.SearchUsers(t.Context(), "malice", self.ID, 10)
		require.NoError(t, err)
		assert.Empty(t, users)
	})

	t.Run("wildcards match literally", func(t *testing.T) {
		require.NoError(t, repo.CreateUser(t.Context(), newUser("under_score")))

		users, err := repo.SearchUsers(t.Context(), "%", self.ID, 10)
		require.NoError(t, err)
		assert.Empty(t, users)

		users, err = repo.SearchUsers(t.Context(), "r_s", self.ID, 10)
		require.NoError(t, err)
		require.Len(t, users, 1)
		assert.Equal(t, "under_score", users[0].Username)
	})
}

func Test_UpdateUserProfile(t *testing.T) {
	t.Cleanup(func() { truncateUsers(t) })

	repo := NewUserRepository(testDB, &logger.Logger{})
	u := newUser("alice")
	require.NoError(t, repo.CreateUser(t.Context(), u))

	t.Run("rename", func(t *testing.T) {
		name := "alicia"
		require.NoError(t, repo.UpdateUserProfile(t.Context(), u.ID, &name, nil))

		got, err := repo.GetUserByID(t.Context(), u.ID)
		require.NoError(t, err)
		assert.Equal(t, "alicia", got.Username)
	})

	t.Run("rename onto a taken username", func(t *testing.T) {
		other := newUser("bob")
		require.NoError(t, repo.CreateUser(t.Context(), other))

		taken := "alicia"
		err := repo.UpdateUserProfile(t.Context(), other.ID, &taken, nil)
		require.Error(t, err)
		assert.Equal(t, appErrors.ErrUsernameTaken, err)
	})

	t.Run("unknown user", func(t *testing.T) {
		name := "ghost"
		err := repo.UpdateUserProfile(t.Context(), uuid.New(), &name, nil)
		assert.Equal(t, appErrors.ErrUserNotFound, err)
	})
}
