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

	"github.com/appdotbuilder/hacker-chat/internal/channel/model"
	msgModels "github.com/appdotbuilder/hacker-chat/internal/message/model"
	userModels "github.com/appdotbuilder/hacker-chat/internal/user/model"
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

	tables := []any{
		(*userModels.User)(nil),
		(*model.Channel)(nil),
		(*model.ChannelMember)(nil),
		(*msgModels.Message)(nil),
	}
	for _, t := range tables {
		if _, err := testDB.NewCreateTable().Model(t).IfNotExists().WithForeignKeys().Exec(ctx); err != nil {
			testDB.Close()
			log.Fatalf("failed to create table for %T: %v", t, err)
		}
	}

	code := m.Run()

	testDB.Close()

	os.Exit(code)
}

func truncateAll(t *testing.T) {
	t.Helper()
	_, err := testDB.ExecContext(context.Background(),
		`TRUNCATE TABLE messages, channel_members, channels, users RESTART IDENTITY CASCADE`)
	require.NoError(t, err)
}

func createTestUser(t *testing.T, username string) *userModels.User {
	t.Helper()
	u := &userModels.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "x",
	}
	_, err := testDB.NewInsert().Model(u).Returning("*").Exec(context.Background())
	require.NoError(t, err)
	return u
}

func Test_CreateChannelWithMembers(t *testing.T) {
	t.Cleanup(func() { truncateAll(t) })

	owner := createTestUser(t, "owner")
	invited := createTestUser(t, "invited")
	repo := NewChannelRepository(testDB, &logger.Logger{})

	ch := &model.Channel{Name: "general", CreatedBy: owner.ID}
	members := []*model.ChannelMember{
		{UserID: owner.ID, Role: model.RoleOwner},
		{UserID: invited.ID, Role: model.RoleMember},
	}
	require.NoError(t, repo.CreateChannelWithMembers(t.Context(), ch, members))
	assert.NotEqual(t, uuid.Nil, ch.ID)

	fetched, err := repo.GetChannelByID(t.Context(), ch.ID)
	require.NoError(t, err)
	assert.Equal(t, "general", fetched.Name)
	assert.False(t, fetched.CreatedAt.IsZero())

	count, err := repo.CountMembers(t.Context(), ch.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func Test_GetChannelByID_NotFound(t *testing.T) {
	repo := NewChannelRepository(testDB, &logger.Logger{})

	_, err := repo.GetChannelByID(t.Context(), uuid.New())
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrChannelNotFound, err)
}

func Test_AddMember(t *testing.T) {
	t.Cleanup(func() { truncateAll(t) })

	owner := createTestUser(t, "owner")
	joiner := createTestUser(t, "joiner")
	repo := NewChannelRepository(testDB, &logger.Logger{})

	ch := &model.Channel{Name: "general", CreatedBy: owner.ID}
	require.NoError(t, repo.CreateChannelWithMembers(t.Context(), ch,
		[]*model.ChannelMember{{UserID: owner.ID, Role: model.RoleOwner}}))

	t.Run("joining sets membership", func(t *testing.T) {
		err := repo.AddMember(t.Context(), &model.ChannelMember{
			ChannelID: ch.ID, UserID: joiner.ID, Role: model.RoleMember, JoinedAt: time.Now(),
		})
		require.NoError(t, err)

		member, err := repo.GetMember(t.Context(), ch.ID, joiner.ID)
		require.NoError(t, err)
		require.NotNil(t, member)
		assert.Equal(t, model.RoleMember, member.Role)
	})

	t.Run("second join hits the composite key", func(t *testing.T) {
		err := repo.AddMember(t.Context(), &model.ChannelMember{
			ChannelID: ch.ID, UserID: joiner.ID, Role: model.RoleMember, JoinedAt: time.Now(),
		})
		require.Error(t, err)
		assert.Equal(t, appErrors.ErrAlreadyMember, err)
	})

	t.Run("absent membership is nil without error", func(t *testing.T) {
		member, err := repo.GetMember(t.Context(), ch.ID, uuid.New())
		require.NoError(t, err)
		assert.Nil(t, member)
	})
}

func Test_ListMembers_Ordering(t *testing.T) {
	t.Cleanup(func() { truncateAll(t) })

	owner := createTestUser(t, "zoe")
	admin := createTestUser(t, "adam")
	memberB := createTestUser(t, "bob")
	memberA := createTestUser(t, "alice")
	repo := NewChannelRepository(testDB, &logger.Logger{})

	ch := &model.Channel{Name: "general", CreatedBy: owner.ID}
	require.NoError(t, repo.CreateChannelWithMembers(t.Context(), ch, []*model.ChannelMember{
		{UserID: owner.ID, Role: model.RoleOwner},
		{UserID: admin.ID, Role: model.RoleAdmin},
		{UserID: memberB.ID, Role: model.RoleMember},
		{UserID: memberA.ID, Role: model.RoleMember},
	}))

	members, err := repo.ListMembers(t.Context(), ch.ID)
	require.NoError(t, err)
	require.Len(t, members, 4)

	// Owner first, admins next, members alphabetically after that.
	assert.Equal(t, owner.ID, members[0].UserID)
	assert.Equal(t, admin.ID, members[1].UserID)
	assert.Equal(t, "alice", members[2].User.Username)
	assert.Equal(t, "bob", members[3].User.Username)
}

func Test_RemoveMember(t *testing.T) {
	repo := NewChannelRepository(testDB, &logger.Logger{})

	t.Run("owner leave promotes the earliest admin", func(t *testing.T) {
		t.Cleanup(func() { truncateAll(t) })

		owner := createTestUser(t, "owner")
		admin := createTestUser(t, "admin")
		member := createTestUser(t, "member")

		base := time.Now().Add(-time.Hour)
		ch := &model.Channel{Name: "general", CreatedBy: owner.ID}
		require.NoError(t, repo.CreateChannelWithMembers(t.Context(), ch, []*model.ChannelMember{
			{UserID: owner.ID, Role: model.RoleOwner, JoinedAt: base},
			// The member joined before the admin; role outranks seniority.
			{UserID: member.ID, Role: model.RoleMember, JoinedAt: base.Add(time.Minute)},
			{UserID: admin.ID, Role: model.RoleAdmin, JoinedAt: base.Add(2 * time.Minute)},
		}))

		require.NoError(t, repo.RemoveMember(t.Context(), ch.ID, owner.ID))

		gone, err := repo.GetMember(t.Context(), ch.ID, owner.ID)
		require.NoError(t, err)
		assert.Nil(t, gone)

		promoted, err := repo.GetMember(t.Context(), ch.ID, admin.ID)
		require.NoError(t, err)
		require.NotNil(t, promoted)
		assert.Equal(t, model.RoleOwner, promoted.Role)

		unchanged, err := repo.GetMember(t.Context(), ch.ID, member.ID)
		require.NoError(t, err)
		assert.Equal(t, model.RoleMember, unchanged.Role)
	})

	t.Run("without admins the earliest member is promoted", func(t *testing.T) {
		t.Cleanup(func() { truncateAll(t) })

		owner := createTestUser(t, "owner")
		early := createTestUser(t, "early")
		late := createTestUser(t, "late")

		base := time.Now().Add(-time.Hour)
		ch := &model.Channel{Name: "general", CreatedBy: owner.ID}
		require.NoError(t, repo.CreateChannelWithMembers(t.Context(), ch, []*model.ChannelMember{
			{UserID: owner.ID, Role: model.RoleOwner, JoinedAt: base},
			{UserID: early.ID, Role: model.RoleMember, JoinedAt: base.Add(time.Minute)},
			{UserID: late.ID, Role: model.RoleMember, JoinedAt: base.Add(2 * time.Minute)},
		}))

		require.NoError(t, repo.RemoveMember(t.Context(), ch.ID, owner.ID))

		promoted, err := repo.GetMember(t.Context(), ch.ID, early.ID)
		require.NoError(t, err)
		assert.Equal(t, model.RoleOwner, promoted.Role)
	})

	t.Run("last member leaving empties the channel but keeps it", func(t *testing.T) {
		t.Cleanup(func() { truncateAll(t) })

		owner := createTestUser(t, "owner")
		ch := &model.Channel{Name: "general", CreatedBy: owner.ID}
		require.NoError(t, repo.CreateChannelWithMembers(t.Context(), ch,
			[]*model.ChannelMember{{UserID: owner.ID, Role: model.RoleOwner}}))

		require.NoError(t, repo.RemoveMember(t.Context(), ch.ID, owner.ID))

		count, err := repo.CountMembers(t.Context(), ch.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, count)

		_, err = repo.GetChannelByID(t.Context(), ch.ID)
		assert.NoError(t, err)
	})

	t.Run("removing a non-member fails", func(t *testing.T) {
		t.Cleanup(func() { truncateAll(t) })

		owner := createTestUser(t, "owner")
		ch := &model.Channel{Name: "general", CreatedBy: owner.ID}
		require.NoError(t, repo.CreateChannelWithMembers(t.Context(), ch,
			[]*model.ChannelMember{{UserID: owner.ID, Role: model.RoleOwner}}))

		err := repo.RemoveMember(t.Context(), ch.ID, uuid.New())
		require.Error(t, err)
		assert.Equal(t, appErrors.ErrNotMember, err)
	})
}

func Test_ChannelListings(t *testing.T) {
	t.Cleanup(func() { truncateAll(t) })

	owner := createTestUser(t, "owner")
	outsider := createTestUser(t, "outsider")
	repo := NewChannelRepository(testDB, &logger.Logger{})

	public := &model.Channel{Name: "general", CreatedBy: owner.ID}
	require.NoError(t, repo.CreateChannelWithMembers(t.Context(), public,
		[]*model.ChannelMember{{UserID: owner.ID, Role: model.RoleOwner}}))

	private := &model.Channel{Name: "secret", IsPrivate: true, CreatedBy: owner.ID}
	require.NoError(t, repo.CreateChannelWithMembers(t.Context(), private,
		[]*model.ChannelMember{{UserID: owner.ID, Role: model.RoleOwner}}))

	t.Run("public listing hides private channels", func(t *testing.T) {
		channels, err := repo.ListPublicChannels(t.Context())
		require.NoError(t, err)
		require.Len(t, channels, 1)
		assert.Equal(t, public.ID, channels[0].ID)
	})

	t.Run("user listing includes private memberships", func(t *testing.T) {
		channels, err := repo.ListUserChannels(t.Context(), owner.ID)
		require.NoError(t, err)
		assert.Len(t, channels, 2)

		none, err := repo.ListUserChannels(t.Context(), outsider.ID)
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("sample members respects the limit", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			u := createTestUser(t, "extra"+string(rune('a'+i)))
			require.NoError(t, repo.AddMember(t.Context(), &model.ChannelMember{
				ChannelID: public.ID, UserID: u.ID, Role: model.RoleMember, JoinedAt: time.Now(),
			}))
		}

		sample, err := repo.SampleMembers(t.Context(), public.ID, 2)
		require.NoError(t, err)
		assert.Len(t, sample, 2)
	})
}
