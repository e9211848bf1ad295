package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"account-service/internal/domain"
	"account-service/internal/repository"
)

func newTestRepos(t *testing.T) (repository.UserRepository, repository.ProfileRepository) {
	t.Helper()

	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	users := NewUserRepository(db)
	profiles := NewProfileRepository(db)
	require.NoError(t, users.Init(context.Background()))
	require.NoError(t, profiles.Init(context.Background()))
	return users, profiles
}

func TestCreateDuplicateUsername(t *testing.T) {
	users, _ := newTestRepos(t)
	ctx := context.Background()

	_, err := users.Create(ctx, &domain.User{Username: "alice", PasswordHash: "h", Active: true})
	require.NoError(t, err)

	_, err = users.Create(ctx, &domain.User{Username: "alice", PasswordHash: "h2", Active: true})
	assert.ErrorIs(t, err, repository.ErrDuplicateUsername)
}

func TestCreateWithProfile(t *testing.T) {
	users, profiles := newTestRepos(t)
	ctx := context.Background()

	user := &domain.User{Name: "Alice", Username: "alice", PasswordHash: "h", Active: true}
	profile, err := users.CreateWithProfile(ctx, user)
	require.NoError(t, err)
	require.NotZero(t, user.ID)
	assert.Equal(t, user.ID, profile.UserID)

	stored, err := profiles.GetByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.Biography)
	assert.Empty(t, stored.Github)
	assert.Empty(t, stored.Linkedin)
}

func TestCreateWithProfileDuplicateLeavesNoProfile(t *testing.T) {
	users, profiles := newTestRepos(t)
	ctx := context.Background()

	first := &domain.User{Username: "alice", PasswordHash: "h", Active: true}
	_, err := users.CreateWithProfile(ctx, first)
	require.NoError(t, err)

	second := &domain.User{Username: "alice", PasswordHash: "h2", Active: true}
	_, err = users.CreateWithProfile(ctx, second)
	assert.ErrorIs(t, err, repository.ErrDuplicateUsername)

	// the rolled-back registration must not have created a profile row
	_, err = profiles.GetByUserID(ctx, first.ID)
	assert.NoError(t, err)
	_, err = profiles.GetByUserID(ctx, first.ID+1)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestGetActiveByUsername(t *testing.T) {
	users, _ := newTestRepos(t)
	ctx := context.Background()

	_, err := users.Create(ctx, &domain.User{Username: "bob", PasswordHash: "h", Active: false})
	require.NoError(t, err)

	_, err = users.GetActiveByUsername(ctx, "bob")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	user, err := users.GetByUsername(ctx, "bob")
	require.NoError(t, err)
	assert.False(t, user.Active)
}

func TestUserUpdateOverwrites(t *testing.T) {
	users, _ := newTestRepos(t)
	ctx := context.Background()

	user := &domain.User{Name: "Bob", Username: "bob", PasswordHash: "h", Active: true}
	_, err := users.Create(ctx, user)
	require.NoError(t, err)

	user.Name = "Robert"
	user.Active = false
	require.NoError(t, users.Update(ctx, user))

	stored, err := users.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Robert", stored.Name)
	assert.False(t, stored.Active)
	assert.Equal(t, "bob", stored.Username)
}

func TestUpdateMissingUser(t *testing.T) {
	users, _ := newTestRepos(t)

	err := users.Update(context.Background(), &domain.User{ID: 999, Username: "ghost"})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestProfileCreateAndUpdate(t *testing.T) {
	users, profiles := newTestRepos(t)
	ctx := context.Background()

	user := &domain.User{Username: "carol", PasswordHash: "h", Active: true}
	_, err := users.Create(ctx, user)
	require.NoError(t, err)

	_, err = profiles.GetByUserID(ctx, user.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	profile, err := profiles.CreateForUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, profile.UserID)

	profile.Biography = "gopher"
	profile.Github = "carol"
	require.NoError(t, profiles.Update(ctx, profile))

	stored, err := profiles.GetByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "gopher", stored.Biography)
	assert.Equal(t, "carol", stored.Github)
	assert.Empty(t, stored.Linkedin)
}
