package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/hirewire/hirewire/internal/auth/domain"
	"github.com/hirewire/hirewire/internal/auth/store"
	"github.com/hirewire/hirewire/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	dsn := "file:" + filepath.Join(t.TempDir(), "auth.db")
	s, err := NewStore(dsn)
	require.NoError(t, err)
	require.NoError(t, s.ApplyMigrations())

	t.Cleanup(func() { _ = s.Close() })
	return s
}

func testUser(subjectID string) domain.User {
	return domain.User{
		ID:           idx.New().String(),
		SubjectID:    subjectID,
		DisplayName:  "Test User",
		PasswordHash: "$2a$10$notarealhashbutopaque",
	}
}

func TestUsersRepo_CreateAndGet(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	u := testUser("alice@example.com")
	require.NoError(t, s.Users().Create(ctx, u))

	got, err := s.Users().GetBySubjectID(ctx, "alice@example.com")
	require.NoError(t, err)
	require.Equal(t, u.ID, got.ID)
	require.Equal(t, u.SubjectID, got.SubjectID)
	require.Equal(t, u.DisplayName, got.DisplayName)
	require.Equal(t, u.PasswordHash, got.PasswordHash)
	require.False(t, got.CreatedAt.IsZero())

	byID, err := s.Users().GetByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, u.SubjectID, byID.SubjectID)
}

func TestUsersRepo_NotFound(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.Users().GetBySubjectID(ctx, "ghost@example.com")
	require.ErrorIs(t, err, store.ErrNotFound)

	_, err = s.Users().GetByID(ctx, "missing-id")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestUsersRepo_ExistsBySubjectID(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	exists, err := s.Users().ExistsBySubjectID(ctx, "alice@example.com")
	require.NoError(t, err)
	require.False(t, exists)

	require.NoError(t, s.Users().Create(ctx, testUser("alice@example.com")))

	exists, err = s.Users().ExistsBySubjectID(ctx, "alice@example.com")
	require.NoError(t, err)
	require.True(t, exists)
}

func TestUsersRepo_DuplicateSubjectID(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Users().Create(ctx, testUser("alice@example.com")))

	// Same subject id, different primary id: the UNIQUE constraint is the
	// backstop for concurrent registration races.
	err := s.Users().Create(ctx, testUser("alice@example.com"))
	require.ErrorIs(t, err, store.ErrAlreadyExists)
}

func TestStore_Ping(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Ping(context.Background()))
}
