package bolt

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fastygo/jsonresponse/domain"
	"github.com/fastygo/jsonresponse/internal/infrastructure/boltdb"
)

func newRepo(t *testing.T, buckets ...string) *CatalogRepository {
	t.Helper()
	store, err := boltdb.Open(filepath.Join(t.TempDir(), "catalog.db"), buckets...)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return NewCatalogRepository(store)
}

func TestUsersRoundTrip(t *testing.T) {
	repo := newRepo(t, UsersBucket)
	ctx := context.Background()

	users, err := repo.ListUsers(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)

	alice := &domain.User{Name: "Alice", Email: "alice@example.com"}
	john := &domain.User{Name: "John"}
	require.NoError(t, repo.CreateUser(ctx, alice))
	require.NoError(t, repo.CreateUser(ctx, john))
	assert.NotEmpty(t, alice.ID)
	assert.False(t, alice.CreatedAt.IsZero())

	users, err = repo.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "Alice", users[0].Name)
	assert.Equal(t, "John", users[1].Name)

	got, err := repo.GetUser(ctx, john.ID)
	require.NoError(t, err)
	assert.Equal(t, john.ID, got.ID)
	assert.True(t, john.CreatedAt.Equal(got.CreatedAt))
}

func TestGetUserNotFound(t *testing.T) {
	repo := newRepo(t, UsersBucket)

	_, err := repo.GetUser(context.Background(), "missing")
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeNotFound))
}

func TestCreateUserRejectsInvalid(t *testing.T) {
	repo := newRepo(t, UsersBucket)

	err := repo.CreateUser(context.Background(), &domain.User{})
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeInvalid))
}

func TestListBooksWithoutBucket(t *testing.T) {
	repo := newRepo(t, UsersBucket)

	_, err := repo.ListBooks(context.Background())
	require.Error(t, err)
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeInternal))
	assert.Equal(t, "Couldn't fetch book list from database", domain.PublicMessage(err))
}

func TestPutAndListBooks(t *testing.T) {
	repo := newRepo(t)

	require.NoError(t, repo.PutBooks(
		domain.Book{ID: "b1", Title: "Dune", Author: "Frank Herbert", Year: 1965},
		domain.Book{Title: "Neuromancer", Author: "William Gibson"},
	))

	books, err := repo.ListBooks(context.Background())
	require.NoError(t, err)
	require.Len(t, books, 2)
	titles := []string{books[0].Title, books[1].Title}
	assert.ElementsMatch(t, []string{"Dune", "Neuromancer"}, titles)
}

func TestCancelledContext(t *testing.T) {
	repo := newRepo(t, UsersBucket)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.ListUsers(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
