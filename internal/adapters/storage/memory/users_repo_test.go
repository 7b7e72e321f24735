package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"urban-people/internal/domain/users"
)

func user(name string, rating int) users.User {
	return users.User{
		Name:   name,
		Rating: rating,
		Luck:   5,
		Pet:    users.Pet{Type: string(users.KindCat), Name: "pet-" + name},
	}
}

func names(t *testing.T, repo users.Repository) []string {
	t.Helper()
	all, err := repo.List(context.Background())
	require.NoError(t, err)
	out := make([]string, 0, len(all))
	for _, u := range all {
		out = append(out, u.Name)
	}
	return out
}

func TestUserRepo_AppendKeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepo()

	for i, n := range []string{"A", "B", "C"} {
		require.NoError(t, repo.Append(ctx, user(n, i)))
	}
	require.NoError(t, repo.Append(ctx, user("D", 9)))

	assert.Equal(t, []string{"A", "B", "C", "D"}, names(t, repo))
}

func TestUserRepo_ReplaceInPlaceWithRename(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepo()
	for _, n := range []string{"A", "B", "C"} {
		require.NoError(t, repo.Append(ctx, user(n, 1)))
	}

	require.NoError(t, repo.Replace(ctx, "B", user("Z", 42)))

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "Z", "C"}, names(t, repo))
	assert.Equal(t, 42, all[1].Rating)
}

func TestUserRepo_ReplaceNotFound(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepo()
	require.NoError(t, repo.Append(ctx, user("A", 1)))

	err := repo.Replace(ctx, "missing", user("Z", 1))
	assert.ErrorIs(t, err, users.ErrNotFound)
	assert.Equal(t, []string{"A"}, names(t, repo))
}

func TestUserRepo_DeleteReturnsRemoved(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepo()
	for i, n := range []string{"A", "B", "C"} {
		require.NoError(t, repo.Append(ctx, user(n, i+1)))
	}

	removed, err := repo.Delete(ctx, "B")
	require.NoError(t, err)
	assert.Equal(t, "B", removed.Name)
	assert.Equal(t, 2, removed.Rating)
	assert.Equal(t, []string{"A", "C"}, names(t, repo))

	_, err = repo.Delete(ctx, "B")
	assert.ErrorIs(t, err, users.ErrNotFound)
	assert.Equal(t, []string{"A", "C"}, names(t, repo))
}

func TestUserRepo_DuplicatesResolveToFirstMatch(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepo()
	require.NoError(t, repo.Append(ctx, user("A", 1)))
	require.NoError(t, repo.Append(ctx, user("A", 2)))

	removed, err := repo.Delete(ctx, "A")
	require.NoError(t, err)
	assert.Equal(t, 1, removed.Rating)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, 2, all[0].Rating)
}

func TestUserRepo_ListReturnsCopy(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepo()
	require.NoError(t, repo.Append(ctx, user("A", 1)))

	all, err := repo.List(ctx)
	require.NoError(t, err)
	all[0].Name = "mutated"

	assert.Equal(t, []string{"A"}, names(t, repo))
}

func TestUserRepo_ConcurrentAppends(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepo()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = repo.Append(ctx, user("u", i))
		}(i)
	}
	wg.Wait()

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 50)
}
