package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/uniprompt/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLikedPromptRepo_AddHasRemove(t *testing.T) {
	repo := NewSQLiteLikedPromptRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	has, err := repo.Has(ctx, "p1")
	require.NoError(t, err)
	assert.False(t, has)

	require.NoError(t, repo.Add(ctx, "p1", time.Now()))
	has, err = repo.Has(ctx, "p1")
	require.NoError(t, err)
	assert.True(t, has)

	require.NoError(t, repo.Remove(ctx, "p1"))
	has, err = repo.Has(ctx, "p1")
	require.NoError(t, err)
	assert.False(t, has)
}

func TestLikedPromptRepo_AddTwiceIsNoop(t *testing.T) {
	repo := NewSQLiteLikedPromptRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, "p1", time.Now()))
	require.NoError(t, repo.Add(ctx, "p1", time.Now()))

	ids, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"p1"}, ids)
}

func TestLikedPromptRepo_ListInLikeOrder(t *testing.T) {
	repo := NewSQLiteLikedPromptRepo(testutil.NewTestDB(t))
	ctx := context.Background()
	base := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Add(ctx, "b", base.Add(time.Minute)))
	require.NoError(t, repo.Add(ctx, "a", base))

	ids, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, ids)
}

func TestLikedPromptRepo_RemoveMissingIsNoop(t *testing.T) {
	repo := NewSQLiteLikedPromptRepo(testutil.NewTestDB(t))
	assert.NoError(t, repo.Remove(context.Background(), "never-liked"))
}
