package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/uniprompt/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSharedPromptRepo(t *testing.T) *SQLiteSharedPromptRepo {
	t.Helper()
	return NewSQLiteSharedPromptRepo(testutil.NewTestDB(t))
}

func TestSharedPromptRepo_CreateAndGetByID(t *testing.T) {
	repo := newSharedPromptRepo(t)
	ctx := context.Background()

	created := time.Date(2026, 3, 1, 9, 30, 0, 123456000, time.UTC)
	p := testutil.NewTestSharedPrompt("# 리포트 프롬프트",
		testutil.WithAuthor("민지"),
		testutil.WithLikes(2),
		testutil.WithCreatedAt(created),
		testutil.WithAssignmentType("report"),
	)
	require.NoError(t, repo.Create(ctx, p))

	fetched, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.ID, fetched.ID)
	assert.Equal(t, "# 리포트 프롬프트", fetched.PromptText)
	assert.Equal(t, "민지", fetched.AuthorName)
	assert.Equal(t, 2, fetched.Likes)
	assert.Equal(t, "report", fetched.AssignmentType)
	assert.True(t, created.Equal(fetched.CreatedAt))
}

func TestSharedPromptRepo_GetByID_NotFound(t *testing.T) {
	repo := newSharedPromptRepo(t)

	_, err := repo.GetByID(context.Background(), "nonexistent")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSharedPromptRepo_CreateRejectsBlankText(t *testing.T) {
	repo := newSharedPromptRepo(t)

	err := repo.Create(context.Background(), testutil.NewTestSharedPrompt("  \n "))
	assert.Error(t, err)
}

func TestSharedPromptRepo_ListByLikesThenNewest(t *testing.T) {
	repo := newSharedPromptRepo(t)
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	oldPopular := testutil.NewTestSharedPrompt("old popular", testutil.WithLikes(5), testutil.WithCreatedAt(base))
	newPopular := testutil.NewTestSharedPrompt("new popular", testutil.WithLikes(5), testutil.WithCreatedAt(base.Add(time.Hour)))
	unpopular := testutil.NewTestSharedPrompt("unpopular", testutil.WithLikes(0), testutil.WithCreatedAt(base.Add(2*time.Hour)))
	require.NoError(t, repo.Create(ctx, unpopular))
	require.NoError(t, repo.Create(ctx, oldPopular))
	require.NoError(t, repo.Create(ctx, newPopular))

	list, err := repo.List(ctx, ListOptions{Order: []OrderBy{
		{Field: OrderLikes, Desc: true},
		{Field: OrderCreatedAt, Desc: true},
	}})
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, newPopular.ID, list[0].ID)
	assert.Equal(t, oldPopular.ID, list[1].ID)
	assert.Equal(t, unpopular.ID, list[2].ID)
}

func TestSharedPromptRepo_ListDefaultOrderIsOldestFirst(t *testing.T) {
	repo := newSharedPromptRepo(t)
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	second := testutil.NewTestSharedPrompt("b", testutil.WithCreatedAt(base.Add(time.Second)))
	first := testutil.NewTestSharedPrompt("a", testutil.WithCreatedAt(base))
	require.NoError(t, repo.Create(ctx, second))
	require.NoError(t, repo.Create(ctx, first))

	list, err := repo.List(ctx, ListOptions{})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, first.ID, list[0].ID)
}

func TestSharedPromptRepo_ListFilterAndLimit(t *testing.T) {
	repo := newSharedPromptRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestSharedPrompt("r1", testutil.WithAssignmentType("report"))))
	require.NoError(t, repo.Create(ctx, testutil.NewTestSharedPrompt("r2", testutil.WithAssignmentType("report"))))
	require.NoError(t, repo.Create(ctx, testutil.NewTestSharedPrompt("p1", testutil.WithAssignmentType("ppt"))))

	list, err := repo.List(ctx, ListOptions{AssignmentType: "report"})
	require.NoError(t, err)
	assert.Len(t, list, 2)

	list, err = repo.List(ctx, ListOptions{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestSharedPromptRepo_ListRejectsUnknownOrderField(t *testing.T) {
	repo := newSharedPromptRepo(t)

	_, err := repo.List(context.Background(), ListOptions{Order: []OrderBy{{Field: "likes; DROP TABLE shared_prompts"}}})
	assert.Error(t, err)
}

func TestSharedPromptRepo_UpdateLikes(t *testing.T) {
	repo := newSharedPromptRepo(t)
	ctx := context.Background()

	p := testutil.NewTestSharedPrompt("x", testutil.WithLikes(1))
	require.NoError(t, repo.Create(ctx, p))

	require.NoError(t, repo.UpdateLikes(ctx, p.ID, 7))
	fetched, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, fetched.Likes)

	// Last write wins.
	require.NoError(t, repo.UpdateLikes(ctx, p.ID, 3))
	fetched, err = repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, fetched.Likes)
}

func TestSharedPromptRepo_UpdateLikes_NotFound(t *testing.T) {
	repo := newSharedPromptRepo(t)

	err := repo.UpdateLikes(context.Background(), "missing", 1)
	assert.ErrorIs(t, err, ErrNotFound)
}
