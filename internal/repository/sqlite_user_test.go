package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/journey/internal/domain"
	"github.com/alexanderramin/journey/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepo_CreateAndGetByID(t *testing.T) {
	repo := NewSQLiteUserRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	u := testutil.NewTestUser("Ana", testutil.WithPlanMonths(6))
	require.NoError(t, repo.Create(ctx, u))

	got, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana", got.Name)
	assert.Equal(t, 6, got.PlanMonths)
	assert.WithinDuration(t, u.CreatedAt, got.CreatedAt, 0)
}

func TestUserRepo_GetByID_NotFound(t *testing.T) {
	repo := NewSQLiteUserRepo(testutil.NewTestDB(t))

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserRepo_ListAndUpdatePlanMonths(t *testing.T) {
	repo := NewSQLiteUserRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	a := testutil.NewTestUser("Ana")
	b := testutil.NewTestUser("Ben")
	require.NoError(t, repo.Create(ctx, a))
	require.NoError(t, repo.Create(ctx, b))

	require.NoError(t, repo.UpdatePlanMonths(ctx, b.ID, 24))

	users, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)

	got, err := repo.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, 24, got.PlanMonths)

	err = repo.UpdatePlanMonths(ctx, "missing", 6)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPromptRepo_SequentialIDs(t *testing.T) {
	repo := NewSQLitePromptRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	first := testutil.NewTestPrompt("What matters most to you?")
	second := testutil.NewTestPrompt("Who supports you?", testutil.WithOrigin(domain.OriginAdmin))
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))
	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	got, err := repo.GetByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "Who supports you?", got.Content)
	assert.Equal(t, domain.OriginAdmin, got.Origin)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, int64(1), list[0].ID)

	_, err = repo.GetByID(ctx, 3)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPromptRepo_EmptyCatalog(t *testing.T) {
	repo := NewSQLitePromptRepo(testutil.NewTestDB(t))

	n, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}
