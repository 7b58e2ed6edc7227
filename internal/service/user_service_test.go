package service

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/journey/internal/domain"
	"github.com/alexanderramin/journey/internal/repository"
	"github.com/alexanderramin/journey/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_Create(t *testing.T) {
	env := newTestEnv(t)
	svc := NewUserService(env.users)
	ctx := context.Background()

	u, err := svc.Create(ctx, "  Ana ", 0)
	require.NoError(t, err)
	assert.Equal(t, "Ana", u.Name)
	assert.Equal(t, domain.DefaultPlanMonths, u.PlanMonths)

	got, err := svc.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	_, err = svc.Create(ctx, "", 12)
	assert.ErrorIs(t, err, ErrEmptyName)

	_, err = svc.Create(ctx, "Bo", 7)
	assert.ErrorIs(t, err, domain.ErrInvalidPlanMonths)

	users, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestUserService_SetPlanMonths(t *testing.T) {
	env := newTestEnv(t)
	svc := NewUserService(env.users)
	user := env.seedUser(t)
	ctx := context.Background()

	require.NoError(t, svc.SetPlanMonths(ctx, user.ID, 36))
	got, err := svc.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 36, got.PlanMonths)

	assert.ErrorIs(t, svc.SetPlanMonths(ctx, user.ID, 3), domain.ErrInvalidPlanMonths)
	assert.ErrorIs(t, svc.SetPlanMonths(ctx, "ghost", 6), repository.ErrNotFound)
}

func TestGoalService(t *testing.T) {
	env := newTestEnv(t)
	svc := NewGoalService(env.goals, env.users)
	user := env.seedUser(t)
	ctx := context.Background()

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)

	g := &domain.Goal{UserID: user.ID, StartDate: start, EndDate: end, IdealPersonDescription: " patient and kind "}
	require.NoError(t, svc.Set(ctx, g))
	assert.NotEmpty(t, g.ID)
	assert.Equal(t, "patient and kind", g.IdealPersonDescription)

	active, err := svc.GetActive(ctx, user.ID, time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, g.ID, active.ID)

	none, err := svc.GetActive(ctx, user.ID, time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Nil(t, none)

	err = svc.Set(ctx, &domain.Goal{UserID: user.ID, StartDate: end, EndDate: start, IdealPersonDescription: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidGoalWindow)

	err = svc.Set(ctx, &domain.Goal{UserID: user.ID, StartDate: start, EndDate: end})
	assert.ErrorIs(t, err, ErrEmptyIdeal)

	err = svc.Set(ctx, &domain.Goal{UserID: "ghost", StartDate: start, EndDate: end, IdealPersonDescription: "x"})
	assert.ErrorIs(t, err, repository.ErrNotFound)

	goals, err := svc.List(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, goals, 1)
}

func TestProgressService(t *testing.T) {
	env := newTestEnv(t)
	svc := NewProgressService(env.progress, env.users)
	user := env.seedUser(t)
	ctx := context.Background()
	now := time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC)

	view, err := svc.GetProgress(ctx, user.ID, now)
	require.NoError(t, err)
	assert.Zero(t, view.TotalAnswers)
	assert.Zero(t, view.CurrentStreak)
	assert.Nil(t, view.LastAnsweredDate)
	assert.Equal(t, 1, view.SelfAwarenessLevel)

	last := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, env.progress.Upsert(ctx, &domain.Progress{
		UserID: user.ID, TotalAnswers: 4, ConsecutiveDays: 4, LastAnsweredDate: &last, SelfAwarenessLevel: 1,
	}))

	view, err = svc.GetProgress(ctx, user.ID, now)
	require.NoError(t, err)
	assert.Equal(t, 4, view.ConsecutiveDays)
	assert.Zero(t, view.CurrentStreak, "streak lapsed after a missed day")

	view, err = svc.GetProgress(ctx, user.ID, last.Add(30*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 4, view.CurrentStreak)

	_, err = svc.GetProgress(ctx, "ghost", now)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestAnalysisQueryService(t *testing.T) {
	env := newTestEnv(t)
	svc := NewAnalysisQueryService(env.analyses)
	user := env.seedUser(t)
	prompts := env.seedPrompts(t, "One")
	ctx := context.Background()

	latest, err := svc.GetLatestAnalysis(ctx, user.ID)
	require.NoError(t, err)
	assert.Nil(t, latest)

	a1 := testutil.NewTestAnswer(user.ID, prompts[0].ID, "first")
	a2 := testutil.NewTestAnswer(user.ID, prompts[0].ID, "second")
	require.NoError(t, env.answers.Create(ctx, a1))
	require.NoError(t, env.answers.Create(ctx, a2))

	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	require.NoError(t, env.analyses.Create(ctx, testutil.NewTestAnalysis(user.ID, a1.ID, testutil.WithAnalyzedAt(base))))
	require.NoError(t, env.analyses.Create(ctx, testutil.NewTestAnalysis(user.ID, a2.ID, testutil.WithAnalyzedAt(base.Add(time.Minute)))))

	latest, err = svc.GetLatestAnalysis(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, a2.ID, latest.AnswerID)

	forFirst, err := svc.GetAnalysisForAnswer(ctx, a1.ID)
	require.NoError(t, err)
	require.NotNil(t, forFirst)
	assert.Equal(t, a1.ID, forFirst.AnswerID)

	missing, err := svc.GetAnalysisForAnswer(ctx, "no-such-answer")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
