package service

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	"github.com/alexanderramin/journey/internal/db"
	"github.com/alexanderramin/journey/internal/dispatch"
	"github.com/alexanderramin/journey/internal/domain"
	"github.com/alexanderramin/journey/internal/intelligence"
	"github.com/alexanderramin/journey/internal/repository"
	"github.com/alexanderramin/journey/internal/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// testEnv wires SQLite repositories over one in-memory database.
type testEnv struct {
	db       *sql.DB
	uow      db.UnitOfWork
	users    *repository.SQLiteUserRepo
	prompts  *repository.SQLitePromptRepo
	answers  *repository.SQLiteAnswerRepo
	progress *repository.SQLiteProgressRepo
	goals    *repository.SQLiteGoalRepo
	analyses *repository.SQLiteAnalysisRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	database := testutil.NewTestDB(t)
	return &testEnv{
		db:       database,
		uow:      testutil.NewTestUoW(database),
		users:    repository.NewSQLiteUserRepo(database),
		prompts:  repository.NewSQLitePromptRepo(database),
		answers:  repository.NewSQLiteAnswerRepo(database),
		progress: repository.NewSQLiteProgressRepo(database),
		goals:    repository.NewSQLiteGoalRepo(database),
		analyses: repository.NewSQLiteAnalysisRepo(database),
	}
}

func (e *testEnv) seedUser(t *testing.T, opts ...testutil.UserOption) *domain.User {
	t.Helper()
	u := testutil.NewTestUser("Ana", opts...)
	require.NoError(t, e.users.Create(context.Background(), u))
	return u
}

func (e *testEnv) seedPrompts(t *testing.T, texts ...string) []*domain.Prompt {
	t.Helper()
	out := make([]*domain.Prompt, 0, len(texts))
	for _, text := range texts {
		p := testutil.NewTestPrompt(text)
		require.NoError(t, e.prompts.Create(context.Background(), p))
		out = append(out, p)
	}
	return out
}

// newPoolDispatcher builds a real dispatcher over a pool that is drained
// when the test ends.
func (e *testEnv) newPoolDispatcher(t *testing.T, analyzer intelligence.AnalysisService, jobTimeout time.Duration, logger *zap.Logger, opts ...DispatcherOption) (AnalysisDispatcher, *dispatch.Pool) {
	t.Helper()
	pool := dispatch.NewPool(dispatch.Config{Workers: 2, QueueSize: 16, JobTimeout: jobTimeout}, logger)
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = pool.Close(ctx)
	})
	return NewAnalysisDispatcher(pool, e.answers, e.goals, e.analyses, analyzer, logger, opts...), pool
}

func drain(t *testing.T, pool *dispatch.Pool) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, pool.Close(ctx))
}

// recordingDispatcher captures Enqueue calls instead of running analysis.
type recordingDispatcher struct {
	mu    sync.Mutex
	calls []string
	err   error
}

func (d *recordingDispatcher) Enqueue(userID, answerID string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.err != nil {
		return d.err
	}
	d.calls = append(d.calls, userID+"/"+answerID)
	return nil
}

func (d *recordingDispatcher) Calls() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string(nil), d.calls...)
}

// fakeAnalyzer delegates to fn and records what it was given.
type fakeAnalyzer struct {
	mu        sync.Mutex
	fn        func(ctx context.Context) (*intelligence.ParsedAnalysis, error)
	histories [][]domain.HistoryItem
	goals     []*domain.Goal
}

func (f *fakeAnalyzer) Analyze(ctx context.Context, history []domain.HistoryItem, goal *domain.Goal) (*intelligence.ParsedAnalysis, error) {
	f.mu.Lock()
	f.histories = append(f.histories, history)
	f.goals = append(f.goals, goal)
	f.mu.Unlock()
	return f.fn(ctx)
}

func (f *fakeAnalyzer) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.histories)
}
