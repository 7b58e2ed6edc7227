package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/journey/internal/importer"
	"github.com/alexanderramin/journey/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalogSchema(texts ...string) *importer.CatalogSchema {
	schema := &importer.CatalogSchema{}
	for _, text := range texts {
		schema.Prompts = append(schema.Prompts, importer.PromptImport{Content: text})
	}
	return schema
}

func TestImportCatalog_AssignsSequentialIDs(t *testing.T) {
	env := newTestEnv(t)
	env.seedPrompts(t, "What do you love?")
	svc := NewImportService(env.uow)
	ctx := context.Background()

	res, err := svc.ImportCatalogFromSchema(ctx, catalogSchema("What do you love?", "Who helped you?", "What scared you?"))
	require.NoError(t, err)
	assert.Equal(t, 1, res.Skipped)
	require.Len(t, res.Added, 2)
	assert.Equal(t, int64(2), res.Added[0].ID)
	assert.Equal(t, int64(3), res.Added[1].ID)

	n, err := env.prompts.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	again, err := svc.ImportCatalogFromSchema(ctx, catalogSchema("Who helped you?"))
	require.NoError(t, err)
	assert.Empty(t, again.Added)
	assert.Equal(t, 1, again.Skipped)
}

func TestImportCatalog_FromFile(t *testing.T) {
	env := newTestEnv(t)
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"prompts":[{"content":"One"},{"content":"Two","origin":"admin"}]}`), 0o644))

	res, err := NewImportService(env.uow).ImportCatalog(context.Background(), path)
	require.NoError(t, err)
	assert.Len(t, res.Added, 2)

	_, err = NewImportService(env.uow).ImportCatalog(context.Background(), filepath.Join(t.TempDir(), "nope.json"))
	assert.ErrorContains(t, err, "loading catalog file")
}

func TestImportCatalog_ValidationErrorsListed(t *testing.T) {
	env := newTestEnv(t)
	_, err := NewImportService(env.uow).ImportCatalogFromSchema(context.Background(), catalogSchema("", "ok", "OK"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "catalog validation failed (2 errors)")
	assert.Contains(t, err.Error(), "prompts[0].content is required")
	assert.Contains(t, err.Error(), "prompts[2].content duplicates prompts[1]")
}

func TestImportCatalog_RollbackOnInsertFailure(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	// ExecContext #1 = first prompt insert, #2 = second prompt insert
	failUoW := &testutil.FailOnNthExecUoW{
		DB:     env.db,
		FailOn: 2,
		Err:    fmt.Errorf("injected prompt insert failure"),
	}

	_, err := NewImportService(failUoW).ImportCatalogFromSchema(ctx, catalogSchema("One", "Two", "Three"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "injected prompt insert failure")

	n, err := env.prompts.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n, "partial catalog must roll back")
}
