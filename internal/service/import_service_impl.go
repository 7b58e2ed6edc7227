package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/journey/internal/db"
	"github.com/alexanderramin/journey/internal/importer"
	"github.com/alexanderramin/journey/internal/repository"
)

type importService struct {
	uow db.UnitOfWork
}

func NewImportService(uow db.UnitOfWork) ImportService {
	return &importService{uow: uow}
}

func (s *importService) ImportCatalog(ctx context.Context, filePath string) (*ImportResult, error) {
	schema, err := importer.LoadCatalogSchema(filePath)
	if err != nil {
		return nil, fmt.Errorf("loading catalog file: %w", err)
	}
	return s.ImportCatalogFromSchema(ctx, schema)
}

// ImportCatalogFromSchema appends the catalog's new prompts in one
// transaction: either every new prompt gets an ID or none does.
func (s *importService) ImportCatalogFromSchema(ctx context.Context, schema *importer.CatalogSchema) (*ImportResult, error) {
	if errs := importer.ValidateCatalogSchema(schema); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}

	result := &ImportResult{}
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		prompts := repository.NewSQLitePromptRepo(tx)

		existing, err := prompts.List(ctx)
		if err != nil {
			return err
		}
		add, skipped := importer.Convert(schema, existing, time.Now().UTC())
		for _, p := range add {
			if err := prompts.Create(ctx, p); err != nil {
				return fmt.Errorf("creating prompt %q: %w", p.Content, err)
			}
		}
		result.Added = add
		result.Skipped = skipped
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func formatValidationErrors(errs []error) error {
	var b strings.Builder
	fmt.Fprintf(&b, "catalog validation failed (%d errors):", len(errs))
	for _, e := range errs {
		b.WriteString("\n  - " + e.Error())
	}
	return fmt.Errorf("%s", b.String())
}
