package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MarnusVe92/lets-keep-swimming-sub000/internal/db"
	"github.com/MarnusVe92/lets-keep-swimming-sub000/internal/importer"
	"github.com/MarnusVe92/lets-keep-swimming-sub000/internal/repository"
)

type importService struct {
	uow      db.UnitOfWork
	now      func() time.Time
	observer UseCaseObserver
}

func NewImportService(uow db.UnitOfWork, observers ...UseCaseObserver) ImportService {
	return &importService{uow: uow, now: time.Now, observer: useCaseObserverOrNoop(observers)}
}

func (s *importService) ImportFile(ctx context.Context, path string) (*ImportResult, error) {
	schema, err := importer.LoadImportSchema(path)
	if err != nil {
		return nil, fmt.Errorf("loading import file: %w", err)
	}
	return s.Import(ctx, schema)
}

func (s *importService) Import(ctx context.Context, schema *importer.ImportSchema) (res *ImportResult, err error) {
	fields := map[string]any{"sessions": len(schema.Sessions), "profile": schema.Profile != nil}
	done := track(ctx, s.observer, "history-import", fields)
	defer func() { done(err) }()

	if errs := importer.ValidateImportSchema(schema); len(errs) > 0 {
		return nil, validationError(errs)
	}

	converted, err := importer.Convert(schema, s.now())
	if err != nil {
		return nil, fmt.Errorf("converting import schema: %w", err)
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if converted.Profile != nil {
			if err := repository.NewSQLiteProfileRepo(tx).Upsert(ctx, converted.Profile); err != nil {
				return fmt.Errorf("saving profile: %w", err)
			}
		}
		sessions := repository.NewSQLiteSessionRepo(tx)
		for i, session := range converted.Sessions {
			if err := sessions.Create(ctx, session); err != nil {
				return fmt.Errorf("saving sessions[%d]: %w", i, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	res = &ImportResult{ProfileSaved: converted.Profile != nil, SessionCount: len(converted.Sessions)}
	for i, session := range converted.Sessions {
		if i == 0 || session.Date.Before(res.From) {
			res.From = session.Date
		}
		if i == 0 || res.To.Before(session.Date) {
			res.To = session.Date
		}
	}
	return res, nil
}

func validationError(errs []error) error {
	lines := make([]string, len(errs))
	for i, e := range errs {
		lines[i] = "  - " + e.Error()
	}
	return &PlanError{
		Code:    CodeInvalidImport,
		Message: fmt.Sprintf("import validation failed (%d errors):\n%s", len(errs), strings.Join(lines, "\n")),
	}
}
