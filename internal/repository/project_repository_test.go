package repository

import (
	"context"
	"errors"
	"testing"

	"talent-ops/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type stubRow struct{ err error }

func (r stubRow) Scan(...any) error { return r.err }

type stubTx struct{ rowErr error }

func (t stubTx) Exec(context.Context, string, ...any) (int64, error) { return 0, nil }
func (t stubTx) Query(context.Context, string, ...any) (database.Rows, error) {
	return nil, errors.New("not implemented")
}
func (t stubTx) QueryRow(context.Context, string, ...any) database.Row { return stubRow{err: t.rowErr} }
func (t stubTx) Commit(context.Context) error                          { return nil }
func (t stubTx) Rollback(context.Context) error                        { return nil }

type stubDB struct {
	rowErr error
}

func (d stubDB) Ping(context.Context) error { return nil }
func (d stubDB) Close() error               { return nil }
func (d stubDB) Exec(context.Context, string, ...any) (int64, error) {
	return 0, nil
}
func (d stubDB) Query(context.Context, string, ...any) (database.Rows, error) {
	return nil, errors.New("not implemented")
}
func (d stubDB) QueryRow(context.Context, string, ...any) database.Row {
	return stubRow{err: d.rowErr}
}
func (d stubDB) Begin(context.Context) (database.Tx, error) {
	return stubTx{rowErr: d.rowErr}, nil
}

func TestProjectFindByID_NoRowsMapsToNotFound(t *testing.T) {
	repo := NewPostgresProjectRepository(stubDB{rowErr: pgx.ErrNoRows})

	_, err := repo.FindByID(context.Background(), uuid.New())
	if !errors.Is(err, ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
}

func TestProjectFindByID_ScanFailurePropagates(t *testing.T) {
	dbErr := errors.New("connection reset")
	repo := NewPostgresProjectRepository(stubDB{rowErr: dbErr})

	_, err := repo.FindByID(context.Background(), uuid.New())
	if errors.Is(err, ErrProjectNotFound) {
		t.Fatalf("db failure must not read as not-found")
	}
	if !errors.Is(err, dbErr) {
		t.Fatalf("expected the db error to propagate, got %v", err)
	}
}

func TestAssign_NoRowsMapsToEmployeeNotFound(t *testing.T) {
	repo := NewPostgresAssignmentRepository(stubDB{rowErr: pgx.ErrNoRows})

	err := repo.Assign(context.Background(), Assignment{ProjectID: uuid.New(), EmployeeID: uuid.New()})
	if !errors.Is(err, ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}
}

func TestAssign_LockFailurePropagates(t *testing.T) {
	dbErr := errors.New("context canceled")
	repo := NewPostgresAssignmentRepository(stubDB{rowErr: dbErr})

	err := repo.Assign(context.Background(), Assignment{ProjectID: uuid.New(), EmployeeID: uuid.New()})
	if errors.Is(err, ErrEmployeeNotFound) {
		t.Fatalf("db failure must not read as not-found")
	}
	if !errors.Is(err, dbErr) {
		t.Fatalf("expected the db error to propagate, got %v", err)
	}
}
