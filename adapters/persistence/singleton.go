package persistence

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio/pkg/apperror"
	"github.com/khoahotran/portfolio/pkg/logger"
)

// singletonStore keeps a table at zero or one row and treats it as a single
// value.
//
// Reads always take the lowest id. The write path never creates a second
// row, but if one exists anyway (manual inserts, a restore) the earliest row
// keeps being the one read and updated.
type singletonStore[T any] struct {
	db     *pgxpool.Pool
	logger logger.Logger
	table  table[T]
	// touchColumn is set to NOW() whenever the existing row is updated.
	touchColumn string
}

func (s *singletonStore[T]) get(ctx context.Context) (*T, bool, error) {
	query, args, err := psql.Select(s.table.columns...).
		From(s.table.name).
		OrderBy("id ASC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, false, apperror.NewInternal(fmt.Sprintf("failed to build %s query", s.table.name), err)
	}

	v, err := s.table.scan(s.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		s.logger.Error("Failed to read singleton row", err, zap.String("table", s.table.name))
		return nil, false, apperror.NewInternal(fmt.Sprintf("failed to query %s", s.table.name), err)
	}
	return v, true, nil
}

// upsert inserts the row when the table is empty and otherwise overwrites
// every write column of the existing row. Concurrent upserts on the same
// table are serialized by a transaction-scoped advisory lock.
func (s *singletonStore[T]) upsert(ctx context.Context, v *T) (*T, error) {
	set, err := s.table.setMap(v)
	if err != nil {
		return nil, apperror.NewInternal("failed to map singleton columns", err)
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		s.logger.Error("Failed to begin upsert transaction", err, zap.String("table", s.table.name))
		return nil, apperror.NewWriteFailure(fmt.Sprintf("failed to begin %s upsert", s.table.name), err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "SELECT pg_advisory_xact_lock(hashtext($1))", s.table.name); err != nil {
		s.logger.Error("Failed to lock singleton table", err, zap.String("table", s.table.name))
		return nil, apperror.NewWriteFailure(fmt.Sprintf("failed to lock %s", s.table.name), err)
	}

	var existingID int64
	lookup := fmt.Sprintf("SELECT id FROM %s ORDER BY id ASC LIMIT 1", s.table.name)
	err = tx.QueryRow(ctx, lookup).Scan(&existingID)

	var stmt sq.Sqlizer
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		stmt = psql.Insert(s.table.name).SetMap(set).Suffix(s.table.returning())
	case err != nil:
		s.logger.Error("Failed to look up singleton row", err, zap.String("table", s.table.name))
		return nil, apperror.NewWriteFailure(fmt.Sprintf("failed to look up %s", s.table.name), err)
	default:
		set[s.touchColumn] = sq.Expr("NOW()")
		stmt = psql.Update(s.table.name).
			SetMap(set).
			Where(sq.Eq{"id": existingID}).
			Suffix(s.table.returning())
	}

	query, args, err := stmt.ToSql()
	if err != nil {
		return nil, apperror.NewInternal(fmt.Sprintf("failed to build %s upsert", s.table.name), err)
	}

	out, err := s.table.scan(tx.QueryRow(ctx, query, args...))
	if err != nil {
		s.logger.Error("Failed to upsert singleton row", err, zap.String("table", s.table.name))
		return nil, apperror.NewWriteFailure(fmt.Sprintf("failed to upsert %s", s.table.name), err)
	}

	if err := tx.Commit(ctx); err != nil {
		s.logger.Error("Failed to commit upsert", err, zap.String("table", s.table.name))
		return nil, apperror.NewWriteFailure(fmt.Sprintf("failed to commit %s upsert", s.table.name), err)
	}
	return out, nil
}
