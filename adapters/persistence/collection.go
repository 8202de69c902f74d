package persistence

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio/pkg/apperror"
	"github.com/khoahotran/portfolio/pkg/logger"
)

// collectionStore manages independently addressable rows keyed by id.
type collectionStore[T any] struct {
	db      *pgxpool.Pool
	logger  logger.Logger
	table   table[T]
	orderBy []string
}

func (s *collectionStore[T]) list(ctx context.Context) ([]*T, error) {
	query, args, err := psql.Select(s.table.columns...).
		From(s.table.name).
		OrderBy(s.orderBy...).
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal(fmt.Sprintf("failed to build list %s query", s.table.name), err)
	}

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		s.logger.Error("Failed to list rows", err, zap.String("table", s.table.name))
		return nil, apperror.NewInternal(fmt.Sprintf("failed to query %s", s.table.name), err)
	}
	defer rows.Close()

	items := make([]*T, 0)
	for rows.Next() {
		v, err := s.table.scan(rows)
		if err != nil {
			s.logger.Error("Failed to scan row", err, zap.String("table", s.table.name))
			return nil, apperror.NewInternal(fmt.Sprintf("failed to scan %s row", s.table.name), err)
		}
		items = append(items, v)
	}
	if err := rows.Err(); err != nil {
		s.logger.Error("Failed to iterate rows", err, zap.String("table", s.table.name))
		return nil, apperror.NewInternal(fmt.Sprintf("error iterating %s rows", s.table.name), err)
	}
	return items, nil
}

func (s *collectionStore[T]) create(ctx context.Context, v *T) (*T, error) {
	set, err := s.table.setMap(v)
	if err != nil {
		return nil, apperror.NewInternal("failed to map insert columns", err)
	}

	query, args, err := psql.Insert(s.table.name).
		SetMap(set).
		Suffix(s.table.returning()).
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal(fmt.Sprintf("failed to build insert %s query", s.table.name), err)
	}

	out, err := s.table.scan(s.db.QueryRow(ctx, query, args...))
	if err != nil {
		s.logger.Error("Failed to insert row", err, zap.String("table", s.table.name), pgCode(err))
		return nil, apperror.NewWriteFailure(fmt.Sprintf("failed to insert %s", s.table.name), err)
	}
	return out, nil
}

// update writes only the given columns. With no columns it reads the row
// back unchanged. Either way a missing id is reported as not found.
func (s *collectionStore[T]) update(ctx context.Context, id int64, changes map[string]any) (*T, error) {
	var stmt sq.Sqlizer
	if len(changes) == 0 {
		stmt = psql.Select(s.table.columns...).From(s.table.name).Where(sq.Eq{"id": id})
	} else {
		stmt = psql.Update(s.table.name).
			SetMap(changes).
			Where(sq.Eq{"id": id}).
			Suffix(s.table.returning())
	}

	query, args, err := stmt.ToSql()
	if err != nil {
		return nil, apperror.NewInternal(fmt.Sprintf("failed to build update %s query", s.table.name), err)
	}

	out, err := s.table.scan(s.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			s.logger.Warn("Update target not found", zap.String("table", s.table.name), zap.Int64("id", id))
			return nil, apperror.NewNotFound(s.table.resource, strconv.FormatInt(id, 10))
		}
		s.logger.Error("Failed to update row", err, zap.String("table", s.table.name), zap.Int64("id", id), pgCode(err))
		return nil, apperror.NewWriteFailure(fmt.Sprintf("failed to update %s", s.table.name), err)
	}
	return out, nil
}

// delete removes the row if present. A missing id is not an error.
func (s *collectionStore[T]) delete(ctx context.Context, id int64) error {
	query, args, err := psql.Delete(s.table.name).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return apperror.NewInternal(fmt.Sprintf("failed to build delete %s query", s.table.name), err)
	}

	cmdTag, err := s.db.Exec(ctx, query, args...)
	if err != nil {
		s.logger.Error("Failed to delete row", err, zap.String("table", s.table.name), zap.Int64("id", id))
		return apperror.NewWriteFailure(fmt.Sprintf("failed to delete %s", s.table.name), err)
	}
	if cmdTag.RowsAffected() == 0 {
		s.logger.Debug("Delete matched no rows", zap.String("table", s.table.name), zap.Int64("id", id))
	}
	return nil
}

func pgCode(err error) zap.Field {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return zap.String("pg_code", pgErr.Code)
	}
	return zap.Skip()
}
