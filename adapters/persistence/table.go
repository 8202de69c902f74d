package persistence

import (
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
)

// table describes how one entity maps onto its table.
type table[T any] struct {
	name     string
	resource string
	// columns are selected and returned in this order; scan must match it.
	columns []string
	// writeColumns are the caller-supplied columns, in the order values
	// returns them.
	writeColumns []string
	scan         func(row pgx.Row) (*T, error)
	values       func(v *T) []any
}

func (t table[T]) returning() string {
	return "RETURNING " + strings.Join(t.columns, ", ")
}

func (t table[T]) setMap(v *T) (map[string]any, error) {
	vals := t.values(v)
	if len(vals) != len(t.writeColumns) {
		return nil, fmt.Errorf("%s: %d values for %d columns", t.name, len(vals), len(t.writeColumns))
	}
	set := make(map[string]any, len(vals))
	for i, col := range t.writeColumns {
		set[col] = vals[i]
	}
	return set, nil
}
