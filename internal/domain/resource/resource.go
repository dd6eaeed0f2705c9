package resource

import (
	"context"
	"sort"
)

// Table describes how one entity is exposed: which JSON keys a partial update
// may write and which columns the search box looks at.
type Table struct {
	// Entity is the singular name used in audit actions.
	Entity string

	// Columns maps writable JSON keys to store columns.
	Columns map[string]string

	Preload    []string
	Searchable []string
}

// ColumnsFor returns the store columns for the known keys, sorted, ignoring
// everything else.
func (t Table) ColumnsFor(keys []string) []string {
	cols := make([]string, 0, len(keys))
	for _, k := range keys {
		if col, ok := t.Columns[k]; ok {
			cols = append(cols, col)
		}
	}
	sort.Strings(cols)
	return cols
}

func (t Table) Writable(key string) bool {
	_, ok := t.Columns[key]
	return ok
}

type Repository[T any] interface {
	List(ctx context.Context) ([]T, error)
	Search(ctx context.Context, q string) ([]T, error)
	Get(ctx context.Context, id uint) (*T, error)
	Create(ctx context.Context, row *T) (*T, error)
	Update(ctx context.Context, id uint, patch *T, columns []string) (*T, error)
	Delete(ctx context.Context, id uint) (*T, error)
}
