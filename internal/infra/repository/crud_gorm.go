package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/elite-admin/internal/domain/resource"
	"github.com/BruksfildServices01/elite-admin/internal/httperr"
	"github.com/BruksfildServices01/elite-admin/internal/models"
)

// CrudGormRepository serves the plain list/create/update/delete contract
// shared by every entity.
type CrudGormRepository[T models.Entity] struct {
	db    *gorm.DB
	table resource.Table

	// inUseCode is returned when a delete trips a foreign key.
	inUseCode string
}

var (
	_ resource.Repository[models.Client]       = (*CrudGormRepository[models.Client])(nil)
	_ resource.Repository[models.ScheduledJob] = (*CrudGormRepository[models.ScheduledJob])(nil)
)

func NewCrudGormRepository[T models.Entity](db *gorm.DB, table resource.Table) *CrudGormRepository[T] {
	return &CrudGormRepository[T]{db: db, table: table}
}

// WithInUseCode maps foreign key failures on delete to a business error.
func (r *CrudGormRepository[T]) WithInUseCode(code string) *CrudGormRepository[T] {
	r.inUseCode = code
	return r
}

func (r *CrudGormRepository[T]) query(ctx context.Context) *gorm.DB {
	q := r.db.WithContext(ctx)
	for _, p := range r.table.Preload {
		q = q.Preload(p)
	}
	return q
}

func (r *CrudGormRepository[T]) List(ctx context.Context) ([]T, error) {
	var rows []T
	if err := r.query(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Search matches q as a case-insensitive substring of any searchable column.
// An empty q lists everything.
func (r *CrudGormRepository[T]) Search(ctx context.Context, q string) ([]T, error) {
	q = strings.TrimSpace(q)
	if q == "" || len(r.table.Searchable) == 0 {
		return r.List(ctx)
	}

	pattern := "%" + strings.ToLower(q) + "%"

	exprs := make([]clause.Expression, 0, len(r.table.Searchable))
	for _, col := range r.table.Searchable {
		exprs = append(exprs, clause.Expr{
			SQL:  "LOWER(?) LIKE ?",
			Vars: []any{clause.Column{Name: col}, pattern},
		})
	}

	var rows []T
	if err := r.query(ctx).
		Where(clause.Or(exprs...)).
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *CrudGormRepository[T]) Get(ctx context.Context, id uint) (*T, error) {
	var row T
	if err := r.query(ctx).First(&row, id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *CrudGormRepository[T]) Create(ctx context.Context, row *T) (*T, error) {
	if err := r.db.WithContext(ctx).
		Omit(clause.Associations).
		Create(row).Error; err != nil {
		return nil, err
	}
	return r.Get(ctx, (*row).PrimaryKey())
}

// Update writes only columns, zero values included, and returns the stored row.
func (r *CrudGormRepository[T]) Update(
	ctx context.Context,
	id uint,
	patch *T,
	columns []string,
) (*T, error) {

	if _, err := r.Get(ctx, id); err != nil {
		return nil, err
	}

	if len(columns) > 0 {
		if err := r.db.WithContext(ctx).
			Model(new(T)).
			Where("id = ?", id).
			Select(columns).
			Updates(patch).Error; err != nil {
			return nil, err
		}
	}

	return r.Get(ctx, id)
}

// Delete returns the row as it was before removal.
func (r *CrudGormRepository[T]) Delete(ctx context.Context, id uint) (*T, error) {
	row, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Delete(new(T), id).Error; err != nil {
		if r.inUseCode != "" && isForeignKeyViolation(err) {
			return nil, httperr.ErrBusiness(r.inUseCode)
		}
		return nil, err
	}

	return row, nil
}
