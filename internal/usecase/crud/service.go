package crud

import (
	"context"
	"sort"

	"github.com/BruksfildServices01/elite-admin/internal/audit"
	"github.com/BruksfildServices01/elite-admin/internal/domain/resource"
	"github.com/BruksfildServices01/elite-admin/internal/models"
)

// Hooks customise one entity. Every field is optional.
type Hooks[T any] struct {
	BeforeCreate func(ctx context.Context, row *T) error
	// BeforeUpdate may rewrite the patch, including which columns get written.
	BeforeUpdate func(ctx context.Context, p *Patch[T]) error
	BeforeDelete func(ctx context.Context, id uint) error

	// Present scrubs a row before it leaves the service.
	Present func(row *T)
}

type Service[T models.Entity] struct {
	repo  resource.Repository[T]
	table resource.Table
	audit *audit.Dispatcher
	hooks Hooks[T]
}

func NewService[T models.Entity](
	repo resource.Repository[T],
	table resource.Table,
	audit *audit.Dispatcher,
	hooks Hooks[T],
) *Service[T] {
	return &Service[T]{
		repo:  repo,
		table: table,
		audit: audit,
		hooks: hooks,
	}
}

func (s *Service[T]) Table() resource.Table {
	return s.table
}

func (s *Service[T]) List(ctx context.Context) ([]T, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return s.presentAll(rows), nil
}

func (s *Service[T]) Search(ctx context.Context, q string) ([]T, error) {
	rows, err := s.repo.Search(ctx, q)
	if err != nil {
		return nil, err
	}
	return s.presentAll(rows), nil
}

func (s *Service[T]) Create(ctx context.Context, actorID uint, row *T) (*T, error) {
	if s.hooks.BeforeCreate != nil {
		if err := s.hooks.BeforeCreate(ctx, row); err != nil {
			return nil, err
		}
	}

	created, err := s.repo.Create(ctx, row)
	if err != nil {
		return nil, err
	}

	s.dispatch(actorID, "created", (*created).PrimaryKey(), nil)
	return s.present(created), nil
}

func (s *Service[T]) Update(ctx context.Context, actorID uint, p Patch[T]) (*T, error) {
	if s.hooks.BeforeUpdate != nil {
		if err := s.hooks.BeforeUpdate(ctx, &p); err != nil {
			return nil, err
		}
	}

	updated, err := s.repo.Update(ctx, p.ID, p.Row, p.Columns)
	if err != nil {
		return nil, err
	}

	fields := append([]string(nil), p.Keys...)
	sort.Strings(fields)
	s.dispatch(actorID, "updated", p.ID, map[string]any{"fields": fields})

	return s.present(updated), nil
}

func (s *Service[T]) Delete(ctx context.Context, actorID uint, id uint) (*T, error) {
	if s.hooks.BeforeDelete != nil {
		if err := s.hooks.BeforeDelete(ctx, id); err != nil {
			return nil, err
		}
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	s.dispatch(actorID, "deleted", id, nil)
	return s.present(deleted), nil
}

func (s *Service[T]) dispatch(actorID uint, verb string, id uint, meta any) {
	var employeeID *uint
	if actorID != 0 {
		employeeID = &actorID
	}

	s.audit.Dispatch(audit.Event{
		EmployeeID: employeeID,
		Action:     s.table.Entity + "_" + verb,
		Entity:     s.table.Entity,
		EntityID:   &id,
		Metadata:   meta,
	})
}

func (s *Service[T]) present(row *T) *T {
	if s.hooks.Present != nil && row != nil {
		s.hooks.Present(row)
	}
	return row
}

func (s *Service[T]) presentAll(rows []T) []T {
	if s.hooks.Present != nil {
		for i := range rows {
			s.hooks.Present(&rows[i])
		}
	}
	return rows
}
