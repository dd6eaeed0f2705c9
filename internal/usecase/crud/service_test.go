package crud

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/elite-admin/internal/auth"
	"github.com/BruksfildServices01/elite-admin/internal/domain/resource"
	"github.com/BruksfildServices01/elite-admin/internal/httperr"
	"github.com/BruksfildServices01/elite-admin/internal/models"
)

type mockRepo[T any] struct {
	mock.Mock
}

func (m *mockRepo[T]) List(ctx context.Context) ([]T, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]T)
	return rows, args.Error(1)
}

func (m *mockRepo[T]) Search(ctx context.Context, q string) ([]T, error) {
	args := m.Called(ctx, q)
	rows, _ := args.Get(0).([]T)
	return rows, args.Error(1)
}

func (m *mockRepo[T]) Get(ctx context.Context, id uint) (*T, error) {
	args := m.Called(ctx, id)
	row, _ := args.Get(0).(*T)
	return row, args.Error(1)
}

func (m *mockRepo[T]) Create(ctx context.Context, row *T) (*T, error) {
	args := m.Called(ctx, row)
	out, _ := args.Get(0).(*T)
	return out, args.Error(1)
}

func (m *mockRepo[T]) Update(ctx context.Context, id uint, patch *T, columns []string) (*T, error) {
	args := m.Called(ctx, id, patch, columns)
	out, _ := args.Get(0).(*T)
	return out, args.Error(1)
}

func (m *mockRepo[T]) Delete(ctx context.Context, id uint) (*T, error) {
	args := m.Called(ctx, id)
	out, _ := args.Get(0).(*T)
	return out, args.Error(1)
}

type usageStub struct {
	n   int64
	err error
}

func (u usageStub) CountJobsForClient(context.Context, uint) (int64, error) {
	return u.n, u.err
}

func TestService_EmployeePasswordIsHashedAndHidden(t *testing.T) {
	repo := &mockRepo[models.Employee]{}
	repo.On("Create", mock.Anything, mock.MatchedBy(func(e *models.Employee) bool {
		return auth.IsHash(e.Password) && auth.ComparePassword(e.Password, "s3cret") == nil
	})).Return(&models.Employee{ID: 1, User: "ana", Password: "$2a$10$stored"}, nil)

	svc := NewService[models.Employee](repo, resource.Employees, nil, EmployeeHooks())

	created, err := svc.Create(context.Background(), 1, &models.Employee{User: "ana", Password: "s3cret"})
	require.NoError(t, err)
	assert.Empty(t, created.Password)
	repo.AssertExpectations(t)
}

func TestService_EmployeeUpdateHashesOnlyWhenPresent(t *testing.T) {
	repo := &mockRepo[models.Employee]{}
	repo.On("Update", mock.Anything, uint(2), mock.Anything, mock.Anything).
		Return(&models.Employee{ID: 2, Password: "$2a$10$stored"}, nil)

	svc := NewService[models.Employee](repo, resource.Employees, nil, EmployeeHooks())

	row := &models.Employee{Name: "Ana", Password: ""}
	_, err := svc.Update(context.Background(), 1, Patch[models.Employee]{ID: 2, Row: row, Keys: []string{"name"}, Columns: []string{"name"}})
	require.NoError(t, err)
	assert.Empty(t, row.Password)

	row = &models.Employee{Password: "nuevo"}
	out, err := svc.Update(context.Background(), 1, Patch[models.Employee]{ID: 2, Row: row, Keys: []string{"password"}, Columns: []string{"password"}})
	require.NoError(t, err)
	assert.True(t, auth.IsHash(row.Password))
	assert.Empty(t, out.Password)
}

func TestService_EmployeeBlankPasswordKeepsStoredHash(t *testing.T) {
	repo := &mockRepo[models.Employee]{}
	repo.On("Update", mock.Anything, uint(2), mock.Anything, []string{"role"}).
		Return(&models.Employee{ID: 2, Role: "lead", Password: "$2a$10$stored"}, nil)

	svc := NewService[models.Employee](repo, resource.Employees, nil, EmployeeHooks())

	row := &models.Employee{Role: "lead"}
	_, err := svc.Update(context.Background(), 1, Patch[models.Employee]{
		ID:      2,
		Row:     row,
		Keys:    []string{"password", "role"},
		Columns: []string{"password", "role"},
	})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestService_ListPresentsEveryRow(t *testing.T) {
	repo := &mockRepo[models.Employee]{}
	repo.On("List", mock.Anything).Return([]models.Employee{{ID: 1, Password: "h1"}, {ID: 2, Password: "h2"}}, nil)

	svc := NewService[models.Employee](repo, resource.Employees, nil, EmployeeHooks())

	rows, err := svc.List(context.Background())
	require.NoError(t, err)
	for _, r := range rows {
		assert.Empty(t, r.Password)
	}
}

func TestService_ClientInUse(t *testing.T) {
	repo := &mockRepo[models.Client]{}
	svc := NewService[models.Client](repo, resource.Clients, nil, ClientHooks(usageStub{n: 2}))

	_, err := svc.Delete(context.Background(), 1, 5)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeClientInUse))
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestService_ClientUsageFailure(t *testing.T) {
	repo := &mockRepo[models.Client]{}
	svc := NewService[models.Client](repo, resource.Clients, nil, ClientHooks(usageStub{err: errors.New("boom")}))

	_, err := svc.Delete(context.Background(), 1, 5)
	assert.EqualError(t, err, "boom")
}

func TestService_ClientDeleteWhenUnused(t *testing.T) {
	repo := &mockRepo[models.Client]{}
	repo.On("Delete", mock.Anything, uint(5)).Return(&models.Client{ID: 5, Name: "Acme"}, nil)

	svc := NewService[models.Client](repo, resource.Clients, nil, ClientHooks(usageStub{}))

	deleted, err := svc.Delete(context.Background(), 1, 5)
	require.NoError(t, err)
	assert.Equal(t, "Acme", deleted.Name)
}

func TestService_WorkedJobDefaultsStatus(t *testing.T) {
	repo := &mockRepo[models.WorkedJob]{}
	repo.On("Create", mock.Anything, mock.MatchedBy(func(j *models.WorkedJob) bool {
		return j.Status == models.JobStatusCompleted
	})).Return(&models.WorkedJob{ID: 1, Status: models.JobStatusCompleted}, nil)

	svc := NewService[models.WorkedJob](repo, resource.WorkedJobs, nil, WorkedJobHooks())

	_, err := svc.Create(context.Background(), 0, &models.WorkedJob{Service: "Pulido"})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestService_StoreErrorsPassThrough(t *testing.T) {
	repo := &mockRepo[models.Supply]{}
	repo.On("Update", mock.Anything, uint(9), mock.Anything, mock.Anything).Return(nil, errors.New("record not found"))

	svc := NewService[models.Supply](repo, resource.Supplies, nil, Hooks[models.Supply]{})

	_, err := svc.Update(context.Background(), 1, Patch[models.Supply]{ID: 9, Row: &models.Supply{}, Columns: []string{"quantity"}})
	assert.EqualError(t, err, "record not found")
}
