package auth

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/elite-admin/internal/models"
)

type mockFinder struct {
	mock.Mock
}

func (m *mockFinder) FindEmployeeByUser(ctx context.Context, user string) (*models.Employee, error) {
	args := m.Called(ctx, user)
	if emp, ok := args.Get(0).(*models.Employee); ok {
		return emp, args.Error(1)
	}
	return nil, args.Error(1)
}

type memoryRevoker struct {
	mu  sync.Mutex
	ids map[string]time.Time
	err error
}

func (r *memoryRevoker) Revoke(_ context.Context, jti string, until time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.ids == nil {
		r.ids = map[string]time.Time{}
	}
	r.ids[jti] = until
	return nil
}

func (r *memoryRevoker) IsRevoked(_ context.Context, jti string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return false, r.err
	}
	_, ok := r.ids[jti]
	return ok, nil
}

func newTestAuthenticator(t *testing.T, rev Revoker) (*Authenticator, *mockFinder) {
	t.Helper()

	hash, err := HashPassword("s3cret")
	require.NoError(t, err)

	finder := &mockFinder{}
	finder.On("FindEmployeeByUser", mock.Anything, "ana").
		Return(&models.Employee{ID: 7, User: "ana", Name: "Ana", Role: "admin", Password: hash}, nil).Maybe()
	finder.On("FindEmployeeByUser", mock.Anything, "ghost").
		Return(nil, gorm.ErrRecordNotFound).Maybe()

	return NewAuthenticator(finder, NewIssuer("test-secret", 8*time.Hour), rev), finder
}

func TestLogin_Success(t *testing.T) {
	a, finder := newTestAuthenticator(t, nil)

	raw, claims, err := a.Login(context.Background(), " ana ", "s3cret")
	require.NoError(t, err)
	assert.NotEmpty(t, raw)
	assert.Equal(t, "7", claims.Subject)

	checked, err := a.Check(context.Background(), raw)
	require.NoError(t, err)
	assert.Equal(t, claims.ID, checked.ID)

	finder.AssertExpectations(t)
}

func TestLogin_Rejections(t *testing.T) {
	a, _ := newTestAuthenticator(t, nil)

	tests := []struct {
		name     string
		user     string
		password string
		want     error
	}{
		{"missing user", "", "s3cret", ErrMissingCredentials},
		{"missing password", "ana", "", ErrMissingCredentials},
		{"unknown user", "ghost", "s3cret", ErrUnknownUser},
		{"wrong password", "ana", "nope", ErrWrongPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, claims, err := a.Login(context.Background(), tt.user, tt.password)
			assert.ErrorIs(t, err, tt.want)
			assert.True(t, IsRejection(err))
			assert.Empty(t, raw)
			assert.Nil(t, claims)
		})
	}
}

func TestLogin_StoreFailureIsNotRejection(t *testing.T) {
	finder := &mockFinder{}
	finder.On("FindEmployeeByUser", mock.Anything, "ana").Return(nil, errors.New("connection refused"))

	a := NewAuthenticator(finder, NewIssuer("test-secret", time.Hour), nil)
	_, _, err := a.Login(context.Background(), "ana", "s3cret")

	require.Error(t, err)
	assert.False(t, IsRejection(err))
}

func TestLogout_RevokesToken(t *testing.T) {
	rev := &memoryRevoker{}
	a, _ := newTestAuthenticator(t, rev)

	raw, _, err := a.Login(context.Background(), "ana", "s3cret")
	require.NoError(t, err)

	require.NoError(t, a.Logout(context.Background(), raw))

	_, err = a.Check(context.Background(), raw)
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestCheck_RevocationStoreDown(t *testing.T) {
	rev := &memoryRevoker{err: errors.New("redis down")}
	a, _ := newTestAuthenticator(t, rev)

	raw, _, err := a.Login(context.Background(), "ana", "s3cret")
	require.NoError(t, err)

	_, err = a.Check(context.Background(), raw)
	assert.NoError(t, err)
}
