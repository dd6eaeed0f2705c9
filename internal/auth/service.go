package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/elite-admin/internal/models"
)

var (
	ErrMissingCredentials = errors.New("Faltan credenciales")
	ErrUnknownUser        = errors.New("No existe usuario")
	ErrWrongPassword      = errors.New("Password incorrecto")
)

// IsRejection reports whether err is a login rejection rather than a failure.
func IsRejection(err error) bool {
	return errors.Is(err, ErrMissingCredentials) ||
		errors.Is(err, ErrUnknownUser) ||
		errors.Is(err, ErrWrongPassword)
}

type EmployeeFinder interface {
	FindEmployeeByUser(ctx context.Context, user string) (*models.Employee, error)
}

type Authenticator struct {
	employees EmployeeFinder
	issuer    *Issuer
	revoker   Revoker
}

func NewAuthenticator(employees EmployeeFinder, issuer *Issuer, revoker Revoker) *Authenticator {
	if revoker == nil {
		revoker = NoopRevoker{}
	}
	return &Authenticator{employees: employees, issuer: issuer, revoker: revoker}
}

func (a *Authenticator) TTL() time.Duration {
	return a.issuer.TTL()
}

// Login returns a signed session token for valid credentials.
func (a *Authenticator) Login(ctx context.Context, user, password string) (string, *Claims, error) {
	user = strings.TrimSpace(user)
	if user == "" || password == "" {
		return "", nil, ErrMissingCredentials
	}

	emp, err := a.employees.FindEmployeeByUser(ctx, user)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrUnknownUser
		}
		return "", nil, err
	}

	if err := ComparePassword(emp.Password, password); err != nil {
		return "", nil, err
	}

	return a.issuer.Issue(emp)
}

// Check validates a token and its revocation state.
func (a *Authenticator) Check(ctx context.Context, raw string) (*Claims, error) {
	claims, err := a.issuer.Parse(raw)
	if err != nil {
		return nil, err
	}

	revoked, err := a.revoker.IsRevoked(ctx, claims.ID)
	if err != nil {
		// revocation store down: trust the signature
		zerolog.Ctx(ctx).Warn().Err(err).Msg("revocation lookup failed")
		return claims, nil
	}
	if revoked {
		return nil, ErrInvalidSession
	}
	return claims, nil
}

func (a *Authenticator) Logout(ctx context.Context, raw string) error {
	claims, err := a.issuer.Parse(raw)
	if err != nil {
		return nil
	}
	return a.revoker.Revoke(ctx, claims.ID, claims.ExpiresAt.Time)
}
