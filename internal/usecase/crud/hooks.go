package crud

import (
	"context"
	"slices"

	"github.com/BruksfildServices01/elite-admin/internal/auth"
	"github.com/BruksfildServices01/elite-admin/internal/httperr"
	"github.com/BruksfildServices01/elite-admin/internal/models"
)

// EmployeeHooks stores passwords as bcrypt hashes and never returns them.
func EmployeeHooks() Hooks[models.Employee] {
	hash := func(e *models.Employee) error {
		if e.Password == "" {
			return nil
		}
		h, err := auth.HashPassword(e.Password)
		if err != nil {
			return err
		}
		e.Password = h
		return nil
	}

	return Hooks[models.Employee]{
		BeforeCreate: func(_ context.Context, e *models.Employee) error {
			return hash(e)
		},
		BeforeUpdate: func(_ context.Context, p *Patch[models.Employee]) error {
			if !slices.Contains(p.Columns, "password") {
				return nil
			}
			// a blank password keeps the stored hash
			if p.Row.Password == "" {
				p.Columns = slices.DeleteFunc(slices.Clone(p.Columns), func(c string) bool { return c == "password" })
				p.Keys = slices.DeleteFunc(slices.Clone(p.Keys), func(k string) bool { return k == "password" })
				return nil
			}
			return hash(p.Row)
		},
		Present: func(e *models.Employee) {
			e.Password = ""
		},
	}
}

type ClientUsage interface {
	CountJobsForClient(ctx context.Context, clientID uint) (int64, error)
}

// ClientHooks refuses to delete clients that jobs still point at.
func ClientHooks(usage ClientUsage) Hooks[models.Client] {
	return Hooks[models.Client]{
		BeforeDelete: func(ctx context.Context, id uint) error {
			n, err := usage.CountJobsForClient(ctx, id)
			if err != nil {
				return err
			}
			if n > 0 {
				return httperr.ErrBusiness(httperr.CodeClientInUse)
			}
			return nil
		},
	}
}

func WorkedJobHooks() Hooks[models.WorkedJob] {
	return Hooks[models.WorkedJob]{
		BeforeCreate: func(_ context.Context, j *models.WorkedJob) error {
			if j.Status == "" {
				j.Status = models.JobStatusCompleted
			}
			return nil
		},
	}
}
