package job

import (
	"context"
	"time"

	"github.com/BruksfildServices01/elite-admin/internal/models"
)

// FinishFunc mutates the locked scheduled job and returns the worked job to
// insert alongside it.
type FinishFunc func(sj *models.ScheduledJob) (*models.WorkedJob, error)

type Repository interface {
	// FinishScheduledJob runs fn against the locked row and persists both
	// rows in one transaction.
	FinishScheduledJob(
		ctx context.Context,
		id uint,
		fn FinishFunc,
	) (*models.ScheduledJob, *models.WorkedJob, error)

	ListScheduledJobsForPeriod(
		ctx context.Context,
		start time.Time,
		end time.Time,
		service string,
	) ([]models.ScheduledJob, error)

	CountJobsForClient(
		ctx context.Context,
		clientID uint,
	) (int64, error)
}
