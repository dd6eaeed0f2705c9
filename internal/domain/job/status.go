package job

import (
	"github.com/BruksfildServices01/elite-admin/internal/httperr"
	"github.com/BruksfildServices01/elite-admin/internal/models"
)

// CanFinish rejects scheduled jobs that were already billed.
func CanFinish(sj *models.ScheduledJob) error {
	if sj.IsCompleted() {
		return httperr.ErrBusiness(httperr.CodeJobAlreadyCompleted)
	}
	return nil
}

// Finish marks sj completed and returns the worked job that bills it.
func Finish(sj *models.ScheduledJob) (*models.WorkedJob, error) {
	if err := CanFinish(sj); err != nil {
		return nil, err
	}

	status := models.JobStatusCompleted
	sj.Status = &status

	return &models.WorkedJob{
		Service:  sj.Service,
		Date:     sj.Date,
		ClientID: sj.ClientID,
		Status:   models.JobStatusCompleted,
	}, nil
}
