package job

import (
	"context"

	"github.com/BruksfildServices01/elite-admin/internal/audit"
	domain "github.com/BruksfildServices01/elite-admin/internal/domain/job"
	"github.com/BruksfildServices01/elite-admin/internal/models"
)

type FinishAndBill struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewFinishAndBill(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *FinishAndBill {
	return &FinishAndBill{
		repo:  repo,
		audit: audit,
	}
}

type FinishResult struct {
	ScheduledJob *models.ScheduledJob `json:"scheduledJob"`
	WorkedJob    *models.WorkedJob    `json:"workedJob"`
}

func (uc *FinishAndBill) Execute(
	ctx context.Context,
	actorID uint,
	scheduledJobID uint,
) (*FinishResult, error) {

	sj, wj, err := uc.repo.FinishScheduledJob(ctx, scheduledJobID, domain.Finish)
	if err != nil {
		return nil, err
	}

	var employeeID *uint
	if actorID != 0 {
		employeeID = &actorID
	}

	uc.audit.Dispatch(audit.Event{
		EmployeeID: employeeID,
		Action:     "scheduled_job_finished",
		Entity:     "scheduled_job",
		EntityID:   &sj.ID,
		Metadata:   map[string]any{"workedJobId": wj.ID},
	})

	return &FinishResult{ScheduledJob: sj, WorkedJob: wj}, nil
}
