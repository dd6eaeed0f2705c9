package job

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/elite-admin/internal/domain/job"
)

type CalendarMonth struct {
	repo domain.Repository
	loc  *time.Location
	now  func() time.Time
}

func NewCalendarMonth(repo domain.Repository, loc *time.Location) *CalendarMonth {
	return &CalendarMonth{repo: repo, loc: loc, now: time.Now}
}

// Execute builds the grid for year/month. A zero year or month means the
// current one in the business time zone.
func (uc *CalendarMonth) Execute(
	ctx context.Context,
	year int,
	month time.Month,
	service string,
) (*domain.Month, error) {

	now := uc.now().In(uc.loc)
	if year == 0 {
		year = now.Year()
	}
	if month == 0 {
		month = now.Month()
	}

	start, end := domain.GridBounds(year, month, uc.loc)

	jobs, err := uc.repo.ListScheduledJobsForPeriod(ctx, start, end, service)
	if err != nil {
		return nil, err
	}

	m := domain.BuildMonth(year, month, uc.loc, now, jobs)
	return &m, nil
}
