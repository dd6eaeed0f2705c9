package repository

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/elite-admin/internal/domain/job"
	"github.com/BruksfildServices01/elite-admin/internal/models"
)

type JobGormRepository struct {
	db *gorm.DB
}

var _ domain.Repository = (*JobGormRepository)(nil)

func NewJobGormRepository(db *gorm.DB) *JobGormRepository {
	return &JobGormRepository{db: db}
}

// --------------------------------------------------
// Finish and bill
// --------------------------------------------------

func (r *JobGormRepository) FinishScheduledJob(
	ctx context.Context,
	id uint,
	fn domain.FinishFunc,
) (*models.ScheduledJob, *models.WorkedJob, error) {

	var (
		sj models.ScheduledJob
		wj *models.WorkedJob
	)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&sj, id).Error; err != nil {
			return err
		}

		created, err := fn(&sj)
		if err != nil {
			return err
		}

		if err := tx.Model(&models.ScheduledJob{}).
			Where("id = ?", sj.ID).
			Update("status", sj.Status).Error; err != nil {
			return err
		}

		if err := tx.Omit(clause.Associations).Create(created).Error; err != nil {
			return err
		}

		wj = created
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	var (
		outSJ models.ScheduledJob
		outWJ models.WorkedJob
	)
	if err := r.db.WithContext(ctx).Preload("Client").First(&outSJ, sj.ID).Error; err != nil {
		return nil, nil, err
	}
	if err := r.db.WithContext(ctx).Preload("Client").First(&outWJ, wj.ID).Error; err != nil {
		return nil, nil, err
	}

	return &outSJ, &outWJ, nil
}

// --------------------------------------------------
// Calendar
// --------------------------------------------------

func (r *JobGormRepository) ListScheduledJobsForPeriod(
	ctx context.Context,
	start time.Time,
	end time.Time,
	service string,
) ([]models.ScheduledJob, error) {

	q := r.db.WithContext(ctx).
		Preload("Client").
		Where("date >= ? AND date < ?", start.UTC(), end.UTC())

	if s := strings.TrimSpace(service); s != "" {
		q = q.Where("LOWER(service) LIKE ?", "%"+strings.ToLower(s)+"%")
	}

	var jobs []models.ScheduledJob
	if err := q.Order("date ASC, id ASC").Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

// --------------------------------------------------
// Client usage
// --------------------------------------------------

func (r *JobGormRepository) CountJobsForClient(
	ctx context.Context,
	clientID uint,
) (int64, error) {

	var scheduled, worked int64

	if err := r.db.WithContext(ctx).
		Model(&models.ScheduledJob{}).
		Where("client_id = ?", clientID).
		Count(&scheduled).Error; err != nil {
		return 0, err
	}

	if err := r.db.WithContext(ctx).
		Model(&models.WorkedJob{}).
		Where("client_id = ?", clientID).
		Count(&worked).Error; err != nil {
		return 0, err
	}

	return scheduled + worked, nil
}
