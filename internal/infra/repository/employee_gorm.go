package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/elite-admin/internal/models"
)

type EmployeeGormRepository struct {
	db *gorm.DB
}

func NewEmployeeGormRepository(db *gorm.DB) *EmployeeGormRepository {
	return &EmployeeGormRepository{db: db}
}

func (r *EmployeeGormRepository) FindEmployeeByUser(
	ctx context.Context,
	user string,
) (*models.Employee, error) {

	var emp models.Employee
	if err := r.db.WithContext(ctx).
		Where(map[string]any{"user": user}).
		First(&emp).Error; err != nil {
		return nil, err
	}
	return &emp, nil
}

func (r *EmployeeGormRepository) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	var emps []models.Employee
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&emps).Error; err != nil {
		return nil, err
	}
	return emps, nil
}

func (r *EmployeeGormRepository) UpdatePassword(
	ctx context.Context,
	id uint,
	hash string,
) error {

	return r.db.WithContext(ctx).
		Model(&models.Employee{}).
		Where("id = ?", id).
		Update("password", hash).Error
}
