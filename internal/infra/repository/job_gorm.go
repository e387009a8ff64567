package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/merseybathrooms/jobtracker/internal/domain/job"
	"github.com/merseybathrooms/jobtracker/internal/httperr"
	"github.com/merseybathrooms/jobtracker/internal/models"
)

type JobGormRepository struct {
	db *gorm.DB
}

func NewJobGormRepository(db *gorm.DB) *JobGormRepository {
	return &JobGormRepository{db: db}
}

func (r *JobGormRepository) CreateJob(
	ctx context.Context,
	j *models.Job,
) error {
	return r.db.WithContext(ctx).Create(j).Error
}

func (r *JobGormRepository) GetJob(
	ctx context.Context,
	id string,
) (*models.Job, error) {

	var j models.Job
	err := r.db.WithContext(ctx).
		Preload("Report").
		First(&j, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, httperr.ErrBusiness(httperr.CodeJobNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &j, nil
}

func (r *JobGormRepository) ListJobs(
	ctx context.Context,
	f domain.ListFilter,
) ([]models.Job, error) {

	q := r.db.WithContext(ctx).Preload("Report")

	if f.Status != "" {
		q = q.Where("status = ?", string(f.Status))
	}
	if f.VisibleTo != "" {
		q = q.Where("assigned_to_id IS NULL OR assigned_to_id = ?", f.VisibleTo)
	}
	if f.ScheduledDate != "" {
		q = q.Where("scheduled_date = ?", f.ScheduledDate)
	}

	var jobs []models.Job
	if err := q.
		Order("created_at DESC").
		Order("id DESC").
		Find(&jobs).Error; err != nil {
		return nil, err
	}

	return jobs, nil
}

func (r *JobGormRepository) UserExists(
	ctx context.Context,
	id string,
	role string,
) (bool, error) {

	var count int64
	q := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id)
	if role != "" {
		q = q.Where("role = ?", role)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Compile-time check
var _ domain.Repository = (*JobGormRepository)(nil)
