package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/merseybathrooms/jobtracker/internal/db"
	"github.com/merseybathrooms/jobtracker/internal/domain/job"
	domain "github.com/merseybathrooms/jobtracker/internal/domain/report"
	"github.com/merseybathrooms/jobtracker/internal/httperr"
	"github.com/merseybathrooms/jobtracker/internal/models"
)

type ReportGormRepository struct {
	db *gorm.DB
}

func NewReportGormRepository(db *gorm.DB) *ReportGormRepository {
	return &ReportGormRepository{db: db}
}

func (r *ReportGormRepository) CreateReportAndTransition(
	ctx context.Context,
	rep *models.Report,
	next job.Status,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var j models.Job
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&j, "id = ?", rep.JobID).Error; err != nil {

			if errors.Is(err, gorm.ErrRecordNotFound) {
				return httperr.ErrBusiness(httperr.CodeJobNotFound)
			}
			return err
		}

		var count int64
		if err := tx.Model(&models.Report{}).
			Where("job_id = ?", rep.JobID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return httperr.ErrBusiness(httperr.CodeDuplicateReport)
		}

		if err := tx.Omit(clause.Associations).Create(rep).Error; err != nil {
			if db.IsUniqueViolation(err) {
				return httperr.ErrBusiness(httperr.CodeDuplicateReport)
			}
			return err
		}

		res := tx.Model(&models.Job{}).
			Where("id = ?", rep.JobID).
			Update("status", string(next))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected != 1 {
			return httperr.ErrBusiness(httperr.CodeJobNotFound)
		}

		return nil
	})
}

func (r *ReportGormRepository) GetReport(
	ctx context.Context,
	id string,
) (*models.Report, error) {

	var rep models.Report
	err := r.db.WithContext(ctx).
		Preload("Job").
		First(&rep, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, httperr.ErrBusiness(httperr.CodeReportNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &rep, nil
}

func (r *ReportGormRepository) ListReports(
	ctx context.Context,
) ([]models.Report, error) {

	var reps []models.Report
	if err := r.db.WithContext(ctx).
		Preload("Job").
		Order("created_at DESC").
		Order("id DESC").
		Find(&reps).Error; err != nil {
		return nil, err
	}
	return reps, nil
}

// Compile-time check
var _ domain.Repository = (*ReportGormRepository)(nil)
