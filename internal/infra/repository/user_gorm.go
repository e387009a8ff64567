package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/merseybathrooms/jobtracker/internal/db"
	domain "github.com/merseybathrooms/jobtracker/internal/domain/user"
	"github.com/merseybathrooms/jobtracker/internal/httperr"
	"github.com/merseybathrooms/jobtracker/internal/models"
)

type UserGormRepository struct {
	db *gorm.DB
}

func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{db: db}
}

func (r *UserGormRepository) FindByEmail(
	ctx context.Context,
	email string,
) (*models.User, error) {

	var u models.User
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserGormRepository) CreateUser(
	ctx context.Context,
	u *models.User,
) error {

	err := r.db.WithContext(ctx).Create(u).Error
	if db.IsUniqueViolation(err) {
		return httperr.ErrBusiness(httperr.CodeDuplicateUser)
	}
	return err
}

func (r *UserGormRepository) GetUser(
	ctx context.Context,
	id string,
) (*models.User, error) {

	var u models.User
	err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, httperr.ErrBusiness(httperr.CodeUserNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Compile-time check
var _ domain.Repository = (*UserGormRepository)(nil)
