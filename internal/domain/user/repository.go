package user

import (
	"context"

	"github.com/merseybathrooms/jobtracker/internal/models"
)

// Repository is the credential store.
type Repository interface {
	// FindByEmail returns (nil, nil) when no user has that email.
	FindByEmail(ctx context.Context, email string) (*models.User, error)

	// CreateUser fails with duplicate_user when the email is taken.
	CreateUser(ctx context.Context, u *models.User) error

	GetUser(ctx context.Context, id string) (*models.User, error)
}
