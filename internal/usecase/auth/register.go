package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/merseybathrooms/jobtracker/internal/audit"
	domain "github.com/merseybathrooms/jobtracker/internal/domain/user"
	"github.com/merseybathrooms/jobtracker/internal/httperr"
	"github.com/merseybathrooms/jobtracker/internal/models"
	"github.com/merseybathrooms/jobtracker/internal/validators"
)

// PasswordCost is the bcrypt work factor for stored passwords.
const PasswordCost = bcrypt.DefaultCost

// ======================================================
// INPUT
// ======================================================

type RegisterInput struct {
	Email    string
	Password string
	Name     string
	Role     string

	// CallerRole is the role of the authenticated caller, empty for
	// self-registration. Only a boss may create another boss.
	CallerRole string
}

// ======================================================
// USE CASE
// ======================================================

type Register struct {
	users       domain.Repository
	audit       *audit.Dispatcher
	checkDomain bool
}

func NewRegister(
	users domain.Repository,
	audit *audit.Dispatcher,
	checkDomain bool,
) *Register {
	return &Register{
		users:       users,
		audit:       audit,
		checkDomain: checkDomain,
	}
}

func (uc *Register) Execute(
	ctx context.Context,
	in RegisterInput,
) (*models.User, error) {

	email := validators.NormalizeEmail(in.Email)
	if !validators.IsEmail(email) {
		return nil, httperr.ErrBusinessMsg(httperr.CodeValidation, "a valid email is required")
	}
	if uc.checkDomain && !validators.IsEmailDomainValid(email) {
		return nil, httperr.ErrBusinessMsg(httperr.CodeValidation, "email domain does not resolve")
	}
	if in.Password == "" {
		return nil, httperr.ErrBusinessMsg(httperr.CodeValidation, "password is required")
	}

	role := in.Role
	if role == "" {
		role = models.RoleWorker
	}
	if !models.IsValidRole(role) {
		return nil, httperr.ErrBusinessMsg(httperr.CodeValidation, "role must be boss or worker")
	}
	if role == models.RoleBoss && in.CallerRole != models.RoleBoss {
		return nil, httperr.ErrBusinessMsg(httperr.CodeForbidden, "only a boss can create a boss account")
	}

	existing, err := uc.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, httperr.ErrBusiness(httperr.CodeDuplicateUser)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), PasswordCost)
	if err != nil {
		return nil, err
	}

	u := &models.User{
		Email:        email,
		Name:         in.Name,
		PasswordHash: string(hashed),
		Role:         role,
	}
	if err := uc.users.CreateUser(ctx, u); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &u.ID,
		Action:   "user_registered",
		Entity:   "user",
		EntityID: &u.ID,
		Metadata: map[string]any{"role": u.Role},
	})

	return u, nil
}
