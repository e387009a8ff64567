package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	issuer "github.com/merseybathrooms/jobtracker/internal/auth"
	domain "github.com/merseybathrooms/jobtracker/internal/domain/user"
	"github.com/merseybathrooms/jobtracker/internal/httperr"
	"github.com/merseybathrooms/jobtracker/internal/models"
	"github.com/merseybathrooms/jobtracker/internal/validators"
)

// dummyHash is compared against when the email is unknown so both
// failure paths cost one bcrypt comparison.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("not-a-real-password"), PasswordCost)

type Login struct {
	users  domain.Repository
	tokens *issuer.Issuer
}

func NewLogin(users domain.Repository, tokens *issuer.Issuer) *Login {
	return &Login{users: users, tokens: tokens}
}

func (uc *Login) Execute(
	ctx context.Context,
	email string,
	password string,
) (string, *models.User, error) {

	u, err := uc.users.FindByEmail(ctx, validators.NormalizeEmail(email))
	if err != nil {
		return "", nil, err
	}

	hash := dummyHash
	if u != nil {
		hash = []byte(u.PasswordHash)
	}

	if err := bcrypt.CompareHashAndPassword(hash, []byte(password)); err != nil || u == nil {
		return "", nil, httperr.ErrBusiness(httperr.CodeInvalidCredentials)
	}

	token, err := uc.tokens.Issue(u)
	if err != nil {
		return "", nil, err
	}

	return token, u, nil
}
