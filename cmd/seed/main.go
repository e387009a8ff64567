// Command seed creates the default boss and worker accounts.
package main

import (
	"context"
	"log"

	"github.com/merseybathrooms/jobtracker/internal/config"
	dbpkg "github.com/merseybathrooms/jobtracker/internal/db"
	"github.com/merseybathrooms/jobtracker/internal/httperr"
	"github.com/merseybathrooms/jobtracker/internal/infra/repository"
	"github.com/merseybathrooms/jobtracker/internal/models"
	ucAuth "github.com/merseybathrooms/jobtracker/internal/usecase/auth"
)

var defaultUsers = []ucAuth.RegisterInput{
	{Email: "boss@test.com", Password: "password", Name: "Boss User", Role: models.RoleBoss},
	{Email: "worker@test.com", Password: "password", Name: "Worker User", Role: models.RoleWorker},
}

func main() {
	cfg := config.Load()

	db, err := dbpkg.Open(cfg.DBUrl)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer dbpkg.Close(db)

	register := ucAuth.NewRegister(repository.NewUserGormRepository(db), nil, false)

	ctx := context.Background()
	for _, in := range defaultUsers {
		in.CallerRole = models.RoleBoss
		u, err := register.Execute(ctx, in)
		switch {
		case httperr.IsBusiness(err, httperr.CodeDuplicateUser):
			log.Printf("%s already exists", in.Email)
		case err != nil:
			log.Fatalf("seed %s: %v", in.Email, err)
		default:
			log.Printf("created %s (%s)", u.Email, u.Role)
		}
	}
}
