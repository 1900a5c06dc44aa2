package application

import (
	jobapp "github.com/jobtrackhq/jobtrack-go/internal/application/job"
	"github.com/jobtrackhq/jobtrack-go/internal/repository"
)

// Services bundles every application service behind one handle.
type Services struct {
	User *UserService
	Job  *jobapp.Service
}

func New(repos *repository.Repos) *Services {
	return &Services{
		User: NewUserService(repos),
		Job:  jobapp.NewService(repos.Job),
	}
}
