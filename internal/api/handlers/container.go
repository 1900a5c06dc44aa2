package handlers

import (
	"github.com/jobtrackhq/jobtrack-go/internal/application"
)

// Handlers bundles every HTTP handler behind one handle.
type Handlers struct {
	User *UserHandler
	Job  *JobHandler
}

func New(services *application.Services) *Handlers {
	return &Handlers{
		User: NewUserHandler(services.User),
		Job:  NewJobHandler(services.Job),
	}
}
