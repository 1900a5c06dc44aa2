package repository

import (
	"github.com/jobtrackhq/jobtrack-go/internal/config/db"
)

// Repos bundles every repository behind one handle.
type Repos struct {
	User UserRepo
	Job  JobRepo
}

func New() *Repos {
	return &Repos{
		User: NewUserRepo(db.DB),
		Job:  NewJobRepo(db.DB),
	}
}
