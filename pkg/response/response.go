package response

import "github.com/jobtrackhq/jobtrack-go/internal/domain/job"

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type TokenResponse struct {
	Token    string `json:"token"`
	UID      uint   `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// JobListResponse is the paginated list payload.
type JobListResponse struct {
	TotalJobs   int64     `json:"totalJobs"`
	CurrentPage int       `json:"currentPage"`
	TotalPages  int       `json:"totalPages"`
	Jobs        []job.Job `json:"jobs"`
}
