package job

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/jobtrackhq/jobtrack-go/internal/domain/job"
	"github.com/jobtrackhq/jobtrack-go/internal/domain/user"
	"gorm.io/gorm"
)

// Caller-fixable failures, mapped to HTTP statuses by the handlers.
var (
	ErrCompanyAndPositionRequired = errors.New("company and position are required")
	ErrInvalidStatus              = errors.New("invalid status")
	ErrInvalidPriority            = errors.New("invalid priority")
	ErrNotesTooLong               = errors.New("notes must be at most 1000 characters")
	ErrJobNotFound                = errors.New("job not found")
	ErrNotJobOwner                = errors.New("not authorized to modify this job")
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// Service is the job resource engine: ownership-scoped queries plus
// history-tracking mutations on top of the store contract.
type Service struct {
	jobs job.Repository
}

func NewService(jobs job.Repository) *Service {
	return &Service{jobs: jobs}
}

// scopeFor resolves the record scope a caller operates under.
func scopeFor(identity user.Identity) job.Scope {
	if identity.IsAdmin() {
		return job.ScopeAll()
	}
	return job.ScopeOwnedBy(identity.UserID)
}

// canMutate is the ownership gate. Callers must confirm the job exists
// first; not-found strictly precedes forbidden so a 403 never leaks
// that a foreign record exists.
func canMutate(identity user.Identity, j *job.Job) bool {
	return identity.IsAdmin() || identity.UserID == j.OwnerID
}

// CreateJobRequest carries the fields a caller may set at creation.
type CreateJobRequest struct {
	Company      string       `json:"company" binding:"required"`
	Position     string       `json:"position" binding:"required"`
	Status       job.Status   `json:"status"`
	Location     string       `json:"location"`
	Priority     job.Priority `json:"priority"`
	FollowUpDate *time.Time   `json:"followUpDate"`
	Notes        string       `json:"notes"`
}

// CreateJob inserts a new job owned by the caller, seeding the status
// history with the initial status. Duplicate company/position pairs
// are allowed; applying twice is legitimate.
func (s *Service) CreateJob(ctx context.Context, identity user.Identity, req CreateJobRequest) (*job.Job, error) {
	company := strings.TrimSpace(req.Company)
	position := strings.TrimSpace(req.Position)
	if company == "" || position == "" {
		return nil, ErrCompanyAndPositionRequired
	}

	status := req.Status
	if status == "" {
		status = job.StatusApplied
	}
	if !job.ValidStatus(status) {
		return nil, ErrInvalidStatus
	}

	priority := req.Priority
	if priority == "" {
		priority = job.PriorityMedium
	}
	if !job.ValidPriority(priority) {
		return nil, ErrInvalidPriority
	}

	if len(req.Notes) > job.MaxNotesLength {
		return nil, ErrNotesTooLong
	}

	newJob := &job.Job{
		OwnerID:      identity.UserID,
		Company:      company,
		Position:     position,
		Status:       status,
		Priority:     priority,
		Location:     strings.TrimSpace(req.Location),
		Notes:        req.Notes,
		FollowUpDate: req.FollowUpDate,
	}
	if err := newJob.SetHistory([]job.StatusChange{{Status: status, ChangedAt: time.Now()}}); err != nil {
		return nil, fmt.Errorf("failed to seed status history: %w", err)
	}

	if err := s.jobs.Create(newJob); err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}

	return newJob, nil
}

// ListJobsQuery mirrors the GET /jobs query parameters.
type ListJobsQuery struct {
	Status   job.Status
	Priority job.Priority
	Search   string
	Sort     job.Sort
	Page     int
	Limit    int
}

// ListJobsResult is one page plus the pagination arithmetic over the
// full match count.
type ListJobsResult struct {
	TotalJobs   int64
	CurrentPage int
	TotalPages  int
	Jobs        []job.Job
}

// ListJobs builds the caller-scoped filter and returns one page.
// Count and page fetch share the filter but are independent reads;
// a concurrent write may skew them slightly.
func (s *Service) ListJobs(ctx context.Context, identity user.Identity, q ListJobsQuery) (*ListJobsResult, error) {
	page := q.Page
	if page < 1 {
		page = DefaultPage
	}
	limit := q.Limit
	if limit < 1 {
		limit = DefaultLimit
	}

	filter := job.Filter{
		Scope:    scopeFor(identity),
		Status:   q.Status,
		Priority: q.Priority,
		Search:   strings.TrimSpace(q.Search),
	}

	skip := (page - 1) * limit
	jobs, err := s.jobs.Find(filter, q.Sort, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}

	total, err := s.jobs.Count(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to count jobs: %w", err)
	}

	return &ListJobsResult{
		TotalJobs:   total,
		CurrentPage: page,
		TotalPages:  int(math.Ceil(float64(total) / float64(limit))),
		Jobs:        jobs,
	}, nil
}

// UpdateJobRequest is a shallow patch; nil fields are left untouched.
// Owner and history are not patchable, status flows through the
// history-append path only.
type UpdateJobRequest struct {
	Company      *string       `json:"company"`
	Position     *string       `json:"position"`
	Status       *job.Status   `json:"status"`
	Priority     *job.Priority `json:"priority"`
	Location     *string       `json:"location"`
	Notes        *string       `json:"notes"`
	FollowUpDate *time.Time    `json:"followUpDate"`
	AppliedDate  *time.Time    `json:"appliedDate"`
}

// UpdateJob applies a patch to an existing job. Archived jobs are
// reported as not found; an archived job is logically gone for edits
// even though delete still reaches it.
func (s *Service) UpdateJob(ctx context.Context, identity user.Identity, jobID string, patch UpdateJobRequest) (*job.Job, error) {
	j, err := s.jobs.FindByID(jobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to fetch job: %w", err)
	}
	if j.IsArchived {
		return nil, ErrJobNotFound
	}

	if !canMutate(identity, j) {
		return nil, ErrNotJobOwner
	}

	if patch.Status != nil {
		if !job.ValidStatus(*patch.Status) {
			return nil, ErrInvalidStatus
		}
		if *patch.Status != j.Status {
			if err := j.AppendStatus(*patch.Status, time.Now()); err != nil {
				return nil, fmt.Errorf("failed to append status history: %w", err)
			}
		}
	}

	if patch.Company != nil {
		company := strings.TrimSpace(*patch.Company)
		if company == "" {
			return nil, ErrCompanyAndPositionRequired
		}
		j.Company = company
	}
	if patch.Position != nil {
		position := strings.TrimSpace(*patch.Position)
		if position == "" {
			return nil, ErrCompanyAndPositionRequired
		}
		j.Position = position
	}
	if patch.Priority != nil {
		if !job.ValidPriority(*patch.Priority) {
			return nil, ErrInvalidPriority
		}
		j.Priority = *patch.Priority
	}
	if patch.Location != nil {
		j.Location = strings.TrimSpace(*patch.Location)
	}
	if patch.Notes != nil {
		if len(*patch.Notes) > job.MaxNotesLength {
			return nil, ErrNotesTooLong
		}
		j.Notes = *patch.Notes
	}
	if patch.FollowUpDate != nil {
		j.FollowUpDate = patch.FollowUpDate
	}
	if patch.AppliedDate != nil {
		j.AppliedDate = *patch.AppliedDate
	}

	if err := s.jobs.Save(j); err != nil {
		return nil, fmt.Errorf("failed to save job: %w", err)
	}

	return j, nil
}

// ArchiveJob soft-deletes a job. Unlike update, an already-archived
// job is still found here and re-archiving succeeds with no effect.
func (s *Service) ArchiveJob(ctx context.Context, identity user.Identity, jobID string) error {
	j, err := s.jobs.FindByID(jobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrJobNotFound
		}
		return fmt.Errorf("failed to fetch job: %w", err)
	}

	if !canMutate(identity, j) {
		return ErrNotJobOwner
	}

	j.IsArchived = true
	if err := s.jobs.Save(j); err != nil {
		return fmt.Errorf("failed to archive job: %w", err)
	}

	return nil
}
