package job

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/jobtrackhq/jobtrack-go/internal/domain/job"
	"github.com/jobtrackhq/jobtrack-go/internal/domain/user"
	"github.com/jobtrackhq/jobtrack-go/internal/repository/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// --------------------- Setup ---------------------

func setupJobServiceMocks(t *testing.T) (*Service, *mock.MockJobRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockJobs := mock.NewMockJobRepo(ctrl)
	svc := NewService(mockJobs)
	return svc, mockJobs
}

var (
	owner    = user.Identity{UserID: 7, Username: "alice", Role: user.RoleStandard}
	stranger = user.Identity{UserID: 8, Username: "mallory", Role: user.RoleStandard}
	admin    = user.Identity{UserID: 1, Username: "root", Role: user.RoleAdmin}
)

func seededJob(t *testing.T, status job.Status) *job.Job {
	j := &job.Job{
		ID:       "3f0c8e18-9f41-4b55-8a9a-2d55d77a3a01",
		OwnerID:  owner.UserID,
		Company:  "Acme Corp",
		Position: "Engineer",
		Status:   status,
		Priority: job.PriorityMedium,
	}
	require.NoError(t, j.SetHistory([]job.StatusChange{{Status: status, ChangedAt: time.Now()}}))
	return j
}

func historyOf(t *testing.T, j *job.Job) []job.StatusChange {
	history, err := j.History()
	require.NoError(t, err)
	return history
}

func ptrStatus(s job.Status) *job.Status       { return &s }
func ptrString(s string) *string               { return &s }
func ptrPriority(p job.Priority) *job.Priority { return &p }

// --------------------- CreateJob ---------------------

func TestCreateJob_DefaultsAndSeededHistory(t *testing.T) {
	svc, mockJobs := setupJobServiceMocks(t)

	mockJobs.EXPECT().Create(gomock.Any()).Return(nil)

	created, err := svc.CreateJob(context.Background(), owner, CreateJobRequest{
		Company:  "  Acme  ",
		Position: "Engineer",
	})
	require.NoError(t, err)

	assert.Equal(t, owner.UserID, created.OwnerID)
	assert.Equal(t, "Acme", created.Company)
	assert.Equal(t, job.StatusApplied, created.Status)
	assert.Equal(t, job.PriorityMedium, created.Priority)

	history := historyOf(t, created)
	require.Len(t, history, 1)
	assert.Equal(t, job.StatusApplied, history[0].Status)
}

func TestCreateJob_ExplicitStatusSeedsHistory(t *testing.T) {
	svc, mockJobs := setupJobServiceMocks(t)

	mockJobs.EXPECT().Create(gomock.Any()).Return(nil)

	created, err := svc.CreateJob(context.Background(), owner, CreateJobRequest{
		Company:  "Acme",
		Position: "Engineer",
		Status:   job.StatusInterview,
	})
	require.NoError(t, err)

	history := historyOf(t, created)
	require.Len(t, history, 1)
	assert.Equal(t, job.StatusInterview, history[0].Status)
	assert.Equal(t, job.StatusInterview, created.Status)
}

func TestCreateJob_MissingRequiredFields(t *testing.T) {
	svc, _ := setupJobServiceMocks(t)

	_, err := svc.CreateJob(context.Background(), owner, CreateJobRequest{Company: "   ", Position: "Engineer"})
	assert.Equal(t, ErrCompanyAndPositionRequired, err)

	_, err = svc.CreateJob(context.Background(), owner, CreateJobRequest{Company: "Acme"})
	assert.Equal(t, ErrCompanyAndPositionRequired, err)
}

func TestCreateJob_InvalidEnums(t *testing.T) {
	svc, _ := setupJobServiceMocks(t)

	_, err := svc.CreateJob(context.Background(), owner, CreateJobRequest{
		Company: "Acme", Position: "Engineer", Status: "ghosted",
	})
	assert.Equal(t, ErrInvalidStatus, err)

	_, err = svc.CreateJob(context.Background(), owner, CreateJobRequest{
		Company: "Acme", Position: "Engineer", Priority: "urgent",
	})
	assert.Equal(t, ErrInvalidPriority, err)
}

func TestCreateJob_NotesTooLong(t *testing.T) {
	svc, _ := setupJobServiceMocks(t)

	_, err := svc.CreateJob(context.Background(), owner, CreateJobRequest{
		Company: "Acme", Position: "Engineer", Notes: strings.Repeat("x", job.MaxNotesLength+1),
	})
	assert.Equal(t, ErrNotesTooLong, err)
}

func TestCreateJob_DuplicatesAllowed(t *testing.T) {
	svc, mockJobs := setupJobServiceMocks(t)

	mockJobs.EXPECT().Create(gomock.Any()).Return(nil).Times(2)

	req := CreateJobRequest{Company: "Acme", Position: "Engineer"}
	_, err := svc.CreateJob(context.Background(), owner, req)
	require.NoError(t, err)
	_, err = svc.CreateJob(context.Background(), owner, req)
	require.NoError(t, err)
}

// --------------------- ListJobs ---------------------

func TestListJobs_ScopedToOwnerForStandardRole(t *testing.T) {
	svc, mockJobs := setupJobServiceMocks(t)

	expectedFilter := job.Filter{Scope: job.ScopeOwnedBy(owner.UserID)}
	mockJobs.EXPECT().Find(expectedFilter, job.Sort(""), 0, 10).Return([]job.Job{}, nil)
	mockJobs.EXPECT().Count(expectedFilter).Return(int64(0), nil)

	result, err := svc.ListJobs(context.Background(), owner, ListJobsQuery{})
	require.NoError(t, err)
	assert.Equal(t, 1, result.CurrentPage)
}

func TestListJobs_AdminSeesAllOwners(t *testing.T) {
	svc, mockJobs := setupJobServiceMocks(t)

	expectedFilter := job.Filter{Scope: job.ScopeAll()}
	mockJobs.EXPECT().Find(expectedFilter, job.Sort(""), 0, 10).Return([]job.Job{}, nil)
	mockJobs.EXPECT().Count(expectedFilter).Return(int64(0), nil)

	_, err := svc.ListJobs(context.Background(), admin, ListJobsQuery{})
	require.NoError(t, err)
}

func TestListJobs_FilterAndSearchPassThrough(t *testing.T) {
	svc, mockJobs := setupJobServiceMocks(t)

	expectedFilter := job.Filter{
		Scope:    job.ScopeOwnedBy(owner.UserID),
		Status:   job.StatusInterview,
		Priority: job.PriorityHigh,
		Search:   "acme",
	}
	mockJobs.EXPECT().Find(expectedFilter, job.SortOldest, 0, 10).Return([]job.Job{}, nil)
	mockJobs.EXPECT().Count(expectedFilter).Return(int64(0), nil)

	_, err := svc.ListJobs(context.Background(), owner, ListJobsQuery{
		Status:   job.StatusInterview,
		Priority: job.PriorityHigh,
		Search:   " acme ",
		Sort:     job.SortOldest,
	})
	require.NoError(t, err)
}

func TestListJobs_PaginationArithmetic(t *testing.T) {
	svc, mockJobs := setupJobServiceMocks(t)

	// 25 matches, limit 10, page 3: skip 20, 5 items, 3 pages.
	expectedFilter := job.Filter{Scope: job.ScopeOwnedBy(owner.UserID)}
	mockJobs.EXPECT().Find(expectedFilter, job.Sort(""), 20, 10).Return(make([]job.Job, 5), nil)
	mockJobs.EXPECT().Count(expectedFilter).Return(int64(25), nil)

	result, err := svc.ListJobs(context.Background(), owner, ListJobsQuery{Page: 3, Limit: 10})
	require.NoError(t, err)

	assert.Equal(t, int64(25), result.TotalJobs)
	assert.Equal(t, 3, result.CurrentPage)
	assert.Equal(t, 3, result.TotalPages)
	assert.Len(t, result.Jobs, 5)
}

// --------------------- UpdateJob ---------------------

func TestUpdateJob_StatusChangeAppendsHistory(t *testing.T) {
	svc, mockJobs := setupJobServiceMocks(t)

	existing := seededJob(t, job.StatusApplied)
	mockJobs.EXPECT().FindByID(existing.ID).Return(existing, nil)
	mockJobs.EXPECT().Save(gomock.Any()).Return(nil)

	updated, err := svc.UpdateJob(context.Background(), owner, existing.ID, UpdateJobRequest{
		Status: ptrStatus(job.StatusInterview),
	})
	require.NoError(t, err)

	assert.Equal(t, job.StatusInterview, updated.Status)
	history := historyOf(t, updated)
	require.Len(t, history, 2)
	assert.Equal(t, job.StatusInterview, history[1].Status)
}

func TestUpdateJob_SameStatusIsNoOpOnHistory(t *testing.T) {
	svc, mockJobs := setupJobServiceMocks(t)

	existing := seededJob(t, job.StatusApplied)
	mockJobs.EXPECT().FindByID(existing.ID).Return(existing, nil)
	mockJobs.EXPECT().Save(gomock.Any()).Return(nil)

	updated, err := svc.UpdateJob(context.Background(), owner, existing.ID, UpdateJobRequest{
		Status: ptrStatus(job.StatusApplied),
	})
	require.NoError(t, err)

	assert.Len(t, historyOf(t, updated), 1)
}

func TestUpdateJob_SuccessiveStatusChanges(t *testing.T) {
	svc, mockJobs := setupJobServiceMocks(t)

	existing := seededJob(t, job.StatusApplied)
	mockJobs.EXPECT().FindByID(existing.ID).Return(existing, nil).Times(3)
	mockJobs.EXPECT().Save(gomock.Any()).Return(nil).Times(3)

	for _, next := range []job.Status{job.StatusInterview, job.StatusOffer, job.StatusRejected} {
		_, err := svc.UpdateJob(context.Background(), owner, existing.ID, UpdateJobRequest{Status: ptrStatus(next)})
		require.NoError(t, err)
	}

	history := historyOf(t, existing)
	require.Len(t, history, 4)
	assert.Equal(t, existing.Status, history[len(history)-1].Status)
	assert.Equal(t, job.StatusRejected, existing.Status)
}

func TestUpdateJob_NotFound(t *testing.T) {
	svc, mockJobs := setupJobServiceMocks(t)

	mockJobs.EXPECT().FindByID("missing").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.UpdateJob(context.Background(), owner, "missing", UpdateJobRequest{})
	assert.Equal(t, ErrJobNotFound, err)
}

func TestUpdateJob_ArchivedIsNotFound(t *testing.T) {
	svc, mockJobs := setupJobServiceMocks(t)

	// An archived job is logically gone for edits even though delete
	// still reaches it. Asymmetry is deliberate.
	existing := seededJob(t, job.StatusApplied)
	existing.IsArchived = true
	mockJobs.EXPECT().FindByID(existing.ID).Return(existing, nil)

	_, err := svc.UpdateJob(context.Background(), owner, existing.ID, UpdateJobRequest{
		Status: ptrStatus(job.StatusOffer),
	})
	assert.Equal(t, ErrJobNotFound, err)
}

func TestUpdateJob_ForbiddenForNonOwner(t *testing.T) {
	svc, mockJobs := setupJobServiceMocks(t)

	existing := seededJob(t, job.StatusApplied)
	mockJobs.EXPECT().FindByID(existing.ID).Return(existing, nil)

	_, err := svc.UpdateJob(context.Background(), stranger, existing.ID, UpdateJobRequest{
		Company: ptrString("Hijacked Inc"),
	})
	assert.Equal(t, ErrNotJobOwner, err)
	assert.Equal(t, "Acme Corp", existing.Company)
}

func TestUpdateJob_AdminOverride(t *testing.T) {
	svc, mockJobs := setupJobServiceMocks(t)

	existing := seededJob(t, job.StatusApplied)
	mockJobs.EXPECT().FindByID(existing.ID).Return(existing, nil)
	mockJobs.EXPECT().Save(gomock.Any()).Return(nil)

	updated, err := svc.UpdateJob(context.Background(), admin, existing.ID, UpdateJobRequest{
		Priority: ptrPriority(job.PriorityHigh),
	})
	require.NoError(t, err)
	assert.Equal(t, job.PriorityHigh, updated.Priority)
	assert.Equal(t, owner.UserID, updated.OwnerID)
}

func TestUpdateJob_ShallowMergeLeavesOtherFields(t *testing.T) {
	svc, mockJobs := setupJobServiceMocks(t)

	existing := seededJob(t, job.StatusApplied)
	existing.Location = "Berlin"
	existing.Notes = "first round done"
	mockJobs.EXPECT().FindByID(existing.ID).Return(existing, nil)
	mockJobs.EXPECT().Save(gomock.Any()).Return(nil)

	updated, err := svc.UpdateJob(context.Background(), owner, existing.ID, UpdateJobRequest{
		Company: ptrString("Acme GmbH"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Acme GmbH", updated.Company)
	assert.Equal(t, "Berlin", updated.Location)
	assert.Equal(t, "first round done", updated.Notes)
	assert.Equal(t, job.StatusApplied, updated.Status)
}

func TestUpdateJob_RejectsEmptyRequiredPatch(t *testing.T) {
	svc, mockJobs := setupJobServiceMocks(t)

	existing := seededJob(t, job.StatusApplied)
	mockJobs.EXPECT().FindByID(existing.ID).Return(existing, nil)

	_, err := svc.UpdateJob(context.Background(), owner, existing.ID, UpdateJobRequest{
		Company: ptrString("   "),
	})
	assert.Equal(t, ErrCompanyAndPositionRequired, err)
}

// --------------------- ArchiveJob ---------------------

func TestArchiveJob_Success(t *testing.T) {
	svc, mockJobs := setupJobServiceMocks(t)

	existing := seededJob(t, job.StatusApplied)
	mockJobs.EXPECT().FindByID(existing.ID).Return(existing, nil)
	mockJobs.EXPECT().Save(gomock.Any()).Return(nil)

	err := svc.ArchiveJob(context.Background(), owner, existing.ID)
	require.NoError(t, err)
	assert.True(t, existing.IsArchived)
}

func TestArchiveJob_AlreadyArchived(t *testing.T) {
	svc, mockJobs := setupJobServiceMocks(t)

	// Unlike update, delete still finds an archived job and succeeds
	// again with the same effect.
	existing := seededJob(t, job.StatusApplied)
	existing.IsArchived = true
	mockJobs.EXPECT().FindByID(existing.ID).Return(existing, nil)
	mockJobs.EXPECT().Save(gomock.Any()).Return(nil)

	err := svc.ArchiveJob(context.Background(), owner, existing.ID)
	require.NoError(t, err)
	assert.True(t, existing.IsArchived)
}

func TestArchiveJob_NotFound(t *testing.T) {
	svc, mockJobs := setupJobServiceMocks(t)

	mockJobs.EXPECT().FindByID("missing").Return(nil, gorm.ErrRecordNotFound)

	err := svc.ArchiveJob(context.Background(), owner, "missing")
	assert.Equal(t, ErrJobNotFound, err)
}

func TestArchiveJob_ForbiddenForNonOwner(t *testing.T) {
	svc, mockJobs := setupJobServiceMocks(t)

	existing := seededJob(t, job.StatusApplied)
	mockJobs.EXPECT().FindByID(existing.ID).Return(existing, nil)

	err := svc.ArchiveJob(context.Background(), stranger, existing.ID)
	assert.Equal(t, ErrNotJobOwner, err)
	assert.False(t, existing.IsArchived)
}

func TestArchiveJob_AdminOverride(t *testing.T) {
	svc, mockJobs := setupJobServiceMocks(t)

	existing := seededJob(t, job.StatusApplied)
	mockJobs.EXPECT().FindByID(existing.ID).Return(existing, nil)
	mockJobs.EXPECT().Save(gomock.Any()).Return(nil)

	err := svc.ArchiveJob(context.Background(), admin, existing.ID)
	require.NoError(t, err)
	assert.True(t, existing.IsArchived)
}

func TestStoreFailureIsWrapped(t *testing.T) {
	svc, mockJobs := setupJobServiceMocks(t)

	boom := errors.New("connection reset")
	mockJobs.EXPECT().FindByID("any").Return(nil, boom)

	_, err := svc.UpdateJob(context.Background(), owner, "any", UpdateJobRequest{})
	require.Error(t, err)
	assert.NotEqual(t, ErrJobNotFound, err)
	assert.ErrorIs(t, err, boom)
}
