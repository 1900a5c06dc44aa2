package repository

import (
	"github.com/jobtrackhq/jobtrack-go/internal/domain/job"
	"gorm.io/gorm"
)

// JobRepo matches the domain job repository contract.
type JobRepo interface {
	job.Repository
	WithTx(tx *gorm.DB) JobRepo
}

type DBJobRepo struct {
	db *gorm.DB
}

func NewJobRepo(db *gorm.DB) *DBJobRepo {
	return &DBJobRepo{
		db: db,
	}
}

func (r *DBJobRepo) Create(j *job.Job) error {
	return r.db.Create(j).Error
}

func (r *DBJobRepo) FindByID(id string) (*job.Job, error) {
	var j job.Job
	err := r.db.First(&j, "id = ?", id).Error
	return &j, err
}

// scoped translates a Filter into a gorm query. List views never see
// archived rows.
func (r *DBJobRepo) scoped(f job.Filter) *gorm.DB {
	q := r.db.Model(&job.Job{}).Where("is_archived = ?", false)

	if !f.Scope.All {
		q = q.Where("owner_id = ?", f.Scope.OwnerID)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Priority != "" {
		q = q.Where("priority = ?", f.Priority)
	}
	if f.Search != "" {
		pattern := "%" + f.Search + "%"
		q = q.Where("company ILIKE ? OR position ILIKE ?", pattern, pattern)
	}
	return q
}

func (r *DBJobRepo) Find(f job.Filter, sort job.Sort, skip, limit int) ([]job.Job, error) {
	q := r.scoped(f)

	switch sort {
	case job.SortOldest:
		q = q.Order("created_at ASC")
	default:
		// "latest" and the unspecified case both order newest first,
		// keeping pagination deterministic.
		q = q.Order("created_at DESC")
	}

	var jobs []job.Job
	err := q.Offset(skip).Limit(limit).Find(&jobs).Error
	return jobs, err
}

func (r *DBJobRepo) Count(f job.Filter) (int64, error) {
	var total int64
	err := r.scoped(f).Count(&total).Error
	return total, err
}

func (r *DBJobRepo) Save(j *job.Job) error {
	return r.db.Save(j).Error
}

func (r *DBJobRepo) WithTx(tx *gorm.DB) JobRepo {
	if tx == nil {
		return r
	}
	return &DBJobRepo{
		db: tx,
	}
}
