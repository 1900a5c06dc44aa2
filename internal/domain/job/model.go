package job

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Status represents where an application currently stands.
type Status string

const (
	StatusApplied   Status = "applied"
	StatusInterview Status = "interview"
	StatusOffer     Status = "offer"
	StatusRejected  Status = "rejected"
)

// ValidStatus reports whether s is one of the known statuses.
func ValidStatus(s Status) bool {
	switch s {
	case StatusApplied, StatusInterview, StatusOffer, StatusRejected:
		return true
	}
	return false
}

// Priority of an application.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func ValidPriority(p Priority) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// MaxNotesLength bounds the free-text notes field.
const MaxNotesLength = 1000

// StatusChange is one entry in a job's status history.
type StatusChange struct {
	Status    Status    `json:"status"`
	ChangedAt time.Time `json:"changedAt"`
}

// Job is a single tracked application. StatusHistory is stored as an
// embedded jsonb array so the read-modify-append stays within one
// document write.
type Job struct {
	ID            string         `gorm:"type:uuid;primaryKey;column:id" json:"id"`
	OwnerID       uint           `gorm:"not null;index;column:owner_id" json:"ownerId"`
	Company       string         `gorm:"size:255;not null;index" json:"company"`
	Position      string         `gorm:"size:255;not null;index" json:"position"`
	Status        Status         `gorm:"size:20;default:'applied'" json:"status"`
	StatusHistory datatypes.JSON `gorm:"type:jsonb" json:"statusHistory"`
	Priority      Priority       `gorm:"size:20;default:'medium'" json:"priority"`
	Location      string         `gorm:"size:255" json:"location,omitempty"`
	Notes         string         `gorm:"size:1000" json:"notes,omitempty"`
	AppliedDate   time.Time      `gorm:"column:applied_date;autoCreateTime" json:"appliedDate"`
	FollowUpDate  *time.Time     `gorm:"column:follow_up_date" json:"followUpDate,omitempty"`
	IsArchived    bool           `gorm:"default:false;not null;index" json:"isArchived"`
	CreatedAt     time.Time      `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (Job) TableName() string {
	return "jobs"
}

// BeforeCreate assigns the opaque id.
func (j *Job) BeforeCreate(tx *gorm.DB) error {
	if j.ID == "" {
		j.ID = uuid.NewString()
	}
	return nil
}

// History decodes the status history column.
func (j *Job) History() ([]StatusChange, error) {
	if len(j.StatusHistory) == 0 {
		return nil, nil
	}
	var history []StatusChange
	if err := json.Unmarshal(j.StatusHistory, &history); err != nil {
		return nil, err
	}
	return history, nil
}

// SetHistory encodes and replaces the status history column.
func (j *Job) SetHistory(history []StatusChange) error {
	raw, err := json.Marshal(history)
	if err != nil {
		return err
	}
	j.StatusHistory = datatypes.JSON(raw)
	return nil
}

// AppendStatus records a transition at the end of the history and
// updates the current status in the same mutation.
func (j *Job) AppendStatus(s Status, at time.Time) error {
	history, err := j.History()
	if err != nil {
		return err
	}
	history = append(history, StatusChange{Status: s, ChangedAt: at})
	if err := j.SetHistory(history); err != nil {
		return err
	}
	j.Status = s
	return nil
}
