package job

// Scope restricts a query to the records a caller may see. Admins get
// the unrestricted scope; everyone else is pinned to their own rows.
type Scope struct {
	All     bool
	OwnerID uint
}

// ScopeAll covers every owner's jobs.
func ScopeAll() Scope {
	return Scope{All: true}
}

// ScopeOwnedBy covers a single owner's jobs.
func ScopeOwnedBy(ownerID uint) Scope {
	return Scope{OwnerID: ownerID}
}

// Sort is the list ordering requested by the caller.
type Sort string

const (
	SortLatest Sort = "latest"
	SortOldest Sort = "oldest"
)

// Filter describes one list query. Archived rows are always excluded;
// the zero values of the optional fields mean "not filtered".
type Filter struct {
	Scope    Scope
	Status   Status
	Priority Priority
	Search   string
}

// Repository defines data access for jobs. Find and Count over the
// same Filter are two independent reads, not a transaction.
type Repository interface {
	Create(j *Job) error
	FindByID(id string) (*Job, error)
	Find(f Filter, sort Sort, skip, limit int) ([]Job, error)
	Count(f Filter) (int64, error)
	Save(j *Job) error
}
