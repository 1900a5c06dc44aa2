package user

// Repository defines data access for accounts.
type Repository interface {
	Create(u *User) error
	FindByID(id uint) (*User, error)
	FindByUsername(username string) (User, error)
	FindAll() ([]User, error)
	Save(u *User) error
}
