package domain

// Role enumerates access levels for back-office accounts.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleStaff Role = "staff"
)

// User is a back-office staff account. PublicID is the stable identifier
// exposed outside the database; the serial ID never leaves the store.
type User struct {
	ID           int64
	PublicID     string
	Username     string
	Email        string
	FirstName    string
	LastName     string
	PasswordHash string
	Role         Role
}

// IsAdmin reports whether the account may manage other accounts.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// DisplayName is the name stamped into RMA case stage fields.
func (u *User) DisplayName() string {
	return u.FirstName + " " + u.LastName
}
