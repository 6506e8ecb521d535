package users

// Role is a user's access level.
type Role string

// Status is whether the account may sign in.
type Status string

const (
	RoleAdmin   Role = "Admin"
	RoleManager Role = "Manager"
	RoleUser    Role = "User"

	StatusActive    Status = "Active"
	StatusSuspended Status = "Suspended"
)

// Roles and Statuses list the filter options in display order.
var (
	Roles    = []Role{RoleAdmin, RoleManager, RoleUser}
	Statuses = []Status{StatusActive, StatusSuspended}
)

// User represents a user account for management.
type User struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      Role   `json:"role"`
	Status    Status `json:"status"`
	CreatedAt string `json:"createdAt"`
}

// Patch holds the fields an edit overwrites; nil fields are left alone.
type Patch struct {
	Name      *string
	Email     *string
	Role      *Role
	Status    *Status
	CreatedAt *string
}

func (p Patch) apply(u User) User {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Role != nil {
		u.Role = *p.Role
	}
	if p.Status != nil {
		u.Status = *p.Status
	}
	if p.CreatedAt != nil {
		u.CreatedAt = *p.CreatedAt
	}
	return u
}

// Stats are the KPI cards above the table.
type Stats struct {
	Total  int
	Active int
	Admins int
}
