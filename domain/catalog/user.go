package catalog

import "strings"

// Role is the authorization role carried in the session claim.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleEjecutivo Role = "ejecutivo"
	RoleCliente   Role = "cliente"
)

// Roles lists every known role.
var Roles = []Role{RoleAdmin, RoleEjecutivo, RoleCliente}

// IsValid reports whether r is a known role.
func (r Role) IsValid() bool {
	for _, known := range Roles {
		if r == known {
			return true
		}
	}
	return false
}

// UserStatus is the lifecycle state of an account.
type UserStatus string

const (
	UserActive   UserStatus = "active"
	UserPending  UserStatus = "pending"
	UserInactive UserStatus = "inactive"
)

// UserStatuses lists the status buckets reported by user stats.
var UserStatuses = []string{string(UserActive), string(UserPending), string(UserInactive)}

// User is an account of the admin console. Password holds a bcrypt hash and never leaves the server.
type User struct {
	ID          string     `json:"id" dynamodbav:"id"`
	Email       string     `json:"email" dynamodbav:"email"`
	Password    string     `json:"-" dynamodbav:"password,omitempty"`
	Name        string     `json:"name" dynamodbav:"name"`
	Role        Role       `json:"role" dynamodbav:"role"`
	Status      UserStatus `json:"status" dynamodbav:"status"`
	CreatedAt   string     `json:"createdAt" dynamodbav:"createdAt"`
	UpdatedAt   string     `json:"updatedAt" dynamodbav:"updatedAt"`
	LastLoginAt string     `json:"lastLoginAt,omitempty" dynamodbav:"lastLoginAt,omitempty"`
}

// IsActive reports whether the account may sign in.
func (u *User) IsActive() bool {
	return u.Status == UserActive
}

// NormalizeEmail is the canonical form of the email lookup key.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// UserPatch is a partial update. Nil fields are left untouched.
type UserPatch struct {
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=8,max=72"`
	Name     *string `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Role     *string `json:"role,omitempty" validate:"omitempty,oneof=admin ejecutivo cliente"`
	Status   *string `json:"status,omitempty" validate:"omitempty,oneof=active pending inactive"`
}

// Fields returns the stored attributes the patch sets. Password must already be hashed.
func (p UserPatch) Fields() map[string]interface{} {
	f := map[string]interface{}{}
	if p.Email != nil {
		f["email"] = NormalizeEmail(*p.Email)
	}
	if p.Password != nil {
		f["password"] = *p.Password
	}
	if p.Name != nil {
		f["name"] = *p.Name
	}
	if p.Role != nil {
		f["role"] = *p.Role
	}
	if p.Status != nil {
		f["status"] = *p.Status
	}
	return f
}

// UserStats counts users both by status and by role. Each breakdown sums to Total.
type UserStats struct {
	Total    int            `json:"total"`
	ByStatus map[string]int `json:"byStatus"`
	ByRole   map[string]int `json:"byRole"`
}

// NewUserStats returns zeroed buckets for every known status and role.
func NewUserStats() UserStats {
	s := UserStats{ByStatus: map[string]int{}, ByRole: map[string]int{}}
	for _, st := range UserStatuses {
		s.ByStatus[st] = 0
	}
	for _, r := range Roles {
		s.ByRole[string(r)] = 0
	}
	return s
}

// Add counts one user.
func (s *UserStats) Add(status, role string) {
	s.Total++
	s.ByStatus[bucket(s.ByStatus, status)]++
	s.ByRole[bucket(s.ByRole, role)]++
}
