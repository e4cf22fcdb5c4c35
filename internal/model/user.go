package model

import "time"

// Role values as stored in users.role. The set is closed: a user is
// created with one of these and no endpoint exists that changes it.
const (
	RoleUser  = "User"
	RoleAdmin = "Admin"
)

// ValidRole reports whether s is one of the known role names. The
// comparison is case-sensitive on purpose; "admin" is not a role.
func ValidRole(s string) bool {
	return s == RoleUser || s == RoleAdmin
}

// User represents an application user record as stored in the `users`
// table. Each field corresponds to a column. The json tags are omitted
// because these structs are used internally by the repository layer;
// handlers define separate response types with appropriate JSON tags.
//
// Fields:
//  ID           – primary key identifier of the user.
//  Username     – unique login name.
//  Email        – unique email address.
//  PasswordHash – bcrypt hashed password; never serialized outward.
//  Role         – role name, RoleUser or RoleAdmin.
//  CreatedAt    – timestamp of registration.
type User struct {
	ID           uint64    // users.id
	Username     string    // users.username
	Email        string    // users.email
	PasswordHash string    // users.password_hash
	Role         string    // users.role
	CreatedAt    time.Time // users.created_at
}

// UserStats is the aggregate returned by the user analytics query:
// total user count plus a role-name to count mapping computed in a
// single GROUP BY pass.
type UserStats struct {
	TotalUsers  int64
	UsersByRole map[string]int64
}
