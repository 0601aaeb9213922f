package user

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"    // HR admin: approves leave, manages employees
	RoleEmployee Role = "employee" // Regular employee
)

type User struct {
	ID           string
	Email        string
	PasswordHash string
	Role         Role
	EmployeeID   *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin checks if the user can approve requests and manage employees.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
