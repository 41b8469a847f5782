package domain

import "time"

// AdminRole enumerates back-office roles.
type AdminRole string

const (
	AdminRoleOwner   AdminRole = "OWNER"
	AdminRoleManager AdminRole = "MANAGER"
	AdminRoleStaff   AdminRole = "STAFF"
)

// AdminAccount models a back-office operator.
type AdminAccount struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	Role         AdminRole
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
