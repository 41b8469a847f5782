package domain

import "time"

// CustomerAccount models a portal customer.
type CustomerAccount struct {
	ID           string
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	Phone        string
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
