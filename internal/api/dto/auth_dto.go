package dto

import (
	"time"

	"github.com/spec-kit/business-site-service/internal/domain"
)

// LoginRequest is the unified login payload for both account kinds.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest is the customer self-registration payload.
type RegisterRequest struct {
	FirstName string `json:"firstName" validate:"required,max=100"`
	LastName  string `json:"lastName" validate:"required,max=100"`
	Phone     string `json:"phone" validate:"max=30"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
}

// PasswordChangeRequest payload.
type PasswordChangeRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=8"`
}

// PasswordResetRequest payload.
type PasswordResetRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// PasswordResetConfirmRequest payload.
type PasswordResetConfirmRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=8"`
}

// AdminUser is the public projection of an admin account. The password
// hash is never serialized.
type AdminUser struct {
	ID       string           `json:"id"`
	Email    string           `json:"email"`
	Username string           `json:"username"`
	Role     domain.AdminRole `json:"role"`
}

// CustomerUser is the public projection of a customer account.
type CustomerUser struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
}

// LoginData is the success payload of the unified login endpoint.
type LoginData struct {
	UserType   domain.AccountKind `json:"userType"`
	RedirectTo string             `json:"redirectTo"`
	User       any                `json:"user"`
	Token      string             `json:"token"`
	ExpiresAt  time.Time          `json:"expiresAt"`
}

// NewAdminUser projects the public admin fields.
func NewAdminUser(admin *domain.AdminAccount) AdminUser {
	return AdminUser{
		ID:       admin.ID,
		Email:    admin.Email,
		Username: admin.Username,
		Role:     admin.Role,
	}
}

// NewCustomerUser projects the public customer fields.
func NewCustomerUser(customer *domain.CustomerAccount) CustomerUser {
	return CustomerUser{
		ID:        customer.ID,
		Email:     customer.Email,
		FirstName: customer.FirstName,
		LastName:  customer.LastName,
		Phone:     customer.Phone,
	}
}
