package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/business-site-service/internal/auth"
	"github.com/spec-kit/business-site-service/internal/config"
	"github.com/spec-kit/business-site-service/internal/domain"
	"github.com/spec-kit/business-site-service/internal/events"
	"github.com/spec-kit/business-site-service/internal/repository"
)

// AuthService coordinates the unified login flow plus registration and
// password management for both account kinds.
type AuthService struct {
	admins     repository.AdminRepository
	customers  repository.CustomerRepository
	resets     repository.PasswordResetRepository
	dispatcher events.Dispatcher
	tokenMgr   *auth.TokenManager
	bcryptCost int
	resetTTL   time.Duration
}

// AuthDependencies encapsulates repo requirements for auth service.
type AuthDependencies struct {
	AdminRepo         repository.AdminRepository
	CustomerRepo      repository.CustomerRepository
	PasswordResetRepo repository.PasswordResetRepository
	Dispatcher        events.Dispatcher
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	return &AuthService{
		admins:     deps.AdminRepo,
		customers:  deps.CustomerRepo,
		resets:     deps.PasswordResetRepo,
		dispatcher: deps.Dispatcher,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AdminTokenTTLDays, cfg.Auth.CustomerTokenTTLDays),
		bcryptCost: cfg.Auth.BcryptCost,
		resetTTL:   time.Duration(cfg.Auth.PasswordResetTTLMinutes) * time.Minute,
	}
}

// LoginResult is the tagged outcome of the dual-table probe. Token fields
// are set only for the two match outcomes.
type LoginResult struct {
	Outcome   domain.LoginOutcome
	Admin     *domain.AdminAccount
	Customer  *domain.CustomerAccount
	Token     string
	ExpiresAt time.Time
}

// NormalizeEmail lowercases and trims an address so that lookups are
// case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Login runs the unified login probe: admin table first, then customers.
// The admin check fully resolves, including the password comparison,
// before the customer check begins. A wrong admin password falls through
// without revealing that an admin record exists; a disabled customer
// account is reported distinctly.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	normalized := NormalizeEmail(email)

	admin, err := s.admins.GetByEmail(ctx, normalized)
	switch {
	case err == nil:
		if admin.Active && auth.ComparePassword(admin.PasswordHash, password) == nil {
			token, exp, err := s.tokenMgr.GenerateToken(admin.ID, admin.Email, domain.AccountKindAdmin)
			if err != nil {
				return nil, err
			}
			return &LoginResult{
				Outcome:   domain.LoginOutcomeAdminMatch,
				Admin:     admin,
				Token:     token,
				ExpiresAt: exp,
			}, nil
		}
	case errors.Is(err, pgx.ErrNoRows):
		// no admin with that email; fall through to customers
	default:
		return nil, err
	}

	customer, err := s.customers.GetByEmail(ctx, normalized)
	switch {
	case err == nil:
		if !customer.Active {
			return &LoginResult{Outcome: domain.LoginOutcomeCustomerDisabled, Customer: customer}, nil
		}
		if auth.ComparePassword(customer.PasswordHash, password) == nil {
			token, exp, err := s.tokenMgr.GenerateToken(customer.ID, customer.Email, domain.AccountKindCustomer)
			if err != nil {
				return nil, err
			}
			return &LoginResult{
				Outcome:   domain.LoginOutcomeCustomerMatch,
				Customer:  customer,
				Token:     token,
				ExpiresAt: exp,
			}, nil
		}
	case errors.Is(err, pgx.ErrNoRows):
	default:
		return nil, err
	}

	return &LoginResult{Outcome: domain.LoginOutcomeNoMatch}, nil
}

// RegisterCustomer creates a new portal account and issues a customer token.
func (s *AuthService) RegisterCustomer(ctx context.Context, firstName, lastName, phone, email, password string) (*domain.CustomerAccount, string, time.Time, error) {
	normalized := NormalizeEmail(email)

	if _, err := s.customers.GetByEmail(ctx, normalized); err == nil {
		return nil, "", time.Time{}, errors.New("email already registered")
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, "", time.Time{}, err
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	customer := &domain.CustomerAccount{
		Email:        normalized,
		PasswordHash: hash,
		FirstName:    strings.TrimSpace(firstName),
		LastName:     strings.TrimSpace(lastName),
		Phone:        strings.TrimSpace(phone),
		Active:       true,
	}
	if err := s.customers.Create(ctx, customer); err != nil {
		return nil, "", time.Time{}, err
	}

	token, exp, err := s.tokenMgr.GenerateToken(customer.ID, customer.Email, domain.AccountKindCustomer)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return customer, token, exp, nil
}

// UpdateCustomerProfile mutates the profile fields of a portal account.
func (s *AuthService) UpdateCustomerProfile(ctx context.Context, customerID, firstName, lastName, phone string) (*domain.CustomerAccount, error) {
	customer, err := s.customers.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	customer.FirstName = strings.TrimSpace(firstName)
	customer.LastName = strings.TrimSpace(lastName)
	customer.Phone = strings.TrimSpace(phone)
	if err := s.customers.Update(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// ChangeCustomerPassword verifies the current password before updating.
func (s *AuthService) ChangeCustomerPassword(ctx context.Context, customerID, currentPassword, newPassword string) error {
	customer, err := s.customers.GetByID(ctx, customerID)
	if err != nil {
		return err
	}
	if err := auth.ComparePassword(customer.PasswordHash, currentPassword); err != nil {
		return errors.New("invalid credentials")
	}
	hash, err := auth.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return err
	}
	customer.PasswordHash = hash
	return s.customers.Update(ctx, customer)
}

// RequestPasswordReset persists a reset token for either account kind and
// publishes an event so the notification service can send the email.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) (*repository.PasswordResetToken, error) {
	normalized := NormalizeEmail(email)

	kind := domain.AccountKindAdmin
	accountID := ""

	if admin, err := s.admins.GetByEmail(ctx, normalized); err == nil {
		accountID = admin.ID
	} else if errors.Is(err, pgx.ErrNoRows) {
		customer, customerErr := s.customers.GetByEmail(ctx, normalized)
		if customerErr != nil {
			return nil, customerErr
		}
		kind = domain.AccountKindCustomer
		accountID = customer.ID
	} else {
		return nil, err
	}

	token := &repository.PasswordResetToken{
		AccountKind: string(kind),
		AccountID:   accountID,
		Token:       uuid.NewString(),
		ExpiresAt:   time.Now().Add(s.resetTTL),
	}
	if err := s.resets.Create(ctx, token); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventPasswordResetRequested,
		EntityID:  accountID,
		Timestamp: time.Now(),
		Payload: events.PasswordResetRequestedPayload{
			AccountKind: kind,
			Email:       normalized,
			Token:       token.Token,
			ExpiresAt:   token.ExpiresAt,
		},
	})
	return token, nil
}

// ConfirmPasswordReset validates the reset token and updates the password.
func (s *AuthService) ConfirmPasswordReset(ctx context.Context, tokenStr, newPassword string) error {
	token, err := s.resets.GetByToken(ctx, tokenStr)
	if err != nil {
		return err
	}
	if token.UsedAt != nil || time.Now().After(token.ExpiresAt) {
		return errors.New("token expired or used")
	}

	hash, err := auth.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return err
	}

	switch domain.AccountKind(token.AccountKind) {
	case domain.AccountKindAdmin:
		admin, err := s.admins.GetByID(ctx, token.AccountID)
		if err != nil {
			return err
		}
		admin.PasswordHash = hash
		if err := s.admins.Update(ctx, admin); err != nil {
			return err
		}
	case domain.AccountKindCustomer:
		customer, err := s.customers.GetByID(ctx, token.AccountID)
		if err != nil {
			return err
		}
		customer.PasswordHash = hash
		if err := s.customers.Update(ctx, customer); err != nil {
			return err
		}
	default:
		return errors.New("unknown account kind")
	}

	return s.resets.MarkUsed(ctx, token.ID)
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

func (s *AuthService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, event)
}
