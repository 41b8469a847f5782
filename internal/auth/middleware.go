package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/business-site-service/internal/domain"
	"github.com/spec-kit/business-site-service/internal/repository"
	apperrors "github.com/spec-kit/business-site-service/pkg/util/errorutil"
)

const principalKey = "auth_principal"

// Principal represents the authenticated caller.
type Principal struct {
	Kind     domain.AccountKind
	Admin    *domain.AdminAccount
	Customer *domain.CustomerAccount
}

// AuthMiddleware validates bearer tokens and loads principals.
type AuthMiddleware struct {
	tokens    *TokenManager
	admins    repository.AdminRepository
	customers repository.CustomerRepository
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(tokens *TokenManager, admins repository.AdminRepository, customers repository.CustomerRepository) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, admins: admins, customers: customers}
}

// Handle enforces authentication for protected routes.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return apperrors.NewUnauthorized("missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.NewUnauthorized("invalid authorization header")
	}

	claims, err := m.tokens.ParseToken(parts[1])
	if err != nil {
		return apperrors.NewUnauthorized("invalid token")
	}

	principal := &Principal{Kind: claims.Kind}

	switch claims.Kind {
	case domain.AccountKindAdmin:
		admin, err := m.admins.GetByID(c.Context(), claims.AccountID)
		if err != nil {
			if err == pgx.ErrNoRows {
				return apperrors.NewUnauthorized("admin not found")
			}
			return apperrors.MapError(err)
		}
		if !admin.Active {
			return apperrors.NewUnauthorized("account inactive")
		}
		principal.Admin = admin
	case domain.AccountKindCustomer:
		customer, err := m.customers.GetByID(c.Context(), claims.AccountID)
		if err != nil {
			if err == pgx.ErrNoRows {
				return apperrors.NewUnauthorized("customer not found")
			}
			return apperrors.MapError(err)
		}
		if !customer.Active {
			return apperrors.NewUnauthorized("account inactive")
		}
		principal.Customer = customer
	default:
		return apperrors.NewUnauthorized("unknown account kind")
	}

	c.Locals(principalKey, principal)
	return c.Next()
}

// PrincipalFromContext retrieves the authenticated entity.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}
