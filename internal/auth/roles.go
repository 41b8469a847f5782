package auth

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/business-site-service/internal/domain"
)

// RequireCustomer ensures a portal customer is authenticated.
func RequireCustomer() fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok || principal.Kind != domain.AccountKindCustomer || principal.Customer == nil {
			return fiber.NewError(http.StatusForbidden, "customer account required")
		}
		return c.Next()
	}
}

// RequireAdmin ensures the admin principal has one of the allowed roles.
// With no roles listed, any active admin passes.
func RequireAdmin(allowed ...domain.AdminRole) fiber.Handler {
	allowedSet := make(map[domain.AdminRole]struct{}, len(allowed))
	for _, role := range allowed {
		allowedSet[role] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok || principal.Kind != domain.AccountKindAdmin || principal.Admin == nil {
			return fiber.NewError(http.StatusForbidden, "admin role required")
		}
		if len(allowedSet) == 0 {
			return c.Next()
		}
		if _, exists := allowedSet[principal.Admin.Role]; !exists {
			return fiber.NewError(http.StatusForbidden, "insufficient role")
		}
		return c.Next()
	}
}

// RequireAnyAccount ensures caller is authenticated (admin or customer).
func RequireAnyAccount() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := PrincipalFromContext(c); !ok {
			return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
		}
		return c.Next()
	}
}
