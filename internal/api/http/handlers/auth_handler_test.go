package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"golang.org/x/crypto/bcrypt"

	internalhttp "github.com/spec-kit/business-site-service/internal/api/http"
	"github.com/spec-kit/business-site-service/internal/api/http/handlers"
	"github.com/spec-kit/business-site-service/internal/auth"
	"github.com/spec-kit/business-site-service/internal/config"
	"github.com/spec-kit/business-site-service/internal/domain"
	"github.com/spec-kit/business-site-service/internal/observability"
	"github.com/spec-kit/business-site-service/internal/repository"
	"github.com/spec-kit/business-site-service/internal/service"
)

type fakeAdminStore struct {
	byEmail map[string]*domain.AdminAccount
}

func (s *fakeAdminStore) Create(context.Context, *domain.AdminAccount) error { return nil }
func (s *fakeAdminStore) Update(context.Context, *domain.AdminAccount) error { return nil }

func (s *fakeAdminStore) GetByID(ctx context.Context, id string) (*domain.AdminAccount, error) {
	for _, admin := range s.byEmail {
		if admin.ID == id {
			return admin, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (s *fakeAdminStore) GetByEmail(ctx context.Context, email string) (*domain.AdminAccount, error) {
	if admin, ok := s.byEmail[email]; ok {
		return admin, nil
	}
	return nil, pgx.ErrNoRows
}

type fakeCustomerStore struct {
	byEmail map[string]*domain.CustomerAccount
}

func (s *fakeCustomerStore) Create(context.Context, *domain.CustomerAccount) error { return nil }
func (s *fakeCustomerStore) Update(context.Context, *domain.CustomerAccount) error { return nil }

func (s *fakeCustomerStore) GetByID(ctx context.Context, id string) (*domain.CustomerAccount, error) {
	for _, customer := range s.byEmail {
		if customer.ID == id {
			return customer, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (s *fakeCustomerStore) GetByEmail(ctx context.Context, email string) (*domain.CustomerAccount, error) {
	if customer, ok := s.byEmail[email]; ok {
		return customer, nil
	}
	return nil, pgx.ErrNoRows
}

type fakeResetStore struct {
	createErr error
}

func (s *fakeResetStore) Create(context.Context, *repository.PasswordResetToken) error {
	return s.createErr
}
func (s *fakeResetStore) GetByToken(context.Context, string) (*repository.PasswordResetToken, error) {
	return nil, pgx.ErrNoRows
}
func (s *fakeResetStore) MarkUsed(context.Context, string) error { return nil }

const (
	adminPassword    = "owner secret pw"
	customerPassword = "customer secret pw"
)

func newAuthApp(t *testing.T, logger *zap.Logger, resets repository.PasswordResetRepository) *fiber.App {
	t.Helper()

	hash := func(password string) string {
		h, err := auth.HashPassword(password, bcrypt.MinCost)
		require.NoError(t, err)
		return h
	}

	admins := &fakeAdminStore{byEmail: map[string]*domain.AdminAccount{
		"owner@example.com": {
			ID:           "admin-1",
			Username:     "owner",
			Email:        "owner@example.com",
			PasswordHash: hash(adminPassword),
			Role:         domain.AdminRoleOwner,
			Active:       true,
		},
	}}
	customers := &fakeCustomerStore{byEmail: map[string]*domain.CustomerAccount{
		"jane@example.com": {
			ID:           "cust-1",
			Email:        "jane@example.com",
			PasswordHash: hash(customerPassword),
			FirstName:    "Jane",
			LastName:     "Doe",
			Active:       true,
		},
		"disabled@example.com": {
			ID:           "cust-2",
			Email:        "disabled@example.com",
			PasswordHash: hash(customerPassword),
			Active:       false,
		},
	}}

	cfg := config.Config{
		Auth: config.AuthConfig{
			JWTSecret:            "test-secret",
			AdminTokenTTLDays:    7,
			CustomerTokenTTLDays: 30,
			BcryptCost:           bcrypt.MinCost,
		},
	}
	authService := service.NewAuthService(cfg, service.AuthDependencies{
		AdminRepo:         admins,
		CustomerRepo:      customers,
		PasswordResetRepo: resets,
	})

	app := fiber.New()
	internalhttp.RegisterMiddlewares(app, logger, observability.NewMetrics(), 0)
	handler := handlers.NewAuthHandler(authService, logger)
	app.Post("/api/auth/login", handler.Login)
	app.Post("/api/auth/password-reset/request", handler.RequestPasswordReset)
	return app
}

func loginTestApp(t *testing.T) *fiber.App {
	return newAuthApp(t, zap.NewNop(), &fakeResetStore{})
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Errors  []string        `json:"errors"`
	Data    json.RawMessage `json:"data"`
}

type loginData struct {
	UserType   string          `json:"userType"`
	RedirectTo string          `json:"redirectTo"`
	Token      string          `json:"token"`
	User       json.RawMessage `json:"user"`
}

func postJSON(t *testing.T, app *fiber.App, path string, payload map[string]string) (*http.Response, string, envelope) {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var env envelope
	require.NoError(t, json.Unmarshal(raw, &env))
	return resp, string(raw), env
}

func postLogin(t *testing.T, app *fiber.App, email, password string) (*http.Response, string, envelope) {
	t.Helper()
	return postJSON(t, app, "/api/auth/login", map[string]string{"email": email, "password": password})
}

func TestLoginEndpoint_Admin(t *testing.T) {
	app := loginTestApp(t)

	resp, _, env := postLogin(t, app, "owner@example.com", adminPassword)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, env.Success)
	assert.Equal(t, "Login successful", env.Message)

	var data loginData
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "admin", data.UserType)
	assert.Equal(t, "/admin/dashboard", data.RedirectTo)
	assert.NotEmpty(t, data.Token)
	assert.Contains(t, string(data.User), `"username":"owner"`)
}

func TestLoginEndpoint_Customer(t *testing.T) {
	app := loginTestApp(t)

	resp, _, env := postLogin(t, app, "jane@example.com", customerPassword)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, env.Success)

	var data loginData
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "customer", data.UserType)
	assert.Equal(t, "/portal", data.RedirectTo)
	assert.NotEmpty(t, data.Token)
}

func TestLoginEndpoint_EmailCaseAndWhitespaceInsensitive(t *testing.T) {
	app := loginTestApp(t)

	resp, _, env := postLogin(t, app, " OwNeR@Example.COM ", adminPassword)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, env.Success)
}

func TestLoginEndpoint_GenericRejection(t *testing.T) {
	app := loginTestApp(t)

	// wrong password and unknown email must be indistinguishable
	wrongResp, wrongBody, wrongEnv := postLogin(t, app, "owner@example.com", "not the password")
	unknownResp, unknownBody, _ := postLogin(t, app, "nobody@example.com", "whatever pw")

	assert.Equal(t, http.StatusUnauthorized, wrongResp.StatusCode)
	assert.Equal(t, http.StatusUnauthorized, unknownResp.StatusCode)
	assert.Equal(t, wrongBody, unknownBody)
	assert.False(t, wrongEnv.Success)
	assert.Equal(t, "Invalid email or password", wrongEnv.Message)
}

func TestLoginEndpoint_DisabledCustomer(t *testing.T) {
	app := loginTestApp(t)

	resp, _, env := postLogin(t, app, "disabled@example.com", customerPassword)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.False(t, env.Success)
	assert.Equal(t, "Account is disabled. Please contact support.", env.Message)
}

func TestLoginEndpoint_ValidationCollectsAllErrors(t *testing.T) {
	app := loginTestApp(t)

	resp, _, env := postLogin(t, app, "not-an-email", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.False(t, env.Success)
	assert.Equal(t, "Validation failed", env.Message)
	assert.Len(t, env.Errors, 2)
}

func TestLoginEndpoint_NeverLeaksPasswordHash(t *testing.T) {
	app := loginTestApp(t)

	for _, attempt := range []struct{ email, password string }{
		{"owner@example.com", adminPassword},
		{"jane@example.com", customerPassword},
		{"disabled@example.com", customerPassword},
		{"owner@example.com", "wrong"},
	} {
		_, body, _ := postLogin(t, app, attempt.email, attempt.password)
		assert.NotContains(t, body, "$2a$", "bcrypt hash leaked for %s", attempt.email)
		assert.NotContains(t, body, "passwordHash")
		assert.NotContains(t, strings.ToLower(body), "password_hash")
	}
}

func TestPasswordResetRequest_StoreFailureLoggedNot202Broken(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	app := newAuthApp(t, zap.New(core), &fakeResetStore{createErr: errors.New("connection refused")})

	resp, _, env := postJSON(t, app, "/api/auth/password-reset/request", map[string]string{
		"email": "jane@example.com",
	})
	assert.Equal(t, http.StatusAccepted, resp.StatusCode)
	assert.True(t, env.Success)

	require.Equal(t, 1, logs.FilterMessage("password reset request failed").Len())
}

func TestPasswordResetRequest_UnknownEmailStaysSilent(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	app := newAuthApp(t, zap.New(core), &fakeResetStore{})

	resp, _, env := postJSON(t, app, "/api/auth/password-reset/request", map[string]string{
		"email": "nobody@example.com",
	})
	assert.Equal(t, http.StatusAccepted, resp.StatusCode)
	assert.True(t, env.Success)
	assert.Zero(t, logs.Len())
}
