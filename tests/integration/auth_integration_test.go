// Package integration provides integration testing for the TaskFlow backend API.
// This file covers the account lifecycle from registration through login.
package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	identityapp "github.com/taskflow/backend/internal/application/identity"
	projectapp "github.com/taskflow/backend/internal/application/project"
	"github.com/taskflow/backend/internal/infrastructure/auth"
	"github.com/taskflow/backend/internal/infrastructure/config"
	"github.com/taskflow/backend/internal/infrastructure/email"
	"github.com/taskflow/backend/internal/infrastructure/persistence"
	"github.com/taskflow/backend/internal/interfaces/http/handler"
	"github.com/taskflow/backend/internal/interfaces/http/middleware"
	"github.com/taskflow/backend/internal/interfaces/http/router"
)

// TestServer wires the full API stack against a containerized database.
type TestServer struct {
	DB     *TestDB
	Engine *gin.Engine
}

// NewTestServer assembles the API the way cmd/server does, with email
// delivery disabled and an in-memory session blacklist.
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	gin.SetMode(gin.TestMode)

	tdb := NewTestDB(t)
	log := zap.NewNop()

	userRepo := persistence.NewGormUserRepository(tdb.DB)
	tokenRepo := persistence.NewGormTokenRepository(tdb.DB)
	projectRepo := persistence.NewGormProjectRepository(tdb.DB)
	taskRepo := persistence.NewGormTaskRepository(tdb.DB)
	noteRepo := persistence.NewGormNoteRepository(tdb.DB)

	jwtService := auth.NewJWTService(config.JWTConfig{
		Secret:     "integration-test-secret-32-chars!",
		Expiration: 30 * time.Minute,
		Issuer:     "taskflow-test",
	})
	blacklist := auth.NewInMemoryTokenBlacklist()
	mailer := email.NewAuthEmail(email.NoopSender{}, "http://localhost:5173")

	authService := identityapp.NewAuthService(userRepo, tokenRepo, jwtService, mailer, blacklist, log)
	projectService := projectapp.NewProjectService(projectRepo, taskRepo, userRepo, log)
	taskService := projectapp.NewTaskService(taskRepo, noteRepo, userRepo, nil, log)

	middleware.SetupValidator()

	engine := gin.New()
	sessionGate := middleware.JWTAuthMiddleware(middleware.JWTMiddlewareConfig{
		JWTService:     jwtService,
		UserRepo:       userRepo,
		TokenBlacklist: blacklist,
		Logger:         log,
	})

	r := router.NewRouter(engine)
	r.Register(&router.AuthRoutes{
		Handler:     handler.NewAuthHandler(authService),
		SessionGate: sessionGate,
	})
	r.Register(&router.ProjectRoutes{
		ProjectHandler: handler.NewProjectHandler(projectService),
		TaskHandler:    handler.NewTaskHandler(taskService),
		NoteHandler:    handler.NewNoteHandler(taskService),
		ProjectRepo:    projectRepo,
		TaskRepo:       taskRepo,
		SessionGate:    sessionGate,
	})
	r.Setup()

	return &TestServer{DB: tdb, Engine: engine}
}

func (s *TestServer) request(t *testing.T, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.Engine.ServeHTTP(w, req)
	return w
}

// latestTokenFor reads the most recent confirmation code issued to an
// account straight from the database, standing in for the email inbox.
func (s *TestServer) latestTokenFor(t *testing.T, emailAddr string) string {
	t.Helper()

	var token string
	err := s.DB.DB.Raw(`
		SELECT t.token FROM tokens t
		JOIN users u ON u.id = t.user_id
		WHERE u.email = ?
		ORDER BY t.created_at DESC
		LIMIT 1
	`, emailAddr).Scan(&token).Error
	require.NoError(t, err)
	require.NotEmpty(t, token, "no token found for %s", emailAddr)
	return token
}

// registerAndLogin walks an account through registration, confirmation
// and login, returning the session JWT.
func (s *TestServer) registerAndLogin(t *testing.T, name, emailAddr, password string) string {
	t.Helper()

	w := s.request(t, http.MethodPost, "/api/auth/create-account", gin.H{
		"name":                  name,
		"email":                 emailAddr,
		"password":              password,
		"password_confirmation": password,
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = s.request(t, http.MethodPost, "/api/auth/confirm-account", gin.H{
		"token": s.latestTokenFor(t, emailAddr),
	}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = s.request(t, http.MethodPost, "/api/auth/login", gin.H{
		"email":    emailAddr,
		"password": password,
	}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	token := w.Body.String()
	require.Len(t, strings.Split(token, "."), 3, "login should return a JWT")
	return token
}

func TestAccountLifecycle(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	srv := NewTestServer(t)
	emailAddr := "alex@example.com"

	t.Run("registration issues a confirmation code", func(t *testing.T) {
		w := srv.request(t, http.MethodPost, "/api/auth/create-account", gin.H{
			"name":                  "Alex Rivera",
			"email":                 emailAddr,
			"password":              "password123",
			"password_confirmation": "password123",
		}, "")
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "Account created, check your email to confirm", w.Body.String())

		token := srv.latestTokenFor(t, emailAddr)
		assert.Len(t, token, 6)
	})

	t.Run("duplicate registration is rejected", func(t *testing.T) {
		w := srv.request(t, http.MethodPost, "/api/auth/create-account", gin.H{
			"name":                  "Alex Rivera",
			"email":                 emailAddr,
			"password":              "password123",
			"password_confirmation": "password123",
		}, "")
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.JSONEq(t, `{"error": "User already registered"}`, w.Body.String())
	})

	t.Run("login before confirmation resends the code", func(t *testing.T) {
		w := srv.request(t, http.MethodPost, "/api/auth/login", gin.H{
			"email":    emailAddr,
			"password": "password123",
		}, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"error": "The account has not been confirmed, we have sent a confirmation email"}`, w.Body.String())
	})

	t.Run("confirmation with wrong code fails", func(t *testing.T) {
		w := srv.request(t, http.MethodPost, "/api/auth/confirm-account", gin.H{
			"token": "000000",
		}, "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error": "Invalid token"}`, w.Body.String())
	})

	var sessionToken string

	t.Run("confirmation and login succeed", func(t *testing.T) {
		w := srv.request(t, http.MethodPost, "/api/auth/confirm-account", gin.H{
			"token": srv.latestTokenFor(t, emailAddr),
		}, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Account confirmed", w.Body.String())

		w = srv.request(t, http.MethodPost, "/api/auth/login", gin.H{
			"email":    emailAddr,
			"password": "password123",
		}, "")
		require.Equal(t, http.StatusOK, w.Code)
		sessionToken = w.Body.String()
		assert.Len(t, strings.Split(sessionToken, "."), 3)
	})

	t.Run("session token grants access to the profile", func(t *testing.T) {
		w := srv.request(t, http.MethodGet, "/api/auth/user", nil, sessionToken)
		assert.Equal(t, http.StatusOK, w.Code)

		var profile map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &profile))
		assert.Equal(t, "Alex Rivera", profile["name"])
		assert.Equal(t, emailAddr, profile["email"])
		assert.NotEmpty(t, profile["_id"])
	})

	t.Run("requests without a token are rejected", func(t *testing.T) {
		w := srv.request(t, http.MethodGet, "/api/auth/user", nil, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"error": "Unauthorized"}`, w.Body.String())
	})
}

func TestPasswordResetFlow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	srv := NewTestServer(t)
	emailAddr := "jordan@example.com"
	srv.registerAndLogin(t, "Jordan Lee", emailAddr, "password123")

	w := srv.request(t, http.MethodPost, "/api/auth/forgot-password", gin.H{
		"email": emailAddr,
	}, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Check your email for instructions", w.Body.String())

	resetToken := srv.latestTokenFor(t, emailAddr)

	w = srv.request(t, http.MethodPost, "/api/auth/validate-token", gin.H{
		"token": resetToken,
	}, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Valid token, set your new password", w.Body.String())

	w = srv.request(t, http.MethodPost, fmt.Sprintf("/api/auth/update-password/%s", resetToken), gin.H{
		"password":              "newpassword456",
		"password_confirmation": "newpassword456",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "The password was changed successfully", w.Body.String())

	// Old password no longer works, the new one does
	w = srv.request(t, http.MethodPost, "/api/auth/login", gin.H{
		"email":    emailAddr,
		"password": "password123",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = srv.request(t, http.MethodPost, "/api/auth/login", gin.H{
		"email":    emailAddr,
		"password": "newpassword456",
	}, "")
	assert.Equal(t, http.StatusOK, w.Code)
}
