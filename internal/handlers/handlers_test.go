package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/project-management-api/internal/database"
	"github.com/yukikurage/project-management-api/internal/middleware"
	"github.com/yukikurage/project-management-api/internal/repository"
	"github.com/yukikurage/project-management-api/internal/services"
	"github.com/yukikurage/project-management-api/internal/token"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const strongPassword = "Secret#123"

type testEnv struct {
	db             *gorm.DB
	redis          *miniredis.Miniredis
	tokens         *token.Service
	authService    *services.AuthService
	projectService *services.ProjectService
	router         *gin.Engine
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		sqlDB.Close()
	})
	require.NoError(t, database.MigrateDatabase(db))

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		client.Close()
	})

	tokens, err := token.NewService("handler-test-secret", 10*time.Hour, token.NewRedisDenylist(client), nil)
	require.NoError(t, err)

	authService := services.NewAuthService(repository.NewUserRepository(db), tokens)
	projectService := services.NewProjectService(repository.NewProjectRepository(db))

	router, err := NewEngine(nil)
	require.NoError(t, err)
	RegisterRoutes(router, Routes{
		Auth:        NewAuthHandler(authService, tokens, nil),
		Projects:    NewProjectHandler(projectService, nil),
		Verifier:    tokens,
		AuthLimiter: middleware.NewRateLimiter(1000, 1000),
		Health: Health(func(ctx context.Context) error {
			return sqlDB.PingContext(ctx)
		}),
	})

	return &testEnv{
		db:             db,
		redis:          mr,
		tokens:         tokens,
		authService:    authService,
		projectService: projectService,
		router:         router,
	}
}

// createUser signs a user up and returns its ID and a token for it.
func (e *testEnv) createUser(t *testing.T, email string) (uint64, string) {
	t.Helper()

	ctx := context.Background()
	user, err := e.authService.Signup(ctx, services.SignupInput{
		FirstName: "Test",
		LastName:  "User",
		Email:     email,
		Password:  strongPassword,
	})
	require.NoError(t, err)

	signed, err := e.authService.Signin(ctx, services.SigninInput{Email: email, Password: strongPassword})
	require.NoError(t, err)
	return user.ID, signed
}

func (e *testEnv) do(t *testing.T, method, path, authHeader string, body interface{}) *httptest.ResponseRecorder {
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
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), "body: %s", w.Body.String())
	return out
}

func TestHealth(t *testing.T) {
	env := setupTestEnv(t)

	w := env.do(t, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "ok", decodeBody(t, w)["status"])

	r := gin.New()
	r.GET("/health", Health(func(context.Context) error { return errors.New("down") }))
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	require.Equal(t, "SERVICE_UNAVAILABLE", decodeBody(t, w)["code"])
}
