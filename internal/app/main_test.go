package app_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/require"

	"github.com/nekogravitycat/stadium-schedule-backend/internal/app"
	"github.com/nekogravitycat/stadium-schedule-backend/internal/auth"
	"github.com/nekogravitycat/stadium-schedule-backend/internal/db"
	"github.com/nekogravitycat/stadium-schedule-backend/internal/user"
)

var (
	testRouter *gin.Engine
	testPool   *pgxpool.Pool
	jwtManager *auth.JWTManager
)

func TestMain(m *testing.M) {
	// Attempt to load .env from the repository root
	if err := godotenv.Load("../../.env"); err != nil {
		log.Printf("No .env file found or failed to load: %v", err)
	}

	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		log.Printf("TEST_DB_DSN is not set, skipping integration tests")
		os.Exit(0)
	}

	ctx := context.Background()
	var err error
	testPool, err = db.NewPool(ctx, dsn)
	if err != nil {
		log.Fatalf("Unable to connect to database: %v", err)
	}
	if err := db.Migrate(ctx, testPool); err != nil {
		log.Fatalf("Unable to migrate database: %v", err)
	}

	gin.SetMode(gin.TestMode)
	container := app.NewContainer(app.Config{
		DBPool:       testPool,
		JWTSecret:    "integration-secret",
		JWTTTL:       30 * time.Minute,
		PasswordCost: 4, // Lower cost for testing purposes
	})
	testRouter = container.Router
	jwtManager = container.JWTManager

	exitCode := m.Run()

	testPool.Close()
	os.Exit(exitCode)
}

func clearTables(t *testing.T) {
	t.Helper()
	_, err := testPool.Exec(context.Background(),
		"TRUNCATE TABLE outbox_events, usage_counters, schedules, stadiums, departments, users CASCADE")
	require.NoError(t, err, "Failed to clean tables")
}

func executeRequest(method, path string, body any, token string) *httptest.ResponseRecorder {
	var reqBody []byte
	if body != nil {
		reqBody, _ = json.Marshal(body)
	}

	req := httptest.NewRequest(method, path, bytes.NewBuffer(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	testRouter.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func createTestUser(t *testing.T, username string, isAdmin bool) (*user.User, string) {
	t.Helper()
	hash, err := auth.NewBcryptPasswordHasher(4).Hash("password123")
	require.NoError(t, err, "Failed to hash password")

	u := &user.User{
		Username:      username,
		Email:         username + "@example.com",
		PasswordHash:  hash,
		Department:    "Athletics",
		IsActive:      true,
		IsSystemAdmin: isAdmin,
	}
	require.NoError(t, user.NewPgxRepository(testPool).Create(context.Background(), u), "Failed to create test user")

	token, err := jwtManager.GenerateAccessToken(u.ID, u.Username)
	require.NoError(t, err)
	return u, token
}
