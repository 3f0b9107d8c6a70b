package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/nekogravitycat/stadium-schedule-backend/internal/auth"
	"github.com/nekogravitycat/stadium-schedule-backend/internal/mocks"
	"github.com/nekogravitycat/stadium-schedule-backend/internal/user"
	userHttp "github.com/nekogravitycat/stadium-schedule-backend/internal/user/http"
)

const (
	aliceID = "3f1b8a52-4c7e-4d0a-9a55-0a2c6c1d1e01"
	bobID   = "7d2f0c11-9b8e-4f6a-8e3d-2b1c4a5e6f02"
)

type testEnv struct {
	router *gin.Engine
	svc    *mocks.UserService
	jwt    *auth.JWTManager
}

func newEnv() *testEnv {
	gin.SetMode(gin.TestMode)
	svc := &mocks.UserService{}
	jwtManager := auth.NewJWTManager("test-secret", time.Hour)

	r := gin.New()
	userHttp.RegisterRoutes(r.Group(""), userHttp.NewHandler(svc, jwtManager),
		auth.AuthRequired(jwtManager), auth.RequireSystemAdmin(svc))
	return &testEnv{router: r, svc: svc, jwt: jwtManager}
}

func (e *testEnv) do(t *testing.T, method, path, asUser string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if asUser != "" {
		token, err := e.jwt.GenerateAccessToken(asUser, "someone")
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func TestRegister(t *testing.T) {
	env := newEnv()
	env.svc.On("Register", mock.Anything, user.RegisterRequest{
		Username:        "alice",
		Email:           "alice@example.com",
		Password:        "password123",
		ConfirmPassword: "password123",
		Department:      "Athletics",
	}).Return(&user.User{ID: aliceID, Username: "alice", Email: "alice@example.com", Department: "Athletics", IsActive: true}, nil)

	w := env.do(t, http.MethodPost, "/users", "", map[string]string{
		"username":         "alice",
		"email":            "alice@example.com",
		"password":         "password123",
		"confirm_password": "password123",
		"department":       "Athletics",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, aliceID, body["id"])
	assert.NotContains(t, body, "password_hash")
}

func TestRegister_PasswordMismatch(t *testing.T) {
	env := newEnv()
	env.svc.On("Register", mock.Anything, mock.Anything).Return(nil, user.ErrPasswordMismatch)

	w := env.do(t, http.MethodPost, "/users", "", map[string]string{
		"username":         "alice",
		"email":            "alice@example.com",
		"password":         "password123",
		"confirm_password": "password999",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Passwords do not match.")
}

func TestLogin(t *testing.T) {
	env := newEnv()
	env.svc.On("Login", mock.Anything, "alice", "password123").
		Return(&user.User{ID: aliceID, Username: "alice", Department: "Athletics", IsActive: true}, nil)

	w := env.do(t, http.MethodPost, "/login", "", map[string]string{"username": "alice", "password": "password123"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp userHttp.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, aliceID, resp.UserID)
	assert.Equal(t, "Athletics", resp.Department)

	claims, err := env.jwt.ParseAndValidate(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, aliceID, claims.Subject)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	env := newEnv()
	env.svc.On("Login", mock.Anything, "alice", "wrong").Return(nil, user.ErrInvalidCredentials)

	w := env.do(t, http.MethodPost, "/login", "", map[string]string{"username": "alice", "password": "wrong"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid username or password")
}

func TestProfile(t *testing.T) {
	env := newEnv()
	env.svc.On("GetByID", mock.Anything, aliceID).Return(&user.User{ID: aliceID, Username: "alice"}, nil)

	w := env.do(t, http.MethodGet, "/profile", aliceID, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodGet, "/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUpdate_PassesActor(t *testing.T) {
	env := newEnv()
	env.svc.On("Update", mock.Anything, aliceID, bobID, mock.Anything).Return(nil, user.ErrPermissionDenied)

	w := env.do(t, http.MethodPatch, "/users/"+bobID, aliceID, map[string]string{"first_name": "Bob"})
	assert.Equal(t, http.StatusForbidden, w.Code)
	env.svc.AssertExpectations(t)
}

func TestByDepartment(t *testing.T) {
	env := newEnv()
	env.svc.On("ListByDepartment", mock.Anything, "").Return(nil, user.ErrDepartmentRequired)
	env.svc.On("ListByDepartment", mock.Anything, "ath").Return([]*user.User{{ID: aliceID}, {ID: bobID}}, nil)

	w := env.do(t, http.MethodGet, "/users-by-department", aliceID, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Department parameter is required")

	w = env.do(t, http.MethodGet, "/users-by-department?department=ath", aliceID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var items []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	assert.Len(t, items, 2)
}

func TestList_AdminOnly(t *testing.T) {
	env := newEnv()
	env.svc.On("IsSystemAdmin", mock.Anything, aliceID).Return(false, nil)
	env.svc.On("IsSystemAdmin", mock.Anything, bobID).Return(true, nil)
	env.svc.On("List", mock.Anything, mock.Anything).Return([]*user.User{{ID: aliceID}}, 1, nil)

	w := env.do(t, http.MethodGet, "/users", aliceID, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = env.do(t, http.MethodGet, "/users?page=1&page_size=10", bobID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), aliceID)
}
