package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nekogravitycat/stadium-schedule-backend/internal/pkg/apperror"
)

type detailedErr struct{ id string }

func (e *detailedErr) Error() string { return "detailed" }
func (e *detailedErr) Unwrap() error {
	return apperror.NewKind(http.StatusBadRequest, apperror.KindConflict, "conflict")
}
func (e *detailedErr) ErrorDetails() map[string]any { return map[string]any{"other_id": e.id} }

func render(err error) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	Error(c, err)
	return w
}

func TestErrorMapsAppError(t *testing.T) {
	w := render(fmt.Errorf("wrapped: %w", apperror.New(http.StatusNotFound, "stadium not found")))

	assert.Equal(t, http.StatusNotFound, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "stadium not found", body["error"])
	assert.Equal(t, "not_found", body["code"])
}

func TestErrorUnknownIs500(t *testing.T) {
	w := render(errors.New("boom"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
}

func TestErrorIncludesDetails(t *testing.T) {
	w := render(&detailedErr{id: "abc"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"conflict","code":"conflict","other_id":"abc"}`, w.Body.String())
}

func TestListNeverNull(t *testing.T) {
	var none []int
	b, err := json.Marshal(List(none))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(b))
}
