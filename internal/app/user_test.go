package app_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nekogravitycat/stadium-schedule-backend/internal/pkg/response"
	userHttp "github.com/nekogravitycat/stadium-schedule-backend/internal/user/http"
)

func TestListUsers_FilterTreatsWildcardsLiterally(t *testing.T) {
	clearTables(t)
	_, adminToken := createTestUser(t, "admin", true)
	createTestUser(t, "coach", false)

	tests := []struct {
		query string
		want  int
	}{
		{"?department=athl", 2},
		{"?department=_", 0},
		{"?department=%25", 0},
		{"?username=co_ch", 0},
		{"?username=coach", 1},
	}
	for _, tt := range tests {
		w := executeRequest(http.MethodGet, "/v1/users"+tt.query, nil, adminToken)
		require.Equal(t, http.StatusOK, w.Code, tt.query)
		page := decode[response.PageResponse[userHttp.UserResponse]](t, w)
		assert.Len(t, page.Items, tt.want, tt.query)
	}
}
