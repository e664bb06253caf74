package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/MDT-ScheduleService/internal/domain"
)

func TestAuth(t *testing.T) {
	tests := []struct {
		name       string
		userID     string
		role       string
		wantStatus int
		wantUserID int64
		wantRole   string
	}{
		{
			name:   "mediator passes through",
			userID: "10", role: domain.RoleMediator,
			wantStatus: http.StatusOK,
			wantUserID: 10, wantRole: domain.RoleMediator,
		},
		{
			name:   "client passes through",
			userID: "20", role: domain.RoleClient,
			wantStatus: http.StatusOK,
			wantUserID: 20, wantRole: domain.RoleClient,
		},
		{
			name:   "missing user id",
			userID: "", role: domain.RoleClient,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "non-numeric user id",
			userID: "abc", role: domain.RoleClient,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "zero user id",
			userID: "0", role: domain.RoleClient,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "unknown role",
			userID: "10", role: "Admin",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "missing role",
			userID: "10", role: "",
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotUserID int64
			var gotRole string

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUserID = UserID(r.Context())
				gotRole = UserRole(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/v1/appointments/my", nil)
			if tt.userID != "" {
				req.Header.Set(HeaderUserID, tt.userID)
			}
			if tt.role != "" {
				req.Header.Set(HeaderUserRole, tt.role)
			}

			rec := httptest.NewRecorder()
			Auth(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, tt.wantUserID, gotUserID)
				assert.Equal(t, tt.wantRole, gotRole)
			}
		})
	}
}
