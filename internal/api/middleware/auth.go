package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/m04kA/MDT-ScheduleService/internal/domain"
)

// Заголовки, которые проставляет API gateway после аутентификации
const (
	HeaderUserID   = "X-User-ID"
	HeaderUserRole = "X-User-Role"
)

const msgUnauthorized = "требуется аутентификация"

type contextKey string

const (
	userIDKey   contextKey = "userID"
	userRoleKey contextKey = "userRole"
)

// Auth достает идентификатор и роль вызывающего из заголовков gateway
// и кладет их в контекст запроса
// Запросы без валидных заголовков отклоняются с 401
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := strconv.ParseInt(r.Header.Get(HeaderUserID), 10, 64)
		if err != nil || userID <= 0 {
			respondUnauthorized(w)
			return
		}

		role := r.Header.Get(HeaderUserRole)
		if role != domain.RoleMediator && role != domain.RoleClient {
			respondUnauthorized(w)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		ctx = context.WithValue(ctx, userRoleKey, role)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserID возвращает ID вызывающего из контекста
// Вызывается только из handlers за Auth middleware, поэтому значение всегда есть
func UserID(ctx context.Context) int64 {
	id, _ := ctx.Value(userIDKey).(int64)
	return id
}

// UserRole возвращает роль вызывающего из контекста
func UserRole(ctx context.Context) string {
	role, _ := ctx.Value(userRoleKey).(string)
	return role
}

func respondUnauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": msgUnauthorized})
}
