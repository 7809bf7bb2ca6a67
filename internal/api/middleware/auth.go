package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-VenueBookingService/internal/api/handlers"
)

type contextKey string

const (
	userIDKey   contextKey = "userID"
	clientIDKey contextKey = "clientID"

	// HeaderUserID идентификатор пользователя, проставляется шлюзом
	HeaderUserID = "X-User-ID"
	// HeaderClientID идентификатор клиента (вкладки) для вытеснения устаревших запросов
	HeaderClientID = "X-Client-ID"

	msgMissingUserID = "отсутствует ID пользователя"
	msgInvalidUserID = "некорректный ID пользователя"
)

// Auth извлекает X-User-ID и кладет его в контекст запроса
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(HeaderUserID)
		if raw == "" {
			handlers.RespondUnauthorized(w, msgMissingUserID)
			return
		}

		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, msgInvalidUserID)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID возвращает ID пользователя, положенный Auth
func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}

// ClientID кладет X-Client-ID в контекст, если заголовок передан
func ClientID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id := r.Header.Get(HeaderClientID); id != "" {
			r = r.WithContext(context.WithValue(r.Context(), clientIDKey, id))
		}
		next.ServeHTTP(w, r)
	})
}

// GetClientID возвращает ID клиента или пустую строку
func GetClientID(ctx context.Context) string {
	id, _ := ctx.Value(clientIDKey).(string)
	return id
}
