package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/GlebRadaev/frontdesk/pkg/utils"
)

type ContextKey string

const KioskIDKey ContextKey = "kioskID"

// Middleware rejects requests without a valid kiosk bearer token and stores the kiosk id
// in the request context.
func Middleware(jwtService JWTServiceInterface) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			token := strings.TrimPrefix(authHeader, "Bearer ")
			claims, err := jwtService.ValidateToken(token)
			if err != nil {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			ctx := context.WithValue(r.Context(), KioskIDKey, claims.KioskID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// KioskID returns the kiosk id stored by Middleware, or an empty string.
func KioskID(ctx context.Context) string {
	id, _ := ctx.Value(KioskIDKey).(string)
	return id
}
