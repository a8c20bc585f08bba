package middleware

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/dom/job-board-website/internal/domain"
	"github.com/dom/job-board-website/internal/service"
)

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "session_id"

type contextKey string

const userKey contextKey = "user"

// Auth resolves the session cookie to a user and stores the principal in the
// request context. Requests without a valid, unexpired session get a 401.
func Auth(authService *service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookieName)
			if err != nil {
				http.Error(w, "Authentication required", http.StatusUnauthorized)
				return
			}

			user, err := authService.UserFromCookie(r.Context(), cookie.Value)
			if err != nil {
				if errors.Is(err, service.ErrInvalidSession) {
					http.Error(w, "Authentication required", http.StatusUnauthorized)
					return
				}
				log.Printf("ERROR [middleware.Auth] failed to resolve session: %v", err)
				http.Error(w, "Internal server error", http.StatusInternalServerError)
				return
			}

			ctx := context.WithValue(r.Context(), userKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetUser(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(userKey).(*domain.User)
	return user, ok
}
