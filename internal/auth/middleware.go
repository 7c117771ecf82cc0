package auth

import (
	"context"
	"net/http"
	"time"
)

type contextKey string

const AdminKey contextKey = "admin"

func (h *AuthHandler) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(CookieName)
		if err != nil {
			if err == http.ErrNoCookie {
				http.Error(w, "Unauthorized: No token found", http.StatusUnauthorized)
				return
			}
			http.Error(w, "Bad Request", http.StatusBadRequest)
			return
		}

		claims, err := h.parseToken(cookie.Value)
		if err != nil {
			http.Error(w, "Unauthorized: Invalid token", http.StatusUnauthorized)
			return
		}

		// Sliding session: refresh token if it's more than halfway through its duration
		if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
			if time.Until(exp.Time) < TokenDuration/2 {
				if newToken, err := h.GenerateToken(); err == nil {
					c := sessionCookie(newToken, time.Now().Add(TokenDuration))
					http.SetCookie(w, &c)
				}
			}
		}

		ctx := context.WithValue(r.Context(), AdminKey, true)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
