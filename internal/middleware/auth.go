package middleware

import (
	"net/http"
	"strings"

	"gators-academy/backend/internal/authctx"

	"firebase.google.com/go/v4/auth"
)

// WithAuth verifies the Firebase ID token and attaches an explicit
// session to the request context. Downstream handlers never talk to
// the identity provider directly.
func WithAuth(authClient *auth.Client) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := r.Header.Get("Authorization")
			if h == "" || !strings.HasPrefix(strings.ToLower(h), "bearer ") {
				http.Error(w, "missing Authorization: Bearer <token>", http.StatusUnauthorized)
				return
			}
			idToken := strings.TrimSpace(h[len("Bearer "):])

			tok, err := authClient.VerifyIDToken(r.Context(), idToken)
			if err != nil {
				http.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}

			sess := &authctx.Session{
				UID:  tok.UID,
				Role: authctx.RoleFromClaims(tok.Claims),
			}
			if v, ok := tok.Claims["email"].(string); ok {
				sess.Email = v
			}

			next.ServeHTTP(w, r.WithContext(authctx.WithSession(r.Context(), sess)))
		})
	}
}
