package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/vaughan-dsouza/shoply/internal/auth"
	"github.com/vaughan-dsouza/shoply/internal/utils"
)

// RequireJWT rejects requests without a valid bearer token and attaches the
// token's identity (user ID and role) to the request context.
func RequireJWT(tokens *auth.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

			header := r.Header.Get("Authorization")
			if header == "" {
				utils.JSON(w, http.StatusUnauthorized, map[string]string{"msg": "No token, authorization denied"})
				return
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				utils.JSON(w, http.StatusUnauthorized, map[string]string{"msg": "No token, authorization denied"})
				return
			}

			token := strings.TrimSpace(parts[1])
			if token == "" {
				utils.JSON(w, http.StatusUnauthorized, map[string]string{"msg": "No token, authorization denied"})
				return
			}

			// Verify reports one uniform error for every failure mode.
			claims, err := tokens.Verify(token)
			if err != nil {
				utils.JSON(w, http.StatusUnauthorized, map[string]string{"msg": "Token is not valid"})
				return
			}

			ctx := context.WithValue(r.Context(), utils.CtxUserIDKey, claims.SubjectInt())
			ctx = context.WithValue(ctx, utils.CtxRoleKey, claims.Role)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Authorize only admits identities whose role is in the allow-list. An
// absent identity and a wrong role take the same 403 path.
func Authorize(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

			role, ok := r.Context().Value(utils.CtxRoleKey).(string)
			if !ok || !contains(roles, role) {
				utils.JSON(w, http.StatusForbidden, map[string]string{"msg": "Forbidden"})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
