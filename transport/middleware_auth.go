package transport

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/ksagri/agroexport-api/application/user"
	"github.com/ksagri/agroexport-api/constant"
	utilsContext "github.com/ksagri/agroexport-api/utils/context"
	"github.com/ksagri/agroexport-api/utils/errors"
)

// bearerToken extracts the token from an Authorization header. The second
// return is false when the header is absent or not Bearer-prefixed.
func bearerToken(r *http.Request) (string, bool) {
	auth := r.Header.Get("Authorization")
	if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
		return "", false
	}
	return strings.TrimPrefix(auth, "Bearer "), true
}

// AuthMiddleware returns a middleware that requires a valid bearer token and
// attaches the resolved account to the request context. A locked account is
// rejected with 423, distinct from the plain 401.
func AuthMiddleware(userApp user.UserApp) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorized))
				return
			}

			authedUser, err := userApp.ValidateToken(r.Context(), token)
			if err != nil {
				writeError(w, err)
				return
			}

			ctx := utilsContext.WithUser(r.Context(), authedUser)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalAuthMiddleware attaches the account when a valid token is present
// and silently proceeds otherwise. A malformed, expired or locked-account
// token never fails the request here.
func OptionalAuthMiddleware(userApp user.UserApp) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			authedUser, err := userApp.ValidateToken(r.Context(), token)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := utilsContext.WithUser(r.Context(), authedUser)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole gates an already-authenticated route to the given roles. It
// assumes AuthMiddleware has run; a missing context user is treated as an
// authentication failure, a role mismatch as forbidden.
func RequireRole(roles ...string) mux.MiddlewareFunc {
	accepted := make(map[string]bool, len(roles))
	for _, role := range roles {
		accepted[role] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authedUser, ok := utilsContext.GetUser(r.Context())
			if !ok {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorized))
				return
			}
			if !accepted[authedUser.Role] {
				writeError(w, errors.SetCustomError(constant.ErrForbidden))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
