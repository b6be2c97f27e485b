package auth

import (
	"net/http"
	"strings"

	"github.com/user/blogpessoal-go/apperror"
)

// RequireAuth resolves the request identity from the Authorization header.
// It rejects requests without a well-formed "Bearer <token>" header, verifies
// the token, then re-fetches the principal from the credential store before
// handing it to the next handler via the request context.
//
// The re-fetch means a deleted user or a changed role takes effect on the
// very next request even though issued tokens are immutable: the token only
// proves who logged in, the store says who that is now.
//
// Every failure mode (missing header, malformed token, bad signature,
// expired token, vanished principal) collapses to the same 401 so the
// response does not reveal which check failed.
func RequireAuth(codec *TokenCodec, store UserStore) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			unauthenticated := func() {
				WriteError(w, r, apperror.NewAuthError("não autenticado", nil))
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				unauthenticated()
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				unauthenticated()
				return
			}

			claims, err := codec.Verify(parts[1])
			if err != nil {
				unauthenticated()
				return
			}
			if claims.UserID == 0 {
				// Ownership checks need the stable id; a token without one
				// is not usable as an identity here.
				unauthenticated()
				return
			}

			principal, err := store.GetByID(r.Context(), claims.UserID)
			if err != nil {
				unauthenticated()
				return
			}

			ctx := NewContextWithPrincipal(r.Context(), principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
