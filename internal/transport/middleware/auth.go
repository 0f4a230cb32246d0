package middleware

import (
	"net/http"

	"github.com/heartmarshall/casedesk-backend/internal/domain"
	"github.com/heartmarshall/casedesk-backend/pkg/ctxutil"
)

type accessVerifier interface {
	VerifyAccess(header string) (domain.Identity, error)
}

// Auth verifies the bearer token when an Authorization header is present and
// stores the identity in the request context. Requests without the header
// continue anonymously; RequireIdentity rejects them where needed.
func Auth(verifier accessVerifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				next.ServeHTTP(w, r)
				return
			}
			id, err := verifier.VerifyAccess(header)
			if err != nil {
				writeUnauthorized(w, err)
				return
			}
			recordActor(r.Context(), id.ID)
			ctx := ctxutil.WithIdentity(r.Context(), id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireIdentity responds 401 unauthenticated to anonymous requests.
func RequireIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := ctxutil.IdentityFromCtx(r.Context()); !ok {
			writeUnauthorized(w, domain.ErrUnauthenticated)
			return
		}
		next.ServeHTTP(w, r)
	})
}
