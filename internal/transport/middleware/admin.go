package middleware

import (
	"net/http"

	"github.com/heartmarshall/casedesk-backend/internal/domain"
	"github.com/heartmarshall/casedesk-backend/pkg/ctxutil"
)

// RequireAdmin lets only administrators through: anonymous requests get 401,
// other staff 403.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := ctxutil.IdentityFromCtx(r.Context())
		if !ok {
			writeUnauthorized(w, domain.ErrUnauthenticated)
			return
		}
		if !id.IsAdmin() {
			WriteError(w, http.StatusForbidden, ErrorBody{Error: "admin access required", Code: "forbidden"})
			return
		}
		next.ServeHTTP(w, r)
	})
}
