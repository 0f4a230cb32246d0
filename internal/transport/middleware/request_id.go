package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/casedesk-backend/pkg/ctxutil"
)

// HeaderRequestID is echoed back on every response.
const HeaderRequestID = "X-Request-Id"

const maxRequestIDLength = 128

// RequestID takes the caller's request id or generates one.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(HeaderRequestID)
		if id == "" || len(id) > maxRequestIDLength {
			id = uuid.New().String()
		}
		ctx := ctxutil.WithRequestID(r.Context(), id)
		w.Header().Set(HeaderRequestID, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
