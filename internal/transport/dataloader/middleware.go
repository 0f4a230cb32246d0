package dataloader

import "net/http"

// Middleware instantiates per-request Loaders and stores them in the
// request context.
func Middleware(tasks taskSource) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := WithLoaders(r.Context(), NewLoaders(tasks))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
