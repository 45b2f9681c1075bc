package middleware

import (
	"net/http"

	"github.com/nathmakers/storesrv/internal/db"
)

// LoadScopedDB attaches a request-scoped store session to the request
// context. The session's underlying connection is returned to the pool as
// each operation completes, on every exit path.
func LoadScopedDB(store db.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			ctx = db.WithStore(ctx, store.Scoped(ctx))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
