package admin

import (
	"net/http"

	"github.com/nathmakers/storesrv/internal/apis"
	"github.com/nathmakers/storesrv/internal/db"
)

// health probes the backing store with a trivial query. It always answers
// 200 with a structured status, never an HTTP error, so probes distinguish
// "unreachable" from "unhealthy".
func (h *Handlers) health(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	store := db.FromContext(ctx)
	if store == nil {
		apis.SendJSON(w, http.StatusOK, map[string]string{"status": "error", "error": "store not initialized"})
		return
	}
	if err := store.Ping(ctx); err != nil {
		apis.SendJSON(w, http.StatusOK, map[string]string{"status": "error", "error": err.Error()})
		return
	}
	apis.SendJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
