package apis

import (
	"net/http"

	"github.com/nathmakers/storesrv/internal/db"
	"github.com/nathmakers/storesrv/internal/db/models"
)

func (h *Handlers) listAdmins(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	admins, err := db.FromContext(ctx).ListAdmins(ctx)
	if err != nil {
		sendStoreError(w, err)
		return
	}
	rsp := make([]AdminResponse, 0, len(admins))
	for _, a := range admins {
		rsp = append(rsp, AdminResponse{ID: a.ID, Name: a.Name})
	}
	SendJSON(w, http.StatusOK, rsp)
}

func (h *Handlers) createAdmin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req AdminRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	admin := &models.Admin{Name: req.Name}
	if err := db.FromContext(ctx).CreateAdmin(ctx, admin); err != nil {
		sendStoreError(w, err)
		return
	}
	SendJSON(w, http.StatusCreated, AdminResponse{ID: admin.ID, Name: admin.Name})
}
