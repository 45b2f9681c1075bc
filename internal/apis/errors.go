package apis

import (
	"errors"
	"net/http"

	"github.com/nathmakers/storesrv/internal/db/dberror"
)

// sendStoreError maps store errors onto the API error contract: a missing
// resource is a client-visible 404 with a descriptive body, everything else
// is an opaque 500.
func sendStoreError(w http.ResponseWriter, err error) {
	if errors.Is(err, dberror.ErrNotFound) {
		SendError(w, http.StatusNotFound, err.Error())
		return
	}
	SendError(w, http.StatusInternalServerError, "internal server error")
}
