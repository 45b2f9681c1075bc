package apis

import (
	"net/http"

	"github.com/nathmakers/storesrv/internal/db"
	"github.com/rs/zerolog/log"
)

func (h *Handlers) listCatalogues(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	withProducts := r.URL.Query().Get("include") == "products"

	catalogues, err := db.FromContext(ctx).ListCatalogues(ctx, withProducts)
	if err != nil {
		sendStoreError(w, err)
		return
	}
	rsp := make([]CatalogueResponse, 0, len(catalogues))
	for i := range catalogues {
		rsp = append(rsp, catalogueResponse(&catalogues[i]))
	}
	SendJSON(w, http.StatusOK, rsp)
}

func (h *Handlers) createCatalogue(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req CatalogueRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	catalogue := req.Model()
	if err := db.FromContext(ctx).CreateCatalogue(ctx, catalogue); err != nil {
		sendStoreError(w, err)
		return
	}
	log.Ctx(ctx).Info().Uint("id", catalogue.ID).Str("name", catalogue.Name).Msg("catalogue created")
	SendJSON(w, http.StatusCreated, catalogueResponse(catalogue))
}

func (h *Handlers) getCatalogue(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := urlID(r, "catalogueId")
	if !ok {
		SendError(w, http.StatusBadRequest, "invalid catalogue id")
		return
	}

	catalogue, err := db.FromContext(ctx).GetCatalogue(ctx, id)
	if err != nil {
		sendStoreError(w, err)
		return
	}
	SendJSON(w, http.StatusOK, catalogueResponse(catalogue))
}

func (h *Handlers) updateCatalogue(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := urlID(r, "catalogueId")
	if !ok {
		SendError(w, http.StatusBadRequest, "invalid catalogue id")
		return
	}
	var req CatalogueRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	catalogue := req.Model()
	catalogue.ID = id
	store := db.FromContext(ctx)
	if err := store.UpdateCatalogue(ctx, catalogue); err != nil {
		sendStoreError(w, err)
		return
	}
	updated, err := store.GetCatalogue(ctx, id)
	if err != nil {
		sendStoreError(w, err)
		return
	}
	SendJSON(w, http.StatusOK, catalogueResponse(updated))
}

func (h *Handlers) deleteCatalogue(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := urlID(r, "catalogueId")
	if !ok {
		SendError(w, http.StatusBadRequest, "invalid catalogue id")
		return
	}

	if err := db.FromContext(ctx).DeleteCatalogue(ctx, id); err != nil {
		sendStoreError(w, err)
		return
	}
	log.Ctx(ctx).Info().Uint("id", id).Msg("catalogue deleted")
	SendJSON(w, http.StatusOK, map[string]string{"message": "Catalogue deleted successfully"})
}
