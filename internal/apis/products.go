package apis

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/nathmakers/storesrv/internal/db"
	"github.com/rs/zerolog/log"
)

func urlID(r *http.Request, param string) (uint, bool) {
	id, err := strconv.ParseUint(chi.URLParam(r, param), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func (h *Handlers) listProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var catalogueID uint
	if raw := r.URL.Query().Get("catalogueId"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			SendError(w, http.StatusBadRequest, "invalid catalogueId")
			return
		}
		catalogueID = uint(id)
	}

	products, err := db.FromContext(ctx).ListProducts(ctx, catalogueID)
	if err != nil {
		sendStoreError(w, err)
		return
	}
	rsp := make([]ProductResponse, 0, len(products))
	for i := range products {
		rsp = append(rsp, productResponse(&products[i]))
	}
	SendJSON(w, http.StatusOK, rsp)
}

func (h *Handlers) getProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := urlID(r, "productId")
	if !ok {
		SendError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	product, err := db.FromContext(ctx).GetProduct(ctx, id)
	if err != nil {
		sendStoreError(w, err)
		return
	}
	SendJSON(w, http.StatusOK, productResponse(product))
}

func (h *Handlers) createProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req ProductRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	product := req.Model()
	if err := db.FromContext(ctx).CreateProduct(ctx, product); err != nil {
		sendStoreError(w, err)
		return
	}
	log.Ctx(ctx).Info().Uint("id", product.ID).Str("name", product.ProductName).Msg("product created")
	SendJSON(w, http.StatusCreated, productResponse(product))
}

func (h *Handlers) updateProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := urlID(r, "productId")
	if !ok {
		SendError(w, http.StatusBadRequest, "invalid product id")
		return
	}
	var req ProductRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	product := req.Model()
	product.ID = id
	store := db.FromContext(ctx)
	if err := store.UpdateProduct(ctx, product); err != nil {
		sendStoreError(w, err)
		return
	}
	updated, err := store.GetProduct(ctx, id)
	if err != nil {
		sendStoreError(w, err)
		return
	}
	SendJSON(w, http.StatusOK, productResponse(updated))
}

func (h *Handlers) deleteProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := urlID(r, "productId")
	if !ok {
		SendError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	if err := db.FromContext(ctx).DeleteProduct(ctx, id); err != nil {
		sendStoreError(w, err)
		return
	}
	log.Ctx(ctx).Info().Uint("id", id).Msg("product deleted")
	SendJSON(w, http.StatusOK, map[string]string{"message": "Product deleted successfully"})
}
