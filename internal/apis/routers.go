package apis

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/nathmakers/storesrv/internal/uploader"
)

// Handlers carries the collaborators the API handlers need beyond the
// request-scoped store, which arrives via the request context.
type Handlers struct {
	Uploader uploader.Uploader
}

type handlerParam struct {
	Method  string
	Path    string
	Handler http.HandlerFunc
}

func (h *Handlers) routes() []handlerParam {
	return []handlerParam{
		{
			Method:  http.MethodGet,
			Path:    "/hello",
			Handler: h.hello,
		},
		{
			Method:  http.MethodGet,
			Path:    "/catalogues",
			Handler: h.listCatalogues,
		},
		{
			Method:  http.MethodPost,
			Path:    "/catalogues",
			Handler: h.createCatalogue,
		},
		{
			Method:  http.MethodGet,
			Path:    "/catalogues/{catalogueId}",
			Handler: h.getCatalogue,
		},
		{
			Method:  http.MethodPut,
			Path:    "/catalogues/{catalogueId}",
			Handler: h.updateCatalogue,
		},
		{
			Method:  http.MethodDelete,
			Path:    "/catalogues/{catalogueId}",
			Handler: h.deleteCatalogue,
		},
		{
			Method:  http.MethodGet,
			Path:    "/products",
			Handler: h.listProducts,
		},
		{
			Method:  http.MethodPost,
			Path:    "/products",
			Handler: h.createProduct,
		},
		{
			Method:  http.MethodGet,
			Path:    "/products/{productId}",
			Handler: h.getProduct,
		},
		{
			Method:  http.MethodPut,
			Path:    "/products/{productId}",
			Handler: h.updateProduct,
		},
		{
			Method:  http.MethodDelete,
			Path:    "/products/{productId}",
			Handler: h.deleteProduct,
		},
		{
			Method:  http.MethodGet,
			Path:    "/admins",
			Handler: h.listAdmins,
		},
		{
			Method:  http.MethodPost,
			Path:    "/admins",
			Handler: h.createAdmin,
		},
		{
			Method:  http.MethodPost,
			Path:    "/upload",
			Handler: h.upload,
		},
	}
}

// Router mounts the structured JSON API onto r.
func Router(r chi.Router, h *Handlers) {
	for _, handler := range h.routes() {
		r.Method(handler.Method, handler.Path, handler.Handler)
	}
}

func (h *Handlers) hello(w http.ResponseWriter, r *http.Request) {
	SendJSON(w, http.StatusOK, map[string]string{"message": "Hello from NathMaker!"})
}
