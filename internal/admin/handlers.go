package admin

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/nathmakers/storesrv/internal/db"
	"github.com/nathmakers/storesrv/internal/db/dberror"
	"github.com/nathmakers/storesrv/internal/db/models"
	"github.com/rs/zerolog/log"
)

// Handlers serves the session-gated HTML admin surface. It offers the same
// CRUD capabilities as the JSON API via form submission and redirects.
type Handlers struct {
	password string
	token    string
}

func NewHandlers(password string) *Handlers {
	return &Handlers{
		password: password,
		token:    SessionToken(password),
	}
}

// Router mounts the admin surface onto r. Login, logout and the health probe
// sit outside the session gate; everything else is behind it.
func Router(r chi.Router, h *Handlers) {
	r.Get("/login", h.loginPage)
	r.Post("/login", h.login)
	r.Get("/logout", h.logout)
	r.Get("/health", h.health)

	r.Group(func(r chi.Router) {
		r.Use(h.requireSession)
		r.Get("/dashboard", h.dashboard)
		r.Get("/catalogues", h.cataloguesPage)
		r.Post("/catalogues/add", h.catalogueAdd)
		r.Post("/catalogues/delete/{catalogueId}", h.catalogueDelete)
		r.Get("/products", h.productsPage)
		r.Get("/product/add", h.productFormPage)
		r.Get("/product/edit/{productId}", h.productFormPage)
		r.Post("/product/save", h.productSave)
		r.Post("/product/delete/{productId}", h.productDelete)
	})
}

func (h *Handlers) loginPage(w http.ResponseWriter, r *http.Request) {
	render(w, r, "login.html", map[string]string{})
}

func (h *Handlers) login(w http.ResponseWriter, r *http.Request) {
	if !checkPassword(r.FormValue("password"), h.password) {
		log.Ctx(r.Context()).Warn().Msg("admin login rejected")
		render(w, r, "login.html", map[string]string{"Error": "Invalid password"})
		return
	}
	setSessionCookie(w, h.token)
	http.Redirect(w, r, "/admin/dashboard", http.StatusFound)
}

func (h *Handlers) logout(w http.ResponseWriter, r *http.Request) {
	clearSessionCookie(w)
	http.Redirect(w, r, "/admin/login", http.StatusFound)
}

func (h *Handlers) dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	store := db.FromContext(ctx)

	catalogues, _ := store.ListCatalogues(ctx, false)
	products, _ := store.ListProducts(ctx, 0)
	admins, _ := store.ListAdmins(ctx)

	render(w, r, "dashboard.html", map[string]int{
		"CatalogueCount": len(catalogues),
		"ProductCount":   len(products),
		"AdminCount":     len(admins),
	})
}

// catalogueView flattens optional fields for template rendering.
type catalogueView struct {
	ID          uint
	Name        string
	Description string
}

func (h *Handlers) cataloguesPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	catalogues, err := db.FromContext(ctx).ListCatalogues(ctx, false)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to load catalogues page")
	}
	views := make([]catalogueView, 0, len(catalogues))
	for _, c := range catalogues {
		v := catalogueView{ID: c.ID, Name: c.Name}
		if c.Description != nil {
			v.Description = *c.Description
		}
		views = append(views, v)
	}
	render(w, r, "catalogues.html", map[string]any{"Catalogues": views})
}

func (h *Handlers) catalogueAdd(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	catalogue := catalogueFromForm(r)
	if err := db.FromContext(ctx).CreateCatalogue(ctx, catalogue); err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("admin catalogue add failed")
	}
	http.Redirect(w, r, "/admin/catalogues", http.StatusFound)
}

// catalogueDelete tolerates a missing record silently; the listing redirect
// happens either way.
func (h *Handlers) catalogueDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if id, ok := pathID(r, "catalogueId"); ok {
		err := db.FromContext(ctx).DeleteCatalogue(ctx, id)
		if err != nil && !errors.Is(err, dberror.ErrNotFound) {
			log.Ctx(ctx).Error().Err(err).Uint("id", id).Msg("admin catalogue delete failed")
		}
	}
	http.Redirect(w, r, "/admin/catalogues", http.StatusFound)
}

func (h *Handlers) productsPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	products, err := db.FromContext(ctx).ListProducts(ctx, 0)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to load products page")
	}
	render(w, r, "products.html", map[string]any{"Products": products})
}

// productView flattens the product for the add/edit form.
type productView struct {
	ID          uint
	CatalogueID uint
	ProductName string
	Description string
	Price       float64
	Material    string
	Weight      string
	ImageURLs   string
	IsAvailable bool
}

func viewOf(p *models.Product) productView {
	v := productView{
		ID:          p.ID,
		CatalogueID: p.CatalogueID,
		ProductName: p.ProductName,
		Price:       p.Price,
		ImageURLs:   strings.Join(p.ImageURLList(), "\n"),
		IsAvailable: p.IsAvailable,
	}
	if p.Description != nil {
		v.Description = *p.Description
	}
	if p.Material != nil {
		v.Material = *p.Material
	}
	if p.Weight != nil {
		v.Weight = *p.Weight
	}
	return v
}

// productFormPage serves both the add form (empty product) and the edit form
// (existing product loaded by id).
func (h *Handlers) productFormPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	store := db.FromContext(ctx)

	product := &models.Product{IsAvailable: true}
	if id, ok := pathID(r, "productId"); ok {
		existing, err := store.GetProduct(ctx, id)
		if err != nil {
			http.Redirect(w, r, "/admin/products", http.StatusFound)
			return
		}
		product = existing
	}

	catalogues, err := store.ListCatalogues(ctx, false)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to load catalogues for product form")
	}
	render(w, r, "product_form.html", map[string]any{
		"Product":    viewOf(product),
		"Catalogues": catalogues,
	})
}

// productSave inserts when the hidden id field is empty and performs a
// full-field overwrite update otherwise. Failures are logged and the client
// is redirected to the listing regardless.
func (h *Handlers) productSave(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	store := db.FromContext(ctx)
	product := productFromForm(r)

	var err error
	if rawID := r.FormValue("id"); rawID != "" {
		var id uint64
		if id, err = strconv.ParseUint(rawID, 10, 32); err == nil {
			product.ID = uint(id)
			err = store.UpdateProduct(ctx, product)
		}
	} else {
		err = store.CreateProduct(ctx, product)
	}
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("admin product save failed")
	}
	http.Redirect(w, r, "/admin/products", http.StatusFound)
}

// productDelete tolerates a missing record silently, unlike the JSON API
// delete.
func (h *Handlers) productDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if id, ok := pathID(r, "productId"); ok {
		err := db.FromContext(ctx).DeleteProduct(ctx, id)
		if err != nil && !errors.Is(err, dberror.ErrNotFound) {
			log.Ctx(ctx).Error().Err(err).Uint("id", id).Msg("admin product delete failed")
		}
	}
	http.Redirect(w, r, "/admin/products", http.StatusFound)
}

func pathID(r *http.Request, param string) (uint, bool) {
	id, err := strconv.ParseUint(chi.URLParam(r, param), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
