package db

import (
	"context"

	"github.com/nathmakers/storesrv/internal/db/models"
	"github.com/rs/zerolog/log"
)

// Store is the persistence interface used by both the JSON API and the admin
// surface. Implementations are safe for concurrent use; request handlers
// obtain a request-scoped view via Scoped.
type Store interface {
	// Catalogue
	CreateCatalogue(ctx context.Context, catalogue *models.Catalogue) error
	GetCatalogue(ctx context.Context, id uint) (*models.Catalogue, error)
	ListCatalogues(ctx context.Context, withProducts bool) ([]models.Catalogue, error)
	UpdateCatalogue(ctx context.Context, catalogue *models.Catalogue) error
	DeleteCatalogue(ctx context.Context, id uint) error

	// Product
	CreateProduct(ctx context.Context, product *models.Product) error
	GetProduct(ctx context.Context, id uint) (*models.Product, error)
	// ListProducts returns all products, or only those owned by catalogueID
	// when it is non-zero.
	ListProducts(ctx context.Context, catalogueID uint) ([]models.Product, error)
	UpdateProduct(ctx context.Context, product *models.Product) error
	DeleteProduct(ctx context.Context, id uint) error

	// Admin
	CreateAdmin(ctx context.Context, admin *models.Admin) error
	ListAdmins(ctx context.Context) ([]models.Admin, error)

	// Lifecycle
	EnsureSchema(ctx context.Context) error
	Ping(ctx context.Context) error
	Scoped(ctx context.Context) Store
	Close() error
}

type ctxStoreKeyType string

const ctxStoreKey ctxStoreKeyType = "StoreSrvDb"

// WithStore attaches a request-scoped store to the context.
func WithStore(ctx context.Context, s Store) context.Context {
	return context.WithValue(ctx, ctxStoreKey, s)
}

// FromContext returns the store previously attached by WithStore, or nil.
// Handlers reaching a nil store indicate a routing setup bug, which is logged
// rather than panicking.
func FromContext(ctx context.Context) Store {
	if s, ok := ctx.Value(ctxStoreKey).(Store); ok {
		return s
	}
	log.Ctx(ctx).Error().Msg("no store in request context")
	return nil
}
