package db

import (
	"context"
	"testing"
	"time"

	"github.com/nathmakers/storesrv/internal/db/dberror"
	"github.com/nathmakers/storesrv/internal/db/models"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestStore(t *testing.T) (context.Context, Store) {
	t.Helper()
	ctx := log.Logger.WithContext(context.Background())

	gdb, err := gorm.Open(sqlite.Open("file::memory:?_fk=1"), &gorm.Config{
		NowFunc: func() time.Time { return time.Now().UTC() },
		Logger:  logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	s := New(gdb)
	require.NoError(t, s.EnsureSchema(ctx))
	t.Cleanup(func() { _ = s.Close() })
	return ctx, s
}

func strPtr(s string) *string { return &s }

func TestCreateCatalogue(t *testing.T) {
	ctx, s := newTestStore(t)

	first := &models.Catalogue{Name: "Rings"}
	err := s.CreateCatalogue(ctx, first)
	assert.NoError(t, err)
	assert.NotZero(t, first.ID)
	assert.False(t, first.CreatedAt.IsZero())

	second := &models.Catalogue{Name: "Necklaces", Description: strPtr("chains and pendants")}
	err = s.CreateCatalogue(ctx, second)
	assert.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	// Creation timestamps are non-decreasing in call order.
	assert.False(t, second.CreatedAt.Before(first.CreatedAt))
}

func TestCreateCatalogueWithNestedProducts(t *testing.T) {
	ctx, s := newTestStore(t)

	catalogue := &models.Catalogue{
		Name: "Bracelets",
		Products: []models.Product{
			{ProductName: "Bangle", Price: 49.99, IsAvailable: true, ImageURLs: "[]"},
			{ProductName: "Cuff", Price: 89.99, IsAvailable: true, ImageURLs: "[]"},
		},
	}
	require.NoError(t, s.CreateCatalogue(ctx, catalogue))

	products, err := s.ListProducts(ctx, catalogue.ID)
	assert.NoError(t, err)
	assert.Len(t, products, 2)
	for _, p := range products {
		assert.Equal(t, catalogue.ID, p.CatalogueID)
	}
}

func TestUpdateCatalogue(t *testing.T) {
	ctx, s := newTestStore(t)

	catalogue := &models.Catalogue{Name: "Rings", Description: strPtr("gold")}
	require.NoError(t, s.CreateCatalogue(ctx, catalogue))

	updated := &models.Catalogue{ID: catalogue.ID, Name: "Wedding Rings"}
	require.NoError(t, s.UpdateCatalogue(ctx, updated))

	got, err := s.GetCatalogue(ctx, catalogue.ID)
	require.NoError(t, err)
	assert.Equal(t, "Wedding Rings", got.Name)
	assert.Nil(t, got.Description)

	err = s.UpdateCatalogue(ctx, &models.Catalogue{ID: 9999, Name: "x"})
	assert.ErrorIs(t, err, dberror.ErrNotFound)
}

func TestGetCatalogueNotFound(t *testing.T) {
	ctx, s := newTestStore(t)

	catalogue, err := s.GetCatalogue(ctx, 9999)
	assert.Nil(t, catalogue)
	assert.ErrorIs(t, err, dberror.ErrNotFound)
}

func TestDeleteCatalogueCascades(t *testing.T) {
	ctx, s := newTestStore(t)

	catalogue := &models.Catalogue{Name: "Earrings"}
	require.NoError(t, s.CreateCatalogue(ctx, catalogue))

	for i := 0; i < 3; i++ {
		p := &models.Product{
			CatalogueID: catalogue.ID,
			ProductName: "Stud",
			Price:       10,
			IsAvailable: true,
			ImageURLs:   "[]",
		}
		require.NoError(t, s.CreateProduct(ctx, p))
	}

	require.NoError(t, s.DeleteCatalogue(ctx, catalogue.ID))

	products, err := s.ListProducts(ctx, catalogue.ID)
	assert.NoError(t, err)
	assert.Empty(t, products)

	// Deleting again reports not-found.
	err = s.DeleteCatalogue(ctx, catalogue.ID)
	assert.ErrorIs(t, err, dberror.ErrNotFound)
}

func TestCreateProductRequiresCatalogue(t *testing.T) {
	ctx, s := newTestStore(t)

	p := &models.Product{CatalogueID: 1234, ProductName: "Orphan", Price: 1}
	err := s.CreateProduct(ctx, p)
	assert.ErrorIs(t, err, dberror.ErrNotFound)
}

func TestUpdateProduct(t *testing.T) {
	ctx, s := newTestStore(t)

	catalogue := &models.Catalogue{Name: "Rings"}
	require.NoError(t, s.CreateCatalogue(ctx, catalogue))

	p := &models.Product{
		CatalogueID: catalogue.ID,
		ProductName: "Gold Band",
		Description: strPtr("classic"),
		Price:       199.99,
		IsAvailable: true,
		ImageURLs:   "[]",
	}
	require.NoError(t, s.CreateProduct(ctx, p))

	// Full-field overwrite: optional fields not supplied are cleared, the
	// availability flag flips, the timestamp survives.
	updated := &models.Product{
		ID:          p.ID,
		CatalogueID: catalogue.ID,
		ProductName: "Gold Band II",
		Price:       249.99,
		IsAvailable: false,
		ImageURLs:   "[]",
	}
	require.NoError(t, s.UpdateProduct(ctx, updated))

	got, err := s.GetProduct(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Gold Band II", got.ProductName)
	assert.Equal(t, 249.99, got.Price)
	assert.Nil(t, got.Description)
	assert.False(t, got.IsAvailable)
	assert.Equal(t, p.CreatedAt.Unix(), got.CreatedAt.Unix())

	// Updating a non-existent id is a not-found outcome, not a fault.
	missing := &models.Product{ID: 9999, CatalogueID: catalogue.ID, ProductName: "x", ImageURLs: "[]"}
	err = s.UpdateProduct(ctx, missing)
	assert.ErrorIs(t, err, dberror.ErrNotFound)
}

func TestDeleteProductNotFound(t *testing.T) {
	ctx, s := newTestStore(t)

	err := s.DeleteProduct(ctx, 424242)
	assert.ErrorIs(t, err, dberror.ErrNotFound)
}

func TestListProductsFilter(t *testing.T) {
	ctx, s := newTestStore(t)

	first := &models.Catalogue{Name: "A"}
	second := &models.Catalogue{Name: "B"}
	require.NoError(t, s.CreateCatalogue(ctx, first))
	require.NoError(t, s.CreateCatalogue(ctx, second))

	require.NoError(t, s.CreateProduct(ctx, &models.Product{CatalogueID: first.ID, ProductName: "a1", ImageURLs: "[]"}))
	require.NoError(t, s.CreateProduct(ctx, &models.Product{CatalogueID: second.ID, ProductName: "b1", ImageURLs: "[]"}))

	all, err := s.ListProducts(ctx, 0)
	assert.NoError(t, err)
	assert.Len(t, all, 2)

	onlyFirst, err := s.ListProducts(ctx, first.ID)
	assert.NoError(t, err)
	assert.Len(t, onlyFirst, 1)
	assert.Equal(t, "a1", onlyFirst[0].ProductName)
}

func TestImageURLRoundTrip(t *testing.T) {
	ctx, s := newTestStore(t)

	catalogue := &models.Catalogue{Name: "Rings"}
	require.NoError(t, s.CreateCatalogue(ctx, catalogue))

	for _, urls := range [][]string{
		{},
		{"https://img.example/a.jpg"},
		{"https://img.example/a.jpg", "https://img.example/b.jpg", "https://img.example/c.jpg"},
	} {
		p := &models.Product{CatalogueID: catalogue.ID, ProductName: "ring", IsAvailable: true}
		p.SetImageURLs(urls)
		require.NoError(t, s.CreateProduct(ctx, p))

		got, err := s.GetProduct(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, urls, got.ImageURLList())
	}
}

func TestMalformedImageBlobReadsAsEmpty(t *testing.T) {
	ctx, s := newTestStore(t)

	catalogue := &models.Catalogue{Name: "Rings"}
	require.NoError(t, s.CreateCatalogue(ctx, catalogue))

	p := &models.Product{CatalogueID: catalogue.ID, ProductName: "ring", ImageURLs: "not valid json at all"}
	require.NoError(t, s.CreateProduct(ctx, p))

	got, err := s.GetProduct(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{}, got.ImageURLList())
}

func TestAdmins(t *testing.T) {
	ctx, s := newTestStore(t)

	admin := &models.Admin{Name: "nath"}
	require.NoError(t, s.CreateAdmin(ctx, admin))
	assert.NotZero(t, admin.ID)

	admins, err := s.ListAdmins(ctx)
	assert.NoError(t, err)
	assert.Len(t, admins, 1)
	assert.Equal(t, "nath", admins[0].Name)
}

func TestPing(t *testing.T) {
	ctx, s := newTestStore(t)
	assert.NoError(t, s.Ping(ctx))

	require.NoError(t, s.Close())
	assert.Error(t, s.Ping(ctx))
}
