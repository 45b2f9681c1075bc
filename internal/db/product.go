package db

import (
	"context"
	"errors"

	"github.com/nathmakers/storesrv/internal/db/dberror"
	"github.com/nathmakers/storesrv/internal/db/models"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// productColumns are the mutable columns overwritten by UpdateProduct. The id
// and creation timestamp are immutable once assigned.
var productColumns = []string{
	"catalogueId", "productName", "description", "price",
	"material", "weight", "imageUrls", "isAvailable",
}

// CreateProduct inserts a new product after verifying its owning catalogue
// exists.
func (s *gormStore) CreateProduct(ctx context.Context, product *models.Product) error {
	if err := s.checkCatalogueExists(ctx, product.CatalogueID); err != nil {
		return err
	}
	if err := s.db.Create(product).Error; err != nil {
		log.Ctx(ctx).Error().Err(err).Str("name", product.ProductName).Msg("failed to insert product")
		return dberror.ErrDatabase.Msg("failed to insert product").Err(err)
	}
	return nil
}

// GetProduct retrieves one product by id.
func (s *gormStore) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	s.ensure(ctx)
	var product models.Product
	if err := s.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, dberror.ErrNotFound.Msg("product not found")
		}
		log.Ctx(ctx).Error().Err(err).Uint("id", id).Msg("failed to retrieve product")
		return nil, dberror.ErrDatabase.Err(err)
	}
	return &product, nil
}

// ListProducts returns all products, filtered to one catalogue when
// catalogueID is non-zero. Order is whatever the store returns.
func (s *gormStore) ListProducts(ctx context.Context, catalogueID uint) ([]models.Product, error) {
	s.ensure(ctx)
	tx := s.db
	if catalogueID != 0 {
		tx = tx.Where("catalogueId = ?", catalogueID)
	}
	var products []models.Product
	if err := tx.Find(&products).Error; err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to list products")
		return nil, dberror.ErrDatabase.Err(err)
	}
	return products, nil
}

// UpdateProduct overwrites every mutable field of an existing product from
// the supplied record. Partial merges are not supported; absent optional
// fields overwrite with their zero representation.
func (s *gormStore) UpdateProduct(ctx context.Context, product *models.Product) error {
	if err := s.checkCatalogueExists(ctx, product.CatalogueID); err != nil {
		return err
	}
	res := s.db.Model(&models.Product{}).
		Where("id = ?", product.ID).
		Select(productColumns).
		Updates(product)
	if res.Error != nil {
		log.Ctx(ctx).Error().Err(res.Error).Uint("id", product.ID).Msg("failed to update product")
		return dberror.ErrDatabase.Err(res.Error)
	}
	if res.RowsAffected == 0 {
		return dberror.ErrNotFound.Msg("product not found")
	}
	return nil
}

// DeleteProduct removes one product, reporting not-found when no row matched.
func (s *gormStore) DeleteProduct(ctx context.Context, id uint) error {
	res := s.db.Delete(&models.Product{}, "id = ?", id)
	if res.Error != nil {
		log.Ctx(ctx).Error().Err(res.Error).Uint("id", id).Msg("failed to delete product")
		return dberror.ErrDatabase.Err(res.Error)
	}
	if res.RowsAffected == 0 {
		return dberror.ErrNotFound.Msg("product not found")
	}
	return nil
}

func (s *gormStore) checkCatalogueExists(ctx context.Context, catalogueID uint) error {
	var count int64
	if err := s.db.Model(&models.Catalogue{}).Where("id = ?", catalogueID).Count(&count).Error; err != nil {
		log.Ctx(ctx).Error().Err(err).Uint("catalogueId", catalogueID).Msg("failed to check catalogue")
		return dberror.ErrDatabase.Err(err)
	}
	if count == 0 {
		return dberror.ErrNotFound.Msg("catalogue not found")
	}
	return nil
}
