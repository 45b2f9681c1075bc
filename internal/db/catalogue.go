package db

import (
	"context"
	"errors"

	"github.com/nathmakers/storesrv/internal/db/dberror"
	"github.com/nathmakers/storesrv/internal/db/models"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// CreateCatalogue inserts a new catalogue, together with any nested products
// attached to it, and fills in the generated id and creation timestamp.
func (s *gormStore) CreateCatalogue(ctx context.Context, catalogue *models.Catalogue) error {
	if err := s.db.Create(catalogue).Error; err != nil {
		log.Ctx(ctx).Error().Err(err).Str("name", catalogue.Name).Msg("failed to insert catalogue")
		return dberror.ErrDatabase.Msg("failed to insert catalogue").Err(err)
	}
	return nil
}

// GetCatalogue retrieves one catalogue by id without its products.
func (s *gormStore) GetCatalogue(ctx context.Context, id uint) (*models.Catalogue, error) {
	s.ensure(ctx)
	var catalogue models.Catalogue
	if err := s.db.First(&catalogue, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, dberror.ErrNotFound.Msg("catalogue not found")
		}
		log.Ctx(ctx).Error().Err(err).Uint("id", id).Msg("failed to retrieve catalogue")
		return nil, dberror.ErrDatabase.Err(err)
	}
	return &catalogue, nil
}

// ListCatalogues returns all catalogues. Products are loaded only when the
// caller explicitly asks for them; the default read is bare records.
func (s *gormStore) ListCatalogues(ctx context.Context, withProducts bool) ([]models.Catalogue, error) {
	s.ensure(ctx)
	tx := s.db
	if withProducts {
		tx = tx.Preload("Products")
	}
	var catalogues []models.Catalogue
	if err := tx.Find(&catalogues).Error; err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to list catalogues")
		return nil, dberror.ErrDatabase.Err(err)
	}
	return catalogues, nil
}

// catalogueColumns are the mutable catalogue columns overwritten by
// UpdateCatalogue.
var catalogueColumns = []string{"name", "description", "coverImageUrl"}

// UpdateCatalogue overwrites every mutable field of an existing catalogue.
func (s *gormStore) UpdateCatalogue(ctx context.Context, catalogue *models.Catalogue) error {
	res := s.db.Model(&models.Catalogue{}).
		Where("id = ?", catalogue.ID).
		Select(catalogueColumns).
		Updates(catalogue)
	if res.Error != nil {
		log.Ctx(ctx).Error().Err(res.Error).Uint("id", catalogue.ID).Msg("failed to update catalogue")
		return dberror.ErrDatabase.Err(res.Error)
	}
	if res.RowsAffected == 0 {
		return dberror.ErrNotFound.Msg("catalogue not found")
	}
	return nil
}

// DeleteCatalogue removes a catalogue and cascades to its products. The two
// deletes run in one transaction so no product is ever orphaned.
func (s *gormStore) DeleteCatalogue(ctx context.Context, id uint) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Product{}, "catalogueId = ?", id).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Catalogue{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return dberror.ErrNotFound.Msg("catalogue not found")
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, dberror.ErrNotFound) {
			return err
		}
		log.Ctx(ctx).Error().Err(err).Uint("id", id).Msg("failed to delete catalogue")
		return dberror.ErrDatabase.Err(err)
	}
	return nil
}
