package db

import (
	"context"

	"github.com/nathmakers/storesrv/internal/db/dberror"
	"github.com/nathmakers/storesrv/internal/db/models"
	"github.com/rs/zerolog/log"
)

// CreateAdmin inserts a new admin record.
func (s *gormStore) CreateAdmin(ctx context.Context, admin *models.Admin) error {
	if err := s.db.Create(admin).Error; err != nil {
		log.Ctx(ctx).Error().Err(err).Str("name", admin.Name).Msg("failed to insert admin")
		return dberror.ErrDatabase.Msg("failed to insert admin").Err(err)
	}
	return nil
}

// ListAdmins returns all admin records.
func (s *gormStore) ListAdmins(ctx context.Context) ([]models.Admin, error) {
	s.ensure(ctx)
	var admins []models.Admin
	if err := s.db.Find(&admins).Error; err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to list admins")
		return nil, dberror.ErrDatabase.Err(err)
	}
	return admins, nil
}
