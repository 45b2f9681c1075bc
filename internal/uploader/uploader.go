// Package uploader forwards image payloads to the external image-hosting
// collaborator. The payload is treated as opaque bytes; the collaborator
// assigns the public URL.
package uploader

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	cldupload "github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Uploader stores one image payload and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, filename string, r io.Reader) (string, error)
}

type cloudinaryUploader struct {
	cld    *cloudinary.Cloudinary
	folder string
}

// NewCloudinary builds an Uploader backed by a Cloudinary account.
func NewCloudinary(cloudName, apiKey, apiSecret string) (Uploader, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("cloudinary init: %w", err)
	}
	return &cloudinaryUploader{
		cld:    cld,
		folder: "storesrv",
	}, nil
}

func (u *cloudinaryUploader) Upload(ctx context.Context, filename string, r io.Reader) (string, error) {
	// The collaborator keys assets by public id, not by the original
	// filename, so collisions between identically named uploads are avoided
	// with a generated id.
	publicID := uuid.NewString()
	res, err := u.cld.Upload.Upload(ctx, r, cldupload.UploadParams{
		PublicID: publicID,
		Folder:   u.folder,
	})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("filename", filename).Msg("image upload failed")
		return "", err
	}
	if res.Error.Message != "" {
		log.Ctx(ctx).Error().Str("filename", filename).Str("cause", res.Error.Message).Msg("image upload rejected")
		return "", errors.New(res.Error.Message)
	}
	return res.SecureURL, nil
}
