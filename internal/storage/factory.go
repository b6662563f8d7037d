package storage

import (
	"context"
	"fmt"

	"candora.shop/api/internal/config"
)

// New builds the configured storage driver. s3 refuses to start with an
// incomplete configuration so a misconfigured bucket fails at boot, not
// on the first upload.
func New(ctx context.Context, cfg config.Storage) (Storage, error) {
	switch cfg.Driver {
	case "local":
		return NewLocal(cfg.LocalDir, cfg.LocalURLPrefix), nil

	case "s3":
		if cfg.Region == "" || cfg.Bucket == "" || cfg.PublicBaseURL == "" {
			return nil, fmt.Errorf("s3 config missing: S3_REGION, S3_BUCKET, S3_PUBLIC_BASE_URL required")
		}
		return NewS3(ctx, S3Config{
			Region:        cfg.Region,
			Bucket:        cfg.Bucket,
			Prefix:        cfg.Prefix,
			PublicBaseURL: cfg.PublicBaseURL,
		})

	default:
		return nil, fmt.Errorf("unknown storage driver: %s", cfg.Driver)
	}
}
