package cache

import (
	"fmt"

	"github.com/lennart/cinemood/internal/config"
)

// NewStore creates a BlobStore from configuration. Backend "fs" maps to
// a local directory, "s3" to an S3-compatible bucket.
func NewStore(cfg *config.CacheConfig) (BlobStore, error) {
	switch cfg.Backend {
	case "fs", "":
		return NewFSStore(cfg.Dir)
	case "s3":
		return NewS3Store(&S3Config{
			Endpoint:  cfg.Endpoint,
			AccessKey: cfg.AccessKey,
			SecretKey: cfg.SecretKey,
			UseSSL:    cfg.UseSSL,
			Bucket:    cfg.Bucket,
			Region:    cfg.Region,
		})
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Backend)
	}
}
