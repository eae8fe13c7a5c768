package main

import (
	"context"
	"fmt"

	"github.com/hupe1980/advkit/blobstore"
	"github.com/hupe1980/advkit/blobstore/minio"
	"github.com/hupe1980/advkit/blobstore/s3"
)

// openStore opens the blob store described by cfg.
func openStore(ctx context.Context, cfg StoreConfig) (blobstore.BlobStore, error) {
	switch cfg.Kind {
	case "", "local":
		if cfg.Path == "" {
			return nil, fmt.Errorf("store.path is required for local stores")
		}
		return blobstore.NewLocalStore(cfg.Path), nil

	case "memory":
		return blobstore.NewMemoryStore(), nil

	case "minio":
		if cfg.Endpoint == "" || cfg.Bucket == "" {
			return nil, fmt.Errorf("store.endpoint and store.bucket are required for minio stores")
		}
		return minio.Dial(cfg.Endpoint, cfg.AccessKey, cfg.SecretKey, !cfg.Insecure, cfg.Bucket, cfg.Prefix)

	case "s3":
		if cfg.Bucket == "" {
			return nil, fmt.Errorf("store.bucket is required for s3 stores")
		}
		opts := []s3.Option{s3.WithPrefix(cfg.Prefix)}
		if cfg.Region != "" {
			opts = append(opts, s3.WithRegion(cfg.Region))
		}
		if cfg.Endpoint != "" {
			opts = append(opts, s3.WithEndpoint(cfg.Endpoint))
		}
		return s3.New(ctx, cfg.Bucket, opts...)

	default:
		return nil, fmt.Errorf("unknown store kind %q", cfg.Kind)
	}
}
