// Command collectstatic uploads a local directory of build-time assets into
// the static area of the configured bucket. Run it as part of a deploy, after
// the frontend build and before the server restart.
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/assetbox/service/internal/config"
	"github.com/assetbox/service/internal/static"
	"github.com/assetbox/service/internal/storage"
)

func main() {
	dir := flag.String("dir", "static", "directory of static assets to upload")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	store, err := storage.NewR2Storage(cfg.R2Endpoint, cfg.R2AccessKey, cfg.R2SecretKey, cfg.R2Bucket)
	if err != nil {
		log.Fatalf("object storage init failed: %v", err)
	}
	backends := storage.NewBackends(store)

	res, err := static.Collect(context.Background(), backends.Static, os.DirFS(*dir))
	if err != nil {
		log.Fatalf("collect failed: %v", err)
	}

	log.Printf("collected %d files (%d bytes) into %s/%s/", res.Uploaded, res.Bytes, cfg.R2Bucket, storage.StaticPrefix)
}
