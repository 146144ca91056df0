// Package static uploads build-time assets into the static area of the
// bucket, the storage-side half of a collect-static deployment step.
package static

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"log"
	"path"

	"github.com/gabriel-vasile/mimetype"

	"github.com/assetbox/service/internal/storage"
)

// Result summarizes a collection run.
type Result struct {
	Uploaded int
	Bytes    int64
}

// Collect walks fsys and saves every regular file through the static storage
// backend, keyed by its path relative to the root. Hidden files and
// directories (dot-prefixed) are skipped.
func Collect(ctx context.Context, store *storage.Prefixed, fsys fs.FS) (*Result, error) {
	res := &Result{}

	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if hidden(p) {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}

		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("read %q: %w", p, err)
		}

		contentType := mimetype.Detect(data).String()
		if err := store.Save(ctx, p, bytes.NewReader(data), int64(len(data)), contentType); err != nil {
			return err
		}
		log.Printf("collected %s (%s, %d bytes)", store.Key(p), contentType, len(data))

		res.Uploaded++
		res.Bytes += int64(len(data))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// hidden reports whether any segment of p starts with a dot.
func hidden(p string) bool {
	if p == "." {
		return false
	}
	for p != "." && p != "/" {
		if base := path.Base(p); len(base) > 0 && base[0] == '.' {
			return true
		}
		p = path.Dir(p)
	}
	return false
}
