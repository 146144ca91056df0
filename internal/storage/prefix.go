package storage

import (
	"context"
	"io"
	"strings"
)

// Prefix constants partitioning the bucket into logical areas.
const (
	StaticPrefix = "static"
	MediaPrefix  = "media"
)

// Prefixed wraps a Storage and scopes every key under a fixed prefix. It is
// the single rule that distinguishes build-time assets from user uploads:
// the prefix is the only difference between the two configurations.
type Prefixed struct {
	base   Storage
	prefix string
}

// WithPrefix returns a Prefixed view of base. The prefix is normalized to a
// single path segment without slashes.
func WithPrefix(base Storage, prefix string) *Prefixed {
	return &Prefixed{base: base, prefix: strings.Trim(prefix, "/")}
}

// Key maps a relative file path to its full object key. An empty or
// all-slash path maps to the bare prefix rather than a trailing-slash key.
func (p *Prefixed) Key(path string) string {
	rel := strings.Trim(path, "/")
	if rel == "" {
		return p.prefix
	}
	return p.prefix + "/" + rel
}

// Save stores the content under the prefixed key.
func (p *Prefixed) Save(ctx context.Context, path string, reader io.Reader, size int64, contentType string) error {
	return p.base.Save(ctx, p.Key(path), reader, size, contentType)
}

// Open reads back the content stored under the prefixed key.
func (p *Prefixed) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	return p.base.Open(ctx, p.Key(path))
}

// Delete removes the object under the prefixed key.
func (p *Prefixed) Delete(ctx context.Context, path string) error {
	return p.base.Delete(ctx, p.Key(path))
}

// URL returns the public URL for the prefixed key.
func (p *Prefixed) URL(path string) string {
	return p.base.URL(p.Key(path))
}

// Backends bundles the two named storage configurations. Both share the same
// underlying client, bucket, and credentials; only the key prefix differs.
type Backends struct {
	Static *Prefixed // build-time assets under static/
	Media  *Prefixed // user uploads under media/
}

// NewBackends instantiates the static and media configurations on top of a
// single base store.
func NewBackends(base Storage) Backends {
	return Backends{
		Static: WithPrefix(base, StaticPrefix),
		Media:  WithPrefix(base, MediaPrefix),
	}
}
