// Package asset manages uploaded media files and their persistence.
package asset

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Asset is the database record for a file stored in the media area of the
// bucket. ObjectKey is relative to the media prefix.
type Asset struct {
	ID           string    `json:"id"`
	ObjectKey    string    `json:"objectKey"`
	OriginalName string    `json:"originalName"`
	ContentType  string    `json:"contentType"`
	SizeBytes    int64     `json:"sizeBytes"`
	CreatedAt    time.Time `json:"createdAt"`
	URL          string    `json:"url,omitempty"`
}

// ErrNotFound is returned when an asset does not exist.
var ErrNotFound = errors.New("asset not found")

// Repository handles all asset database operations.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new Repository with the given connection pool.
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// Create inserts a new asset record and returns it.
func (r *Repository) Create(ctx context.Context, objectKey, originalName, contentType string, sizeBytes int64) (*Asset, error) {
	a := &Asset{}
	err := r.db.QueryRow(ctx,
		`INSERT INTO assets (object_key, original_name, content_type, size_bytes)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, object_key, original_name, content_type, size_bytes, created_at`,
		objectKey, originalName, contentType, sizeBytes,
	).Scan(&a.ID, &a.ObjectKey, &a.OriginalName, &a.ContentType, &a.SizeBytes, &a.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create asset: %w", err)
	}
	return a, nil
}

// GetByID fetches an asset by its UUID.
func (r *Repository) GetByID(ctx context.Context, id string) (*Asset, error) {
	a := &Asset{}
	err := r.db.QueryRow(ctx,
		`SELECT id, object_key, original_name, content_type, size_bytes, created_at
		 FROM assets WHERE id = $1`,
		id,
	).Scan(&a.ID, &a.ObjectKey, &a.OriginalName, &a.ContentType, &a.SizeBytes, &a.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get asset by id: %w", err)
	}
	return a, nil
}

// List returns assets newest first, capped at limit.
func (r *Repository) List(ctx context.Context, limit int) ([]*Asset, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, object_key, original_name, content_type, size_bytes, created_at
		 FROM assets ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list assets: %w", err)
	}
	defer rows.Close()

	var assets []*Asset
	for rows.Next() {
		a := &Asset{}
		if err := rows.Scan(&a.ID, &a.ObjectKey, &a.OriginalName, &a.ContentType, &a.SizeBytes, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan asset: %w", err)
		}
		assets = append(assets, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate assets: %w", err)
	}
	return assets, nil
}

// Delete removes an asset record by its UUID.
func (r *Repository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM assets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete asset: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
