package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// R2Storage implements Storage against a Cloudflare R2 bucket. R2 speaks the
// S3 protocol, so the same code works against MinIO or AWS S3 by changing
// CLOUDFLARE_R2_BUCKET_ENDPOINT and credentials.
type R2Storage struct {
	client   *minio.Client
	bucket   string
	endpoint string // normalized base URL without trailing slash
}

// NewR2Storage creates an S3 client for the given endpoint URL and verifies
// the bucket exists. The bucket is provisioned out of band; a missing bucket
// is a startup error, not something to create on the fly with application
// credentials.
func NewR2Storage(endpoint, accessKey, secretKey, bucket string) (*R2Storage, error) {
	u, err := url.Parse(endpoint)
	if err != nil || u.Host == "" {
		return nil, fmt.Errorf("invalid storage endpoint %q", endpoint)
	}

	client, err := minio.New(u.Host, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: u.Scheme != "http",
		Region: "auto",
	})
	if err != nil {
		return nil, fmt.Errorf("create s3 client: %w", err)
	}

	exists, err := client.BucketExists(context.Background(), bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket existence: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket %q does not exist", bucket)
	}

	return &R2Storage{
		client:   client,
		bucket:   bucket,
		endpoint: u.Scheme + "://" + u.Host,
	}, nil
}

// Save streams reader to the bucket under key. size must be the exact byte
// count (pass -1 only if the size is genuinely unknown — the client will
// buffer it).
func (s *R2Storage) Save(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error {
	_, err := s.client.PutObject(ctx, s.bucket, key, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("put object %q: %w", key, err)
	}
	return nil
}

// Open returns the object content at key.
func (s *R2Storage) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("get object %q: %w", key, err)
	}
	return obj, nil
}

// Delete removes the object at key from the bucket.
func (s *R2Storage) Delete(ctx context.Context, key string) error {
	return s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{})
}

// URL returns the browser-accessible URL for the given key, following the
// pattern https://<endpoint>/<bucket>/<key>.
func (s *R2Storage) URL(key string) string {
	return publicURL(s.endpoint, s.bucket, key)
}

func publicURL(endpoint, bucket, key string) string {
	return endpoint + "/" + bucket + "/" + key
}
