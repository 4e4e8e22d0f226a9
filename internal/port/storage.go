package port

import (
	"context"
	"io"
)

// PutObjectInput describes an artifact to archive.
type PutObjectInput struct {
	Bucket      string
	Key         string
	ContentType string
	Body        io.Reader
}

// ObjectStorage archives enriched artifacts and hands out download links.
type ObjectStorage interface {
	Put(ctx context.Context, in PutObjectInput) error
	Delete(ctx context.Context, bucket, key string) error
	Presign(ctx context.Context, bucket, key string, expirySeconds int64) (string, error)
}
