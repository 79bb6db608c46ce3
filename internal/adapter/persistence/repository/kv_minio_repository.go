package repository

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"contract_tracker/internal/usecase/interfaces"

	"github.com/minio/minio-go/v7"
)

// MinioKVRepository stores each key as the object <prefix><key>.json in an
// S3-compatible bucket.

type MinioKVRepository struct {
	client *minio.Client
	bucket string
	prefix string
}

var _ interfaces.IKeyValueStore = (*MinioKVRepository)(nil)

func NewMinioKVRepository(client *minio.Client, bucket, prefix string) *MinioKVRepository {
	return &MinioKVRepository{client: client, bucket: bucket, prefix: prefix}
}

func (r *MinioKVRepository) GetItem(ctx context.Context, key string) ([]byte, bool, error) {
	obj, err := r.client.GetObject(ctx, r.bucket, r.objectKey(key), minio.GetObjectOptions{})
	if err != nil {
		return nil, false, fmt.Errorf("get object %s: %w", key, err)
	}
	defer obj.Close()

	// GetObject is lazy; a missing key only shows up on the first read.
	b, err := io.ReadAll(obj)
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("read object %s: %w", key, err)
	}
	return b, true, nil
}

func (r *MinioKVRepository) SetItem(ctx context.Context, key string, value []byte) error {
	opts := minio.PutObjectOptions{ContentType: "application/json"}
	_, err := r.client.PutObject(ctx, r.bucket, r.objectKey(key), bytes.NewReader(value), int64(len(value)), opts)
	if err != nil {
		return fmt.Errorf("put object %s: %w", key, err)
	}
	return nil
}

func (r *MinioKVRepository) objectKey(key string) string {
	return r.prefix + key + ".json"
}
