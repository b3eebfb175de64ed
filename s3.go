package htmlsaver

import (
	"bytes"
	"context"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// S3Storage uploads content to an Amazon S3 (or S3-compatible) bucket.
//
// Example:
//
//	client, err := minio.New("s3.amazonaws.com", &minio.Options{
//		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
//		Secure: true,
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	storage := htmlsaver.NewS3Storage(client, "my-bucket")
type S3Storage struct {
	client *minio.Client
	bucket string
}

// NewS3Storage creates an S3Storage from an existing client and bucket name.
func NewS3Storage(client *minio.Client, bucket string) *S3Storage {
	return &S3Storage{client: client, bucket: bucket}
}

// NewS3StorageStatic creates an S3Storage from an endpoint and static
// credentials. Use NewS3Storage with a hand-built client for anything more
// elaborate (IAM roles, custom transports, region pinning).
func NewS3StorageStatic(endpoint, accessKey, secretKey, bucket string, useSSL bool) (*S3Storage, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, err
	}
	return NewS3Storage(client, bucket), nil
}

func (s *S3Storage) Put(ctx context.Context, key string, content []byte, contentType string) error {
	_, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(content), int64(len(content)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return &StorageError{Key: key, Err: err}
	}
	return nil
}
