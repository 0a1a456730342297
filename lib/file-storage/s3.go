package filestorage

import (
	"context"
	"io"
	"time"

	"github.com/minio/minio-go/v7"
)

const presignTTL = 24 * time.Hour

type s3Impl struct {
	s3client   *minio.Client
	bucketName string
}

func NewS3(s3client *minio.Client, bucketName string) Provider {
	return &s3Impl{
		s3client:   s3client,
		bucketName: bucketName,
	}
}

func (i s3Impl) Save(ctx context.Context, key string, reader io.Reader, size int64, contentType string) (string, error) {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	_, err := i.s3client.PutObject(ctx, i.bucketName, key, reader, size, minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", err
	}
	return key, nil
}

func (i s3Impl) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	return i.s3client.GetObject(ctx, i.bucketName, key, minio.GetObjectOptions{})
}

func (i s3Impl) Delete(ctx context.Context, key string) error {
	return i.s3client.RemoveObject(ctx, i.bucketName, key, minio.RemoveObjectOptions{})
}

func (i s3Impl) URL(ctx context.Context, key string) (string, error) {
	u, err := i.s3client.PresignedGetObject(ctx, i.bucketName, key, presignTTL, nil)
	if err != nil {
		return "", err
	}
	return u.String(), nil
}
