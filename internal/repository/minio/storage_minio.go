package minio

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/njprem/fitcity-offers/internal/repository/ports"
)

func NewClient(endpoint, key, secret string, useSSL bool) (*minio.Client, error) {
	return minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(key, secret, ""),
		Secure: useSSL,
	})
}

// Storage reads and writes feed documents. publicURL, when set, replaces the
// endpoint in returned object URLs.
type Storage struct {
	client    *minio.Client
	publicURL string
}

func NewStorage(client *minio.Client, publicURL string) *Storage {
	return &Storage{client: client, publicURL: strings.TrimRight(publicURL, "/")}
}

func (s *Storage) Upload(ctx context.Context, bucket, objectName, contentType string, reader io.Reader, size int64) (string, error) {
	_, err := s.client.PutObject(ctx, bucket, objectName, reader, size, minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", fmt.Errorf("put %s/%s: %w", bucket, objectName, err)
	}
	base := s.publicURL
	if base == "" {
		base = s.client.EndpointURL().String()
	}
	return base + "/" + bucket + "/" + objectName, nil
}

func (s *Storage) Download(ctx context.Context, bucket, objectName string) ([]byte, error) {
	obj, err := s.client.GetObject(ctx, bucket, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("get %s/%s: %w", bucket, objectName, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, fmt.Errorf("read %s/%s: %w", bucket, objectName, err)
	}
	return data, nil
}

var _ ports.ObjectStorage = (*Storage)(nil)
