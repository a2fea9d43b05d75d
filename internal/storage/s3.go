package storage

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/YuliaRizki/nailBook/internal/config"
)

// Uploader writes reference images to an S3-compatible bucket and hands back
// the public URL the appointment row will carry.
type Uploader struct {
	client        *s3.Client
	bucket        string
	publicBaseURL string
}

func NewUploader(cfg *config.Config) *Uploader {
	client := s3.New(s3.Options{
		BaseEndpoint: aws.String(cfg.S3Endpoint),
		Region:       cfg.S3Region,
		Credentials:  credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, ""),
		UsePathStyle: true,
	})

	base := cfg.S3PublicBaseURL
	if base == "" {
		base = strings.TrimRight(cfg.S3Endpoint, "/") + "/" + cfg.S3Bucket
	}

	return &Uploader{
		client:        client,
		bucket:        cfg.S3Bucket,
		publicBaseURL: strings.TrimRight(base, "/"),
	}
}

// SaveReference compresses the image where it can (see PrepareImage) and
// uploads it under a millisecond-timestamp name. Returns the public URL.
func (u *Uploader) SaveReference(ctx context.Context, originalName string, data []byte) (string, error) {
	body, ext, contentType := PrepareImage(originalName, data)
	key := ObjectName(time.Now(), ext)

	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", err
	}

	return u.publicBaseURL + "/" + key, nil
}

// ObjectName builds "<unix-millis>.<ext>" storage keys.
func ObjectName(now time.Time, ext string) string {
	ext = strings.TrimPrefix(ext, ".")
	if ext == "" {
		ext = "bin"
	}
	return fmt.Sprintf("%d.%s", now.UnixMilli(), ext)
}

// Ext extracts a lowercase extension from an uploaded filename.
func Ext(name string) string {
	return strings.ToLower(strings.TrimPrefix(path.Ext(name), "."))
}
