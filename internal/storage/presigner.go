package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Presigner mints short-lived capability URLs for direct object access. It
// never reads or writes object bytes itself, so any metadata recorded next to
// an upload URL is advisory until the client actually uploads.
type Presigner interface {
	PresignUpload(ctx context.Context, key, contentType string) (string, error)
	PresignDownload(ctx context.Context, key string) (string, error)
}

// DefaultExpiry is the presigned URL lifetime used when none is configured.
const DefaultExpiry = time.Hour

type s3Presigner struct {
	presign *s3.PresignClient
	bucket  string
	expiry  time.Duration
}

// NewS3Presigner creates a Presigner over the given S3 client. A zero expiry
// falls back to DefaultExpiry.
func NewS3Presigner(client *s3.Client, bucket string, expiry time.Duration) Presigner {
	if expiry <= 0 {
		expiry = DefaultExpiry
	}
	return &s3Presigner{
		presign: s3.NewPresignClient(client),
		bucket:  bucket,
		expiry:  expiry,
	}
}

// PresignUpload returns a URL the client can PUT raw bytes to. The content
// type is baked into the signature, so the client must send it verbatim.
func (p *s3Presigner) PresignUpload(ctx context.Context, key, contentType string) (string, error) {
	resp, err := p.presign.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(p.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(p.expiry))
	if err != nil {
		return "", fmt.Errorf("presigning upload for %s: %w", key, err)
	}
	return resp.URL, nil
}

// PresignDownload returns a URL the client can GET the object bytes from.
func (p *s3Presigner) PresignDownload(ctx context.Context, key string) (string, error) {
	resp, err := p.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(p.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(p.expiry))
	if err != nil {
		return "", fmt.Errorf("presigning download for %s: %w", key, err)
	}
	return resp.URL, nil
}
