package services

import (
	"bytes"
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/authors-haven/backend/config"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// ImageUploader stores an image blob and returns its public URL.
type ImageUploader interface {
	Upload(ctx context.Context, key, contentType string, data []byte) (string, error)
}

// S3Uploader uploads article images to an S3 bucket.
type S3Uploader struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

// NewS3Uploader builds an uploader from the environment. Requires
// S3_BUCKET; S3_PUBLIC_URL overrides the default bucket URL.
func NewS3Uploader(ctx context.Context) (*S3Uploader, error) {
	cfg := config.New()

	bucket := config.GetString(cfg, "S3_BUCKET", "")
	if bucket == "" {
		return nil, fmt.Errorf("S3_BUCKET environment variable is required")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	publicURL := config.GetString(cfg, "S3_PUBLIC_URL",
		fmt.Sprintf("https://%s.s3.%s.amazonaws.com", bucket, awsCfg.Region))

	return &S3Uploader{
		client:    s3.NewFromConfig(awsCfg),
		bucket:    bucket,
		publicURL: publicURL,
	}, nil
}

func (u *S3Uploader) Upload(ctx context.Context, key, contentType string, data []byte) (string, error) {
	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &u.bucket,
		Key:         &key,
		Body:        bytes.NewReader(data),
		ContentType: &contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}
	return fmt.Sprintf("%s/%s", u.publicURL, key), nil
}

// UploadImages fans the given blobs out to the object store concurrently and
// returns the stored URLs in input order. One failed upload fails the batch.
func UploadImages(ctx context.Context, uploader ImageUploader, images [][]byte) ([]string, error) {
	if uploader == nil || len(images) == 0 {
		return nil, nil
	}

	urls := make([]string, len(images))
	group, groupCtx := errgroup.WithContext(ctx)
	for i, data := range images {
		i, data := i, data
		group.Go(func() error {
			key := fmt.Sprintf("articles/%s", uuid.NewString())
			url, err := uploader.Upload(groupCtx, key, "image/jpeg", data)
			if err != nil {
				return err
			}
			urls[i] = url
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		log.Error().Err(err).Msg("Failed to upload article images")
		return nil, err
	}
	return urls, nil
}
