package storage

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"

	"fitsync/fitness-tracker/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsCfg "github.com/aws/aws-sdk-go-v2/config" // Alias config to avoid clash
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
)

// s3Store implements Store against an S3-compatible bucket, one object per
// snapshot key. Useful when the tracker should survive the host machine.
type s3Store struct {
	client *s3.Client
	bucket string
	prefix string
}

// NewS3Store creates a new S3-backed snapshot store.
func NewS3Store(cfg config.S3Config) (Store, error) {
	// Custom resolver for S3-compatible endpoints (like MinIO, DigitalOcean Spaces)
	customResolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
		if cfg.Endpoint != "" {
			return aws.Endpoint{
				PartitionID:   "aws",
				URL:           cfg.Endpoint,
				SigningRegion: cfg.Region,
			}, nil
		}
		// Fall back to default AWS endpoint resolution.
		return aws.Endpoint{}, &aws.EndpointNotFoundError{}
	})

	awsSDKConfig, err := awsCfg.LoadDefaultConfig(context.TODO(),
		awsCfg.WithRegion(cfg.Region),
		awsCfg.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")),
		awsCfg.WithEndpointResolverWithOptions(customResolver),
	)
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(awsSDKConfig, func(o *s3.Options) {
		o.UsePathStyle = true // required by most S3-compatible services
	})

	slog.Info("s3 snapshot store initialized", "endpoint", cfg.Endpoint, "bucket", cfg.BucketName)

	return &s3Store{
		client: client,
		bucket: cfg.BucketName,
		prefix: cfg.KeyPrefix,
	}, nil
}

func (s *s3Store) objectKey(key string) string {
	return s.prefix + key + ".json"
}

func (s *s3Store) Save(ctx context.Context, key string, value []byte) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(s.objectKey(key)),
		Body:        bytes.NewReader(value),
		ContentType: aws.String("application/json"),
	})
	return err
}

func (s *s3Store) Load(ctx context.Context, key string) ([]byte, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.objectKey(key)),
	})
	if err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) && (apiErr.ErrorCode() == "NoSuchKey" || apiErr.ErrorCode() == "NotFound") {
			return nil, ErrNotFound
		}
		return nil, err
	}
	defer out.Body.Close()
	return io.ReadAll(out.Body)
}
