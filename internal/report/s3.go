package report

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/osse101/AquaponicsSim_Go/internal/logger"
	"github.com/osse101/AquaponicsSim_Go/internal/simulation"
)

// S3Config locates the bucket reports are uploaded to. Credentials fall
// back to the default AWS chain when the static keys are empty.
type S3Config struct {
	Bucket          string
	Region          string
	Endpoint        string // optional, for MinIO or other S3-compatible stores
	Prefix          string
	AccessKeyID     string
	SecretAccessKey string
	PathStyle       bool
}

// S3Exporter uploads the batch JSON as one object per run
type S3Exporter struct {
	client *s3.Client
	bucket string
	prefix string
}

// NewS3Exporter builds an S3 client from cfg. Extra option functions are
// applied last so callers can swap the HTTP client.
func NewS3Exporter(ctx context.Context, cfg S3Config, optFns ...func(*s3.Options)) (*S3Exporter, error) {
	if cfg.Bucket == "" {
		return nil, errors.New(ErrMsgBucketRequired)
	}
	region := cfg.Region
	if region == "" {
		region = DefaultS3Region
	}
	loadOpts := []func(*config.LoadOptions) error{config.WithRegion(region)}
	if cfg.AccessKeyID != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}
	awsCfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgLoadAWSConfigFmt, err)
	}

	opts := append([]func(*s3.Options){func(o *s3.Options) {
		o.UsePathStyle = cfg.PathStyle
		o.RequestChecksumCalculation = aws.RequestChecksumCalculationWhenRequired
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	}}, optFns...)

	prefix := cfg.Prefix
	if prefix == "" {
		prefix = DefaultS3KeyPrefix
	}
	return &S3Exporter{
		client: s3.NewFromConfig(awsCfg, opts...),
		bucket: cfg.Bucket,
		prefix: prefix,
	}, nil
}

// Key is the object key a batch is stored under
func (e *S3Exporter) Key(batch *simulation.Batch) string {
	return fmt.Sprintf(S3KeyFormat, e.prefix, batch.Timestamp.UTC().Format(S3KeyTimeFormat), batch.Config.Seed)
}

// Export implements Exporter
func (e *S3Exporter) Export(ctx context.Context, batch *simulation.Batch) error {
	data, err := Marshal(batch)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, DefaultUploadTimeout)
	defer cancel()

	key := e.Key(batch)
	_, err = e.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(e.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentType:   aws.String(ContentTypeJSON),
		ContentLength: aws.Int64(int64(len(data))),
		Metadata: map[string]string{
			"total-games": fmt.Sprintf("%d", batch.TotalGames),
			"created-at":  batch.Timestamp.UTC().Format(time.RFC3339),
		},
	})
	if err != nil {
		return fmt.Errorf(ErrMsgUploadFmt, e.bucket, key, err)
	}
	logger.FromContext(ctx).Info(LogMsgReportUploaded, "bucket", e.bucket, "key", key, "bytes", len(data))
	return nil
}
