package report

import "time"

const (
	FilePermissions = 0o644
	ContentTypeJSON = "application/json"

	DefaultS3Region    = "us-east-1"
	DefaultS3KeyPrefix = "simulations/"
	S3KeyTimeFormat    = "20060102T150405Z"
	S3KeyFormat        = "%ssimulation-%s-seed%d.json"

	DefaultUploadTimeout = 30 * time.Second
)

const (
	ErrMsgMarshalBatchFmt  = "failed to marshal simulation batch: %w"
	ErrMsgWriteFileFmt     = "failed to write report %s: %w"
	ErrMsgBucketRequired   = "s3 bucket required"
	ErrMsgLoadAWSConfigFmt = "failed to load aws config: %w"
	ErrMsgUploadFmt        = "failed to upload report to s3://%s/%s: %w"
)

const (
	LogMsgReportWritten  = "Simulation report written"
	LogMsgReportUploaded = "Simulation report uploaded"
)
