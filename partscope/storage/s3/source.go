package s3

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"

	"github.com/partscope/partscope/partscope"
	"github.com/partscope/partscope/partscope/storage"
)

// ObjectGetter is the subset of *s3.Client the source needs.
type ObjectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// Config holds construction parameters for NewFromConfig.
type Config struct {
	Region    string
	Bucket    string
	Key       string
	Endpoint  string // optional, e.g. MinIO
	PathStyle bool
}

// Source reads a devices.json object from an S3-compatible bucket.
type Source struct {
	client ObjectGetter
	bucket string
	key    string
	Logger *zap.Logger
}

func New(client ObjectGetter, bucket, key string) *Source {
	return &Source{client: client, bucket: bucket, key: key, Logger: zap.NewNop()}
}

// NewFromConfig builds a client from the default AWS credential chain.
func NewFromConfig(ctx context.Context, cfg Config) (*Source, error) {
	if cfg.Bucket == "" {
		return nil, partscope.ConfigError("s3_bucket", "s3 bucket required")
	}
	if cfg.Key == "" {
		return nil, partscope.ConfigError("s3_key", "s3 object key required")
	}
	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}
	awsCfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, partscope.Wrap(partscope.ErrConfig, "load aws config", err)
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.PathStyle {
			o.UsePathStyle = true
		}
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})
	return New(client, cfg.Bucket, cfg.Key), nil
}

func (s *Source) Backend() storage.Backend { return storage.BackendS3 }

func (s *Source) Name() string { return fmt.Sprintf("s3://%s/%s", s.bucket, s.key) }

func (s *Source) Load(ctx context.Context) ([]partscope.Record, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{Bucket: &s.bucket, Key: &s.key})
	if err != nil {
		return nil, partscope.Wrap(partscope.ErrIO, "get catalog object", err)
	}
	defer out.Body.Close()

	records, skipped, err := storage.DecodeRecords(out.Body)
	if err != nil {
		return nil, err
	}
	s.logger().Debug("catalog loaded",
		zap.String("object", s.Name()),
		zap.Int("records", len(records)),
		zap.Int("skipped", skipped))
	return records, nil
}

func (s *Source) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}
