package document

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

// S3Client is the subset of the S3 API the loader calls.
type S3Client interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Config configures an S3Loader. Endpoint and ForcePathStyle support
// S3-compatible services such as MinIO.
type S3Config struct {
	Bucket         string `env:"DOCUMENTS_S3_BUCKET"`
	Region         string `env:"DOCUMENTS_S3_REGION"`
	Prefix         string `env:"DOCUMENTS_S3_PREFIX"`
	AccessKeyID    string `env:"DOCUMENTS_S3_ACCESS_KEY_ID"`
	SecretKey      string `env:"DOCUMENTS_S3_SECRET_KEY"`
	Endpoint       string `env:"DOCUMENTS_S3_ENDPOINT"`
	ForcePathStyle bool   `env:"DOCUMENTS_S3_FORCE_PATH_STYLE"`
}

// S3Option configures an S3Loader.
type S3Option func(*S3Loader)

// WithS3Client sets a pre-configured client, skipping AWS config loading.
func WithS3Client(c S3Client) S3Option {
	return func(l *S3Loader) { l.client = c }
}

// WithS3MaxSize limits how many bytes a single document may have.
func WithS3MaxSize(n int64) S3Option {
	return func(l *S3Loader) {
		if n > 0 {
			l.maxSize = n
		}
	}
}

// S3Loader reads each document from the object at Prefix/name.
type S3Loader struct {
	client  S3Client
	bucket  string
	prefix  string
	maxSize int64
}

// NewS3Loader creates the loader. Unless WithS3Client is given, the AWS
// configuration is loaded here, once; objects are fetched only on Load.
func NewS3Loader(ctx context.Context, cfg S3Config, opts ...S3Option) (*S3Loader, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("%w: bucket is required", ErrInvalidConfig)
	}

	l := &S3Loader{bucket: cfg.Bucket, prefix: cfg.Prefix, maxSize: DefaultMaxSize}
	for _, opt := range opts {
		opt(l)
	}
	if l.client != nil {
		return l, nil
	}

	if cfg.Region == "" {
		return nil, fmt.Errorf("%w: region is required", ErrInvalidConfig)
	}
	awsOptions := []func(*config.LoadOptions) error{config.WithRegion(cfg.Region)}
	if cfg.AccessKeyID != "" && cfg.SecretKey != "" {
		awsOptions = append(awsOptions, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretKey, ""),
		))
	}

	awsConfig, err := config.LoadDefaultConfig(ctx, awsOptions...)
	if err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}
	l.client = s3.NewFromConfig(awsConfig, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.ForcePathStyle
	})
	return l, nil
}

func (l *S3Loader) Load(ctx context.Context, name string) (*Document, error) {
	if name == "" || path.IsAbs(name) || !isCleanKey(name) {
		return nil, ErrInvalidName
	}
	key := name
	if l.prefix != "" {
		key = path.Join(l.prefix, name)
	}

	out, err := l.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(l.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if isS3NotFound(err) {
			return nil, ErrNotFound
		}
		return nil, errors.Join(ErrLoadFailed, err)
	}
	defer out.Body.Close()

	content, err := readLimited(out.Body, l.maxSize)
	if err != nil {
		return nil, err
	}
	return &Document{Name: name, Content: content, LoadedAt: time.Now()}, nil
}

// isCleanKey rejects keys that are not in canonical form or climb above the prefix.
func isCleanKey(name string) bool {
	return path.Clean(name) == name && name != "." && name != ".." && !strings.HasPrefix(name, "../")
}

func isS3NotFound(err error) bool {
	var noSuchKey *types.NoSuchKey
	if errors.As(err, &noSuchKey) {
		return true
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NotFound":
			return true
		}
	}
	return false
}
