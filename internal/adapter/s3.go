package adapter

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/MKhiriev/resume-gate/internal/config"
	"github.com/MKhiriev/resume-gate/internal/logger"
	"github.com/MKhiriev/resume-gate/models"
)

type s3LinkIssuer struct {
	client    *s3.Client
	presigner *s3.PresignClient

	// checkObject enables a HeadObject round trip before presigning.
	// Presigning is an offline operation, so without it a missing object
	// is only noticed by whoever follows the link.
	checkObject bool

	logger *logger.Logger
}

// NewS3LinkIssuer constructs an S3 implementation of [LinkIssuer].
// Credentials and, unless cfg.Region is set, the region are resolved through
// the default AWS chain (environment, shared config, instance metadata).
// cfg.Endpoint and cfg.UsePathStyle target S3-compatible storage such as
// MinIO.
//
// The SDK retryer is disabled: every attempt maps to one audit record.
func NewS3LinkIssuer(ctx context.Context, cfg config.Resume, log *logger.Logger) (LinkIssuer, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRetryer(func() aws.Retryer { return aws.NopRetryer{} }),
	}
	if cfg.Region != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.Region))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("error loading AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	})

	log.Info().
		Str("region", awsCfg.Region).
		Str("endpoint", cfg.Endpoint).
		Bool("check_object", !cfg.SkipObjectCheck).
		Msg("S3 link issuer configured")

	return newS3LinkIssuer(client, !cfg.SkipObjectCheck, log), nil
}

func newS3LinkIssuer(client *s3.Client, checkObject bool, log *logger.Logger) *s3LinkIssuer {
	return &s3LinkIssuer{
		client:      client,
		presigner:   s3.NewPresignClient(client),
		checkObject: checkObject,
		logger:      log,
	}
}

// IssueLink implements [LinkIssuer] with a SigV4 presigned GetObject URL.
func (s *s3LinkIssuer) IssueLink(ctx context.Context, bucket, key string, ttl time.Duration) (models.DownloadLink, error) {
	if bucket == "" || key == "" || ttl < time.Second {
		return models.DownloadLink{}, &ProviderError{
			Code: CodeUnknown,
			Err:  fmt.Errorf("%w: bucket=%q key=%q ttl=%s", ErrInvalidLinkParams, bucket, key, ttl),
		}
	}

	if s.checkObject {
		_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
			Bucket: aws.String(bucket),
			Key:    aws.String(key),
		})
		if err != nil {
			return models.DownloadLink{}, mapS3Error(err)
		}
	}

	req, err := s.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(ttl))
	if err != nil {
		return models.DownloadLink{}, mapS3Error(err)
	}

	return models.DownloadLink{
		URL:       req.URL,
		ExpiresIn: int(ttl / time.Second),
	}, nil
}
