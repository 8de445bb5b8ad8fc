// Package storage brokers access to the S3-compatible object store: it
// issues short-lived presigned upload URLs and deletes stored binaries,
// singly or in bulk by album prefix.
package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"photofolio/internal/common"
)

// Seams for testing the AWS SDK plumbing.
var (
	loadDefaultAWSConfig = awsconfig.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) presignAPI {
		return s3.NewPresignClient(c)
	}

	timeNow = time.Now
)

// s3API is the subset of *s3.Client the gateway uses.
type s3API interface {
	DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
	DeleteObjects(ctx context.Context, in *s3.DeleteObjectsInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectsOutput, error)
	ListObjectsV2(ctx context.Context, in *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
}

// presignAPI is the subset of *s3.PresignClient the gateway uses.
type presignAPI interface {
	PresignPutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

// Config holds the object-storage settings the gateway needs.
type Config struct {
	Bucket       string
	Region       string
	AccessKey    string
	SecretKey    string
	BaseEndpoint string // optional; set for MinIO or other S3-compatible stores
	GrantTTL     time.Duration
}

// UploadGrant is a time-boxed write authorization for one binary object.
type UploadGrant struct {
	Key       string
	UploadURL string // short-lived presigned PUT URL
	PublicURL string // long-lived public read URL
	ExpiresIn time.Duration
}

// Gateway talks to the object store. Construct once at process start and
// inject into services.
type Gateway struct {
	client       s3API
	presign      presignAPI
	bucket       string
	region       string
	baseEndpoint string
	grantTTL     time.Duration
}

// New builds a Gateway with static credentials and an optional custom
// endpoint.
func New(ctx context.Context, cfg Config) (*Gateway, error) {
	awsCfg, err := loadDefaultAWSConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey, cfg.SecretKey, "",
		)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrStorageProvider, err)
	}

	client := newS3ClientFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.BaseEndpoint)
			o.UsePathStyle = true
		}
	})

	ttl := cfg.GrantTTL
	if ttl <= 0 {
		ttl = 60 * time.Second
	}

	return &Gateway{
		client:       client,
		presign:      newS3PresignClient(client),
		bucket:       cfg.Bucket,
		region:       cfg.Region,
		baseEndpoint: cfg.BaseEndpoint,
		grantTTL:     ttl,
	}, nil
}

// CreateUploadGrant issues a presigned PUT URL for one file in an album. The
// object key combines the album id, the current timestamp, and the sanitized
// base name, giving every upload a globally unique key under the album's
// prefix.
func (g *Gateway) CreateUploadGrant(ctx context.Context, fileBaseName, contentType, albumID string) (*UploadGrant, error) {
	key := ObjectKey(albumID, timeNow().UnixMilli(), fileBaseName)

	req, err := g.presign.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(g.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(g.grantTTL))
	if err != nil {
		return nil, fmt.Errorf("%w: presign put: %v", common.ErrStorageProvider, err)
	}

	return &UploadGrant{
		Key:       key,
		UploadURL: req.URL,
		PublicURL: g.PublicURL(key),
		ExpiresIn: g.grantTTL,
	}, nil
}

// DeleteObject removes a single stored binary by key.
func (g *Gateway) DeleteObject(ctx context.Context, key string) error {
	_, err := g.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(g.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("%w: delete %q: %v", common.ErrStorageProvider, key, err)
	}
	return nil
}

// DeleteObjectByURL parses the object key out of a public URL and deletes
// the binary.
func (g *Gateway) DeleteObjectByURL(ctx context.Context, publicURL string) error {
	key, err := g.KeyFromURL(publicURL)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrStorageProvider, err)
	}
	return g.DeleteObject(ctx, key)
}

// DeleteAlbumObjects lists everything under the "{albumID}-" prefix and bulk
// deletes it. An empty listing is a no-op success.
func (g *Gateway) DeleteAlbumObjects(ctx context.Context, albumID string) error {
	prefix := AlbumPrefix(albumID)

	var continuationToken *string
	for {
		out, err := g.client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
			Bucket:            aws.String(g.bucket),
			Prefix:            aws.String(prefix),
			ContinuationToken: continuationToken,
		})
		if err != nil {
			return fmt.Errorf("%w: list prefix %q: %v", common.ErrStorageProvider, prefix, err)
		}

		if len(out.Contents) > 0 {
			ids := make([]types.ObjectIdentifier, 0, len(out.Contents))
			for _, obj := range out.Contents {
				ids = append(ids, types.ObjectIdentifier{Key: obj.Key})
			}
			del, err := g.client.DeleteObjects(ctx, &s3.DeleteObjectsInput{
				Bucket: aws.String(g.bucket),
				Delete: &types.Delete{Objects: ids, Quiet: aws.Bool(true)},
			})
			if err != nil {
				return fmt.Errorf("%w: bulk delete prefix %q: %v", common.ErrStorageProvider, prefix, err)
			}
			if len(del.Errors) > 0 {
				first := del.Errors[0]
				return fmt.Errorf("%w: bulk delete prefix %q: %d objects failed, first: %s",
					common.ErrStorageProvider, prefix, len(del.Errors), aws.ToString(first.Message))
			}
		}

		if out.IsTruncated == nil || !*out.IsTruncated {
			return nil
		}
		continuationToken = out.NextContinuationToken
	}
}
