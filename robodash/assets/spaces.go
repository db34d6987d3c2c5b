// Package assets resolves the opaque visual references on catalog templates
// to CDN URLs, backed by an S3-compatible Spaces bucket.
package assets

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type SpacesService struct {
	client    *s3.Client
	bucket    string
	region    string
	assetRoot string
}

func NewSpacesService(key, secret, region, bucket, assetRoot string) (*SpacesService, error) {
	resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
		return aws.Endpoint{
			URL: fmt.Sprintf("https://%s.digitaloceanspaces.com", region),
		}, nil
	})

	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithEndpointResolverWithOptions(resolver),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(key, secret, "")),
		config.WithRegion(region),
	)
	if err != nil {
		return nil, fmt.Errorf("unable to load spaces config: %w", err)
	}

	return &SpacesService{
		client:    s3.NewFromConfig(cfg),
		bucket:    bucket,
		region:    region,
		assetRoot: strings.Trim(assetRoot, "/"),
	}, nil
}

// URL maps a catalog visual reference to its public CDN address. References
// that are already absolute pass through unchanged.
func (s *SpacesService) URL(visual string) string {
	if visual == "" {
		return ""
	}
	if strings.HasPrefix(visual, "http://") || strings.HasPrefix(visual, "https://") {
		return visual
	}
	return fmt.Sprintf("https://%s.%s.cdn.digitaloceanspaces.com/%s", s.bucket, s.region, s.key(visual))
}

func (s *SpacesService) Upload(ctx context.Context, visual string, body io.Reader, contentType string) error {
	key := s.key(visual)
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &s.bucket,
		Key:         &key,
		Body:        body,
		ContentType: &contentType,
		ACL:         "public-read",
	})
	if err != nil {
		return fmt.Errorf("failed to upload asset %s: %w", key, err)
	}
	return nil
}

func (s *SpacesService) Delete(ctx context.Context, visual string) error {
	key := s.key(visual)
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: &s.bucket,
		Key:    &key,
	})
	if err != nil {
		return fmt.Errorf("failed to delete asset %s: %w", key, err)
	}
	return nil
}

func (s *SpacesService) Exists(ctx context.Context, visual string) bool {
	key := s.key(visual)
	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: &s.bucket,
		Key:    &key,
	})
	return err == nil
}

func (s *SpacesService) key(visual string) string {
	visual = strings.TrimPrefix(visual, "/")
	if s.assetRoot == "" {
		return visual
	}
	return s.assetRoot + "/" + visual
}
