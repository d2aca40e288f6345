package services

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// Publisher uploads rendered documents to the public blog bucket.
type Publisher struct {
	client     *s3.Client
	bucketName string
	domain     string
}

// PublishResult describes one uploaded document.
type PublishResult struct {
	Key       string `json:"key"`
	PublicURL string `json:"public_url"`
}

// NewPublisher creates a Publisher using the default AWS configuration. The
// bucket name comes from BLOG_BUCKET and the public domain from DOMAIN.
func NewPublisher(ctx context.Context) (*Publisher, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	bucketName := os.Getenv("BLOG_BUCKET")
	if bucketName == "" {
		bucketName = "shoeswiper-blogs"
	}
	domain := os.Getenv("DOMAIN")
	if domain == "" {
		domain = "https://shoeswiper.com"
	}

	return &Publisher{
		client:     s3.NewFromConfig(cfg),
		bucketName: bucketName,
		domain:     domain,
	}, nil
}

// NewPublisherWithClient creates a Publisher around an existing client.
func NewPublisherWithClient(client *s3.Client, bucketName, domain string) *Publisher {
	return &Publisher{client: client, bucketName: bucketName, domain: domain}
}

// Publish uploads one document under the given key with an hour of edge
// caching and public read access.
func (p *Publisher) Publish(ctx context.Context, key string, body []byte, contentType string) (*PublishResult, error) {
	_, err := p.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(p.bucketName),
		Key:          aws.String(key),
		Body:         bytes.NewReader(body),
		ContentType:  aws.String(contentType),
		CacheControl: aws.String("public, max-age=3600"),
		ACL:          s3types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload %s: %w", key, err)
	}

	log.Printf("Successfully uploaded %s (%d bytes, %s)", key, len(body), contentType)
	return &PublishResult{
		Key:       key,
		PublicURL: fmt.Sprintf("%s/%s", p.domain, key),
	}, nil
}
