package services

import (
	"context"
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/ianmerrill10/shoeswipermainproject2/internal/models"
)

// publishedIndex is the GSI keyed on category with published_at as the sort
// key, so a descending query returns newest posts first.
const publishedIndex = "category-published_at-index"

// PostStore provides read and write access to the blog posts table.
type PostStore struct {
	client    *dynamodb.Client
	tableName string
}

// NewPostStore creates a PostStore using the default AWS configuration. The
// table name comes from BLOG_POSTS_TABLE.
func NewPostStore(ctx context.Context) (*PostStore, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	tableName := os.Getenv("BLOG_POSTS_TABLE")
	if tableName == "" {
		tableName = "shoeswiper-blog-posts"
	}

	return &PostStore{
		client:    dynamodb.NewFromConfig(cfg),
		tableName: tableName,
	}, nil
}

// NewPostStoreWithClient creates a PostStore around an existing client.
func NewPostStoreWithClient(client *dynamodb.Client, tableName string) *PostStore {
	return &PostStore{client: client, tableName: tableName}
}

// FetchPosts returns up to limit published posts for a category, newest
// first. It queries the published_at GSI and pages through results; if the
// index is missing on an older table it falls back to a filtered scan.
func (s *PostStore) FetchPosts(ctx context.Context, category string, limit int) ([]models.PostRecord, error) {
	var posts []models.PostRecord
	var startKey map[string]types.AttributeValue

	for len(posts) < limit {
		remaining := int32(limit - len(posts))

		result, err := s.client.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(s.tableName),
			IndexName:              aws.String(publishedIndex),
			KeyConditionExpression: aws.String("category = :cat"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":cat": &types.AttributeValueMemberS{Value: category},
			},
			ScanIndexForward:  aws.Bool(false),
			Limit:             aws.Int32(remaining),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			log.Printf("Query on %s failed for category %s, falling back to scan: %v", publishedIndex, category, err)
			return s.scanPosts(ctx, category, limit)
		}

		var page []models.PostRecord
		if err := attributevalue.UnmarshalListOfMaps(result.Items, &page); err != nil {
			return nil, fmt.Errorf("failed to unmarshal posts: %w", err)
		}
		posts = append(posts, page...)

		if result.LastEvaluatedKey == nil {
			break
		}
		startKey = result.LastEvaluatedKey
	}

	if len(posts) > limit {
		posts = posts[:limit]
	}
	return posts, nil
}

// scanPosts is the fallback when the GSI is unavailable: a filtered scan for
// published posts in the category, sorted by published_at descending.
func (s *PostStore) scanPosts(ctx context.Context, category string, limit int) ([]models.PostRecord, error) {
	var posts []models.PostRecord
	var startKey map[string]types.AttributeValue

	for {
		result, err := s.client.Scan(ctx, &dynamodb.ScanInput{
			TableName:        aws.String(s.tableName),
			FilterExpression: aws.String("category = :cat AND #status = :published"),
			ExpressionAttributeNames: map[string]string{
				"#status": "status",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":cat":       &types.AttributeValueMemberS{Value: category},
				":published": &types.AttributeValueMemberS{Value: "published"},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to scan posts for category %s: %w", category, err)
		}

		var page []models.PostRecord
		if err := attributevalue.UnmarshalListOfMaps(result.Items, &page); err != nil {
			return nil, fmt.Errorf("failed to unmarshal scanned posts: %w", err)
		}
		posts = append(posts, page...)

		if result.LastEvaluatedKey == nil {
			break
		}
		startKey = result.LastEvaluatedKey
	}

	// published_at is stored as an ISO-8601 string, so byte order is time
	// order.
	sort.Slice(posts, func(i, j int) bool {
		return posts[i].PublishedAt > posts[j].PublishedAt
	})

	if len(posts) > limit {
		posts = posts[:limit]
	}
	return posts, nil
}

// GetPost retrieves one post by its id. It returns nil when no such post
// exists.
func (s *PostStore) GetPost(ctx context.Context, id string) (*models.PostRecord, error) {
	result, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get post %s: %w", id, err)
	}

	if result.Item == nil {
		return nil, nil
	}

	var post models.PostRecord
	if err := attributevalue.UnmarshalMap(result.Item, &post); err != nil {
		return nil, fmt.Errorf("failed to unmarshal post %s: %w", id, err)
	}
	return &post, nil
}

// SavePost writes a post record, replacing any existing row with the same id.
func (s *PostStore) SavePost(ctx context.Context, post *models.PostRecord) error {
	item, err := attributevalue.MarshalMap(post)
	if err != nil {
		return fmt.Errorf("failed to marshal post %s: %w", post.ID, err)
	}

	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("failed to save post %s: %w", post.ID, err)
	}
	return nil
}
