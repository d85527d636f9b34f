package savedata

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmitrijs2005/savebank/internal/store"
)

var (
	loadDefaultAWSConfig  = config.LoadDefaultConfig
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}
)

const objectSuffix = ".json"

// S3API is the subset of *s3.Client used by S3Repository.
type S3API interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	s3.ListObjectsV2APIClient
}

// S3Options are the connection settings of an S3-compatible endpoint
// (MinIO in development).
type S3Options struct {
	Region       string
	AccessKey    string
	SecretKey    string
	BaseEndpoint string
}

// NewS3Client builds an S3 client with static credentials and path-style
// addressing against opts.BaseEndpoint.
func NewS3Client(ctx context.Context, opts S3Options) (*s3.Client, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(opts.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			opts.AccessKey,
			opts.SecretKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		if opts.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(opts.BaseEndpoint)
		}
		o.UsePathStyle = true
	})
	return client, nil
}

// S3Repository keeps every child as its own object <path>/<key>.json
// holding the JSON-encoded fields.
type S3Repository struct {
	client S3API
	bucket string
	newKey func() (string, error)
}

func NewS3Repository(client S3API, bucket string) *S3Repository {
	return &S3Repository{client: client, bucket: bucket, newKey: store.NewKey}
}

func objectKey(path, key string) string {
	return strings.Trim(path, "/") + "/" + key + objectSuffix
}

func (r *S3Repository) Push(ctx context.Context, path string, fields store.Fields) (string, error) {
	if err := store.ValidatePath(path); err != nil {
		return "", err
	}
	if err := store.ValidateFields(fields); err != nil {
		return "", err
	}

	b, err := encodeFields(fields)
	if err != nil {
		return "", err
	}

	key, err := r.newKey()
	if err != nil {
		return "", fmt.Errorf("key generation: %w", err)
	}

	_, err = r.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(r.bucket),
		Key:         aws.String(objectKey(path, key)),
		Body:        bytes.NewReader(b),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return "", fmt.Errorf("put object: %w", err)
	}
	return key, nil
}

// Get lists the objects directly under q.Path and fetches each of them.
// Objects in nested paths belong to other collections and are skipped.
func (r *S3Repository) Get(ctx context.Context, q store.Query) (*store.Snapshot, error) {
	if err := store.ValidatePath(q.Path); err != nil {
		return nil, err
	}
	prefix := strings.Trim(q.Path, "/") + "/"

	p := s3.NewListObjectsV2Paginator(r.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(r.bucket),
		Prefix: aws.String(prefix),
	})

	var children []store.Child
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("list objects: %w", err)
		}
		for _, obj := range page.Contents {
			name := strings.TrimPrefix(aws.ToString(obj.Key), prefix)
			if strings.Contains(name, "/") || !strings.HasSuffix(name, objectSuffix) {
				continue
			}
			key := strings.TrimSuffix(name, objectSuffix)

			fields, err := r.fetch(ctx, aws.ToString(obj.Key))
			if err != nil {
				return nil, fmt.Errorf("child %s: %w", key, err)
			}
			children = append(children, store.Child{Key: key, Value: fields})
		}
	}
	return store.NewSnapshot(q, children), nil
}

func (r *S3Repository) fetch(ctx context.Context, objKey string) (store.Fields, error) {
	out, err := r.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(objKey),
	})
	if err != nil {
		return nil, fmt.Errorf("get object: %w", err)
	}
	defer out.Body.Close()

	b, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("read object: %w", err)
	}
	return decodeFields(b)
}
