package photostore

import (
	"context"
	"fmt"
	"io"
	"path"
	"strconv"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awscreds "github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/plateful/restaurant-admin/internal/config"
)

// S3Store keeps photos in a bucket under a restaurants/<id>/ key prefix
// per namespace. Selected with PHOTO_STORAGE=s3.
type S3Store struct {
	client *s3.Client
	bucket string
}

func NewS3Store(cfg *config.Config) *S3Store {
	opts := s3.Options{
		Region: cfg.S3Region,
		Credentials: awscreds.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		),
	}
	if cfg.S3Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.S3Endpoint)
		opts.UsePathStyle = true
	}

	return &S3Store{
		client: s3.New(opts),
		bucket: cfg.S3Bucket,
	}
}

func namespacePrefix(restaurantID uint) string {
	return "restaurants/" + strconv.FormatUint(uint64(restaurantID), 10) + "/"
}

func (s *S3Store) CreateNamespace(restaurantID uint) error {
	// S3 has no directories; an empty marker object makes the
	// namespace visible to listings.
	_, err := s.client.PutObject(context.Background(), &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(namespacePrefix(restaurantID) + ".keep"),
		Body:   strings.NewReader(""),
	})
	return err
}

func (s *S3Store) RemoveNamespace(restaurantID uint) error {
	ctx := context.Background()
	prefix := namespacePrefix(restaurantID)

	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(prefix),
	})

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return err
		}
		if len(page.Contents) == 0 {
			continue
		}

		objects := make([]types.ObjectIdentifier, 0, len(page.Contents))
		for _, obj := range page.Contents {
			objects = append(objects, types.ObjectIdentifier{Key: obj.Key})
		}

		if _, err := s.client.DeleteObjects(ctx, &s3.DeleteObjectsInput{
			Bucket: aws.String(s.bucket),
			Delete: &types.Delete{Objects: objects},
		}); err != nil {
			return err
		}
	}
	return nil
}

func (s *S3Store) Save(restaurantID uint, filename string, r io.Reader) error {
	ext := strings.TrimPrefix(strings.ToLower(path.Ext(filename)), ".")
	contentType, ok := MIMETypes[ext]
	if !ok {
		return fmt.Errorf("file type %q is not allowed", ext)
	}

	_, err := s.client.PutObject(context.Background(), &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(namespacePrefix(restaurantID) + path.Base(filename)),
		Body:        r,
		ContentType: aws.String(contentType),
	})
	return err
}

func (s *S3Store) Open(restaurantID uint, filename string) (io.ReadCloser, error) {
	out, err := s.client.GetObject(context.Background(), &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(namespacePrefix(restaurantID) + path.Base(filename)),
	})
	if err != nil {
		return nil, err
	}
	return out.Body, nil
}
