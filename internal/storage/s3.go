package storage

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awscfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

var whitespace = regexp.MustCompile(`\s`)

type S3Store struct {
	presigner *s3.PresignClient
	bucket    string
	region    string
}

func NewS3Store(ctx context.Context, region, bucket, endpoint string) (*S3Store, error) {
	cfg, err := awscfg.LoadDefaultConfig(ctx, awscfg.WithRegion(region))
	if err != nil {
		return nil, err
	}
	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			// MinIO and friends
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})
	return &S3Store{presigner: s3.NewPresignClient(client), bucket: bucket, region: region}, nil
}

// PresignPut issues a signed URL authorizing a single PUT of the given
// content type to key, valid for ttl. Nothing is persisted server-side;
// the credential is derived purely from the inputs and the signing key.
func (s *S3Store) PresignPut(ctx context.Context, key, contentType string, ttl time.Duration) (string, error) {
	req, err := s.presigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(ttl))
	if err != nil {
		return "", err
	}
	return req.URL, nil
}

// ObjectURL is the public URL of an uploaded object.
func (s *S3Store) ObjectURL(key string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, url.PathEscape(key))
}

// BuildKey derives the storage key for one upload: a fixed prefix, the
// grouping id correlating all files of one submission, a fresh unique
// token, and the filename with whitespace replaced to keep the key
// URL-safe.
func BuildKey(prefix, groupID, filename string) string {
	return fmt.Sprintf("%s/%s/%s-%s", prefix, groupID, uuid.NewString(), whitespace.ReplaceAllString(filename, "_"))
}
