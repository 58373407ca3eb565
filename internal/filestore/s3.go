package filestore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"

	"photoGallery/internal/config"
)

// S3 stores files as objects in one bucket. URLs are the object keys joined
// to the bucket's public base URL.
type S3 struct {
	client    s3iface.S3API
	bucket    string
	prefix    string
	publicURL string
}

func NewS3(cfg *config.Storage) (*S3, error) {
	awsCfg := &aws.Config{
		Region:           aws.String(cfg.S3.Region),
		S3ForcePathStyle: aws.Bool(cfg.S3.PathStyle),
	}
	if cfg.S3.Endpoint != "" {
		awsCfg.Endpoint = aws.String(cfg.S3.Endpoint)
	}
	if cfg.S3.AccessKey != "" {
		awsCfg.Credentials = credentials.NewStaticCredentials(cfg.S3.AccessKey, cfg.S3.SecretKey, "")
	}

	sess, err := session.NewSession(awsCfg)
	if err != nil {
		return nil, fmt.Errorf("filestore.NewS3: %w", err)
	}

	publicURL := cfg.S3.PublicURL
	if publicURL == "" {
		publicURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.S3.Bucket, cfg.S3.Region)
	}

	return NewS3WithClient(s3.New(sess), cfg.S3.Bucket, cfg.URLPrefix, publicURL), nil
}

func NewS3WithClient(client s3iface.S3API, bucket, prefix, publicURL string) *S3 {
	return &S3{
		client:    client,
		bucket:    bucket,
		prefix:    strings.Trim(prefix, "/"),
		publicURL: strings.TrimRight(publicURL, "/"),
	}
}

func (s *S3) key(name string) string {
	return path.Join(s.prefix, name)
}

func (s *S3) keyFromURL(url string) (string, error) {
	key, ok := strings.CutPrefix(url, s.publicURL+"/")
	if !ok || key == "" || (s.prefix != "" && !strings.HasPrefix(key, s.prefix+"/")) {
		return "", fmt.Errorf("%w: %s", ErrInvalidURL, url)
	}

	return key, nil
}

func (s *S3) Save(ctx context.Context, name string, data []byte) (string, error) {
	const op = "filestore.S3.Save"

	key := s.key(name)

	_, err := s.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(http.DetectContentType(data)),
	})
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return s.publicURL + "/" + key, nil
}

// Remove deletes the object. S3 deletes are idempotent, so a missing object
// is not reported.
func (s *S3) Remove(ctx context.Context, url string) error {
	const op = "filestore.S3.Remove"

	key, err := s.keyFromURL(url)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	_, err = s.client.DeleteObjectWithContext(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *S3) Exists(ctx context.Context, url string) (bool, error) {
	const op = "filestore.S3.Exists"

	key, err := s.keyFromURL(url)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	_, err = s.client.HeadObjectWithContext(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var aerr awserr.Error
		if errors.As(err, &aerr) && (aerr.Code() == "NotFound" || aerr.Code() == s3.ErrCodeNoSuchKey) {
			return false, nil
		}
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return true, nil
}
