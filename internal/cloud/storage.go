package cloud

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3DocumentStore keeps uploaded medical documents in one bucket, keyed by
// the record storage key.
type S3DocumentStore struct {
	client *s3.Client
	bucket string
}

func (client *Client) NewS3DocumentStore(bucket string) *S3DocumentStore {
	return &S3DocumentStore{client: client.s3, bucket: bucket}
}

func (store *S3DocumentStore) Put(ctx context.Context, key string, contentType string, body io.Reader, size int64) error {
	input := &s3.PutObjectInput{
		Bucket:        aws.String(store.bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentLength: aws.Int64(size),
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}
	if _, err := store.client.PutObject(ctx, input); err != nil {
		return fmt.Errorf("put s3 object %s: %w", key, err)
	}
	return nil
}

func (store *S3DocumentStore) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	output, err := store.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(store.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("get s3 object %s: %w", key, err)
	}
	return output.Body, nil
}
