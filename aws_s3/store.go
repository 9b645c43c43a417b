package aws_s3

import (
	"bytes"
	"context"
	"errors"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/syncstate/syncstate"
)

type bucketStore struct {
	s3Client   *s3.Client
	bucketName string
}

// NewBucketStore returns a Store persisting each field value as an object in
// the given bucket. The bucket must already exist.
func NewBucketStore(s3Client *s3.Client, bucketName string) syncstate.Store {
	return &bucketStore{
		s3Client:   s3Client,
		bucketName: bucketName,
	}
}

// Fetch reads the object named by key; a missing object is a normal absent outcome.
func (b *bucketStore) Fetch(ctx context.Context, key string) (bool, []byte, error) {
	result, err := b.s3Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(b.bucketName),
		Key:    aws.String(key),
	})
	if err != nil {
		var nsk *types.NoSuchKey
		if errors.As(err, &nsk) {
			return false, nil, nil
		}
		return false, nil, err
	}
	defer result.Body.Close()
	ba, err := io.ReadAll(result.Body)
	if err != nil {
		return false, nil, err
	}
	return true, ba, nil
}

// Put writes the value as the object named by key.
func (b *bucketStore) Put(ctx context.Context, key string, value []byte) error {
	_, err := b.s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(b.bucketName),
		Key:    aws.String(key),
		Body:   bytes.NewReader(value),
	})
	return err
}
