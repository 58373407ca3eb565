package filestore_test

import (
	"context"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/stretchr/testify/require"

	"photoGallery/internal/filestore"
)

type fakeS3 struct {
	s3iface.S3API
	objects map[string][]byte
	types   map[string]string
}

func newFakeS3() *fakeS3 {
	return &fakeS3{objects: map[string][]byte{}, types: map[string]string{}}
}

func (f *fakeS3) PutObjectWithContext(_ aws.Context, in *s3.PutObjectInput, _ ...request.Option) (*s3.PutObjectOutput, error) {
	data, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.objects[*in.Bucket+"/"+*in.Key] = data
	f.types[*in.Bucket+"/"+*in.Key] = aws.StringValue(in.ContentType)
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) DeleteObjectWithContext(_ aws.Context, in *s3.DeleteObjectInput, _ ...request.Option) (*s3.DeleteObjectOutput, error) {
	delete(f.objects, *in.Bucket+"/"+*in.Key)
	return &s3.DeleteObjectOutput{}, nil
}

func (f *fakeS3) HeadObjectWithContext(_ aws.Context, in *s3.HeadObjectInput, _ ...request.Option) (*s3.HeadObjectOutput, error) {
	if _, ok := f.objects[*in.Bucket+"/"+*in.Key]; !ok {
		return nil, awserr.New("NotFound", "Not Found", nil)
	}
	return &s3.HeadObjectOutput{}, nil
}

func TestS3SaveRemove(t *testing.T) {
	ctx := context.Background()
	client := newFakeS3()
	store := filestore.NewS3WithClient(client, "photos", "uploads", "https://cdn.example.com/")

	png := []byte("\x89PNG\r\n\x1a\n0000")

	url, err := store.Save(ctx, "1-cat.png", png)
	require.NoError(t, err)
	require.Equal(t, "https://cdn.example.com/uploads/1-cat.png", url)
	require.Equal(t, png, client.objects["photos/uploads/1-cat.png"])
	require.Equal(t, "image/png", client.types["photos/uploads/1-cat.png"])

	ok, err := store.Exists(ctx, url)
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, store.Remove(ctx, url))
	require.Empty(t, client.objects)

	ok, err = store.Exists(ctx, url)
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, store.Remove(ctx, url))
}

func TestS3RejectsForeignURLs(t *testing.T) {
	store := filestore.NewS3WithClient(newFakeS3(), "photos", "uploads", "https://cdn.example.com")

	for _, url := range []string{
		"https://other.example.com/uploads/1.jpg",
		"https://cdn.example.com/private/1.jpg",
		"/uploads/1.jpg",
	} {
		err := store.Remove(context.Background(), url)
		require.ErrorIs(t, err, filestore.ErrInvalidURL, url)
	}
}
