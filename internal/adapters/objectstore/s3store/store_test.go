package s3store

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	got  *s3.PutObjectInput
	body string
	err  error
}

func (f *fakeClient) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.got = in
	if in.Body != nil {
		b, _ := io.ReadAll(in.Body)
		f.body = string(b)
	}
	if f.err != nil {
		return nil, f.err
	}
	return &s3.PutObjectOutput{}, nil
}

func TestPut(t *testing.T) {
	fc := &fakeClient{}
	store := NewFromClient(fc)

	err := store.Put(context.Background(), "catcollector", "abc.png", strings.NewReader("img"), "image/png")
	require.NoError(t, err)

	require.NotNil(t, fc.got)
	assert.Equal(t, "catcollector", aws.ToString(fc.got.Bucket))
	assert.Equal(t, "abc.png", aws.ToString(fc.got.Key))
	assert.Equal(t, "image/png", aws.ToString(fc.got.ContentType))
	assert.Equal(t, "img", fc.body)
}

func TestPut_NoContentType(t *testing.T) {
	fc := &fakeClient{}
	require.NoError(t, NewFromClient(fc).Put(context.Background(), "b", "k", strings.NewReader("x"), ""))
	assert.Nil(t, fc.got.ContentType)
}

func TestPut_APIError(t *testing.T) {
	apiErr := &smithy.GenericAPIError{Code: "AccessDenied", Message: "denied"}
	store := NewFromClient(&fakeClient{err: apiErr})

	err := store.Put(context.Background(), "b", "k.jpg", strings.NewReader("x"), "image/jpeg")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AccessDenied")
	assert.Contains(t, err.Error(), "b/k.jpg")

	var got smithy.APIError
	assert.True(t, errors.As(err, &got))
}

func TestPut_TransportError(t *testing.T) {
	boom := errors.New("connection reset")
	err := NewFromClient(&fakeClient{err: boom}).Put(context.Background(), "b", "k", strings.NewReader("x"), "")
	assert.ErrorIs(t, err, boom)
}
