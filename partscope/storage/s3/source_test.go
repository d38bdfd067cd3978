package s3

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/partscope/partscope/partscope"
	"github.com/partscope/partscope/partscope/storage"
)

type fakeGetter struct {
	body   string
	err    error
	bucket string
	key    string
}

func (f *fakeGetter) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	f.bucket = aws.ToString(in.Bucket)
	f.key = aws.ToString(in.Key)
	if f.err != nil {
		return nil, f.err
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader(f.body))}, nil
}

func TestSource_Load(t *testing.T) {
	fake := &fakeGetter{body: `[{"did": 5, "partno": "C3M0065090D", "vds": 900, "auto": "Yes"}]`}
	src := New(fake, "parts", "catalog/devices.json")

	assert.Equal(t, storage.BackendS3, src.Backend())
	assert.Equal(t, "s3://parts/catalog/devices.json", src.Name())

	records, err := src.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, partscope.RecordID(5), records[0].ID)
	assert.True(t, records[0].IsAutomotiveQualified())
	assert.Equal(t, "parts", fake.bucket)
	assert.Equal(t, "catalog/devices.json", fake.key)
}

func TestSource_LoadErrors(t *testing.T) {
	_, err := New(&fakeGetter{err: errors.New("access denied")}, "b", "k").Load(context.Background())
	assert.True(t, partscope.IsKind(err, partscope.ErrIO))

	_, err = New(&fakeGetter{body: "not json"}, "b", "k").Load(context.Background())
	assert.True(t, partscope.IsKind(err, partscope.ErrDecode))
}

func TestNewFromConfig_RequiresLocation(t *testing.T) {
	_, err := NewFromConfig(context.Background(), Config{Key: "k"})
	assert.True(t, partscope.IsKind(err, partscope.ErrConfig))

	_, err = NewFromConfig(context.Background(), Config{Bucket: "b"})
	assert.True(t, partscope.IsKind(err, partscope.ErrConfig))
}

func TestSource_LoadWithoutLogger(t *testing.T) {
	src := New(&fakeGetter{body: `[{"did": 1, "partno": "IRF540N"}]`}, "b", "k")
	src.Logger = nil
	records, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, 1)
}
