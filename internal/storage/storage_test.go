package storage

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gyccsite/internal/config"
)

func testConfig(endpoint string) config.StorageConfig {
	return config.StorageConfig{
		Endpoint:  endpoint,
		Port:      "443",
		UseSSL:    true,
		AccessKey: "access",
		SecretKey: "secret",
		Bucket:    "zeabur",
		Region:    "us-east-1",
	}
}

func TestValidate(t *testing.T) {
	cfg := testConfig("objects.example.org")
	assert.NoError(t, validate(cfg))

	noEndpoint := cfg
	noEndpoint.Endpoint = ""
	assert.EqualError(t, validate(noEndpoint), "storage endpoint is required")

	noCreds := cfg
	noCreds.SecretKey = ""
	assert.EqualError(t, validate(noCreds), "storage credentials are required")

	noBucket := cfg
	noBucket.Bucket = ""
	assert.EqualError(t, validate(noBucket), "storage bucket is required")
}

func TestNew_UnsupportedDriver(t *testing.T) {
	cfg := testConfig("objects.example.org")
	cfg.Driver = "gcs"
	_, err := New(context.Background(), cfg)
	assert.EqualError(t, err, `unsupported storage driver "gcs"`)
}

func TestMinio_PresignGet(t *testing.T) {
	ms, err := NewMinIO(testConfig("objects.example.org"))
	require.NoError(t, err)

	raw, err := ms.PresignGet(context.Background(), "gycc-2023/1.jpg", time.Hour)
	require.NoError(t, err)

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "https", u.Scheme)
	assert.Equal(t, "objects.example.org", u.Host)
	assert.Equal(t, "/zeabur/gycc-2023/1.jpg", u.Path)
	assert.Equal(t, "3600", u.Query().Get("X-Amz-Expires"))
	assert.NotEmpty(t, u.Query().Get("X-Amz-Signature"))
	assert.Equal(t, "zeabur", ms.Bucket())
	assert.Equal(t, "https://objects.example.org", ms.Endpoint())
}

func TestS3_PresignGet(t *testing.T) {
	st, err := NewS3(context.Background(), testConfig("objects.example.org"))
	require.NoError(t, err)

	raw, err := st.PresignGet(context.Background(), "htdocs-full/images/new/a.png", 15*time.Minute)
	require.NoError(t, err)

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "objects.example.org", u.Host)
	assert.Equal(t, "/zeabur/htdocs-full/images/new/a.png", u.Path)
	assert.Equal(t, "900", u.Query().Get("X-Amz-Expires"))
}

const listPageXML = `<?xml version="1.0" encoding="UTF-8"?>
<ListBucketResult xmlns="http://s3.amazonaws.com/doc/2006-03-01/">
  <Name>zeabur</Name>
  <Prefix>gycc-2023/</Prefix>
  <KeyCount>1</KeyCount>
  <MaxKeys>1</MaxKeys>
  <IsTruncated>%t</IsTruncated>
  %s
  <Contents>
    <Key>%s</Key>
    <ETag>&quot;etag-%d&quot;</ETag>
    <Size>%d</Size>
    <LastModified>2023-08-01T10:00:00.000Z</LastModified>
  </Contents>
</ListBucketResult>`

func TestS3_ListPage_FollowsContinuationToken(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		assert.Equal(t, "/zeabur", strings.TrimSuffix(r.URL.Path, "/"))
		assert.Equal(t, "2", r.URL.Query().Get("list-type"))
		assert.Equal(t, "gycc-2023/", r.URL.Query().Get("prefix"))

		w.Header().Set("Content-Type", "application/xml")
		switch r.URL.Query().Get("continuation-token") {
		case "":
			fmt.Fprintf(w, listPageXML, true, "<NextContinuationToken>page-2</NextContinuationToken>", "gycc-2023/1.jpg", 1, 100)
		case "page-2":
			fmt.Fprintf(w, listPageXML, false, "", "gycc-2023/2.jpg", 2, 200)
		default:
			w.WriteHeader(http.StatusBadRequest)
		}
	}))
	defer srv.Close()

	u, _ := url.Parse(srv.URL)
	cfg := testConfig(u.Hostname())
	cfg.UseSSL = false
	cfg.Port = u.Port()

	st, err := NewS3(context.Background(), cfg)
	require.NoError(t, err)

	first, err := st.ListPage(context.Background(), ListPageInput{Prefix: "gycc-2023/", MaxKeys: 1})
	require.NoError(t, err)
	require.Len(t, first.Objects, 1)
	assert.Equal(t, "gycc-2023/1.jpg", first.Objects[0].Key)
	assert.Equal(t, `"etag-1"`, first.Objects[0].ETag)
	assert.Equal(t, int64(100), first.Objects[0].Size)
	assert.Equal(t, "page-2", first.NextContinuationToken)

	second, err := st.ListPage(context.Background(), ListPageInput{Prefix: "gycc-2023/", ContinuationToken: first.NextContinuationToken, MaxKeys: 1})
	require.NoError(t, err)
	require.Len(t, second.Objects, 1)
	assert.Equal(t, "gycc-2023/2.jpg", second.Objects[0].Key)
	assert.Empty(t, second.NextContinuationToken)

	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestS3_ListPage_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/xml")
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`<?xml version="1.0" encoding="UTF-8"?><Error><Code>InvalidAccessKeyId</Code><Message>bad key</Message></Error>`))
	}))
	defer srv.Close()

	u, _ := url.Parse(srv.URL)
	cfg := testConfig(u.Hostname())
	cfg.UseSSL = false
	cfg.Port = u.Port()

	st, err := NewS3(context.Background(), cfg)
	require.NoError(t, err)

	_, err = st.ListPage(context.Background(), ListPageInput{Prefix: "x/"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "s3 list")
}

func bucketXML(truncated bool, keys ...string) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<?xml version="1.0" encoding="UTF-8"?>
<ListBucketResult xmlns="http://s3.amazonaws.com/doc/2006-03-01/">
  <Name>zeabur</Name>
  <KeyCount>%d</KeyCount>
  <IsTruncated>%t</IsTruncated>`, len(keys), truncated)
	if truncated {
		b.WriteString("<NextContinuationToken>more</NextContinuationToken>")
	}
	for i, k := range keys {
		fmt.Fprintf(&b, `<Contents><Key>%s</Key><ETag>&quot;etag-%d&quot;</ETag><Size>%d</Size><LastModified>2023-08-01T10:00:00.000Z</LastModified></Contents>`, k, i, 10*(i+1))
	}
	b.WriteString("</ListBucketResult>")
	return b.String()
}

func localMinIO(t *testing.T, h http.HandlerFunc) Storage {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	u, _ := url.Parse(srv.URL)
	cfg := testConfig(u.Hostname())
	cfg.UseSSL = false
	cfg.Port = u.Port()

	st, err := NewMinIO(cfg)
	require.NoError(t, err)
	return st
}

func TestMinio_ListPage_PagesByStartAfter(t *testing.T) {
	st := localMinIO(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "2", q.Get("list-type"))
		assert.Equal(t, "gycc-2023/", q.Get("prefix"))
		assert.Equal(t, "2", q.Get("max-keys"))

		w.Header().Set("Content-Type", "application/xml")
		switch q.Get("start-after") {
		case "":
			_, _ = w.Write([]byte(bucketXML(true, "gycc-2023/1.jpg", "gycc-2023/2.jpg")))
		case "gycc-2023/2.jpg":
			_, _ = w.Write([]byte(bucketXML(false, "gycc-2023/10.jpg")))
		default:
			w.WriteHeader(http.StatusBadRequest)
		}
	})
	ctx := context.Background()

	first, err := st.ListPage(ctx, ListPageInput{Prefix: "gycc-2023/", MaxKeys: 2})
	require.NoError(t, err)
	require.Len(t, first.Objects, 2)
	assert.Equal(t, "gycc-2023/1.jpg", first.Objects[0].Key)
	assert.Equal(t, int64(20), first.Objects[1].Size)
	assert.Equal(t, "gycc-2023/2.jpg", first.NextContinuationToken)

	second, err := st.ListPage(ctx, ListPageInput{Prefix: "gycc-2023/", MaxKeys: 2, ContinuationToken: first.NextContinuationToken})
	require.NoError(t, err)
	require.Len(t, second.Objects, 1)
	assert.Equal(t, "gycc-2023/10.jpg", second.Objects[0].Key)
	assert.Empty(t, second.NextContinuationToken)
}

func TestMinio_ListPage_HonoursDeadline(t *testing.T) {
	st := localMinIO(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(5 * time.Second):
		}
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := st.ListPage(ctx, ListPageInput{Prefix: "gycc-2023/", MaxKeys: 10})

	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestNewMinIO_NoNetworkAtStartup(t *testing.T) {
	_, err := NewMinIO(testConfig("unreachable.invalid"))
	assert.NoError(t, err)
}
