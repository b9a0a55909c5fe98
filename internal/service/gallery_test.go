package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"sort"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gyccsite/internal/config"
	"gyccsite/internal/storage"
	storeMocks "gyccsite/internal/storage/mocks"
)

// pagedStore serves a fixed object set in key order, one page per call,
// and signs keys unless they are listed in failSign.
type pagedStore struct {
	mu        sync.Mutex
	keys      []string
	failSign  map[string]bool
	listCalls int
	signCalls map[string]int
}

func newPagedStore(keys ...string) *pagedStore {
	sorted := append([]string(nil), keys...)
	sort.Strings(sorted)
	return &pagedStore{keys: sorted, failSign: map[string]bool{}, signCalls: map[string]int{}}
}

func (s *pagedStore) Put(context.Context, string, io.Reader, storage.PutObjectOptions) (storage.ObjectInfo, error) {
	return storage.ObjectInfo{}, errors.New("not implemented")
}

func (s *pagedStore) PresignGet(_ context.Context, key string, _ time.Duration) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.signCalls[key]++
	if s.failSign[key] {
		return "", errors.New("signing failed")
	}
	return "https://objects.example.org/zeabur/" + key + "?X-Amz-Signature=abc", nil
}

func (s *pagedStore) ListPage(_ context.Context, in storage.ListPageInput) (storage.ListPageOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listCalls++

	start := 0
	if in.ContinuationToken != "" {
		start, _ = strconv.Atoi(in.ContinuationToken)
	}
	var matched []string
	for _, k := range s.keys {
		if strings.HasPrefix(k, in.Prefix) {
			matched = append(matched, k)
		}
	}
	end := start + in.MaxKeys
	if end > len(matched) {
		end = len(matched)
	}
	out := storage.ListPageOutput{}
	for _, k := range matched[start:end] {
		out.Objects = append(out.Objects, storage.ObjectInfo{Key: k, ETag: `"etag-` + k + `"`, Size: 1024})
	}
	if end < len(matched) {
		out.NextContinuationToken = strconv.Itoa(end)
	}
	return out, nil
}

func (s *pagedStore) Bucket() string   { return "zeabur" }
func (s *pagedStore) Endpoint() string { return "https://objects.example.org" }

func newTestGallery(t *testing.T, store storage.Storage) (GalleryService, *Metrics) {
	t.Helper()
	m, err := NewMetrics(prometheus.NewRegistry())
	require.NoError(t, err)
	cfg := config.GalleryConfig{URLExpiry: time.Hour, MaxPresignKeys: 100, ListPageSize: 1000, SignConcurrency: 8}
	return NewGalleryService(store, NewPresigner(store, cfg, m), cfg, m), m
}

func TestIsImageKey(t *testing.T) {
	for _, k := range []string{"a/1.jpg", "a/2.JPEG", "a/3.png", "a/4.Gif", "a/5.webp", "a/6.bmp"} {
		assert.True(t, IsImageKey(k), k)
	}
	for _, k := range []string{"a/", "a/notes.txt", "a/clip.mp4", "a/jpg", "a/1.jpg.bak"} {
		assert.False(t, IsImageKey(k), k)
	}
}

func TestGalleryService_ListImages_PrefixRequired(t *testing.T) {
	mStore := new(storeMocks.MockStorage)
	svc, _ := newTestGallery(t, mStore)

	for _, prefix := range []string{"", "   "} {
		res, err := svc.ListImages(context.Background(), prefix)
		assert.ErrorIs(t, err, ErrPrefixRequired)
		assert.Nil(t, res)
	}
	mStore.AssertNotCalled(t, "ListPage", mock.Anything, mock.Anything)
}

func TestGalleryService_ListImages_AppendsSlashToPrefix(t *testing.T) {
	mStore := new(storeMocks.MockStorage)
	svc, _ := newTestGallery(t, mStore)
	ctx := context.Background()

	mStore.On("ListPage", mock.Anything, storage.ListPageInput{Prefix: "gycc-2023/", MaxKeys: 1000}).
		Return(storage.ListPageOutput{}, nil).Twice()

	for _, prefix := range []string{"gycc-2023", "gycc-2023/"} {
		res, err := svc.ListImages(ctx, prefix)
		require.NoError(t, err)
		assert.Equal(t, 0, res.Count)
		assert.NotNil(t, res.Images)
	}
	mStore.AssertExpectations(t)
}

func TestGalleryService_ListImages_DrainsAllPages(t *testing.T) {
	keys := make([]string, 0, 2500)
	for i := 1; i <= 2500; i++ {
		keys = append(keys, fmt.Sprintf("big/%d.jpg", i))
	}
	store := newPagedStore(keys...)
	svc, m := newTestGallery(t, store)

	res, err := svc.ListImages(context.Background(), "big")

	require.NoError(t, err)
	assert.Equal(t, 3, store.listCalls)
	assert.Equal(t, 2500, res.Count)
	require.Len(t, res.Images, 2500)
	assert.Equal(t, "big/1.jpg", res.Images[0].Key)
	assert.Equal(t, "big/2500.jpg", res.Images[2499].Key)
	assert.Equal(t, float64(2500), testutil.ToFloat64(m.listedObjects))
}

func TestGalleryService_ListImages_AlbumEndToEnd(t *testing.T) {
	keys := []string{"gycc-2023/", "gycc-2023/notes.txt", "gycc-2023/clip.mp4"}
	for i := 1; i <= 64; i++ {
		keys = append(keys, fmt.Sprintf("gycc-2023/%d.jpg", i))
	}
	rand.New(rand.NewSource(7)).Shuffle(len(keys), func(i, j int) { keys[i], keys[j] = keys[j], keys[i] })
	store := newPagedStore(keys...)
	svc, _ := newTestGallery(t, store)

	res, err := svc.ListImages(context.Background(), "gycc-2023/")

	require.NoError(t, err)
	require.Equal(t, 64, res.Count)
	for i, img := range res.Images {
		assert.Equal(t, fmt.Sprintf("gycc-2023/%d.jpg", i+1), img.Key)
		require.NotNil(t, img.URL)
		assert.Contains(t, *img.URL, img.Key)
		assert.Equal(t, "etag-"+img.Key, img.DisplayID())
	}
	assert.Equal(t, 1, store.listCalls)
}

func TestGalleryService_ListImages_SignFailureIsPerKey(t *testing.T) {
	store := newPagedStore("a/1.jpg", "a/2.jpg", "a/3.jpg")
	store.failSign["a/2.jpg"] = true
	svc, m := newTestGallery(t, store)

	res, err := svc.ListImages(context.Background(), "a")

	require.NoError(t, err)
	require.Equal(t, 3, res.Count)
	assert.NotNil(t, res.Images[0].URL)
	assert.Nil(t, res.Images[1].URL)
	assert.NotNil(t, res.Images[2].URL)
	assert.Equal(t, float64(1), testutil.ToFloat64(m.presignFailures))
}

func TestGalleryService_ListImages_UpstreamError(t *testing.T) {
	mStore := new(storeMocks.MockStorage)
	svc, _ := newTestGallery(t, mStore)

	mStore.On("ListPage", mock.Anything, mock.Anything).
		Return(storage.ListPageOutput{}, errors.New("access denied"))

	res, err := svc.ListImages(context.Background(), "a/")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "list objects: access denied")
	assert.Nil(t, res)
	mStore.AssertNotCalled(t, "PresignGet", mock.Anything, mock.Anything, mock.Anything)
}

func TestGalleryService_ListImages_StuckToken(t *testing.T) {
	mStore := new(storeMocks.MockStorage)
	svc, _ := newTestGallery(t, mStore)

	mStore.On("ListPage", mock.Anything, mock.Anything).
		Return(storage.ListPageOutput{NextContinuationToken: "same"}, nil)

	_, err := svc.ListImages(context.Background(), "a/")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "did not advance")
	mStore.AssertNumberOfCalls(t, "ListPage", 2)
}

func TestGalleryService_Status(t *testing.T) {
	keys := make([]string, 0, 25)
	for i := 0; i < 25; i++ {
		keys = append(keys, fmt.Sprintf("k/%02d.jpg", i))
	}
	svc, _ := newTestGallery(t, newPagedStore(keys...))

	st, err := svc.Status(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "zeabur", st.Bucket)
	assert.Equal(t, "https://objects.example.org", st.Endpoint)
	assert.Equal(t, 25, st.ObjectCount)
	assert.Len(t, st.Sample, 10)
}
