package gallery

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"
	"time"

	"ColoringBoard/internal/state"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = 200
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

type result struct {
	img image.Image
	err error
}

func waitResult(t *testing.T, ch <-chan result) result {
	t.Helper()
	select {
	case r := <-ch:
		return r
	case <-time.After(5 * time.Second):
		t.Fatal("load did not complete")
		return result{}
	}
}

func newTestLoader(t *testing.T, fsys fstest.MapFS) *Loader {
	t.Helper()
	l, err := NewLoader(fsys, 4, nil, zaptest.NewLogger(t))
	require.NoError(t, err)
	return l
}

func TestLoader_LoadDecodesAndCaches(t *testing.T) {
	fsys := fstest.MapFS{"images/mono.png": {Data: pngBytes(t, 40, 30)}}
	l := newTestLoader(t, fsys)

	ch := make(chan result, 1)
	l.Load(context.Background(), "images/mono.png", func(img image.Image, err error) { ch <- result{img, err} })
	r := waitResult(t, ch)
	require.NoError(t, r.err)
	assert.Equal(t, state.NewSize(40, 30), NaturalSize(r.img))

	delete(fsys, "images/mono.png")
	l.Load(context.Background(), "images/mono.png", func(img image.Image, err error) { ch <- result{img, err} })
	r2 := waitResult(t, ch)
	require.NoError(t, r2.err, "second load is served from the cache")
	assert.Same(t, r.img, r2.img)
}

func TestLoader_MissingAndCorrupt(t *testing.T) {
	fsys := fstest.MapFS{"bad.png": {Data: []byte("not an image")}}
	l := newTestLoader(t, fsys)
	ch := make(chan result, 1)

	for _, ref := range []string{"missing.png", "bad.png"} {
		l.Load(context.Background(), ref, func(img image.Image, err error) { ch <- result{img, err} })
		r := waitResult(t, ch)
		var le *LoadError
		require.ErrorAs(t, r.err, &le, ref)
		assert.Equal(t, ref, le.Ref)
		assert.Nil(t, r.img)
	}
}

func TestLoader_CancelledContextSkipsCallback(t *testing.T) {
	fsys := fstest.MapFS{"a.png": {Data: pngBytes(t, 4, 4)}}
	l := newTestLoader(t, fsys)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	called := make(chan struct{}, 1)
	l.Load(ctx, "a.png", func(image.Image, error) { called <- struct{}{} })

	select {
	case <-called:
		t.Fatal("callback ran for a cancelled load")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestLoader_PostsThroughDispatcher(t *testing.T) {
	fsys := fstest.MapFS{"a.png": {Data: pngBytes(t, 4, 4)}}
	posted := make(chan func(), 1)
	l, err := NewLoader(fsys, 0, func(f func()) { posted <- f }, nil)
	require.NoError(t, err)

	done := false
	l.Load(context.Background(), "a.png", func(image.Image, error) { done = true })
	var f func()
	select {
	case f = <-posted:
	case <-time.After(5 * time.Second):
		t.Fatal("nothing was posted")
	}
	assert.False(t, done, "callback must wait for the dispatcher")
	f()
	assert.True(t, done)
}

func TestLoader_LoadThumbnail(t *testing.T) {
	fsys := fstest.MapFS{"big.png": {Data: pngBytes(t, 400, 200)}}
	l := newTestLoader(t, fsys)
	ch := make(chan result, 1)
	l.LoadThumbnail(context.Background(), "big.png", 100, func(img image.Image, err error) { ch <- result{img, err} })
	r := waitResult(t, ch)
	require.NoError(t, r.err)
	assert.Equal(t, state.NewSize(100, 50), NaturalSize(r.img))
}

func TestThumbnail(t *testing.T) {
	small := image.NewRGBA(image.Rect(0, 0, 10, 10))
	assert.Same(t, image.Image(small), Thumbnail(small, 50))

	tall := image.NewNRGBA(image.Rect(0, 0, 100, 300))
	tall.Set(0, 0, color.White)
	got := Thumbnail(tall, 60)
	assert.Equal(t, 20, got.Bounds().Dx())
	assert.Equal(t, 60, got.Bounds().Dy())
	assert.Nil(t, Thumbnail(nil, 10))
	assert.Equal(t, state.Size{}, NaturalSize(nil))
}
