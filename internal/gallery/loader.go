package gallery

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"

	"ColoringBoard/internal/state"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// DefaultCacheSize bounds the number of decoded images kept in memory.
const DefaultCacheSize = 16

// LoadError reports an image reference that could not be opened or decoded.
type LoadError struct {
	Ref string
	Err error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load image %s: %v", e.Ref, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Loader decodes images from an fs.FS in the background and hands results
// back through post, which must run callbacks on the UI goroutine.
type Loader struct {
	fsys   fs.FS
	cache  *lru.Cache[string, image.Image]
	post   func(func())
	logger *zap.Logger
}

// NewLoader returns a Loader caching up to cacheSize decoded images. A nil
// post runs callbacks on the loading goroutine.
func NewLoader(fsys fs.FS, cacheSize int, post func(func()), logger *zap.Logger) (*Loader, error) {
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	cache, err := lru.New[string, image.Image](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("create image cache: %w", err)
	}
	if post == nil {
		post = func(f func()) { f() }
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{fsys: fsys, cache: cache, post: post, logger: logger}, nil
}

// Load decodes ref and calls done with the image or a *LoadError. done is
// skipped entirely once ctx is cancelled.
func (l *Loader) Load(ctx context.Context, ref string, done func(image.Image, error)) {
	l.load(ctx, ref, func() (image.Image, error) { return l.decode(ref) }, done)
}

// LoadThumbnail is like Load but delivers a copy scaled to fit size×size.
func (l *Loader) LoadThumbnail(ctx context.Context, ref string, size int, done func(image.Image, error)) {
	key := fmt.Sprintf("thumb:%d:%s", size, ref)
	l.load(ctx, key, func() (image.Image, error) {
		img, err := l.decodeCached(ref)
		if err != nil {
			return nil, err
		}
		return Thumbnail(img, size), nil
	}, done)
}

func (l *Loader) load(ctx context.Context, key string, produce func() (image.Image, error), done func(image.Image, error)) {
	if ctx.Err() != nil {
		return
	}
	deliver := func(img image.Image, err error) {
		l.post(func() {
			if ctx.Err() != nil {
				return
			}
			done(img, err)
		})
	}
	if img, ok := l.cache.Get(key); ok {
		deliver(img, nil)
		return
	}
	go func() {
		img, err := produce()
		if err != nil {
			l.logger.Warn("image load failed", zap.String("ref", key), zap.Error(err))
		} else {
			l.cache.Add(key, img)
		}
		deliver(img, err)
	}()
}

func (l *Loader) decodeCached(ref string) (image.Image, error) {
	if img, ok := l.cache.Get(ref); ok {
		return img, nil
	}
	img, err := l.decode(ref)
	if err != nil {
		return nil, err
	}
	l.cache.Add(ref, img)
	return img, nil
}

func (l *Loader) decode(ref string) (image.Image, error) {
	f, err := l.fsys.Open(ref)
	if err != nil {
		return nil, &LoadError{Ref: ref, Err: err}
	}
	defer f.Close()
	img, format, err := image.Decode(f)
	if err != nil {
		return nil, &LoadError{Ref: ref, Err: err}
	}
	l.logger.Debug("image decoded",
		zap.String("ref", ref),
		zap.String("format", format),
		zap.Int("width", img.Bounds().Dx()),
		zap.Int("height", img.Bounds().Dy()),
	)
	return img, nil
}

// NaturalSize measures an image's native pixel dimensions.
func NaturalSize(img image.Image) state.Size {
	if img == nil {
		return state.Size{}
	}
	b := img.Bounds()
	return state.NewSize(float64(b.Dx()), float64(b.Dy()))
}
