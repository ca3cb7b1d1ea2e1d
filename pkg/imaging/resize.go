// Package imaging produces width-bounded renditions of the profile image.
package imaging

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"sync"
	"time"

	"portfolio-backend/pkg/storage"

	_ "golang.org/x/image/webp" // Register WebP decoder
	"golang.org/x/image/draw"
)

const (
	MinWidth    = 32
	MaxWidth    = 1200
	jpegQuality = 82

	loadTimeout = 15 * time.Second
)

// ErrInvalidImage marks a source that was read but is not a usable image.
var ErrInvalidImage = errors.New("invalid image")

// Rendition is an encoded image ready to be written to a response.
type Rendition struct {
	Data        []byte
	ContentType string
	Width       int
	Height      int
}

// Resizer decodes a source image on first use and caches one rendition per
// width. A failed load is retried on the next call.
type Resizer struct {
	source storage.Source
	name   string

	mu     sync.Mutex
	src    image.Image
	format string
	cache  map[int]*Rendition
}

func NewResizer(source storage.Source, name string) *Resizer {
	return &Resizer{
		source: source,
		name:   name,
		cache:  make(map[int]*Rendition),
	}
}

func (r *Resizer) load() error {
	ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
	defer cancel()

	data, err := storage.ReadAll(ctx, r.source, r.name)
	if err != nil {
		return fmt.Errorf("failed to open image: %w", err)
	}
	if _, err := storage.CheckContent(r.name, data); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("%w: decode (format: %s): %v", ErrInvalidImage, format, err)
	}
	r.src, r.format = img, format
	return nil
}

// Render returns the image scaled to width, keeping the aspect ratio.
// width <= 0 or wider than the source yields the source size; otherwise it is clamped to [MinWidth, MaxWidth].
func (r *Resizer) Render(width int) (*Rendition, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.src == nil {
		if err := r.load(); err != nil {
			return nil, err
		}
	}

	width = ClampWidth(width, r.src.Bounds().Dx())
	if cached, ok := r.cache[width]; ok {
		return cached, nil
	}

	rendition, err := Scale(r.src, r.format, width)
	if err != nil {
		return nil, err
	}
	r.cache[width] = rendition
	return rendition, nil
}

// ClampWidth bounds a requested width by the source width and the allowed range.
func ClampWidth(width, sourceWidth int) int {
	if width <= 0 || width >= sourceWidth {
		return sourceWidth
	}
	if width < MinWidth {
		width = MinWidth
	}
	if width > MaxWidth {
		width = MaxWidth
	}
	return width
}

// Scale resizes src to width with CatmullRom and encodes it. PNG sources stay
// PNG to keep transparency; everything else becomes JPEG.
func Scale(src image.Image, format string, width int) (*Rendition, error) {
	bounds := src.Bounds()
	height := bounds.Dy()
	if bounds.Dx() != width {
		height = int(float64(bounds.Dy()) * float64(width) / float64(bounds.Dx()))
		if height < 1 {
			height = 1
		}
	}

	resized := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(resized, resized.Bounds(), src, bounds, draw.Over, nil)

	var buf bytes.Buffer
	contentType := "image/jpeg"
	if format == "png" {
		contentType = "image/png"
		if err := png.Encode(&buf, resized); err != nil {
			return nil, fmt.Errorf("failed to encode image: %w", err)
		}
	} else if err := jpeg.Encode(&buf, resized, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	return &Rendition{
		Data:        buf.Bytes(),
		ContentType: contentType,
		Width:       width,
		Height:      height,
	}, nil
}
