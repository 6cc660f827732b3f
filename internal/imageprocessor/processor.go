package imageprocessor

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"

	"golang.org/x/image/draw"
)

// Processor recompresses uploaded images before they are stored.
type Processor struct {
	quality int // JPEG quality (1-100)
	maxDim  int // longest allowed edge; 0 disables resizing
}

// NewProcessor creates an image processor. Invalid quality falls back
// to 60, the storage default for feed images.
func NewProcessor(quality int) *Processor {
	if quality <= 0 || quality > 100 {
		quality = 60
	}
	return &Processor{
		quality: quality,
		maxDim:  1600,
	}
}

// Result is a recompressed image ready for blob storage.
type Result struct {
	Data     []byte
	MimeType string
	Format   string
}

// Recompress decodes the payload, detects its format and re-encodes it
// preserving that format. JPEG gets the configured quality; PNG is
// re-encoded losslessly. Oversized images are scaled down first.
func (p *Processor) Recompress(reader io.Reader) (*Result, error) {
	img, format, err := image.Decode(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	if p.maxDim > 0 {
		img = p.bound(img)
	}

	var buf bytes.Buffer
	var mime string
	switch format {
	case "jpeg", "jpg":
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: p.quality}); err != nil {
			return nil, fmt.Errorf("failed to encode JPEG: %w", err)
		}
		mime = "image/jpeg"
	case "png":
		if err := png.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("failed to encode PNG: %w", err)
		}
		mime = "image/png"
	default:
		return nil, fmt.Errorf("unsupported image format: %s", format)
	}

	return &Result{
		Data:     buf.Bytes(),
		MimeType: mime,
		Format:   format,
	}, nil
}

// bound scales the image down so neither edge exceeds maxDim,
// maintaining aspect ratio. Smaller images pass through untouched.
func (p *Processor) bound(img image.Image) image.Image {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	if width <= p.maxDim && height <= p.maxDim {
		return img
	}

	ratio := float64(width) / float64(height)
	newWidth := p.maxDim
	newHeight := p.maxDim
	if ratio > 1 {
		newHeight = int(float64(p.maxDim) / ratio)
	} else {
		newWidth = int(float64(p.maxDim) * ratio)
	}

	dst := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}

// IsValidImage reports whether the reader contains a decodable image.
func IsValidImage(reader io.Reader) bool {
	_, _, err := image.Decode(reader)
	return err == nil
}
