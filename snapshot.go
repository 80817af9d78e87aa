package dragdrop

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gioui.org/f32"
	"github.com/disintegration/imaging"
	"github.com/esimov/dragdrop/utils"
	"golang.org/x/image/bmp"
)

// Snapshot is the visual representation of the dragged item shown under the pointer.
// The session moves it with the pointer and the animations adjust its scale and alpha;
// painting it is left to the host.
type Snapshot struct {
	Image image.Image
	// Center is the snapshot center in container coordinates.
	Center f32.Point
	Scale  float32
	Alpha  float32
}

// NewSnapshot wraps img in a fully opaque, unscaled snapshot.
func NewSnapshot(img image.Image) *Snapshot {
	return &Snapshot{Image: img, Scale: 1, Alpha: 1}
}

// Size returns the snapshot dimension at the current scale.
func (s *Snapshot) Size() f32.Point {
	if s.Image == nil {
		return f32.Point{}
	}
	b := s.Image.Bounds()
	return f32.Pt(float32(b.Dx())*s.Scale, float32(b.Dy())*s.Scale)
}

// Bounds returns the rectangle covered by the snapshot in container coordinates.
func (s *Snapshot) Bounds() Rectangle {
	half := s.Size().Mul(0.5)
	return Rectangle{Min: s.Center.Sub(half), Max: s.Center.Add(half)}
}

// Render returns the snapshot image resized to the current scale and faded to the current alpha.
func (s *Snapshot) Render() *image.NRGBA {
	if s.Image == nil {
		return image.NewNRGBA(image.Rectangle{})
	}
	b := s.Image.Bounds()
	w := int(math.Round(float64(float32(b.Dx()) * s.Scale)))
	h := int(math.Round(float64(float32(b.Dy()) * s.Scale)))
	if w <= 0 || h <= 0 {
		return image.NewNRGBA(image.Rectangle{})
	}

	var dst *image.NRGBA
	if w == b.Dx() && h == b.Dy() {
		dst = imaging.Clone(s.Image)
	} else {
		dst = imaging.Resize(s.Image, w, h, imaging.Linear)
	}

	alpha := utils.Clamp(s.Alpha, 0, 1)
	if alpha == 1 {
		return dst
	}
	return imaging.AdjustFunc(dst, func(c color.NRGBA) color.NRGBA {
		c.A = uint8(math.Round(float64(float32(c.A) * alpha)))
		return c
	})
}

// LoadSnapshot decodes a snapshot image from a local file or an URL.
func LoadSnapshot(src string) (*Snapshot, error) {
	if utils.IsValidUrl(src) {
		f, err := utils.DownloadImage(src)
		if err != nil {
			return nil, err
		}
		defer os.Remove(f.Name())
		defer f.Close()

		img, _, err := image.Decode(f)
		if err != nil {
			return nil, fmt.Errorf("could not decode the snapshot: %w", err)
		}
		return NewSnapshot(img), nil
	}

	ctype, err := utils.DetectContentType(src)
	if err != nil {
		return nil, fmt.Errorf("could not open the snapshot file: %w", err)
	}
	if !strings.Contains(ctype, "image") && ctype != "application/octet-stream" {
		return nil, fmt.Errorf("the snapshot should be an image file, got %s", ctype)
	}

	file, err := os.Open(src)
	if err != nil {
		return nil, fmt.Errorf("could not open the snapshot file: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("could not decode the snapshot file: %w", err)
	}
	return NewSnapshot(img), nil
}

// EncodeFrame encodes a rendered frame to w. Files are encoded
// according to their extension, any other writer receives a PNG.
func EncodeFrame(w io.Writer, img image.Image) error {
	switch w := w.(type) {
	case *os.File:
		switch filepath.Ext(w.Name()) {
		case "", ".png":
			return png.Encode(w, img)
		case ".jpg", ".jpeg":
			return jpeg.Encode(w, img, &jpeg.Options{Quality: 100})
		case ".bmp":
			return bmp.Encode(w, img)
		default:
			return errors.New("unsupported image format")
		}
	default:
		return png.Encode(w, img)
	}
}
