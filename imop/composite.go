// Package imop implements the Porter-Duff composition operations used for
// flattening the layers of a drag and drop frame: the container backdrop,
// the highlighted destination regions and the snapshot floating under the pointer.
// The image/draw package only provides the source and source-over operators;
// the headless renderer also needs the masking ones to punch out and fade layers.
package imop

import (
	"image"
	"image/color"
	"slices"
)

const (
	Clear   = "clear"
	Copy    = "copy"
	Dst     = "dst"
	SrcOver = "src_over"
	DstOver = "dst_over"
	SrcIn   = "src_in"
	DstIn   = "dst_in"
	SrcOut  = "src_out"
	DstOut  = "dst_out"
	SrcAtop = "src_atop"
	DstAtop = "dst_atop"
	Xor     = "xor"
)

var compositeOps = []string{
	Clear, Copy, Dst, SrcOver, DstOver, SrcIn, DstIn,
	SrcOut, DstOut, SrcAtop, DstAtop, Xor,
}

// Bitmap is the destination of a composition.
type Bitmap struct {
	Img *image.NRGBA
}

// NewBitmap allocates a transparent bitmap.
func NewBitmap(rect image.Rectangle) *Bitmap {
	return &Bitmap{
		Img: image.NewNRGBA(rect),
	}
}

// Composite holds the active composition operation.
type Composite struct {
	current string
}

// InitOp returns a composite set to source-over, the operation used by painters.
func InitOp() *Composite {
	return &Composite{current: SrcOver}
}

// Set activates a composition operation. Unsupported operations are ignored.
func (op *Composite) Set(cop string) {
	if slices.Contains(compositeOps, cop) {
		op.current = cop
	}
}

// Get returns the active composition operation.
func (op *Composite) Get() string {
	return op.current
}

// Draw composes src over the backdrop dst into bitmap, pixel by pixel.
// The three images are expected to share the same bounds.
// With a non-nil blend, the source colors are first mixed with the backdrop.
func (op *Composite) Draw(bitmap *Bitmap, src, dst *image.NRGBA, blend *Blend) {
	if bitmap == nil {
		bitmap = NewBitmap(src.Bounds())
	}
	b := src.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			s := toColor(src.NRGBAAt(x, y))
			d := toColor(dst.NRGBAAt(x, y))
			bitmap.Img.SetNRGBA(x, y, op.compose(s, d, blend).nrgba())
		}
	}
}

// DrawAt composes src onto dst in place, with the top-left corner of src
// placed at the given point of dst. Pixels outside dst are discarded.
func (op *Composite) DrawAt(dst *image.NRGBA, src image.Image, at image.Point, blend *Blend) {
	sb := src.Bounds()
	area := sb.Sub(sb.Min).Add(at).Intersect(dst.Bounds())
	if area.Empty() {
		return
	}
	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			sp := image.Pt(x, y).Sub(at).Add(sb.Min)
			s := toColor(color.NRGBAModel.Convert(src.At(sp.X, sp.Y)).(color.NRGBA))
			d := toColor(dst.NRGBAAt(x, y))
			dst.SetNRGBA(x, y, op.compose(s, d, blend).nrgba())
		}
	}
}

// Fill composes a uniform color over the rectangle r of dst.
func (op *Composite) Fill(dst *image.NRGBA, r image.Rectangle, c color.NRGBA, blend *Blend) {
	r = r.Intersect(dst.Bounds())
	s := toColor(c)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			d := toColor(dst.NRGBAAt(x, y))
			dst.SetNRGBA(x, y, op.compose(s, d, blend).nrgba())
		}
	}
}

// compose applies the Porter-Duff operator on a straight alpha source and backdrop.
func (op *Composite) compose(s, b Color, blend *Blend) Color {
	if blend != nil && blend.OpType != "" {
		s = blend.mix(s, b)
	}

	// Fractions of the source and the backdrop kept by the operator.
	var fs, fb float64
	switch op.current {
	case Clear:
		fs, fb = 0, 0
	case Copy:
		fs, fb = 1, 0
	case Dst:
		fs, fb = 0, 1
	case SrcOver:
		fs, fb = 1, 1-s.A
	case DstOver:
		fs, fb = 1-b.A, 1
	case SrcIn:
		fs, fb = b.A, 0
	case DstIn:
		fs, fb = 0, s.A
	case SrcOut:
		fs, fb = 1-b.A, 0
	case DstOut:
		fs, fb = 0, 1-s.A
	case SrcAtop:
		fs, fb = b.A, 1-s.A
	case DstAtop:
		fs, fb = 1-b.A, s.A
	case Xor:
		fs, fb = 1-b.A, 1-s.A
	}

	a := s.A*fs + b.A*fb
	if a <= 0 {
		return Color{}
	}
	// Premultiplied sum, converted back to straight alpha.
	return Color{
		R: (s.R*s.A*fs + b.R*b.A*fb) / a,
		G: (s.G*s.A*fs + b.G*b.A*fb) / a,
		B: (s.B*s.A*fs + b.B*b.A*fb) / a,
		A: a,
	}
}
