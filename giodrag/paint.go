package giodrag

import (
	"image"
	"image/color"
	"math"

	"gioui.org/f32"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"github.com/esimov/dragdrop"
)

// PaintSnapshot paints the snapshot at its position, scale and alpha.
func PaintSnapshot(ops *op.Ops, snap *dragdrop.Snapshot) {
	if snap == nil {
		return
	}
	img := snap.Render()
	if img.Bounds().Empty() {
		return
	}
	defer op.Affine(f32.Affine2D{}.Offset(snap.Bounds().Min)).Push(ops).Pop()

	paint.NewImageOp(img).Add(ops)
	defer clip.Rect(img.Bounds()).Push(ops).Pop()
	paint.PaintOp{}.Add(ops)
}

// FillRect fills a rectangle given in container coordinates.
func FillRect(ops *op.Ops, r dragdrop.Rectangle, c color.Color) {
	paint.FillShape(ops, NRGBA(c), clip.Rect(ImageRect(r)).Op())
}

// NRGBA converts any color to the non-premultiplied form used by the paint operations.
func NRGBA(c color.Color) color.NRGBA {
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

// ImageRect rounds a rectangle outwards to whole pixels.
func ImageRect(r dragdrop.Rectangle) image.Rectangle {
	return image.Rect(
		int(math.Floor(float64(r.Min.X))),
		int(math.Floor(float64(r.Min.Y))),
		int(math.Ceil(float64(r.Max.X))),
		int(math.Ceil(float64(r.Max.Y))),
	)
}
