package render

import (
	xdraw "golang.org/x/image/draw"
	"image"
	"image/draw"
)

// cloneImage returns a drawable copy of src with identical bounds.  RGBA and
// NRGBA images in 8 and 16 bit keep their pixel format, any other format is
// converted to RGBA.
func cloneImage(src image.Image) draw.Image {

	b := src.Bounds()

	switch img := src.(type) {
	case *image.RGBA:
		out := image.NewRGBA(b)
		copyRows(out.Pix, out.Stride, img.Pix[img.PixOffset(b.Min.X, b.Min.Y):], img.Stride, b.Dy())
		return out

	case *image.NRGBA:
		out := image.NewNRGBA(b)
		copyRows(out.Pix, out.Stride, img.Pix[img.PixOffset(b.Min.X, b.Min.Y):], img.Stride, b.Dy())
		return out

	case *image.RGBA64:
		out := image.NewRGBA64(b)
		copyRows(out.Pix, out.Stride, img.Pix[img.PixOffset(b.Min.X, b.Min.Y):], img.Stride, b.Dy())
		return out

	case *image.NRGBA64:
		out := image.NewNRGBA64(b)
		copyRows(out.Pix, out.Stride, img.Pix[img.PixOffset(b.Min.X, b.Min.Y):], img.Stride, b.Dy())
		return out
	}

	out := image.NewRGBA(b)
	xdraw.Copy(out, b.Min, src, b, xdraw.Src, nil)

	return out
}

// copyRows copies rows of pixel data between buffers with differing strides,
// the source stride may be larger when src is a sub image
func copyRows(dst []uint8, dstStride int, src []uint8, srcStride int, rows int) {
	for y := 0; y < rows; y++ {
		copy(dst[y*dstStride:(y+1)*dstStride], src[y*srcStride:])
	}
}
