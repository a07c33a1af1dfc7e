package render

import (
	clipper "github.com/ctessum/go.clipper"
	"github.com/swdee/go-posture"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
	"image"
	"image/draw"
	"math"
)

// ImageCanvas is a pure Go Canvas drawing anti-aliased shapes onto a
// draw.Image
type ImageCanvas struct {
	dst draw.Image
	// font is the typeface text is drawn with
	font *opentype.Font
	// faces caches a font face per text size
	faces map[float64]font.Face
	// z is reused for rasterizing every shape, taken from the shared pool
	z *vector.Rasterizer
}

// NewImageCanvas returns a Canvas drawing onto dst using the given font for
// text.  Call Close to release the font faces once drawing is complete.
func NewImageCanvas(dst draw.Image, f *opentype.Font) *ImageCanvas {
	return &ImageCanvas{
		dst:   dst,
		font:  f,
		faces: make(map[float64]font.Face),
		z:     rasterizers.Get(),
	}
}

// Bounds returns the size of the drawing surface
func (c *ImageCanvas) Bounds() image.Rectangle {
	b := c.dst.Bounds()
	return image.Rect(0, 0, b.Dx(), b.Dy())
}

// DrawLine draws a line between a and b
func (c *ImageCanvas) DrawLine(a, b posture.Point2D, p Paint) {
	c.fill(strokeLine(a, b, p.Width), p)
}

// DrawCircle draws a circle of the given radius centered at pt
func (c *ImageCanvas) DrawCircle(pt posture.Point2D, radius float64, p Paint) {

	outline := circlePath(pt, radius)

	if p.Style == Fill {
		c.fill(clipper.Paths{outline}, p)
		return
	}

	c.fill(strokeClosed(outline, p.Width, clipper.JtRound), p)
}

// DrawRect draws an axis aligned rectangle
func (c *ImageCanvas) DrawRect(r posture.Rect, p Paint) {

	outline := rectPath(r)

	if p.Style == Fill {
		c.fill(clipper.Paths{outline}, p)
		return
	}

	c.fill(strokeClosed(outline, p.Width, clipper.JtMiter), p)
}

// DrawText draws text with its baseline starting at the given point
func (c *ImageCanvas) DrawText(text string, at posture.Point2D, p TextPaint) {

	face, err := c.face(p.Size)

	if err != nil {
		// font size can not be rendered, nothing to draw
		return
	}

	origin := c.dst.Bounds().Min

	dr := &font.Drawer{
		Dst:  c.dst,
		Src:  image.NewUniform(p.Color),
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.Int26_6(math.Round((at.X + float64(origin.X)) * 64)),
			Y: fixed.Int26_6(math.Round((at.Y + float64(origin.Y)) * 64)),
		},
	}

	dr.DrawString(text)
}

// Close releases the cached font faces and returns the rasterizer to the
// pool.  The canvas must not be drawn on afterwards.
func (c *ImageCanvas) Close() error {

	rasterizers.Put(c.z)
	c.z = nil

	var firstErr error

	for size, face := range c.faces {
		if err := face.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		delete(c.faces, size)
	}

	return firstErr
}

// face returns the cached font face for the text size, creating it on first
// use
func (c *ImageCanvas) face(size float64) (font.Face, error) {

	if f, ok := c.faces[size]; ok {
		return f, nil
	}

	f, err := opentype.NewFace(c.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})

	if err != nil {
		return nil, err
	}

	c.faces[size] = f
	return f, nil
}

// fill rasterizes the polygons in Clipper coordinates onto the destination
// image.  Only the area covered by the polygons is rasterized.
func (c *ImageCanvas) fill(paths clipper.Paths, p Paint) {

	origin := c.dst.Bounds().Min
	area := pathsBounds(paths).Add(origin).Intersect(c.dst.Bounds())

	if area.Empty() {
		return
	}

	// offset converting Clipper coordinates to rasterizer coordinates
	ox := float32(area.Min.X - origin.X)
	oy := float32(area.Min.Y - origin.Y)

	c.z.Reset(area.Dx(), area.Dy())

	for _, path := range paths {
		if len(path) < 3 {
			continue
		}

		c.z.MoveTo(fromClipper(path[0].X)-ox, fromClipper(path[0].Y)-oy)

		for _, pt := range path[1:] {
			c.z.LineTo(fromClipper(pt.X)-ox, fromClipper(pt.Y)-oy)
		}

		c.z.ClosePath()
	}

	c.z.Draw(c.dst, area, image.NewUniform(p.Color), image.Point{})
}

// pathsBounds returns the integer pixel rectangle enclosing all the paths
func pathsBounds(paths clipper.Paths) image.Rectangle {

	var rect image.Rectangle
	first := true

	for _, path := range paths {
		for _, pt := range path {
			x := float64(pt.X) / clipperScale
			y := float64(pt.Y) / clipperScale

			r := image.Rect(int(math.Floor(x)), int(math.Floor(y)),
				int(math.Ceil(x))+1, int(math.Ceil(y))+1)

			if first {
				rect = r
				first = false
				continue
			}

			rect = rect.Union(r)
		}
	}

	return rect
}

// fromClipper converts a Clipper coordinate back to pixel units
func fromClipper(v clipper.CInt) float32 {
	return float32(float64(v) / clipperScale)
}
