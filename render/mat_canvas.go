package render

import (
	"github.com/swdee/go-posture"
	"gocv.io/x/gocv"
	"image"
	"math"
)

// MatCanvas is a Canvas drawing onto a gocv.Mat with OpenCV
type MatCanvas struct {
	img  *gocv.Mat
	font Font
}

// NewMatCanvas returns a Canvas drawing onto the given Mat
func NewMatCanvas(img *gocv.Mat, f Font) *MatCanvas {
	return &MatCanvas{
		img:  img,
		font: f,
	}
}

// Bounds returns the size of the drawing surface
func (c *MatCanvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.img.Cols(), c.img.Rows())
}

// DrawLine draws a line between a and b
func (c *MatCanvas) DrawLine(a, b posture.Point2D, p Paint) {
	gocv.Line(c.img, toImagePt(a), toImagePt(b), p.Color, thickness(p))
}

// DrawCircle draws a circle of the given radius centered at pt
func (c *MatCanvas) DrawCircle(pt posture.Point2D, radius float64, p Paint) {
	gocv.Circle(c.img, toImagePt(pt), int(math.Round(radius)), p.Color, thickness(p))
}

// DrawRect draws an axis aligned rectangle
func (c *MatCanvas) DrawRect(r posture.Rect, p Paint) {

	rect := image.Rect(
		int(math.Round(r.Left)), int(math.Round(r.Top)),
		int(math.Round(r.Right)), int(math.Round(r.Bottom)),
	)

	gocv.Rectangle(c.img, rect, p.Color, thickness(p))
}

// DrawText draws text with its baseline starting at the given point
func (c *MatCanvas) DrawText(text string, at posture.Point2D, p TextPaint) {
	gocv.PutTextWithParams(c.img, text, toImagePt(at), c.font.Face,
		c.font.scaleForHeight(p.Size), p.Color, c.font.Thickness,
		c.font.LineType, false)
}

// thickness converts the paint to an OpenCV line thickness where -1 means
// filled
func thickness(p Paint) int {

	if p.Style == Fill {
		return -1
	}

	return int(math.Round(strokeWidth(p.Width)))
}

// toImagePt rounds the point to integer pixel coordinates
func toImagePt(p posture.Point2D) image.Point {
	return image.Pt(int(math.Round(p.X)), int(math.Round(p.Y)))
}
