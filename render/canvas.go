package render

import (
	"github.com/swdee/go-posture"
	"image"
)

// Canvas is a drawing surface the pose overlay is rendered onto.  Coordinates
// are relative to the top left corner of Bounds.
type Canvas interface {
	// Bounds returns the size of the drawing surface
	Bounds() image.Rectangle
	// DrawLine draws a line between a and b
	DrawLine(a, b posture.Point2D, p Paint)
	// DrawCircle draws a circle of the given radius centered at c
	DrawCircle(c posture.Point2D, radius float64, p Paint)
	// DrawText draws text with its baseline starting at the given point
	DrawText(text string, at posture.Point2D, p TextPaint)
	// DrawRect draws an axis aligned rectangle
	DrawRect(r posture.Rect, p Paint)
}
