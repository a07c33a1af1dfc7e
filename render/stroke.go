package render

import (
	clipper "github.com/ctessum/go.clipper"
	"github.com/swdee/go-posture"
	"math"
)

const (
	// clipperScale is the fixed point scale used to convert floating point
	// coordinates to Clipper integer coordinates
	clipperScale = 256
	// circleSegments is the number of line segments used to approximate
	// a circle outline
	circleSegments = 64
)

// toPath converts the points to a Clipper Path
func toPath(pts ...posture.Point2D) clipper.Path {

	path := make(clipper.Path, 0, len(pts))

	for _, pt := range pts {
		path = append(path, &clipper.IntPoint{
			X: clipper.CInt(math.Round(pt.X * clipperScale)),
			Y: clipper.CInt(math.Round(pt.Y * clipperScale)),
		})
	}

	return path
}

// strokeLine expands a line into the polygon covering a stroke of the given
// width with flat (butt) end caps
func strokeLine(a, b posture.Point2D, width float64) clipper.Paths {

	if a == b {
		return nil
	}

	co := clipper.NewClipperOffset()
	co.AddPath(toPath(a, b), clipper.JtMiter, clipper.EtOpenButt)

	return co.Execute(strokeWidth(width) / 2 * clipperScale)
}

// strokeClosed expands a closed outline into the ring polygon covering a
// stroke of the given width
func strokeClosed(path clipper.Path, width float64, join clipper.JoinType) clipper.Paths {

	co := clipper.NewClipperOffset()
	co.AddPath(path, join, clipper.EtClosedLine)

	return co.Execute(strokeWidth(width) / 2 * clipperScale)
}

// rectPath returns the outline of the rectangle
func rectPath(r posture.Rect) clipper.Path {
	return toPath(
		posture.Pt(r.Left, r.Top),
		posture.Pt(r.Right, r.Top),
		posture.Pt(r.Right, r.Bottom),
		posture.Pt(r.Left, r.Bottom),
	)
}

// circlePath returns a polygon approximating the circle
func circlePath(c posture.Point2D, radius float64) clipper.Path {

	pts := make([]posture.Point2D, circleSegments)

	for i := range pts {
		theta := 2 * math.Pi * float64(i) / circleSegments
		pts[i] = posture.Pt(c.X+radius*math.Cos(theta), c.Y+radius*math.Sin(theta))
	}

	return toPath(pts...)
}

// strokeWidth treats zero or negative widths as a one pixel hairline
func strokeWidth(w float64) float64 {
	if w < 1 {
		return 1
	}
	return w
}
