package render

import (
	"github.com/swdee/go-posture/classify"
	"image/color"
)

// PaintStyle defines whether a shape is filled or outlined
type PaintStyle int

const (
	Stroke PaintStyle = 1
	Fill   PaintStyle = 2
)

// Paint defines the color and line parameters for drawing a shape
type Paint struct {
	Color color.RGBA
	// Width is the stroke width in pixels, ignored for Fill
	Width float64
	Style PaintStyle
}

// TextPaint defines the parameters for rendering text
type TextPaint struct {
	Color color.RGBA
	// Size is the text height in pixels
	Size float64
}

// Style defines the paints used for each overlay category
type Style struct {
	// Skeleton is used for topology bones and the identifier box
	Skeleton Paint
	// Safe, Caution and Danger are used for the hip to shoulder segments
	// according to the trunk flexion band
	Safe    Paint
	Caution Paint
	Danger  Paint
	// Alert is used for both segments of a raised arm
	Alert Paint
	// Marker is used for the keypoint circles
	Marker       Paint
	MarkerRadius float64
	// Text is used for the person identifier
	Text TextPaint
	// IDMargin is the distance between the identifier text baseline and the
	// top of the bounding box
	IDMargin float64
	// LeftReference and RightReference are used to mark the synthetic
	// shoulder reference points
	LeftReference  Paint
	RightReference Paint
}

// DefaultStyle returns default style settings
func DefaultStyle() Style {

	line := Paint{Color: Green, Width: 4, Style: Stroke}

	return Style{
		Skeleton:       line,
		Safe:           line,
		Caution:        Paint{Color: Yellow, Width: 4, Style: Stroke},
		Danger:         Paint{Color: Red, Width: 4, Style: Stroke},
		Alert:          Paint{Color: Red, Width: 4, Style: Stroke},
		Marker:         Paint{Color: Gray, Width: 0.3, Style: Fill},
		MarkerRadius:   6,
		Text:           TextPaint{Color: Green, Size: 30},
		IDMargin:       6,
		LeftReference:  Paint{Color: Blue, Width: 4, Style: Fill},
		RightReference: Paint{Color: Red, Width: 4, Style: Fill},
	}
}

// BandPaint returns the paint to use for segments classified in the given
// risk band
func (s *Style) BandPaint(b classify.Band) Paint {
	switch b {
	case classify.Caution:
		return s.Caution
	case classify.Danger:
		return s.Danger
	case classify.Alert:
		return s.Alert
	default:
		return s.Safe
	}
}
