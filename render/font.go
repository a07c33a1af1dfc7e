package render

import (
	"fmt"
	"gocv.io/x/gocv"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"sync"
)

var (
	// goRegular is the parsed default typeface used by ImageCanvas
	goRegular     *opentype.Font
	goRegularErr  error
	goRegularOnce sync.Once
)

// DefaultTypeface returns the Go Regular TrueType font parsed once and shared
// between all image canvases
func DefaultTypeface() (*opentype.Font, error) {

	goRegularOnce.Do(func() {
		goRegular, goRegularErr = opentype.Parse(goregular.TTF)

		if goRegularErr != nil {
			goRegularErr = fmt.Errorf("error parsing default font: %w", goRegularErr)
		}
	})

	return goRegular, goRegularErr
}

// LoadTypeface parses a TTF or OTF font from the given bytes
func LoadTypeface(data []byte) (*opentype.Font, error) {

	f, err := opentype.Parse(data)

	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}

	return f, nil
}

// Font defines the parameters for rendering text on a gocv.Mat using the
// Hershey fonts built into OpenCV
type Font struct {
	Face      gocv.HersheyFont
	Thickness int
	LineType  gocv.LineType
}

// DefaultFont returns default font settings
func DefaultFont() Font {
	return Font{
		Face:      gocv.FontHersheySimplex,
		Thickness: 2,
		LineType:  gocv.LineAA,
	}
}

// scaleForHeight returns the Hershey font scale that renders text of the
// given pixel height
func (f Font) scaleForHeight(height float64) float64 {

	// measure a digit at unit scale as ids are numeric
	size := gocv.GetTextSize("0", f.Face, 1.0, f.Thickness)

	if size.Y <= 0 {
		return 1.0
	}

	return height / float64(size.Y)
}
