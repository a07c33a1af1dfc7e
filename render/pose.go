package render

import (
	"fmt"
	"github.com/swdee/go-posture"
	"github.com/swdee/go-posture/classify"
	"gocv.io/x/gocv"
	"golang.org/x/image/font/opentype"
	"image"
	"image/draw"
	"sync"
)

// Options defines the parameters used to create a Renderer
type Options struct {
	// Style is the set of paints used for each overlay category
	Style Style
	// Params are the posture classification thresholds
	Params classify.Params
	// Font is the Hershey font used for text on a gocv.Mat
	Font Font
	// Typeface is the font used for text on an image.Image, when nil the Go
	// Regular font is used
	Typeface *opentype.Font
	// ShowReferencePoints marks the synthetic shoulder reference points used
	// for measuring arm elevation
	ShowReferencePoints bool
}

// DefaultOptions returns an instance of Options configured with the default
// style and classification thresholds
func DefaultOptions() Options {
	return Options{
		Style:  DefaultStyle(),
		Params: classify.DefaultParams(),
		Font:   DefaultFont(),
	}
}

// Renderer draws pose skeletons with posture risk overlays.  A Renderer holds
// no per call state and is safe for concurrent use.
type Renderer struct {
	style      Style
	classifier *classify.Classifier
	font       Font
	typeface   *opentype.Font
	showRefs   bool
}

// New returns a Renderer configured with the given options
func New(opts Options) (*Renderer, error) {

	typeface := opts.Typeface

	if typeface == nil {
		var err error
		typeface, err = DefaultTypeface()

		if err != nil {
			return nil, err
		}
	}

	return &Renderer{
		style:      opts.Style,
		classifier: classify.New(opts.Params),
		font:       opts.Font,
		typeface:   typeface,
		showRefs:   opts.ShowReferencePoints,
	}, nil
}

// Assess validates and classifies every person.  Any person failing
// validation or with coincident joints fails the whole call.
func (r *Renderer) Assess(persons []posture.Person) ([]classify.Assessment, error) {

	res := make([]classify.Assessment, len(persons))

	for i, p := range persons {
		a, err := r.classifier.Assess(p)

		if err != nil {
			return nil, fmt.Errorf("error classifying person at index %d: %w", i, err)
		}

		res[i] = a
	}

	return res, nil
}

// Draw renders the persons onto the canvas.  All persons are classified
// before anything is drawn so the canvas is left untouched on error.
func (r *Renderer) Draw(c Canvas, persons []posture.Person, showIdentifiers bool) error {

	assessments, err := r.Assess(persons)

	if err != nil {
		return err
	}

	r.draw(c, persons, assessments, showIdentifiers)
	return nil
}

// Render returns a copy of img with the persons drawn on it.  The source
// image is not modified.
func (r *Renderer) Render(img image.Image, persons []posture.Person,
	showIdentifiers bool) (draw.Image, error) {

	assessments, err := r.Assess(persons)

	if err != nil {
		return nil, err
	}

	out := cloneImage(img)

	canvas := NewImageCanvas(out, r.typeface)
	defer canvas.Close()

	r.draw(canvas, persons, assessments, showIdentifiers)

	return out, nil
}

// RenderMat returns a clone of img with the persons drawn on it.  The caller
// is responsible for closing the returned Mat.
func (r *Renderer) RenderMat(img gocv.Mat, persons []posture.Person,
	showIdentifiers bool) (gocv.Mat, error) {

	assessments, err := r.Assess(persons)

	if err != nil {
		return gocv.NewMat(), err
	}

	out := img.Clone()

	r.draw(NewMatCanvas(&out, r.font), persons, assessments, showIdentifiers)

	return out, nil
}

// draw renders each person in layers so keypoint markers are always on top
// of the lines
func (r *Renderer) draw(c Canvas, persons []posture.Person,
	assessments []classify.Assessment, showIdentifiers bool) {

	for i, p := range persons {
		a := assessments[i]

		if showIdentifiers {
			Identifier(c, p, &r.style)
		}

		Skeleton(c, p, &r.style)
		Trunk(c, p, a.Trunk, &r.style)
		Arm(c, p, a.LeftArm, &r.style)
		Arm(c, p, a.RightArm, &r.style)

		if r.showRefs {
			References(c,
				r.classifier.ShoulderReference(p, classify.Left),
				r.classifier.ShoulderReference(p, classify.Right),
				&r.style)
		}

		KeyPoints(c, p, &r.style)
	}
}

var (
	defaultRenderer     *Renderer
	defaultRendererErr  error
	defaultRendererOnce sync.Once
)

// Render returns a copy of img with the persons drawn using the default
// options
func Render(img image.Image, persons []posture.Person, showIdentifiers bool) (draw.Image, error) {

	defaultRendererOnce.Do(func() {
		defaultRenderer, defaultRendererErr = New(DefaultOptions())
	})

	if defaultRendererErr != nil {
		return nil, defaultRendererErr
	}

	return defaultRenderer.Render(img, persons, showIdentifiers)
}
