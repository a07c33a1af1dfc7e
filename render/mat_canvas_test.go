package render

import (
	"bytes"
	"errors"
	"github.com/swdee/go-posture"
	"gocv.io/x/gocv"
	"testing"
)

func TestRenderMat(t *testing.T) {

	r := newTestRenderer(t)

	img := gocv.NewMatWithSize(600, 400, gocv.MatTypeCV8UC3)
	defer img.Close()

	orig := img.ToBytes()

	p := bendTrunk(standingPerson(), posture.RightHip, 70)
	p.BoundingBox = &posture.Rect{Left: 130, Top: 50, Right: 380, Bottom: 560}

	out, err := r.RenderMat(img, []posture.Person{p}, true)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	defer out.Close()

	if out.Rows() != img.Rows() || out.Cols() != img.Cols() || out.Type() != img.Type() {
		t.Errorf("expected %dx%d type %v, got %dx%d type %v", img.Cols(), img.Rows(),
			img.Type(), out.Cols(), out.Rows(), out.Type())
	}

	if !bytes.Equal(img.ToBytes(), orig) {
		t.Errorf("source Mat was modified")
	}

	// Mat is BGR ordered
	h := p.Coordinate(posture.LeftHip)
	s := p.Coordinate(posture.LeftShoulder)
	px := out.GetVecbAt(int((h.Y+s.Y)/2), int((h.X+s.X)/2))

	if px[0] != 0 || px[1] != 0 || px[2] != 255 {
		t.Errorf("expected danger red on left trunk segment, got BGR %v", px)
	}

	knee := p.Coordinate(posture.LeftKnee)
	px = out.GetVecbAt(int(knee.Y), int(knee.X))

	if px[0] != Gray.B || px[1] != Gray.G || px[2] != Gray.R {
		t.Errorf("expected gray knee marker, got BGR %v", px)
	}
}

func TestRenderMatError(t *testing.T) {

	r := newTestRenderer(t)

	img := gocv.NewMatWithSize(100, 100, gocv.MatTypeCV8UC3)
	defer img.Close()

	out, err := r.RenderMat(img, []posture.Person{{ID: 3}}, false)
	defer out.Close()

	if !errors.Is(err, posture.ErrKeyPointCount) {
		t.Errorf("expected ErrKeyPointCount, got %v", err)
	}

	if !out.Empty() {
		t.Errorf("expected empty Mat on error")
	}
}

func TestFontScaleForHeight(t *testing.T) {

	f := DefaultFont()

	small := f.scaleForHeight(15)
	large := f.scaleForHeight(30)

	if small <= 0 || large <= small {
		t.Errorf("expected scale to grow with height, got %f and %f", small, large)
	}

	size := gocv.GetTextSize("0", f.Face, large, f.Thickness)

	if size.Y < 27 || size.Y > 33 {
		t.Errorf("expected text height near 30, got %d", size.Y)
	}
}
