package render

import (
	"github.com/swdee/go-posture"
	"math"
	"strconv"
)

// Identifier renders the person's bounding box and id label.  The label is
// placed above the box with its anchor kept inside the image origin.  Persons
// without a bounding box are skipped.
func Identifier(c Canvas, p posture.Person, style *Style) {

	box := p.BoundingBox

	if box == nil {
		return
	}

	labelPos := posture.Pt(
		math.Max(0, box.Left),
		math.Max(0, box.Top)-style.IDMargin,
	)

	c.DrawRect(*box, style.Skeleton)
	c.DrawText(strconv.Itoa(p.ID), labelPos, style.Text)
}
