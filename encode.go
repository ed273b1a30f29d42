package figures

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	svg "github.com/ajstarks/svgo/float"
)

// Encode writes the document as standalone SVG. Transitions that have
// not begun yet are written as SMIL animations. Their timing is a cubic
// bezier that approximates the easing Advance uses.
func (d *Document) Encode(w io.Writer) error {
	return d.encode(w, true)
}

// EncodeFrame writes the document as it looks at the current clock,
// without animations.
func (d *Document) EncodeFrame(w io.Writer) error {
	return d.encode(w, false)
}

// errWriter remembers the first write error, since svgo does not
// report any.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(p)
	ew.err = err
	return n, err
}

func (d *Document) encode(w io.Writer, animate bool) error {
	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Decimals = d.precision()
	canvas.Start(d.Width, d.Height)
	if d.Title != "" {
		canvas.Title(d.Title)
	}
	for _, e := range d.Elements {
		d.encodeElement(canvas, ew, e, animate)
	}
	for _, g := range d.Groups {
		d.encodeGroup(canvas, ew, g, animate)
	}
	canvas.End()
	if ew.err != nil {
		return fmt.Errorf("encode svg: %w", ew.err)
	}
	return nil
}

func (d *Document) encodeGroup(canvas *svg.SVG, w io.Writer, g *Group, animate bool) {
	var pending []*Transition
	if animate {
		for _, t := range d.transitions {
			if t.Target == g && t.generation == d.generation && t.progress(d.elapsed) == 0 {
				pending = append(pending, t)
			}
		}
	}

	open := 0
	if len(pending) > 0 {
		// the animated translation sits outside the group's own
		// transform, the same order Advance composes them in
		if g.ID != "" {
			canvas.Gid(g.ID)
		} else {
			canvas.Gtransform(FormatTranslate(0, 0))
		}
		open++
		for _, t := range pending {
			writeAnimation(w, t, d.elapsed)
		}
		if !isIdentity(*g.Transform) {
			canvas.Gtransform(FormatTransform(*g.Transform))
			open++
		}
	} else {
		if !isIdentity(*g.Transform) {
			canvas.Gtransform(FormatTransform(*g.Transform))
			open++
		}
		if g.ID != "" {
			canvas.Gid(g.ID)
			open++
		}
		if open == 0 {
			canvas.Gtransform(FormatTranslate(0, 0))
			open++
		}
	}
	for _, e := range g.Elements {
		d.encodeElement(canvas, w, e, animate)
	}
	for ; open > 0; open-- {
		canvas.Gend()
	}
}

func (d *Document) encodeElement(canvas *svg.SVG, w io.Writer, e Element, animate bool) {
	switch e := e.(type) {
	case *Group:
		d.encodeGroup(canvas, w, e, animate)
	case *Circle:
		canvas.Circle(e.Cx, e.Cy, e.Radius, e.attrs()...)
	case *Ellipse:
		canvas.Ellipse(e.Cx, e.Cy, e.Rx, e.Ry, e.attrs()...)
	case *Line:
		canvas.Line(e.X1, e.Y1, e.X2, e.Y2, e.attrs()...)
	case *Rect:
		canvas.Rect(e.X, e.Y, e.Width, e.Height, e.attrs()...)
	case *PolyLine:
		pts, err := e.Tuples()
		if err != nil || len(pts) == 0 {
			return
		}
		xs := make([]float64, len(pts))
		ys := make([]float64, len(pts))
		for i, p := range pts {
			xs[i], ys[i] = p[0], p[1]
		}
		canvas.Polyline(xs, ys, e.attrs()...)
	}
}

// writeAnimation writes t as a translation from zero, relative to the
// group's current transform, which Encode emits on an inner group.
func writeAnimation(w io.Writer, t *Transition, now time.Duration) {
	fx, fy := translation(t.from)
	begin := t.start + t.Delay - now
	fmt.Fprintf(w, `<animateTransform attributeName="transform" type="translate" from="0 0" to="%s %s" begin="%s" dur="%s" fill="freeze" calcMode="spline" keyTimes="0;1" keySplines="0.645 0.045 0.355 1"/>`+"\n",
		formatNumber(t.To[0]-fx), formatNumber(t.To[1]-fy), clock(begin), clock(t.Duration))
}

func clock(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', -1, 64) + "s"
}

// precision returns the fewest decimals that keep every coordinate of d
// exact when svgo rounds it.
func (d *Document) precision() int {
	p := max(decimals(d.Width), decimals(d.Height))
	for _, e := range d.Elements {
		p = max(p, elementPrecision(e))
	}
	for _, g := range d.Groups {
		p = max(p, elementPrecision(g))
	}
	return p
}

func elementPrecision(e Element) int {
	var nums []float64
	switch e := e.(type) {
	case *Group:
		p := 0
		for _, sub := range e.Elements {
			p = max(p, elementPrecision(sub))
		}
		return p
	case *Circle:
		nums = []float64{e.Cx, e.Cy, e.Radius}
	case *Ellipse:
		nums = []float64{e.Cx, e.Cy, e.Rx, e.Ry}
	case *Line:
		nums = []float64{e.X1, e.Y1, e.X2, e.Y2}
	case *Rect:
		nums = []float64{e.X, e.Y, e.Width, e.Height}
	case *PolyLine:
		pts, _ := e.Tuples()
		for _, pt := range pts {
			nums = append(nums, pt[0], pt[1])
		}
	}
	p := 0
	for _, n := range nums {
		p = max(p, decimals(n))
	}
	return p
}

// decimals counts the digits after the point in the shortest exact
// rendering of v. Rounding v to at least that many places parses back
// to v.
func decimals(v float64) int {
	s := formatNumber(v)
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return len(s) - i - 1
	}
	return 0
}
