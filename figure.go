package figures

import "sort"

// Kind names a figure in the catalog.
type Kind string

// Figures known to the catalog.
const (
	KindLion      Kind = "lion"
	KindDog       Kind = "dog"
	KindDog2      Kind = "dog2"
	KindTrumpeter Kind = "trumpeter"
)

// Mode selects a variant of a figure.
type Mode string

// Modes. Anything unrecognized draws as ModeNormal.
const (
	ModeNormal  Mode = "normal"
	ModeWinking Mode = "winking"
)

// DrawFunc draws a figure into c with every shape offset from the origin
// (x, y), and returns c. When showOrigin is set a marker is appended last.
type DrawFunc func(c Container, x, y float64, mode Mode, showOrigin bool) Container

// Figure is a catalog entry.
type Figure struct {
	Kind Kind
	// Modes lists the variants the figure draws differently. Every
	// figure accepts any mode.
	Modes []Mode
	Draw  DrawFunc
}

// Supports reports whether the figure has a distinct rendering for m.
func (f Figure) Supports(m Mode) bool {
	if m == ModeNormal {
		return true
	}
	for _, fm := range f.Modes {
		if fm == m {
			return true
		}
	}
	return false
}

var catalog = map[Kind]Figure{
	KindLion:      {Kind: KindLion, Modes: []Mode{ModeWinking}, Draw: Lion},
	KindDog:       {Kind: KindDog, Draw: Dog},
	KindDog2:      {Kind: KindDog2, Draw: Dog2},
	KindTrumpeter: {Kind: KindTrumpeter, Draw: Trumpeter},
}

// Lookup returns the catalog entry for k.
func Lookup(k Kind) (Figure, bool) {
	f, ok := catalog[k]
	return f, ok
}

// Kinds lists the catalog in name order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, len(catalog))
	for k := range catalog {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// Origin marker style.
const (
	originRadius = 3
	originFill   = "deeppink"
)

func markOrigin(c Container, x, y float64, showOrigin bool) {
	if showOrigin {
		circle(c, x, y, originRadius, originFill)
	}
}

func circle(c Container, cx, cy, r float64, fill string) {
	c.Append(&Circle{Cx: cx, Cy: cy, Radius: r, Paint: Paint{Fill: fill}})
}

func ellipse(c Container, cx, cy, rx, ry float64, fill string) {
	c.Append(&Ellipse{Cx: cx, Cy: cy, Rx: rx, Ry: ry, Paint: Paint{Fill: fill}})
}

func line(c Container, x1, y1, x2, y2 float64, stroke string, width float64) {
	c.Append(&Line{X1: x1, Y1: y1, X2: x2, Y2: y2, Paint: Paint{Stroke: stroke, StrokeWidth: width}})
}

func polygon(c Container, fill string, pts ...Tuple) {
	c.Append(&PolyLine{Points: ClosedPolygon(pts...), Paint: Paint{Fill: fill}})
}
