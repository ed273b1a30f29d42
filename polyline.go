package figures

// PolyLine is a set of connected line segments. The figures always
// build closed ones with ClosedPolygon.
type PolyLine struct {
	ID     string `xml:"id,attr,omitempty"`
	Points string `xml:"points,attr"`
	Paint
}

// Kind implements the Element interface
func (p *PolyLine) Kind() ElementKind { return PolyLineElement }

// Tuples parses the points attribute.
func (p *PolyLine) Tuples() ([]Tuple, error) {
	return ParsePoints(p.Points)
}

// Line is an SVG line element
type Line struct {
	ID string  `xml:"id,attr,omitempty"`
	X1 float64 `xml:"x1,attr"`
	Y1 float64 `xml:"y1,attr"`
	X2 float64 `xml:"x2,attr"`
	Y2 float64 `xml:"y2,attr"`
	Paint
}

// Kind implements the Element interface
func (l *Line) Kind() ElementKind { return LineElement }
