package figures

// Circle is an SVG circle element
type Circle struct {
	ID     string  `xml:"id,attr,omitempty"`
	Cx     float64 `xml:"cx,attr"`
	Cy     float64 `xml:"cy,attr"`
	Radius float64 `xml:"r,attr"`
	Paint
}

// Kind implements the Element interface
func (c *Circle) Kind() ElementKind { return CircleElement }

// Ellipse is an SVG ellipse element
type Ellipse struct {
	ID string  `xml:"id,attr,omitempty"`
	Cx float64 `xml:"cx,attr"`
	Cy float64 `xml:"cy,attr"`
	Rx float64 `xml:"rx,attr"`
	Ry float64 `xml:"ry,attr"`
	Paint
}

// Kind implements the Element interface
func (e *Ellipse) Kind() ElementKind { return EllipseElement }

// Rect is an SVG rect element. Only the canvas border uses it.
type Rect struct {
	ID     string  `xml:"id,attr,omitempty"`
	X      float64 `xml:"x,attr"`
	Y      float64 `xml:"y,attr"`
	Width  float64 `xml:"width,attr"`
	Height float64 `xml:"height,attr"`
	Paint
}

// Kind implements the Element interface
func (r *Rect) Kind() ElementKind { return RectElement }
