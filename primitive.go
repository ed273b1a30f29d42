package figures

import "html"

// ElementKind tells an encoder which SVG element it has to write
type ElementKind int

// These are the element kinds a Document can hold
const (
	GroupElement ElementKind = iota
	CircleElement
	EllipseElement
	LineElement
	PolyLineElement
	RectElement
)

func (k ElementKind) String() string {
	switch k {
	case GroupElement:
		return "g"
	case CircleElement:
		return "circle"
	case EllipseElement:
		return "ellipse"
	case LineElement:
		return "line"
	case PolyLineElement:
		return "polyline"
	case RectElement:
		return "rect"
	}
	return "unknown"
}

// Element is anything that can be appended to a Container. Once
// appended, an element is never read back by the figure code.
type Element interface {
	Kind() ElementKind
}

// Container accepts elements. Groups and Documents are containers.
type Container interface {
	Append(e Element)
}

// Paint holds the presentation attributes shared by all shapes.
type Paint struct {
	Fill        string  `xml:"fill,attr,omitempty"`
	Stroke      string  `xml:"stroke,attr,omitempty"`
	StrokeWidth float64 `xml:"stroke-width,attr,omitempty"`
}

// attrs returns the paint as extra attributes in the form svgo expects.
func (p Paint) attrs() []string {
	var s []string
	if p.Fill != "" {
		s = append(s, attr("fill", p.Fill))
	}
	if p.Stroke != "" {
		s = append(s, attr("stroke", p.Stroke))
	}
	if p.StrokeWidth != 0 {
		s = append(s, attr("stroke-width", formatNumber(p.StrokeWidth)))
	}
	return s
}

func attr(name, value string) string {
	return name + `="` + html.EscapeString(value) + `"`
}
