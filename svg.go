package figures

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"time"

	mt "github.com/rustyoz/Mtransform"
)

// Surface is what the scene composer draws on: it hands out fresh
// groups, drops everything on Clear and runs scheduled transitions.
type Surface interface {
	AddGroup() *Group
	Clear()
	Schedule(t Transition)
}

// Document is a retained SVG drawing. It implements Surface.
type Document struct {
	Title    string
	Width    float64
	Height   float64
	Elements []Element
	Groups   []*Group

	generation  int
	elapsed     time.Duration
	transitions []*Transition
}

// NewDocument returns a width x height drawing framed by a red border,
// the way the figures page starts out.
func NewDocument(width, height float64) *Document {
	d := &Document{Width: width, Height: height}
	d.Append(&Rect{Width: width, Height: height, Paint: Paint{Fill: "none", Stroke: "red"}})
	return d
}

// Append adds a top-level element that belongs to no group.
func (d *Document) Append(e Element) {
	d.Elements = append(d.Elements, e)
}

// AddGroup creates a new empty top-level group.
func (d *Document) AddGroup() *Group {
	g := &Group{
		ID:         "figure" + strconv.Itoa(len(d.Groups)+1),
		Transform:  mt.NewTransform(),
		Owner:      d,
		generation: d.generation,
	}
	d.Groups = append(d.Groups, g)
	return g
}

// Clear removes every child of the drawing, border included, and starts
// a new generation. Groups handed out before are orphaned: transitions
// scheduled against them are ignored.
func (d *Document) Clear() {
	d.Elements = nil
	d.Groups = nil
	d.transitions = nil
	d.elapsed = 0
	d.generation++
}

// Lookup finds a group by id anywhere in the tree.
func (d *Document) Lookup(id string) *Group {
	for _, g := range d.Groups {
		if found := g.lookup(id); found != nil {
			return found
		}
	}
	return nil
}

// Group represents an SVG group (usually located in a 'g' XML element)
type Group struct {
	ID        string
	Elements  []Element
	Transform *mt.Transform // row, column
	Parent    *Group
	Owner     *Document

	generation int
}

// Kind implements the Element interface
func (g *Group) Kind() ElementKind { return GroupElement }

// Append implements the Container interface
func (g *Group) Append(e Element) {
	g.Elements = append(g.Elements, e)
}

// Translation returns the translation part of the group's own transform.
func (g *Group) Translation() (float64, float64) {
	return translation(*g.Transform)
}

// World returns the group transform combined with all of its parents.
func (g *Group) World() mt.Transform {
	t := *g.Transform
	for p := g.Parent; p != nil; p = p.Parent {
		t = mt.MultiplyTransforms(*p.Transform, t)
	}
	return t
}

func (g *Group) lookup(id string) *Group {
	if g.ID == id {
		return g
	}
	for _, e := range g.Elements {
		if sub, ok := e.(*Group); ok {
			if found := sub.lookup(id); found != nil {
				return found
			}
		}
	}
	return nil
}

// animateTransform is the SMIL element Encode writes for a transition.
type animateTransform struct {
	Type  string `xml:"type,attr"`
	From  string `xml:"from,attr"`
	To    string `xml:"to,attr"`
	Begin string `xml:"begin,attr"`
	Dur   string `xml:"dur,attr"`
}

func (a *animateTransform) transition(target *Group) (Transition, error) {
	if a.Type != "translate" {
		return Transition{}, fmt.Errorf("unsupported animateTransform type %q", a.Type)
	}
	to, err := parseNumbers(a.To)
	if err != nil || len(to) != 2 {
		return Transition{}, fmt.Errorf("animateTransform to %q: want two numbers", a.To)
	}
	delay, err := parseClock(a.Begin)
	if err != nil {
		return Transition{}, err
	}
	dur, err := parseClock(a.Dur)
	if err != nil {
		return Transition{}, err
	}
	return Transition{Target: target, To: Tuple{to[0], to[1]}, Delay: delay, Duration: dur}, nil
}

func parseClock(s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("clock value %q: %w", s, err)
	}
	return d, nil
}

// decodeShape decodes one shape element, or returns nil for elements
// this package does not know.
func decodeShape(decoder *xml.Decoder, tok xml.StartElement) (Element, error) {
	var e Element
	switch tok.Name.Local {
	case "rect":
		e = &Rect{}
	case "circle":
		e = &Circle{}
	case "ellipse":
		e = &Ellipse{}
	case "line":
		e = &Line{}
	case "polyline":
		e = &PolyLine{}
	default:
		return nil, decoder.Skip()
	}
	if err := decoder.DecodeElement(e, &tok); err != nil {
		return nil, err
	}
	return e, nil
}

// UnmarshalXML implements the encoding.xml.Unmarshaler interface
func (g *Group) UnmarshalXML(decoder *xml.Decoder, start xml.StartElement) error {
	for _, attr := range start.Attr {
		switch attr.Name.Local {
		case "id":
			g.ID = attr.Value
		case "transform":
			t, err := ParseTransform(attr.Value)
			if err != nil {
				return err
			}
			g.Transform = &t
		}
	}

	for {
		token, err := decoder.Token()
		if err != nil {
			return err
		}

		switch tok := token.(type) {
		case xml.StartElement:
			switch tok.Name.Local {
			case "g":
				sub := &Group{Parent: g, Owner: g.Owner, Transform: mt.NewTransform(), generation: g.generation}
				if err = decoder.DecodeElement(sub, &tok); err != nil {
					return fmt.Errorf("error decoding element of Group: %w", err)
				}
				g.Elements = append(g.Elements, sub)
			case "animateTransform":
				var a animateTransform
				if err = decoder.DecodeElement(&a, &tok); err != nil {
					return fmt.Errorf("error decoding animation of Group: %w", err)
				}
				t, err := a.transition(g)
				if err != nil {
					return err
				}
				g.Owner.Schedule(t)
			default:
				e, err := decodeShape(decoder, tok)
				if err != nil {
					return fmt.Errorf("error decoding element of Group: %w", err)
				}
				if e != nil {
					g.Elements = append(g.Elements, e)
				}
			}

		case xml.EndElement:
			return nil
		}
	}
}

// UnmarshalXML implements the encoding.xml.Unmarshaler interface
func (d *Document) UnmarshalXML(decoder *xml.Decoder, start xml.StartElement) error {
	for _, attr := range start.Attr {
		switch attr.Name.Local {
		case "width", "height":
			f, err := strconv.ParseFloat(attr.Value, 64)
			if err != nil {
				return fmt.Errorf("svg %s: %w", attr.Name.Local, err)
			}
			if attr.Name.Local == "width" {
				d.Width = f
			} else {
				d.Height = f
			}
		}
	}

	for {
		token, err := decoder.Token()
		if err != nil {
			return err
		}

		switch tok := token.(type) {
		case xml.StartElement:
			switch tok.Name.Local {
			case "g":
				g := &Group{Owner: d, Transform: mt.NewTransform(), generation: d.generation}
				if err = decoder.DecodeElement(g, &tok); err != nil {
					return fmt.Errorf("error decoding group element within SVG struct: %w", err)
				}
				d.Groups = append(d.Groups, g)
			case "title":
				if err = decoder.DecodeElement(&d.Title, &tok); err != nil {
					return fmt.Errorf("error decoding title within SVG struct: %w", err)
				}
			default:
				e, err := decodeShape(decoder, tok)
				if err != nil {
					return fmt.Errorf("error decoding element of SVG struct: %w", err)
				}
				if e != nil {
					d.Elements = append(d.Elements, e)
				}
			}

		case xml.EndElement:
			if tok.Name.Local == "svg" {
				return nil
			}
		}
	}
}

// Decode parses an SVG document written by Encode (or any SVG made of
// the same elements).
func Decode(r io.Reader) (*Document, error) {
	var d Document
	if err := xml.NewDecoder(r).Decode(&d); err != nil {
		return nil, fmt.Errorf("decode svg: %w", err)
	}
	return &d, nil
}
