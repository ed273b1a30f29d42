package figures

// Selection picks one figure and where to draw it. An empty Mode draws
// the normal variant.
type Selection struct {
	Kind Kind    `toml:"kind"`
	X    float64 `toml:"x"`
	Y    float64 `toml:"y"`
	Mode Mode    `toml:"mode"`
}

// Origin returns the selection's coordinates as a Tuple.
func (s Selection) Origin() Tuple {
	return Tuple{s.X, s.Y}
}

// Scene is two figures that trade places.
type Scene struct {
	First, Second *Group
}

// Compose draws first and second into two fresh groups on s and
// schedules them to swap positions. A kind missing from the catalog
// leaves its group empty.
func Compose(s Surface, first, second Selection, showOrigin bool) *Scene {
	sc := &Scene{
		First:  place(s, first, showOrigin),
		Second: place(s, second, showOrigin),
	}
	Swap(s, sc.First, first.Origin(), sc.Second, second.Origin())
	return sc
}

func place(s Surface, sel Selection, showOrigin bool) *Group {
	g := s.AddGroup()
	f, ok := Lookup(sel.Kind)
	if !ok {
		return g
	}
	mode := sel.Mode
	if mode == "" {
		mode = ModeNormal
	}
	f.Draw(g, sel.X, sel.Y, mode, showOrigin)
	return g
}
