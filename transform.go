package figures

import (
	"fmt"
	"strings"

	mt "github.com/rustyoz/Mtransform"
)

// ParseTransform parses an SVG transform attribute. Only translate and
// scale are understood, which covers everything Encode writes.
func ParseTransform(s string) (mt.Transform, error) {
	t := mt.Identity()
	rest := strings.TrimSpace(s)
	for rest != "" {
		open := strings.IndexByte(rest, '(')
		end := strings.IndexByte(rest, ')')
		if open < 0 || end < open {
			return t, fmt.Errorf("malformed transform %q", s)
		}
		name := strings.TrimSpace(rest[:open])
		args, err := parseNumbers(rest[open+1 : end])
		if err != nil {
			return t, fmt.Errorf("transform %q: %w", s, err)
		}

		op := mt.Identity()
		switch {
		case name == "translate" && len(args) == 1:
			op.Translate(args[0], 0)
		case name == "translate" && len(args) == 2:
			op.Translate(args[0], args[1])
		case name == "scale" && len(args) == 1:
			op.Scale(args[0], args[0])
		case name == "scale" && len(args) == 2:
			op.Scale(args[0], args[1])
		default:
			return t, fmt.Errorf("unsupported transform %s with %d arguments in %q", name, len(args), s)
		}
		t = mt.MultiplyTransforms(t, op)

		rest = strings.TrimLeft(rest[end+1:], " \t\n,")
	}
	return t, nil
}

// FormatTranslate renders a translation the way the swap animation
// leaves it on a group, e.g. "translate(200,200)".
func FormatTranslate(dx, dy float64) string {
	return "translate(" + formatNumber(dx) + "," + formatNumber(dy) + ")"
}

// FormatTransform renders t as translate and, when needed, scale.
// Rotation and skew are never produced by this package and are dropped.
func FormatTransform(t mt.Transform) string {
	e, f := t.Apply(0, 0)
	ax, _ := t.Apply(1, 0)
	_, dy := t.Apply(0, 1)
	a, d := ax-e, dy-f
	if a == 1 && d == 1 {
		return FormatTranslate(e, f)
	}
	return FormatTranslate(e, f) + " scale(" + formatNumber(a) + "," + formatNumber(d) + ")"
}

func translation(t mt.Transform) (float64, float64) {
	return t.Apply(0, 0)
}

func translateTransform(dx, dy float64) mt.Transform {
	t := mt.Identity()
	t.Translate(dx, dy)
	return t
}

func isIdentity(t mt.Transform) bool {
	e, f := t.Apply(0, 0)
	ax, ay := t.Apply(1, 0)
	bx, by := t.Apply(0, 1)
	return e == 0 && f == 0 && ax == 1 && ay == 0 && bx == 0 && by == 1
}
