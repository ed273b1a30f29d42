package figures

import (
	"fmt"
	"strconv"
	"strings"

	gl "github.com/rustyoz/genericlexer"
)

// Tuple is an X,Y coordinate
type Tuple [2]float64

// ClosedPolygon returns the points attribute of a polyline through pts,
// with the first point repeated at the end so the outline is closed.
// A single point gives a two-entry path.
func ClosedPolygon(pts ...Tuple) string {
	if len(pts) == 0 {
		return ""
	}
	closed := make([]Tuple, 0, len(pts)+1)
	closed = append(closed, pts...)
	closed = append(closed, pts[0])
	return FormatPoints(closed)
}

// FormatPoints renders pts as "x,y x,y ...".
func FormatPoints(pts []Tuple) string {
	var b strings.Builder
	for i, p := range pts {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(formatNumber(p[0]))
		b.WriteByte(',')
		b.WriteString(formatNumber(p[1]))
	}
	return b.String()
}

// ParsePoints parses a polyline points attribute. Pairs may be separated
// by commas, whitespace or both.
func ParsePoints(s string) ([]Tuple, error) {
	nums, err := parseNumbers(s)
	if err != nil {
		return nil, err
	}
	if len(nums)%2 != 0 {
		return nil, fmt.Errorf("odd number of coordinates in %q", s)
	}
	pts := make([]Tuple, 0, len(nums)/2)
	for i := 0; i < len(nums); i += 2 {
		pts = append(pts, Tuple{nums[i], nums[i+1]})
	}
	return pts, nil
}

// parseNumbers lexes a comma and/or whitespace separated list of numbers.
func parseNumbers(s string) ([]float64, error) {
	l, _ := gl.Lex("numbers", s)
	var nums []float64
	for {
		l.ConsumeWhiteSpace()
		l.ConsumeComma()
		l.ConsumeWhiteSpace()
		i := l.NextItem()
		switch i.Type {
		case gl.ItemEOS:
			return nums, nil
		case gl.ItemNumber:
			n, err := parseNumber(i)
			if err != nil {
				return nil, err
			}
			nums = append(nums, n)
		default:
			return nil, fmt.Errorf("unexpected %q in number list %q", i.Value, s)
		}
	}
}

func parseNumber(i gl.Item) (float64, error) {
	n, err := strconv.ParseFloat(i.Value, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing number %q: %w", i.Value, err)
	}
	return n, nil
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
