package figures

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/cheekybits/is"
	mt "github.com/rustyoz/Mtransform"
	"github.com/stretchr/testify/require"
)

const testSvg = `<?xml version="1.0" encoding="utf-8"?>
<!-- Generator: Adobe Illustrator 15.0.2, SVG Export Plug-In . SVG Version: 6.00 Build 0)  -->
<!DOCTYPE svg PUBLIC "-//W3C//DTD SVG 1.1//EN" "http://www.w3.org/Graphics/SVG/1.1/DTD/svg11.dtd">
<svg version="1.1" id="Layer_1" xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" x="0px" y="0px"
	 width="595.201" height="841.922" viewBox="0 0 595.201 841.922" enable-background="new 0 0 595.201 841.922"
	 xml:space="preserve">
<rect x="207" y="53" fill="#009FE3" width="181.667" height="85.333"/>
<text transform="matrix(1 0 0 1 232.3306 107.5952)" fill="#FFFFFF" font-family="'ArialMT'" font-size="31.9752">PODIUM</text>
<g transform="translate(10,20)">
	<g id="inner" transform="scale(2)">
		<polyline points="0,0 10,0 5,10 0,0" fill="black"/>
		<circle cx="1" cy="2" r="3"/>
	</g>
</g>
</svg>`

func TestDecode(t *testing.T) {
	is := is.New(t)

	d, err := Decode(strings.NewReader(testSvg))
	is.NoErr(err)
	is.NotNil(d)
	is.Equal(d.Width, 595.201)
	is.Equal(d.Height, 841.922)

	is.Equal(len(d.Elements), 1)
	rect, ok := d.Elements[0].(*Rect)
	is.True(ok)
	is.Equal(rect.Fill, "#009FE3")
	is.Equal(rect.Width, 181.667)

	inner := d.Lookup("inner")
	is.NotNil(inner)
	is.Equal(len(inner.Elements), 2)
	x, y := worldApply(inner, 1, 1)
	is.Equal(x, 12.0)
	is.Equal(y, 22.0)

	pts, err := inner.Elements[0].(*PolyLine).Tuples()
	is.NoErr(err)
	is.Equal(len(pts), 4)

	is.Nil(d.Lookup("missing"))
}

func TestDecodeErrors(t *testing.T) {
	for _, in := range []string{
		`<svg><g transform="rotate(30)"></g></svg>`,
		`<svg><g id="a"><animateTransform type="rotate" to="1"/></g></svg>`,
		`<svg><g id="a"><animateTransform type="translate" to="1 2" dur="soon"/></g></svg>`,
		`<svg><circle cx="one"/></svg>`,
		`<svg><g>`,
		`<svg width="500px" height="500"></svg>`,
		`<svg width="500" height="tall"></svg>`,
	} {
		_, err := Decode(strings.NewReader(in))
		require.Error(t, err, in)
	}
}

// sameShapes compares elements, polylines by their parsed points since
// encoders may format numbers differently.
func sameShapes(t *testing.T, want, got []Element) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		wp, ok := want[i].(*PolyLine)
		if !ok {
			require.Equal(t, want[i], got[i], "element %d", i)
			continue
		}
		gp, ok := got[i].(*PolyLine)
		require.True(t, ok, "element %d is %T", i, got[i])
		require.Equal(t, wp.Paint, gp.Paint, "element %d", i)
		wpts, err := wp.Tuples()
		require.NoError(t, err)
		gpts, err := gp.Tuples()
		require.NoError(t, err)
		require.Equal(t, wpts, gpts, "element %d", i)
	}
}

func roundTrip(t *testing.T, d *Document, encode func(*Document, *bytes.Buffer) error) *Document {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, encode(d, &buf))
	got, err := Decode(&buf)
	require.NoError(t, err, buf.String())
	return got
}

func animated(d *Document, b *bytes.Buffer) error { return d.Encode(b) }
func frame(d *Document, b *bytes.Buffer) error    { return d.EncodeFrame(b) }

func TestEncodeAnimatedScene(t *testing.T) {
	is := is.New(t)
	d, sc := newScene(t, Selection{Kind: KindLion, X: 100, Y: 100}, Selection{Kind: KindDog2, X: 300, Y: 300}, true)

	got := roundTrip(t, d, animated)
	is.Equal(got.Width, 500.0)
	is.Equal(len(got.Elements), 0)

	g1, g2 := got.Lookup("figure1"), got.Lookup("figure2")
	is.NotNil(g1)
	is.NotNil(g2)
	sameShapes(t, sc.First.Elements, g1.Elements)
	sameShapes(t, sc.Second.Elements, g2.Elements)

	is.Equal(got.Pending(), 2)
	is.Equal(got.Span(), time.Second)
	got.Settle()
	x, y := worldApply(g1, 0, 0)
	is.Equal(x, 200.0)
	is.Equal(y, 200.0)
	x, y = worldApply(g2, 0, 0)
	is.Equal(x, -200.0)
	is.Equal(y, -200.0)
}

func TestEncodeSettledScene(t *testing.T) {
	is := is.New(t)
	d, _ := newScene(t, Selection{Kind: KindTrumpeter, X: 50, Y: 60}, Selection{Kind: KindDog, X: 250, Y: 360}, false)
	d.Settle()

	for _, encode := range []func(*Document, *bytes.Buffer) error{animated, frame} {
		got := roundTrip(t, d, encode)
		is.Equal(got.Pending(), 0)
		x, y := worldApply(got.Lookup("figure1"), 0, 0)
		is.Equal(x, 200.0)
		is.Equal(y, 300.0)
		x, y = worldApply(got.Lookup("figure2"), 0, 0)
		is.Equal(x, -200.0)
		is.Equal(y, -300.0)
	}
}

func TestEncodeFrameOmitsAnimation(t *testing.T) {
	d, _ := newScene(t, Selection{Kind: KindLion, X: 0, Y: 0}, Selection{Kind: KindDog, X: 10, Y: 10}, false)

	var buf bytes.Buffer
	require.NoError(t, d.EncodeFrame(&buf))
	require.NotContains(t, buf.String(), "animateTransform")

	buf.Reset()
	require.NoError(t, d.Encode(&buf))
	require.Contains(t, buf.String(), "animateTransform")
}

func TestEncodeMidSwap(t *testing.T) {
	d, _ := newScene(t, Selection{Kind: KindLion, X: 100, Y: 100}, Selection{Kind: KindDog, X: 300, Y: 300}, false)
	d.Advance(750 * time.Millisecond)

	got := roundTrip(t, d, animated)
	require.Equal(t, 0, got.Pending())
	x, y := worldApply(got.Lookup("figure1"), 0, 0)
	require.Equal(t, Tuple{100, 100}, Tuple{x, y})
}

func TestEncodeAnimationFromOffset(t *testing.T) {
	d := NewDocument(100, 100)
	g := d.AddGroup()
	circle(g, 1, 1, 1, "black")
	*g.Transform = translateTransform(10, 10)
	d.Schedule(Transition{Target: g, To: Tuple{50, 50}, Delay: time.Second, Duration: time.Second})

	got := roundTrip(t, d, animated)
	require.Len(t, got.Elements, 1)
	require.Equal(t, 2*time.Second, got.Span())

	got.Settle()
	outer := got.Lookup("figure1")
	x, y := worldApply(outer, 0, 0)
	require.Equal(t, Tuple{40, 40}, Tuple{x, y})
	inner, ok := outer.Elements[0].(*Group)
	require.True(t, ok)
	x, y = worldApply(inner, 0, 0)
	require.Equal(t, Tuple{50, 50}, Tuple{x, y})
}

func TestEncodeAnimationKeepsScale(t *testing.T) {
	d := NewDocument(100, 100)
	g := d.AddGroup()
	circle(g, 1, 1, 1, "black")
	tr, err := ParseTransform("translate(10,10) scale(2)")
	require.NoError(t, err)
	*g.Transform = tr
	d.Schedule(Transition{Target: g, To: Tuple{50, 50}, Duration: time.Second})

	got := roundTrip(t, d, animated)
	inner, ok := got.Lookup("figure1").Elements[0].(*Group)
	require.True(t, ok)

	d.Settle()
	got.Settle()
	for _, world := range []mt.Transform{*g.Transform, inner.World()} {
		x, y := world.Apply(0, 0)
		require.Equal(t, Tuple{50, 50}, Tuple{x, y})
		x, y = world.Apply(1, 1)
		require.Equal(t, Tuple{52, 52}, Tuple{x, y})
	}
}

func TestEncodeSmoothTiming(t *testing.T) {
	d, _ := newScene(t, Selection{Kind: KindLion}, Selection{Kind: KindDog}, false)
	var buf bytes.Buffer
	require.NoError(t, d.Encode(&buf))
	out := buf.String()
	require.Contains(t, out, `calcMode="spline"`)
	require.Contains(t, out, `keyTimes="0;1"`)
	require.Contains(t, out, `keySplines="0.645 0.045 0.355 1"`)
}

func TestEncodeFractionalOrigin(t *testing.T) {
	d, sc := newScene(t, Selection{Kind: KindLion, X: 100.125, Y: 0.004}, Selection{Kind: KindDog, X: 300, Y: 300}, true)

	for _, encode := range []func(*Document, *bytes.Buffer) error{animated, frame} {
		got := roundTrip(t, d, encode)
		g := got.Lookup("figure1")
		require.NotNil(t, g)
		sameShapes(t, sc.First.Elements, g.Elements)

		marker, ok := g.Elements[len(g.Elements)-1].(*Circle)
		require.True(t, ok)
		require.Equal(t, 100.125, marker.Cx)
		require.Equal(t, 0.004, marker.Cy)
	}
}

func TestEncodeEscapesAttributes(t *testing.T) {
	d := NewDocument(10, 10)
	g := d.AddGroup()
	g.ID = `a&"b"`
	g.Append(&Circle{Cx: 1, Cy: 1, Radius: 1, Paint: Paint{Fill: `url("#a")&b`, Stroke: "<none>"}})

	for _, encode := range []func(*Document, *bytes.Buffer) error{animated, frame} {
		got := roundTrip(t, d, encode)
		found := got.Lookup(`a&"b"`)
		require.NotNil(t, found)
		require.Equal(t, g.Elements, found.Elements)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestEncodeWriteError(t *testing.T) {
	d, _ := newScene(t, Selection{Kind: KindLion}, Selection{Kind: KindDog}, false)
	err := d.Encode(failingWriter{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "disk full")
}

// worldApply maps (x, y) through g's world transform. World returns a
// value and Apply has a pointer receiver, so the result needs a variable.
func worldApply(g *Group, x, y float64) (float64, float64) {
	w := g.World()
	return w.Apply(x, y)
}
