package figures

import (
	"time"

	mt "github.com/rustyoz/Mtransform"
)

// Timing of the swap animation.
const (
	SwapDelay    = 500 * time.Millisecond
	SwapDuration = 500 * time.Millisecond
)

// Transition moves a group from its transform at scheduling time to the
// translation To, starting Delay after it was scheduled and lasting
// Duration.
type Transition struct {
	Target   *Group
	To       Tuple
	Delay    time.Duration
	Duration time.Duration

	from       mt.Transform
	start      time.Duration
	generation int
}

// end is the document time at which the transition is complete.
func (t *Transition) end() time.Duration {
	return t.start + t.Delay + t.Duration
}

// progress returns the eased completion of t at document time now.
func (t *Transition) progress(now time.Duration) float64 {
	begin := t.start + t.Delay
	switch {
	case now < begin:
		return 0
	case t.Duration <= 0 || now >= t.end():
		return 1
	}
	return easeCubicInOut(float64(now-begin) / float64(t.Duration))
}

// apply moves the translation of the target and keeps whatever scale
// it had when the transition was scheduled.
func (t *Transition) apply(now time.Duration) {
	fx, fy := translation(t.from)
	linear := mt.MultiplyTransforms(translateTransform(-fx, -fy), t.from)
	x, y := t.To[0], t.To[1]
	if p := t.progress(now); p < 1 {
		x, y = fx+(t.To[0]-fx)*p, fy+(t.To[1]-fy)*p
	}
	*t.Target.Transform = mt.MultiplyTransforms(translateTransform(x, y), linear)
}

func easeCubicInOut(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := -2*t + 2
	return 1 - u*u*u/2
}

// Schedule implements the Surface interface. Transitions on groups that
// a later Clear has orphaned are dropped.
func (d *Document) Schedule(t Transition) {
	if t.Target.Owner != d || t.Target.generation != d.generation {
		return
	}
	t.from = *t.Target.Transform
	t.start = d.elapsed
	t.generation = d.generation
	d.transitions = append(d.transitions, &t)
}

// Pending reports how many scheduled transitions have not finished yet.
func (d *Document) Pending() int {
	n := 0
	for _, t := range d.transitions {
		if d.elapsed < t.end() {
			n++
		}
	}
	return n
}

// Span returns the document time at which the last transition completes.
func (d *Document) Span() time.Duration {
	var span time.Duration
	for _, t := range d.transitions {
		if e := t.end(); e > span {
			span = e
		}
	}
	return span
}

// Advance moves the document clock to elapsed, measured from the last
// Clear, and updates the transform of every animated group.
func (d *Document) Advance(elapsed time.Duration) {
	d.elapsed = elapsed
	for _, t := range d.transitions {
		if t.generation != d.generation {
			continue
		}
		t.apply(elapsed)
	}
}

// Settle advances the document until every transition has completed.
func (d *Document) Settle() {
	d.Advance(d.Span())
}

// Swap schedules the two figures to exchange places: g1 slides by
// p2-p1 and g2 by p1-p2, both after SwapDelay and over SwapDuration.
// There is no completion signal and no cancellation; a Clear orphans
// the groups instead. Both groups must be non-nil.
func Swap(s Surface, g1 *Group, p1 Tuple, g2 *Group, p2 Tuple) {
	s.Schedule(Transition{
		Target:   g1,
		To:       Tuple{p2[0] - p1[0], p2[1] - p1[1]},
		Delay:    SwapDelay,
		Duration: SwapDuration,
	})
	s.Schedule(Transition{
		Target:   g2,
		To:       Tuple{p1[0] - p2[0], p1[1] - p2[1]},
		Delay:    SwapDelay,
		Duration: SwapDuration,
	})
}
