package nodeflow

import "math"

// Guide is an alignment line in canvas space. A vertical guide sits at
// X = Pos and spans From..To along Y; a horizontal guide the other way round.
type Guide struct {
	Vertical bool
	Pos      float64
	From, To float64
}

// Aligner snaps a dragged node's edges and centers to those of its siblings
// and remembers the guides of the last snap.
type Aligner struct {
	guides []Guide
}

// edgeMatch is the best snap found on one axis.
type edgeMatch struct {
	found bool
	diff  float64
	pos   float64
	other Rect
}

// Align returns candidate moved so that the nearest left/center/right edge
// (and top/middle/bottom edge) of n lies on one of the others' edges, if
// one is within distance. The guides for the applied snaps replace any
// previous ones.
func (a *Aligner) Align(n *Node, candidate Vec2, others []*Node, distance float64) Vec2 {
	a.guides = a.guides[:0]
	r := Rect{X: candidate.X, Y: candidate.Y, Width: n.Width, Height: n.Height}

	var mx, my edgeMatch
	for _, o := range others {
		if o == n || !o.Visible {
			continue
		}
		ob := o.Bounds()
		matchAxis(&mx, [3]float64{r.X, r.X + r.Width/2, r.X + r.Width},
			[3]float64{ob.X, ob.X + ob.Width/2, ob.X + ob.Width}, distance, ob)
		matchAxis(&my, [3]float64{r.Y, r.Y + r.Height/2, r.Y + r.Height},
			[3]float64{ob.Y, ob.Y + ob.Height/2, ob.Y + ob.Height}, distance, ob)
	}

	if mx.found {
		r.X += mx.diff
	}
	if my.found {
		r.Y += my.diff
	}
	if mx.found {
		a.guides = append(a.guides, Guide{
			Vertical: true,
			Pos:      mx.pos,
			From:     math.Min(r.Y, mx.other.Y),
			To:       math.Max(r.Y+r.Height, mx.other.Y+mx.other.Height),
		})
	}
	if my.found {
		a.guides = append(a.guides, Guide{
			Pos:  my.pos,
			From: math.Min(r.X, my.other.X),
			To:   math.Max(r.X+r.Width, my.other.X+my.other.Width),
		})
	}
	return Vec2{r.X, r.Y}
}

// matchAxis records in m the smallest edge difference within distance.
func matchAxis(m *edgeMatch, edges, targets [3]float64, distance float64, other Rect) {
	for _, e := range edges {
		for _, t := range targets {
			d := t - e
			if math.Abs(d) > distance {
				continue
			}
			if !m.found || math.Abs(d) < math.Abs(m.diff) {
				*m = edgeMatch{found: true, diff: d, pos: t, other: other}
			}
		}
	}
}

// Guides returns the guides of the last snap. The returned slice MUST NOT
// be mutated.
func (a *Aligner) Guides() []Guide {
	return a.guides
}

// Clear removes all guides.
func (a *Aligner) Clear() {
	a.guides = a.guides[:0]
}
