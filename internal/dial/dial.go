package dial

import (
	"fmt"
	"math"
)

const (
	halfPi   = math.Pi / 2
	doublePi = 2 * math.Pi
)

// Range is a contiguous run of integers laid out evenly around a circle.
//
// Index 0 sits at the top of the dial; Shift rotates the whole run by whole
// steps so two rings can be placed at independent phase. Every controls which
// values are major ticks (labeled with their number).
type Range struct {
	From  int
	To    int
	Shift int
	Every int
}

// Pointer is a pointer position normalized to the dial's bounding box,
// origin top-left. Coordinates outside [0,1] are accepted and extrapolate.
type Pointer struct {
	X float64
	Y float64
}

// InvalidRangeError reports a Range with no values (From > To).
type InvalidRangeError struct {
	From int
	To   int
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid dial range: from %d > to %d", e.From, e.To)
}

// NewRange validates and returns a Range.
func NewRange(from, to, shift, every int) (Range, error) {
	r := Range{From: from, To: to, Shift: shift, Every: every}
	if err := r.Validate(); err != nil {
		return Range{}, err
	}
	return r, nil
}

func (r Range) Validate() error {
	if r.From > r.To {
		return &InvalidRangeError{From: r.From, To: r.To}
	}
	return nil
}

// Count is the number of values in the range (0 when invalid).
func (r Range) Count() int {
	if r.From > r.To {
		return 0
	}
	return r.To - r.From + 1
}

func (r Range) Values() []int {
	out := make([]int, 0, r.Count())
	for v := r.From; v <= r.To; v++ {
		out = append(out, v)
	}
	return out
}

func (r Range) Contains(v int) bool {
	return v >= r.From && v <= r.To
}

// Index returns v's position in Values, or -1.
func (r Range) Index(v int) int {
	if !r.Contains(v) {
		return -1
	}
	return v - r.From
}

// StepAngle is the angular distance between adjacent values.
func (r Range) StepAngle() float64 {
	n := r.Count()
	if n == 0 {
		return 0
	}
	return doublePi / float64(n)
}

// Rotation returns the angle in [0, 2π) at which v is drawn.
func (r Range) Rotation(v int) float64 {
	return normalizeAngle(r.StepAngle()*float64(r.Index(v)+r.Shift) + halfPi)
}

// ShowFull reports whether v is a major tick.
func (r Range) ShowFull(v int) bool {
	idx := r.Index(v)
	if idx < 0 {
		return false
	}
	every := r.Every
	if every <= 0 {
		every = 1
	}
	return idx%every == 0
}

// Tick describes one value as it sits on the dial.
type Tick struct {
	Value    int     `json:"value"`
	Rotation float64 `json:"rotation"`
	Major    bool    `json:"major"`
}

func Ticks(r Range) ([]Tick, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	out := make([]Tick, 0, r.Count())
	for _, v := range r.Values() {
		out = append(out, Tick{Value: v, Rotation: r.Rotation(v), Major: r.ShowFull(v)})
	}
	return out, nil
}

// Resolve maps a pointer position to the nearest value on the dial.
func Resolve(r Range, p Pointer) (int, error) {
	projected := Pointer{X: 0.5 - p.X, Y: 0.5 - p.Y}
	return ResolveAngle(r, AngleFromCoordinate(projected.X, projected.Y))
}

// ResolveAngle returns the value whose rotation is closest to alpha.
// Distance is the plain absolute difference (no wrap-around); on ties the
// lowest value wins.
func ResolveAngle(r Range, alpha float64) (int, error) {
	if err := r.Validate(); err != nil {
		return 0, err
	}
	alpha = normalizeAngle(alpha)

	best := r.From
	bestDiff := math.Inf(1)
	for v := r.From; v <= r.To; v++ {
		diff := math.Abs(r.Rotation(v) - alpha)
		if diff < bestDiff {
			bestDiff = diff
			best = v
		}
	}
	return best, nil
}

// AngleFromCoordinate converts a center-origin coordinate (y up, x positive
// towards the left edge) to an angle in [0, 2π). The cardinal axes are
// handled explicitly; the open quadrants use atan with per-quadrant offsets.
func AngleFromCoordinate(x, y float64) float64 {
	switch {
	// middle
	case x == 0 && y == 0:
		return halfPi
	// top
	case x == 0 && y > 0:
		return halfPi
	// bottom
	case x == 0 && y < 0:
		return 3 * math.Pi / 2
	// left
	case x > 0 && y == 0:
		return 0
	// right
	case x < 0 && y == 0:
		return math.Pi
	// up left
	case x >= 0 && y >= 0:
		return math.Atan(y / x)
	// up right
	case x < 0 && y > 0:
		return halfPi + math.Atan(-x/y)
	// down right
	case x < 0 && y < 0:
		return math.Pi + math.Atan(-y/-x)
	}
	// down left
	return 1.5*math.Pi + math.Atan(-x/y)
}

// Place is the inverse of the pointer projection: the normalized position at
// angle on a circle of the given radius (0.5 touches the bounding box).
func Place(angle, radius float64) Pointer {
	return Pointer{
		X: 0.5 - radius*math.Cos(angle),
		Y: 0.5 - radius*math.Sin(angle),
	}
}

// Distance from the dial center, in normalized units.
func (p Pointer) Distance() float64 {
	return math.Hypot(p.X-0.5, p.Y-0.5)
}

func normalizeAngle(a float64) float64 {
	a = math.Mod(a, doublePi)
	if a < 0 {
		a += doublePi
	}
	if a >= doublePi {
		a = 0
	}
	return a
}
