package dial

// Clock is the analog time dial: two concentric hour rings and a minute ring.
var (
	OuterHours = Range{From: 1, To: 12, Shift: 1, Every: 1}
	InnerHours = Range{From: 13, To: 24, Shift: 1, Every: 1}
	Minutes    = Range{From: 0, To: 59, Shift: 0, Every: 5}
)

// InnerScale is the inner hour ring's bounding box relative to the outer box.
const InnerScale = 11.0 / 16.0

// Ring identifies which ring a pointer landed on.
type Ring int

const (
	RingOuter Ring = iota
	RingInner
	RingMinute
)

func (r Ring) String() string {
	switch r {
	case RingInner:
		return "inner"
	case RingMinute:
		return "minute"
	default:
		return "outer"
	}
}

// HourRing picks the ring for a pointer given in outer-box coordinates.
func HourRing(p Pointer) Ring {
	if p.Distance() < InnerScale/2 {
		return RingInner
	}
	return RingOuter
}

// Inner re-normalizes an outer-box pointer into the inner ring's box.
func Inner(p Pointer) Pointer {
	return Pointer{
		X: 0.5 + (p.X-0.5)/InnerScale,
		Y: 0.5 + (p.Y-0.5)/InnerScale,
	}
}

// ResolveHour returns the hour (0..23) under the pointer. The inner ring
// value 24 is midnight of the same day.
func ResolveHour(p Pointer) (hour int, ring Ring) {
	ring = HourRing(p)
	var v int
	if ring == RingInner {
		v, _ = Resolve(InnerHours, Inner(p))
	} else {
		v, _ = Resolve(OuterHours, p)
	}
	return v % 24, ring
}

func ResolveMinute(p Pointer) int {
	v, _ := Resolve(Minutes, p)
	return v
}

// HourValue maps a 0..23 hour onto its ring and dial value.
func HourValue(hour int) (Ring, int) {
	hour = ((hour % 24) + 24) % 24
	switch {
	case hour == 0:
		return RingInner, 24
	case hour <= 12:
		return RingOuter, hour
	default:
		return RingInner, hour
	}
}
