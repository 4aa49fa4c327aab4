package dial

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveHour_PicksRingByRadius(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		p        Pointer
		wantHour int
		wantRing Ring
	}{
		{name: "outer top is noon", p: Pointer{X: 0.5, Y: 0.02}, wantHour: 12, wantRing: RingOuter},
		{name: "outer right is three", p: Place(OuterHours.Rotation(3), 0.45), wantHour: 3, wantRing: RingOuter},
		{name: "inner right is fifteen", p: Place(InnerHours.Rotation(15), 0.2), wantHour: 15, wantRing: RingInner},
		{name: "inner top is midnight", p: Pointer{X: 0.5, Y: 0.3}, wantHour: 0, wantRing: RingInner},
		{name: "inner bottom is eighteen", p: Pointer{X: 0.5, Y: 0.7}, wantHour: 18, wantRing: RingInner},
		{name: "outer bottom is six", p: Pointer{X: 0.5, Y: 0.98}, wantHour: 6, wantRing: RingOuter},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			hour, ring := ResolveHour(tt.p)
			assert.Equal(t, tt.wantHour, hour)
			assert.Equal(t, tt.wantRing, ring)
		})
	}
}

func TestResolveMinute(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, ResolveMinute(Pointer{X: 0.5, Y: 0}))
	assert.Equal(t, 40, ResolveMinute(Place(Minutes.Rotation(40), 0.45)))
	assert.Equal(t, 20, ResolveMinute(Place(Minutes.Rotation(20), 0.3)))
}

func TestHourValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		hour     int
		wantRing Ring
		wantVal  int
	}{
		{hour: 0, wantRing: RingInner, wantVal: 24},
		{hour: 1, wantRing: RingOuter, wantVal: 1},
		{hour: 12, wantRing: RingOuter, wantVal: 12},
		{hour: 13, wantRing: RingInner, wantVal: 13},
		{hour: 23, wantRing: RingInner, wantVal: 23},
		{hour: 24, wantRing: RingInner, wantVal: 24},
		{hour: -1, wantRing: RingInner, wantVal: 23},
	}
	for _, tt := range tests {
		ring, v := HourValue(tt.hour)
		assert.Equal(t, tt.wantRing, ring, "hour %d", tt.hour)
		assert.Equal(t, tt.wantVal, v, "hour %d", tt.hour)
	}
}

func TestInner_PreservesAngle(t *testing.T) {
	t.Parallel()

	p := Place(1.2, 0.25)
	q := Inner(p)
	assert.InDelta(t, AngleFromCoordinate(0.5-p.X, 0.5-p.Y), AngleFromCoordinate(0.5-q.X, 0.5-q.Y), 1e-12)
	assert.InDelta(t, 0.25/InnerScale, q.Distance(), 1e-12)
}
