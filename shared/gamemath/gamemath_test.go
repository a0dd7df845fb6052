package gamemath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegmentHit(t *testing.T) {
	box := BoundsAround(Vec3(100, 0, 0), 10, 50)

	tests := []struct {
		name       string
		start, end [3]float64
		hit        bool
		frac       float64
	}{
		{"through the middle", [3]float64{0, 0, 20}, [3]float64{200, 0, 20}, true, 0.45},
		{"over the top", [3]float64{0, 0, 80}, [3]float64{200, 0, 80}, false, 0},
		{"beside", [3]float64{0, 30, 20}, [3]float64{200, 30, 20}, false, 0},
		{"stops short", [3]float64{0, 0, 20}, [3]float64{50, 0, 20}, false, 0},
		{"starts inside", [3]float64{100, 0, 20}, [3]float64{200, 0, 20}, true, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Vec3(tt.start[0], tt.start[1], tt.start[2])
			e := Vec3(tt.end[0], tt.end[1], tt.end[2])
			frac, ok := SegmentHit(s, e, box)
			require.Equal(t, tt.hit, ok)
			if ok {
				assert.InDelta(t, tt.frac, frac, 1e-9)
			}
		})
	}
}

func TestExpandActsAsSweptBox(t *testing.T) {
	box := BoundsAround(Vec3(100, 0, 0), 10, 50)
	s, e := Vec3(0, 15, 20), Vec3(200, 15, 20)

	_, ok := SegmentHit(s, e, box)
	assert.False(t, ok)
	_, ok = SegmentHit(s, e, box.Expand(Vec3(10, 10, 10)))
	assert.True(t, ok)
	assert.True(t, box.Expand(Vec3(10, 10, 10)).Contains(Vec3(100, 19, -5)))
}

func TestSafeNormalOfZeroIsZero(t *testing.T) {
	assert.Equal(t, Zero(), SafeNormal(Zero()))
	n := SafeNormal2D(Vec3(3, 4, 12))
	assert.InDelta(t, 0.6, n[0], 1e-9)
	assert.InDelta(t, 0.8, n[1], 1e-9)
	assert.Equal(t, 0.0, n[2])
}

func TestCrossGivesRightHandSide(t *testing.T) {
	right := Cross(Vec3(1, 0, 0), Up)
	assert.InDelta(t, 0, right[0], 1e-9)
	assert.InDelta(t, -1, right[1], 1e-9)
	assert.InDelta(t, 0, right[2], 1e-9)
}

func TestYawHelpers(t *testing.T) {
	f := ForwardFromYaw(math.Pi / 2)
	assert.InDelta(t, 0, f[0], 1e-9)
	assert.InDelta(t, 1, f[1], 1e-9)
	assert.InDelta(t, math.Pi/2, YawOf(f), 1e-9)

	r := RotateByYaw(Vec3(10, 0, 5), math.Pi/2)
	assert.InDelta(t, 0, r[0], 1e-9)
	assert.InDelta(t, 10, r[1], 1e-9)
	assert.Equal(t, 5.0, r[2])
}

func TestApproachAngleWrapsTheShortWay(t *testing.T) {
	got := ApproachAngle(math.Pi-0.1, -math.Pi+0.1, 0.05)
	assert.InDelta(t, math.Pi-0.05, got, 1e-9)

	assert.Equal(t, 1.0, ApproachAngle(0.9, 1.0, 0.5))
}

type fixedRoller float64

func (r fixedRoller) Float64() float64 { return float64(r) }
func (r fixedRoller) Intn(n int) int { return 0 }

func TestRandHelpers(t *testing.T) {
	assert.Equal(t, 250.0, RandRange(fixedRoller(0.25), 200, 400))
	d := RandUnit2D(fixedRoller(0.25))
	assert.InDelta(t, 0, d[0], 1e-9)
	assert.InDelta(t, 1, d[1], 1e-9)
	assert.InDelta(t, 1, d.Magnitude(), 1e-9)
}
