package galaxy

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/phil-mansfield/gobubble/geom"
	"github.com/stretchr/testify/assert"
)

// cornerSource always returns the largest allowed value, which puts every
// candidate point in the corner of the bounding square.
type cornerSource struct{ calls int }

func (s *cornerSource) Intn(n int) int {
	s.calls++
	return n - 1
}

// seqSource cycles through a fixed list of values.
type seqSource struct {
	vals []int
	i    int
}

func (s *seqSource) Intn(n int) int {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}

func TestDisplayRadius(t *testing.T) {
	b, err := geom.NewBubble(200)
	assert.NoError(t, err)
	assert.Equal(t, 310, DisplayRadius(geom.MilkyWay(), b))

	small, err := geom.NewBubble(100)
	assert.NoError(t, err)
	assert.True(t, DisplayRadius(geom.MilkyWay(), small) > 310)
}

func TestDisplayLimit(t *testing.T) {
	table := []struct {
		diameter float64
		limit    int
	}{
		{500, 100000}, {201, 100000}, {200, 200000}, {199, 500000},
		{51, 500000}, {50, 1000000}, {1, 1000000},
	}
	for _, test := range table {
		assert.Equal(t, test.limit, DisplayLimit(test.diameter),
			"d = %g", test.diameter)
	}

	assert.Equal(t, 2500, DisplayCount(2500, 200))
	assert.Equal(t, 200000, DisplayCount(1000000, 200))
}

func TestDiscPoints(t *testing.T) {
	src := rand.New(rand.NewSource(7))
	pts, err := DiscPoints(src, 50, 2000)
	assert.NoError(t, err)
	assert.Len(t, pts, 2000)

	left, right := 0, 0
	for _, p := range pts {
		assert.True(t, math.Hypot(p.X, p.Y) <= 50, "%v", p)
		assert.Equal(t, math.Floor(p.X), p.X)
		if p.X < 0 {
			left++
		} else if p.X > 0 {
			right++
		}
	}
	assert.InDelta(t, left, right, 200)

	pts, err = DiscPoints(src, 0, 3)
	assert.NoError(t, err)
	assert.Equal(t, []Point{{0, 0}, {0, 0}, {0, 0}}, pts)

	_, err = DiscPoints(src, -1, 3)
	assert.Error(t, err)
}

func TestDiscPointRejectionLimit(t *testing.T) {
	src := &cornerSource{}
	_, err := DiscPoint(src, 10)
	assert.True(t, errors.Is(err, ErrRejectionLimit))
	assert.Equal(t, 2*MaxAttempts, src.calls)

	_, err = DiscPoints(&cornerSource{}, 10, 5)
	assert.True(t, errors.Is(err, ErrRejectionLimit))
}

func TestHaze(t *testing.T) {
	src := rand.New(rand.NewSource(1))
	pts := Haze(src, 100, SimulateStyle)
	assert.True(t, len(pts) <= 700)
	// pi/4 of the square lies inside the disc.
	assert.InDelta(t, 700*math.Pi/4, len(pts), 70)
	for _, p := range pts {
		assert.True(t, math.Hypot(p.X, p.Y) <= 100)
	}

	assert.Empty(t, Haze(&cornerSource{}, 10, SimulateStyle))

	// Every attempt lands on the rim at (10, 0).
	rim := &seqSource{vals: []int{20, 10}}
	assert.Len(t, Haze(rim, 10, SimulateStyle), 70)
	assert.Empty(t, Haze(rim, 10, ExpansionStyle))

	assert.InDelta(t, 500*math.Pi/4,
		len(Haze(rand.New(rand.NewSource(1)), 100, ExpansionStyle)), 60)
}

func TestArms(t *testing.T) {
	arms := Arms(310)
	assert.Len(t, arms, 8)
	for i, arm := range arms {
		assert.Equal(t, i%2 == 1, arm.Trailing, "arm %d", i)
		assert.Equal(t, 310.0, math.Abs(arm.Radius))
	}

	src := rand.New(rand.NewSource(1))
	stars := arms[0].Stars(src, 310, SimulateStyle)
	assert.Len(t, stars, 520)
	// The first star sits at the arm radius, up to the jitter.
	radius := 310.0
	jitter := float64(int(fuzzFraction*radius)) * arms[0].Fuzz
	assert.Equal(t, 13.5, jitter)
	assert.InDelta(t, 310, stars[0].X, jitter+1e-9)
	assert.InDelta(t, 0, stars[0].Y, jitter+1e-9)
	for _, s := range stars {
		assert.True(t, s.Size == 1 || s.Size == 2)
		assert.True(t, math.Hypot(s.X, s.Y) <= 310+2*jitter)
	}

	for _, s := range arms[1].Stars(src, 310, SimulateStyle) {
		assert.Equal(t, 0, s.Size)
	}
}

func TestStarsWithoutFuzz(t *testing.T) {
	arm := Arm{Radius: 10, Rotation: 0, Fuzz: 1.5}
	// With a radius of 10 the jitter rounds down to zero.
	stars := arm.Stars(&cornerSource{}, 10, SimulateStyle)
	assert.InDelta(t, 10, stars[0].X, 1e-12)
	r90 := 10 * math.Exp(spiralB*math.Pi/2)
	assert.InDelta(t, 0, stars[90].X, 1e-9)
	assert.InDelta(t, r90, stars[90].Y, 1e-9)

	// Expansion maps step two degrees at a time.
	stars = arm.Stars(&cornerSource{}, 10, ExpansionStyle)
	assert.Len(t, stars, 325)
	assert.InDelta(t, 0, stars[45].X, 1e-9)
	assert.InDelta(t, r90, stars[45].Y, 1e-9)
}

func TestExpansionRadii(t *testing.T) {
	rings, err := ExpansionRadii(10000000, 10, 0.005, 200)
	assert.NoError(t, err)
	assert.Len(t, rings, 11)
	assert.Equal(t, 0, rings[0].Years)
	assert.Equal(t, 10000000, rings[10].Years)
	assert.InDelta(t, 25, rings[0].Radius, 1e-9)
	assert.InDelta(t, 275, rings[10].Radius, 1e-9)

	_, err = ExpansionRadii(0, 10, 0.005, 200)
	assert.Error(t, err)
	_, err = ExpansionRadii(100, 10, 1.5, 200)
	assert.Error(t, err)
	_, err = ExpansionRadii(100, 10, 0.5, 0)
	assert.Error(t, err)
}

func TestCircle(t *testing.T) {
	pts := Circle(Point{1, 2}, 3, 16)
	assert.Len(t, pts, 17)
	for _, p := range pts {
		assert.InDelta(t, 3, math.Hypot(p.X-1, p.Y-2), 1e-9)
	}
	assert.InDelta(t, pts[0].X, pts[16].X, 1e-9)
}

func TestNewMap(t *testing.T) {
	b, err := geom.NewBubble(200)
	assert.NoError(t, err)
	src := rand.New(rand.NewSource(5))

	m, err := NewMap(src, geom.MilkyWay(), b, 1000)
	assert.NoError(t, err)
	assert.Equal(t, 310, m.Radius)
	assert.Len(t, m.Stars, 8*SimulateStyle.ArmSteps)
	assert.Len(t, m.Civilizations, 1000)
	assert.NotEmpty(t, m.Haze)
}

func TestNewStarMap(t *testing.T) {
	m := NewStarMap(rand.New(rand.NewSource(2)), 250, SimulateStyle)
	assert.Equal(t, 250, m.Radius)
	assert.Len(t, m.Stars, 8*520)
	assert.Empty(t, m.Civilizations)
}

func TestNewExpansionMap(t *testing.T) {
	m := NewExpansionMap(rand.New(rand.NewSource(2)), 250)
	assert.Equal(t, 250, m.Radius)
	assert.Len(t, m.Stars, 8*325)
	assert.True(t, len(m.Haze) <= 250*5)
	for _, p := range m.Haze {
		assert.True(t, math.Hypot(p.X, p.Y) < 250)
	}
	assert.Empty(t, m.Civilizations)
}
