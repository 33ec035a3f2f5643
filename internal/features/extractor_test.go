package features

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harrison/clickprint/internal/models"
)

// referenceSession is the L-shaped attempt on a 2×2 grid over a 100×100 image.
func referenceSession() *models.Session {
	return &models.Session{
		Trajectory: []models.Point{
			{X: 0, Y: 0, T: 0},
			{X: 10, Y: 0, T: 100},
			{X: 10, Y: 10, T: 200},
		},
		Clicks: []models.ClickData{
			{X: 0, Y: 0, T: 0, GridIndex: 0},
			{X: 10, Y: 10, T: 200, GridIndex: 3},
		},
		GridSize:        2,
		ImageDimensions: models.ImageDimensions{Width: 100, Height: 100},
	}
}

func TestExtract_ReferenceScenario(t *testing.T) {
	f := Extract(referenceSession())

	assert.InDelta(t, 20.0, f.PathLength, 1e-12)
	assert.InDelta(t, 10*math.Sqrt2, f.DirectPath, 1e-12)
	assert.InDelta(t, math.Sqrt2, f.DirectnessRatio, 1e-9)

	assert.InDelta(t, 200.0, f.MeanInterClickLatency, 1e-12)
	assert.Equal(t, 0.0, f.StdDevInterClickLatency)
	assert.Equal(t, 0.0, f.LatencyEntropy)

	assert.InDelta(t, 0.1, f.MeanVelocity, 1e-12)
	assert.InDelta(t, 0.0, f.StdDevVelocity, 1e-12)
	assert.Equal(t, 0.0, f.VelocityEntropy)

	assert.InDelta(t, math.Pi/2, f.CurvatureIndex, 1e-12)
	assert.InDelta(t, (math.Pi/2)/200, f.AngularVelocityMean, 1e-12)
	assert.InDelta(t, math.Sqrt(200), f.JitterScore, 1e-12)
	assert.Equal(t, 0.0, f.AccelerationVariance) // a single acceleration sample

	// Only (10,0) deviates: 10/√2 from the diagonal, averaged over three samples.
	assert.InDelta(t, (10/math.Sqrt2)/3, f.PathDeviation, 1e-9)

	// Cell centres are (25,25) and (75,75).
	assert.InDelta(t, 45*math.Sqrt2, f.ClickPrecision, 1e-9)

	assert.Equal(t, 0, f.HesitationCount)
	assert.Equal(t, 0.0, f.HesitationTotalTime)
}

func TestExtract_ShortTrajectoryIsDegenerate(t *testing.T) {
	for n := 0; n < 2; n++ {
		s := referenceSession()
		s.Trajectory = s.Trajectory[:n]

		f := Extract(s)
		assert.Equal(t, 0.0, f.MeanVelocity, "n=%d", n)
		assert.Equal(t, 0.0, f.AccelerationVariance, "n=%d", n)
		assert.Equal(t, 0.0, f.JitterScore, "n=%d", n)
		assert.Equal(t, 0.0, f.CurvatureIndex, "n=%d", n)
		assert.Equal(t, 0.0, f.AngularVelocityMean, "n=%d", n)
		assert.Equal(t, 0.0, f.PathLength, "n=%d", n)
	}
}

func TestExtract_FewClicksIsDegenerate(t *testing.T) {
	for n := 0; n < 2; n++ {
		s := referenceSession()
		s.Clicks = s.Clicks[:n]

		f := Extract(s)
		assert.Equal(t, 0.0, f.MeanInterClickLatency, "n=%d", n)
		assert.Equal(t, 0.0, f.StdDevInterClickLatency, "n=%d", n)
		assert.Equal(t, 1.0, f.DirectnessRatio, "n=%d", n)
		assert.Equal(t, 0.0, f.PathDeviation, "n=%d", n)
	}
}

func TestExtract_EmptyAndNilSession(t *testing.T) {
	want := models.BiometricFeatures{DirectnessRatio: 1}
	assert.Equal(t, want, Extract(&models.Session{}))
	assert.Equal(t, want, Extract(nil))
}

func TestExtract_NoNaNOrInfOnDuplicateTimestamps(t *testing.T) {
	s := &models.Session{
		Trajectory: []models.Point{
			{X: 0, Y: 0, T: 10},
			{X: 5, Y: 5, T: 10},
			{X: 5, Y: 5, T: 10},
			{X: 9, Y: 1, T: 10},
		},
		Clicks: []models.ClickData{
			{X: 0, Y: 0, T: 10, GridIndex: 0},
			{X: 0, Y: 0, T: 10, GridIndex: 0},
		},
		GridSize:        3,
		ImageDimensions: models.ImageDimensions{Width: 90, Height: 90},
	}

	f := Extract(s)
	for name, v := range map[string]float64{
		"meanVelocity":         f.MeanVelocity,
		"accelerationVariance": f.AccelerationVariance,
		"angularVelocityMean":  f.AngularVelocityMean,
		"directnessRatio":      f.DirectnessRatio,
		"pathDeviation":        f.PathDeviation,
		"latencyEntropy":       f.LatencyEntropy,
		"jitterScore":          f.JitterScore,
	} {
		assert.False(t, math.IsNaN(v) || math.IsInf(v, 0), "%s = %v", name, v)
	}
	assert.Equal(t, 1.0, f.DirectnessRatio)
	assert.Equal(t, 0.0, f.MeanVelocity)
}

func TestExtract_IsDeterministicAndReadOnly(t *testing.T) {
	s := referenceSession()
	traj := append([]models.Point(nil), s.Trajectory...)
	clicks := append([]models.ClickData(nil), s.Clicks...)

	first := Extract(s)
	second := Extract(s)

	assert.Equal(t, first, second)
	assert.Equal(t, traj, s.Trajectory)
	assert.Equal(t, clicks, s.Clicks)
}

func TestTimingFeatures(t *testing.T) {
	clicks := []models.ClickData{{T: 0}, {T: 100}, {T: 300}, {T: 600}}

	latencies := InterClickLatencies(clicks)
	require.Equal(t, []float64{100, 200, 300}, latencies)

	timing := TimingFeatures(clicks)
	assert.InDelta(t, 200.0, timing.MeanLatency, 1e-12)
	assert.InDelta(t, math.Sqrt(20000.0/3), timing.StdDevLatency, 1e-9)
	assert.InDelta(t, math.Log2(3), timing.LatencyEntropy, 1e-9)
}

func TestPathDeviation_StopsAfterLastClick(t *testing.T) {
	clicks := []models.ClickData{
		{X: 0, Y: 0, T: 0},
		{X: 100, Y: 0, T: 100},
	}
	trajectory := []models.Point{
		{X: 50, Y: 10, T: 50},   // 10 from the segment
		{X: 100, Y: 0, T: 100},  // on the click
		{X: 100, Y: 50, T: 150}, // after the last click: ignored
		{X: 100, Y: 90, T: 200}, // ignored
	}

	assert.InDelta(t, 10.0/4, PathDeviation(trajectory, clicks), 1e-12)
}

func TestPathDeviation_AdvancesSegments(t *testing.T) {
	clicks := []models.ClickData{
		{X: 0, Y: 0, T: 0},
		{X: 100, Y: 0, T: 100},
		{X: 100, Y: 100, T: 200},
	}
	trajectory := []models.Point{
		{X: 50, Y: 5, T: 50},    // segment 1: 5
		{X: 90, Y: 50, T: 150},  // segment 2: 10
		{X: 100, Y: 100, T: 200},
	}

	assert.InDelta(t, 15.0/3, PathDeviation(trajectory, clicks), 1e-12)
}

func TestCellCenter(t *testing.T) {
	dims := models.ImageDimensions{Width: 300, Height: 150}

	x, y := CellCenter(0, 3, dims)
	assert.Equal(t, 50.0, x)
	assert.Equal(t, 25.0, y)

	x, y = CellCenter(5, 3, dims) // row 1, col 2
	assert.Equal(t, 250.0, x)
	assert.Equal(t, 75.0, y)

	x, y = CellCenter(1, 0, dims)
	assert.Equal(t, 0.0, x)
	assert.Equal(t, 0.0, y)
}

func TestClickPrecision(t *testing.T) {
	dims := models.ImageDimensions{Width: 100, Height: 100}
	clicks := []models.ClickData{
		{X: 25, Y: 25, GridIndex: 0}, // dead centre
		{X: 78, Y: 79, GridIndex: 3}, // 3-4-5 off (75,75)
	}

	assert.InDelta(t, 2.5, ClickPrecision(clicks, 2, dims), 1e-12)
	assert.Equal(t, 0.0, ClickPrecision(nil, 2, dims))
	assert.Equal(t, 0.0, ClickPrecision(clicks, 0, dims))
}

func TestHesitations(t *testing.T) {
	clicks := []models.ClickData{{X: 100, Y: 100, T: 1000}}
	trajectory := []models.Point{
		{X: 0, Y: 0, T: 0},
		{X: 90, Y: 90, T: 100},   // fast approach
		{X: 92, Y: 91, T: 400},   // slow, near: hesitation 1 starts at 100
		{X: 93, Y: 92, T: 700},   // still dwelling
		{X: 200, Y: 200, T: 800}, // leaves: 600 ms accumulated
		{X: 201, Y: 200, T: 1000},
		{X: 101, Y: 100, T: 1100}, // fast return
		{X: 100, Y: 100, T: 1300}, // slow, near: hesitation 2 from 1100, open at end
	}

	count, total := Hesitations(trajectory, clicks)
	assert.Equal(t, 2, count)
	assert.InDelta(t, 600.0+200.0, total, 1e-12)
}

func TestHesitations_Degenerate(t *testing.T) {
	count, total := Hesitations([]models.Point{{X: 1, Y: 1, T: 1}}, []models.ClickData{{X: 1, Y: 1}})
	assert.Equal(t, 0, count)
	assert.Equal(t, 0.0, total)

	count, total = Hesitations([]models.Point{{T: 0}, {T: 100}}, nil)
	assert.Equal(t, 0, count)
	assert.Equal(t, 0.0, total)
}

func TestJitterScore(t *testing.T) {
	smooth := []models.Point{{X: 0}, {X: 1}, {X: 2}, {X: 3}}
	assert.Equal(t, 0.0, JitterScore(smooth))

	shaky := []models.Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 0}, {X: 3, Y: 1}}
	assert.InDelta(t, 2.0, JitterScore(shaky), 1e-12)
}

func TestExtract_ExtremeCoordinatesDoNotPanic(t *testing.T) {
	s := &models.Session{
		Trajectory: []models.Point{
			{X: -1e308, Y: 0, T: 0},
			{X: 1e308, Y: 0, T: 1},
			{X: 1e308, Y: 0, T: 2},
		},
		Clicks: []models.ClickData{
			{X: 0, Y: 0, T: 0, GridIndex: 0},
			{X: 10, Y: 10, T: 2, GridIndex: 3},
		},
		GridSize:        2,
		ImageDimensions: models.ImageDimensions{Width: 100, Height: 100},
	}
	require.NoError(t, s.Validate())

	var f models.BiometricFeatures
	require.NotPanics(t, func() { f = Extract(s) })
	assert.Equal(t, 0.0, f.VelocityEntropy)
}

func TestExtract_NonFiniteSamplesDoNotPanic(t *testing.T) {
	s := referenceSession()
	s.Trajectory = append(s.Trajectory,
		models.Point{X: math.NaN(), Y: 0, T: 300},
		models.Point{X: math.Inf(1), Y: math.Inf(-1), T: 400},
	)

	assert.NotPanics(t, func() { Extract(s) })
}
