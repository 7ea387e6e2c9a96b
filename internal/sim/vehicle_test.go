package sim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

const testDt = 1.0 / 60

func TestStepDragOnlyDecay(t *testing.T) {
	t.Run("positive speed decays toward zero", func(t *testing.T) {
		v := NewVehicle(DefaultConfig())
		v.Speed = 2.0
		prev := v.Speed
		for i := 0; i < 600; i++ {
			v.Step(0, 0, testDt)
			require.Less(t, v.Speed, prev, "speed must strictly decrease at step %d", i)
			require.GreaterOrEqual(t, v.Speed, 0.0, "drag must never flip the sign")
			prev = v.Speed
		}
		require.Less(t, v.Speed, 0.01)
	})

	t.Run("negative speed decays toward zero", func(t *testing.T) {
		v := NewVehicle(DefaultConfig())
		v.Speed = -1.0
		prev := v.Speed
		for i := 0; i < 600; i++ {
			v.Step(0, 0, testDt)
			require.Greater(t, v.Speed, prev)
			require.LessOrEqual(t, v.Speed, 0.0)
			prev = v.Speed
		}
	})
}

func TestStepSpeedAlwaysClamped(t *testing.T) {
	cfg := DefaultConfig()
	v := NewVehicle(cfg)
	inputs := []struct{ accel, steer, dt float64 }{
		{1, 0, testDt}, {1, 1, 0.5}, {-1, -1, 0.5}, {-1, 0, 2.0}, {1, 0, 5.0}, {0.3, -0.7, 0.016},
	}
	for i := 0; i < 200; i++ {
		in := inputs[i%len(inputs)]
		v.Step(in.accel, in.steer, in.dt)
		require.LessOrEqual(t, v.Speed, cfg.MaxSpeed)
		require.GreaterOrEqual(t, v.Speed, -cfg.MaxSpeed*0.5)
	}
}

func TestStepPositionAlwaysInsideWorld(t *testing.T) {
	cfg := DefaultConfig()
	v := NewVehicle(cfg)
	// Drive hard into walls in several directions.
	for _, heading := range []float64{0, math.Pi / 3, math.Pi, -math.Pi / 2} {
		v.Reset(cfg.StartX, cfg.StartY, heading)
		for i := 0; i < 1200; i++ {
			v.Step(1, 0, testDt)
			require.GreaterOrEqual(t, v.X, 0.0)
			require.LessOrEqual(t, v.X, cfg.WorldSize)
			require.GreaterOrEqual(t, v.Y, 0.0)
			require.LessOrEqual(t, v.Y, cfg.WorldSize)
		}
	}
}

func TestSteeringNeverVanishesAtRest(t *testing.T) {
	v := NewVehicle(DefaultConfig())
	h0 := v.Heading
	v.Step(0, 1, testDt)
	require.Greater(t, v.Heading, h0, "steering must retain authority at zero speed")
}

func TestHistoryBounded(t *testing.T) {
	cfg := DefaultConfig()
	cfg.HistoryCap = 8
	v := NewVehicle(cfg)
	for i := 0; i < 20; i++ {
		v.Step(1, 0.5, testDt)
	}
	require.Equal(t, 8, v.HistoryLen())

	pts := v.History(nil)
	require.Len(t, pts, 8)
	// Oldest first: the last recorded point is the current position.
	require.Equal(t, Point{X: v.X, Y: v.Y}, pts[7])
}

func TestHaltCollapsesSpeed(t *testing.T) {
	v := NewVehicle(DefaultConfig())
	v.Speed = 2.5
	v.Halt()
	require.InDelta(t, 0.0, v.Speed, 1e-6)
}

func TestCollisionPolygonOriented(t *testing.T) {
	cfg := DefaultConfig()
	v := NewVehicle(cfg)
	v.X, v.Y, v.Heading = 1.0, 1.0, 0

	poly := v.CollisionPolygon()
	hl := cfg.CarLength / 2
	hw := cfg.CarWidth / 2
	require.InDelta(t, 1.0-hl, poly[0].X, 1e-12)
	require.InDelta(t, 1.0-hw, poly[0].Y, 1e-12)
	require.InDelta(t, 1.0+hl, poly[2].X, 1e-12)
	require.InDelta(t, 1.0+hw, poly[2].Y, 1e-12)

	// Rotating a quarter turn swaps the rectangle's extents.
	v.Heading = math.Pi / 2
	poly = v.CollisionPolygon()
	require.InDelta(t, 1.0+hw, poly[0].X, 1e-12)
	require.InDelta(t, 1.0-hl, poly[0].Y, 1e-12)
}

func TestResetClearsState(t *testing.T) {
	cfg := DefaultConfig()
	v := NewVehicle(cfg)
	for i := 0; i < 50; i++ {
		v.Step(1, 0.3, testDt)
	}
	require.NotZero(t, v.HistoryLen())

	v.Reset(cfg.StartX, cfg.StartY, 0)
	require.Equal(t, cfg.StartX, v.X)
	require.Equal(t, cfg.StartY, v.Y)
	require.Zero(t, v.Speed)
	require.Zero(t, v.Heading)
	require.Zero(t, v.HistoryLen())
}
