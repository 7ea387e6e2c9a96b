package sim

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReachedGoal(t *testing.T) {
	cfg := DefaultConfig()
	v := NewVehicle(cfg)

	v.X, v.Y = cfg.GoalX, cfg.GoalY
	require.True(t, ReachedGoal(v, cfg), "exact goal centre")

	v.X = cfg.GoalX + cfg.GoalRadius - 1e-12
	require.True(t, ReachedGoal(v, cfg), "just inside counts as reached")

	v.X = cfg.GoalX + cfg.GoalRadius + 1e-9
	require.False(t, ReachedGoal(v, cfg), "just outside the boundary")

	// Exact boundary, checked with power-of-two values so the distance is
	// representable. The compare is <= with no epsilon.
	exact := cfg
	exact.GoalX, exact.GoalY, exact.GoalRadius = 0, 1.0, 0.0625
	v.X, v.Y = exact.GoalX+exact.GoalRadius, exact.GoalY
	require.True(t, ReachedGoal(v, exact), "boundary counts as reached")
}

func TestCheckCollisionObstacle(t *testing.T) {
	cfg := DefaultConfig()
	v := NewVehicle(cfg)
	v.X, v.Y = 2.0, 2.0
	carRadius := 0.6 * cfg.CarLength

	obs := []Obstacle{{X: 2.0 + 0.1 + carRadius - 1e-9, Y: 2.0, R: 0.1}}
	require.True(t, CheckCollision(v, obs, cfg))

	obs[0].X = 2.0 + 0.1 + carRadius + 1e-6
	require.False(t, CheckCollision(v, obs, cfg))
}

func TestCheckCollisionWallAtBoundary(t *testing.T) {
	cfg := DefaultConfig()
	v := NewVehicle(cfg)

	// A parked car pushed into the corner still counts as a wall hit even
	// though Step would have clamped it exactly there.
	v.X, v.Y, v.Speed = 0, 0, 0
	require.True(t, CheckCollision(v, nil, cfg))

	v.X, v.Y = cfg.WorldSize, 1.0
	require.True(t, CheckCollision(v, nil, cfg))

	v.X, v.Y = 1.0, 1.0
	require.False(t, CheckCollision(v, nil, cfg))
}
