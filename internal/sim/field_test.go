package sim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	for _, seed := range []uint64{1, 2, 42, 9999} {
		a := GenerateObstacles(cfg, seed)
		b := GenerateObstacles(cfg, seed)
		require.Equal(t, a, b, "seed %d must reproduce the identical field", seed)
	}
}

func TestGenerateFieldConstraints(t *testing.T) {
	cfg := DefaultConfig()
	for _, seed := range []uint64{1, 2, 3, 4, 5, 77, 1234} {
		obs := GenerateObstacles(cfg, seed)
		require.LessOrEqual(t, len(obs), cfg.NumObstacles)

		for i, o := range obs {
			// Inside the spawn margins.
			require.GreaterOrEqual(t, o.X, cfg.ObstacleMargin)
			require.LessOrEqual(t, o.X, cfg.WorldSize-cfg.ObstacleMargin)
			require.GreaterOrEqual(t, o.R, cfg.ObstacleRadiusMin)
			require.LessOrEqual(t, o.R, cfg.ObstacleRadiusMax)

			// Clear of start and goal.
			for _, p := range []Point{{cfg.StartX, cfg.StartY}, {cfg.GoalX, cfg.GoalY}} {
				d := math.Hypot(o.X-p.X, o.Y-p.Y)
				require.GreaterOrEqual(t, d, o.R+cfg.GoalRadius+cfg.ObstacleTolerance,
					"seed %d obstacle %d too close to (%v,%v)", seed, i, p.X, p.Y)
			}

			// Pairwise separation.
			for j := 0; j < i; j++ {
				d := math.Hypot(o.X-obs[j].X, o.Y-obs[j].Y)
				require.GreaterOrEqual(t, d, o.R+obs[j].R+cfg.ObstacleTolerance,
					"seed %d obstacles %d/%d overlap", seed, i, j)
			}
		}
	}
}

func TestGenerateKeepsStartConeClear(t *testing.T) {
	cfg := DefaultConfig()
	for _, seed := range []uint64{1, 2, 3, 4, 5} {
		for _, o := range GenerateObstacles(cfg, seed) {
			dx := o.X - cfg.StartX
			dy := o.Y - cfg.StartY
			if dx <= 0 || math.Hypot(dx, dy) >= startConeRange {
				continue
			}
			diff := math.Abs(angDiff(0, math.Atan2(dy, dx)))
			require.GreaterOrEqual(t, diff, startConeHalfAngle,
				"seed %d: obstacle inside the forward cone", seed)
		}
	}
}

func TestGenerateCapsGoalRing(t *testing.T) {
	cfg := DefaultConfig()
	for _, seed := range []uint64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10} {
		inRing := 0
		for _, o := range GenerateObstacles(cfg, seed) {
			d := math.Hypot(o.X-cfg.GoalX, o.Y-cfg.GoalY)
			if cfg.GoalRadius+goalRingInnerPad < d && d < cfg.GoalRadius+goalRingOuterPad {
				inRing++
			}
		}
		require.LessOrEqual(t, inRing, goalRingMaxCount)
	}
}

func TestGenerateExhaustionReturnsShortField(t *testing.T) {
	cfg := DefaultConfig()
	// Impossible demand: far more obstacles than the arena can hold within
	// the attempt budget. Must degrade to a short field, not error or hang.
	cfg.NumObstacles = 500
	cfg.ObstacleRadiusMin = 0.5
	cfg.ObstacleRadiusMax = 0.6
	obs := GenerateObstacles(cfg, 2)
	require.Less(t, len(obs), cfg.NumObstacles)
}
