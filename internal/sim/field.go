package sim

import "math"

// Obstacle is an immutable circle in world units.
type Obstacle struct {
	X, Y float64
	R    float64
}

// Placement rules that are part of the algorithm rather than tuning:
// obstacles may not sit in a narrow cone directly ahead of the start pose,
// and at most three may occupy a thin ring around the goal.
const (
	startConeHalfAngle = 30 * math.Pi / 180
	startConeRange     = 0.4
	goalRingInnerPad   = 0.03
	goalRingOuterPad   = 0.13
	goalRingMaxCount   = 3
)

// GenerateObstacles places up to cfg.NumObstacles non-overlapping circles.
// The same seed always yields the identical field (same order, same values).
// Rejected candidates consume attempts from a shared budget; if the budget
// runs out the field is returned short, which is acceptable degraded
// behaviour rather than an error.
func GenerateObstacles(cfg Config, seed uint64) []Obstacle {
	rng := NewRand(seed)
	obs := make([]Obstacle, 0, cfg.NumObstacles)

	for attempts := 0; len(obs) < cfg.NumObstacles && attempts < cfg.MaxAttempts; attempts++ {
		x := rng.RangeF(cfg.ObstacleMargin, cfg.WorldSize-cfg.ObstacleMargin)
		y := rng.RangeF(cfg.ObstacleMargin, cfg.WorldSize-cfg.ObstacleMargin)
		r := rng.RangeF(cfg.ObstacleRadiusMin, cfg.ObstacleRadiusMax)

		c := Obstacle{X: x, Y: y, R: r}
		if !tooCloseToEndpoints(cfg, c) &&
			!blocksStart(cfg, c) &&
			!ringsGoal(cfg, c, obs) &&
			!overlapsAny(cfg, c, obs) {
			obs = append(obs, c)
		}
	}
	return obs
}

// tooCloseToEndpoints rejects candidates within clearance of start or goal.
func tooCloseToEndpoints(cfg Config, c Obstacle) bool {
	for _, p := range [2]Point{{cfg.StartX, cfg.StartY}, {cfg.GoalX, cfg.GoalY}} {
		if math.Hypot(c.X-p.X, c.Y-p.Y) < c.R+cfg.GoalRadius+cfg.ObstacleTolerance {
			return true
		}
	}
	return false
}

// blocksStart rejects candidates in the forward cone of the start pose
// (heading 0) close enough to cause an immediate collision.
func blocksStart(cfg Config, c Obstacle) bool {
	dx := c.X - cfg.StartX
	dy := c.Y - cfg.StartY
	angle := math.Atan2(dy, dx)
	diff := math.Abs(angDiff(0, angle))
	return dx > 0 && diff < startConeHalfAngle && math.Hypot(dx, dy) < startConeRange
}

// ringsGoal caps the number of obstacle centres inside the thin annulus
// around the goal, so a field can never wall the goal off completely.
func ringsGoal(cfg Config, c Obstacle, obs []Obstacle) bool {
	ringMin := cfg.GoalRadius + goalRingInnerPad
	ringMax := cfg.GoalRadius + goalRingOuterPad
	distGoal := math.Hypot(c.X-cfg.GoalX, c.Y-cfg.GoalY)
	if !(ringMin < distGoal && distGoal < ringMax) {
		return false
	}
	inRing := 0
	for _, o := range obs {
		d := math.Hypot(o.X-cfg.GoalX, o.Y-cfg.GoalY)
		if ringMin < d && d < ringMax {
			inRing++
		}
	}
	return inRing >= goalRingMaxCount
}

func overlapsAny(cfg Config, c Obstacle, obs []Obstacle) bool {
	for _, o := range obs {
		if math.Hypot(c.X-o.X, c.Y-o.Y) < c.R+o.R+cfg.ObstacleTolerance {
			return true
		}
	}
	return false
}
