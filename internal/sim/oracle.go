package sim

import "math"

// CheckCollision reports whether the vehicle hit an obstacle or a wall.
// The obstacle test approximates the car by a bounding circle of radius
// 0.6 x max(width, length). The wall test runs on the already clamped
// position, so in normal play it only fires exactly at the boundary.
func CheckCollision(v *Vehicle, obstacles []Obstacle, cfg Config) bool {
	carRadius := 0.6 * math.Max(v.Width, v.Length)
	for _, o := range obstacles {
		dx := v.X - o.X
		dy := v.Y - o.Y
		reach := o.R + carRadius
		if dx*dx+dy*dy <= reach*reach {
			return true
		}
	}
	if v.X <= 0 || v.X >= cfg.WorldSize || v.Y <= 0 || v.Y >= cfg.WorldSize {
		return true
	}
	return false
}

// ReachedGoal reports whether the vehicle centre lies within the goal circle.
func ReachedGoal(v *Vehicle, cfg Config) bool {
	dx := v.X - cfg.GoalX
	dy := v.Y - cfg.GoalY
	return dx*dx+dy*dy <= cfg.GoalRadius*cfg.GoalRadius
}
