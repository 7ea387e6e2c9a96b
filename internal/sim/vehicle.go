package sim

import "math"

// Vehicle is the player car: a kinematic point with heading, scalar forward
// speed, a fixed collision envelope, and a bounded trajectory history.
type Vehicle struct {
	X, Y    float64 // position, world units
	Heading float64 // radians, 0 = +x axis
	Speed   float64 // forward speed, units/s (negative = reversing)

	Width  float64
	Length float64

	cfg Config

	// Trajectory ring buffer, oldest evicted first once full.
	hist     []Point
	histHead int // index of oldest entry
	histLen  int
}

// NewVehicle creates a vehicle at the configured start pose.
func NewVehicle(cfg Config) *Vehicle {
	v := &Vehicle{cfg: cfg}
	v.Reset(cfg.StartX, cfg.StartY, 0)
	return v
}

// Reset reinitializes the vehicle to the given pose with zero speed and an
// empty trajectory.
func (v *Vehicle) Reset(x, y, heading float64) {
	v.X = x
	v.Y = y
	v.Heading = heading
	v.Speed = 0
	v.Width = v.cfg.CarWidth
	v.Length = v.cfg.CarLength
	if v.hist == nil {
		v.hist = make([]Point, v.cfg.HistoryCap)
	}
	v.histHead = 0
	v.histLen = 0
}

// Step advances the vehicle by dt seconds. accelInput and steerInput are
// expected in [-1, 1]; the session controller constructs them that way.
//
// The drag term is a first-order Euler decay applied after the throttle,
// which makes the update frame-rate sensitive. That behaviour is intentional
// and must not be replaced with a closed-form decay.
func (v *Vehicle) Step(accelInput, steerInput, dt float64) {
	if accelInput > 0 {
		v.Speed += accelInput * v.cfg.Accel * dt
	} else {
		v.Speed += accelInput * v.cfg.Brake * dt
	}

	v.Speed -= v.Speed * v.cfg.Drag * dt
	v.Speed = clampF(v.Speed, -v.cfg.MaxSpeed*0.5, v.cfg.MaxSpeed)

	// Steering authority grows with speed but never vanishes at rest.
	angularVel := steerInput * v.cfg.SteerSpeed * (0.4 + math.Abs(v.Speed)/v.cfg.MaxSpeed)
	v.Heading += angularVel * dt

	v.X += v.Speed * math.Cos(v.Heading) * dt
	v.Y += v.Speed * math.Sin(v.Heading) * dt

	// Clamp, not bounce. The collision oracle runs on the clamped position,
	// so the wall branch only ever fires exactly at the boundary.
	v.X = clampF(v.X, 0, v.cfg.WorldSize)
	v.Y = clampF(v.Y, 0, v.cfg.WorldSize)

	v.appendHistory(Point{X: v.X, Y: v.Y})
}

// Halt collapses the speed to effectively zero by applying the per-frame
// drag factor for a fifth of a second's worth of frames, undamped by dt.
func (v *Vehicle) Halt() {
	n := int(float64(v.cfg.TargetFPS) * 0.2)
	for i := 0; i < n; i++ {
		v.Speed -= v.Speed * v.cfg.Drag
	}
}

// CollisionPolygon returns the four corners of the vehicle's oriented
// bounding rectangle in world coordinates. The default collision check uses
// a bounding circle instead; this exists for renderers and alternative
// collision strategies.
func (v *Vehicle) CollisionPolygon() [4]Point {
	l := v.Length / 2
	w := v.Width / 2
	corners := [4]Point{{-l, -w}, {-l, w}, {l, w}, {l, -w}}
	sin, cos := math.Sincos(v.Heading)
	var out [4]Point
	for i, c := range corners {
		out[i] = Point{
			X: v.X + c.X*cos - c.Y*sin,
			Y: v.Y + c.X*sin + c.Y*cos,
		}
	}
	return out
}

func (v *Vehicle) appendHistory(p Point) {
	if len(v.hist) == 0 {
		return
	}
	if v.histLen < len(v.hist) {
		v.hist[(v.histHead+v.histLen)%len(v.hist)] = p
		v.histLen++
		return
	}
	// Full: overwrite the oldest entry and advance the head.
	v.hist[v.histHead] = p
	v.histHead = (v.histHead + 1) % len(v.hist)
}

// HistoryLen returns the number of recorded trajectory points.
func (v *Vehicle) HistoryLen() int { return v.histLen }

// History appends the trajectory, oldest first, to dst and returns it.
// Callers reuse dst across frames to avoid per-frame allocations.
func (v *Vehicle) History(dst []Point) []Point {
	for i := 0; i < v.histLen; i++ {
		dst = append(dst, v.hist[(v.histHead+i)%len(v.hist)])
	}
	return dst
}
