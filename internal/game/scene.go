package game

import (
	"math"

	"drivesim/internal/sim"
)

// Scene converts simulation state into renderer buffers each frame. The
// float buffers are reused across frames to avoid per-frame allocations.
type Scene struct {
	vp       sim.Viewport
	histBuf  []sim.Point
	traceBuf []float32
	circBuf  []float32
}

func NewScene(vp sim.Viewport) *Scene {
	return &Scene{vp: vp}
}

// Draw renders one frame of the session: field, obstacles, goal, trajectory,
// then the car on top.
func (sc *Scene) Draw(r *Renderer, s *sim.Session) {
	cfg := s.Config()

	// Field rectangle.
	r.FillRect(sc.vp.Margin, sc.vp.Margin, sc.vp.FieldW(), sc.vp.FieldH(), ColorField)

	// Obstacles and goal as filled circles.
	sc.circBuf = sc.circBuf[:0]
	for _, o := range s.Obstacles {
		sx, sy := sc.vp.WorldToScreen(o.X, o.Y)
		sc.circBuf = appendCircle(sc.circBuf, sx, sy, sc.vp.RadiusToPixels(o.R), ColorObs)
	}
	gx, gy := sc.vp.WorldToScreen(cfg.GoalX, cfg.GoalY)
	sc.circBuf = appendCircle(sc.circBuf, gx, gy, sc.vp.RadiusToPixels(cfg.GoalRadius), ColorGoal)
	r.DrawCircles(sc.circBuf)

	// Trajectory polyline.
	sc.histBuf = sc.histBuf[:0]
	sc.histBuf = s.Car.History(sc.histBuf)
	if len(sc.histBuf) > 1 {
		sc.traceBuf = sc.traceBuf[:0]
		cr := float32(ColorTrace.R) / 255.0
		cg := float32(ColorTrace.G) / 255.0
		cb := float32(ColorTrace.B) / 255.0
		for _, p := range sc.histBuf {
			px, py := sc.vp.WorldToScreen(p.X, p.Y)
			sc.traceBuf = append(sc.traceBuf, float32(px), float32(py), cr, cg, cb, 1)
		}
		r.DrawPolyline(sc.traceBuf)
	}

	// Car. The sprite points up, so heading 0 (world +x) needs a quarter
	// turn; the y-flip between world and screen negates the rotation.
	cx, cy := sc.vp.WorldToScreen(s.Car.X, s.Car.Y)
	rot := float32(-(s.Car.Heading - math.Pi/2))
	r.DrawCar(float32(cx), float32(cy), rot)
}

func appendCircle(buf []float32, sx, sy, radiusPx int, col RGB) []float32 {
	return append(buf,
		float32(sx), float32(sy), float32(radiusPx*2),
		float32(col.R)/255.0, float32(col.G)/255.0, float32(col.B)/255.0, 1, 0,
	)
}
