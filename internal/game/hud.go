package game

import (
	"fmt"
	"math"

	"drivesim/internal/sim"
)

// RenderHUD draws the telemetry line, the outcome banner, and the controls
// help using the font atlas.
func RenderHUD(r *Renderer, s *sim.Session, screenW, screenH int) {
	scale := float32(1.5)

	line := fmt.Sprintf("Pos: (%.2f, %.2f)  Speed: %.2f m/s  Theta: %.1f deg",
		s.Car.X, s.Car.Y, s.Car.Speed, s.Car.Heading*180/math.Pi)
	r.DrawString(line, 10, 10, scale, ColorText)

	switch s.State {
	case sim.StateWon:
		r.DrawString("GOAL REACHED! Press R to reset.", 10, 40, scale, ColorWin)
	case sim.StateCollided:
		r.DrawString("COLLISION! Press R to reset.", 10, 40, scale, ColorCrash)
	}

	help := "Controls: Arrows/WASD to drive. SPACE stop. R reset. Q/ESC quit."
	r.DrawString(help, (screenW-TextWidth(help, 1.2))/2, screenH-30, 1.2, ColorText)

	r.FlushText()
}
