package game

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"drivesim/internal/sim"
)

type Input struct {
	prevKeys map[glfw.Key]bool
}

func NewInput() *Input {
	return &Input{
		prevKeys: make(map[glfw.Key]bool),
	}
}

// JustPressed reports a key-down edge since the previous call for that key.
func (in *Input) JustPressed(window *glfw.Window, key glfw.Key) bool {
	down := window.GetKey(key) == glfw.Press
	jp := down && !in.prevKeys[key]
	in.prevKeys[key] = down
	return jp
}

// ReadKeyState samples the held movement keys. Arrow keys and WASD are
// interchangeable; the simulation core only ever sees this snapshot.
func ReadKeyState(window *glfw.Window) sim.KeyState {
	held := func(keys ...glfw.Key) bool {
		for _, k := range keys {
			if window.GetKey(k) == glfw.Press {
				return true
			}
		}
		return false
	}
	return sim.KeyState{
		Up:    held(glfw.KeyUp, glfw.KeyW),
		Down:  held(glfw.KeyDown, glfw.KeyS),
		Left:  held(glfw.KeyLeft, glfw.KeyA),
		Right: held(glfw.KeyRight, glfw.KeyD),
	}
}

// QuitRequested reports the quit keys (ESC or Q).
func QuitRequested(window *glfw.Window) bool {
	return window.GetKey(glfw.KeyEscape) == glfw.Press ||
		window.GetKey(glfw.KeyQ) == glfw.Press
}
