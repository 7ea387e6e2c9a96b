package game

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"drivesim/internal/sim"
)

// Run owns the whole desktop session: window, GL state, audio, and the
// measured-dt frame loop. The simulation core is advanced exactly once per
// frame and never touches rendering or input.
func Run() {
	runtime.LockOSThread()

	cfg, err := sim.LoadConfig(os.Getenv(EnvConfig))
	if err != nil {
		panic(fmt.Errorf("config: %w", err))
	}

	window, err := initWindow(cfg)
	if err != nil {
		panic(err)
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		panic(fmt.Errorf("gl init: %w", err))
	}

	if err := InitAudio(); err != nil {
		fmt.Fprintf(os.Stderr, "audio init failed (continuing without sound): %v\n", err)
	}

	// Seed from environment or the canonical default.
	seed := uint64(DefaultSeed)
	if s := os.Getenv(EnvSeed); s != "" {
		if v, err := strconv.ParseUint(s, 10, 64); err == nil {
			seed = v
		}
	}

	// GL state.
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)

	rend, err := NewRenderer()
	if err != nil {
		panic(fmt.Errorf("renderer: %w", err))
	}
	defer rend.Destroy()
	if err := rend.InitFont(); err != nil {
		panic(fmt.Errorf("font: %w", err))
	}
	// The sprite is cosmetic: missing or broken files degrade to the box.
	if err := rend.LoadCarSprite(CarSpriteFile); err != nil {
		fmt.Fprintf(os.Stderr, "car sprite unavailable (using box): %v\n", err)
	}

	session := sim.NewSession(cfg, seed)
	scene := NewScene(cfg.Viewport())
	input := NewInput()

	last := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := now - last
		last = now
		if dt > 0.1 {
			dt = 0.1
		}

		glfw.PollEvents()
		if QuitRequested(window) {
			window.SetShouldClose(true)
			continue
		}

		if input.JustPressed(window, glfw.KeyR) {
			session.Reset(sim.NextSeed(uint64(time.Now().UnixNano())))
			PlaySound(SoundReset)
		}
		if input.JustPressed(window, glfw.KeySpace) {
			session.Halt()
		}

		prev := session.State
		session.Update(ReadKeyState(window), dt)
		if session.State != prev {
			switch session.State {
			case sim.StateCollided:
				PlaySound(SoundCrash)
			case sim.StateWon:
				PlaySound(SoundGoal)
			}
		}

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}

		rend.BeginFrame(cfg.ScreenW, cfg.ScreenH, fbW, fbH)
		scene.Draw(rend, session)
		RenderHUD(rend, session, cfg.ScreenW, cfg.ScreenH)
		window.SwapBuffers()
	}
}
