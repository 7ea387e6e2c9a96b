package sim

// SessionState enumerates the play-through outcome.
type SessionState int

const (
	StatePlaying SessionState = iota
	StateWon
	StateCollided
)

// KeyState is the per-frame snapshot of held movement keys. The input layer
// fills one in each frame; the core never sees raw key events.
type KeyState struct {
	Up, Down    bool
	Left, Right bool
}

// AccelInput sums the throttle axis: up = +1, down = -1, both cancel.
func (k KeyState) AccelInput() float64 {
	a := 0.0
	if k.Up {
		a += 1
	}
	if k.Down {
		a -= 1
	}
	return a
}

// SteerInput sums the steering axis: left = -1, right = +1, both cancel.
func (k KeyState) SteerInput() float64 {
	s := 0.0
	if k.Left {
		s -= 1
	}
	if k.Right {
		s += 1
	}
	return s
}

// Session is one play-through: a vehicle, a generated obstacle field, and a
// terminal-state machine. It is the sole writer of simulation state.
type Session struct {
	State     SessionState
	Car       *Vehicle
	Obstacles []Obstacle
	Seed      uint64

	cfg Config
}

func NewSession(cfg Config, seed uint64) *Session {
	return &Session{
		State:     StatePlaying,
		Car:       NewVehicle(cfg),
		Obstacles: GenerateObstacles(cfg, seed),
		Seed:      seed,
		cfg:       cfg,
	}
}

// Config returns the immutable configuration this session runs under.
func (s *Session) Config() Config { return s.cfg }

// Update advances one frame. Terminal states freeze physics until Reset.
//
// Collision is evaluated before the goal, and the goal check runs
// unconditionally afterward, so a frame where both hold resolves to Won.
// That precedence is fixed; callers rely on it.
func (s *Session) Update(keys KeyState, dt float64) {
	if s.State != StatePlaying {
		return
	}

	s.Car.Step(keys.AccelInput(), keys.SteerInput(), dt)

	if CheckCollision(s.Car, s.Obstacles, s.cfg) {
		s.State = StateCollided
	}
	if ReachedGoal(s.Car, s.cfg) {
		s.State = StateWon
	}
}

// Halt collapses the car's speed to effectively zero (the immediate-stop
// action). It does not affect the state machine.
func (s *Session) Halt() {
	if s.State == StatePlaying {
		s.Car.Halt()
	}
}

// Reset starts a fresh play-through: vehicle back at the start pose, a new
// field generated from the given seed, state back to Playing.
func (s *Session) Reset(seed uint64) {
	s.Car.Reset(s.cfg.StartX, s.cfg.StartY, 0)
	s.Obstacles = GenerateObstacles(s.cfg, seed)
	s.Seed = seed
	s.State = StatePlaying
}

// NextSeed derives a fresh, decorrelated seed from any source value,
// typically a clock reading at reset time.
func NextSeed(src uint64) uint64 { return splitmix64(src) }
