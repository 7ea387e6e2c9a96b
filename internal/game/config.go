package game

// Window title.
const WindowTitle = "Top-down Car"

// Car drawing size (pixels). The sprite is scaled to this width; the
// fallback box uses both.
const (
	CarWidthPx  = 40
	CarHeightPx = 60
)

// Trajectory polyline width in pixels.
const TraceWidth = 2

// Optional top-down car sprite (pointing up), loaded from the working
// directory if present. Purely cosmetic; simulation semantics never depend
// on it.
const CarSpriteFile = "car.png"

// Environment variables honoured by Run.
const (
	EnvSeed   = "CARSIM_SEED"
	EnvConfig = "CARSIM_CONFIG"
)

// Default seed for the first field of a run. Reset picks fresh ones.
const DefaultSeed = 2
