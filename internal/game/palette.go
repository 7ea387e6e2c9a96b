package game

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

// Scene palette.
var (
	ColorBg     = RGB{R: 30, G: 30, B: 30}
	ColorField  = RGB{R: 40, G: 40, B: 48}
	ColorObs    = RGB{R: 200, G: 140, B: 18}
	ColorGoal   = RGB{R: 32, G: 200, B: 60}
	ColorText   = RGB{R: 230, G: 230, B: 230}
	ColorCarBox = RGB{R: 80, G: 160, B: 240}
	ColorTrace  = RGB{R: 200, G: 200, B: 255}

	ColorWin   = RGB{R: 200, G: 255, B: 200}
	ColorCrash = RGB{R: 255, G: 160, B: 160}
)
