package sim

// Viewport maps world coordinates (0..WorldSize, y up) onto a fixed pixel
// rectangle inset by Margin, with the y-axis flipped for screen space.
// Pure arithmetic; the same inputs always produce the same outputs.
type Viewport struct {
	ScreenW, ScreenH int
	Margin           int
	WorldSize        float64
}

// FieldW returns the drawable field width in pixels.
func (v Viewport) FieldW() int { return v.ScreenW - 2*v.Margin }

// FieldH returns the drawable field height in pixels.
func (v Viewport) FieldH() int { return v.ScreenH - 2*v.Margin }

// WorldToScreen maps a world position to pixel coordinates, truncating
// toward zero.
func (v Viewport) WorldToScreen(x, y float64) (int, int) {
	sx := float64(v.Margin) + (x/v.WorldSize)*float64(v.FieldW())
	sy := float64(v.Margin) + ((v.WorldSize-y)/v.WorldSize)*float64(v.FieldH())
	return int(sx), int(sy)
}

// ScreenToWorld is the inverse of WorldToScreen (up to pixel truncation).
func (v Viewport) ScreenToWorld(sx, sy int) (float64, float64) {
	x := float64(sx-v.Margin) / float64(v.FieldW()) * v.WorldSize
	y := v.WorldSize - float64(sy-v.Margin)/float64(v.FieldH())*v.WorldSize
	return x, y
}

// RadiusToPixels converts a world-unit radius to a pixel radius, matching
// the horizontal world-to-screen scale.
func (v Viewport) RadiusToPixels(r float64) int {
	return int(r / v.WorldSize * float64(v.FieldW()))
}
