package physics

// Body is a circular body in the arena. Position and velocity are in pixels (velocity is pixels per step),
// origin at the top-left corner. Bodies are plain values; the World stores them contiguously.
type Body struct {
	X, Y      float32
	VX, VY    float32
	Radius    float32
	Color     uint32 // 0xRRGGBB
	JustSplit bool   // set for the one step after a split; blocks another split on that step
}

// Seed body constants: every World starts with one body of this shape at the arena center.
const (
	seedVX     = 8
	seedVY     = -6
	seedRadius = 60
	seedColor  = 0xFF4444
)

// minRadius is the smallest radius a body may have. Splits that would go below it are refused.
const minRadius = 1.0

// NewBody returns a body at (x, y) with the given velocity, radius and color. Cooldown is clear.
func NewBody(x, y, vx, vy, radius float32, color uint32) Body {
	return Body{X: x, Y: y, VX: vx, VY: vy, Radius: radius, Color: color & 0xFFFFFF}
}

// RGB unpacks the 24-bit color into 8-bit channels.
func (b Body) RGB() (r, g, bl uint8) {
	return uint8(b.Color >> 16), uint8(b.Color >> 8), uint8(b.Color)
}
