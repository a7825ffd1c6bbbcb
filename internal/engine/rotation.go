package engine

import "time"

// RotationState is the per-frame rotation, threaded by the caller into
// each RenderFrame call. The external tick loop owns it; the engine
// never keeps rotation state of its own.
type RotationState struct {
	X, Y, Z float64

	// Per-axis speeds in radians per second, used by Advance.
	SpeedX, SpeedY, SpeedZ float64
}

// Advance returns the state advanced by dt. The receiver is unchanged.
func (r RotationState) Advance(dt time.Duration) RotationState {
	s := dt.Seconds()
	r.X += r.SpeedX * s
	r.Y += r.SpeedY * s
	r.Z += r.SpeedZ * s
	return r
}
