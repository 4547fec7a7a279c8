package common

// Base resolution the window opens with when no monitor size is available.
const (
	BaseWidth  = 1280
	BaseHeight = 720
)

// ClampDelta caps a measured frame delta. Negative deltas become zero and
// a non-positive limit disables the cap.
func ClampDelta(d, limit int64) int64 {
	if d < 0 {
		return 0
	}
	if limit > 0 && d > limit {
		return limit
	}
	return d
}
