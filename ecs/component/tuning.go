package component

import (
	"math"
	"time"
)

// Tuning holds the scene constants. Speeds are pixels per reference tick
// (see ReferenceTPS).
type Tuning struct {
	GameSpeed     float64
	MoveSpeed     float64
	JumpHeight    float64
	JumpOffset    float64
	CharacterSize float64
	StartX        float64

	JumpDuration      time.Duration
	JumpCooldown      time.Duration
	AnimationInterval time.Duration

	GateSpeed          float64
	WallFraction       float64
	PursuerMinFraction float64
	PursuerMargin      float64
	// DistanceScale is the numerator of the rubber-band multiplier,
	// multiplier = (DistanceScale/distance) * DistanceGain.
	DistanceScale float64
	DistanceGain  float64
}

// DefaultTuning returns the stock chase constants.
func DefaultTuning() Tuning {
	return Tuning{
		GameSpeed:          8,
		MoveSpeed:          15,
		JumpHeight:         300,
		JumpOffset:         100,
		CharacterSize:      200,
		StartX:             100,
		JumpDuration:       500 * time.Millisecond,
		JumpCooldown:       100 * time.Millisecond,
		AnimationInterval:  50 * time.Millisecond,
		GateSpeed:          32,
		WallFraction:       0.35,
		PursuerMinFraction: 0.7,
		PursuerMargin:      200,
		DistanceScale:      1000,
		DistanceGain:       2,
	}
}

// CrouchHeight is the vertical offset while crouching.
func (t Tuning) CrouchHeight() float64 {
	return t.CharacterSize / 2
}

// WallX is the invisible wall coordinate for the viewport.
func (t Tuning) WallX(vp Viewport) float64 {
	return nonNegative(vp.Width * t.WallFraction)
}

// CharacterBounds is the range directional movement may place the character in.
func (t Tuning) CharacterBounds(vp Viewport) (lo, hi float64) {
	return 0, nonNegative(vp.Width - t.CharacterSize)
}

// CharacterLimit is the highest X the character can ever hold.
func (t Tuning) CharacterLimit(vp Viewport) float64 {
	_, hi := t.CharacterBounds(vp)
	return math.Min(hi, t.WallX(vp))
}

// PursuerBand is the travel band of the pursuer. On narrow viewports the
// upper edge wins and the band collapses to a single point.
func (t Tuning) PursuerBand(vp Viewport) (lo, hi float64) {
	hi = nonNegative(vp.Width - t.PursuerMargin)
	lo = math.Min(nonNegative(vp.Width*t.PursuerMinFraction), hi)
	return lo, hi
}

func nonNegative(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if math.IsInf(v, 1) {
		return math.MaxFloat64
	}
	return v
}

var TuningComponent = NewComponent[Tuning]()
