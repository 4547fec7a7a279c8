package component

// Pursuer marks the portal chasing the character. Its position lives in the
// entity's Transform.
type Pursuer struct {
	// MultiplierCeiling caps the speed multiplier; zero or less means no cap.
	MultiplierCeiling float64
	// Script optionally names a tengo script computing the multiplier.
	Script string
}

var PursuerComponent = NewComponent[Pursuer]()
