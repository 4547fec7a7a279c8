package component

// Scroll is the background scroll accumulator. Offset only ever decreases.
type Scroll struct {
	Offset float64
}

var ScrollComponent = NewComponent[Scroll]()
