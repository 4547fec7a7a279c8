package component

// Viewport is the host screen size injected into the world. It is replaced
// on resize instead of being read from the host on demand.
type Viewport struct {
	Width  float64
	Height float64
}

var ViewportComponent = NewComponent[Viewport]()
