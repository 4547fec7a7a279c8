package component

type DebugOverlay struct {
	Visible bool
}

var DebugOverlayComponent = NewComponent[DebugOverlay]()
