package component

// MusicRequest is a one-shot, fire-and-forget request for background music.
// The music system consumes the request entity on its next update.
type MusicRequest struct {
	Track  string
	Volume float64
	Loop   bool
}

var MusicRequestComponent = NewComponent[MusicRequest]()
