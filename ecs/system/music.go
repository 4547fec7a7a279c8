package system

import (
	"log"
	"strings"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/raccoonrun/ecs"
	"github.com/milk9111/raccoonrun/ecs/component"
)

// MusicPlayer is the playback side of the audio collaborator.
// *audio.Player from ebiten satisfies it.
type MusicPlayer interface {
	Play()
	IsPlaying() bool
	Rewind() error
	SetVolume(volume float64)
}

// MusicLoader opens a player for a track.
type MusicLoader func(track string) (MusicPlayer, error)

// MusicSystem consumes MusicRequest entities and keeps a single background
// track playing. A track that fails to load is reported once and skipped;
// the scene keeps running without sound.
type MusicSystem struct {
	load    MusicLoader
	current MusicPlayer
	track   string
	loop    bool
	failed  map[string]bool
}

func NewMusicSystem(load MusicLoader) *MusicSystem {
	return &MusicSystem{load: load, failed: map[string]bool{}}
}

// RequestMusic queues a looping background track.
func RequestMusic(w *ecs.World, track string, volume float64) {
	if w == nil {
		return
	}
	ent := ecs.CreateEntity(w)
	_ = ecs.Add(w, ent, component.MusicRequestComponent.Kind(), &component.MusicRequest{Track: track, Volume: volume, Loop: true})
}

func (m *MusicSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	latest, requests := m.consumeLatestRequest(w)
	for _, ent := range requests {
		ecs.DestroyEntity(w, ent)
	}
	if latest != nil {
		m.applyRequest(*latest)
	}

	if m.current != nil && m.loop && !m.current.IsPlaying() {
		if err := m.current.Rewind(); err != nil {
			log.Printf("music: rewind %s: %v", m.track, err)
			return
		}
		m.current.Play()
	}
}

// Track reports the track currently assigned, if any.
func (m *MusicSystem) Track() string {
	return m.track
}

func (m *MusicSystem) consumeLatestRequest(w *ecs.World) (*component.MusicRequest, []ecs.Entity) {
	var latest *component.MusicRequest
	var entities []ecs.Entity
	ecs.ForEach(w, component.MusicRequestComponent.Kind(), func(ent ecs.Entity, req *component.MusicRequest) {
		entities = append(entities, ent)
		copy := *req
		latest = &copy
	})
	return latest, entities
}

func (m *MusicSystem) applyRequest(req component.MusicRequest) {
	track := strings.TrimSpace(req.Track)
	if track == "" || track == m.track || m.load == nil || m.failed[track] {
		return
	}

	player, err := m.load(track)
	if err != nil || player == nil {
		m.failed[track] = true
		log.Printf("music: load %s: %v", track, err)
		return
	}

	volume := cp.Clamp(req.Volume, 0, 1)

	m.current = player
	m.track = track
	m.loop = req.Loop
	player.SetVolume(volume)
	player.Play()
}
