package system

import (
	"errors"
	"testing"

	"github.com/milk9111/raccoonrun/ecs"
	"github.com/milk9111/raccoonrun/ecs/component"
)

type fakePlayer struct {
	playing bool
	plays   int
	rewinds int
	volume  float64
}

func (p *fakePlayer) Play() {
	p.playing = true
	p.plays++
}

func (p *fakePlayer) IsPlaying() bool { return p.playing }

func (p *fakePlayer) Rewind() error {
	p.rewinds++
	return nil
}

func (p *fakePlayer) SetVolume(volume float64) { p.volume = volume }

func TestMusicSystemPlaysAndLoops(t *testing.T) {
	w := ecs.NewWorld()
	player := &fakePlayer{}
	loads := 0
	sys := NewMusicSystem(func(track string) (MusicPlayer, error) {
		loads++
		return player, nil
	})

	RequestMusic(w, "arcade.mp3", 0.5)
	sys.Update(w)

	if loads != 1 || !player.playing || player.volume != 0.5 {
		t.Fatalf("unexpected player state %+v after %d loads", player, loads)
	}
	if sys.Track() != "arcade.mp3" {
		t.Fatalf("track = %q", sys.Track())
	}
	if _, ok := ecs.First(w, component.MusicRequestComponent.Kind()); ok {
		t.Fatalf("request entity should be consumed")
	}

	player.playing = false
	sys.Update(w)
	if player.rewinds != 1 || !player.playing {
		t.Fatalf("expected loop restart, got %+v", player)
	}

	RequestMusic(w, "arcade.mp3", 1)
	sys.Update(w)
	if loads != 1 {
		t.Fatalf("same track should not reload, got %d loads", loads)
	}
}

func TestMusicSystemVolume(t *testing.T) {
	tests := []struct {
		name   string
		volume float64
		want   float64
	}{
		{"mute", 0, 0},
		{"negative", -0.5, 0},
		{"too_loud", 2, 1},
		{"quiet", 0.25, 0.25},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := ecs.NewWorld()
			player := &fakePlayer{}
			sys := NewMusicSystem(func(string) (MusicPlayer, error) { return player, nil })
			RequestMusic(w, "arcade.mp3", tc.volume)
			sys.Update(w)
			if player.volume != tc.want {
				t.Fatalf("volume = %v, want %v", player.volume, tc.want)
			}
		})
	}
}

func TestMusicSystemFailedLoad(t *testing.T) {
	tests := []struct {
		name string
		load MusicLoader
	}{
		{"error", func(string) (MusicPlayer, error) { return nil, errors.New("no such file") }},
		{"nil_player", func(string) (MusicPlayer, error) { return nil, nil }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := ecs.NewWorld()
			calls := 0
			sys := NewMusicSystem(func(track string) (MusicPlayer, error) {
				calls++
				return tc.load(track)
			})
			RequestMusic(w, "missing.mp3", 1)
			sys.Update(w)
			RequestMusic(w, "missing.mp3", 1)
			sys.Update(w)
			if calls != 1 {
				t.Fatalf("failed track should be tried once, got %d", calls)
			}
			if sys.Track() != "" {
				t.Fatalf("no track should be assigned, got %q", sys.Track())
			}
		})
	}
}
