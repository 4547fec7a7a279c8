// Package assets loads sprites and audio from a directory on disk. Assets are
// optional: anything missing is reported once and callers draw or play
// without it.
package assets

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

const sampleRate = 44100

var (
	audioOnce    sync.Once
	audioContext *audio.Context
)

func sharedAudioContext() *audio.Context {
	audioOnce.Do(func() {
		audioContext = audio.NewContext(sampleRate)
	})
	return audioContext
}

// Loader caches images by assets-relative path.
type Loader struct {
	dir string

	mu      sync.Mutex
	images  map[string]*ebiten.Image
	missing map[string]bool
}

func NewLoader(dir string) *Loader {
	return &Loader{
		dir:     dir,
		images:  map[string]*ebiten.Image{},
		missing: map[string]bool{},
	}
}

// LoadFile reads an asset by assets-relative path.
func (l *Loader) LoadFile(path string) ([]byte, error) {
	return os.ReadFile(filepath.Join(l.dir, filepath.FromSlash(cleanAssetPath(path))))
}

// Image returns the decoded image for path, or false when it is missing or
// undecodable. Failures are logged the first time only.
func (l *Loader) Image(path string) (*ebiten.Image, bool) {
	clean := cleanAssetPath(path)

	l.mu.Lock()
	defer l.mu.Unlock()
	if img, ok := l.images[clean]; ok {
		return img, true
	}
	if l.missing[clean] {
		return nil, false
	}

	img, err := l.decodeImage(clean)
	if err != nil {
		l.missing[clean] = true
		log.Printf("assets: load %s: %v", clean, err)
		return nil, false
	}
	l.images[clean] = img
	return img, true
}

func (l *Loader) decodeImage(clean string) (*ebiten.Image, error) {
	b, err := l.LoadFile(clean)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	return ebiten.NewImageFromImage(img), nil
}

// AudioPlayer decodes an mp3 or wav asset into a player.
func (l *Loader) AudioPlayer(path string) (*audio.Player, error) {
	b, err := l.LoadFile(path)
	if err != nil {
		return nil, err
	}

	ctx := sharedAudioContext()
	reader := bytes.NewReader(b)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		stream, err := mp3.DecodeWithSampleRate(ctx.SampleRate(), reader)
		if err != nil {
			return nil, fmt.Errorf("decode mp3 %q: %w", path, err)
		}
		return ctx.NewPlayer(stream)
	case ".wav":
		stream, err := wav.DecodeWithSampleRate(ctx.SampleRate(), reader)
		if err != nil {
			return nil, fmt.Errorf("decode wav %q: %w", path, err)
		}
		return ctx.NewPlayer(stream)
	}

	// Fallback for already-decoded PCM assets in Ebiten's native format.
	return ctx.NewPlayerFromBytes(b), nil
}

func cleanAssetPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	s = strings.TrimPrefix(s, "/")
	if after, ok := strings.CutPrefix(s, "public/"); ok {
		return after
	}
	return s
}
