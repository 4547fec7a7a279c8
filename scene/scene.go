// Package scene drives the chase simulation. Every per-frame mutation happens
// inside Step, so a renderer reading Snapshot never sees a half-applied frame.
package scene

import (
	"fmt"
	"log"
	"math"
	"time"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/raccoonrun/ecs"
	"github.com/milk9111/raccoonrun/ecs/component"
	"github.com/milk9111/raccoonrun/ecs/entity"
	"github.com/milk9111/raccoonrun/ecs/system"
	"github.com/milk9111/raccoonrun/prefabs"
)

type Option func(*Scene)

// WithInput runs sys at the start of every frame step, before intents are
// applied. The host uses it for keyboard polling.
func WithInput(sys ecs.System) Option {
	return func(s *Scene) {
		if sys != nil {
			s.input = append(s.input, sys)
		}
	}
}

// WithMusic plays the scene's background track through load. A negative
// volume keeps the prefab's level; 0 mutes.
func WithMusic(load system.MusicLoader, volume float64) Option {
	return func(s *Scene) {
		s.music = system.NewMusicSystem(load)
		s.musicVolume = volume
	}
}

// WithScriptLoader resolves pursuer speed scripts through load.
func WithScriptLoader(load func(name string) ([]byte, error)) Option {
	return func(s *Scene) {
		s.pursuer = system.NewPursuerSystemWithLoader(load)
	}
}

// WithDebug starts the scene with the debug overlay visible.
func WithDebug(visible bool) Option {
	return func(s *Scene) {
		s.debug = visible
	}
}

// Scene owns the simulation world and its two cadences: the frame step and
// the animation clock.
type Scene struct {
	spec     *prefabs.SceneSpec
	viewport component.Viewport

	world     *ecs.World
	animation *ecs.Scheduler
	animAcc   time.Duration

	input       []ecs.System
	pursuer     *system.PursuerSystem
	restart     *system.RestartSystem
	music       *system.MusicSystem
	musicVolume float64
	debug       bool

	// started is set by the first Step after a build.
	started bool

	state     ecs.Entity
	character ecs.Entity
	portal    ecs.Entity
}

func New(spec *prefabs.SceneSpec, vp component.Viewport, opts ...Option) (*Scene, error) {
	if spec == nil {
		spec = prefabs.DefaultSceneSpec()
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}

	s := &Scene{spec: spec, viewport: sanitizeViewport(vp), musicVolume: -1}
	for _, opt := range opts {
		opt(s)
	}
	if s.pursuer == nil {
		s.pursuer = system.NewPursuerSystem()
	}
	s.restart = system.NewRestartSystem()
	s.animation = ecs.NewScheduler(system.NewAnimationSystem())

	if err := s.build(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Scene) build() error {
	w := ecs.NewWorld()
	for _, sys := range s.input {
		w.AddSystem(sys)
	}
	w.AddSystem(system.NewCharacterStateSystem())
	w.AddSystem(system.NewDebugSystem())
	w.AddSystem(system.NewMovementSystem())
	w.AddSystem(s.pursuer)
	w.AddSystem(system.NewScrollSystem())
	if s.music != nil {
		w.AddSystem(s.music)
	}
	w.AddSystem(s.restart)

	state, err := entity.NewSceneState(w, s.spec, s.viewport)
	if err != nil {
		return err
	}
	character, err := entity.NewCharacter(w, s.spec)
	if err != nil {
		return err
	}
	portal, err := entity.NewPursuer(w, s.spec, s.viewport)
	if err != nil {
		return err
	}
	if overlay, ok := ecs.Get(w, state, component.DebugOverlayComponent.Kind()); ok {
		overlay.Visible = s.debug
	}
	if s.music != nil && s.spec.Music.Track != "" {
		volume := s.musicVolume
		if volume < 0 {
			volume = s.spec.Music.Level()
		}
		system.RequestMusic(w, s.spec.Music.Track, volume)
	}

	s.world = w
	s.state = state
	s.character = character
	s.portal = portal
	s.animAcc = 0
	s.started = false
	// Drop a restart latched by the old world.
	s.restart.Requested()
	s.clampToViewport()
	log.Printf("scene: start %s viewport=%.0fx%.0f", s.spec.Name, s.viewport.Width, s.viewport.Height)
	return nil
}

// Reset restarts the scene from its spec. Pending jump deadlines and queued
// intents are discarded together with the old world.
func (s *Scene) Reset() error {
	debug := s.Snapshot().DebugVisible
	s.debug = debug
	return s.build()
}

// Apply queues intents for the next Step.
func (s *Scene) Apply(intents ...component.Intent) {
	for _, in := range intents {
		system.PushIntent(s.world, in)
	}
}

// Step advances the simulation by dt. Character, movement, pursuer and
// scroll updates run as one frame; the animation clock then advances by the
// whole intervals that elapsed.
func (s *Scene) Step(dt time.Duration) {
	if s == nil || s.world == nil {
		return
	}
	if dt < 0 {
		dt = 0
	}

	ft, ok := ecs.Get(s.world, s.state, component.FrameTimeComponent.Kind())
	if !ok {
		return
	}
	ft.Now += dt
	ft.Delta = dt

	interval := s.spec.Animation.Interval
	s.animAcc += dt
	ticks := s.animAcc / interval
	s.animAcc -= ticks * interval
	ft.AnimationTicks = int(ticks)

	s.started = true
	s.world.Update()
	s.animation.Update(s.world)

	if s.restart.Requested() {
		log.Printf("scene: restart %s", s.spec.Name)
		if err := s.Reset(); err != nil {
			log.Printf("scene: restart: %v", err)
		}
	}
}

// Now is the scene clock.
func (s *Scene) Now() time.Duration {
	ft, ok := ecs.Get(s.world, s.state, component.FrameTimeComponent.Kind())
	if !ok {
		return 0
	}
	return ft.Now
}

// Resize injects a new viewport. Before the first Step the scene respawns at
// the new size, keeping queued intents; after that positions are clamped into
// the new bounds right away.
func (s *Scene) Resize(width, height float64) {
	vp := sanitizeViewport(component.Viewport{Width: width, Height: height})
	if vp == s.viewport {
		return
	}
	s.viewport = vp
	if !s.started {
		queued := system.Intents(s.world)
		err := s.Reset()
		if err == nil {
			s.Apply(queued...)
			return
		}
		log.Printf("scene: respawn at %.0fx%.0f: %v", vp.Width, vp.Height, err)
	}
	if cur, ok := ecs.Get(s.world, s.state, component.ViewportComponent.Kind()); ok {
		*cur = vp
	}
	s.clampToViewport()
}

// Retune swaps the scene constants without restarting. Positions, pose and
// timers are kept.
func (s *Scene) Retune(spec *prefabs.SceneSpec) error {
	if spec == nil {
		return fmt.Errorf("scene: spec is nil")
	}
	if err := spec.Validate(); err != nil {
		return fmt.Errorf("scene: %w", err)
	}
	s.spec = spec

	if t, ok := ecs.Get(s.world, s.state, component.TuningComponent.Kind()); ok {
		*t = spec.Tuning()
	}
	if anim, ok := ecs.Get(s.world, s.character, component.AnimationComponent.Kind()); ok {
		anim.MaxFrames = spec.FrameCounts()
	}
	if p, ok := ecs.Get(s.world, s.portal, component.PursuerComponent.Kind()); ok {
		p.MultiplierCeiling = spec.Pursuer.MultiplierCeiling
		p.Script = spec.Pursuer.SpeedScript
	}
	if tr, ok := ecs.Get(s.world, s.portal, component.TransformComponent.Kind()); ok {
		tr.Y = spec.Pursuer.Y
	}
	s.pursuer.Invalidate()
	s.clampToViewport()
	return nil
}

// Snapshot copies the state a renderer needs.
func (s *Scene) Snapshot() Snapshot {
	var snap Snapshot
	if s == nil || s.world == nil {
		return snap
	}
	w := s.world

	if t, ok := ecs.Get(w, s.state, component.TuningComponent.Kind()); ok {
		snap.Tuning = *t
		snap.WallX = t.WallX(s.viewport)
	}
	snap.Viewport = s.viewport
	if sc, ok := ecs.Get(w, s.state, component.ScrollComponent.Kind()); ok {
		snap.ScrollOffset = sc.Offset
	}
	if d, ok := ecs.Get(w, s.state, component.DebugOverlayComponent.Kind()); ok {
		snap.DebugVisible = d.Visible
	}
	if c, ok := ecs.Get(w, s.character, component.CharacterComponent.Kind()); ok {
		snap.Pose = c.Pose
		snap.Facing = c.Facing
		snap.ReachedWall = c.ReachedWall
	}
	if tr, ok := ecs.Get(w, s.character, component.TransformComponent.Kind()); ok {
		snap.CharacterX = math.Min(tr.X, snap.WallX)
		snap.CharacterOffsetY = tr.OffsetY
	}
	if anim, ok := ecs.Get(w, s.character, component.AnimationComponent.Kind()); ok {
		snap.Frame = anim.Frame
	}
	if tr, ok := ecs.Get(w, s.portal, component.TransformComponent.Kind()); ok {
		snap.PursuerX = tr.X
		snap.PursuerY = tr.Y
	}
	return snap
}

func (s *Scene) clampToViewport() {
	t, ok := ecs.Get(s.world, s.state, component.TuningComponent.Kind())
	if !ok {
		return
	}
	if tr, ok := ecs.Get(s.world, s.character, component.TransformComponent.Kind()); ok {
		c, _ := ecs.Get(s.world, s.character, component.CharacterComponent.Kind())
		limit := t.CharacterLimit(s.viewport)
		if c != nil && c.ReachedWall {
			tr.X = limit
		} else {
			lo, hi := t.CharacterBounds(s.viewport)
			tr.X = cp.Clamp(tr.X, lo, hi)
		}
	}
	if tr, ok := ecs.Get(s.world, s.portal, component.TransformComponent.Kind()); ok {
		lo, hi := t.PursuerBand(s.viewport)
		tr.X = cp.Clamp(tr.X, lo, hi)
	}
}

func sanitizeViewport(vp component.Viewport) component.Viewport {
	if !(vp.Width > 0) {
		vp.Width = 0
	}
	if !(vp.Height > 0) {
		vp.Height = 0
	}
	return vp
}
