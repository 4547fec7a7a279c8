package prefabs

import (
	"errors"
	"fmt"
	"time"

	"github.com/milk9111/raccoonrun/ecs/component"
	"gopkg.in/yaml.v3"
)

// ErrInvalidSpec reports a prefab that decodes but cannot drive a scene.
var ErrInvalidSpec = errors.New("prefabs: invalid spec")

const DefaultScene = "scene.yaml"

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type MusicSpec struct {
	Track string `yaml:"track"`
	// Volume is in [0, 1]; 0 mutes. Leaving it out plays at full volume.
	Volume *float64 `yaml:"volume"`
}

// Level is the playback volume the prefab asks for.
func (m MusicSpec) Level() float64 {
	if m.Volume == nil {
		return 1
	}
	return *m.Volume
}

type CharacterSpec struct {
	StartX       float64       `yaml:"start_x"`
	Size         float64       `yaml:"size"`
	MoveSpeed    float64       `yaml:"move_speed"`
	JumpHeight   float64       `yaml:"jump_height"`
	JumpOffset   float64       `yaml:"jump_offset"`
	JumpDuration time.Duration `yaml:"jump_duration"`
	JumpCooldown time.Duration `yaml:"jump_cooldown"`
}

type AnimationSpec struct {
	Interval time.Duration  `yaml:"interval"`
	Frames   map[string]int `yaml:"frames"`
}

type WorldSpec struct {
	GameSpeed    float64 `yaml:"game_speed"`
	WallFraction float64 `yaml:"wall_fraction"`
}

type PursuerSpec struct {
	Y                 float64 `yaml:"y"`
	GateSpeed         float64 `yaml:"gate_speed"`
	MinFraction       float64 `yaml:"min_fraction"`
	Margin            float64 `yaml:"margin"`
	DistanceScale     float64 `yaml:"distance_scale"`
	DistanceGain      float64 `yaml:"distance_gain"`
	MultiplierCeiling float64 `yaml:"multiplier_ceiling"`
	SpeedScript       string  `yaml:"speed_script"`
}

// SceneSpec is the tunable description of the chase scene.
type SceneSpec struct {
	Name      string        `yaml:"name"`
	Music     MusicSpec     `yaml:"music"`
	Character CharacterSpec `yaml:"character"`
	Animation AnimationSpec `yaml:"animation"`
	World     WorldSpec     `yaml:"world"`
	Pursuer   PursuerSpec   `yaml:"pursuer"`
}

// LoadSceneSpec loads and validates a scene prefab.
func LoadSceneSpec(name string) (*SceneSpec, error) {
	if name == "" {
		name = DefaultScene
	}
	spec, err := LoadSpec[SceneSpec](name)
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", name, err)
	}
	return &spec, nil
}

// DefaultSceneSpec mirrors the embedded scene.yaml.
func DefaultSceneSpec() *SceneSpec {
	t := component.DefaultTuning()
	volume := 1.0
	return &SceneSpec{
		Name:  "portal_chase",
		Music: MusicSpec{Track: "arcade.mp3", Volume: &volume},
		Character: CharacterSpec{
			StartX:       t.StartX,
			Size:         t.CharacterSize,
			MoveSpeed:    t.MoveSpeed,
			JumpHeight:   t.JumpHeight,
			JumpOffset:   t.JumpOffset,
			JumpDuration: t.JumpDuration,
			JumpCooldown: t.JumpCooldown,
		},
		Animation: AnimationSpec{
			Interval: t.AnimationInterval,
			Frames:   map[string]int{"idle": 11, "run": 11, "jump": 11, "crouch": 11},
		},
		World: WorldSpec{GameSpeed: t.GameSpeed, WallFraction: t.WallFraction},
		Pursuer: PursuerSpec{
			Y:             20,
			GateSpeed:     t.GateSpeed,
			MinFraction:   t.PursuerMinFraction,
			Margin:        t.PursuerMargin,
			DistanceScale: t.DistanceScale,
			DistanceGain:  t.DistanceGain,
		},
	}
}

// Validate rejects values the simulation cannot clamp its way out of.
func (s *SceneSpec) Validate() error {
	if s == nil {
		return ErrInvalidSpec
	}
	switch {
	case s.Character.Size <= 0:
		return fmt.Errorf("%w: character.size must be positive", ErrInvalidSpec)
	case s.Character.JumpDuration <= 0:
		return fmt.Errorf("%w: character.jump_duration must be positive", ErrInvalidSpec)
	case s.Character.JumpCooldown < 0:
		return fmt.Errorf("%w: character.jump_cooldown must not be negative", ErrInvalidSpec)
	case s.Animation.Interval <= 0:
		return fmt.Errorf("%w: animation.interval must be positive", ErrInvalidSpec)
	case s.World.GameSpeed < 0:
		return fmt.Errorf("%w: world.game_speed must not be negative", ErrInvalidSpec)
	case s.World.WallFraction < 0 || s.World.WallFraction > 1:
		return fmt.Errorf("%w: world.wall_fraction must be within [0, 1]", ErrInvalidSpec)
	case s.Pursuer.MinFraction < 0 || s.Pursuer.MinFraction > 1:
		return fmt.Errorf("%w: pursuer.min_fraction must be within [0, 1]", ErrInvalidSpec)
	case s.Pursuer.DistanceScale < 0 || s.Pursuer.DistanceGain < 0:
		return fmt.Errorf("%w: pursuer distance terms must not be negative", ErrInvalidSpec)
	}
	for pose, n := range s.Animation.Frames {
		if _, ok := poseNames[pose]; !ok {
			return fmt.Errorf("%w: animation.frames: unknown pose %q", ErrInvalidSpec, pose)
		}
		if n < 1 {
			return fmt.Errorf("%w: animation.frames.%s must be at least 1", ErrInvalidSpec, pose)
		}
	}
	return nil
}

var poseNames = map[string]component.Pose{
	component.PoseIdle.String():      component.PoseIdle,
	component.PoseRunning.String():   component.PoseRunning,
	component.PoseJumping.String():   component.PoseJumping,
	component.PoseCrouching.String(): component.PoseCrouching,
}

// Tuning converts the spec into simulation constants.
func (s *SceneSpec) Tuning() component.Tuning {
	return component.Tuning{
		GameSpeed:          s.World.GameSpeed,
		MoveSpeed:          s.Character.MoveSpeed,
		JumpHeight:         s.Character.JumpHeight,
		JumpOffset:         s.Character.JumpOffset,
		CharacterSize:      s.Character.Size,
		StartX:             s.Character.StartX,
		JumpDuration:       s.Character.JumpDuration,
		JumpCooldown:       s.Character.JumpCooldown,
		AnimationInterval:  s.Animation.Interval,
		GateSpeed:          s.Pursuer.GateSpeed,
		WallFraction:       s.World.WallFraction,
		PursuerMinFraction: s.Pursuer.MinFraction,
		PursuerMargin:      s.Pursuer.Margin,
		DistanceScale:      s.Pursuer.DistanceScale,
		DistanceGain:       s.Pursuer.DistanceGain,
	}
}

// FrameCounts returns the per-pose wrap bounds.
func (s *SceneSpec) FrameCounts() map[component.Pose]int {
	out := make(map[component.Pose]int, len(poseNames))
	for name, pose := range poseNames {
		if n, ok := s.Animation.Frames[name]; ok {
			out[pose] = n
		}
	}
	return out
}
