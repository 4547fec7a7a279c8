package system

import (
	"log"
	"math"
	"strings"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/raccoonrun/ecs"
	"github.com/milk9111/raccoonrun/ecs/component"
	"github.com/milk9111/raccoonrun/prefabs"
)

// SpeedRule computes the raw speed multiplier of the pursuer for a distance.
// The result is always passed through the floor, ceiling and finite checks.
type SpeedRule interface {
	Multiplier(distance float64) (float64, error)
}

// RubberBand is the built-in rule: the farther away, the faster.
type RubberBand struct {
	Scale float64
	Gain  float64
}

func (r RubberBand) Multiplier(distance float64) (float64, error) {
	if !(distance > 0) {
		return 1, nil
	}
	return (r.Scale / distance) * r.Gain, nil
}

// PursuerSystem moves the portal toward the character with a distance-based
// speed multiplier, clamped to its travel band.
type PursuerSystem struct {
	loadScript func(name string) ([]byte, error)
	rules      map[string]SpeedRule
}

func NewPursuerSystem() *PursuerSystem {
	return &PursuerSystem{loadScript: prefabs.LoadScript}
}

// NewPursuerSystemWithLoader uses load to resolve speed scripts.
func NewPursuerSystemWithLoader(load func(name string) ([]byte, error)) *PursuerSystem {
	return &PursuerSystem{loadScript: load}
}

// Invalidate drops compiled scripts so the next update recompiles them.
func (p *PursuerSystem) Invalidate() {
	if p == nil {
		return
	}
	p.rules = nil
}

func (p *PursuerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ctx, ok := loadSceneContext(w)
	if !ok {
		return
	}

	charEnt, ok := ecs.First(w, component.CharacterComponent.Kind())
	if !ok {
		return
	}
	charTr, ok := ecs.Get(w, charEnt, component.TransformComponent.Kind())
	if !ok {
		return
	}

	scale := ctx.frame.Scale()
	ecs.ForEach2(w, component.PursuerComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, pc *component.Pursuer, tr *component.Transform) {
		distance := tr.X - charTr.X
		m := p.multiplier(pc, distance, *ctx.tuning)
		tr.X = StepPursuer(tr.X, m, *ctx.tuning, *ctx.viewport, scale)
	})
}

func (p *PursuerSystem) multiplier(pc *component.Pursuer, distance float64, t component.Tuning) float64 {
	builtin := RubberBand{Scale: t.DistanceScale, Gain: t.DistanceGain}
	var rule SpeedRule = builtin
	if name := strings.TrimSpace(pc.Script); name != "" {
		if r := p.scriptRule(name); r != nil {
			rule = r
		}
	}

	raw, err := rule.Multiplier(distance)
	if err != nil {
		log.Printf("pursuer: script %s: %v", pc.Script, err)
		raw, _ = builtin.Multiplier(distance)
	}
	return ClampMultiplier(raw, pc.MultiplierCeiling)
}

func (p *PursuerSystem) scriptRule(name string) SpeedRule {
	if p.rules == nil {
		p.rules = make(map[string]SpeedRule)
	}
	if r, ok := p.rules[name]; ok {
		return r
	}

	// a failed load is cached as nil so it is reported once
	p.rules[name] = nil
	if p.loadScript == nil {
		return nil
	}
	src, err := p.loadScript(name)
	if err != nil {
		log.Printf("pursuer: load script %s: %v", name, err)
		return nil
	}
	r, err := NewScriptRule(src)
	if err != nil {
		log.Printf("pursuer: compile script %s: %v", name, err)
		return nil
	}
	p.rules[name] = r
	return r
}

// ClampMultiplier floors the multiplier at 1, applies the optional ceiling
// (ceiling <= 0 disables it) and maps non-finite values to 1.
func ClampMultiplier(m, ceiling float64) float64 {
	if math.IsNaN(m) || m < 1 {
		m = 1
	}
	if ceiling > 0 && m > ceiling {
		m = math.Max(1, ceiling)
	}
	if math.IsInf(m, 0) {
		return 1
	}
	return m
}

// StepPursuer returns the pursuer position after one step of scale reference
// ticks with the given multiplier.
func StepPursuer(x, multiplier float64, t component.Tuning, vp component.Viewport, scale float64) float64 {
	delta := (t.GateSpeed*multiplier - t.GameSpeed) * scale
	lo, hi := t.PursuerBand(vp)
	return cp.Clamp(x+delta, lo, hi)
}
