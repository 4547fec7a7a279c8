package system

import (
	"time"

	"github.com/milk9111/raccoonrun/ecs"
	"github.com/milk9111/raccoonrun/ecs/component"
)

// CharacterStateSystem runs the character state machine: the active state's
// timed update first, then every queued intent in order. It runs first in the
// frame step so movement and animation see the pose of this step.
type CharacterStateSystem struct{}

func NewCharacterStateSystem() *CharacterStateSystem {
	return &CharacterStateSystem{}
}

func (s *CharacterStateSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ctx, ok := loadSceneContext(w)
	if !ok {
		return
	}

	intents := Intents(w)
	now := ctx.frame.Now
	ecs.ForEach2(w, component.CharacterComponent.Kind(), component.CharacterStateMachineComponent.Kind(), func(_ ecs.Entity, c *component.Character, sm *component.CharacterStateMachine) {
		UpdateCharacterState(sm, c, now, *ctx.tuning)
		for _, in := range intents {
			ApplyIntent(sm, c, in, now, *ctx.tuning)
		}
	})
}

// UpdateCharacterState runs the active state's Update at now.
func UpdateCharacterState(sm *component.CharacterStateMachine, c *component.Character, now time.Duration, t component.Tuning) {
	if sm == nil || c == nil {
		return
	}
	ctx := newCharacterStateContext(sm, c, now, t, component.IntentNone)
	sm.State.Update(ctx)
	commitCharacterState(sm, ctx)
}

// ApplyIntent hands one intent to the active state. It reports whether the
// intent was accepted.
func ApplyIntent(sm *component.CharacterStateMachine, c *component.Character, in component.Intent, now time.Duration, t component.Tuning) bool {
	if sm == nil || c == nil {
		return false
	}
	ctx := newCharacterStateContext(sm, c, now, t, in)
	accepted := sm.State.HandleInput(ctx)
	commitCharacterState(sm, ctx)
	return accepted
}

func newCharacterStateContext(sm *component.CharacterStateMachine, c *component.Character, now time.Duration, t component.Tuning, in component.Intent) *component.CharacterStateContext {
	ctx := &component.CharacterStateContext{
		Character: c,
		Tuning:    t,
		Now:       now,
		Intent:    in,
		ChangeState: func(state component.CharacterState) {
			sm.Pending = state
		},
	}
	if sm.State == nil {
		sm.State = groundState(c)
		sm.State.Enter(ctx)
	}
	return ctx
}

// commitCharacterState swaps in the pending state. Changing to the active
// state is a no-op.
func commitCharacterState(sm *component.CharacterStateMachine, ctx *component.CharacterStateContext) {
	next := sm.Pending
	sm.Pending = nil
	if next == nil || next == sm.State {
		return
	}
	sm.State.Exit(ctx)
	sm.State = next
	sm.State.Enter(ctx)
}

// Character state singletons (avoid allocations on transitions).
var (
	characterStateIdle   component.CharacterState = &characterIdleState{}
	characterStateRun    component.CharacterState = &characterRunState{}
	characterStateJump   component.CharacterState = &characterJumpState{}
	characterStateCrouch component.CharacterState = &characterCrouchState{}
)

type characterIdleState struct{}

type characterRunState struct{}

type characterJumpState struct{}

type characterCrouchState struct{}

// groundState is the state the character settles in when it is not jumping.
func groundState(c *component.Character) component.CharacterState {
	switch c.GroundPose() {
	case component.PoseCrouching:
		return characterStateCrouch
	case component.PoseRunning:
		return characterStateRun
	default:
		return characterStateIdle
	}
}

func (characterIdleState) Name() string { return "idle" }
func (characterIdleState) Enter(ctx *component.CharacterStateContext) {
	enterGround(ctx, component.PoseIdle)
}
func (characterIdleState) Exit(ctx *component.CharacterStateContext) {}
func (characterIdleState) HandleInput(ctx *component.CharacterStateContext) bool {
	return handleGroundInput(ctx)
}
func (characterIdleState) Update(ctx *component.CharacterStateContext) {
	releaseJumpLock(ctx)
}

func (characterRunState) Name() string { return "run" }
func (characterRunState) Enter(ctx *component.CharacterStateContext) {
	enterGround(ctx, component.PoseRunning)
}
func (characterRunState) Exit(ctx *component.CharacterStateContext) {}
func (characterRunState) HandleInput(ctx *component.CharacterStateContext) bool {
	return handleGroundInput(ctx)
}
func (characterRunState) Update(ctx *component.CharacterStateContext) {
	releaseJumpLock(ctx)
}

func (characterCrouchState) Name() string { return "crouch" }
func (characterCrouchState) Enter(ctx *component.CharacterStateContext) {
	enterGround(ctx, component.PoseCrouching)
}
func (characterCrouchState) Exit(ctx *component.CharacterStateContext) {}
func (characterCrouchState) HandleInput(ctx *component.CharacterStateContext) bool {
	if ctx == nil || ctx.Intent == component.IntentCrouchStart {
		return false
	}
	return handleGroundInput(ctx)
}
func (characterCrouchState) Update(ctx *component.CharacterStateContext) {
	releaseJumpLock(ctx)
}

func (characterJumpState) Name() string { return "jump" }
func (characterJumpState) Enter(ctx *component.CharacterStateContext) {
	c := ctx.Character
	c.Pose = component.PoseJumping
	c.JumpLocked = true
	c.JumpEndsAt = ctx.Now + ctx.Tuning.JumpDuration
	c.UnlockAt = c.JumpEndsAt + ctx.Tuning.JumpCooldown
}
func (characterJumpState) Exit(ctx *component.CharacterStateContext) {}
func (characterJumpState) HandleInput(ctx *component.CharacterStateContext) bool {
	if ctx == nil || ctx.Character == nil {
		return false
	}
	c := ctx.Character
	switch ctx.Intent {
	case component.IntentMoveLeft, component.IntentMoveRight:
		steer(c, ctx.Intent)
		return true
	case component.IntentMoveEnd:
		if !c.Moving {
			return false
		}
		c.Moving = false
		return true
	case component.IntentCrouchEnd:
		if !c.Crouching {
			return false
		}
		c.Crouching = false
		return true
	default:
		// Jump and CrouchStart are refused mid-air.
		return false
	}
}
func (characterJumpState) Update(ctx *component.CharacterStateContext) {
	if ctx.Now >= ctx.Character.JumpEndsAt {
		ctx.ChangeState(groundState(ctx.Character))
	}
}

func enterGround(ctx *component.CharacterStateContext, pose component.Pose) {
	ctx.Character.Pose = pose
	releaseJumpLock(ctx)
}

// releaseJumpLock unlocks jumping once the post-landing cooldown is over.
func releaseJumpLock(ctx *component.CharacterStateContext) {
	c := ctx.Character
	if c.JumpLocked && ctx.Now >= c.UnlockAt {
		c.JumpLocked = false
	}
}

func handleGroundInput(ctx *component.CharacterStateContext) bool {
	if ctx == nil || ctx.Character == nil || ctx.ChangeState == nil {
		return false
	}
	c := ctx.Character
	switch ctx.Intent {
	case component.IntentMoveLeft, component.IntentMoveRight:
		steer(c, ctx.Intent)
	case component.IntentMoveEnd:
		if !c.Moving {
			return false
		}
		c.Moving = false
	case component.IntentJump:
		if c.JumpLocked {
			return false
		}
		ctx.ChangeState(characterStateJump)
		return true
	case component.IntentCrouchStart:
		if c.Crouching {
			return false
		}
		c.Crouching = true
	case component.IntentCrouchEnd:
		if !c.Crouching {
			return false
		}
		c.Crouching = false
	default:
		return false
	}
	ctx.ChangeState(groundState(c))
	return true
}

// steer records a directional key step and turns the character to face it.
func steer(c *component.Character, in component.Intent) {
	c.Facing = component.FacingRight
	step := 1
	if in == component.IntentMoveLeft {
		c.Facing = component.FacingLeft
		step = -1
	}
	c.Moving = true
	c.Nudges = append(c.Nudges, step)
}
