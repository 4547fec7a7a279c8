package component

import "time"

// CharacterState defines the interface for character state machine states.
// Each state owns its own enter/exit, intent handling and timed update.
type CharacterState interface {
	Name() string
	Enter(ctx *CharacterStateContext)
	Exit(ctx *CharacterStateContext)
	// HandleInput reports whether ctx.Intent was accepted. Refused intents
	// are dropped, never queued.
	HandleInput(ctx *CharacterStateContext) bool
	Update(ctx *CharacterStateContext)
}

// CharacterStateContext is what a state sees during one call: the character,
// the scene clock, the tuning in effect and the intent being handled.
type CharacterStateContext struct {
	Character   *Character
	Tuning      Tuning
	Now         time.Duration
	Intent      Intent
	ChangeState func(state CharacterState)
}

// CharacterStateMachine stores the active and pending states for the
// character. A nil State is entered from the character's ground pose on the
// first update.
type CharacterStateMachine struct {
	State   CharacterState
	Pending CharacterState
}

var CharacterStateMachineComponent = NewComponent[CharacterStateMachine]()
