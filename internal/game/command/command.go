// Package command implements the transactional mutations of the game root.
//
// Every command runs after validation, so Execute never reports rule
// violations; a failure inside Execute is a broken invariant and panics.
// Reversible commands capture the previous root when they execute and
// restore it verbatim on undo. Irreversible commands form checkpoints and
// panic if undone.
package command

import (
	"github.com/mage-knight-digital/mageknight/internal/game/event"
	"github.com/mage-knight-digital/mageknight/internal/game/state"
)

// Type names a command for journaling and tracing.
type Type string

const (
	TypeMove           Type = "move"
	TypeExplore        Type = "explore"
	TypePlayCard       Type = "play_card"
	TypeUseSkill       Type = "use_skill"
	TypeRest           Type = "rest"
	TypeRecruit        Type = "recruit"
	TypeEndTurn        Type = "end_turn"
	TypeDummyTurn      Type = "dummy_turn"
	TypeResolveChoice  Type = "resolve_choice"
	TypeEnterCombat    Type = "enter_combat"
	TypeAssignAttack   Type = "assign_attack"
	TypeUnassignAttack Type = "unassign_attack"
	TypeAssignBlock    Type = "assign_block"
	TypeUnassignBlock  Type = "unassign_block"
	TypeDeclareBlock   Type = "declare_block"
	TypeFinalizeAttack Type = "finalize_attack"
	TypeAssignDamage   Type = "assign_damage"
	TypeAdvancePhase   Type = "advance_phase"
)

// Command is a single transactional mutation of the game root.
type Command interface {
	Type() Type
	Player() state.PlayerID
	// Reversible reports whether the command can be undone. Irreversible
	// commands clear the undo stack when executed.
	Reversible() bool
	Execute(g state.Game) (state.Game, []event.Event)
	Undo(g state.Game) (state.Game, []event.Event)
}

// Snapshot is the base for reversible commands. Execute implementations
// call Capture with the root they received; Undo restores it.
type Snapshot struct {
	prev     state.Game
	captured bool
}

// Capture stores the pre-execution root for later restoration.
func (s *Snapshot) Capture(g state.Game) {
	s.prev = g
	s.captured = true
}

// Restore returns the captured root. Undoing a command that never executed
// is a broken invariant.
func (s *Snapshot) Restore() state.Game {
	if !s.captured {
		panic("command: undo before execute")
	}
	return s.prev
}

// Reversible marks snapshot-based commands as undoable.
func (s *Snapshot) Reversible() bool { return true }

// Irreversible is the base for checkpoint commands. Undo panics: the engine
// clears its stack at checkpoints, so reaching Undo is a broken invariant.
type Irreversible struct{}

// Reversible marks the command as a checkpoint.
func (Irreversible) Reversible() bool { return false }

// Undo panics. Irreversible commands are never undone.
func (Irreversible) Undo(state.Game) (state.Game, []event.Event) {
	panic("command: undo invoked on an irreversible command")
}
