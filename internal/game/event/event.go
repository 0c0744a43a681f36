// Package event defines the closed set of notifications emitted alongside
// new state. Events are informational: state is always the authoritative
// result of command execution, never a fold over events.
package event

import "github.com/mage-knight-digital/mageknight/internal/game/state"

// Type identifies an event variant.
type Type string

const (
	TypeInvalidAction    Type = "invalid_action"
	TypeMoved            Type = "moved"
	TypeTileExplored     Type = "tile_explored"
	TypeCardPlayed       Type = "card_played"
	TypeSkillUsed        Type = "skill_used"
	TypeRested           Type = "rested"
	TypeUnitRecruited    Type = "unit_recruited"
	TypeTurnEnded        Type = "turn_ended"
	TypeRoundEnded       Type = "round_ended"
	TypeGameEnded        Type = "game_ended"
	TypeChoiceResolved   Type = "choice_resolved"
	TypeChoiceRequired   Type = "choice_required"
	TypeCombatStarted    Type = "combat_started"
	TypeAttackAssigned   Type = "attack_assigned"
	TypeAttackUnassigned Type = "attack_unassigned"
	TypeBlockAssigned    Type = "block_assigned"
	TypeBlockUnassigned  Type = "block_unassigned"
	TypeEnemyBlocked     Type = "enemy_blocked"
	TypeEnemiesDefeated  Type = "enemies_defeated"
	TypeAttackFailed     Type = "attack_failed"
	TypeDamageAssigned   Type = "damage_assigned"
	TypePlayerKnockedOut Type = "player_knocked_out"
	TypePhaseAdvanced    Type = "phase_advanced"
	TypeCombatEnded      Type = "combat_ended"
	TypeActionUndone     Type = "action_undone"
	TypeModifierAdded    Type = "modifier_added"
	TypeModifiersExpired Type = "modifiers_expired"
)

// Event is the sealed egress contract.
type Event interface {
	Type() Type
	isEvent()
}

// InvalidAction reports a rejected player action. Code is a member of the
// validation code enumeration; Message is for humans.
type InvalidAction struct {
	Player  state.PlayerID
	Action  string
	Code    string
	Message string
}

// Moved reports a completed move and the effective cost paid.
type Moved struct {
	Player state.PlayerID
	From   state.Coord
	To     state.Coord
	Cost   int
}

// TileExplored reports a revealed tile.
type TileExplored struct {
	Player state.PlayerID
	At     state.Coord
	Tile   string
}

// CardPlayed reports a resolved card play.
type CardPlayed struct {
	Player      state.PlayerID
	Card        state.CardID
	Description string
}

// SkillUsed reports a resolved skill use.
type SkillUsed struct {
	Player      state.PlayerID
	Skill       state.SkillID
	Description string
}

// Rested reports a completed rest.
type Rested struct {
	Player    state.PlayerID
	Discarded state.CardID
}

// UnitRecruited reports a recruited unit and the influence spent.
type UnitRecruited struct {
	Player state.PlayerID
	Unit   state.UnitID
	Cost   int
}

// TurnEnded reports the end of a player's turn.
type TurnEnded struct {
	Player state.PlayerID
	Drawn  int
}

// RoundEnded reports the end of a round.
type RoundEnded struct {
	Round int
	Night bool
}

// GameEnded reports the end of the game.
type GameEnded struct {
	Rounds int
}

// ChoiceRequired reports that an effect is waiting on a player decision.
type ChoiceRequired struct {
	Player  state.PlayerID
	Source  state.CardID
	Options []string
}

// ChoiceResolved reports a resolved pending choice.
type ChoiceResolved struct {
	Player      state.PlayerID
	Source      state.CardID
	Option      int
	Description string
}

// CombatStarted reports combat entry.
type CombatStarted struct {
	Player        state.PlayerID
	Enemies       []string
	FortifiedSite bool
}

// AttackAssigned reports an assigned-attack ledger delta.
type AttackAssigned struct {
	Player     state.PlayerID
	Enemy      string
	AttackType state.AttackType
	Element    state.Element
	Amount     int
}

// AttackUnassigned reports a reverted assigned-attack ledger delta.
type AttackUnassigned struct {
	Player     state.PlayerID
	Enemy      string
	AttackType state.AttackType
	Element    state.Element
	Amount     int
}

// BlockAssigned reports a pending-damage ledger delta.
type BlockAssigned struct {
	Player  state.PlayerID
	Enemy   string
	Element state.Element
	Amount  int
}

// BlockUnassigned reports a reverted pending-damage ledger delta.
type BlockUnassigned struct {
	Player  state.PlayerID
	Enemy   string
	Element state.Element
	Amount  int
}

// EnemyBlocked reports a successful block declaration.
type EnemyBlocked struct {
	Player state.PlayerID
	Enemy  string
}

// EnemiesDefeated reports a successful group attack resolution.
type EnemiesDefeated struct {
	Player     state.PlayerID
	Enemies    []string
	Fame       int
	Reputation int
}

// AttackFailed reports a failed group attack; only the pool was cleared.
type AttackFailed struct {
	Player        state.PlayerID
	Enemies       []string
	Effective     int
	CombinedArmor int
}

// DamageAssigned reports wounds taken from one enemy's attack.
type DamageAssigned struct {
	Player        state.PlayerID
	Enemy         string
	HandWounds    int
	DiscardWounds int
}

// PlayerKnockedOut reports a knockout from combat wounds.
type PlayerKnockedOut struct {
	Player state.PlayerID
	Wounds int
}

// PhaseAdvanced reports a combat phase transition.
type PhaseAdvanced struct {
	Player state.PlayerID
	From   state.Phase
	To     state.Phase
}

// CombatEnded reports combat resolution.
type CombatEnded struct {
	Player     state.PlayerID
	FameGained int
}

// ActionUndone reports a reverted command.
type ActionUndone struct {
	Player  state.PlayerID
	Command string
}

// ModifierAdded reports a new active modifier.
type ModifierAdded struct {
	Player state.PlayerID
	Kind   state.EffectKind
	Source string
}

// ModifiersExpired reports modifiers removed by a duration trigger.
type ModifiersExpired struct {
	Trigger state.Duration
	Count   int
}

func (InvalidAction) Type() Type    { return TypeInvalidAction }
func (Moved) Type() Type            { return TypeMoved }
func (TileExplored) Type() Type     { return TypeTileExplored }
func (CardPlayed) Type() Type       { return TypeCardPlayed }
func (SkillUsed) Type() Type        { return TypeSkillUsed }
func (Rested) Type() Type           { return TypeRested }
func (UnitRecruited) Type() Type    { return TypeUnitRecruited }
func (TurnEnded) Type() Type        { return TypeTurnEnded }
func (RoundEnded) Type() Type       { return TypeRoundEnded }
func (GameEnded) Type() Type        { return TypeGameEnded }
func (ChoiceRequired) Type() Type   { return TypeChoiceRequired }
func (ChoiceResolved) Type() Type   { return TypeChoiceResolved }
func (CombatStarted) Type() Type    { return TypeCombatStarted }
func (AttackAssigned) Type() Type   { return TypeAttackAssigned }
func (AttackUnassigned) Type() Type { return TypeAttackUnassigned }
func (BlockAssigned) Type() Type    { return TypeBlockAssigned }
func (BlockUnassigned) Type() Type  { return TypeBlockUnassigned }
func (EnemyBlocked) Type() Type     { return TypeEnemyBlocked }
func (EnemiesDefeated) Type() Type  { return TypeEnemiesDefeated }
func (AttackFailed) Type() Type     { return TypeAttackFailed }
func (DamageAssigned) Type() Type   { return TypeDamageAssigned }
func (PlayerKnockedOut) Type() Type { return TypePlayerKnockedOut }
func (PhaseAdvanced) Type() Type    { return TypePhaseAdvanced }
func (CombatEnded) Type() Type      { return TypeCombatEnded }
func (ActionUndone) Type() Type     { return TypeActionUndone }
func (ModifierAdded) Type() Type    { return TypeModifierAdded }
func (ModifiersExpired) Type() Type { return TypeModifiersExpired }

func (InvalidAction) isEvent()    {}
func (Moved) isEvent()            {}
func (TileExplored) isEvent()     {}
func (CardPlayed) isEvent()       {}
func (SkillUsed) isEvent()        {}
func (Rested) isEvent()           {}
func (UnitRecruited) isEvent()    {}
func (TurnEnded) isEvent()        {}
func (RoundEnded) isEvent()       {}
func (GameEnded) isEvent()        {}
func (ChoiceRequired) isEvent()   {}
func (ChoiceResolved) isEvent()   {}
func (CombatStarted) isEvent()    {}
func (AttackAssigned) isEvent()   {}
func (AttackUnassigned) isEvent() {}
func (BlockAssigned) isEvent()    {}
func (BlockUnassigned) isEvent()  {}
func (EnemyBlocked) isEvent()     {}
func (EnemiesDefeated) isEvent()  {}
func (AttackFailed) isEvent()     {}
func (DamageAssigned) isEvent()   {}
func (PlayerKnockedOut) isEvent() {}
func (PhaseAdvanced) isEvent()    {}
func (CombatEnded) isEvent()      {}
func (ActionUndone) isEvent()     {}
func (ModifierAdded) isEvent()    {}
func (ModifiersExpired) isEvent() {}
