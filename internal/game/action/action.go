// Package action defines the closed set of player requests accepted by the
// engine. Each action carries only the parameters needed to reconstruct the
// matching command.
package action

import "github.com/mage-knight-digital/mageknight/internal/game/state"

// Type identifies an action variant.
type Type string

const (
	TypeMove           Type = "move"
	TypeExplore        Type = "explore"
	TypePlayCard       Type = "play_card"
	TypeUseSkill       Type = "use_skill"
	TypeRest           Type = "rest"
	TypeRecruit        Type = "recruit"
	TypeEndTurn        Type = "end_turn"
	TypeResolveChoice  Type = "resolve_choice"
	TypeUndo           Type = "undo"
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

// Action is the sealed ingress contract. Adding a variant forces every
// switch over actions to be revisited.
type Action interface {
	Type() Type
	isAction()
}

// Move requests movement to an adjacent board hex.
type Move struct {
	To state.Coord `json:"to"`
}

// Explore requests revealing the tile at an adjacent position.
type Explore struct {
	At state.Coord `json:"at"`
}

// PlayCard requests playing a hand card through the effect resolver.
type PlayCard struct {
	Card state.CardID `json:"card"`
}

// UseSkill requests using an owned, unused skill.
type UseSkill struct {
	Skill state.SkillID `json:"skill"`
}

// Rest requests discarding a non-wound card to end a slow round of rest.
type Rest struct {
	Discard state.CardID `json:"discard"`
}

// Recruit requests recruiting a unit from the offer for influence.
type Recruit struct {
	Unit state.UnitID `json:"unit"`
}

// EndTurn requests ending the player's turn.
type EndTurn struct{}

// ResolveChoice picks one option of the pending choice effect.
type ResolveChoice struct {
	Option int `json:"option"`
}

// Undo requests reverting the most recent reversible command.
type Undo struct{}

// EnterCombat requests starting combat against the listed enemy definitions.
type EnterCombat struct {
	EnemyIDs      []string `json:"enemy_ids"`
	FortifiedSite bool     `json:"fortified_site"`
}

// AssignAttack adds Amount of attack from the pool to an enemy in the
// assigned-attack ledger.
type AssignAttack struct {
	Enemy      string           `json:"enemy"`
	AttackType state.AttackType `json:"attack_type"`
	Element    state.Element    `json:"element"`
	Amount     int              `json:"amount"`
}

// UnassignAttack removes Amount of previously assigned attack.
type UnassignAttack struct {
	Enemy      string           `json:"enemy"`
	AttackType state.AttackType `json:"attack_type"`
	Element    state.Element    `json:"element"`
	Amount     int              `json:"amount"`
}

// AssignBlock adds Amount of block from the pool to an enemy's pending
// damage ledger.
type AssignBlock struct {
	Enemy   string        `json:"enemy"`
	Element state.Element `json:"element"`
	Amount  int           `json:"amount"`
}

// UnassignBlock removes Amount of previously assigned block.
type UnassignBlock struct {
	Enemy   string        `json:"enemy"`
	Element state.Element `json:"element"`
	Amount  int           `json:"amount"`
}

// DeclareBlock marks an enemy blocked if the assigned block suffices.
type DeclareBlock struct {
	Enemy string `json:"enemy"`
}

// FinalizeAttack commits the phase-appropriate attack pool against all
// declared targets. Irreversible.
type FinalizeAttack struct{}

// AssignDamage resolves one unblocked enemy's attack into wounds.
type AssignDamage struct {
	Enemy string `json:"enemy"`
}

// AdvancePhase moves combat to the next phase, or ends combat from the
// attack phase when no targets remain declared.
type AdvancePhase struct{}

func (Move) Type() Type           { return TypeMove }
func (Explore) Type() Type        { return TypeExplore }
func (PlayCard) Type() Type       { return TypePlayCard }
func (UseSkill) Type() Type       { return TypeUseSkill }
func (Rest) Type() Type           { return TypeRest }
func (Recruit) Type() Type        { return TypeRecruit }
func (EndTurn) Type() Type        { return TypeEndTurn }
func (ResolveChoice) Type() Type  { return TypeResolveChoice }
func (Undo) Type() Type           { return TypeUndo }
func (EnterCombat) Type() Type    { return TypeEnterCombat }
func (AssignAttack) Type() Type   { return TypeAssignAttack }
func (UnassignAttack) Type() Type { return TypeUnassignAttack }
func (AssignBlock) Type() Type    { return TypeAssignBlock }
func (UnassignBlock) Type() Type  { return TypeUnassignBlock }
func (DeclareBlock) Type() Type   { return TypeDeclareBlock }
func (FinalizeAttack) Type() Type { return TypeFinalizeAttack }
func (AssignDamage) Type() Type   { return TypeAssignDamage }
func (AdvancePhase) Type() Type   { return TypeAdvancePhase }

func (Move) isAction()           {}
func (Explore) isAction()        {}
func (PlayCard) isAction()       {}
func (UseSkill) isAction()       {}
func (Rest) isAction()           {}
func (Recruit) isAction()        {}
func (EndTurn) isAction()        {}
func (ResolveChoice) isAction()  {}
func (Undo) isAction()           {}
func (EnterCombat) isAction()    {}
func (AssignAttack) isAction()   {}
func (UnassignAttack) isAction() {}
func (AssignBlock) isAction()    {}
func (UnassignBlock) isAction()  {}
func (DeclareBlock) isAction()   {}
func (FinalizeAttack) isAction() {}
func (AssignDamage) isAction()   {}
func (AdvancePhase) isAction()   {}
