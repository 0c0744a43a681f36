package combat

import (
	"github.com/mage-knight-digital/mageknight/internal/game/command"
	"github.com/mage-knight-digital/mageknight/internal/game/event"
	"github.com/mage-knight-digital/mageknight/internal/game/state"
)

// AssignAttack adds to the assigned-attack ledger and keeps the declared
// target list in step: an enemy is declared while its assigned total is
// nonzero.
type AssignAttack struct {
	command.Snapshot
	PlayerID   state.PlayerID
	Enemy      string
	AttackType state.AttackType
	Element    state.Element
	Amount     int
}

func (c *AssignAttack) Type() command.Type     { return command.TypeAssignAttack }
func (c *AssignAttack) Player() state.PlayerID { return c.PlayerID }

func (c *AssignAttack) Execute(g state.Game) (state.Game, []event.Event) {
	c.Capture(g)
	combat := g.Combat.Clone()
	if combat.AssignedAttack == nil {
		combat.AssignedAttack = make(map[state.AttackKey]int)
	}
	key := state.AttackKey{Enemy: c.Enemy, Type: c.AttackType, Element: c.Element}
	combat.AssignedAttack[key] += c.Amount
	if !combat.IsDeclared(c.Enemy) {
		combat.DeclaredTargets = append(combat.DeclaredTargets, c.Enemy)
	}
	g = g.WithCombat(combat)
	return g, []event.Event{event.AttackAssigned{
		Player:     c.PlayerID,
		Enemy:      c.Enemy,
		AttackType: c.AttackType,
		Element:    c.Element,
		Amount:     c.Amount,
	}}
}

func (c *AssignAttack) Undo(state.Game) (state.Game, []event.Event) {
	return c.Restore(), []event.Event{event.ActionUndone{Player: c.PlayerID, Command: string(command.TypeAssignAttack)}}
}

// UnassignAttack reverts an assigned-attack delta. When the enemy's assigned
// total reaches zero it leaves the declared target list.
type UnassignAttack struct {
	command.Snapshot
	PlayerID   state.PlayerID
	Enemy      string
	AttackType state.AttackType
	Element    state.Element
	Amount     int
}

func (c *UnassignAttack) Type() command.Type     { return command.TypeUnassignAttack }
func (c *UnassignAttack) Player() state.PlayerID { return c.PlayerID }

func (c *UnassignAttack) Execute(g state.Game) (state.Game, []event.Event) {
	c.Capture(g)
	combat := g.Combat.Clone()
	key := state.AttackKey{Enemy: c.Enemy, Type: c.AttackType, Element: c.Element}
	combat.AssignedAttack[key] -= c.Amount
	if combat.AssignedAttack[key] == 0 {
		delete(combat.AssignedAttack, key)
	}
	if combat.AssignedTo(c.Enemy) == 0 {
		targets := combat.DeclaredTargets[:0:0]
		for _, t := range combat.DeclaredTargets {
			if t != c.Enemy {
				targets = append(targets, t)
			}
		}
		combat.DeclaredTargets = targets
	}
	g = g.WithCombat(combat)
	return g, []event.Event{event.AttackUnassigned{
		Player:     c.PlayerID,
		Enemy:      c.Enemy,
		AttackType: c.AttackType,
		Element:    c.Element,
		Amount:     c.Amount,
	}}
}

func (c *UnassignAttack) Undo(state.Game) (state.Game, []event.Event) {
	return c.Restore(), []event.Event{event.ActionUndone{Player: c.PlayerID, Command: string(command.TypeUnassignAttack)}}
}

// AssignBlock adds to the pending-damage ledger for one enemy.
type AssignBlock struct {
	command.Snapshot
	PlayerID state.PlayerID
	Enemy    string
	Element  state.Element
	Amount   int
}

func (c *AssignBlock) Type() command.Type     { return command.TypeAssignBlock }
func (c *AssignBlock) Player() state.PlayerID { return c.PlayerID }

func (c *AssignBlock) Execute(g state.Game) (state.Game, []event.Event) {
	c.Capture(g)
	combat := g.Combat.Clone()
	if combat.PendingDamage == nil {
		combat.PendingDamage = make(map[string]state.BlockPool)
	}
	combat.PendingDamage[c.Enemy] = combat.PendingDamage[c.Enemy].Add(c.Element, c.Amount)
	g = g.WithCombat(combat)
	return g, []event.Event{event.BlockAssigned{
		Player:  c.PlayerID,
		Enemy:   c.Enemy,
		Element: c.Element,
		Amount:  c.Amount,
	}}
}

func (c *AssignBlock) Undo(state.Game) (state.Game, []event.Event) {
	return c.Restore(), []event.Event{event.ActionUndone{Player: c.PlayerID, Command: string(command.TypeAssignBlock)}}
}

// UnassignBlock reverts a pending-damage delta.
type UnassignBlock struct {
	command.Snapshot
	PlayerID state.PlayerID
	Enemy    string
	Element  state.Element
	Amount   int
}

func (c *UnassignBlock) Type() command.Type     { return command.TypeUnassignBlock }
func (c *UnassignBlock) Player() state.PlayerID { return c.PlayerID }

func (c *UnassignBlock) Execute(g state.Game) (state.Game, []event.Event) {
	c.Capture(g)
	combat := g.Combat.Clone()
	pool := combat.PendingDamage[c.Enemy].Add(c.Element, -c.Amount)
	if pool.Total() == 0 {
		delete(combat.PendingDamage, c.Enemy)
	} else {
		combat.PendingDamage[c.Enemy] = pool
	}
	g = g.WithCombat(combat)
	return g, []event.Event{event.BlockUnassigned{
		Player:  c.PlayerID,
		Enemy:   c.Enemy,
		Element: c.Element,
		Amount:  c.Amount,
	}}
}

func (c *UnassignBlock) Undo(state.Game) (state.Game, []event.Event) {
	return c.Restore(), []event.Event{event.ActionUndone{Player: c.PlayerID, Command: string(command.TypeUnassignBlock)}}
}
