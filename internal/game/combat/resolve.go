package combat

import (
	"github.com/mage-knight-digital/mageknight/internal/game/command"
	"github.com/mage-knight-digital/mageknight/internal/game/event"
	"github.com/mage-knight-digital/mageknight/internal/game/modifier"
	"github.com/mage-knight-digital/mageknight/internal/game/state"
)

// DeclareBlock commits the pending block against one enemy: the assigned
// block leaves the player's pool, the enemy is marked blocked and its
// pending-damage entry clears. Defend bonuses are consumed the first time a
// declaration actually needs them.
type DeclareBlock struct {
	command.Snapshot
	PlayerID state.PlayerID
	Enemy    string
}

func (c *DeclareBlock) Type() command.Type     { return command.TypeDeclareBlock }
func (c *DeclareBlock) Player() state.PlayerID { return c.PlayerID }

func (c *DeclareBlock) Execute(g state.Game) (state.Game, []event.Event) {
	c.Capture(g)
	combat := g.Combat.Clone()
	spent := combat.PendingDamage[c.Enemy]
	enemy, _ := combat.Enemy(c.Enemy)

	if !combat.UsedDefend && combat.DefendBonuses.Total() > 0 &&
		EffectiveBlock(enemy, spent) < BlockRequired(enemy) {
		combat.UsedDefend = true
	}

	combat.WithEnemy(c.Enemy, func(e state.Enemy) state.Enemy {
		e.Blocked = true
		return e
	})
	delete(combat.PendingDamage, c.Enemy)

	g = g.WithCombat(combat)
	g = g.WithPlayer(c.PlayerID, func(p state.Player) state.Player {
		for _, el := range state.Elements() {
			if v := spent.Get(el); v != 0 {
				p.Block = p.Block.Add(el, -v)
			}
		}
		return p
	})
	return g, []event.Event{event.EnemyBlocked{Player: c.PlayerID, Enemy: c.Enemy}}
}

func (c *DeclareBlock) Undo(state.Game) (state.Game, []event.Event) {
	return c.Restore(), []event.Event{event.ActionUndone{Player: c.PlayerID, Command: string(command.TypeDeclareBlock)}}
}

// FinalizeAttack resolves the group attack against every declared target.
// Resolution is all-or-nothing against the combined armor with the union of
// resistances; either way the phase pool is spent and the ledger clears.
//
// The command is a checkpoint: defeat rewards and the spent pool are
// committed information.
type FinalizeAttack struct {
	command.Irreversible
	PlayerID state.PlayerID
}

func (c *FinalizeAttack) Type() command.Type     { return command.TypeFinalizeAttack }
func (c *FinalizeAttack) Player() state.PlayerID { return c.PlayerID }

func (c *FinalizeAttack) Execute(g state.Game) (state.Game, []event.Event) {
	combat := g.Combat.Clone()
	targets := DeclaredEnemies(combat)
	siegeOnly := combat.Phase == state.PhaseRangedSiege && SiegeRequired(combat, targets)

	totals := PhasePool(g.Player(c.PlayerID).Attack, combat.Phase, siegeOnly)
	effective := EffectiveAttack(totals, CombinedResistance(targets))
	armor := CombinedArmor(targets)

	instances := make([]string, len(targets))
	for i, e := range targets {
		instances[i] = e.Instance
	}

	var events []event.Event
	if effective >= armor {
		fame, reputation := 0, 0
		for _, e := range targets {
			fame += e.Def.Fame
			reputation += e.Def.Reputation
			combat.WithEnemy(e.Instance, func(en state.Enemy) state.Enemy {
				en.Defeated = true
				return en
			})
		}
		// Fame trackers credit their full amount for every defeated target.
		for _, tracker := range modifier.FameTrackers(g, c.PlayerID) {
			fame += tracker.Effect.Amount * len(targets)
		}
		combat.FameGained += fame
		g = g.WithPlayer(c.PlayerID, func(p state.Player) state.Player {
			p.Fame += fame
			p.Reputation += reputation
			return p
		})
		events = append(events, event.EnemiesDefeated{
			Player:     c.PlayerID,
			Enemies:    instances,
			Fame:       fame,
			Reputation: reputation,
		})
	} else {
		events = append(events, event.AttackFailed{
			Player:        c.PlayerID,
			Enemies:       instances,
			Effective:     effective,
			CombinedArmor: armor,
		})
	}

	// Spend the phase pool and clear the ledger whether or not the attack
	// landed.
	phase := combat.Phase
	g = g.WithPlayer(c.PlayerID, func(p state.Player) state.Player {
		switch phase {
		case state.PhaseRangedSiege:
			for _, el := range state.Elements() {
				if !siegeOnly {
					p.Attack = p.Attack.Add(state.AttackRanged, el, -p.Attack.Get(state.AttackRanged, el))
				}
				p.Attack = p.Attack.Add(state.AttackSiege, el, -p.Attack.Get(state.AttackSiege, el))
			}
		case state.PhaseAttack:
			for _, el := range state.Elements() {
				p.Attack = p.Attack.Add(state.AttackMelee, el, -p.Attack.Get(state.AttackMelee, el))
			}
		}
		return p
	})
	combat.AssignedAttack = nil
	combat.DeclaredTargets = nil
	g = g.WithCombat(combat)
	return g, events
}

// AssignDamage converts one unblocked enemy's attack into wounds. Poison
// doubles the toll by adding matching wounds to the discard pile; only hand
// wounds count toward the knockout tally.
type AssignDamage struct {
	command.Snapshot
	PlayerID state.PlayerID
	Enemy    string
}

func (c *AssignDamage) Type() command.Type     { return command.TypeAssignDamage }
func (c *AssignDamage) Player() state.PlayerID { return c.PlayerID }

func (c *AssignDamage) Execute(g state.Game) (state.Game, []event.Event) {
	c.Capture(g)
	combat := g.Combat.Clone()
	enemy, _ := combat.Enemy(c.Enemy)

	armor := modifier.EffectiveArmor(g, c.PlayerID, g.Player(c.PlayerID).Armor)
	wounds := Wounds(enemy.Def.AttackTotal(), armor)
	poisoned := enemy.Def.Has(state.AbilityPoison)

	combat.WithEnemy(c.Enemy, func(e state.Enemy) state.Enemy {
		e.DamageAssigned = true
		return e
	})
	combat.WoundsThisCombat += wounds

	limit := modifier.EffectiveHandLimit(g, c.PlayerID, g.Player(c.PlayerID).HandLimit)
	knockedOut := combat.WoundsThisCombat >= limit

	g = g.WithPlayer(c.PlayerID, func(p state.Player) state.Player {
		for i := 0; i < wounds; i++ {
			p = p.AppendHand(state.WoundCard)
		}
		if poisoned {
			for i := 0; i < wounds; i++ {
				p = p.AppendDiscard(state.WoundCard)
			}
		}
		if knockedOut {
			p.KnockedOut = true
			// A knockout sheds every non-wound card from hand.
			hand := make([]state.CardID, 0, len(p.Hand))
			for _, card := range p.Hand {
				if card == state.WoundCard {
					hand = append(hand, card)
				}
			}
			p.Hand = hand
		}
		return p
	})
	g = g.WithCombat(combat)

	discardWounds := 0
	if poisoned {
		discardWounds = wounds
	}
	events := []event.Event{event.DamageAssigned{
		Player:        c.PlayerID,
		Enemy:         c.Enemy,
		HandWounds:    wounds,
		DiscardWounds: discardWounds,
	}}
	if knockedOut {
		events = append(events, event.PlayerKnockedOut{Player: c.PlayerID, Wounds: combat.WoundsThisCombat})
	}
	return g, events
}

func (c *AssignDamage) Undo(state.Game) (state.Game, []event.Event) {
	return c.Restore(), []event.Event{event.ActionUndone{Player: c.PlayerID, Command: string(command.TypeAssignDamage)}}
}

// AdvancePhase steps the combat state machine forward. Uncommitted ledger
// entries dissipate at each boundary; advancing out of the attack phase ends
// the combat.
type AdvancePhase struct {
	command.Snapshot
	PlayerID state.PlayerID
}

func (c *AdvancePhase) Type() command.Type     { return command.TypeAdvancePhase }
func (c *AdvancePhase) Player() state.PlayerID { return c.PlayerID }

func (c *AdvancePhase) Execute(g state.Game) (state.Game, []event.Event) {
	c.Capture(g)
	combat := g.Combat.Clone()
	from := combat.Phase

	next, ok := from.Next()
	if !ok {
		// Leaving the attack phase resolves the combat.
		fameGained := combat.FameGained
		g = g.WithCombat(nil)
		g = g.WithPlayer(c.PlayerID, func(p state.Player) state.Player {
			p.CombattedThisTurn = true
			return p
		})
		events := []event.Event{event.CombatEnded{Player: c.PlayerID, FameGained: fameGained}}
		g, expired := modifier.Expire(g, state.DurationCombat, c.PlayerID)
		if expired > 0 {
			events = append(events, event.ModifiersExpired{Trigger: state.DurationCombat, Count: expired})
		}
		return g, events
	}

	switch from {
	case state.PhaseRangedSiege:
		combat.AssignedAttack = nil
		combat.DeclaredTargets = nil
	case state.PhaseBlock:
		combat.PendingDamage = nil
		_, unresolved := UnresolvedAttacker(g, combat)
		combat.AllDamageBlocked = !unresolved
	}

	combat.Phase = next
	g = g.WithCombat(combat)
	return g, []event.Event{event.PhaseAdvanced{Player: c.PlayerID, From: from, To: next}}
}

func (c *AdvancePhase) Undo(state.Game) (state.Game, []event.Event) {
	return c.Restore(), []event.Event{event.ActionUndone{Player: c.PlayerID, Command: string(command.TypeAdvancePhase)}}
}
