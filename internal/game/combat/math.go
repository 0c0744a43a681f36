// Package combat implements the combat phase state machine: the rules math
// and the commands that drive a combat from ranged/siege through block,
// damage assignment and attack.
package combat

import (
	"github.com/mage-knight-digital/mageknight/internal/game/modifier"
	"github.com/mage-knight-digital/mageknight/internal/game/state"
)

// FortificationLevel combines site-granted fortification with the enemy's
// own ability. The Unfortified ability negates the site grant only; an
// enemy's own Fortified ability always counts.
//
// Level 1 and level 2 ("double fortified") gate identically, demanding Siege
// during the ranged/siege phase, but the level is reported distinctly so
// calling layers can explain the rule.
func FortificationLevel(c *state.Combat, e state.Enemy) int {
	level := 0
	if c != nil && c.FortifiedSite && !e.Def.Has(state.AbilityUnfortified) {
		level++
	}
	if e.Def.Has(state.AbilityFortified) {
		level++
	}
	return level
}

// Attacks reports whether the enemy actually attacks this combat. Enemies
// without attack lines and enemies neutralized by a does-not-attack rule
// flag are exempt from the damage-assignment guard.
func Attacks(g state.Game, e state.Enemy) bool {
	if e.Def.AttackTotal() <= 0 {
		return false
	}
	return !modifier.EnemyDoesNotAttack(g, e.Instance)
}

// efficientTotal halves the inefficient portion of elemental amounts.
// Resisted elements require double the nominal value, so their contribution
// counts half; the inefficient total rounds down once, after summing.
func efficientTotal(amounts state.ElementAmounts, resisted func(state.Element) bool) int {
	efficient, inefficient := 0, 0
	for _, el := range state.Elements() {
		v := amounts.Get(el)
		if v == 0 {
			continue
		}
		if resisted(el) {
			inefficient += v
		} else {
			efficient += v
		}
	}
	return efficient + inefficient/2
}

// EffectiveBlock values the assigned block pool against one enemy's
// resistances.
func EffectiveBlock(e state.Enemy, assigned state.BlockPool) int {
	return efficientTotal(assigned, e.Def.Resists)
}

// BlockRequired is the block value needed to declare the enemy blocked.
// Swiftness doubles the requirement.
func BlockRequired(e state.Enemy) int {
	required := e.Def.AttackTotal()
	if e.Def.Has(state.AbilitySwift) {
		required *= 2
	}
	return required
}

// DeclaredEnemies returns the declared, non-defeated targets in declaration
// order.
func DeclaredEnemies(c *state.Combat) []state.Enemy {
	var out []state.Enemy
	if c == nil {
		return out
	}
	for _, instance := range c.DeclaredTargets {
		e, ok := c.Enemy(instance)
		if !ok || e.Defeated {
			continue
		}
		out = append(out, e)
	}
	return out
}

// CombinedArmor sums the armor of the given enemies. Group attack
// resolution is all-or-nothing against this combined value.
func CombinedArmor(enemies []state.Enemy) int {
	total := 0
	for _, e := range enemies {
		total += e.Def.Armor
	}
	return total
}

// CombinedResistance is the union of the enemies' resistance sets: an
// element resisted by any declared target is inefficient against the group.
func CombinedResistance(enemies []state.Enemy) func(state.Element) bool {
	var resisted [4]bool
	for _, e := range enemies {
		for _, el := range state.Elements() {
			if e.Def.Resists(el) {
				resisted[el] = true
			}
		}
	}
	return func(el state.Element) bool { return resisted[el] }
}

// PhasePool extracts the phase-appropriate per-element attack totals from a
// player's pool. During ranged/siege, ranged and siege both count unless a
// fortified target restricts the pool to siege; during the attack phase the
// melee pool applies.
func PhasePool(pool state.AttackPool, phase state.Phase, siegeOnly bool) state.ElementAmounts {
	var totals state.ElementAmounts
	switch phase {
	case state.PhaseRangedSiege:
		for _, el := range state.Elements() {
			if !siegeOnly {
				totals = totals.Add(el, pool.Get(state.AttackRanged, el))
			}
			totals = totals.Add(el, pool.Get(state.AttackSiege, el))
		}
	case state.PhaseAttack:
		for _, el := range state.Elements() {
			totals = totals.Add(el, pool.Get(state.AttackMelee, el))
		}
	}
	return totals
}

// EffectiveAttack values per-element attack totals against a combined
// resistance set.
func EffectiveAttack(totals state.ElementAmounts, resisted func(state.Element) bool) int {
	return efficientTotal(totals, resisted)
}

// Wounds converts unblocked attack damage into wound cards: ceil(damage /
// armor), never below one wound for a positive damage value.
func Wounds(damage, armor int) int {
	if damage <= 0 {
		return 0
	}
	if armor < 1 {
		armor = 1
	}
	return (damage + armor - 1) / armor
}

// UnresolvedAttacker returns the first enemy that is simultaneously
// unblocked, undefeated, damage-unassigned and actually attacking. While one
// exists the assign-damage phase cannot advance.
func UnresolvedAttacker(g state.Game, c *state.Combat) (state.Enemy, bool) {
	if c == nil {
		return state.Enemy{}, false
	}
	for _, e := range c.Enemies {
		if e.Blocked || e.Defeated || e.DamageAssigned {
			continue
		}
		if !Attacks(g, e) {
			continue
		}
		return e, true
	}
	return state.Enemy{}, false
}

// SiegeRequired reports whether any of the enemies forces the ranged/siege
// pool down to siege-only attacks.
func SiegeRequired(c *state.Combat, enemies []state.Enemy) bool {
	for _, e := range enemies {
		if FortificationLevel(c, e) > 0 {
			return true
		}
	}
	return false
}
