// Package modifier implements the registry of active timed effects and the
// effective-value queries consumed by validators and commands.
//
// Queries fold modifiers in insertion order; the order is never re-sorted.
package modifier

import "github.com/mage-knight-digital/mageknight/internal/game/state"

// terrainCostFloor is the minimum effective terrain cost reachable through
// cost-reduction effects.
const terrainCostFloor = 2

// Add appends a modifier record to the active set, returning the new root.
func Add(g state.Game, m state.Modifier) state.Game {
	m.CreatedAtRound = g.Round
	return g.AppendModifier(m)
}

// Expire removes every modifier whose duration matches the trigger and whose
// ownership applies to the acting player. Each modifier is removed exactly
// once: a record survives every trigger except the one matching its
// duration.
func Expire(g state.Game, trigger state.Duration, player state.PlayerID) (state.Game, int) {
	if len(g.Modifiers) == 0 {
		return g, 0
	}
	kept := make([]state.Modifier, 0, len(g.Modifiers))
	removed := 0
	for _, m := range g.Modifiers {
		if m.Duration == trigger && expiresFor(m, trigger, player) {
			removed++
			continue
		}
		kept = append(kept, m)
	}
	if removed == 0 {
		return g, 0
	}
	return g.WithModifiers(kept), removed
}

// expiresFor reports whether the trigger fired by the acting player reaches
// the modifier. Round-end triggers are global; turn- and combat-end triggers
// only expire records created by the acting player or scoped to enemies of
// the acting player's combat.
func expiresFor(m state.Modifier, trigger state.Duration, player state.PlayerID) bool {
	switch trigger {
	case state.DurationRound:
		return true
	case state.DurationTurn, state.DurationCombat:
		return m.CreatedBy == player || m.Scope == state.ScopeEnemy
	default:
		return false
	}
}

// EffectiveArmor folds armor-bonus modifiers over the base value. Armor
// never drops below 1.
func EffectiveArmor(g state.Game, player state.PlayerID, base int) int {
	armor := base
	for _, m := range g.Modifiers {
		if m.Effect.Kind != state.EffectArmorBonus || !m.AppliesTo(player) {
			continue
		}
		armor += m.Effect.Amount
	}
	if armor < 1 {
		return 1
	}
	return armor
}

// EffectiveTerrainCost folds terrain-cost modifiers over the base cost for
// the terrain. Cost reductions are clamped: the result never drops below 2
// (or below the base when the base is already under the floor).
func EffectiveTerrainCost(g state.Game, player state.PlayerID, terrain state.Terrain, base int) int {
	cost := base
	for _, m := range g.Modifiers {
		if m.Effect.Kind != state.EffectTerrainCost || !m.AppliesTo(player) {
			continue
		}
		if m.Effect.Terrain != "" && m.Effect.Terrain != terrain {
			continue
		}
		cost += m.Effect.Amount
	}
	floor := terrainCostFloor
	if base < floor {
		floor = base
	}
	if cost < floor {
		return floor
	}
	return cost
}

// EffectiveHandLimit folds hand-limit modifiers over the base limit. The
// limit never drops below 1.
func EffectiveHandLimit(g state.Game, player state.PlayerID, base int) int {
	limit := base
	for _, m := range g.Modifiers {
		if m.Effect.Kind != state.EffectHandLimitBonus || !m.AppliesTo(player) {
			continue
		}
		limit += m.Effect.Amount
	}
	if limit < 1 {
		return 1
	}
	return limit
}

// EnemyDoesNotAttack reports whether the enemy instance is neutralized for
// the damage-assignment guard.
func EnemyDoesNotAttack(g state.Game, instance string) bool {
	for _, m := range g.Modifiers {
		if m.Effect.Kind != state.EffectEnemyDoesNotAttack {
			continue
		}
		if m.Scope == state.ScopeEnemy && m.EnemyInstance == instance {
			return true
		}
	}
	return false
}

// WildcardManaSubstitutes reports whether crystals of the color substitute
// for any color. The substitution only applies while the night mana rule is
// active; during a combat the flag frozen at combat entry governs, so a
// rules flip never affects an in-flight combat.
func WildcardManaSubstitutes(g state.Game, player state.PlayerID, color state.Color) bool {
	night := g.Night
	if g.Combat != nil && g.Combat.Player == player {
		night = g.Combat.NightManaRules
	}
	if !night {
		return false
	}
	for _, m := range g.Modifiers {
		if m.Effect.Kind != state.EffectWildcardMana || !m.AppliesTo(player) {
			continue
		}
		if m.Effect.Color == color {
			return true
		}
	}
	return false
}

// FameTrackers returns the active fame-tracker modifiers visible to the
// player, in insertion order.
func FameTrackers(g state.Game, player state.PlayerID) []state.Modifier {
	var trackers []state.Modifier
	for _, m := range g.Modifiers {
		if m.Effect.Kind == state.EffectFameTracker && m.AppliesTo(player) {
			trackers = append(trackers, m)
		}
	}
	return trackers
}

// DefendBonuses folds defend-bonus modifiers into a per-element block pool.
func DefendBonuses(g state.Game, player state.PlayerID) state.BlockPool {
	var pool state.BlockPool
	for _, m := range g.Modifiers {
		if m.Effect.Kind != state.EffectDefendBonus || !m.AppliesTo(player) {
			continue
		}
		pool = pool.Add(m.Effect.Element, m.Effect.Amount)
	}
	return pool
}
