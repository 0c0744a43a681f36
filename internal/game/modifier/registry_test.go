package modifier

import (
	"testing"

	"github.com/mage-knight-digital/mageknight/internal/game/state"
)

func turnMod(owner state.PlayerID, effect state.Effect) state.Modifier {
	return state.Modifier{
		Source:    "test",
		Scope:     state.ScopeSelf,
		Duration:  state.DurationTurn,
		Effect:    effect,
		CreatedBy: owner,
	}
}

func TestExpire_RemovesExactlyMatchingDuration(t *testing.T) {
	g := state.Game{}
	g = Add(g, turnMod("p1", state.Effect{Kind: state.EffectArmorBonus, Amount: 1}))
	round := turnMod("p1", state.Effect{Kind: state.EffectArmorBonus, Amount: 2})
	round.Duration = state.DurationRound
	g = Add(g, round)

	g, removed := Expire(g, state.DurationTurn, "p1")
	if removed != 1 {
		t.Fatalf("removed = %d, want 1", removed)
	}
	if len(g.Modifiers) != 1 || g.Modifiers[0].Duration != state.DurationRound {
		t.Fatalf("surviving modifiers = %+v, want the round one", g.Modifiers)
	}

	// Second firing of the same trigger removes nothing.
	g, removed = Expire(g, state.DurationTurn, "p1")
	if removed != 0 {
		t.Fatalf("second expire removed %d, want 0", removed)
	}
}

func TestExpire_TurnTriggerSkipsOtherOwners(t *testing.T) {
	g := state.Game{}
	g = Add(g, turnMod("p1", state.Effect{Kind: state.EffectArmorBonus, Amount: 1}))
	g = Add(g, turnMod("p2", state.Effect{Kind: state.EffectArmorBonus, Amount: 1}))

	g, removed := Expire(g, state.DurationTurn, "p1")
	if removed != 1 {
		t.Fatalf("removed = %d, want 1", removed)
	}
	if g.Modifiers[0].CreatedBy != "p2" {
		t.Fatalf("survivor owned by %s, want p2", g.Modifiers[0].CreatedBy)
	}
}

func TestEffectiveArmor_InsertionOrderFold(t *testing.T) {
	g := state.Game{}
	g = Add(g, turnMod("p1", state.Effect{Kind: state.EffectArmorBonus, Amount: 2}))
	g = Add(g, turnMod("p1", state.Effect{Kind: state.EffectArmorBonus, Amount: -1}))

	if got := EffectiveArmor(g, "p1", 2); got != 3 {
		t.Fatalf("effective armor = %d, want 3", got)
	}
	if got := EffectiveArmor(g, "p2", 2); got != 2 {
		t.Fatalf("other player sees self-scoped modifier: armor = %d, want 2", got)
	}
}

func TestEffectiveTerrainCost_ClampsReductionsAtFloor(t *testing.T) {
	g := state.Game{}
	g = Add(g, turnMod("p1", state.Effect{Kind: state.EffectTerrainCost, Terrain: state.TerrainHills, Amount: -5}))

	if got := EffectiveTerrainCost(g, "p1", state.TerrainHills, 3); got != 2 {
		t.Fatalf("reduced hills cost = %d, want floor 2", got)
	}
	// Increases are not clamped.
	g2 := state.Game{}
	g2 = Add(g2, turnMod("p1", state.Effect{Kind: state.EffectTerrainCost, Terrain: state.TerrainHills, Amount: 4}))
	if got := EffectiveTerrainCost(g2, "p1", state.TerrainHills, 3); got != 7 {
		t.Fatalf("increased hills cost = %d, want 7", got)
	}
	// Wrong terrain does not apply.
	if got := EffectiveTerrainCost(g, "p1", state.TerrainDesert, 5); got != 5 {
		t.Fatalf("desert cost = %d, want 5", got)
	}
}

func TestWildcardMana_RequiresNightRule(t *testing.T) {
	m := turnMod("p1", state.Effect{Kind: state.EffectWildcardMana, Color: state.ColorWhite})

	day := Add(state.Game{}, m)
	if WildcardManaSubstitutes(day, "p1", state.ColorWhite) {
		t.Fatal("wildcard substitution applied without the night rule flag")
	}

	night := Add(state.Game{Night: true}, m)
	if !WildcardManaSubstitutes(night, "p1", state.ColorWhite) {
		t.Fatal("wildcard substitution missing under the night rule flag")
	}
}

func TestWildcardMana_CombatUsesFrozenFlag(t *testing.T) {
	m := turnMod("p1", state.Effect{Kind: state.EffectWildcardMana, Color: state.ColorWhite})

	// A combat entered at night keeps night rules even if the live flag flips.
	day := Add(state.Game{Night: false}, m)
	day.Combat = &state.Combat{Player: "p1", NightManaRules: true}
	if !WildcardManaSubstitutes(day, "p1", state.ColorWhite) {
		t.Fatal("frozen night rule ignored during combat")
	}

	night := Add(state.Game{Night: true}, m)
	night.Combat = &state.Combat{Player: "p1", NightManaRules: false}
	if WildcardManaSubstitutes(night, "p1", state.ColorWhite) {
		t.Fatal("frozen day rule ignored during combat")
	}
}

func TestEnemyDoesNotAttack_ScopedToInstance(t *testing.T) {
	g := Add(state.Game{}, state.Modifier{
		Source:        "song_of_wind",
		Scope:         state.ScopeEnemy,
		EnemyInstance: "orc#0",
		Duration:      state.DurationCombat,
		Effect:        state.Effect{Kind: state.EffectEnemyDoesNotAttack},
		CreatedBy:     "p1",
	})

	if !EnemyDoesNotAttack(g, "orc#0") {
		t.Fatal("scoped enemy not neutralized")
	}
	if EnemyDoesNotAttack(g, "orc#1") {
		t.Fatal("unscoped enemy neutralized")
	}
}

func TestDefendBonuses_FoldsPerElement(t *testing.T) {
	g := state.Game{}
	g = Add(g, turnMod("p1", state.Effect{Kind: state.EffectDefendBonus, Element: state.ElementIce, Amount: 2}))
	g = Add(g, turnMod("p1", state.Effect{Kind: state.EffectDefendBonus, Element: state.ElementIce, Amount: 1}))

	pool := DefendBonuses(g, "p1")
	if pool.Get(state.ElementIce) != 3 {
		t.Fatalf("ice defend bonus = %d, want 3", pool.Get(state.ElementIce))
	}
}
