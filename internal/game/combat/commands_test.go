package combat

import (
	"reflect"
	"testing"

	"github.com/mage-knight-digital/mageknight/internal/game/event"
	"github.com/mage-knight-digital/mageknight/internal/game/state"
)

var (
	defOrc = state.EnemyDef{
		ID: "orc", Armor: 3,
		Attacks: []state.EnemyAttack{{Element: state.ElementPhysical, Value: 3}},
		Fame:    2,
	}
	defGolem = state.EnemyDef{
		ID: "golem", Armor: 3,
		Attacks:     []state.EnemyAttack{{Element: state.ElementPhysical, Value: 2}},
		Resistances: []state.Element{state.ElementPhysical},
		Fame:        4,
	}
	defSpider = state.EnemyDef{
		ID: "spider", Armor: 2,
		Attacks:   []state.EnemyAttack{{Element: state.ElementPhysical, Value: 3}},
		Abilities: []state.Ability{state.AbilityPoison},
		Fame:      3,
	}
	defKeep = state.EnemyDef{
		ID: "keep_guard", Armor: 3,
		Attacks:   []state.EnemyAttack{{Element: state.ElementPhysical, Value: 3}},
		Abilities: []state.Ability{state.AbilityFortified},
		Fame:      3,
	}
)

func combatGame(defs ...state.EnemyDef) state.Game {
	enemyDefs := make(map[string]state.EnemyDef, len(defs))
	for _, d := range defs {
		enemyDefs[d.ID] = d
	}
	return state.Game{
		Players: []state.Player{
			{ID: "p1", Armor: 2, HandLimit: 5, Hand: []state.CardID{"march", "rage"}},
		},
		TurnOrder: []state.PlayerID{"p1"},
		Round:     1,
		EnemyDefs: enemyDefs,
	}
}

// inCombat enters combat and fast-forwards to the wanted phase without
// passing through the guards; tests arrange guard-free states explicitly.
func inCombat(t *testing.T, g state.Game, phase state.Phase, enemyIDs ...string) state.Game {
	t.Helper()
	enter := &EnterCombat{PlayerID: "p1", EnemyIDs: enemyIDs}
	g, _ = enter.Execute(g)
	combat := g.Combat.Clone()
	combat.Phase = phase
	return g.WithCombat(combat)
}

func requireEventType(t *testing.T, events []event.Event, want event.Type) {
	t.Helper()
	for _, e := range events {
		if e.Type() == want {
			return
		}
	}
	t.Fatalf("no %s event in %v", want, events)
}

func TestEnterCombat_DeterministicInstances(t *testing.T) {
	g := combatGame(defOrc)
	g.Night = true
	g = g.AppendModifier(state.Modifier{
		Scope:     state.ScopeSelf,
		Duration:  state.DurationCombat,
		Effect:    state.Effect{Kind: state.EffectDefendBonus, Element: state.ElementPhysical, Amount: 2},
		CreatedBy: "p1",
	})

	cmd := &EnterCombat{PlayerID: "p1", EnemyIDs: []string{"orc", "orc"}, FortifiedSite: true}
	next, events := cmd.Execute(g)
	requireEventType(t, events, event.TypeCombatStarted)

	c := next.Combat
	if c.Phase != state.PhaseRangedSiege {
		t.Fatalf("phase = %s, want %s", c.Phase, state.PhaseRangedSiege)
	}
	if c.Enemies[0].Instance != "orc#0" || c.Enemies[1].Instance != "orc#1" {
		t.Fatalf("instances = %s, %s", c.Enemies[0].Instance, c.Enemies[1].Instance)
	}
	if !c.FortifiedSite || !c.NightManaRules {
		t.Fatalf("entry flags = %+v", c)
	}
	if c.DefendBonuses.Get(state.ElementPhysical) != 2 {
		t.Fatalf("defend bonuses = %v", c.DefendBonuses)
	}

	restored, _ := cmd.Undo(next)
	if !reflect.DeepEqual(restored, g) {
		t.Fatal("undo did not restore the pre-combat root")
	}
}

func TestAssignAttack_MaintainsDeclaredTargets(t *testing.T) {
	g := combatGame(defOrc)
	g = g.WithPlayer("p1", func(p state.Player) state.Player {
		p.Attack = p.Attack.Add(state.AttackRanged, state.ElementPhysical, 4)
		return p
	})
	g = inCombat(t, g, state.PhaseRangedSiege, "orc")

	assign := &AssignAttack{PlayerID: "p1", Enemy: "orc#0", AttackType: state.AttackRanged, Element: state.ElementPhysical, Amount: 3}
	g, events := assign.Execute(g)
	requireEventType(t, events, event.TypeAttackAssigned)
	if !g.Combat.IsDeclared("orc#0") {
		t.Fatal("enemy with assigned attack must be declared")
	}
	if got := g.Combat.AssignedTo("orc#0"); got != 3 {
		t.Fatalf("assigned = %d, want 3", got)
	}

	unassign := &UnassignAttack{PlayerID: "p1", Enemy: "orc#0", AttackType: state.AttackRanged, Element: state.ElementPhysical, Amount: 3}
	g, events = unassign.Execute(g)
	requireEventType(t, events, event.TypeAttackUnassigned)
	if g.Combat.IsDeclared("orc#0") {
		t.Fatal("enemy with zero assigned attack must not stay declared")
	}
	if len(g.Combat.AssignedAttack) != 0 {
		t.Fatalf("ledger = %v", g.Combat.AssignedAttack)
	}
}

func TestDeclareBlock_SpendsPoolAndMarksBlocked(t *testing.T) {
	g := combatGame(defOrc)
	g = g.WithPlayer("p1", func(p state.Player) state.Player {
		p.Block = p.Block.Add(state.ElementPhysical, 4)
		return p
	})
	g = inCombat(t, g, state.PhaseBlock, "orc")

	g, _ = (&AssignBlock{PlayerID: "p1", Enemy: "orc#0", Element: state.ElementPhysical, Amount: 3}).Execute(g)
	g, events := (&DeclareBlock{PlayerID: "p1", Enemy: "orc#0"}).Execute(g)
	requireEventType(t, events, event.TypeEnemyBlocked)

	enemy, _ := g.Combat.Enemy("orc#0")
	if !enemy.Blocked {
		t.Fatal("enemy not marked blocked")
	}
	if got := g.Player("p1").Block.Get(state.ElementPhysical); got != 1 {
		t.Fatalf("block pool = %d, want 1", got)
	}
	if _, pending := g.Combat.PendingDamage["orc#0"]; pending {
		t.Fatal("pending-damage entry must clear on declaration")
	}
	if g.Combat.UsedDefend {
		t.Fatal("defend must not be consumed when the assigned block suffices")
	}
}

func TestDeclareBlock_ConsumesDefendWhenNeeded(t *testing.T) {
	g := combatGame(defOrc)
	g = g.WithPlayer("p1", func(p state.Player) state.Player {
		p.Block = p.Block.Add(state.ElementPhysical, 1)
		return p
	})
	g = g.AppendModifier(state.Modifier{
		Scope:     state.ScopeSelf,
		Duration:  state.DurationCombat,
		Effect:    state.Effect{Kind: state.EffectDefendBonus, Element: state.ElementPhysical, Amount: 2},
		CreatedBy: "p1",
	})
	g = inCombat(t, g, state.PhaseBlock, "orc")

	g, _ = (&AssignBlock{PlayerID: "p1", Enemy: "orc#0", Element: state.ElementPhysical, Amount: 1}).Execute(g)
	g, _ = (&DeclareBlock{PlayerID: "p1", Enemy: "orc#0"}).Execute(g)
	if !g.Combat.UsedDefend {
		t.Fatal("defend must be consumed when the declaration depends on it")
	}
}

func TestFinalizeAttack_GroupAllOrNothing(t *testing.T) {
	setup := func(melee int) state.Game {
		g := combatGame(defOrc)
		g = g.WithPlayer("p1", func(p state.Player) state.Player {
			p.Attack = p.Attack.Add(state.AttackMelee, state.ElementPhysical, melee)
			return p
		})
		g = inCombat(t, g, state.PhaseAttack, "orc", "orc")
		for _, enemy := range []string{"orc#0", "orc#1"} {
			g, _ = (&AssignAttack{PlayerID: "p1", Enemy: enemy, AttackType: state.AttackMelee, Element: state.ElementPhysical, Amount: 1}).Execute(g)
		}
		return g
	}

	// 5 against combined armor 6: nothing falls, the pool is still spent.
	g, events := (&FinalizeAttack{PlayerID: "p1"}).Execute(setup(5))
	requireEventType(t, events, event.TypeAttackFailed)
	for _, e := range g.Combat.Enemies {
		if e.Defeated {
			t.Fatalf("enemy %s defeated by an insufficient group attack", e.Instance)
		}
	}
	if g.Player("p1").Attack.Total() != 0 {
		t.Fatal("failed finalize must still spend the phase pool")
	}
	if len(g.Combat.DeclaredTargets) != 0 || len(g.Combat.AssignedAttack) != 0 {
		t.Fatal("finalize must clear the assignment ledger")
	}

	// 6 against 6: both fall, rewards aggregate.
	g, events = (&FinalizeAttack{PlayerID: "p1"}).Execute(setup(6))
	requireEventType(t, events, event.TypeEnemiesDefeated)
	for _, e := range g.Combat.Enemies {
		if !e.Defeated {
			t.Fatalf("enemy %s survived a sufficient group attack", e.Instance)
		}
	}
	if fame := g.Player("p1").Fame; fame != 4 {
		t.Fatalf("fame = %d, want 4", fame)
	}
	if g.Combat.FameGained != 4 {
		t.Fatalf("combat fame = %d, want 4", g.Combat.FameGained)
	}
}

func TestFinalizeAttack_UnionResistanceHalvesWholeElement(t *testing.T) {
	// Orc (no resistance) grouped with golem (physical resist): 6 physical
	// is worth 3 against the union, below the combined armor of 6.
	g := combatGame(defOrc, defGolem)
	g = g.WithPlayer("p1", func(p state.Player) state.Player {
		p.Attack = p.Attack.Add(state.AttackMelee, state.ElementPhysical, 6)
		return p
	})
	g = inCombat(t, g, state.PhaseAttack, "orc", "golem")
	for _, enemy := range []string{"orc#0", "golem#1"} {
		g, _ = (&AssignAttack{PlayerID: "p1", Enemy: enemy, AttackType: state.AttackMelee, Element: state.ElementPhysical, Amount: 1}).Execute(g)
	}

	_, events := (&FinalizeAttack{PlayerID: "p1"}).Execute(g)
	requireEventType(t, events, event.TypeAttackFailed)
}

func TestFinalizeAttack_FortifiedTargetRestrictsToSiege(t *testing.T) {
	g := combatGame(defKeep)
	g = g.WithPlayer("p1", func(p state.Player) state.Player {
		p.Attack = p.Attack.Add(state.AttackRanged, state.ElementPhysical, 5)
		p.Attack = p.Attack.Add(state.AttackSiege, state.ElementPhysical, 3)
		return p
	})
	g = inCombat(t, g, state.PhaseRangedSiege, "keep_guard")
	g, _ = (&AssignAttack{PlayerID: "p1", Enemy: "keep_guard#0", AttackType: state.AttackSiege, Element: state.ElementPhysical, Amount: 1}).Execute(g)

	next, events := (&FinalizeAttack{PlayerID: "p1"}).Execute(g)
	requireEventType(t, events, event.TypeEnemiesDefeated)
	// The ranged pool was excluded from the siege-only resolution and
	// survives for the attack phase.
	if got := next.Player("p1").Attack.Get(state.AttackRanged, state.ElementPhysical); got != 5 {
		t.Fatalf("ranged pool = %d, want 5", got)
	}
	if got := next.Player("p1").Attack.Get(state.AttackSiege, state.ElementPhysical); got != 0 {
		t.Fatalf("siege pool = %d, want 0", got)
	}
}

func TestFinalizeAttack_FameTrackersCreditPerTarget(t *testing.T) {
	g := combatGame(defOrc)
	g = g.AppendModifier(state.Modifier{
		Source:    "banner_of_glory",
		Scope:     state.ScopeSelf,
		Duration:  state.DurationCombat,
		Effect:    state.Effect{Kind: state.EffectFameTracker, Amount: 1},
		CreatedBy: "p1",
	})
	g = g.WithPlayer("p1", func(p state.Player) state.Player {
		p.Attack = p.Attack.Add(state.AttackMelee, state.ElementPhysical, 6)
		return p
	})
	g = inCombat(t, g, state.PhaseAttack, "orc", "orc")
	for _, enemy := range []string{"orc#0", "orc#1"} {
		g, _ = (&AssignAttack{PlayerID: "p1", Enemy: enemy, AttackType: state.AttackMelee, Element: state.ElementPhysical, Amount: 1}).Execute(g)
	}

	next, _ := (&FinalizeAttack{PlayerID: "p1"}).Execute(g)
	// 2 fame per orc plus 1 tracker credit per defeated target.
	if fame := next.Player("p1").Fame; fame != 6 {
		t.Fatalf("fame = %d, want 6", fame)
	}
}

func TestAssignDamage_WoundMathAndPoison(t *testing.T) {
	// Armor 2 against a 3-damage poison attack: 2 hand wounds, 2 discard
	// wounds, tally 2, no knockout at hand limit 5.
	g := combatGame(defSpider)
	g = inCombat(t, g, state.PhaseAssignDamage, "spider")

	next, events := (&AssignDamage{PlayerID: "p1", Enemy: "spider#0"}).Execute(g)
	requireEventType(t, events, event.TypeDamageAssigned)
	p := next.Player("p1")
	if got := p.HandWounds(); got != 2 {
		t.Fatalf("hand wounds = %d, want 2", got)
	}
	discardWounds := 0
	for _, card := range p.Discard {
		if card == state.WoundCard {
			discardWounds++
		}
	}
	if discardWounds != 2 {
		t.Fatalf("discard wounds = %d, want 2", discardWounds)
	}
	if next.Combat.WoundsThisCombat != 2 {
		t.Fatalf("tally = %d, want 2 (poison wounds are excluded)", next.Combat.WoundsThisCombat)
	}
	if p.KnockedOut {
		t.Fatal("player must not be knocked out below the hand limit")
	}
	enemy, _ := next.Combat.Enemy("spider#0")
	if !enemy.DamageAssigned {
		t.Fatal("enemy not marked damage-assigned")
	}
}

func TestAssignDamage_Knockout(t *testing.T) {
	// Armor 1, hand limit 3, attack 3: three wounds meet the limit.
	g := combatGame(defSpider)
	g = g.WithPlayer("p1", func(p state.Player) state.Player {
		p.Armor = 1
		p.HandLimit = 3
		return p
	})
	g = inCombat(t, g, state.PhaseAssignDamage, "spider")

	next, events := (&AssignDamage{PlayerID: "p1", Enemy: "spider#0"}).Execute(g)
	requireEventType(t, events, event.TypePlayerKnockedOut)
	p := next.Player("p1")
	if !p.KnockedOut {
		t.Fatal("player must be knocked out at the wound tally")
	}
	for _, card := range p.Hand {
		if card != state.WoundCard {
			t.Fatalf("non-wound card %q survived the knockout", card)
		}
	}
}

func TestAdvancePhase_BlockBoundarySetsAllDamageBlocked(t *testing.T) {
	g := combatGame(defOrc)
	g = g.WithPlayer("p1", func(p state.Player) state.Player {
		p.Block = p.Block.Add(state.ElementPhysical, 3)
		return p
	})
	g = inCombat(t, g, state.PhaseBlock, "orc")
	g, _ = (&AssignBlock{PlayerID: "p1", Enemy: "orc#0", Element: state.ElementPhysical, Amount: 3}).Execute(g)
	g, _ = (&DeclareBlock{PlayerID: "p1", Enemy: "orc#0"}).Execute(g)

	next, events := (&AdvancePhase{PlayerID: "p1"}).Execute(g)
	requireEventType(t, events, event.TypePhaseAdvanced)
	if next.Combat.Phase != state.PhaseAssignDamage {
		t.Fatalf("phase = %s", next.Combat.Phase)
	}
	if !next.Combat.AllDamageBlocked {
		t.Fatal("all attacks blocked; the flag must be set")
	}
}

func TestAdvancePhase_AttackEndResolvesCombat(t *testing.T) {
	g := combatGame(defOrc)
	g = g.AppendModifier(state.Modifier{
		Scope:     state.ScopeSelf,
		Duration:  state.DurationCombat,
		Effect:    state.Effect{Kind: state.EffectArmorBonus, Amount: 1},
		CreatedBy: "p1",
	})
	g = inCombat(t, g, state.PhaseAttack, "orc")

	cmd := &AdvancePhase{PlayerID: "p1"}
	next, events := cmd.Execute(g)
	requireEventType(t, events, event.TypeCombatEnded)
	requireEventType(t, events, event.TypeModifiersExpired)
	if next.Combat != nil {
		t.Fatal("combat must clear when the attack phase ends")
	}
	if !next.Player("p1").CombattedThisTurn {
		t.Fatal("combatted-this-turn must be set")
	}
	if len(next.Modifiers) != 0 {
		t.Fatalf("combat modifiers left = %d, want 0", len(next.Modifiers))
	}

	// Ending combat stays reversible: the previous root comes back whole.
	restored, _ := cmd.Undo(next)
	if !reflect.DeepEqual(restored, g) {
		t.Fatal("undo did not restore the in-combat root")
	}
}
