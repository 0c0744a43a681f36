package state

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestWithPlayer_CopiesSlice(t *testing.T) {
	g := Game{Players: []Player{{ID: "p1", Fame: 1}, {ID: "p2"}}}

	next := g.WithPlayer("p1", func(p Player) Player {
		p.Fame = 5
		return p
	})

	if g.Players[0].Fame != 1 {
		t.Fatalf("previous root mutated: fame = %d, want 1", g.Players[0].Fame)
	}
	if next.Players[0].Fame != 5 {
		t.Fatalf("new root fame = %d, want 5", next.Players[0].Fame)
	}
}

func TestWithPlayer_UnknownIDPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for unknown player id")
		}
	}()
	Game{}.WithPlayer("missing", func(p Player) Player { return p })
}

func TestAppendModifier_PreviousRootUntouched(t *testing.T) {
	g := Game{Modifiers: []Modifier{{Source: "a"}}}

	next := g.AppendModifier(Modifier{Source: "b"})

	if len(g.Modifiers) != 1 {
		t.Fatalf("previous root has %d modifiers, want 1", len(g.Modifiers))
	}
	if len(next.Modifiers) != 2 {
		t.Fatalf("new root has %d modifiers, want 2", len(next.Modifiers))
	}
}

func TestCombatClone_IsDeep(t *testing.T) {
	c := &Combat{
		Phase:          PhaseBlock,
		Enemies:        []Enemy{{Instance: "e1"}},
		PendingDamage:  map[string]BlockPool{"e1": {1, 0, 0, 0}},
		AssignedAttack: map[AttackKey]int{{Enemy: "e1"}: 2},
	}

	clone := c.Clone()
	clone.Enemies[0].Blocked = true
	clone.PendingDamage["e1"] = BlockPool{9, 0, 0, 0}
	clone.AssignedAttack[AttackKey{Enemy: "e1"}] = 7

	if c.Enemies[0].Blocked {
		t.Fatal("clone shares enemies slice with original")
	}
	if c.PendingDamage["e1"][0] != 1 {
		t.Fatal("clone shares pending-damage map with original")
	}
	if c.AssignedAttack[AttackKey{Enemy: "e1"}] != 2 {
		t.Fatal("clone shares assigned-attack map with original")
	}
}

func TestPhaseNext_ForwardOnly(t *testing.T) {
	order := []Phase{PhaseRangedSiege, PhaseBlock, PhaseAssignDamage, PhaseAttack}
	for i := 0; i < len(order)-1; i++ {
		next, ok := order[i].Next()
		if !ok {
			t.Fatalf("%s has no next phase", order[i])
		}
		if next != order[i+1] {
			t.Fatalf("%s next = %s, want %s", order[i], next, order[i+1])
		}
	}
	if _, ok := PhaseAttack.Next(); ok {
		t.Fatal("attack phase must be terminal")
	}
}

func TestGameJSONRoundTrip(t *testing.T) {
	g := Game{
		ID:        "g1",
		Players:   []Player{{ID: "p1", Hand: []CardID{"march", WoundCard}}},
		TurnOrder: []PlayerID{"p1"},
		Board:     map[Coord]Terrain{{Q: 1, R: -1}: TerrainHills},
		Combat: &Combat{
			Player:         "p1",
			Phase:          PhaseRangedSiege,
			Enemies:        []Enemy{{Instance: "orc#0", ID: "orc"}},
			AssignedAttack: map[AttackKey]int{{Enemy: "orc#0", Type: AttackSiege, Element: ElementFire}: 3},
		},
		RNG: NewRNG(42),
	}

	raw, err := json.Marshal(g)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back Game
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !reflect.DeepEqual(g, back) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", back, g)
	}
}

func TestCardEffectApply(t *testing.T) {
	effect := CardEffect{
		Move:   2,
		Attack: AttackPool{}.Add(AttackSiege, ElementFire, 3),
		Block:  BlockPool{}.Add(ElementIce, 2),
	}

	p := effect.Apply(Player{ID: "p1", MovePoints: 1})

	if p.MovePoints != 3 {
		t.Fatalf("move points = %d, want 3", p.MovePoints)
	}
	if p.Attack.Get(AttackSiege, ElementFire) != 3 {
		t.Fatalf("siege fire attack = %d, want 3", p.Attack.Get(AttackSiege, ElementFire))
	}
	if p.Block.Get(ElementIce) != 2 {
		t.Fatalf("ice block = %d, want 2", p.Block.Get(ElementIce))
	}
}

func TestCardEffectApply_UnresolvedChoicePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for unresolved choice effect")
		}
	}()
	CardEffect{Choices: []CardEffect{{Move: 1}}}.Apply(Player{})
}

func TestHandWounds(t *testing.T) {
	p := Player{Hand: []CardID{"march", WoundCard, WoundCard}}
	if got := p.HandWounds(); got != 2 {
		t.Fatalf("hand wounds = %d, want 2", got)
	}
}
