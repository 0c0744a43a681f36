package engine

import (
	"context"
	"reflect"
	"testing"

	"pgregory.net/rapid"

	"github.com/mage-knight-digital/mageknight/internal/game/action"
	"github.com/mage-knight-digital/mageknight/internal/game/effect"
	"github.com/mage-knight-digital/mageknight/internal/game/event"
	"github.com/mage-knight-digital/mageknight/internal/game/state"
	"github.com/mage-knight-digital/mageknight/internal/game/validation"
)

var testResolver = effect.Static{
	"rage":  {Description: "rage", Attack: state.AttackPool{}.Add(state.AttackMelee, state.ElementPhysical, 2)},
	"march": {Description: "march", Choices: []state.CardEffect{{Description: "move 2", Move: 2}, {Description: "move 4", Move: 4}}},
}

func testGame() state.Game {
	board := make(map[state.Coord]state.Terrain)
	for q := -2; q <= 2; q++ {
		for r := -2; r <= 2; r++ {
			board[state.Coord{Q: q, R: r}] = state.TerrainPlains
		}
	}
	return state.Game{
		Players: []state.Player{
			{
				ID: "p1", Armor: 2, HandLimit: 5, MovePoints: 99,
				Hand: []state.CardID{"rage", "rage", "march"},
				Deck: []state.CardID{"rage", "rage", "rage", "rage", "rage"},
			},
		},
		TurnOrder: []state.PlayerID{"p1"},
		Round:     1,
		MaxRounds: 6,
		Board:     board,
		EnemyDefs: map[string]state.EnemyDef{
			"orc": {ID: "orc", Armor: 3, Attacks: []state.EnemyAttack{{Element: state.ElementPhysical, Value: 3}}, Fame: 2},
		},
		RNG: state.RNG{Seed: 7},
	}
}

func invalidCode(t *testing.T, events []event.Event) string {
	t.Helper()
	for _, e := range events {
		if inv, ok := e.(event.InvalidAction); ok {
			return inv.Code
		}
	}
	t.Fatalf("no invalid-action event in %v", events)
	return ""
}

func TestApply_RuleViolationEmitsEventNotError(t *testing.T) {
	e := New(testResolver)
	g := testGame()

	next, events, err := e.Apply(context.Background(), g, "ghost", action.EndTurn{})
	if err != nil {
		t.Fatalf("rule violation must not be an error: %v", err)
	}
	if code := invalidCode(t, events); code != string(validation.CodeUnknownPlayer) {
		t.Fatalf("code = %s", code)
	}
	if !reflect.DeepEqual(next, g) {
		t.Fatal("rejected action must leave the root unchanged")
	}
}

func TestApply_UnknownCardRejectedAtBuild(t *testing.T) {
	e := New(testResolver)
	g := testGame()
	g = g.WithPlayer("p1", func(p state.Player) state.Player {
		return p.AppendHand("fireball")
	})

	_, events, err := e.Apply(context.Background(), g, "p1", action.PlayCard{Card: "fireball"})
	if err != nil {
		t.Fatal(err)
	}
	if code := invalidCode(t, events); code != string(validation.CodeCardUnknown) {
		t.Fatalf("code = %s", code)
	}
}

func TestApply_UndoRestoresPriorRoots(t *testing.T) {
	e := New(testResolver)
	ctx := context.Background()
	g0 := testGame()

	g1, _, err := e.Apply(ctx, g0, "p1", action.Move{To: state.Coord{Q: 1, R: 0}})
	if err != nil {
		t.Fatal(err)
	}
	g2, _, err := e.Apply(ctx, g1, "p1", action.PlayCard{Card: "rage"})
	if err != nil {
		t.Fatal(err)
	}
	if e.UndoDepth() != 2 {
		t.Fatalf("undo depth = %d, want 2", e.UndoDepth())
	}

	back1, events, err := e.Apply(ctx, g2, "p1", action.Undo{})
	if err != nil {
		t.Fatal(err)
	}
	if events[0].Type() != event.TypeActionUndone {
		t.Fatalf("events = %v", events)
	}
	if !reflect.DeepEqual(back1, g1) {
		t.Fatal("first undo must restore the intermediate root")
	}
	back0, _, err := e.Apply(ctx, back1, "p1", action.Undo{})
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(back0, g0) {
		t.Fatal("second undo must restore the initial root")
	}

	// The stack is empty now; a further undo is refused, not ignored.
	_, events, err = e.Apply(ctx, back0, "p1", action.Undo{})
	if err != nil {
		t.Fatal(err)
	}
	if code := invalidCode(t, events); code != string(validation.CodeNothingToUndo) {
		t.Fatalf("code = %s", code)
	}
}

func TestApply_CheckpointClearsUndoStack(t *testing.T) {
	e := New(testResolver)
	ctx := context.Background()
	g := testGame()

	g, _, _ = e.Apply(ctx, g, "p1", action.Move{To: state.Coord{Q: 1, R: 0}})
	if e.UndoDepth() != 1 {
		t.Fatalf("undo depth = %d, want 1", e.UndoDepth())
	}

	g, _, _ = e.Apply(ctx, g, "p1", action.EndTurn{})
	if e.UndoDepth() != 0 {
		t.Fatalf("undo depth after checkpoint = %d, want 0", e.UndoDepth())
	}
	if e.Checkpoints() != 1 {
		t.Fatalf("checkpoints = %d, want 1", e.Checkpoints())
	}

	_, _, err := e.Undo(g)
	if err != ErrNothingToUndo {
		t.Fatalf("err = %v, want ErrNothingToUndo", err)
	}
}

func TestApply_ExploreIsCheckpoint(t *testing.T) {
	e := New(testResolver)
	ctx := context.Background()
	g := testGame()
	g.Decks.Tiles = []string{"forest", "hills"}

	// Walk to the board edge; (3,0) is unrevealed and adjacent to (2,0).
	g, _, _ = e.Apply(ctx, g, "p1", action.Move{To: state.Coord{Q: 1, R: 0}})
	g, _, _ = e.Apply(ctx, g, "p1", action.Move{To: state.Coord{Q: 2, R: 0}})
	g, events, err := e.Apply(ctx, g, "p1", action.Explore{At: state.Coord{Q: 3, R: 0}})
	if err != nil {
		t.Fatal(err)
	}
	for _, ev := range events {
		if ev.Type() == event.TypeInvalidAction {
			t.Fatalf("explore rejected: %v", ev)
		}
	}
	if e.UndoDepth() != 0 {
		t.Fatalf("undo depth after explore = %d, want 0", e.UndoDepth())
	}
	if _, revealed := g.Board[state.Coord{Q: 3, R: 0}]; !revealed {
		t.Fatal("explored hex missing from board")
	}
}

func TestApply_EndTurnRunsDummyTurns(t *testing.T) {
	e := New(testResolver)
	g := testGame()
	g.Players = append(g.Players, state.Player{ID: "dummy", HandLimit: 0})
	g.TurnOrder = []state.PlayerID{"p1", "dummy"}
	g.DummyPlayer = "dummy"
	g.Decks.DummyDeck = []state.CardID{"red", "blue", "green"}

	next, events, err := e.Apply(context.Background(), g, "p1", action.EndTurn{})
	if err != nil {
		t.Fatal(err)
	}
	if next.CurrentPlayer() != "p1" {
		t.Fatalf("current player = %s, want p1 (dummy turn must run inline)", next.CurrentPlayer())
	}
	if got := next.Player("dummy").Crystals.Get(state.ColorRed); got != 1 {
		t.Fatalf("dummy crystals = %d, want 1", got)
	}
	turnEnds := 0
	for _, ev := range events {
		if ev.Type() == event.TypeTurnEnded {
			turnEnds++
		}
	}
	if turnEnds != 2 {
		t.Fatalf("turn-ended events = %d, want 2 (human and dummy)", turnEnds)
	}
}

func TestApply_UndoRoundTrip(t *testing.T) {
	dirs := []state.Coord{
		{Q: 1, R: 0}, {Q: 1, R: -1}, {Q: 0, R: -1},
		{Q: -1, R: 0}, {Q: -1, R: 1}, {Q: 0, R: 1},
	}
	rapid.Check(t, func(t *rapid.T) {
		e := New(testResolver)
		ctx := context.Background()
		g0 := testGame()
		g := g0

		steps := rapid.IntRange(1, 6).Draw(t, "steps")
		applied := 0
		for i := 0; i < steps; i++ {
			var act action.Action
			if rapid.Bool().Draw(t, "play") && g.Player("p1").HandWounds() < len(g.Player("p1").Hand) {
				act = action.PlayCard{Card: "rage"}
			} else {
				d := dirs[rapid.IntRange(0, len(dirs)-1).Draw(t, "dir")]
				pos := g.Player("p1").Position
				act = action.Move{To: state.Coord{Q: pos.Q + d.Q, R: pos.R + d.R}}
			}
			next, events, err := e.Apply(ctx, g, "p1", act)
			if err != nil {
				t.Fatal(err)
			}
			rejected := false
			for _, ev := range events {
				if ev.Type() == event.TypeInvalidAction {
					rejected = true
				}
			}
			if rejected {
				if !reflect.DeepEqual(next, g) {
					t.Fatal("rejected action changed the root")
				}
				continue
			}
			g = next
			applied++
		}

		if e.UndoDepth() != applied {
			t.Fatalf("undo depth = %d, want %d", e.UndoDepth(), applied)
		}
		for i := 0; i < applied; i++ {
			var err error
			g, _, err = e.Undo(g)
			if err != nil {
				t.Fatal(err)
			}
		}
		if !reflect.DeepEqual(g, g0) {
			t.Fatal("undoing every applied command must restore the initial root")
		}
	})
}
