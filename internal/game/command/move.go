package command

import (
	"github.com/mage-knight-digital/mageknight/internal/game/event"
	"github.com/mage-knight-digital/mageknight/internal/game/state"
)

// Move relocates the player to an adjacent hex, spending move points.
//
// Cost is the effective terrain cost computed by the engine at construction
// time, so the command applies the same value the validator approved.
type Move struct {
	Snapshot
	PlayerID state.PlayerID
	To       state.Coord
	Cost     int
}

func (c *Move) Type() Type             { return TypeMove }
func (c *Move) Player() state.PlayerID { return c.PlayerID }

func (c *Move) Execute(g state.Game) (state.Game, []event.Event) {
	c.Capture(g)
	from := g.Player(c.PlayerID).Position
	g = g.WithPlayer(c.PlayerID, func(p state.Player) state.Player {
		p.Position = c.To
		p.MovePoints -= c.Cost
		return p
	})
	return g, []event.Event{event.Moved{Player: c.PlayerID, From: from, To: c.To, Cost: c.Cost}}
}

func (c *Move) Undo(state.Game) (state.Game, []event.Event) {
	return c.Restore(), []event.Event{event.ActionUndone{Player: c.PlayerID, Command: string(TypeMove)}}
}
