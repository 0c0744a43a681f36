package command

import (
	"github.com/mage-knight-digital/mageknight/internal/game/event"
	"github.com/mage-knight-digital/mageknight/internal/game/state"
)

// Rest discards one non-wound card and every wound from hand. The wounds go
// to the discard pile; healing later retrieves them from there.
type Rest struct {
	Snapshot
	PlayerID state.PlayerID
	Discard  state.CardID
}

func (c *Rest) Type() Type             { return TypeRest }
func (c *Rest) Player() state.PlayerID { return c.PlayerID }

func (c *Rest) Execute(g state.Game) (state.Game, []event.Event) {
	c.Capture(g)
	g = g.WithPlayer(c.PlayerID, func(p state.Player) state.Player {
		p, _ = p.RemoveHandCard(c.Discard)
		p = p.AppendDiscard(c.Discard)
		for p.HandWounds() > 0 {
			p, _ = p.RemoveHandCard(state.WoundCard)
			p = p.AppendDiscard(state.WoundCard)
		}
		return p
	})
	return g, []event.Event{event.Rested{Player: c.PlayerID, Discarded: c.Discard}}
}

func (c *Rest) Undo(state.Game) (state.Game, []event.Event) {
	return c.Restore(), []event.Event{event.ActionUndone{Player: c.PlayerID, Command: string(TypeRest)}}
}
