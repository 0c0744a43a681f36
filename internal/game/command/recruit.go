package command

import (
	"github.com/mage-knight-digital/mageknight/internal/game/event"
	"github.com/mage-knight-digital/mageknight/internal/game/state"
)

// Recruit spends influence on a unit from the offer. Cost is looked up by
// the engine at construction time.
type Recruit struct {
	Snapshot
	PlayerID state.PlayerID
	Unit     state.UnitID
	Cost     int
}

func (c *Recruit) Type() Type             { return TypeRecruit }
func (c *Recruit) Player() state.PlayerID { return c.PlayerID }

func (c *Recruit) Execute(g state.Game) (state.Game, []event.Event) {
	c.Capture(g)

	units := make([]state.UnitID, 0, len(g.Offers.Units))
	removed := false
	for _, u := range g.Offers.Units {
		if !removed && u == c.Unit {
			removed = true
			continue
		}
		units = append(units, u)
	}
	g.Offers.Units = units

	g = g.WithPlayer(c.PlayerID, func(p state.Player) state.Player {
		p.Influence -= c.Cost
		owned := make([]state.UnitID, 0, len(p.Units)+1)
		owned = append(owned, p.Units...)
		owned = append(owned, c.Unit)
		p.Units = owned
		return p
	})
	return g, []event.Event{event.UnitRecruited{Player: c.PlayerID, Unit: c.Unit, Cost: c.Cost}}
}

func (c *Recruit) Undo(state.Game) (state.Game, []event.Event) {
	return c.Restore(), []event.Event{event.ActionUndone{Player: c.PlayerID, Command: string(TypeRecruit)}}
}
