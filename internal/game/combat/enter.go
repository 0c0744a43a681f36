package combat

import (
	"fmt"

	"github.com/mage-knight-digital/mageknight/internal/game/command"
	"github.com/mage-knight-digital/mageknight/internal/game/event"
	"github.com/mage-knight-digital/mageknight/internal/game/modifier"
	"github.com/mage-knight-digital/mageknight/internal/game/state"
)

// EnterCombat creates the combat sub-record in the ranged/siege phase.
//
// Enemy instances get deterministic ids derived from the definition id and
// position in the entry list, so replaying the same action journal yields
// the same instance ids.
type EnterCombat struct {
	command.Snapshot
	PlayerID      state.PlayerID
	EnemyIDs      []string
	FortifiedSite bool
}

func (c *EnterCombat) Type() command.Type     { return command.TypeEnterCombat }
func (c *EnterCombat) Player() state.PlayerID { return c.PlayerID }

func (c *EnterCombat) Execute(g state.Game) (state.Game, []event.Event) {
	c.Capture(g)

	enemies := make([]state.Enemy, len(c.EnemyIDs))
	instances := make([]string, len(c.EnemyIDs))
	for i, id := range c.EnemyIDs {
		instance := fmt.Sprintf("%s#%d", id, i)
		enemies[i] = state.Enemy{Instance: instance, ID: id, Def: g.EnemyDefs[id]}
		instances[i] = instance
	}

	combat := &state.Combat{
		Player:        c.PlayerID,
		Phase:         state.PhaseRangedSiege,
		Enemies:       enemies,
		DefendBonuses: modifier.DefendBonuses(g, c.PlayerID),
		FortifiedSite: c.FortifiedSite,
		// Freeze the day/night rule at entry so a round flip mid-combat
		// cannot change mana behavior.
		NightManaRules: g.Night,
	}
	g = g.WithCombat(combat)
	return g, []event.Event{event.CombatStarted{
		Player:        c.PlayerID,
		Enemies:       instances,
		FortifiedSite: c.FortifiedSite,
	}}
}

func (c *EnterCombat) Undo(state.Game) (state.Game, []event.Event) {
	return c.Restore(), []event.Event{event.ActionUndone{Player: c.PlayerID, Command: string(command.TypeEnterCombat)}}
}
