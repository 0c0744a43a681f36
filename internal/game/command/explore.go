package command

import (
	"github.com/mage-knight-digital/mageknight/internal/game/event"
	"github.com/mage-knight-digital/mageknight/internal/game/state"
)

// exploreCost is the move-point price of revealing a tile.
const exploreCost = 2

// Explore reveals an unrevealed adjacent hex by drawing a tile from the tile
// deck. The draw consumes the shared RNG stream, so the command is a
// checkpoint: undoing it would rewind information the player has seen.
type Explore struct {
	Irreversible
	PlayerID state.PlayerID
	At       state.Coord
}

func (c *Explore) Type() Type             { return TypeExplore }
func (c *Explore) Player() state.PlayerID { return c.PlayerID }

func (c *Explore) Execute(g state.Game) (state.Game, []event.Event) {
	idx, rng := g.RNG.Intn(len(g.Decks.Tiles))
	g.RNG = rng

	tile := g.Decks.Tiles[idx]
	tiles := make([]string, 0, len(g.Decks.Tiles)-1)
	tiles = append(tiles, g.Decks.Tiles[:idx]...)
	tiles = append(tiles, g.Decks.Tiles[idx+1:]...)
	g.Decks.Tiles = tiles

	g = g.WithBoardHex(c.At, state.Terrain(tile))
	g = g.WithPlayer(c.PlayerID, func(p state.Player) state.Player {
		p.MovePoints -= exploreCost
		return p
	})
	return g, []event.Event{event.TileExplored{Player: c.PlayerID, At: c.At, Tile: tile}}
}
