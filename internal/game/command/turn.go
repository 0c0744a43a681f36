package command

import (
	"github.com/mage-knight-digital/mageknight/internal/game/event"
	"github.com/mage-knight-digital/mageknight/internal/game/modifier"
	"github.com/mage-knight-digital/mageknight/internal/game/state"
)

// advanceTurn performs the shared end-of-turn bookkeeping: expire
// turn-duration modifiers, reset per-turn resources, refill the hand to the
// effective limit, and hand the turn to the next player. Wrapping the turn
// order ends the round and may end the game.
func advanceTurn(g state.Game, player state.PlayerID) (state.Game, []event.Event) {
	var events []event.Event

	g, expired := modifier.Expire(g, state.DurationTurn, player)
	if expired > 0 {
		events = append(events, event.ModifiersExpired{Trigger: state.DurationTurn, Count: expired})
	}

	drawn := 0
	limit := modifier.EffectiveHandLimit(g, player, g.Player(player).HandLimit)
	g = g.WithPlayer(player, func(p state.Player) state.Player {
		p.MovePoints = 0
		p.Influence = 0
		p.Healing = 0
		p.Attack = state.AttackPool{}
		p.Block = state.BlockPool{}
		p.UsedSkills = nil
		p.CombattedThisTurn = false
		p.KnockedOut = false

		for len(p.Hand) < limit && len(p.Deck) > 0 {
			p = p.AppendHand(p.Deck[0])
			deck := make([]state.CardID, len(p.Deck)-1)
			copy(deck, p.Deck[1:])
			p.Deck = deck
			drawn++
		}
		return p
	})
	events = append(events, event.TurnEnded{Player: player, Drawn: drawn})

	g.TurnIndex++
	if g.TurnIndex >= len(g.TurnOrder) {
		g.TurnIndex = 0
		finished := g.Round
		g.Round++
		g.Night = !g.Night

		g, expired = modifier.Expire(g, state.DurationRound, player)
		if expired > 0 {
			events = append(events, event.ModifiersExpired{Trigger: state.DurationRound, Count: expired})
		}
		events = append(events, event.RoundEnded{Round: finished, Night: g.Night})

		if g.MaxRounds > 0 && g.Round > g.MaxRounds {
			g.Ended = true
			events = append(events, event.GameEnded{Rounds: g.MaxRounds})
		}
	}
	return g, events
}

// EndTurn is the turn checkpoint. The draw step publishes deck order the
// player could not unsee, so the command is irreversible and clears the
// undo stack.
type EndTurn struct {
	Irreversible
	PlayerID state.PlayerID
}

func (c *EndTurn) Type() Type             { return TypeEndTurn }
func (c *EndTurn) Player() state.PlayerID { return c.PlayerID }

func (c *EndTurn) Execute(g state.Game) (state.Game, []event.Event) {
	return advanceTurn(g, c.PlayerID)
}

// DummyTurn plays the scripted non-human turn: flip the top dummy card,
// bank a crystal of its color, then end the turn. The engine runs these
// inline after a human end-turn until a human player is up again.
type DummyTurn struct {
	Irreversible
	PlayerID state.PlayerID
}

func (c *DummyTurn) Type() Type             { return TypeDummyTurn }
func (c *DummyTurn) Player() state.PlayerID { return c.PlayerID }

func (c *DummyTurn) Execute(g state.Game) (state.Game, []event.Event) {
	if len(g.Decks.DummyDeck) > 0 {
		card := g.Decks.DummyDeck[0]
		deck := make([]state.CardID, len(g.Decks.DummyDeck)-1)
		copy(deck, g.Decks.DummyDeck[1:])
		g.Decks.DummyDeck = deck

		if color, ok := crystalColor(card); ok {
			g = g.WithPlayer(c.PlayerID, func(p state.Player) state.Player {
				p.Crystals = p.Crystals.Add(color, 1)
				return p
			})
		}
	}
	return advanceTurn(g, c.PlayerID)
}

// crystalColor maps a dummy-deck card id to the crystal it banks.
func crystalColor(card state.CardID) (state.Color, bool) {
	for c := state.ColorRed; c.Valid(); c++ {
		if string(card) == c.String() {
			return c, true
		}
	}
	return 0, false
}
