package command

import (
	"github.com/mage-knight-digital/mageknight/internal/game/event"
	"github.com/mage-knight-digital/mageknight/internal/game/modifier"
	"github.com/mage-knight-digital/mageknight/internal/game/state"
)

// applyEffect folds a fully resolved effect into the player and registers
// its modifiers, returning the new root and the modifier events.
func applyEffect(g state.Game, player state.PlayerID, source string, eff state.CardEffect) (state.Game, []event.Event) {
	g = g.WithPlayer(player, eff.Apply)
	var events []event.Event
	for _, m := range eff.Modifiers {
		if m.Source == "" {
			m.Source = source
		}
		if m.CreatedBy == "" {
			m.CreatedBy = player
		}
		g = modifier.Add(g, m)
		events = append(events, event.ModifierAdded{Player: player, Kind: m.Effect.Kind, Source: m.Source})
	}
	return g, events
}

// optionLabels summarizes choice branches for the choice-required event.
func optionLabels(choices []state.CardEffect) []string {
	labels := make([]string, len(choices))
	for i, c := range choices {
		labels[i] = c.Description
	}
	return labels
}

// PlayCard moves a card from hand to discard and applies its resolved
// effect. The engine resolves the effect before construction; a choice
// effect parks in PendingChoice instead of applying.
type PlayCard struct {
	Snapshot
	PlayerID state.PlayerID
	Card     state.CardID
	Effect   state.CardEffect
}

func (c *PlayCard) Type() Type             { return TypePlayCard }
func (c *PlayCard) Player() state.PlayerID { return c.PlayerID }

func (c *PlayCard) Execute(g state.Game) (state.Game, []event.Event) {
	c.Capture(g)
	g = g.WithPlayer(c.PlayerID, func(p state.Player) state.Player {
		p, _ = p.RemoveHandCard(c.Card)
		return p.AppendDiscard(c.Card)
	})
	events := []event.Event{event.CardPlayed{Player: c.PlayerID, Card: c.Card, Description: c.Effect.Description}}

	if c.Effect.RequiresChoice() {
		g.PendingChoice = &state.PendingChoice{Player: c.PlayerID, Source: c.Card, Options: c.Effect.Choices}
		return g, append(events, event.ChoiceRequired{
			Player:  c.PlayerID,
			Source:  c.Card,
			Options: optionLabels(c.Effect.Choices),
		})
	}

	g, modEvents := applyEffect(g, c.PlayerID, string(c.Card), c.Effect)
	return g, append(events, modEvents...)
}

func (c *PlayCard) Undo(state.Game) (state.Game, []event.Event) {
	return c.Restore(), []event.Event{event.ActionUndone{Player: c.PlayerID, Command: string(TypePlayCard)}}
}

// UseSkill marks a skill used for the turn and applies its resolved effect.
type UseSkill struct {
	Snapshot
	PlayerID state.PlayerID
	Skill    state.SkillID
	Effect   state.CardEffect
}

func (c *UseSkill) Type() Type             { return TypeUseSkill }
func (c *UseSkill) Player() state.PlayerID { return c.PlayerID }

func (c *UseSkill) Execute(g state.Game) (state.Game, []event.Event) {
	c.Capture(g)
	g = g.WithPlayer(c.PlayerID, func(p state.Player) state.Player {
		return p.WithUsedSkill(c.Skill)
	})
	events := []event.Event{event.SkillUsed{Player: c.PlayerID, Skill: c.Skill, Description: c.Effect.Description}}

	if c.Effect.RequiresChoice() {
		g.PendingChoice = &state.PendingChoice{Player: c.PlayerID, Source: state.CardID(c.Skill), Options: c.Effect.Choices}
		return g, append(events, event.ChoiceRequired{
			Player:  c.PlayerID,
			Source:  state.CardID(c.Skill),
			Options: optionLabels(c.Effect.Choices),
		})
	}

	g, modEvents := applyEffect(g, c.PlayerID, string(c.Skill), c.Effect)
	return g, append(events, modEvents...)
}

func (c *UseSkill) Undo(state.Game) (state.Game, []event.Event) {
	return c.Restore(), []event.Event{event.ActionUndone{Player: c.PlayerID, Command: string(TypeUseSkill)}}
}

// ResolveChoice picks one branch of the pending effect. A branch with
// nested choices re-parks; otherwise it applies and the pending slot clears.
type ResolveChoice struct {
	Snapshot
	PlayerID state.PlayerID
	Option   int
}

func (c *ResolveChoice) Type() Type             { return TypeResolveChoice }
func (c *ResolveChoice) Player() state.PlayerID { return c.PlayerID }

func (c *ResolveChoice) Execute(g state.Game) (state.Game, []event.Event) {
	c.Capture(g)
	pending := g.PendingChoice
	chosen := pending.Options[c.Option]

	if chosen.RequiresChoice() {
		g.PendingChoice = &state.PendingChoice{Player: pending.Player, Source: pending.Source, Options: chosen.Choices}
		return g, []event.Event{event.ChoiceRequired{
			Player:  pending.Player,
			Source:  pending.Source,
			Options: optionLabels(chosen.Choices),
		}}
	}

	g.PendingChoice = nil
	g, modEvents := applyEffect(g, c.PlayerID, string(pending.Source), chosen)
	events := []event.Event{event.ChoiceResolved{
		Player:      c.PlayerID,
		Source:      pending.Source,
		Option:      c.Option,
		Description: chosen.Description,
	}}
	return g, append(events, modEvents...)
}

func (c *ResolveChoice) Undo(state.Game) (state.Game, []event.Event) {
	return c.Restore(), []event.Event{event.ActionUndone{Player: c.PlayerID, Command: string(TypeResolveChoice)}}
}
