// Package effect resolves card and skill ids into concrete effects.
//
// The resolver is an external collaborator of the engine: the rules never
// hardcode card content. A Static table backs tests and fixed scenarios; the
// Lua resolver loads content scripts.
package effect

import (
	"errors"
	"fmt"

	"github.com/mage-knight-digital/mageknight/internal/game/state"
)

// ErrUnknownSource reports a card or skill id the resolver has no entry for.
var ErrUnknownSource = errors.New("effect: unknown source")

// Resolver turns a card or skill id into its resolved effect for the current
// game state.
type Resolver interface {
	Resolve(g state.Game, player state.PlayerID, source string) (state.CardEffect, error)
}

// Static resolves from an in-memory table keyed by card or skill id.
type Static map[string]state.CardEffect

// Resolve implements Resolver.
func (s Static) Resolve(_ state.Game, _ state.PlayerID, source string) (state.CardEffect, error) {
	eff, ok := s[source]
	if !ok {
		return state.CardEffect{}, fmt.Errorf("%w: %q", ErrUnknownSource, source)
	}
	return eff, nil
}
