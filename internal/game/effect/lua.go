package effect

import (
	"fmt"

	"github.com/Shopify/go-lua"

	"github.com/mage-knight-digital/mageknight/internal/game/state"
)

// LuaResolver resolves effects from a content script. The script runs once
// at load time and must return a table mapping card or skill ids to effect
// tables:
//
//	return {
//	  march = {
//	    description = "march",
//	    choices = {
//	      { description = "move 2", move = 2 },
//	      { description = "move 4", move = 4 },
//	    },
//	  },
//	  rage = { description = "rage", attack = { melee = { physical = 2 } } },
//	}
//
// Effects are decoded eagerly so resolution never re-enters the interpreter.
type LuaResolver struct {
	effects map[string]state.CardEffect
}

// NewLuaResolver loads and runs the content script at path.
func NewLuaResolver(path string) (*LuaResolver, error) {
	l := lua.NewState()
	lua.OpenLibraries(l)

	if err := lua.LoadFile(l, path, ""); err != nil {
		return nil, fmt.Errorf("effect: load script: %w", err)
	}
	if err := l.ProtectedCall(0, 1, 0); err != nil {
		return nil, fmt.Errorf("effect: run script: %w", err)
	}
	if l.TypeOf(-1) != lua.TypeTable {
		return nil, fmt.Errorf("effect: script %s must return a table", path)
	}

	effects := make(map[string]state.CardEffect)
	l.PushNil()
	for l.Next(-2) {
		id, ok := l.ToString(-2)
		if !ok || l.TypeOf(-1) != lua.TypeTable {
			l.Pop(1)
			continue
		}
		eff, err := decodeEffect(l)
		if err != nil {
			return nil, fmt.Errorf("effect: card %q: %w", id, err)
		}
		effects[id] = eff
		l.Pop(1)
	}
	l.Pop(1)
	return &LuaResolver{effects: effects}, nil
}

// Resolve implements Resolver.
func (r *LuaResolver) Resolve(_ state.Game, _ state.PlayerID, source string) (state.CardEffect, error) {
	eff, ok := r.effects[source]
	if !ok {
		return state.CardEffect{}, fmt.Errorf("%w: %q", ErrUnknownSource, source)
	}
	return eff, nil
}

// decodeEffect decodes the effect table at the top of the stack, leaving the
// stack as it found it.
func decodeEffect(l *lua.State) (state.CardEffect, error) {
	eff := state.CardEffect{
		Description: fieldString(l, "description"),
		Move:        fieldInt(l, "move"),
		Influence:   fieldInt(l, "influence"),
		Heal:        fieldInt(l, "heal"),
	}

	l.Field(-1, "attack")
	if l.TypeOf(-1) == lua.TypeTable {
		for t := state.AttackMelee; t.Valid(); t++ {
			l.Field(-1, t.String())
			if l.TypeOf(-1) == lua.TypeTable {
				for _, el := range state.Elements() {
					if v := fieldInt(l, el.String()); v != 0 {
						eff.Attack = eff.Attack.Add(t, el, v)
					}
				}
			}
			l.Pop(1)
		}
	}
	l.Pop(1)

	l.Field(-1, "block")
	if l.TypeOf(-1) == lua.TypeTable {
		for _, el := range state.Elements() {
			if v := fieldInt(l, el.String()); v != 0 {
				eff.Block = eff.Block.Add(el, v)
			}
		}
	}
	l.Pop(1)

	l.Field(-1, "crystals")
	if l.TypeOf(-1) == lua.TypeTable {
		for c := state.ColorRed; c.Valid(); c++ {
			if v := fieldInt(l, c.String()); v != 0 {
				eff.Crystals = eff.Crystals.Add(c, v)
			}
		}
	}
	l.Pop(1)

	l.Field(-1, "modifiers")
	if l.TypeOf(-1) == lua.TypeTable {
		mods, err := decodeArray(l, decodeModifier)
		if err != nil {
			l.Pop(1)
			return state.CardEffect{}, err
		}
		eff.Modifiers = mods
	}
	l.Pop(1)

	l.Field(-1, "choices")
	if l.TypeOf(-1) == lua.TypeTable {
		choices, err := decodeArray(l, decodeEffect)
		if err != nil {
			l.Pop(1)
			return state.CardEffect{}, err
		}
		eff.Choices = choices
	}
	l.Pop(1)

	return eff, nil
}

// decodeModifier decodes the modifier table at the top of the stack.
func decodeModifier(l *lua.State) (state.Modifier, error) {
	m := state.Modifier{
		Source:   fieldString(l, "source"),
		Scope:    state.Scope(fieldString(l, "scope")),
		Duration: state.Duration(fieldString(l, "duration")),
		Effect: state.Effect{
			Kind:    state.EffectKind(fieldString(l, "kind")),
			Amount:  fieldInt(l, "amount"),
			Terrain: state.Terrain(fieldString(l, "terrain")),
		},
		EnemyInstance: fieldString(l, "enemy"),
	}
	if m.Scope == "" {
		m.Scope = state.ScopeSelf
	}
	if m.Duration == "" {
		m.Duration = state.DurationTurn
	}
	if name := fieldString(l, "element"); name != "" {
		for _, el := range state.Elements() {
			if el.String() == name {
				m.Effect.Element = el
			}
		}
	}
	if name := fieldString(l, "color"); name != "" {
		for c := state.ColorRed; c.Valid(); c++ {
			if c.String() == name {
				m.Effect.Color = c
			}
		}
	}
	if m.Effect.Kind == "" {
		return state.Modifier{}, fmt.Errorf("modifier without a kind")
	}
	return m, nil
}

// decodeArray walks the array part of the table at the top of the stack.
func decodeArray[T any](l *lua.State, decode func(*lua.State) (T, error)) ([]T, error) {
	var out []T
	for i := 1; ; i++ {
		l.RawGetInt(-1, i)
		if l.TypeOf(-1) != lua.TypeTable {
			l.Pop(1)
			break
		}
		v, err := decode(l)
		if err != nil {
			l.Pop(1)
			return nil, err
		}
		out = append(out, v)
		l.Pop(1)
	}
	return out, nil
}

func fieldString(l *lua.State, key string) string {
	l.Field(-1, key)
	defer l.Pop(1)
	if l.TypeOf(-1) != lua.TypeString {
		return ""
	}
	s, _ := l.ToString(-1)
	return s
}

func fieldInt(l *lua.State, key string) int {
	l.Field(-1, key)
	defer l.Pop(1)
	if l.TypeOf(-1) != lua.TypeNumber {
		return 0
	}
	n, _ := l.ToInteger(-1)
	return n
}
