package action

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrTypeUnknown indicates an unregistered action type in an envelope.
var ErrTypeUnknown = errors.New("action type is not registered")

// envelope is the journal wire shape for actions.
type envelope struct {
	Type    Type            `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Encode serializes an action into a type-tagged JSON envelope.
func Encode(act Action) ([]byte, error) {
	payload, err := json.Marshal(act)
	if err != nil {
		return nil, fmt.Errorf("encode action payload: %w", err)
	}
	raw, err := json.Marshal(envelope{Type: act.Type(), Payload: payload})
	if err != nil {
		return nil, fmt.Errorf("encode action envelope: %w", err)
	}
	return raw, nil
}

// Decode reverses Encode.
func Decode(raw []byte) (Action, error) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("decode action envelope: %w", err)
	}
	act, err := empty(env.Type)
	if err != nil {
		return nil, err
	}
	if len(env.Payload) > 0 {
		if err := json.Unmarshal(env.Payload, act); err != nil {
			return nil, fmt.Errorf("decode %s payload: %w", env.Type, err)
		}
	}
	return deref(act), nil
}

// empty returns a pointer to a zero value of the variant for unmarshalling.
func empty(t Type) (any, error) {
	switch t {
	case TypeMove:
		return &Move{}, nil
	case TypeExplore:
		return &Explore{}, nil
	case TypePlayCard:
		return &PlayCard{}, nil
	case TypeUseSkill:
		return &UseSkill{}, nil
	case TypeRest:
		return &Rest{}, nil
	case TypeRecruit:
		return &Recruit{}, nil
	case TypeEndTurn:
		return &EndTurn{}, nil
	case TypeResolveChoice:
		return &ResolveChoice{}, nil
	case TypeUndo:
		return &Undo{}, nil
	case TypeEnterCombat:
		return &EnterCombat{}, nil
	case TypeAssignAttack:
		return &AssignAttack{}, nil
	case TypeUnassignAttack:
		return &UnassignAttack{}, nil
	case TypeAssignBlock:
		return &AssignBlock{}, nil
	case TypeUnassignBlock:
		return &UnassignBlock{}, nil
	case TypeDeclareBlock:
		return &DeclareBlock{}, nil
	case TypeFinalizeAttack:
		return &FinalizeAttack{}, nil
	case TypeAssignDamage:
		return &AssignDamage{}, nil
	case TypeAdvancePhase:
		return &AdvancePhase{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrTypeUnknown, t)
	}
}

func deref(act any) Action {
	switch v := act.(type) {
	case *Move:
		return *v
	case *Explore:
		return *v
	case *PlayCard:
		return *v
	case *UseSkill:
		return *v
	case *Rest:
		return *v
	case *Recruit:
		return *v
	case *EndTurn:
		return *v
	case *ResolveChoice:
		return *v
	case *Undo:
		return *v
	case *EnterCombat:
		return *v
	case *AssignAttack:
		return *v
	case *UnassignAttack:
		return *v
	case *AssignBlock:
		return *v
	case *UnassignBlock:
		return *v
	case *DeclareBlock:
		return *v
	case *FinalizeAttack:
		return *v
	case *AssignDamage:
		return *v
	case *AdvancePhase:
		return *v
	default:
		panic("action: unhandled variant in deref")
	}
}
