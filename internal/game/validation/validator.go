// Package validation implements the pure validator pipeline run ahead of
// every command. Validators never mutate state; the only sanctioned read
// dependency besides the root value is the modifier registry, consulted for
// effective values.
package validation

import (
	"github.com/mage-knight-digital/mageknight/internal/game/action"
	"github.com/mage-knight-digital/mageknight/internal/game/state"
)

// Result is the outcome of a validator. The zero value is valid.
type Result struct {
	Code    Code
	Message string
}

// Valid returns a passing result.
func Valid() Result { return Result{} }

// Invalid returns a failing result with a code from the closed enumeration
// and a human-readable message.
func Invalid(code Code, message string) Result {
	return Result{Code: code, Message: message}
}

// OK reports whether the result passed.
func (r Result) OK() bool { return r.Code == "" }

// Validator checks one concern of one action. Validators receiving an
// action of a type they do not care about return Valid.
type Validator func(g state.Game, player state.PlayerID, act action.Action) Result

// Pipeline is an ordered validator chain; the first failure short-circuits.
type Pipeline []Validator

// Run executes the pipeline in order.
func (p Pipeline) Run(g state.Game, player state.PlayerID, act action.Action) Result {
	for _, v := range p {
		if r := v(g, player, act); !r.OK() {
			return r
		}
	}
	return Valid()
}

// Registry maps each action type to its pipeline.
type Registry struct {
	pipelines map[action.Type]Pipeline
}

// NewRegistry builds the default per-action-type pipelines.
func NewRegistry() *Registry {
	common := Pipeline{GameNotEnded, PlayerExists, TurnOwnership, PendingChoiceGate}
	combatCommon := append(Pipeline{}, common...)
	combatCommon = append(combatCommon, CombatActive, CombatOwnership)

	r := &Registry{pipelines: make(map[action.Type]Pipeline)}
	register := func(t action.Type, extra ...Validator) {
		r.pipelines[t] = append(append(Pipeline{}, common...), extra...)
	}
	registerCombat := func(t action.Type, extra ...Validator) {
		r.pipelines[t] = append(append(Pipeline{}, combatCommon...), extra...)
	}

	register(action.TypeMove, NotKnockedOut, NotInCombat, MoveTarget, MoveCost)
	register(action.TypeExplore, NotKnockedOut, NotInCombat, ExploreTarget)
	register(action.TypePlayCard, NotKnockedOut, CardInHand)
	register(action.TypeUseSkill, NotKnockedOut, SkillAvailable)
	register(action.TypeRest, NotInCombat, RestDiscard)
	register(action.TypeRecruit, NotKnockedOut, NotInCombat, RecruitOffer)
	register(action.TypeEndTurn, NotInCombat)
	register(action.TypeResolveChoice, ChoicePending)
	register(action.TypeEnterCombat, NotKnockedOut, CombatEntry)

	registerCombat(action.TypeAssignAttack, AssignAttackLegal)
	registerCombat(action.TypeUnassignAttack, UnassignAttackLegal)
	registerCombat(action.TypeAssignBlock, AssignBlockLegal)
	registerCombat(action.TypeUnassignBlock, UnassignBlockLegal)
	registerCombat(action.TypeDeclareBlock, DeclareBlockLegal)
	registerCombat(action.TypeFinalizeAttack, FinalizeAttackLegal)
	registerCombat(action.TypeAssignDamage, AssignDamageLegal)
	registerCombat(action.TypeAdvancePhase, AdvancePhaseLegal)

	return r
}

// Validate runs the pipeline registered for the action's type. Undo is
// handled by the engine directly and never reaches the registry.
func (r *Registry) Validate(g state.Game, player state.PlayerID, act action.Action) Result {
	pipeline, ok := r.pipelines[act.Type()]
	if !ok {
		return Invalid(CodeActionUnknown, "no pipeline registered for action "+string(act.Type()))
	}
	return pipeline.Run(g, player, act)
}
