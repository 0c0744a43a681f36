// Package engine owns the apply loop: validate an action, build its
// command, execute it against the current root and keep the undo stack.
//
// The engine is the only writer of the undo stack. Reversible commands push
// onto it; irreversible commands are checkpoints that clear it. State roots
// are immutable values, so the engine never mutates a caller's root.
package engine

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/mage-knight-digital/mageknight/internal/game/action"
	"github.com/mage-knight-digital/mageknight/internal/game/command"
	"github.com/mage-knight-digital/mageknight/internal/game/effect"
	"github.com/mage-knight-digital/mageknight/internal/game/event"
	"github.com/mage-knight-digital/mageknight/internal/game/state"
	"github.com/mage-knight-digital/mageknight/internal/game/validation"
)

// ErrNothingToUndo reports an undo request with an empty stack. Undo past a
// checkpoint is never a silent no-op; callers must see the refusal.
var ErrNothingToUndo = errors.New("engine: nothing to undo")

const tracerName = "mageknight/engine"

// Engine applies player actions to game roots.
type Engine struct {
	validators *validation.Registry
	resolver   effect.Resolver
	logger     *zap.Logger
	tracer     trace.Tracer

	undo        []command.Command
	checkpoints int
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger wires a structured logger. The default discards.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

// WithTracerProvider wires a tracer provider. The default is the global one.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(e *Engine) { e.tracer = tp.Tracer(tracerName) }
}

// New builds an engine around an effect resolver.
func New(resolver effect.Resolver, opts ...Option) *Engine {
	e := &Engine{
		validators: validation.NewRegistry(),
		resolver:   resolver,
		logger:     zap.NewNop(),
		tracer:     otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Apply validates and executes one action against the root. Rule violations
// never surface as errors: they come back as a single InvalidAction event
// with the root unchanged. The error return is reserved for infrastructure
// failures.
func (e *Engine) Apply(ctx context.Context, g state.Game, player state.PlayerID, act action.Action) (state.Game, []event.Event, error) {
	_, span := e.tracer.Start(ctx, "engine.apply", trace.WithAttributes(
		attribute.String("action.type", string(act.Type())),
		attribute.String("player.id", string(player)),
	))
	defer span.End()

	if _, isUndo := act.(action.Undo); isUndo {
		next, events, err := e.Undo(g)
		if errors.Is(err, ErrNothingToUndo) {
			return e.reject(span, g, player, act, validation.Invalid(validation.CodeNothingToUndo, "nothing to undo"))
		}
		return next, events, err
	}

	if res := e.validators.Validate(g, player, act); !res.OK() {
		return e.reject(span, g, player, act, res)
	}

	cmd, res := e.build(g, player, act)
	if !res.OK() {
		return e.reject(span, g, player, act, res)
	}

	next, events := cmd.Execute(g)
	if cmd.Reversible() {
		e.undo = append(e.undo, cmd)
	} else {
		e.undo = e.undo[:0]
		e.checkpoints++
		span.SetAttributes(attribute.Int("engine.checkpoints", e.checkpoints))
	}
	e.logger.Debug("action applied",
		zap.String("player", string(player)),
		zap.String("action", string(act.Type())),
		zap.Int("undo_depth", len(e.undo)),
	)

	// A human end-turn can hand the turn to the scripted dummy player; its
	// turns run inline until a human is up again or the game ends.
	if act.Type() == action.TypeEndTurn {
		next, events = e.runDummyTurns(next, events)
	}
	return next, events, nil
}

// Undo pops and reverts the most recent reversible command.
func (e *Engine) Undo(g state.Game) (state.Game, []event.Event, error) {
	if len(e.undo) == 0 {
		return g, nil, ErrNothingToUndo
	}
	cmd := e.undo[len(e.undo)-1]
	e.undo = e.undo[:len(e.undo)-1]
	next, events := cmd.Undo(g)
	e.logger.Debug("action undone",
		zap.String("player", string(cmd.Player())),
		zap.String("command", string(cmd.Type())),
		zap.Int("undo_depth", len(e.undo)),
	)
	return next, events, nil
}

// UndoDepth reports how many commands can currently be undone.
func (e *Engine) UndoDepth() int { return len(e.undo) }

// Checkpoints reports how many irreversible commands have executed.
func (e *Engine) Checkpoints() int { return e.checkpoints }

func (e *Engine) reject(span trace.Span, g state.Game, player state.PlayerID, act action.Action, res validation.Result) (state.Game, []event.Event, error) {
	span.SetAttributes(attribute.String("validation.code", string(res.Code)))
	e.logger.Debug("action rejected",
		zap.String("player", string(player)),
		zap.String("action", string(act.Type())),
		zap.String("code", string(res.Code)),
	)
	return g, []event.Event{event.InvalidAction{
		Player:  player,
		Action:  string(act.Type()),
		Code:    string(res.Code),
		Message: res.Message,
	}}, nil
}

// runDummyTurns executes scripted dummy turns until a human player is up.
// Dummy turns are checkpoints like any end-turn.
func (e *Engine) runDummyTurns(g state.Game, events []event.Event) (state.Game, []event.Event) {
	for !g.Ended && g.DummyPlayer != "" && g.CurrentPlayer() == g.DummyPlayer {
		cmd := &command.DummyTurn{PlayerID: g.DummyPlayer}
		var dummyEvents []event.Event
		g, dummyEvents = cmd.Execute(g)
		events = append(events, dummyEvents...)
		e.undo = e.undo[:0]
		e.checkpoints++
	}
	return g, events
}
