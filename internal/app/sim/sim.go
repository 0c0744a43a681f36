// Package sim wires the engine, effect resolver and store into a playable
// session, and verifies saves by replaying the action journal.
package sim

import (
	"context"
	"fmt"
	"reflect"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mage-knight-digital/mageknight/internal/game/action"
	"github.com/mage-knight-digital/mageknight/internal/game/effect"
	"github.com/mage-knight-digital/mageknight/internal/game/engine"
	"github.com/mage-knight-digital/mageknight/internal/game/event"
	"github.com/mage-knight-digital/mageknight/internal/game/state"
	"github.com/mage-knight-digital/mageknight/internal/platform/config"
	"github.com/mage-knight-digital/mageknight/internal/platform/random"
	"github.com/mage-knight-digital/mageknight/internal/storage/sqlite"
)

// Config holds the runtime settings for a simulation process.
type Config struct {
	StoragePath string `env:"MAGEKNIGHT_STORAGE_PATH" envDefault:"mageknight.db"`
	CardScript  string `env:"MAGEKNIGHT_CARD_SCRIPT"`
	Seed        int64  `env:"MAGEKNIGHT_SEED" envDefault:"0"`
	LogLevel    string `env:"MAGEKNIGHT_LOG_LEVEL" envDefault:"info"`
}

// LoadConfig reads the configuration from environment variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Session drives one game: it applies actions through the engine, journals
// accepted ones and keeps the initial snapshot for replay verification.
type Session struct {
	store    *sqlite.Store
	engine   *engine.Engine
	resolver effect.Resolver
	logger   *zap.Logger

	game state.Game
	seq  int
}

// NewSession creates a game, persists its initial snapshot and returns the
// live session. A zero seed draws a cryptographic one.
func NewSession(ctx context.Context, store *sqlite.Store, resolver effect.Resolver, logger *zap.Logger, setup Setup) (*Session, error) {
	seed := setup.Seed
	if seed == 0 {
		var err error
		seed, err = random.NewSeed()
		if err != nil {
			return nil, fmt.Errorf("sim: new seed: %w", err)
		}
	}

	g, err := setup.build(seed)
	if err != nil {
		return nil, err
	}
	if err := store.SaveSnapshot(ctx, g); err != nil {
		return nil, fmt.Errorf("sim: save initial snapshot: %w", err)
	}
	logger.Info("game created",
		zap.String("game_id", g.ID),
		zap.Int64("seed", seed),
		zap.Int("players", len(g.Players)),
	)
	return &Session{
		store:    store,
		engine:   engine.New(resolver, engine.WithLogger(logger)),
		resolver: resolver,
		logger:   logger,
		game:     g,
	}, nil
}

// Game returns the current root.
func (s *Session) Game() state.Game { return s.game }

// Apply runs one action through the engine. Accepted actions are journaled;
// rejected ones come back as their InvalidAction event and are not.
func (s *Session) Apply(ctx context.Context, player state.PlayerID, act action.Action) ([]event.Event, error) {
	next, events, err := s.engine.Apply(ctx, s.game, player, act)
	if err != nil {
		return nil, err
	}
	if rejected(events) {
		return events, nil
	}
	if err := s.store.AppendAction(ctx, s.game.ID, s.seq, player, act); err != nil {
		return nil, fmt.Errorf("sim: journal action: %w", err)
	}
	s.seq++
	s.game = next
	return events, nil
}

// Verify replays the journal over the initial snapshot and compares the
// result with the live root. A mismatch means determinism was broken.
func (s *Session) Verify(ctx context.Context) error {
	replayed, err := Replay(ctx, s.store, s.resolver, s.game.ID)
	if err != nil {
		return err
	}
	if !reflect.DeepEqual(replayed, s.game) {
		return fmt.Errorf("sim: replay diverged for game %s", s.game.ID)
	}
	return nil
}

// Replay loads a game's initial snapshot and replays its journal through a
// fresh engine, returning the reconstructed root.
func Replay(ctx context.Context, store *sqlite.Store, resolver effect.Resolver, gameID string) (state.Game, error) {
	g, err := store.LoadSnapshot(ctx, gameID)
	if err != nil {
		return state.Game{}, fmt.Errorf("sim: load snapshot: %w", err)
	}
	entries, err := store.ListActions(ctx, gameID)
	if err != nil {
		return state.Game{}, fmt.Errorf("sim: list actions: %w", err)
	}

	eng := engine.New(resolver)
	for _, entry := range entries {
		next, events, err := eng.Apply(ctx, g, entry.Player, entry.Action)
		if err != nil {
			return state.Game{}, fmt.Errorf("sim: replay seq %d: %w", entry.Seq, err)
		}
		if rejected(events) {
			return state.Game{}, fmt.Errorf("sim: replay seq %d: journaled action was rejected", entry.Seq)
		}
		g = next
	}
	return g, nil
}

func rejected(events []event.Event) bool {
	for _, e := range events {
		if e.Type() == event.TypeInvalidAction {
			return true
		}
	}
	return false
}

// Setup describes a new game.
type Setup struct {
	Players   []PlayerSetup
	DummyDeck []state.CardID
	MaxRounds int
	Tiles     []string
	Board     map[state.Coord]state.Terrain
	EnemyDefs map[string]state.EnemyDef
	Offers    state.Offers
	UnitCosts map[state.UnitID]int
	Seed      int64
}

// PlayerSetup describes one player's starting deck and skills.
type PlayerSetup struct {
	Name   string
	Deck   []state.CardID
	Skills []state.SkillID
	Dummy  bool
}

// build constructs the initial root: ids, shuffled decks and opening hands
// all derive from the seeded stream so creation itself is replayable from
// the snapshot.
func (s Setup) build(seed int64) (state.Game, error) {
	if len(s.Players) == 0 {
		return state.Game{}, fmt.Errorf("sim: at least one player is required")
	}
	maxRounds := s.MaxRounds
	if maxRounds == 0 {
		maxRounds = 6
	}

	g := state.Game{
		ID:        uuid.NewString(),
		Round:     1,
		MaxRounds: maxRounds,
		Board:     s.Board,
		EnemyDefs: s.EnemyDefs,
		Decks:     state.Decks{Tiles: s.Tiles, DummyDeck: s.DummyDeck},
		Offers:    s.Offers,
		UnitCosts: s.UnitCosts,
		RNG:       state.RNG{Seed: seed},
	}

	for i, ps := range s.Players {
		id := state.PlayerID(fmt.Sprintf("player-%d", i+1))
		p := state.Player{
			ID:        id,
			Name:      ps.Name,
			Armor:     2,
			HandLimit: 5,
			Skills:    ps.Skills,
		}
		if !ps.Dummy {
			deck := make([]state.CardID, len(ps.Deck))
			copy(deck, ps.Deck)
			g.RNG = g.RNG.Shuffle(len(deck), func(a, b int) {
				deck[a], deck[b] = deck[b], deck[a]
			})
			p.Deck = deck
			for len(p.Hand) < p.HandLimit && len(p.Deck) > 0 {
				p = p.AppendHand(p.Deck[0])
				p.Deck = p.Deck[1:]
			}
		} else {
			g.DummyPlayer = id
		}
		g.Players = append(g.Players, p)
		g.TurnOrder = append(g.TurnOrder, id)
	}
	return g, nil
}
