// Package main runs the simulator: it creates a game, plays a scripted
// demonstration turn through the engine, journals every accepted action and
// verifies the save by replaying it.
package main

import (
	"context"
	"flag"
	"fmt"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/mage-knight-digital/mageknight/internal/app/sim"
	"github.com/mage-knight-digital/mageknight/internal/game/action"
	"github.com/mage-knight-digital/mageknight/internal/game/effect"
	"github.com/mage-knight-digital/mageknight/internal/game/event"
	"github.com/mage-knight-digital/mageknight/internal/game/state"
	"github.com/mage-knight-digital/mageknight/internal/platform/config"
	"github.com/mage-knight-digital/mageknight/internal/storage/sqlite"
)

func main() {
	var replayGameID string
	var cardScript string
	var seed int64

	flag.StringVar(&replayGameID, "replay", "", "replay and verify the journal of an existing game id")
	flag.StringVar(&cardScript, "cards", "", "path to a lua card content script (default: built-in demo cards)")
	flag.Int64Var(&seed, "seed", 0, "deterministic seed (0 = random)")
	flag.Parse()

	cfg, err := sim.LoadConfig()
	if err != nil {
		config.Exitf("load config: %v", err)
	}
	if cardScript == "" {
		cardScript = cfg.CardScript
	}
	if seed == 0 {
		seed = cfg.Seed
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		config.Exitf("build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	store, err := sqlite.Open(cfg.StoragePath)
	if err != nil {
		config.Exitf("open store: %v", err)
	}
	defer func() { _ = store.Close() }()

	resolver, err := buildResolver(cardScript)
	if err != nil {
		config.Exitf("build resolver: %v", err)
	}

	if replayGameID != "" {
		g, err := sim.Replay(ctx, store, resolver, replayGameID)
		if err != nil {
			config.Exitf("replay %s: %v", replayGameID, err)
		}
		logger.Info("replay verified",
			zap.String("game_id", g.ID),
			zap.Int("round", g.Round),
			zap.Bool("ended", g.Ended),
		)
		return
	}

	if err := runDemo(ctx, store, resolver, logger, seed); err != nil {
		config.Exitf("simulate: %v", err)
	}
}

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", level, err)
	}
	cfg.Level = lvl
	return cfg.Build()
}

func buildResolver(script string) (effect.Resolver, error) {
	if script != "" {
		return effect.NewLuaResolver(script)
	}
	return demoCards, nil
}

// demoCards backs the demonstration run when no content script is given.
var demoCards = effect.Static{
	"rage":      {Description: "rage", Attack: state.AttackPool{}.Add(state.AttackMelee, state.ElementPhysical, 2)},
	"swiftness": {Description: "swiftness", Attack: state.AttackPool{}.Add(state.AttackRanged, state.ElementPhysical, 2)},
	"march":     {Description: "march", Move: 2},
	"stamina":   {Description: "stamina", Move: 2},
	"promise":   {Description: "promise", Influence: 2},
	"threaten":  {Description: "threaten", Influence: 2},
}

func demoSetup(seed int64) sim.Setup {
	deck := []state.CardID{
		"rage", "rage", "swiftness", "swiftness", "march",
		"march", "stamina", "stamina", "promise", "threaten",
	}
	return sim.Setup{
		Players: []sim.PlayerSetup{
			{Name: "Arythea", Deck: deck},
			{Name: "Dummy", Dummy: true},
		},
		DummyDeck: []state.CardID{"red", "blue", "green", "white"},
		MaxRounds: 2,
		Board: map[state.Coord]state.Terrain{
			{Q: 0, R: 0}: state.TerrainPlains,
			{Q: 1, R: 0}: state.TerrainForest,
			{Q: 0, R: 1}: state.TerrainHills,
		},
		Tiles: []string{"plains", "forest", "hills", "wasteland"},
		EnemyDefs: map[string]state.EnemyDef{
			"prowlers": {ID: "prowlers", Name: "Prowlers", Armor: 3, Attacks: []state.EnemyAttack{{Element: state.ElementPhysical, Value: 4}}, Fame: 2},
		},
		Seed: seed,
	}
}

// runDemo plays one scripted turn: play every card in hand, fight the
// prowlers, end the turn, then verify the journal replays to the same root.
func runDemo(ctx context.Context, store *sqlite.Store, resolver effect.Resolver, logger *zap.Logger, seed int64) error {
	session, err := sim.NewSession(ctx, store, resolver, logger, demoSetup(seed))
	if err != nil {
		return err
	}
	player := session.Game().CurrentPlayer()

	script := []action.Action{}
	for _, card := range session.Game().Player(player).Hand {
		script = append(script, action.PlayCard{Card: card})
	}
	script = append(script,
		action.EnterCombat{EnemyIDs: []string{"prowlers"}},
		action.AdvancePhase{},
		action.AdvancePhase{},
		action.AssignDamage{Enemy: "prowlers#0"},
		action.AdvancePhase{},
		action.AdvancePhase{},
		action.EndTurn{},
	)

	for _, act := range script {
		events, err := session.Apply(ctx, player, act)
		if err != nil {
			return err
		}
		for _, e := range events {
			logEvent(logger, e)
		}
	}

	if err := session.Verify(ctx); err != nil {
		return err
	}
	logger.Info("journal verified",
		zap.String("game_id", session.Game().ID),
		zap.Int("fame", session.Game().Player(player).Fame),
		zap.Int("wounds", session.Game().Player(player).HandWounds()),
	)
	return nil
}

func logEvent(logger *zap.Logger, e event.Event) {
	if inv, ok := e.(event.InvalidAction); ok {
		logger.Warn("action rejected",
			zap.String("action", inv.Action),
			zap.String("code", inv.Code),
			zap.String("message", inv.Message),
		)
		return
	}
	logger.Info("event", zap.String("type", string(e.Type())))
}
