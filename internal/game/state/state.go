package state

// PlayerID identifies a player in the game.
type PlayerID string

// CardID identifies a card. Wound cards share the single WoundCard id.
type CardID string

// WoundCard is the id of the wound card placed into hands and discards.
const WoundCard CardID = "wound"

// UnitID identifies a recruitable unit definition.
type UnitID string

// SkillID identifies a skill owned by a player.
type SkillID string

// Game is the single root value for a running game.
//
// Everything a command reads or writes hangs off this value, including the
// deterministic RNG stream and the active modifier set.
type Game struct {
	ID        string     `json:"id"`
	Players   []Player   `json:"players"`
	TurnOrder []PlayerID `json:"turn_order"`
	TurnIndex int        `json:"turn_index"`
	Round     int        `json:"round"`
	MaxRounds int        `json:"max_rounds"`
	Night     bool       `json:"night"`
	Ended     bool       `json:"ended"`

	// DummyPlayer names the non-human player whose turns run inline, or ""
	// when the scenario has none.
	DummyPlayer PlayerID `json:"dummy_player,omitempty"`

	Combat    *Combat    `json:"combat,omitempty"`
	Modifiers []Modifier `json:"modifiers,omitempty"`

	Board     map[Coord]Terrain   `json:"board,omitempty"`
	EnemyDefs map[string]EnemyDef `json:"enemy_defs,omitempty"`

	Decks  Decks  `json:"decks"`
	Offers Offers `json:"offers"`

	// UnitCosts holds the influence cost per recruitable unit definition.
	UnitCosts map[UnitID]int `json:"unit_costs,omitempty"`

	// PendingChoice holds an effect awaiting a player decision. While it is
	// set, only resolve-choice and undo actions are legal for its owner.
	PendingChoice *PendingChoice `json:"pending_choice,omitempty"`

	RNG RNG `json:"rng"`
}

// Decks holds the face-down card piles shared by the game.
type Decks struct {
	Tiles     []string `json:"tiles,omitempty"`
	DummyDeck []CardID `json:"dummy_deck,omitempty"`
}

// Offers holds the face-up common offers.
type Offers struct {
	Units           []UnitID `json:"units,omitempty"`
	AdvancedActions []CardID `json:"advanced_actions,omitempty"`
	Spells          []CardID `json:"spells,omitempty"`
}

// PendingChoice captures an effect that requires a further player decision
// before it fully resolves.
type PendingChoice struct {
	Player  PlayerID     `json:"player"`
	Source  CardID       `json:"source"`
	Options []CardEffect `json:"options"`
}

// CurrentPlayer returns the id of the player whose turn it is.
func (g Game) CurrentPlayer() PlayerID {
	if len(g.TurnOrder) == 0 {
		return ""
	}
	return g.TurnOrder[g.TurnIndex%len(g.TurnOrder)]
}

// Player returns the player with the given id.
//
// Ids are validated before commands run; an unknown id here is a broken
// invariant and panics.
func (g Game) Player(id PlayerID) Player {
	for _, p := range g.Players {
		if p.ID == id {
			return p
		}
	}
	panic("state: unknown player id " + string(id))
}

// HasPlayer reports whether a player with the given id exists.
func (g Game) HasPlayer(id PlayerID) bool {
	for _, p := range g.Players {
		if p.ID == id {
			return true
		}
	}
	return false
}

// WithPlayer returns a new root with the given player replaced by fn's
// result. The players slice is copied; other branches are shared.
func (g Game) WithPlayer(id PlayerID, fn func(Player) Player) Game {
	players := make([]Player, len(g.Players))
	copy(players, g.Players)
	for i := range players {
		if players[i].ID == id {
			players[i] = fn(players[i])
			g.Players = players
			return g
		}
	}
	panic("state: unknown player id " + string(id))
}

// WithCombat returns a new root with the combat sub-record replaced.
func (g Game) WithCombat(c *Combat) Game {
	g.Combat = c
	return g
}

// WithBoardHex returns a new root with the hex revealed as the given
// terrain. The board map is copied.
func (g Game) WithBoardHex(at Coord, terrain Terrain) Game {
	board := make(map[Coord]Terrain, len(g.Board)+1)
	for k, v := range g.Board {
		board[k] = v
	}
	board[at] = terrain
	g.Board = board
	return g
}

// WithModifiers returns a new root with the modifier set replaced.
func (g Game) WithModifiers(mods []Modifier) Game {
	g.Modifiers = mods
	return g
}

// AppendModifier returns a new root with the modifier appended. The slice
// is copied so the previous root stays untouched.
func (g Game) AppendModifier(m Modifier) Game {
	mods := make([]Modifier, 0, len(g.Modifiers)+1)
	mods = append(mods, g.Modifiers...)
	mods = append(mods, m)
	g.Modifiers = mods
	return g
}
