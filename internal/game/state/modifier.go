package state

// Scope limits which queries a modifier is visible to.
type Scope string

const (
	// ScopeSelf applies only to the owning player.
	ScopeSelf Scope = "self"
	// ScopeAll applies to every player.
	ScopeAll Scope = "all"
	// ScopeEnemy applies to one enemy instance.
	ScopeEnemy Scope = "enemy"
)

// Duration declares the trigger that removes a modifier.
type Duration string

const (
	DurationTurn      Duration = "turn"
	DurationRound     Duration = "round"
	DurationCombat    Duration = "combat"
	DurationPermanent Duration = "permanent"
)

// EffectKind tags the modifier effect payload.
type EffectKind string

const (
	// EffectArmorBonus changes a player's effective armor by Amount.
	EffectArmorBonus EffectKind = "armor_bonus"
	// EffectTerrainCost changes the effective cost of Terrain by Amount.
	// Reductions are clamped so the cost never drops below 2.
	EffectTerrainCost EffectKind = "terrain_cost"
	// EffectHandLimitBonus changes a player's effective hand limit by Amount.
	EffectHandLimitBonus EffectKind = "hand_limit_bonus"
	// EffectEnemyDoesNotAttack neutralizes the scoped enemy's attack for the
	// damage-assignment guard.
	EffectEnemyDoesNotAttack EffectKind = "enemy_does_not_attack"
	// EffectWildcardMana lets crystals of Color substitute for any color.
	// Only consulted while the night mana rule flag is active.
	EffectWildcardMana EffectKind = "wildcard_mana"
	// EffectFameTracker accrues Amount of fame credit per defeated declared
	// target when a group attack resolves.
	EffectFameTracker EffectKind = "fame_tracker"
	// EffectDefendBonus adds Amount of Element block usable only for
	// declaring blocks this combat.
	EffectDefendBonus EffectKind = "defend_bonus"
)

// Effect is the tagged modifier payload. The kind selects which fields are
// meaningful; keeping it a flat tagged struct keeps the root value plainly
// serializable.
type Effect struct {
	Kind    EffectKind `json:"kind"`
	Amount  int        `json:"amount,omitempty"`
	Terrain Terrain    `json:"terrain,omitempty"`
	Element Element    `json:"element,omitempty"`
	Color   Color      `json:"color,omitempty"`
}

// Modifier is one active timed effect record. A modifier is visible only to
// queries matching its scope and is removed exactly once by the trigger
// matching its duration.
type Modifier struct {
	Source         string   `json:"source"`
	Scope          Scope    `json:"scope"`
	EnemyInstance  string   `json:"enemy_instance,omitempty"`
	Duration       Duration `json:"duration"`
	Effect         Effect   `json:"effect"`
	CreatedAtRound int      `json:"created_at_round"`
	CreatedBy      PlayerID `json:"created_by"`
}

// AppliesTo reports whether the modifier is visible to a query made for the
// given player.
func (m Modifier) AppliesTo(player PlayerID) bool {
	switch m.Scope {
	case ScopeAll:
		return true
	case ScopeSelf:
		return m.CreatedBy == player
	default:
		return false
	}
}
