package state

import (
	"fmt"
	"strconv"
	"strings"
)

// Phase identifies a combat phase. Phases advance strictly forward; only
// PhaseAttack repeats.
type Phase string

const (
	PhaseRangedSiege  Phase = "ranged_siege"
	PhaseBlock        Phase = "block"
	PhaseAssignDamage Phase = "assign_damage"
	PhaseAttack       Phase = "attack"
)

// Next returns the following phase and whether one exists.
func (p Phase) Next() (Phase, bool) {
	switch p {
	case PhaseRangedSiege:
		return PhaseBlock, true
	case PhaseBlock:
		return PhaseAssignDamage, true
	case PhaseAssignDamage:
		return PhaseAttack, true
	default:
		return "", false
	}
}

// Ability is an enemy special ability.
type Ability string

const (
	AbilityFortified   Ability = "fortified"
	AbilityUnfortified Ability = "unfortified"
	AbilityPoison      Ability = "poison"
	AbilitySwift       Ability = "swift"
)

// EnemyAttack is a single attack line on an enemy definition.
type EnemyAttack struct {
	Element Element `json:"element"`
	Value   int     `json:"value"`
}

// EnemyDef is the static definition of an enemy token.
type EnemyDef struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Armor       int           `json:"armor"`
	Attacks     []EnemyAttack `json:"attacks,omitempty"`
	Resistances []Element     `json:"resistances,omitempty"`
	Abilities   []Ability     `json:"abilities,omitempty"`
	Fame        int           `json:"fame"`
	Reputation  int           `json:"reputation"`
}

// Resists reports whether the definition resists the element.
func (d EnemyDef) Resists(e Element) bool {
	for _, r := range d.Resistances {
		if r == e {
			return true
		}
	}
	return false
}

// Has reports whether the definition carries the ability.
func (d EnemyDef) Has(a Ability) bool {
	for _, ab := range d.Abilities {
		if ab == a {
			return true
		}
	}
	return false
}

// AttackTotal sums the definition's attack lines.
func (d EnemyDef) AttackTotal() int {
	total := 0
	for _, a := range d.Attacks {
		total += a.Value
	}
	return total
}

// Enemy is one enemy instance inside a combat. Instances are created at
// combat entry and never resurrected once defeated.
type Enemy struct {
	Instance       string   `json:"instance"`
	ID             string   `json:"id"`
	Def            EnemyDef `json:"def"`
	Blocked        bool     `json:"blocked"`
	Defeated       bool     `json:"defeated"`
	DamageAssigned bool     `json:"damage_assigned"`
}

// AttackKey keys the assigned-attack ledger by enemy instance, attack type
// and element.
type AttackKey struct {
	Enemy   string
	Type    AttackType
	Element Element
}

// MarshalText encodes the key as "enemy|type|element" so it can key JSON maps.
func (k AttackKey) MarshalText() ([]byte, error) {
	return []byte(fmt.Sprintf("%s|%d|%d", k.Enemy, int(k.Type), int(k.Element))), nil
}

// UnmarshalText decodes an "enemy|type|element" key.
func (k *AttackKey) UnmarshalText(text []byte) error {
	parts := strings.Split(string(text), "|")
	if len(parts) != 3 {
		return fmt.Errorf("attack key: malformed %q", text)
	}
	typ, err := strconv.Atoi(parts[1])
	if err != nil {
		return fmt.Errorf("attack key: %w", err)
	}
	elem, err := strconv.Atoi(parts[2])
	if err != nil {
		return fmt.Errorf("attack key: %w", err)
	}
	k.Enemy = parts[0]
	k.Type = AttackType(typ)
	k.Element = Element(elem)
	return nil
}

// Combat is the combat sub-record. Exactly one may exist at a time; it is
// created by enter-combat and cleared when the attack phase ends with no
// declared targets.
type Combat struct {
	Player PlayerID `json:"player"`
	Phase  Phase    `json:"phase"`

	Enemies []Enemy `json:"enemies"`

	// PendingDamage is the incremental block ledger: per enemy, how much of
	// the player's block pool is tentatively allocated against its attack.
	PendingDamage map[string]BlockPool `json:"pending_damage,omitempty"`

	// AssignedAttack is the incremental attack ledger. It tracks how much of
	// the pool is committed to specific enemies but not yet finalized, which
	// is what keeps allocation undoable before the phase-ending commit.
	AssignedAttack map[AttackKey]int `json:"assigned_attack,omitempty"`

	// DeclaredTargets lists enemy instances with a nonzero assigned attack,
	// in declaration order.
	DeclaredTargets []string `json:"declared_targets,omitempty"`

	AllDamageBlocked bool      `json:"all_damage_blocked"`
	UsedDefend       bool      `json:"used_defend"`
	DefendBonuses    BlockPool `json:"defend_bonuses"`
	WoundsThisCombat int       `json:"wounds_this_combat"`
	FameGained       int       `json:"fame_gained"`
	FortifiedSite    bool      `json:"fortified_site"`
	NightManaRules   bool      `json:"night_mana_rules"`
}

// Clone deep-copies the combat sub-record. Commands clone before mutating so
// the previous root keeps its own combat value.
func (c *Combat) Clone() *Combat {
	if c == nil {
		return nil
	}
	clone := *c
	clone.Enemies = make([]Enemy, len(c.Enemies))
	copy(clone.Enemies, c.Enemies)
	if c.PendingDamage != nil {
		clone.PendingDamage = make(map[string]BlockPool, len(c.PendingDamage))
		for k, v := range c.PendingDamage {
			clone.PendingDamage[k] = v
		}
	}
	if c.AssignedAttack != nil {
		clone.AssignedAttack = make(map[AttackKey]int, len(c.AssignedAttack))
		for k, v := range c.AssignedAttack {
			clone.AssignedAttack[k] = v
		}
	}
	if c.DeclaredTargets != nil {
		clone.DeclaredTargets = make([]string, len(c.DeclaredTargets))
		copy(clone.DeclaredTargets, c.DeclaredTargets)
	}
	return &clone
}

// Enemy returns the enemy instance and whether it exists.
func (c *Combat) Enemy(instance string) (Enemy, bool) {
	if c == nil {
		return Enemy{}, false
	}
	for _, e := range c.Enemies {
		if e.Instance == instance {
			return e, true
		}
	}
	return Enemy{}, false
}

// WithEnemy replaces the enemy instance in place on an already-cloned combat.
func (c *Combat) WithEnemy(instance string, fn func(Enemy) Enemy) {
	for i := range c.Enemies {
		if c.Enemies[i].Instance == instance {
			c.Enemies[i] = fn(c.Enemies[i])
			return
		}
	}
	panic("state: unknown enemy instance " + instance)
}

// IsDeclared reports whether the enemy instance is a declared attack target.
func (c *Combat) IsDeclared(instance string) bool {
	if c == nil {
		return false
	}
	for _, t := range c.DeclaredTargets {
		if t == instance {
			return true
		}
	}
	return false
}

// AssignedTo sums the assigned attack against one enemy instance across all
// attack types and elements.
func (c *Combat) AssignedTo(instance string) int {
	total := 0
	for k, v := range c.AssignedAttack {
		if k.Enemy == instance {
			total += v
		}
	}
	return total
}
