package validation

import (
	"fmt"

	"github.com/mage-knight-digital/mageknight/internal/game/action"
	"github.com/mage-knight-digital/mageknight/internal/game/combat"
	"github.com/mage-knight-digital/mageknight/internal/game/state"
)

// CombatEntry checks a combat can start: none active, none fought this turn,
// and every supplied enemy id has a definition.
func CombatEntry(g state.Game, player state.PlayerID, act action.Action) Result {
	enter, ok := act.(action.EnterCombat)
	if !ok {
		return Valid()
	}
	if g.Combat != nil {
		return Invalid(CodeCombatAlreadyActive, "a combat is already active")
	}
	if g.Player(player).CombattedThisTurn {
		return Invalid(CodeCombatAlreadyThisTurn, "player already fought this turn")
	}
	if len(enter.EnemyIDs) == 0 {
		return Invalid(CodeCombatNoEnemies, "combat requires at least one enemy")
	}
	for _, id := range enter.EnemyIDs {
		if _, known := g.EnemyDefs[id]; !known {
			return Invalid(CodeCombatUnknownEnemyDef, fmt.Sprintf("unknown enemy definition %q", id))
		}
	}
	return Valid()
}

// CombatActive rejects combat actions while no combat exists.
func CombatActive(g state.Game, _ state.PlayerID, _ action.Action) Result {
	if g.Combat == nil {
		return Invalid(CodeCombatNotActive, "no combat is active")
	}
	return Valid()
}

// CombatOwnership rejects combat actions from players other than the
// combatant.
func CombatOwnership(g state.Game, player state.PlayerID, _ action.Action) Result {
	if g.Combat != nil && g.Combat.Player != player {
		return Invalid(CodeCombatNotYours, "combat belongs to another player")
	}
	return Valid()
}

func combatEnemy(g state.Game, instance string) (state.Enemy, Result) {
	e, ok := g.Combat.Enemy(instance)
	if !ok {
		return state.Enemy{}, Invalid(CodeCombatEnemyUnknown, fmt.Sprintf("unknown enemy instance %q", instance))
	}
	return e, Valid()
}

// assignedOfElement sums the assigned-attack ledger for one attack type and
// element across all enemies.
func assignedOfElement(c *state.Combat, t state.AttackType, el state.Element) int {
	total := 0
	for k, v := range c.AssignedAttack {
		if k.Type == t && k.Element == el {
			total += v
		}
	}
	return total
}

// assignedBlockOfElement sums the pending-damage ledger for one element
// across all enemies.
func assignedBlockOfElement(c *state.Combat, el state.Element) int {
	total := 0
	for _, pool := range c.PendingDamage {
		total += pool.Get(el)
	}
	return total
}

// AssignAttackLegal checks an attack-assignment delta: phase, attack type,
// fortification gate, target state and pool sufficiency.
func AssignAttackLegal(g state.Game, player state.PlayerID, act action.Action) Result {
	assign, ok := act.(action.AssignAttack)
	if !ok {
		return Valid()
	}
	if assign.Amount <= 0 {
		return Invalid(CodeAssignAmountNotPositive, "assignment amount must be positive")
	}
	if !assign.Element.Valid() {
		return Invalid(CodeAssignInvalidElement, "unknown element")
	}
	if !assign.AttackType.Valid() {
		return Invalid(CodeAssignInvalidAttackType, "unknown attack type")
	}
	c := g.Combat
	switch c.Phase {
	case state.PhaseRangedSiege:
		if assign.AttackType == state.AttackMelee {
			return Invalid(CodeAssignMeleeInRangedPhase, "melee attack cannot be assigned during ranged/siege")
		}
	case state.PhaseAttack:
		if assign.AttackType != state.AttackMelee {
			return Invalid(CodeAssignRangedInAttackPhase, "only melee attack can be assigned during the attack phase")
		}
	default:
		return Invalid(CodeAssignWrongPhase, fmt.Sprintf("attack cannot be assigned during %s", c.Phase))
	}
	enemy, res := combatEnemy(g, assign.Enemy)
	if !res.OK() {
		return res
	}
	if enemy.Defeated {
		return Invalid(CodeCombatEnemyDefeated, "enemy is already defeated")
	}
	if c.Phase == state.PhaseRangedSiege &&
		assign.AttackType == state.AttackRanged &&
		combat.FortificationLevel(c, enemy) > 0 {
		return Invalid(CodeAssignRangedVsFortified,
			"fortified targets require siege attack during ranged/siege")
	}
	pool := g.Player(player).Attack.Get(assign.AttackType, assign.Element)
	available := pool - assignedOfElement(c, assign.AttackType, assign.Element)
	if available < assign.Amount {
		return Invalid(CodeAssignPoolExceeded,
			fmt.Sprintf("only %d %s %s attack remains unassigned", available, assign.Element, assign.AttackType))
	}
	return Valid()
}

// UnassignAttackLegal checks the reverted delta does not exceed the current
// assignment.
func UnassignAttackLegal(g state.Game, _ state.PlayerID, act action.Action) Result {
	unassign, ok := act.(action.UnassignAttack)
	if !ok {
		return Valid()
	}
	if unassign.Amount <= 0 {
		return Invalid(CodeAssignAmountNotPositive, "assignment amount must be positive")
	}
	if _, res := combatEnemy(g, unassign.Enemy); !res.OK() {
		return res
	}
	key := state.AttackKey{Enemy: unassign.Enemy, Type: unassign.AttackType, Element: unassign.Element}
	if assigned := g.Combat.AssignedAttack[key]; assigned < unassign.Amount {
		return Invalid(CodeUnassignExceedsAssigned,
			fmt.Sprintf("only %d assigned, cannot unassign %d", assigned, unassign.Amount))
	}
	return Valid()
}

// AssignBlockLegal checks a block-assignment delta.
func AssignBlockLegal(g state.Game, player state.PlayerID, act action.Action) Result {
	assign, ok := act.(action.AssignBlock)
	if !ok {
		return Valid()
	}
	if g.Combat.Phase != state.PhaseBlock {
		return Invalid(CodeBlockAssignWrongPhase, "block is only assigned during the block phase")
	}
	if assign.Amount <= 0 {
		return Invalid(CodeBlockAmountNotPositive, "assignment amount must be positive")
	}
	if !assign.Element.Valid() {
		return Invalid(CodeBlockInvalidElement, "unknown element")
	}
	enemy, res := combatEnemy(g, assign.Enemy)
	if !res.OK() {
		return res
	}
	if enemy.Defeated {
		return Invalid(CodeBlockEnemyDefeated, "enemy is already defeated")
	}
	if enemy.Blocked {
		return Invalid(CodeBlockEnemyAlreadyBlocked, "enemy is already blocked")
	}
	pool := g.Player(player).Block.Get(assign.Element)
	available := pool - assignedBlockOfElement(g.Combat, assign.Element)
	if available < assign.Amount {
		return Invalid(CodeBlockPoolExceeded,
			fmt.Sprintf("only %d %s block remains unassigned", available, assign.Element))
	}
	return Valid()
}

// UnassignBlockLegal checks the reverted delta does not exceed the current
// assignment.
func UnassignBlockLegal(g state.Game, _ state.PlayerID, act action.Action) Result {
	unassign, ok := act.(action.UnassignBlock)
	if !ok {
		return Valid()
	}
	if unassign.Amount <= 0 {
		return Invalid(CodeBlockAmountNotPositive, "assignment amount must be positive")
	}
	if _, res := combatEnemy(g, unassign.Enemy); !res.OK() {
		return res
	}
	if assigned := g.Combat.PendingDamage[unassign.Enemy].Get(unassign.Element); assigned < unassign.Amount {
		return Invalid(CodeBlockUnassignExceeds,
			fmt.Sprintf("only %d assigned, cannot unassign %d", assigned, unassign.Amount))
	}
	return Valid()
}

// DeclareBlockLegal checks the assigned block suffices against the enemy's
// effective attack after resistance doubling.
func DeclareBlockLegal(g state.Game, player state.PlayerID, act action.Action) Result {
	declare, ok := act.(action.DeclareBlock)
	if !ok {
		return Valid()
	}
	c := g.Combat
	if c.Phase != state.PhaseBlock {
		return Invalid(CodeBlockAssignWrongPhase, "blocks are only declared during the block phase")
	}
	enemy, res := combatEnemy(g, declare.Enemy)
	if !res.OK() {
		return res
	}
	if enemy.Defeated {
		return Invalid(CodeBlockEnemyDefeated, "enemy is already defeated")
	}
	if enemy.Blocked {
		return Invalid(CodeBlockEnemyAlreadyBlocked, "enemy is already blocked")
	}
	if !combat.Attacks(g, enemy) {
		return Invalid(CodeBlockEnemyDoesNotAttack, "enemy does not attack this combat")
	}
	assigned := c.PendingDamage[declare.Enemy]
	if !c.UsedDefend {
		for _, el := range state.Elements() {
			assigned = assigned.Add(el, c.DefendBonuses.Get(el))
		}
	}
	effective := combat.EffectiveBlock(enemy, assigned)
	if required := combat.BlockRequired(enemy); effective < required {
		return Invalid(CodeBlockInsufficient,
			fmt.Sprintf("effective block %d is below the required %d", effective, required))
	}
	return Valid()
}

// FinalizeAttackLegal checks the attack pool can be committed: an attacking
// phase with at least one declared, undefeated target.
func FinalizeAttackLegal(g state.Game, _ state.PlayerID, act action.Action) Result {
	if _, ok := act.(action.FinalizeAttack); !ok {
		return Valid()
	}
	c := g.Combat
	if c.Phase != state.PhaseRangedSiege && c.Phase != state.PhaseAttack {
		return Invalid(CodeAttackWrongPhase, fmt.Sprintf("attacks cannot be finalized during %s", c.Phase))
	}
	if len(c.DeclaredTargets) == 0 {
		return Invalid(CodeAttackNoTargets, "no attack targets are declared")
	}
	if len(combat.DeclaredEnemies(c)) == 0 {
		return Invalid(CodeAttackTargetsDefeated, "every declared target is already defeated")
	}
	return Valid()
}

// AssignDamageLegal checks damage assignment targets an unblocked,
// undefeated, unresolved, attacking enemy during the damage phase.
func AssignDamageLegal(g state.Game, _ state.PlayerID, act action.Action) Result {
	damage, ok := act.(action.AssignDamage)
	if !ok {
		return Valid()
	}
	if g.Combat.Phase != state.PhaseAssignDamage {
		return Invalid(CodeDamageWrongPhase, "damage is only assigned during the assign-damage phase")
	}
	enemy, res := combatEnemy(g, damage.Enemy)
	if !res.OK() {
		return res
	}
	if enemy.Defeated {
		return Invalid(CodeDamageEnemyDefeated, "enemy is already defeated")
	}
	if enemy.Blocked {
		return Invalid(CodeDamageEnemyBlocked, "enemy was blocked; no damage to assign")
	}
	if enemy.DamageAssigned {
		return Invalid(CodeDamageAlreadyAssigned, "enemy damage was already assigned")
	}
	if !combat.Attacks(g, enemy) {
		return Invalid(CodeDamageEnemyDoesNotAttack, "enemy does not attack this combat")
	}
	return Valid()
}

// AdvancePhaseLegal enforces the end-of-phase guard: the assign-damage phase
// cannot advance while an unblocked, undefeated, unresolved attacker
// remains, and the attack phase cannot end while targets stay declared.
func AdvancePhaseLegal(g state.Game, _ state.PlayerID, act action.Action) Result {
	if _, ok := act.(action.AdvancePhase); !ok {
		return Valid()
	}
	c := g.Combat
	switch c.Phase {
	case state.PhaseAssignDamage:
		if e, unresolved := combat.UnresolvedAttacker(g, c); unresolved {
			return Invalid(CodePhaseMustAssignDamage,
				fmt.Sprintf("damage from %s must be assigned before advancing", e.Instance))
		}
	case state.PhaseAttack:
		if len(combat.DeclaredEnemies(c)) > 0 {
			return Invalid(CodePhaseTargetsStillDeclared,
				"declared targets must be finalized or unassigned before ending combat")
		}
	}
	return Valid()
}
