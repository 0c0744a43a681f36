package validation

// Code is a machine-readable rejection code. The set is closed: calling
// layers branch on these programmatically, so members are never reused or
// renamed.
type Code string

const (
	// General / turn-structure codes
	CodeGameEnded           Code = "GAME_ENDED"
	CodeUnknownPlayer       Code = "UNKNOWN_PLAYER"
	CodeNotYourTurn         Code = "NOT_YOUR_TURN"
	CodePlayerKnockedOut    Code = "PLAYER_KNOCKED_OUT"
	CodePendingChoiceBlocks Code = "PENDING_CHOICE_BLOCKS_ACTION"
	CodeNoPendingChoice     Code = "NO_PENDING_CHOICE"
	CodeChoiceNotYours      Code = "CHOICE_NOT_YOURS"
	CodeChoiceOutOfRange    Code = "CHOICE_OPTION_OUT_OF_RANGE"
	CodeNothingToUndo       Code = "NOTHING_TO_UNDO"
	CodeTurnAlreadyEnded    Code = "TURN_ALREADY_ENDED"
	CodeDummyPlayerAction   Code = "DUMMY_PLAYER_ACTION_FORBIDDEN"

	// Movement codes
	CodeMoveWhileInCombat      Code = "MOVE_WHILE_IN_COMBAT"
	CodeMoveTargetOffBoard     Code = "MOVE_TARGET_OFF_BOARD"
	CodeMoveTargetImpassable   Code = "MOVE_TARGET_IMPASSABLE"
	CodeMoveNotAdjacent        Code = "MOVE_NOT_ADJACENT"
	CodeMoveInsufficientPoints Code = "MOVE_INSUFFICIENT_POINTS"
	CodeMoveIntoEnemyHex       Code = "MOVE_INTO_ENEMY_HEX"
	CodeMoveAtNightForbidden   Code = "MOVE_AT_NIGHT_FORBIDDEN"

	// Exploration codes
	CodeExploreWhileInCombat    Code = "EXPLORE_WHILE_IN_COMBAT"
	CodeExploreNotAdjacent      Code = "EXPLORE_NOT_ADJACENT"
	CodeExploreAlreadyRevealed  Code = "EXPLORE_ALREADY_REVEALED"
	CodeExploreNoTilesLeft      Code = "EXPLORE_NO_TILES_LEFT"
	CodeExploreInsufficientMove Code = "EXPLORE_INSUFFICIENT_MOVE"

	// Card codes
	CodeCardNotInHand           Code = "CARD_NOT_IN_HAND"
	CodeCardIsWound             Code = "CARD_IS_WOUND"
	CodeCardUnknown             Code = "CARD_UNKNOWN"
	CodeCardEffectUnresolved    Code = "CARD_EFFECT_UNRESOLVED"
	CodeCardPlayWhileKnockedOut Code = "CARD_PLAY_WHILE_KNOCKED_OUT"

	// Skill codes
	CodeSkillNotOwned   Code = "SKILL_NOT_OWNED"
	CodeSkillUsed       Code = "SKILL_ALREADY_USED"
	CodeSkillUnknown    Code = "SKILL_UNKNOWN"
	CodeSkillWrongPhase Code = "SKILL_WRONG_PHASE"

	// Rest codes
	CodeRestDiscardNotInHand Code = "REST_DISCARD_NOT_IN_HAND"
	CodeRestDiscardIsWound   Code = "REST_DISCARD_IS_WOUND"
	CodeRestWhileInCombat    Code = "REST_WHILE_IN_COMBAT"

	// Recruit codes
	CodeRecruitUnitNotInOffer        Code = "RECRUIT_UNIT_NOT_IN_OFFER"
	CodeRecruitInsufficientInfluence Code = "RECRUIT_INSUFFICIENT_INFLUENCE"
	CodeRecruitUnknownUnit           Code = "RECRUIT_UNKNOWN_UNIT"
	CodeRecruitWhileInCombat         Code = "RECRUIT_WHILE_IN_COMBAT"
	CodeRecruitCommandLimit          Code = "RECRUIT_COMMAND_LIMIT_REACHED"

	// End-turn codes
	CodeEndTurnDuringCombat Code = "END_TURN_DURING_COMBAT"

	// Combat-entry codes
	CodeCombatAlreadyActive   Code = "COMBAT_ALREADY_ACTIVE"
	CodeCombatAlreadyThisTurn Code = "COMBAT_ALREADY_THIS_TURN"
	CodeCombatNoEnemies       Code = "COMBAT_NO_ENEMIES"
	CodeCombatUnknownEnemyDef Code = "COMBAT_UNKNOWN_ENEMY_DEFINITION"
	CodeCombatNotActive       Code = "COMBAT_NOT_ACTIVE"
	CodeCombatNotYours        Code = "COMBAT_NOT_YOURS"
	CodeCombatEnemyUnknown    Code = "COMBAT_ENEMY_UNKNOWN"
	CodeCombatEnemyDefeated   Code = "COMBAT_ENEMY_DEFEATED"
	CodeCombatWhileKnockedOut Code = "COMBAT_WHILE_KNOCKED_OUT"

	// Attack-assignment codes
	CodeAssignAmountNotPositive   Code = "ASSIGN_AMOUNT_NOT_POSITIVE"
	CodeAssignInvalidElement      Code = "ASSIGN_INVALID_ELEMENT"
	CodeAssignInvalidAttackType   Code = "ASSIGN_INVALID_ATTACK_TYPE"
	CodeAssignWrongPhase          Code = "ASSIGN_WRONG_PHASE"
	CodeAssignMeleeInRangedPhase  Code = "ASSIGN_MELEE_IN_RANGED_PHASE"
	CodeAssignRangedInAttackPhase Code = "ASSIGN_RANGED_IN_ATTACK_PHASE"
	CodeAssignRangedVsFortified   Code = "ASSIGN_RANGED_VS_FORTIFIED"
	CodeAssignPoolExceeded        Code = "ASSIGN_POOL_EXCEEDED"
	CodeUnassignExceedsAssigned   Code = "UNASSIGN_EXCEEDS_ASSIGNED"

	// Block-assignment codes
	CodeBlockAssignWrongPhase    Code = "BLOCK_ASSIGN_WRONG_PHASE"
	CodeBlockAmountNotPositive   Code = "BLOCK_AMOUNT_NOT_POSITIVE"
	CodeBlockInvalidElement      Code = "BLOCK_INVALID_ELEMENT"
	CodeBlockPoolExceeded        Code = "BLOCK_POOL_EXCEEDED"
	CodeBlockUnassignExceeds     Code = "BLOCK_UNASSIGN_EXCEEDS_ASSIGNED"
	CodeBlockEnemyAlreadyBlocked Code = "BLOCK_ENEMY_ALREADY_BLOCKED"
	CodeBlockEnemyDefeated       Code = "BLOCK_ENEMY_DEFEATED"
	CodeBlockInsufficient        Code = "BLOCK_INSUFFICIENT"
	CodeBlockEnemyDoesNotAttack  Code = "BLOCK_ENEMY_DOES_NOT_ATTACK"

	// Attack-resolution codes
	CodeAttackWrongPhase      Code = "ATTACK_WRONG_PHASE"
	CodeAttackNoTargets       Code = "ATTACK_NO_TARGETS"
	CodeAttackTargetsDefeated Code = "ATTACK_TARGETS_ALL_DEFEATED"

	// Damage-assignment codes
	CodeDamageWrongPhase         Code = "DAMAGE_WRONG_PHASE"
	CodeDamageEnemyBlocked       Code = "DAMAGE_ENEMY_BLOCKED"
	CodeDamageEnemyDefeated      Code = "DAMAGE_ENEMY_DEFEATED"
	CodeDamageAlreadyAssigned    Code = "DAMAGE_ALREADY_ASSIGNED"
	CodeDamageEnemyDoesNotAttack Code = "DAMAGE_ENEMY_DOES_NOT_ATTACK"

	// Phase-advance codes
	CodePhaseMustAssignDamage     Code = "PHASE_MUST_ASSIGN_DAMAGE"
	CodePhaseTargetsStillDeclared Code = "PHASE_TARGETS_STILL_DECLARED"

	// Resource codes
	CodeManaInsufficient      Code = "MANA_INSUFFICIENT"
	CodeManaWrongColor        Code = "MANA_WRONG_COLOR"
	CodeManaNightRuleBlocks   Code = "MANA_NIGHT_RULE_BLOCKS"
	CodeCrystalLimitReached   Code = "CRYSTAL_LIMIT_REACHED"
	CodeInfluenceInsufficient Code = "INFLUENCE_INSUFFICIENT"
	CodeHealingInsufficient   Code = "HEALING_INSUFFICIENT"

	// Reserved site/interaction codes. The site interaction surface shares
	// this enumeration so calling layers can branch uniformly.
	CodeSiteNotPresent       Code = "SITE_NOT_PRESENT"
	CodeSiteAlreadyConquered Code = "SITE_ALREADY_CONQUERED"
	CodeSiteRequiresDay      Code = "SITE_REQUIRES_DAY"
	CodeSiteRequiresNight    Code = "SITE_REQUIRES_NIGHT"
	CodeSiteOccupied         Code = "SITE_OCCUPIED"
	CodeSiteWrongPosition    Code = "SITE_WRONG_POSITION"
	CodeSiteInteractionUsed  Code = "SITE_INTERACTION_USED"
	CodeSiteNoGarrison       Code = "SITE_NO_GARRISON"
	CodeSiteGarrisonHidden   Code = "SITE_GARRISON_HIDDEN"
	CodeSiteBurned           Code = "SITE_BURNED"

	CodeUnitExhausted      Code = "UNIT_EXHAUSTED"
	CodeUnitNotOwned       Code = "UNIT_NOT_OWNED"
	CodeUnitWounded        Code = "UNIT_WOUNDED"
	CodeUnitWrongPhase     Code = "UNIT_WRONG_PHASE"
	CodeUnitLimitReached   Code = "UNIT_LIMIT_REACHED"
	CodeUnitBannerAttached Code = "UNIT_BANNER_ALREADY_ATTACHED"

	CodeLevelUpPending      Code = "LEVEL_UP_PENDING"
	CodeLevelRewardTaken    Code = "LEVEL_REWARD_ALREADY_TAKEN"
	CodeTacticAlreadyChosen Code = "TACTIC_ALREADY_CHOSEN"
	CodeTacticTaken         Code = "TACTIC_TAKEN_BY_OTHER_PLAYER"
	CodeTacticWrongTime     Code = "TACTIC_WRONG_TIME_OF_DAY"

	CodeCardSidewaysInvalid Code = "CARD_SIDEWAYS_MODE_INVALID"
	CodeCardTimingInvalid   Code = "CARD_TIMING_INVALID"
	CodeCardTargetInvalid   Code = "CARD_TARGET_INVALID"
	CodeSpellRequiresMana   Code = "SPELL_REQUIRES_MANA"
	CodeSpellRequiresNight  Code = "SPELL_STRONG_EFFECT_REQUIRES_NIGHT"
	CodeArtifactDestroyed   Code = "ARTIFACT_ALREADY_DESTROYED"

	CodeInteractWrongSite  Code = "INTERACT_WRONG_SITE"
	CodeInteractNoOffer    Code = "INTERACT_NOTHING_ON_OFFER"
	CodeHealWhileInCombat  Code = "HEAL_WHILE_IN_COMBAT"
	CodeHealNoWounds       Code = "HEAL_NO_WOUNDS"
	CodeHealWoundInDiscard Code = "HEAL_WOUND_IN_DISCARD_FORBIDDEN"

	CodeProvokeNoRampaging  Code = "PROVOKE_NO_RAMPAGING_ENEMY"
	CodeChallengeWrongPhase Code = "CHALLENGE_WRONG_PHASE"
	CodeWithdrawForbidden   Code = "WITHDRAW_FORBIDDEN"
	CodeWithdrawNoSpace     Code = "WITHDRAW_NO_SAFE_SPACE"

	CodeActionUnknown        Code = "ACTION_UNKNOWN"
	CodeActionNotImplemented Code = "ACTION_NOT_IMPLEMENTED"
)
