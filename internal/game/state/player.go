package state

// Player holds all per-player state.
type Player struct {
	ID   PlayerID `json:"id"`
	Name string   `json:"name"`

	Fame       int `json:"fame"`
	Reputation int `json:"reputation"`

	// Armor and HandLimit are base values; queries go through the modifier
	// registry for effective values.
	Armor     int `json:"armor"`
	HandLimit int `json:"hand_limit"`

	Position Coord `json:"position"`

	Hand    []CardID `json:"hand,omitempty"`
	Deck    []CardID `json:"deck,omitempty"`
	Discard []CardID `json:"discard,omitempty"`

	Skills     []SkillID        `json:"skills,omitempty"`
	UsedSkills map[SkillID]bool `json:"used_skills,omitempty"`
	Units      []UnitID         `json:"units,omitempty"`
	Crystals   CrystalSet       `json:"crystals"`

	MovePoints int `json:"move_points"`
	Influence  int `json:"influence"`
	Healing    int `json:"healing"`

	// Attack and Block are the accumulated pools for the current turn,
	// produced by card and skill effects.
	Attack AttackPool `json:"attack"`
	Block  BlockPool  `json:"block"`

	CombattedThisTurn bool `json:"combatted_this_turn"`
	KnockedOut        bool `json:"knocked_out"`
}

// HandWounds counts wound cards currently in hand.
func (p Player) HandWounds() int {
	n := 0
	for _, c := range p.Hand {
		if c == WoundCard {
			n++
		}
	}
	return n
}

// WithHand returns a copy of the player with the hand replaced.
func (p Player) WithHand(hand []CardID) Player {
	p.Hand = hand
	return p
}

// AppendHand returns a copy of the player with cards appended to a copied
// hand slice.
func (p Player) AppendHand(cards ...CardID) Player {
	hand := make([]CardID, 0, len(p.Hand)+len(cards))
	hand = append(hand, p.Hand...)
	hand = append(hand, cards...)
	p.Hand = hand
	return p
}

// AppendDiscard returns a copy of the player with cards appended to a
// copied discard slice.
func (p Player) AppendDiscard(cards ...CardID) Player {
	discard := make([]CardID, 0, len(p.Discard)+len(cards))
	discard = append(discard, p.Discard...)
	discard = append(discard, cards...)
	p.Discard = discard
	return p
}

// RemoveHandCard returns a copy of the player with the first occurrence of
// the card removed from a copied hand, and whether it was found.
func (p Player) RemoveHandCard(card CardID) (Player, bool) {
	for i, c := range p.Hand {
		if c == card {
			hand := make([]CardID, 0, len(p.Hand)-1)
			hand = append(hand, p.Hand[:i]...)
			hand = append(hand, p.Hand[i+1:]...)
			p.Hand = hand
			return p, true
		}
	}
	return p, false
}

// WithUsedSkill returns a copy of the player with the skill marked used.
// The used-skill map is copied.
func (p Player) WithUsedSkill(id SkillID) Player {
	used := make(map[SkillID]bool, len(p.UsedSkills)+1)
	for k, v := range p.UsedSkills {
		used[k] = v
	}
	used[id] = true
	p.UsedSkills = used
	return p
}

// HasSkill reports whether the player owns the skill.
func (p Player) HasSkill(id SkillID) bool {
	for _, s := range p.Skills {
		if s == id {
			return true
		}
	}
	return false
}
