package state

// CardEffect is the resolved outcome of playing a card or using a skill.
//
// The effect resolver (an external collaborator) produces these; commands
// apply them. When Choices is non-empty the effect requires a further
// player decision and nothing else on the value applies yet.
type CardEffect struct {
	Description string `json:"description"`

	Move      int `json:"move,omitempty"`
	Influence int `json:"influence,omitempty"`
	Heal      int `json:"heal,omitempty"`

	Attack   AttackPool `json:"attack,omitempty"`
	Block    BlockPool  `json:"block,omitempty"`
	Crystals CrystalSet `json:"crystals,omitempty"`

	Modifiers []Modifier `json:"modifiers,omitempty"`

	Choices []CardEffect `json:"choices,omitempty"`
}

// RequiresChoice reports whether the effect needs a player decision before
// it fully resolves.
func (e CardEffect) RequiresChoice() bool {
	return len(e.Choices) > 0
}

// Apply folds the effect into the player value. Choice effects must be
// resolved to a concrete option before applying.
func (e CardEffect) Apply(p Player) Player {
	if e.RequiresChoice() {
		panic("state: applying unresolved choice effect")
	}
	p.MovePoints += e.Move
	p.Influence += e.Influence
	p.Healing += e.Heal
	for t := AttackMelee; t <= AttackSiege; t++ {
		for _, el := range Elements() {
			if v := e.Attack.Get(t, el); v != 0 {
				p.Attack = p.Attack.Add(t, el, v)
			}
		}
	}
	for _, el := range Elements() {
		if v := e.Block.Get(el); v != 0 {
			p.Block = p.Block.Add(el, v)
		}
	}
	for c := ColorRed; c.Valid(); c++ {
		if v := e.Crystals.Get(c); v != 0 {
			p.Crystals = p.Crystals.Add(c, v)
		}
	}
	return p
}
