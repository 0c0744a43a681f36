package state

// Element identifies an elemental damage or block type.
type Element int

const (
	ElementPhysical Element = iota
	ElementFire
	ElementIce
	ElementColdFire

	elementCount
)

// Elements lists every element in declaration order.
func Elements() []Element {
	return []Element{ElementPhysical, ElementFire, ElementIce, ElementColdFire}
}

func (e Element) String() string {
	switch e {
	case ElementPhysical:
		return "physical"
	case ElementFire:
		return "fire"
	case ElementIce:
		return "ice"
	case ElementColdFire:
		return "cold-fire"
	default:
		return "unknown"
	}
}

// Valid reports whether the element is a declared member of the enumeration.
func (e Element) Valid() bool {
	return e >= ElementPhysical && e < elementCount
}

// AttackType identifies which combat phase an attack pool belongs to.
type AttackType int

const (
	AttackMelee AttackType = iota
	AttackRanged
	AttackSiege

	attackTypeCount
)

func (t AttackType) String() string {
	switch t {
	case AttackMelee:
		return "melee"
	case AttackRanged:
		return "ranged"
	case AttackSiege:
		return "siege"
	default:
		return "unknown"
	}
}

// Valid reports whether the attack type is a declared member.
func (t AttackType) Valid() bool {
	return t >= AttackMelee && t < attackTypeCount
}

// ElementAmounts holds per-element totals. It is a fixed-size array so the
// whole pool copies by value.
type ElementAmounts [4]int

// Get returns the amount for an element.
func (a ElementAmounts) Get(e Element) int { return a[e] }

// Add returns a copy with the element's amount changed by delta.
func (a ElementAmounts) Add(e Element, delta int) ElementAmounts {
	a[e] += delta
	return a
}

// Total returns the sum across all elements.
func (a ElementAmounts) Total() int {
	total := 0
	for _, v := range a {
		total += v
	}
	return total
}

// AttackPool holds accumulated attack per attack type and element.
type AttackPool [3]ElementAmounts

// Get returns the amount for an attack type and element.
func (p AttackPool) Get(t AttackType, e Element) int { return p[t][e] }

// Add returns a copy with the given cell changed by delta.
func (p AttackPool) Add(t AttackType, e Element, delta int) AttackPool {
	p[t] = p[t].Add(e, delta)
	return p
}

// Of returns the element totals for one attack type.
func (p AttackPool) Of(t AttackType) ElementAmounts { return p[t] }

// Total returns the sum across all attack types and elements.
func (p AttackPool) Total() int {
	total := 0
	for _, amounts := range p {
		total += amounts.Total()
	}
	return total
}

// BlockPool holds accumulated block per element.
type BlockPool = ElementAmounts

// Color identifies a mana crystal color.
type Color int

const (
	ColorRed Color = iota
	ColorBlue
	ColorGreen
	ColorWhite

	colorCount
)

func (c Color) String() string {
	switch c {
	case ColorRed:
		return "red"
	case ColorBlue:
		return "blue"
	case ColorGreen:
		return "green"
	case ColorWhite:
		return "white"
	default:
		return "unknown"
	}
}

// Valid reports whether the color is a declared member.
func (c Color) Valid() bool {
	return c >= ColorRed && c < colorCount
}

// CrystalSet holds per-color crystal counts, copied by value.
type CrystalSet [4]int

// Get returns the count for a color.
func (s CrystalSet) Get(c Color) int { return s[c] }

// Add returns a copy with the color's count changed by delta.
func (s CrystalSet) Add(c Color, delta int) CrystalSet {
	s[c] += delta
	return s
}
