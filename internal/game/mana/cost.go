package mana

// Cost maps colors to required amounts. The Colorless key holds the
// generic portion, payable with mana of any color.
type Cost map[Color]int

// Converted returns the converted mana cost (total of all components).
func (c Cost) Converted() int {
	total := 0
	for _, amount := range c {
		total += amount
	}
	return total
}

// IsFree reports whether nothing needs to be paid.
func (c Cost) IsFree() bool {
	return c.Converted() <= 0
}

// Clone returns an independent copy of the cost.
func (c Cost) Clone() Cost {
	clone := make(Cost, len(c))
	for color, amount := range c {
		clone[color] = amount
	}
	return clone
}
