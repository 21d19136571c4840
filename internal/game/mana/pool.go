package mana

// Color represents a color of mana.
type Color string

const (
	White     Color = "WHITE"
	Blue      Color = "BLUE"
	Black     Color = "BLACK"
	Red       Color = "RED"
	Green     Color = "GREEN"
	Colorless Color = "COLORLESS"
)

// Colors lists the five colors in the fixed order the payment solver
// walks colored requirements in. Colorless is the generic remainder and
// is handled last.
var Colors = [5]Color{White, Blue, Black, Red, Green}

// Pool maps colors to amounts of mana. It represents both floating mana
// and the mana a source can produce.
type Pool map[Color]int

// NewPool creates an empty pool.
func NewPool() Pool {
	return make(Pool)
}

// Total returns the total amount of mana in the pool.
func (p Pool) Total() int {
	total := 0
	for _, amount := range p {
		total += amount
	}
	return total
}

// IsEmpty reports whether the pool holds no mana.
func (p Pool) IsEmpty() bool {
	for _, amount := range p {
		if amount > 0 {
			return false
		}
	}
	return true
}

// Add adds amount of the given color to the pool.
func (p Pool) Add(c Color, amount int) {
	if amount <= 0 {
		return
	}
	p[c] += amount
}

// Clone returns an independent copy of the pool.
func (p Pool) Clone() Pool {
	clone := make(Pool, len(p))
	for c, amount := range p {
		if amount > 0 {
			clone[c] = amount
		}
	}
	return clone
}

// ColorCount returns how many distinct colors the pool can produce.
func (p Pool) ColorCount() int {
	count := 0
	for _, amount := range p {
		if amount > 0 {
			count++
		}
	}
	return count
}

// MaxYield returns the color the pool holds most of, and that amount.
// Ties resolve in the fixed color order so results are deterministic.
func (p Pool) MaxYield() (Color, int) {
	best := Colorless
	bestAmount := p[Colorless]
	for _, c := range Colors {
		if p[c] > bestAmount {
			best = c
			bestAmount = p[c]
		}
	}
	return best, bestAmount
}
