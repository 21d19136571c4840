package mana

import "testing"

func TestPoolTotalAndEmpty(t *testing.T) {
	p := NewPool()
	if !p.IsEmpty() {
		t.Fatal("new pool should be empty")
	}
	p.Add(Green, 2)
	p.Add(Blue, 1)
	p.Add(Red, 0)
	if p.Total() != 3 {
		t.Fatalf("expected total 3, got %d", p.Total())
	}
	if p.IsEmpty() {
		t.Fatal("pool with mana should not be empty")
	}
}

func TestPoolMaxYield(t *testing.T) {
	tests := []struct {
		name       string
		pool       Pool
		wantColor  Color
		wantAmount int
	}{
		{"single color", Pool{Green: 1}, Green, 1},
		{"largest wins", Pool{Green: 1, Colorless: 2}, Colorless, 2},
		{"tie resolves in color order", Pool{Red: 1, Blue: 1}, Blue, 1},
		{"empty", Pool{}, Colorless, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, amount := tt.pool.MaxYield()
			if c != tt.wantColor || amount != tt.wantAmount {
				t.Fatalf("got (%s, %d), want (%s, %d)", c, amount, tt.wantColor, tt.wantAmount)
			}
		})
	}
}

func TestPoolCloneIsIndependent(t *testing.T) {
	p := Pool{Green: 2}
	clone := p.Clone()
	clone.Add(Green, 1)
	if p[Green] != 2 {
		t.Fatalf("clone mutated the original: %v", p)
	}
}

func TestCostConverted(t *testing.T) {
	c := Cost{Green: 1, Colorless: 2}
	if c.Converted() != 3 {
		t.Fatalf("expected 3, got %d", c.Converted())
	}
	if c.IsFree() {
		t.Fatal("nonzero cost should not be free")
	}
	if !(Cost{}).IsFree() {
		t.Fatal("empty cost should be free")
	}
}
