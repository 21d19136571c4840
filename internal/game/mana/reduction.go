package mana

// ReductionKind selects how a cost reduction applies.
type ReductionKind int

const (
	// ReduceAll lowers one component of every spell's cost.
	ReduceAll ReductionKind = iota
	// ReduceColor lowers one component, but only for spells of a given color.
	ReduceColor
	// FreeCreatures waives the cost of creature spells with converted cost
	// three or less.
	FreeCreatures
)

// Reduction is a static cost reduction granted by a permanent.
type Reduction struct {
	Kind   ReductionKind
	Gate   Color // ReduceColor: the spell color the reduction is limited to
	Color  Color // ReduceAll/ReduceColor: the cost component that is lowered
	Amount int
}
