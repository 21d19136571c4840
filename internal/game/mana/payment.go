package mana

import "sort"

// NoSource marks the absence of a source ID.
const NoSource = -1

// Source describes one mana source a payment may tap: its owning object
// ID and the mana it would produce.
type Source struct {
	ID       int
	Produces Pool
}

// Request asks for a payment plan for one spell.
//
// Sources must be given in the order the caller wants them consumed;
// the solver spends colored requirements front to back, so sorting
// sources ascending by flexibility preserves the rarer ones.
type Request struct {
	Cost       Cost
	Creature   bool
	SelfID     int // source ID of the spell itself, or NoSource
	Sources    []Source
	Floating   Pool
	Reductions []Reduction
}

// Payment is a concrete way to pay a cost: the IDs of the sources to
// tap and the floating mana left over afterwards.
type Payment struct {
	Used     []int
	Floating Pool
}

// FindPayment finds a payment plan for the request, or nil if the cost
// cannot be paid. The search is greedy and fail-fast: colored
// requirements are settled in the fixed color order, draining floating
// mana before tapping sources, and the generic remainder is paid by the
// unused sources with the largest single-color yields. Surplus from a
// tapped source is credited back as floating mana of that color.
func FindPayment(req Request) *Payment {
	cost := req.Cost.Clone()
	floating := req.Floating.Clone()

	if cost.IsFree() {
		return &Payment{Floating: floating}
	}

	for _, r := range req.Reductions {
		switch r.Kind {
		case FreeCreatures:
			if req.Creature && cost.Converted() <= 3 {
				return &Payment{Floating: floating}
			}
		case ReduceColor:
			if req.Cost[r.Gate] > 0 {
				cost[r.Color] -= r.Amount
			}
		case ReduceAll:
			cost[r.Color] -= r.Amount
		}
	}

	// Per-color yields in caller order, gathered up front so each color
	// requirement can be checked for feasibility before anything is spent.
	type yield struct {
		index  int
		amount int
	}
	colorSources := make(map[Color][]yield)
	for _, c := range Colors {
		need := cost[c]
		if need <= 0 {
			continue
		}
		var avail []yield
		total := 0
		for i, src := range req.Sources {
			if src.ID == req.SelfID && req.SelfID != NoSource {
				continue
			}
			if amount := src.Produces[c]; amount > 0 {
				avail = append(avail, yield{index: i, amount: amount})
				total += amount
			}
		}
		if need > total+floating[c] {
			return nil
		}
		colorSources[c] = avail
	}

	usedIndex := make(map[int]bool)
	var used []int

	for _, c := range Colors {
		need := cost[c]
		if need <= 0 {
			continue
		}

		if floating[c] >= need {
			floating[c] -= need
			continue
		}
		paid := floating[c]
		floating[c] = 0

		for _, y := range colorSources[c] {
			if usedIndex[y.index] {
				continue
			}
			paid += y.amount
			usedIndex[y.index] = true
			used = append(used, req.Sources[y.index].ID)
			if paid >= need {
				floating.Add(c, paid-need)
				break
			}
		}
		if paid < need {
			return nil
		}
	}

	if need := cost[Colorless]; need > 0 {
		paid := 0

		drainOrder := []Color{White, Blue, Black, Red, Green, Colorless}
		for _, c := range drainOrder {
			if floating[c] <= 0 {
				continue
			}
			if paid+floating[c] < need {
				paid += floating[c]
				floating[c] = 0
			} else {
				floating[c] -= need - paid
				paid = need
				break
			}
		}

		if paid < need {
			var remaining []int
			for i, src := range req.Sources {
				if usedIndex[i] {
					continue
				}
				if src.ID == req.SelfID && req.SelfID != NoSource {
					continue
				}
				remaining = append(remaining, i)
			}
			sort.SliceStable(remaining, func(a, b int) bool {
				_, ya := req.Sources[remaining[a]].Produces.MaxYield()
				_, yb := req.Sources[remaining[b]].Produces.MaxYield()
				return ya > yb
			})

			for _, i := range remaining {
				c, amount := req.Sources[i].Produces.MaxYield()
				if amount <= 0 {
					continue
				}
				paid += amount
				usedIndex[i] = true
				used = append(used, req.Sources[i].ID)
				if paid >= need {
					floating.Add(c, paid-need)
					break
				}
			}
			if paid < need {
				return nil
			}
		}
	}

	return &Payment{Used: used, Floating: floating}
}
