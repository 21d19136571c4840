package game

// Strategy makes every decision the simulated pilot has to make. The
// engine drives the turn structure and rules; the strategy picks which
// actions to take and which cards to keep, find, or discard.
type Strategy interface {
	Name() string
	DefaultDecklist() *Decklist

	// Cleanup resets per-game state between games.
	Cleanup()

	// GameStatus decides whether the game has finished and how.
	GameStatus(g *Game) Status

	// IsKeepableHand decides whether to keep the current starting hand.
	IsKeepableHand(g *Game, mulligans int) bool

	// TakeGameAction takes one action and reports whether it did
	// anything. The engine keeps calling until no action is taken.
	TakeGameAction(g *Game) bool

	// SelectBest picks the most valuable card from name groups, or nil.
	SelectBest(g *Game, groups map[string][]*Card) *Card

	// SelectIntuition picks the three cards to find with Intuition.
	SelectIntuition(g *Game) []*Card

	// DiscardToHandSize returns the cards to discard down to handSize.
	DiscardToHandSize(g *Game, handSize int) []*Card
}

// DefaultGameStatus is the shared win/loss check: life gone is a loss,
// twenty damage dealt is a win, both at once a draw, and an opponent
// with an empty library has lost.
func DefaultGameStatus(g *Game) Status {
	switch {
	case g.LifeTotal <= 0 && g.DamageDealt >= 20:
		return Status{Finished: true, Outcome: OutcomeDraw}
	case g.LifeTotal <= 0:
		return Status{Finished: true, Outcome: OutcomeLose}
	case g.DamageDealt >= 20:
		return Status{Finished: true, Outcome: OutcomeWin}
	case g.OpponentLibrary <= 0:
		return Status{Finished: true, Outcome: OutcomeWin}
	}
	return Status{}
}

// CastNamed casts the named card from the castable list if present.
func CastNamed(s Strategy, g *Game, castable []Castable, name string) bool {
	for _, c := range castable {
		if c.Card.Name == name {
			g.CastSpell(s, c.Card, c.Payment)
			return true
		}
	}
	return false
}

// CastBestManaProducer casts the castable mana creature that produces
// the most colors, if any.
func CastBestManaProducer(s Strategy, g *Game) bool {
	castable := g.FindCastable()

	var producers []Castable
	for _, c := range castable {
		if c.Card.IsManaDork() {
			producers = append(producers, c)
		}
	}
	if len(producers) == 0 {
		return false
	}

	cards := make([]*Card, len(producers))
	byCard := make(map[*Card]Castable, len(producers))
	for i, c := range producers {
		cards[i] = c.Card
		byCard[c.Card] = c
	}
	SortByBestManaToPlay(cards)

	best := byCard[cards[len(cards)-1]]
	g.CastSpell(s, best.Card, best.Payment)
	return true
}

// PlayBestLand plays the land from hand that produces the most colors,
// preferring sources without limited uses.
func PlayBestLand(s Strategy, g *Game) bool {
	if g.AvailableLandDrops == 0 {
		return false
	}

	var lands []*Card
	for _, card := range g.Hand() {
		if card.IsType(TypeLand) {
			lands = append(lands, card)
		}
	}
	if len(lands) == 0 {
		return false
	}

	SortByBestManaToPlay(lands)
	g.PlayLand(s, lands[len(lands)-1])
	return true
}

// DefaultDiscardToHandSize keeps the handSize best cards, picked by
// repeatedly asking the strategy, and discards the rest.
func DefaultDiscardToHandSize(s Strategy, g *Game, handSize int) []*Card {
	discard := g.Hand()
	if len(discard) <= handSize {
		return nil
	}

	for i := 0; i < handSize; i++ {
		best := s.SelectBest(g, GroupByName(discard))
		if best == nil {
			break
		}
		for j, card := range discard {
			if card == best {
				discard = append(discard[:j], discard[j+1:]...)
				break
			}
		}
	}
	return discard
}

// DefaultSelectIntuition picks up to three of the strategy's best cards
// from the library.
func DefaultSelectIntuition(s Strategy, g *Game) []*Card {
	pool := g.ApplySearchFilter(nil)
	var selected []*Card

	for len(selected) < 3 {
		best := s.SelectBest(g, GroupByName(pool))
		if best == nil {
			break
		}
		selected = append(selected, best)
		for i, card := range pool {
			if card == best {
				pool = append(pool[:i], pool[i+1:]...)
				break
			}
		}
	}
	return selected
}

// CountInHand counts cards in hand matching any of the names.
func CountInHand(g *Game, names ...string) int {
	count := 0
	for _, card := range g.Hand() {
		for _, name := range names {
			if card.Name == name {
				count++
				break
			}
		}
	}
	return count
}

// FindNWithPriority takes up to count cards from the library following
// the priority list, padding with arbitrary library cards if needed.
// Found cards are set aside outside the game until the caller places
// them.
func FindNWithPriority(g *Game, count int, priority []string) []*Card {
	found := make([]*Card, 0, count)

	for _, name := range priority {
		if len(found) >= count {
			break
		}
		for _, card := range g.objects {
			if len(found) >= count {
				break
			}
			if card.Zone == ZoneLibrary && card.Name == name {
				card.Zone = ZoneOutside
				found = append(found, card)
			}
		}
	}

	for _, card := range g.objects {
		if len(found) >= count {
			break
		}
		if card.Zone == ZoneLibrary {
			card.Zone = ZoneOutside
			found = append(found, card)
		}
	}

	return found
}
