package game

import (
	"fmt"
	"strings"
)

// EffectKind identifies one of the closed set of resolution effects.
type EffectKind int

const (
	EffectMill EffectKind = iota
	EffectDraw
	// EffectUntapLands untaps Amount lands, or all tapped lands when
	// Amount is zero.
	EffectUntapLands
	EffectDamageEach
	EffectSearchAndPutHand
	EffectSearchAndPutTopOfLibrary
	EffectSearchAndPutBattlefield
	// EffectImpulse looks at the top Amount cards, keeps one, and puts
	// the rest on the bottom.
	EffectImpulse
	EffectIntuition
	EffectCavernHarpy
	EffectUnearth
	EffectWordsOfWisdom
	EffectSnap
	EffectFranticSearch
	EffectBrainFreeze
	EffectMeditate
)

// Effect is a resolution effect attached to a card.
type Effect struct {
	Kind   EffectKind
	Amount int
	Filter *SearchFilter
}

// resolveEffects applies the card's on-resolve effect, if any.
func (g *Game) resolveEffects(source *Card, s Strategy) {
	if source.OnResolve == nil {
		return
	}
	g.resolve(source.OnResolve, source, s)
}

func (g *Game) resolve(e *Effect, source *Card, s Strategy) {
	switch e.Kind {
	case EffectMill:
		g.Mill(e.Amount)
	case EffectDraw:
		g.DrawN(e.Amount)
	case EffectUntapLands:
		g.untapLands(e.Amount)
	case EffectDamageEach:
		g.DamageEach(e.Amount)
	case EffectSearchAndPutHand:
		g.searchToHand(source, s, e.Filter)
	case EffectSearchAndPutTopOfLibrary:
		g.searchToTop(s, e.Filter)
	case EffectSearchAndPutBattlefield:
		g.searchToBattlefield(source, s, e.Filter)
	case EffectImpulse:
		g.impulse(s, e.Amount)
	case EffectIntuition:
		g.intuition(s)
	case EffectCavernHarpy:
		g.cavernHarpy(source)
	case EffectUnearth:
		g.unearth(s)
	case EffectWordsOfWisdom:
		g.DrawN(2)
		g.OpponentLibrary--
	case EffectSnap:
		if faeries := g.firstNamedOnBattlefield("Cloud of Faeries"); faeries != nil {
			g.bounce(faeries)
		}
		g.untapLands(2)
	case EffectFranticSearch:
		handSize := len(g.Hand())
		g.DrawN(2)
		for _, card := range s.DiscardToHandSize(g, handSize) {
			g.Discard(card)
		}
		g.untapLands(3)
	case EffectBrainFreeze:
		g.Mill(3 * g.Storm)
	case EffectMeditate:
		g.DrawN(4)
		g.TurnsToSkip++
	}
}

func (g *Game) firstNamedOnBattlefield(name string) *Card {
	for _, card := range g.objects {
		if card.Zone == ZoneBattlefield && card.Name == name {
			return card
		}
	}
	return nil
}

func (g *Game) bounce(card *Card) {
	card.Zone = ZoneHand
	g.events.Record(Event{Turn: g.Turn, Kind: EventBounce, Card: card.Name})
}

// untapLands untaps the given number of tapped lands, best producers
// first, or every tapped land when amount is zero.
func (g *Game) untapLands(amount int) {
	tappedLands := func() []*Card {
		var lands []*Card
		for _, card := range g.objects {
			if card.Zone == ZoneBattlefield && card.IsType(TypeLand) && card.Tapped {
				lands = append(lands, card)
			}
		}
		return lands
	}

	if amount == 0 {
		amount = len(tappedLands())
	}

	for i := 0; i < amount; i++ {
		lands := tappedLands()
		if len(lands) == 0 {
			return
		}
		SortByBestManaToPlay(lands)
		best := lands[len(lands)-1]
		best.Tapped = false
		g.events.Record(Event{Turn: g.Turn, Kind: EventUntap, Card: best.Name})
	}
}

func (g *Game) searchToHand(source *Card, s Strategy, filter *SearchFilter) {
	found := s.SelectBest(g, GroupByName(g.ApplySearchFilter(filter)))
	wish := filter != nil && filter.Kind == FilterWish

	if found == nil {
		g.events.Record(Event{Turn: g.Turn, Kind: EventSearch, Detail: "failed to find"})
	} else if wish {
		g.deck.RemoveSideboard(found)
		found.Zone = ZoneHand
		g.events.Record(Event{
			Turn: g.Turn, Kind: EventSearch, Card: found.Name,
			Detail: "from sideboard to hand",
		})
	} else {
		g.deck.Remove(found)
		found.Zone = ZoneHand
		g.deck.Shuffle()
		g.events.Record(Event{
			Turn: g.Turn, Kind: EventSearch, Card: found.Name, Detail: "to hand",
		})
	}

	// Wishes exile themselves on resolution.
	if wish {
		source.Zone = ZoneExile
	}
}

func (g *Game) searchToTop(s Strategy, filter *SearchFilter) {
	found := s.SelectBest(g, GroupByName(g.ApplySearchFilter(filter)))
	if found == nil {
		g.events.Record(Event{Turn: g.Turn, Kind: EventSearch, Detail: "failed to find"})
		return
	}
	g.deck.Remove(found)
	g.deck.Shuffle()
	g.deck.PutTop(found)
	g.events.Record(Event{
		Turn: g.Turn, Kind: EventSearch, Card: found.Name, Detail: "to top of library",
	})
}

func (g *Game) searchToBattlefield(source *Card, s Strategy, filter *SearchFilter) {
	found := s.SelectBest(g, GroupByName(g.ApplySearchFilter(filter)))
	if found == nil {
		g.events.Record(Event{Turn: g.Turn, Kind: EventSearch, Detail: "failed to find"})
		return
	}
	g.deck.Remove(found)
	found.Zone = ZoneBattlefield
	g.deck.Shuffle()
	g.events.Record(Event{
		Turn: g.Turn, Kind: EventSearch, Card: found.Name, Detail: "to battlefield",
	})

	// Fetch lands sacrifice themselves to search.
	if source.IsType(TypeLand) {
		source.Zone = ZoneGraveyard
	}
}

// impulse looks at the top cards, keeps the strategy's pick, and
// bottoms the rest. A looked-at card that is not in the library is an
// invariant violation.
func (g *Game) impulse(s Strategy, amount int) {
	var cards []*Card
	for i := 0; i < amount; i++ {
		card := g.deck.Draw()
		if card == nil {
			break
		}
		if card.Zone != ZoneLibrary {
			panic(fmt.Sprintf("card %q in zone %s while in the library", card.Name, card.Zone))
		}
		cards = append(cards, card)
	}

	names := make([]string, len(cards))
	for i, card := range cards {
		names[i] = fmt.Sprintf("%q", card.Name)
	}
	g.events.Record(Event{
		Turn: g.Turn, Kind: EventLookAt, Detail: strings.Join(names, ", "),
	})

	selected := s.SelectBest(g, GroupByName(cards))
	if selected != nil {
		selected.Zone = ZoneHand
		g.events.Record(Event{
			Turn: g.Turn, Kind: EventSearch, Card: selected.Name, Detail: "to hand",
		})
	}

	for _, card := range cards {
		if card != selected {
			g.deck.PutBottom(card)
		}
	}
}

// intuition lets the strategy pick three cards; one ends up in hand and
// the rest in the graveyard.
func (g *Game) intuition(s Strategy) {
	found := s.SelectIntuition(g)
	if len(found) == 0 {
		return
	}

	last := found[len(found)-1]
	g.deck.Remove(last)
	last.Zone = ZoneHand
	g.events.Record(Event{
		Turn: g.Turn, Kind: EventSearch, Card: last.Name, Detail: "to hand",
	})

	for _, card := range found[:len(found)-1] {
		g.deck.Remove(card)
		card.Zone = ZoneGraveyard
		g.events.Record(Event{
			Turn: g.Turn, Kind: EventSearch, Card: card.Name, Detail: "to graveyard",
		})
	}
}

// cavernHarpy returns a creature to hand, preferring the bounce that
// keeps the loop going.
func (g *Game) cavernHarpy(source *Card) {
	if carrier := g.firstNamedOnBattlefield("Maggot Carrier"); carrier != nil {
		g.bounce(carrier)
		return
	}

	savages := len(g.namedOnBattlefield("Wirewood Savage"))
	if savages > 0 && g.deck.Len() > 1 {
		g.bounce(source)
		return
	}

	if faeries := g.firstNamedOnBattlefield("Cloud of Faeries"); faeries != nil {
		g.bounce(faeries)
		return
	}

	if raven := g.firstNamedOnBattlefield("Raven Familiar"); raven != nil {
		g.bounce(raven)
		return
	}

	g.bounce(source)
}

// unearth returns a cheap creature from the graveyard to the
// battlefield, re-triggering its arrival effects.
func (g *Game) unearth(s Strategy) {
	var targets []*Card
	for _, card := range g.objects {
		if card.Zone == ZoneGraveyard &&
			card.IsType(TypeCreature) &&
			card.ConvertedCost() <= 3 {
			targets = append(targets, card)
		}
	}

	target := s.SelectBest(g, GroupByName(targets))
	if target == nil {
		return
	}
	target.Zone = ZoneBattlefield
	g.events.Record(Event{Turn: g.Turn, Kind: EventReanimate, Card: target.Name})
	g.resolveEffects(target, s)
}
