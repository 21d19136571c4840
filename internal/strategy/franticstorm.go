package strategy

import (
	_ "embed"

	"github.com/premodern/goldfisher/internal/game"
)

//go:embed decklists/frantic-storm.txt
var franticStormDecklist string

// FranticStormName is the display name of the Frantic Storm pilot.
const FranticStormName = "Premodern - Frantic Storm"

func init() {
	register("frantic-storm", func() game.Strategy { return NewFranticStorm() })
}

// FranticStorm pilots the mono blue storm deck: cheat on mana with cost
// reducers and untappers, chain cantrips for storm count, and finish by
// milling the opponent out with Brain Freeze.
type FranticStorm struct {
	isStorming bool
}

// NewFranticStorm returns a fresh pilot with no leftover combo state.
func NewFranticStorm() *FranticStorm {
	return &FranticStorm{}
}

type franticStatus struct {
	lands          int
	manaSources    int
	costReducers   int
	cantrips       int
	cloudOfFaeries int
}

func (f *FranticStorm) status(g *game.Game, zones ...game.Zone) franticStatus {
	inZones := func(card *game.Card) bool {
		for _, zone := range zones {
			if card.Zone == zone {
				return true
			}
		}
		return false
	}

	var status franticStatus
	for _, card := range g.Objects() {
		if !inZones(card) {
			continue
		}

		switch card.Name {
		case "Helm of Awakening", "Sapphire Medallion":
			status.costReducers++
		case "Cloud of Faeries":
			status.cloudOfFaeries++
		case "Frantic Search", "Impulse", "Meditate", "Sleight of Hand",
			"Merchant Scroll", "Words of Wisdom":
			status.cantrips++
		}

		if card.IsType(game.TypeLand) {
			status.lands++
		}
		if card.IsType(game.TypeLand) || card.IsManaSource() {
			status.manaSources++
		}
	}
	return status
}

func (f *FranticStorm) Name() string { return FranticStormName }

func (f *FranticStorm) DefaultDecklist() *game.Decklist {
	return mustParseDecklist(franticStormDecklist)
}

func (f *FranticStorm) Cleanup() {
	f.isStorming = false
}

func (f *FranticStorm) GameStatus(g *game.Game) game.Status {
	return game.DefaultGameStatus(g)
}

func (f *FranticStorm) IsKeepableHand(g *game.Game, mulligans int) bool {
	if mulligans >= 3 {
		return true
	}

	hand := f.status(g, game.ZoneHand)

	// The hand this deck wants: a reducer, mana, and something to dig.
	if hand.costReducers >= 1 && hand.manaSources >= 2 && hand.cantrips >= 1 {
		return true
	}

	if hand.lands == 0 {
		return false
	}
	if hand.manaSources >= 6 {
		return false
	}

	return true
}

func (f *FranticStorm) SelectBest(g *game.Game, groups map[string][]*game.Card) *game.Card {
	status := f.status(g, game.ZoneHand, game.ZoneBattlefield)

	if status.lands < 2 {
		if card := game.FindNamed(groups, "Island"); card != nil {
			return card
		}
	}

	if status.costReducers == 0 {
		for _, name := range []string{"Helm of Awakening", "Sapphire Medallion"} {
			if card := game.FindNamed(groups, name); card != nil {
				return card
			}
		}
	}

	if g.Storm >= 5 {
		if card := game.FindNamed(groups, "Brain Freeze"); card != nil {
			return card
		}
	}

	for _, name := range []string{
		"Meditate",
		"Impulse",
		"Cloud of Faeries",
		"Snap",
		"Merchant Scroll",
		"Cunning Wish",
		"Frantic Search",
		"Sleight of Hand",
		"Brain Freeze",
		"Turnabout",
		"Words of Wisdom",
		"Lotus Petal",
	} {
		if card := game.FindNamed(groups, name); card != nil {
			return card
		}
	}

	// Otherwise just pick anything.
	for _, copies := range groups {
		if len(copies) > 0 {
			return copies[0]
		}
	}
	return nil
}

func (f *FranticStorm) SelectIntuition(g *game.Game) []*game.Card {
	return game.DefaultSelectIntuition(f, g)
}

func (f *FranticStorm) DiscardToHandSize(g *game.Game, handSize int) []*game.Card {
	var lands, costReducers, cantrips, tutors, untappers, wincons, petals, others []*game.Card

	reducersOnBattlefield := 0
	for _, card := range g.Battlefield() {
		if card.Name == "Helm of Awakening" || card.Name == "Sapphire Medallion" {
			reducersOnBattlefield++
		}
	}

	for _, card := range g.Hand() {
		switch card.Name {
		case "Helm of Awakening", "Sapphire Medallion":
			costReducers = append(costReducers, card)
		case "Frantic Search", "Meditate", "Impulse", "Sleight of Hand":
			cantrips = append(cantrips, card)
		case "Merchant Scroll", "Cunning Wish", "Intuition":
			tutors = append(tutors, card)
		case "Brain Freeze":
			wincons = append(wincons, card)
		case "Cloud of Faeries", "Snap", "Turnabout":
			untappers = append(untappers, card)
		case "Lotus Petal":
			petals = append(petals, card)
		default:
			if card.IsType(game.TypeLand) {
				lands = append(lands, card)
			} else {
				others = append(others, card)
			}
		}
	}

	game.SortByBestManaToPlay(lands)

	ordered := make([]*game.Card, 0, len(g.Hand()))

	// A balanced mix of lands and cost reducers comes first.
	landIdx := len(lands)
	if reducersOnBattlefield == 0 {
		for i := 0; i < 2 && landIdx > 0; i++ {
			landIdx--
			ordered = append(ordered, lands[landIdx])
		}
	}

	reducerIdx := 0
	if reducersOnBattlefield < 2 && reducerIdx < len(costReducers) {
		ordered = append(ordered, costReducers[reducerIdx])
		reducerIdx++
	}

	ordered = append(ordered, wincons...)

	untapperIdx := 0
	for i := 0; i < 2 && untapperIdx < len(untappers); i++ {
		ordered = append(ordered, untappers[untapperIdx])
		untapperIdx++
	}

	cantripIdx := 0
	for i := 0; i < 2 && cantripIdx < len(cantrips); i++ {
		ordered = append(ordered, cantrips[cantripIdx])
		cantripIdx++
	}

	ordered = append(ordered, tutors...)

	// Petals beat extra lands for quick kills.
	ordered = append(ordered, petals...)

	ordered = append(ordered, untappers[untapperIdx:]...)
	for i := landIdx - 1; i >= 0; i-- {
		ordered = append(ordered, lands[i])
	}
	ordered = append(ordered, cantrips[cantripIdx:]...)
	ordered = append(ordered, costReducers[reducerIdx:]...)
	ordered = append(ordered, others...)

	if len(ordered) <= handSize {
		return nil
	}
	return ordered[handSize:]
}

func (f *FranticStorm) TakeGameAction(g *game.Game) bool {
	if game.PlayBestLand(f, g) {
		return true
	}

	battlefield := f.status(g, game.ZoneBattlefield)
	castable := g.FindCastable()

	if !f.isStorming && battlefield.costReducers < 2 {
		reducers := []string{"Sapphire Medallion", "Helm of Awakening"}

		// Burning petals for cost reducers is worth it.
		if game.CountInHand(g, reducers...) > 0 {
			if game.CastNamed(f, g, castable, "Lotus Petal") {
				return true
			}
		}
		for _, name := range reducers {
			if game.CastNamed(f, g, castable, name) {
				return true
			}
		}
	}

	if !f.isStorming {
		hand := f.status(g, game.ZoneHand)

		// Time to start storming?
		if battlefield.lands >= 2 &&
			(battlefield.costReducers >= 1 || battlefield.lands >= 5) &&
			hand.cantrips >= 1 {
			f.isStorming = true
		}
	}

	if f.isStorming {
		// Float everything now so untappers net mana.
		g.FloatMana()
		castable = g.FindCastable()

		for _, name := range []string{"Lotus Petal", "Cloud of Faeries", "Turnabout"} {
			if game.CastNamed(f, g, castable, name) {
				return true
			}
		}

		if battlefield.cloudOfFaeries > 0 {
			if game.CastNamed(f, g, castable, "Snap") {
				return true
			}
		}

		// Cast Brain Freeze only once the copies in hand add up to the
		// whole remaining library, counting the storm they add themselves.
		brainFreezes := game.CountInHand(g, "Brain Freeze")
		extrasFromStorm := 0
		for i := 0; i < brainFreezes; i++ {
			extrasFromStorm += i + 3
		}
		totalMilled := 3*brainFreezes*g.Storm + extrasFromStorm
		if g.OpponentLibrary <= totalMilled {
			if game.CastNamed(f, g, castable, "Brain Freeze") {
				return true
			}
		}

		for _, name := range []string{
			"Meditate",
			"Frantic Search",
			"Impulse",
			"Words of Wisdom",
			"Sleight of Hand",
			"Merchant Scroll",
			"Cunning Wish",
		} {
			if game.CastNamed(f, g, castable, name) {
				return true
			}
		}

		// Cast anything else, cheapest first.
		if len(castable) > 0 {
			cards := make([]*game.Card, len(castable))
			byCard := make(map[*game.Card]game.Castable, len(castable))
			for i, c := range castable {
				cards[i] = c.Card
				byCard[c.Card] = c
			}
			game.SortByConvertedCost(cards)
			cheapest := byCard[cards[0]]
			g.CastSpell(f, cheapest.Card, cheapest.Payment)
			return true
		}
		return false
	}

	// Dig for cost reducers with the non-premium cantrips.
	for _, name := range []string{"Impulse", "Sleight of Hand", "Words of Wisdom"} {
		if game.CastNamed(f, g, castable, name) {
			return true
		}
	}

	// Rather than discarding, play something.
	if len(g.Hand()) > 7 {
		for _, name := range []string{"Lotus Petal", "Cloud of Faeries", "Merchant Scroll"} {
			if game.CastNamed(f, g, castable, name) {
				return true
			}
		}
	}

	return false
}
