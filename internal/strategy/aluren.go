package strategy

import (
	_ "embed"

	"github.com/premodern/goldfisher/internal/game"
)

//go:embed decklists/aluren.txt
var alurenDecklist string

// AlurenName is the display name of the Aluren pilot.
const AlurenName = "Premodern - Aluren"

func init() {
	register("aluren", func() game.Strategy { return &Aluren{} })
}

// Aluren pilots the creature combo deck built around its namesake
// enchantment: with it on the battlefield, Cavern Harpy loops cheap
// creatures for free until the life drain or draw engine ends the game.
type Aluren struct{}

type alurenStatus struct {
	lands           int
	manaSources     int
	alurens         int
	cloudOfFaeries  int
	cavernHarpies   int
	wirewoodSavages int
	ravenFamiliars  int
	soulWardens     int
	maggotCarriers  int
}

func (a *Aluren) status(g *game.Game, zones ...game.Zone) alurenStatus {
	inZones := func(card *game.Card) bool {
		for _, zone := range zones {
			if card.Zone == zone {
				return true
			}
		}
		return false
	}

	var status alurenStatus
	for _, card := range g.Objects() {
		if !inZones(card) {
			continue
		}

		switch card.Name {
		case "Aluren":
			status.alurens++
		case "Cavern Harpy":
			status.cavernHarpies++
		case "Wirewood Savage":
			status.wirewoodSavages++
		case "Raven Familiar":
			status.ravenFamiliars++
		case "Cloud of Faeries":
			status.cloudOfFaeries++
		case "Soul Warden":
			status.soulWardens++
		case "Maggot Carrier":
			status.maggotCarriers++
		}

		if card.IsType(game.TypeLand) {
			status.lands++
		}
		// Single use sources do not count towards a stable mana base.
		if card.IsManaSource() && !(card.LimitedUses && card.RemainingUses == 1) {
			status.manaSources++
		}
	}
	return status
}

func (a *Aluren) Name() string { return AlurenName }

func (a *Aluren) DefaultDecklist() *game.Decklist {
	return mustParseDecklist(alurenDecklist)
}

func (a *Aluren) Cleanup() {}

func (a *Aluren) GameStatus(g *game.Game) game.Status {
	return game.DefaultGameStatus(g)
}

func (a *Aluren) IsKeepableHand(g *game.Game, mulligans int) bool {
	if mulligans >= 3 {
		return true
	}

	hand := a.status(g, game.ZoneHand)

	if hand.lands == 0 {
		return false
	}
	if hand.manaSources >= 6 {
		return false
	}
	// One landers with at most one extra mana source get thrown back too.
	if hand.lands == 1 && hand.manaSources <= 2 {
		return false
	}

	// The namesake with a harpy or a draw engine is always good enough.
	if hand.alurens >= 1 &&
		(hand.cavernHarpies >= 1 || hand.ravenFamiliars >= 1 || hand.wirewoodSavages >= 1) {
		return true
	}

	// After a mulligan any hand with the namesake will do.
	if hand.alurens >= 1 && mulligans > 0 {
		return true
	}

	return false
}

func (a *Aluren) SelectBest(g *game.Game, groups map[string][]*game.Card) *game.Card {
	status := a.status(g, game.ZoneHand, game.ZoneBattlefield)
	battlefield := a.status(g, game.ZoneBattlefield)

	if battlefield.alurens >= 1 {
		if status.cavernHarpies == 0 {
			if card := game.FindNamed(groups, "Cavern Harpy"); card != nil {
				return card
			}
		}
		if status.soulWardens == 0 && status.wirewoodSavages == 0 && status.ravenFamiliars == 0 {
			for _, name := range []string{"Wirewood Savage", "Raven Familiar"} {
				if card := game.FindNamed(groups, name); card != nil {
					return card
				}
			}
		}
		if status.soulWardens == 0 {
			if card := game.FindNamed(groups, "Soul Warden"); card != nil {
				return card
			}
		}
		if status.maggotCarriers == 0 {
			if card := game.FindNamed(groups, "Maggot Carrier"); card != nil {
				return card
			}
		}
		if status.wirewoodSavages == 0 && status.ravenFamiliars == 0 {
			for _, name := range []string{"Wirewood Savage", "Raven Familiar"} {
				if card := game.FindNamed(groups, name); card != nil {
					return card
				}
			}
		}
		if card := game.FindNamed(groups, "Cloud of Faeries"); card != nil {
			return card
		}
	}

	if battlefield.alurens == 0 {
		if status.alurens == 0 {
			if card := game.FindNamed(groups, "Aluren"); card != nil {
				return card
			}
		}
		if status.manaSources < 4 {
			if g.AvailableLandDrops > 0 {
				var lands []*game.Card
				for _, copies := range groups {
					for _, card := range copies {
						if card.IsType(game.TypeLand) {
							lands = append(lands, card)
						}
					}
				}
				if len(lands) > 0 {
					game.SortByBestManaToPlay(lands)
					if card := game.FindNamed(groups, lands[len(lands)-1].Name); card != nil {
						return card
					}
				}
			}
			for _, name := range []string{"Birds of Paradise", "Wall of Roots"} {
				if card := game.FindNamed(groups, name); card != nil {
					return card
				}
			}
		}
		if status.cavernHarpies == 0 {
			if card := game.FindNamed(groups, "Cavern Harpy"); card != nil {
				return card
			}
		}
		if status.wirewoodSavages == 0 && status.ravenFamiliars == 0 {
			for _, name := range []string{"Raven Familiar", "Wirewood Savage"} {
				if card := game.FindNamed(groups, name); card != nil {
					return card
				}
			}
		}
		if status.soulWardens == 0 {
			if card := game.FindNamed(groups, "Soul Warden"); card != nil {
				return card
			}
		}
		if status.maggotCarriers == 0 {
			if card := game.FindNamed(groups, "Maggot Carrier"); card != nil {
				return card
			}
		}
	}

	for _, name := range []string{"Living Wish", "Intuition", "Impulse"} {
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

func (a *Aluren) SelectIntuition(g *game.Game) []*game.Card {
	found := a.SelectBest(g, game.GroupByName(g.ApplySearchFilter(nil)))
	if found == nil {
		// Empty library.
		return nil
	}

	cards := make([]*game.Card, 0, 3)

	var priority []string
	switch {
	case found.Name == "Aluren":
		// Grab three copies and let the graveyard eat the extras.
		priority = []string{"Aluren"}
	case found.Name == "Cavern Harpy":
		priority = []string{"Cavern Harpy", "Unearth"}
	case found.Name == "Wirewood Savage" || found.Name == "Raven Familiar":
		priority = []string{"Wirewood Savage", "Raven Familiar"}
	case found.Name == "Birds of Paradise":
		priority = []string{"Birds of Paradise", "Wall of Roots", "City of Brass", "Gemstone Mine"}
	case found.IsType(game.TypeLand):
		priority = []string{"City of Brass", "Gemstone Mine", "Llanowar Wastes", "Forest"}
	case found.IsType(game.TypeCreature):
		found.Zone = game.ZoneOutside
		cards = append(cards, found)
		priority = []string{"Unearth", "Raven Familiar", "Soul Warden", "Wirewood Savage"}
	default:
		// Never pile for Living Wish or the game can become unwinnable,
		// and more copies of Intuition do nothing. Grab value instead.
		priority = []string{"Unearth", "Raven Familiar", "Soul Warden", "Wirewood Savage", "Impulse"}
	}

	cards = append(cards, game.FindNWithPriority(g, 3-len(cards), priority)...)
	return cards
}

func (a *Aluren) DiscardToHandSize(g *game.Game, handSize int) []*game.Card {
	var lands, alurens, cavernHarpies, drawEngines, tutors, wincons, manaDorks, others []*game.Card

	alurenOnBattlefield := false
	for _, card := range g.Battlefield() {
		if card.Name == "Aluren" {
			alurenOnBattlefield = true
			break
		}
	}

	for _, card := range g.Hand() {
		switch {
		case card.IsType(game.TypeLand):
			lands = append(lands, card)
		case card.Name == "Aluren":
			alurens = append(alurens, card)
		case card.Name == "Cavern Harpy":
			cavernHarpies = append(cavernHarpies, card)
		case card.Name == "Wirewood Savage" || card.Name == "Raven Familiar":
			drawEngines = append(drawEngines, card)
		case card.Name == "Living Wish" || card.Name == "Intuition":
			tutors = append(tutors, card)
		case card.Name == "Maggot Carrier" || card.Name == "Soul Warden":
			wincons = append(wincons, card)
		case alurenOnBattlefield && card.Name == "Unearth":
			wincons = append(wincons, card)
		case card.IsManaDork():
			manaDorks = append(manaDorks, card)
		default:
			others = append(others, card)
		}
	}

	game.SortByBestManaToPlay(lands)

	ordered := make([]*game.Card, 0, len(g.Hand()))

	// Keep a balanced mix of lands and combo pieces first, preferring
	// the lands that make the most colors.
	landIdx := len(lands)
	if !alurenOnBattlefield {
		for i := 0; i < 2 && landIdx > 0; i++ {
			landIdx--
			ordered = append(ordered, lands[landIdx])
		}
	}

	alurenIdx := 0
	if !alurenOnBattlefield && alurenIdx < len(alurens) {
		ordered = append(ordered, alurens[alurenIdx])
		alurenIdx++
	}

	ordered = append(ordered, wincons...)

	harpyIdx := 0
	if harpyIdx < len(cavernHarpies) {
		ordered = append(ordered, cavernHarpies[harpyIdx])
		harpyIdx++
	}

	engineIdx := 0
	if !alurenOnBattlefield && engineIdx < len(drawEngines) {
		ordered = append(ordered, drawEngines[engineIdx])
		engineIdx++
	}

	ordered = append(ordered, tutors...)

	// Mana dorks beat extra lands for quick kills.
	ordered = append(ordered, manaDorks...)

	for i := landIdx - 1; i >= 0; i-- {
		ordered = append(ordered, lands[i])
	}
	ordered = append(ordered, drawEngines[engineIdx:]...)
	ordered = append(ordered, others...)
	ordered = append(ordered, cavernHarpies[harpyIdx:]...)
	ordered = append(ordered, alurens[alurenIdx:]...)

	if len(ordered) <= handSize {
		return nil
	}
	return ordered[handSize:]
}

func (a *Aluren) TakeGameAction(g *game.Game) bool {
	if game.PlayBestLand(a, g) {
		return true
	}

	battlefield := a.status(g, game.ZoneBattlefield)
	hand := a.status(g, game.ZoneHand)

	if battlefield.alurens == 0 {
		castable := g.FindCastable()

		if hand.alurens == 0 {
			for _, name := range []string{
				"Aluren",
				"Intuition",
				"Living Wish",
				"Impulse",
				"Soul Warden",
				"Maggot Carrier",
				"Cloud of Faeries",
				"Raven Familiar",
				"Wirewood Savage",
				"Cavern Harpy",
			} {
				if game.CastNamed(a, g, castable, name) {
					return true
				}
			}
			return game.CastBestManaProducer(a, g)
		}

		if game.CastNamed(a, g, castable, "Aluren") {
			return true
		}
		if game.CastBestManaProducer(a, g) {
			return true
		}
		for _, name := range []string{
			"Intuition",
			"Living Wish",
			"Impulse",
			"Soul Warden",
			"Maggot Carrier",
			"Cloud of Faeries",
			"Raven Familiar",
			"Wirewood Savage",
			"Cavern Harpy",
		} {
			if game.CastNamed(a, g, castable, name) {
				return true
			}
		}
		return false
	}

	// Return any harpy sitting on the battlefield back to hand so it can
	// loop again.
	for _, card := range g.Battlefield() {
		if card.Name == "Cavern Harpy" {
			card.Zone = game.ZoneHand
			g.TakeDamage(1)
			return true
		}
	}

	if game.CastBestManaProducer(a, g) {
		return true
	}

	castable := g.FindCastable()

	haveHarpy := hand.cavernHarpies+battlefield.cavernHarpies > 0
	haveWarden := hand.soulWardens+battlefield.soulWardens > 0
	haveEngine := hand.wirewoodSavages+battlefield.wirewoodSavages+
		hand.ravenFamiliars+battlefield.ravenFamiliars > 0

	priority := []string{"Soul Warden", "Maggot Carrier", "Wirewood Savage", "Living Wish"}
	if !(haveHarpy && haveWarden && haveEngine) {
		priority = append(priority, "Intuition")
	}
	for _, name := range priority {
		if game.CastNamed(a, g, castable, name) {
			return true
		}
	}

	// Only chain familiars while there is library left to pass the turn.
	if g.LibrarySize() > 1 && game.CastNamed(a, g, castable, "Raven Familiar") {
		return true
	}

	landCount := 0
	for _, card := range g.Battlefield() {
		if card.IsType(game.TypeLand) {
			landCount++
		}
	}

	if hand.cloudOfFaeries >= 1 && hand.cavernHarpies >= 1 &&
		landCount > 0 && g.FloatingMana.Total() < 5 {
		// Mana at the cost of life, or infinite with a warden out.
		g.FloatMana()

		// Refresh so the floating mana is seen by the payment search.
		castable = g.FindCastable()
		if game.CastNamed(a, g, castable, "Cloud of Faeries") {
			return true
		}
	}

	// Maybe some combo pieces were discarded along the way.
	graveyard := a.status(g, game.ZoneGraveyard)
	if graveyard.maggotCarriers >= 1 || graveyard.soulWardens >= 1 ||
		graveyard.wirewoodSavages >= 1 || graveyard.ravenFamiliars >= 1 ||
		graveyard.cloudOfFaeries >= 1 || graveyard.cavernHarpies >= 1 {
		if game.CastNamed(a, g, castable, "Unearth") {
			return true
		}
	}

	if g.LibrarySize() <= 1 && hand.maggotCarriers == 0 && battlefield.maggotCarriers == 0 {
		// Out of gas, pass the turn.
		return false
	}

	somethingToBounce := battlefield.maggotCarriers > 0 ||
		battlefield.cloudOfFaeries > 0 ||
		battlefield.ravenFamiliars > 0

	if hand.cavernHarpies >= 1 && (somethingToBounce || battlefield.wirewoodSavages > 0) {
		if game.CastNamed(a, g, castable, "Cavern Harpy") {
			return true
		}
	}

	return false
}
