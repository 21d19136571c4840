package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/premodern/goldfisher/internal/game/mana"
)

// stubStrategy is a minimal pilot for engine tests. Individual decisions
// can be overridden per test through the function fields.
type stubStrategy struct {
	keep       func(g *Game, mulligans int) bool
	action     func(g *Game) bool
	selectBest func(g *Game, groups map[string][]*Card) *Card
}

func (s *stubStrategy) Name() string               { return "stub" }
func (s *stubStrategy) DefaultDecklist() *Decklist { return &Decklist{} }
func (s *stubStrategy) Cleanup()                   {}
func (s *stubStrategy) GameStatus(g *Game) Status  { return DefaultGameStatus(g) }

func (s *stubStrategy) IsKeepableHand(g *Game, mulligans int) bool {
	if s.keep != nil {
		return s.keep(g, mulligans)
	}
	return true
}

func (s *stubStrategy) TakeGameAction(g *Game) bool {
	if s.action != nil {
		return s.action(g)
	}
	return false
}

func (s *stubStrategy) SelectBest(g *Game, groups map[string][]*Card) *Card {
	if s.selectBest != nil {
		return s.selectBest(g, groups)
	}
	for _, copies := range groups {
		if len(copies) > 0 {
			return copies[0]
		}
	}
	return nil
}

func (s *stubStrategy) SelectIntuition(g *Game) []*Card {
	return DefaultSelectIntuition(s, g)
}

func (s *stubStrategy) DiscardToHandSize(g *Game, handSize int) []*Card {
	return DefaultDiscardToHandSize(s, g, handSize)
}

func newTestGame(t *testing.T, decklist string) *Game {
	t.Helper()
	list, err := ParseDecklist(decklist)
	require.NoError(t, err)
	g, err := New(list, 42, nil)
	require.NoError(t, err)
	return g
}

// moveTo places one copy of the named card into the zone, keeping the
// deck consistent when the card leaves the library.
func moveTo(t *testing.T, g *Game, name string, zone Zone) *Card {
	t.Helper()
	for _, card := range g.objects {
		if card.Name == name && card.Zone != zone {
			if card.Zone == ZoneLibrary {
				g.deck.Remove(card)
			}
			card.Zone = zone
			return card
		}
	}
	t.Fatalf("no copy of %q available to move to %s", name, zone)
	return nil
}

func TestPaymentSourcesOrdering(t *testing.T) {
	g := newTestGame(t, `1 Forest
1 Elvish Spirit Guide
1 Llanowar Wastes
1 City of Brass
1 Gemstone Mine
1 Lotus Petal
1 Llanowar Elves`)

	moveTo(t, g, "Forest", ZoneBattlefield)
	moveTo(t, g, "Llanowar Wastes", ZoneBattlefield)
	moveTo(t, g, "City of Brass", ZoneBattlefield)
	moveTo(t, g, "Gemstone Mine", ZoneBattlefield)
	moveTo(t, g, "Lotus Petal", ZoneBattlefield)
	moveTo(t, g, "Elvish Spirit Guide", ZoneHand)

	sources := g.paymentSources()
	names := make([]string, len(sources))
	for i, card := range sources {
		names[i] = card.Name
	}

	// Narrow sources come first so the flexible ones are saved, and
	// limited-use sources sort after unlimited ones of equal flexibility.
	assert.Equal(t, []string{
		"Forest",
		"Elvish Spirit Guide",
		"Llanowar Wastes",
		"City of Brass",
		"Gemstone Mine",
		"Lotus Petal",
	}, names)
}

func TestFindCastableExcludesLandsAndUnpayable(t *testing.T) {
	g := newTestGame(t, `1 Forest
1 Llanowar Elves
1 Aluren`)

	moveTo(t, g, "Forest", ZoneHand)
	moveTo(t, g, "Llanowar Elves", ZoneHand)
	moveTo(t, g, "Aluren", ZoneHand)

	assert.Empty(t, g.FindCastable())

	moveTo(t, g, "Forest", ZoneBattlefield)
	castable := g.FindCastable()
	require.Len(t, castable, 1)
	assert.Equal(t, "Llanowar Elves", castable[0].Card.Name)
	require.Len(t, castable[0].Payment.Sources, 1)
	assert.Equal(t, "Forest", castable[0].Payment.Sources[0].Name)
}

func TestCastSpellStormAndZones(t *testing.T) {
	g := newTestGame(t, `1 Island
1 Words of Wisdom
3 Forest`)
	s := &stubStrategy{}

	island := moveTo(t, g, "Island", ZoneBattlefield)
	spell := moveTo(t, g, "Words of Wisdom", ZoneHand)

	g.CastSpell(s, spell, &Payment{Sources: []*Card{island}, Floating: mana.NewPool()})

	assert.Equal(t, 1, g.Storm)
	assert.Equal(t, ZoneGraveyard, spell.Zone)
	assert.True(t, island.Tapped)
	// Words of Wisdom draws two and gives the opponent a card.
	assert.Len(t, g.Hand(), 2)
	assert.Equal(t, 59, g.OpponentLibrary)
}

func TestSpendSourceTerminalZones(t *testing.T) {
	g := newTestGame(t, `1 Lotus Petal
1 Elvish Spirit Guide
1 Gemstone Mine
1 Forest`)

	petal := moveTo(t, g, "Lotus Petal", ZoneBattlefield)
	guide := moveTo(t, g, "Elvish Spirit Guide", ZoneHand)
	mine := moveTo(t, g, "Gemstone Mine", ZoneBattlefield)

	g.spendSource(petal)
	assert.Equal(t, ZoneGraveyard, petal.Zone)

	g.spendSource(guide)
	assert.Equal(t, ZoneExile, guide.Zone)

	g.spendSource(mine)
	assert.Equal(t, ZoneBattlefield, mine.Zone)
	assert.True(t, mine.Tapped)
	assert.Equal(t, 2, mine.RemainingUses)
}

func TestCastCreatureSummoningSickness(t *testing.T) {
	g := newTestGame(t, `1 Llanowar Elves
1 Wall of Roots
2 Forest`)
	s := &stubStrategy{}

	elves := moveTo(t, g, "Llanowar Elves", ZoneHand)
	wall := moveTo(t, g, "Wall of Roots", ZoneHand)
	forest := moveTo(t, g, "Forest", ZoneBattlefield)
	second := moveTo(t, g, "Forest", ZoneBattlefield)

	g.CastSpell(s, elves, &Payment{Sources: []*Card{forest}, Floating: mana.NewPool()})
	assert.True(t, elves.SummoningSick)

	g.CastSpell(s, wall, &Payment{Sources: []*Card{second}, Floating: mana.NewPool()})
	assert.False(t, wall.SummoningSick, "defenders that tap without attacking are usable at once")
}

func TestWirewoodSavageDrawsOnBeast(t *testing.T) {
	g := newTestGame(t, `1 Wirewood Savage
1 Ravenous Baloth
10 Forest`)
	s := &stubStrategy{}

	moveTo(t, g, "Wirewood Savage", ZoneBattlefield)
	baloth := moveTo(t, g, "Ravenous Baloth", ZoneHand)

	g.CastSpell(s, baloth, &Payment{Floating: mana.NewPool()})

	assert.Len(t, g.Hand(), 1, "a beast arriving draws a card per savage")
	assert.Equal(t, 9, g.LibrarySize())
}

func TestSoulWardenGainsLife(t *testing.T) {
	g := newTestGame(t, `2 Soul Warden
1 Llanowar Elves
4 Forest`)
	s := &stubStrategy{}

	moveTo(t, g, "Soul Warden", ZoneBattlefield)
	moveTo(t, g, "Soul Warden", ZoneBattlefield)
	elves := moveTo(t, g, "Llanowar Elves", ZoneHand)

	g.CastSpell(s, elves, &Payment{Floating: mana.NewPool()})

	assert.Equal(t, 22, g.LifeTotal)
}

func TestDrawFromEmptyLibraryLoses(t *testing.T) {
	g := newTestGame(t, "3 Forest")

	g.DrawN(4)

	st := g.EngineStatus()
	assert.True(t, st.Finished)
	assert.Equal(t, OutcomeLose, st.Outcome)
}

func TestMulliganStopsAtFourCards(t *testing.T) {
	g := newTestGame(t, "60 Forest")
	s := &stubStrategy{
		keep: func(*Game, int) bool { return false },
	}

	g.findStartingHand(s)

	assert.Equal(t, 3, g.MulliganCount)
	assert.Len(t, g.Hand(), 4)
}

func TestKeptHandBottomsAfterMulligan(t *testing.T) {
	g := newTestGame(t, "60 Forest")
	s := &stubStrategy{
		keep: func(g *Game, mulligans int) bool {
			return mulligans >= 2
		},
	}

	g.findStartingHand(s)

	assert.Equal(t, 2, g.MulliganCount)
	assert.Len(t, g.Hand(), 5)
	assert.Equal(t, 55, g.LibrarySize())
}

func TestRunFinishesByDeckout(t *testing.T) {
	g := newTestGame(t, "60 Forest")
	s := &stubStrategy{}

	result := g.Run(s)

	assert.Equal(t, OutcomeWin, result.Outcome, "a passive game still decks the opponent first")
	assert.Greater(t, result.Turn, 0)
	assert.NotEmpty(t, result.Events)
}

func TestGameStatusStopsActions(t *testing.T) {
	g := newTestGame(t, "60 Forest")
	s := &stubStrategy{
		action: func(g *Game) bool {
			g.DealDamage(20)
			return true
		},
	}

	result := g.Run(s)

	assert.Equal(t, OutcomeWin, result.Outcome)
	assert.Equal(t, 1, result.Turn)
}

func TestSortByConvertedCost(t *testing.T) {
	g := newTestGame(t, `1 Aluren
1 Soul Warden
1 Impulse`)

	cards := []*Card{
		moveTo(t, g, "Aluren", ZoneHand),
		moveTo(t, g, "Impulse", ZoneHand),
		moveTo(t, g, "Soul Warden", ZoneHand),
	}

	SortByConvertedCost(cards)

	names := make([]string, len(cards))
	for i, card := range cards {
		names[i] = card.Name
	}
	assert.Equal(t, []string{"Soul Warden", "Impulse", "Aluren"}, names)
}

func TestTurnOneCreatureCastFromOpeningHand(t *testing.T) {
	list, err := ParseDecklist(`59 Forest
1 Llanowar Elves`)
	require.NoError(t, err)

	// Scan seeds for shuffles that deal the creature in the opening
	// hand; the turn one line must come together for every one of them.
	verified := 0
	for seed := int64(1); seed <= 50; seed++ {
		g, err := New(list, seed, nil)
		require.NoError(t, err)

		var s *stubStrategy
		s = &stubStrategy{
			action: func(g *Game) bool {
				if PlayBestLand(s, g) {
					return true
				}
				if CastNamed(s, g, g.FindCastable(), "Llanowar Elves") {
					// Stop the run right after the cast resolves.
					g.DealDamage(20)
					return true
				}
				return false
			},
		}

		result := g.Run(s)

		inOpeningHand := false
		for _, e := range result.Events {
			if e.Turn == 0 && e.Kind == EventDrawCard && e.Card == "Llanowar Elves" {
				inOpeningHand = true
				break
			}
		}
		if !inOpeningHand {
			continue
		}
		verified++

		require.Equal(t, 1, result.Turn, "seed %d: creature in opening hand must be cast on turn one", seed)
		require.Equal(t, OutcomeWin, result.Outcome)

		var elves *Card
		tappedLands := 0
		for _, card := range g.Battlefield() {
			if card.Name == "Llanowar Elves" {
				elves = card
			}
			if card.IsType(TypeLand) && card.Tapped {
				tappedLands++
			}
		}
		require.NotNil(t, elves, "seed %d", seed)
		assert.Equal(t, ZoneBattlefield, elves.Zone)
		assert.True(t, elves.SummoningSick, "a fresh creature cannot act yet")
		assert.Equal(t, 1, tappedLands, "the one-cost creature taps exactly one land")
	}

	require.Greater(t, verified, 0, "no seed dealt the creature in the opening hand")
}

func TestPlayLandConsumesDrop(t *testing.T) {
	g := newTestGame(t, `1 Forest
1 Island`)
	s := &stubStrategy{}

	forest := moveTo(t, g, "Forest", ZoneHand)
	island := moveTo(t, g, "Island", ZoneHand)

	g.PlayLand(s, forest)
	assert.Equal(t, ZoneBattlefield, forest.Zone)
	assert.Equal(t, 0, g.AvailableLandDrops)

	g.PlayLand(s, island)
	assert.Equal(t, ZoneHand, island.Zone, "no second land drop")
}

func TestTaplandArrivesTapped(t *testing.T) {
	g := newTestGame(t, "1 Hickory Woodlot")
	s := &stubStrategy{}

	woodlot := moveTo(t, g, "Hickory Woodlot", ZoneHand)
	g.PlayLand(s, woodlot)

	assert.Equal(t, ZoneBattlefield, woodlot.Zone)
	assert.True(t, woodlot.Tapped)
	assert.Equal(t, 2, woodlot.RemainingUses)
}

func TestFetchLandSacrificesToSearch(t *testing.T) {
	g := newTestGame(t, `1 Misty Rainforest
1 Forest
1 Island
1 Swamp`)
	s := &stubStrategy{}

	fetch := moveTo(t, g, "Misty Rainforest", ZoneHand)
	g.PlayLand(s, fetch)

	assert.Equal(t, ZoneGraveyard, fetch.Zone)
	assert.Len(t, g.Battlefield(), 1)
	found := g.Battlefield()[0]
	assert.True(t, found.HasSubType(SubTypeForest) || found.HasSubType(SubTypeIsland))
}

func TestFloatManaSpreadsColors(t *testing.T) {
	g := newTestGame(t, `3 Island
1 Forest`)

	moveTo(t, g, "Island", ZoneBattlefield)
	moveTo(t, g, "Island", ZoneBattlefield)
	moveTo(t, g, "Island", ZoneBattlefield)
	moveTo(t, g, "Forest", ZoneBattlefield)

	g.FloatMana()

	assert.Equal(t, 3, g.FloatingMana[mana.Blue])
	assert.Equal(t, 1, g.FloatingMana[mana.Green])
	for _, land := range g.Battlefield() {
		assert.True(t, land.Tapped)
	}
}

func TestUntapClearsSicknessAndTaps(t *testing.T) {
	g := newTestGame(t, `1 Forest
1 Llanowar Elves`)

	forest := moveTo(t, g, "Forest", ZoneBattlefield)
	forest.Tapped = true
	elves := moveTo(t, g, "Llanowar Elves", ZoneBattlefield)
	elves.SummoningSick = true

	g.untap()

	assert.False(t, forest.Tapped)
	assert.False(t, elves.SummoningSick)
}

func TestApplySearchFilterWishUsesSideboard(t *testing.T) {
	g := newTestGame(t, `4 Forest
Sideboard
1 Ravenous Baloth
1 Naturalize`)

	found := g.ApplySearchFilter(&SearchFilter{
		Kind:  FilterWish,
		Types: []CardType{TypeCreature},
	})

	require.Len(t, found, 1)
	assert.Equal(t, "Ravenous Baloth", found[0].Name)
}

func TestApplySearchFilterLandTypes(t *testing.T) {
	g := newTestGame(t, `1 Forest
1 Island
1 Tropical Island
1 Swamp`)

	found := g.ApplySearchFilter(&SearchFilter{
		Kind:  FilterLand,
		Lands: []SubType{SubTypeForest},
	})

	names := make(map[string]bool)
	for _, card := range found {
		names[card.Name] = true
	}
	assert.True(t, names["Forest"])
	assert.True(t, names["Tropical Island"])
	assert.False(t, names["Island"])
	assert.False(t, names["Swamp"])
}

func TestCostReductionOnBattlefield(t *testing.T) {
	g := newTestGame(t, `1 Helm of Awakening
1 Words of Wisdom
1 Island`)

	moveTo(t, g, "Helm of Awakening", ZoneBattlefield)
	moveTo(t, g, "Words of Wisdom", ZoneHand)
	moveTo(t, g, "Island", ZoneBattlefield)

	castable := g.FindCastable()
	require.Len(t, castable, 1, "a two mana cantrip costs one with the helm out")
	assert.Equal(t, "Words of Wisdom", castable[0].Card.Name)
}

func TestObjectConservationAfterRun(t *testing.T) {
	g := newTestGame(t, `56 Forest
4 Llanowar Elves
Sideboard
2 Naturalize`)
	s := &stubStrategy{}

	total := len(g.Objects())
	g.Run(s)

	assert.Equal(t, total, len(g.Objects()), "cards change zones but are never destroyed")
	inLibrary := len(g.InZone(ZoneLibrary))
	assert.Equal(t, inLibrary, g.LibrarySize())
}
