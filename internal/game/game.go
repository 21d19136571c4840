package game

import (
	"fmt"
	"math/rand"
	"strings"

	"go.uber.org/zap"

	"github.com/premodern/goldfisher/internal/game/mana"
)

// Outcome is the final result of a game.
type Outcome string

const (
	OutcomeWin  Outcome = "WIN"
	OutcomeLose Outcome = "LOSE"
	OutcomeDraw Outcome = "DRAW"
)

// Status reports whether a game has finished, and how.
type Status struct {
	Finished bool
	Outcome  Outcome
}

// Result is the outcome of one completed game.
type Result struct {
	Outcome   Outcome `json:"outcome"`
	Turn      int     `json:"turn"`
	Mulligans int     `json:"mulligans"`
	Events    []Event `json:"events,omitempty"`
}

// Payment is a resolved way to pay for a spell: the sources to tap and
// the floating mana left afterwards.
type Payment struct {
	Sources  []*Card
	Floating mana.Pool
}

// Castable pairs a castable card with a valid payment for it.
type Castable struct {
	Card    *Card
	Payment *Payment
}

// Game holds the full state of one goldfish game: a single player
// racing a passive opponent who only draws cards.
type Game struct {
	Turn               int
	LifeTotal          int
	DamageDealt        int
	OpponentLibrary    int
	AvailableLandDrops int
	Storm              int
	MulliganCount      int
	IsFirstPlayer      bool
	FloatingMana       mana.Pool
	TurnsToSkip        int

	objects  []*Card
	deck     *Deck
	step     Step
	rng      *rand.Rand
	log      *zap.Logger
	events   *EventLog
	finished bool
	outcome  Outcome
}

// New creates a game from the decklist with its own seeded random
// stream. Maindeck cards start in the library, sideboard cards outside
// the game.
func New(decklist *Decklist, seed int64, log *zap.Logger) (*Game, error) {
	if log == nil {
		log = zap.NewNop()
	}
	rng := rand.New(rand.NewSource(seed))

	g := &Game{
		Turn:               0,
		LifeTotal:          20,
		OpponentLibrary:    60,
		AvailableLandDrops: 1,
		IsFirstPlayer:      true,
		FloatingMana:       mana.NewPool(),
		step:               StepNotStarted,
		rng:                rng,
		log:                log,
		events:             NewEventLog(log),
	}

	deck := &Deck{rng: rng}
	for _, entry := range decklist.Maindeck {
		for i := 0; i < entry.Count; i++ {
			card, err := NewCard(entry.Name)
			if err != nil {
				return nil, fmt.Errorf("maindeck: %w", err)
			}
			card.ID = len(g.objects)
			card.Zone = ZoneLibrary
			g.objects = append(g.objects, card)
			deck.library = append(deck.library, card)
		}
	}
	for _, entry := range decklist.Sideboard {
		for i := 0; i < entry.Count; i++ {
			card, err := NewCard(entry.Name)
			if err != nil {
				return nil, fmt.Errorf("sideboard: %w", err)
			}
			card.ID = len(g.objects)
			card.Zone = ZoneOutside
			g.objects = append(g.objects, card)
			deck.sideboard = append(deck.sideboard, card)
		}
	}

	deck.Shuffle()
	g.deck = deck
	return g, nil
}

// Objects returns every card in the game, including the sideboard.
func (g *Game) Objects() []*Card {
	return g.objects
}

// InZone returns the cards currently in the given zone.
func (g *Game) InZone(zone Zone) []*Card {
	var cards []*Card
	for _, card := range g.objects {
		if card.Zone == zone {
			cards = append(cards, card)
		}
	}
	return cards
}

// Hand returns the cards in hand.
func (g *Game) Hand() []*Card { return g.InZone(ZoneHand) }

// Battlefield returns the cards on the battlefield.
func (g *Game) Battlefield() []*Card { return g.InZone(ZoneBattlefield) }

// LibrarySize returns the number of cards left in the library.
func (g *Game) LibrarySize() int { return g.deck.Len() }

// SideboardCards returns the cards still in the sideboard.
func (g *Game) SideboardCards() []*Card { return g.deck.SideboardCards() }

// Events returns the game's action log so far.
func (g *Game) Events() []Event { return g.events.Events() }

// EngineStatus reports terminal conditions the engine itself tracks,
// such as drawing from an empty library.
func (g *Game) EngineStatus() Status {
	return Status{Finished: g.finished, Outcome: g.outcome}
}

func (g *Game) markFinished(outcome Outcome) {
	if g.finished {
		return
	}
	g.finished = true
	g.outcome = outcome
	g.step = StepFinished
	g.events.Record(Event{
		Turn: g.Turn, Kind: EventGameOver, Detail: string(outcome),
	})
}

// Run plays the game to completion under the strategy and returns the
// result.
func (g *Game) Run(s Strategy) Result {
	g.findStartingHand(s)

	for !g.finished {
		g.beginTurn()

		if g.TurnsToSkip > 0 {
			g.TurnsToSkip--
			g.events.Record(Event{Turn: g.Turn, Kind: EventSkipTurn})
			g.cleanup(s)
			continue
		}

		g.untap()

		g.step = StepDraw
		g.drawCard()
		if g.finished {
			break
		}

		g.step = StepActions
		g.takeGameActions(s)
		if g.finished {
			break
		}

		g.step = StepCleanup
		g.cleanup(s)
	}

	return Result{
		Outcome:   g.outcome,
		Turn:      g.Turn,
		Mulligans: g.MulliganCount,
		Events:    g.events.Events(),
	}
}

func (g *Game) beginTurn() {
	g.step = StepBeginTurn
	g.AvailableLandDrops = 1
	g.Storm = 0
	g.Turn++
	g.events.Record(Event{Turn: g.Turn, Kind: EventBeginTurn})
}

func (g *Game) untap() {
	g.step = StepUntap
	for _, card := range g.objects {
		if card.Zone == ZoneBattlefield {
			card.SummoningSick = false
			card.Tapped = false
		}
	}
}

// drawCard draws one card, honoring the first player's skipped first
// draw. Drawing from an empty library loses the game.
func (g *Game) drawCard() {
	if g.Turn == 1 && g.IsFirstPlayer {
		return
	}
	g.forceDraw()
}

func (g *Game) forceDraw() {
	card := g.deck.Draw()
	if card == nil {
		g.markFinished(OutcomeLose)
		return
	}
	card.Zone = ZoneHand
	g.events.Record(Event{
		Turn: g.Turn, Kind: EventDrawCard, Card: card.Name,
		Detail: fmt.Sprintf("%d cards remaining", g.deck.Len()),
	})
}

// DrawN draws cards off the top. Used by effects; an empty library
// loses the game regardless of whose draw rule applies.
func (g *Game) DrawN(amount int) {
	for i := 0; i < amount && !g.finished; i++ {
		g.forceDraw()
	}
}

func (g *Game) takeGameActions(s Strategy) {
	for {
		acted := s.TakeGameAction(g)
		if st := s.GameStatus(g); st.Finished {
			g.markFinished(st.Outcome)
			return
		}
		if g.finished || !acted {
			return
		}
	}
}

func (g *Game) cleanup(s Strategy) {
	for _, card := range s.DiscardToHandSize(g, 7) {
		g.Discard(card)
	}

	g.FloatingMana = mana.NewPool()
	s.Cleanup()

	// The opponent takes a turn and draws from a possibly empty library.
	g.OpponentLibrary--
	if g.OpponentLibrary < 0 {
		g.markFinished(OutcomeWin)
	}
}

func (g *Game) findStartingHand(s Strategy) {
	g.step = StepMulligan

	// The opponent draws an opening hand too.
	g.OpponentLibrary -= 7

	for {
		g.DrawN(7)

		// A hand of four cards is always kept, whatever the strategy says.
		if s.IsKeepableHand(g, g.MulliganCount) || g.MulliganCount >= 3 {
			keep := 7 - g.MulliganCount
			g.events.Record(Event{
				Turn: g.Turn, Kind: EventKeepHand,
				Detail: fmt.Sprintf("keeping %d cards", keep),
			})

			bottomed := s.DiscardToHandSize(g, keep)
			for _, card := range bottomed {
				card.Zone = ZoneLibrary
				g.deck.PutBottom(card)
			}
			return
		}

		for _, card := range g.Hand() {
			card.Zone = ZoneLibrary
			g.deck.PutBottom(card)
		}
		g.deck.Shuffle()
		g.MulliganCount++
		g.events.Record(Event{
			Turn: g.Turn, Kind: EventMulligan,
			Detail: fmt.Sprintf("mulligan number %d", g.MulliganCount),
		})
	}
}

// FindCastable returns every nonland card in hand that can be paid for
// right now, each with a valid payment.
func (g *Game) FindCastable() []Castable {
	sources := g.paymentSources()
	reductions := g.activeReductions()

	sourceByID := make(map[int]*Card, len(sources))
	descriptors := make([]mana.Source, len(sources))
	for i, card := range sources {
		sourceByID[card.ID] = card
		descriptors[i] = mana.Source{ID: card.ID, Produces: card.ProducedMana}
	}

	var castable []Castable
	for _, card := range g.objects {
		if card.Zone != ZoneHand || card.IsType(TypeLand) {
			continue
		}

		payment := mana.FindPayment(mana.Request{
			Cost:       card.Cost,
			Creature:   card.IsType(TypeCreature),
			SelfID:     card.ID,
			Sources:    descriptors,
			Floating:   g.FloatingMana,
			Reductions: reductions,
		})
		if payment == nil {
			continue
		}

		used := make([]*Card, len(payment.Used))
		for i, id := range payment.Used {
			used[i] = sourceByID[id]
		}
		castable = append(castable, Castable{
			Card:    card,
			Payment: &Payment{Sources: used, Floating: payment.Floating},
		})
	}
	return castable
}

// paymentSources returns the usable mana sources in payment order:
// untapped producers on the battlefield, plus spendable cards from
// hand like Elvish Spirit Guide.
func (g *Game) paymentSources() []*Card {
	var sources []*Card
	for _, card := range g.objects {
		if card.Zone == ZoneBattlefield &&
			card.IsManaSource() &&
			!card.SummoningSick &&
			!card.Tapped &&
			card.Name != "Elvish Spirit Guide" {
			sources = append(sources, card)
			continue
		}
		if card.Name == "Elvish Spirit Guide" && card.Zone == ZoneHand {
			sources = append(sources, card)
		}
	}
	SortByBestManaToUse(sources)
	return sources
}

func (g *Game) activeReductions() []mana.Reduction {
	var reductions []mana.Reduction
	for _, card := range g.objects {
		if card.Zone == ZoneBattlefield && card.CostReduction != nil {
			reductions = append(reductions, *card.CostReduction)
		}
	}
	return reductions
}

// ManaSourcesCount counts mana sources on the battlefield, tapped or not.
func (g *Game) ManaSourcesCount() int {
	count := 0
	for _, card := range g.objects {
		if card.Zone == ZoneBattlefield && card.IsManaSource() {
			count++
		}
	}
	return count
}

// PlayLand plays the land if a land drop is available, resolving any
// on-play effect such as fetching.
func (g *Game) PlayLand(s Strategy, land *Card) {
	if g.AvailableLandDrops == 0 {
		return
	}
	g.AvailableLandDrops--
	land.Zone = ZoneBattlefield
	g.events.Record(Event{Turn: g.Turn, Kind: EventPlayLand, Card: land.Name})
	g.resolveEffects(land, s)
}

// CastSpell casts the card, paying with the given payment. The payment
// must be fresh: it is trusted to still be valid.
func (g *Game) CastSpell(s Strategy, card *Card, payment *Payment) {
	g.Storm++

	detail := ""
	if len(payment.Sources) > 0 {
		names := make([]string, len(payment.Sources))
		for i, src := range payment.Sources {
			names[i] = fmt.Sprintf("%q", src.Name)
		}
		detail = "with mana sources: " + strings.Join(names, ", ")
	}
	g.events.Record(Event{
		Turn: g.Turn, Kind: EventCastSpell, Card: card.Name, Detail: detail,
	})

	if card.IsType(TypeSorcery) || card.IsType(TypeInstant) {
		card.Zone = ZoneGraveyard
	} else {
		card.Zone = ZoneBattlefield
	}

	if card.IsType(TypeCreature) {
		card.SummoningSick = !card.Haste

		if card.HasSubType(SubTypeBeast) {
			for range g.namedOnBattlefield("Wirewood Savage") {
				// Leave one card so the turn can be passed.
				if g.deck.Len() > 1 {
					g.forceDraw()
				}
			}
		}

		for range g.namedOnBattlefield("Soul Warden") {
			g.TakeDamage(-1)
		}
	}

	for _, source := range payment.Sources {
		g.spendSource(source)
	}

	g.FloatingMana = payment.Floating
	g.resolveEffects(card, s)
}

func (g *Game) namedOnBattlefield(name string) []*Card {
	var cards []*Card
	for _, card := range g.objects {
		if card.Zone == ZoneBattlefield && card.Name == name {
			cards = append(cards, card)
		}
	}
	return cards
}

// spendSource taps the source or, for limited-use sources on their last
// use, moves it to its terminal zone.
func (g *Game) spendSource(source *Card) {
	if !source.LimitedUses {
		source.Tapped = true
		return
	}
	if source.RemainingUses > 1 {
		source.RemainingUses--
		source.Tapped = true
		return
	}
	source.RemainingUses = 0
	if source.Name == "Elvish Spirit Guide" {
		source.Zone = ZoneExile
	} else {
		source.Zone = ZoneGraveyard
	}
}

// Discard puts a card from hand into the graveyard.
func (g *Game) Discard(card *Card) {
	card.Zone = ZoneGraveyard
	g.events.Record(Event{Turn: g.Turn, Kind: EventDiscard, Card: card.Name})
}

// TakeDamage deals damage to the player; negative amounts are life gain.
func (g *Game) TakeDamage(amount int) {
	g.LifeTotal -= amount
}

// DealDamage deals damage to the opponent.
func (g *Game) DealDamage(amount int) {
	g.DamageDealt += amount
}

// DamageEach deals damage to both players at once.
func (g *Game) DamageEach(amount int) {
	g.LifeTotal -= amount
	g.DamageDealt += amount
	g.events.Record(Event{
		Turn: g.Turn, Kind: EventDamage,
		Detail: fmt.Sprintf("%d to each player", amount),
	})
}

// Mill puts cards from the opponent's library into their graveyard.
func (g *Game) Mill(amount int) {
	g.OpponentLibrary -= amount
	g.events.Record(Event{
		Turn: g.Turn, Kind: EventMill,
		Detail: fmt.Sprintf("%d cards, %d remaining", amount, g.OpponentLibrary),
	})
}

// FloatMana taps every untapped land for mana, spreading across colors:
// up to two of each color first, then whatever each land can make.
func (g *Game) FloatMana() {
	priority := []mana.Color{mana.Green, mana.Blue, mana.Black, mana.White, mana.Red}

	for _, land := range g.objects {
		if land.Zone != ZoneBattlefield || !land.IsType(TypeLand) || land.Tapped {
			continue
		}

		used := false
		for _, color := range priority {
			if g.FloatingMana[color] >= 2 {
				continue
			}
			if amount := land.ProducedMana[color]; amount > 0 {
				g.FloatingMana.Add(color, amount)
				g.events.Record(Event{
					Turn: g.Turn, Kind: EventFloatMana, Card: land.Name,
					Detail: fmt.Sprintf("%d %s", amount, color),
				})
				used = true
				break
			}
		}
		if !used {
			for _, color := range append(mana.Colors[:], mana.Colorless) {
				if amount := land.ProducedMana[color]; amount > 0 {
					g.FloatingMana.Add(color, amount)
					g.events.Record(Event{
						Turn: g.Turn, Kind: EventFloatMana, Card: land.Name,
						Detail: fmt.Sprintf("%d %s", amount, color),
					})
					used = true
					break
				}
			}
		}

		land.Tapped = used
	}
}

// ApplySearchFilter returns the cards a search with the filter may
// find. A nil filter searches the whole library.
func (g *Game) ApplySearchFilter(filter *SearchFilter) []*Card {
	if filter == nil {
		return g.InZone(ZoneLibrary)
	}

	var found []*Card
	switch filter.Kind {
	case FilterAnything:
		return g.InZone(ZoneLibrary)
	case FilterCreature:
		for _, card := range g.InZone(ZoneLibrary) {
			if card.IsType(TypeCreature) {
				found = append(found, card)
			}
		}
	case FilterGreenCreature:
		for _, card := range g.InZone(ZoneLibrary) {
			if card.IsType(TypeCreature) && card.IsColor(mana.Green) {
				found = append(found, card)
			}
		}
	case FilterEnchantmentArtifact:
		for _, card := range g.InZone(ZoneLibrary) {
			if card.IsType(TypeEnchantment) || card.IsType(TypeArtifact) {
				found = append(found, card)
			}
		}
	case FilterBlueInstant:
		for _, card := range g.InZone(ZoneLibrary) {
			if card.IsType(TypeInstant) && card.IsColor(mana.Blue) {
				found = append(found, card)
			}
		}
	case FilterWish:
		for _, card := range g.deck.SideboardCards() {
			for _, t := range filter.Types {
				if card.IsType(t) {
					found = append(found, card)
					break
				}
			}
		}
	case FilterLand:
		for _, card := range g.InZone(ZoneLibrary) {
			if !card.IsType(TypeLand) {
				continue
			}
			for _, land := range filter.Lands {
				if card.HasSubType(land) {
					found = append(found, card)
					break
				}
			}
		}
	}
	return found
}
