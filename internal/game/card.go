package game

import (
	"fmt"
	"math"
	"sort"

	"github.com/premodern/goldfisher/internal/game/mana"
)

// CardType indicates the category of a card.
type CardType int

const (
	TypeCreature CardType = iota
	TypeEnchantment
	TypeArtifact
	TypeSorcery
	TypeInstant
	TypeLand
)

var cardTypeNames = map[CardType]string{
	TypeCreature:    "CREATURE",
	TypeEnchantment: "ENCHANTMENT",
	TypeArtifact:    "ARTIFACT",
	TypeSorcery:     "SORCERY",
	TypeInstant:     "INSTANT",
	TypeLand:        "LAND",
}

func (t CardType) String() string {
	if name, ok := cardTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("CARD_TYPE_%d", int(t))
}

// SubType is a creature or land sub-type tag.
type SubType string

const (
	SubTypeHarpy SubType = "Harpy"
	SubTypeBeast SubType = "Beast"

	SubTypePlains   SubType = "Plains"
	SubTypeIsland   SubType = "Island"
	SubTypeSwamp    SubType = "Swamp"
	SubTypeMountain SubType = "Mountain"
	SubTypeForest   SubType = "Forest"
)

// FilterKind selects what a search effect may find.
type FilterKind int

const (
	FilterAnything FilterKind = iota
	FilterCreature
	FilterGreenCreature
	FilterEnchantmentArtifact
	FilterBlueInstant
	// FilterWish searches the sideboard instead of the library.
	FilterWish
	FilterLand
)

// SearchFilter narrows a search effect to matching cards.
type SearchFilter struct {
	Kind  FilterKind
	Types []CardType // FilterWish: allowed card types
	Lands []SubType  // FilterLand: allowed basic land types
}

// Card is one game object. All copies of a card are separate objects
// with their own zone and state.
type Card struct {
	ID       int
	Name     string
	Types    map[CardType]bool
	SubTypes map[SubType]bool
	Zone     Zone

	Cost         mana.Cost
	ProducedMana mana.Pool

	// LimitedUses marks sources that can only produce mana a fixed
	// number of times before hitting their terminal zone.
	LimitedUses   bool
	RemainingUses int

	SacOutlet     bool
	SummoningSick bool
	Tapped        bool
	Haste         bool

	AttachedTo    *Card
	OnResolve     *Effect
	CostReduction *mana.Reduction
}

// IsType reports whether the card has the given type tag.
func (c *Card) IsType(t CardType) bool {
	return c.Types[t]
}

// HasSubType reports whether the card has the given sub-type tag.
func (c *Card) HasSubType(s SubType) bool {
	return c.SubTypes[s]
}

// IsColor reports whether the card's cost includes the given color.
func (c *Card) IsColor(color mana.Color) bool {
	return c.Cost[color] > 0
}

// ConvertedCost returns the card's converted mana cost.
func (c *Card) ConvertedCost() int {
	return c.Cost.Converted()
}

// IsManaSource reports whether the card can produce mana.
func (c *Card) IsManaSource() bool {
	return len(c.ProducedMana) > 0
}

// IsManaDork reports whether the card is a creature that produces mana.
func (c *Card) IsManaDork() bool {
	return c.IsType(TypeCreature) && c.IsManaSource()
}

func (c *Card) usesLeft() int {
	if !c.LimitedUses {
		return math.MaxInt
	}
	return c.RemainingUses
}

// SortByBestManaToPlay orders mana sources ascending by how good they
// are to put on the battlefield: the most flexible source with the most
// uses ends up last.
func SortByBestManaToPlay(cards []*Card) {
	sort.SliceStable(cards, func(i, j int) bool {
		a, b := cards[i], cards[j]
		if a.ProducedMana.ColorCount() == b.ProducedMana.ColorCount() {
			return a.usesLeft() < b.usesLeft()
		}
		return a.ProducedMana.ColorCount() < b.ProducedMana.ColorCount()
	})
}

// SortByBestManaToUse orders mana sources in payment order: narrow
// sources first so the flexible ones are saved, and within equally
// flexible sources the ones with limited uses last.
func SortByBestManaToUse(cards []*Card) {
	sort.SliceStable(cards, func(i, j int) bool {
		a, b := cards[i], cards[j]
		if a.ProducedMana.ColorCount() == b.ProducedMana.ColorCount() {
			return a.usesLeft() > b.usesLeft()
		}
		return a.ProducedMana.ColorCount() < b.ProducedMana.ColorCount()
	})
}

// SortByConvertedCost orders cards ascending by converted mana cost.
func SortByConvertedCost(cards []*Card) {
	sort.SliceStable(cards, func(i, j int) bool {
		return cards[i].ConvertedCost() < cards[j].ConvertedCost()
	})
}

// GroupByName buckets cards under their names.
func GroupByName(cards []*Card) map[string][]*Card {
	groups := make(map[string][]*Card)
	for _, card := range cards {
		groups[card.Name] = append(groups[card.Name], card)
	}
	return groups
}

// FindNamed returns one copy of the named card from the groups, or nil.
func FindNamed(groups map[string][]*Card, name string) *Card {
	if copies := groups[name]; len(copies) > 0 {
		return copies[0]
	}
	return nil
}
