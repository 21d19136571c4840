package game

import (
	"errors"
	"fmt"

	"github.com/premodern/goldfisher/internal/game/mana"
)

// ErrUnknownCard is returned when a decklist names a card the catalog
// does not implement.
var ErrUnknownCard = errors.New("unknown card")

func types(ts ...CardType) map[CardType]bool {
	set := make(map[CardType]bool, len(ts))
	for _, t := range ts {
		set[t] = true
	}
	return set
}

func subTypes(ss ...SubType) map[SubType]bool {
	set := make(map[SubType]bool, len(ss))
	for _, s := range ss {
		set[s] = true
	}
	return set
}

func limited(uses int) func(*Card) {
	return func(c *Card) {
		c.LimitedUses = true
		c.RemainingUses = uses
	}
}

// NewCard builds a fresh copy of the named card. Tapped, summoning sick
// and similar flags start in the card's printed state; all cards begin
// in the library zone.
func NewCard(name string) (*Card, error) {
	card := &Card{Name: name}

	switch name {
	// Mana creatures
	case "Llanowar Elves", "Fyndhorn Elves":
		card.Types = types(TypeCreature)
		card.Cost = mana.Cost{mana.Green: 1}
		card.ProducedMana = mana.Pool{mana.Green: 1}
	case "Birds of Paradise":
		card.Types = types(TypeCreature)
		card.Cost = mana.Cost{mana.Green: 1}
		card.ProducedMana = mana.Pool{
			mana.White: 1, mana.Blue: 1, mana.Black: 1, mana.Red: 1, mana.Green: 1,
		}
	case "Rofellos, Llanowar Emissary":
		card.Types = types(TypeCreature)
		card.Cost = mana.Cost{mana.Green: 2}
		card.ProducedMana = mana.Pool{mana.Green: 1}
	case "Wall of Roots":
		card.Types = types(TypeCreature)
		card.Cost = mana.Cost{mana.Green: 1, mana.Colorless: 1}
		card.ProducedMana = mana.Pool{mana.Green: 1}
		card.Haste = true
		limited(5)(card)
	case "Elvish Spirit Guide":
		card.Types = types(TypeCreature)
		card.Cost = mana.Cost{mana.Green: 1, mana.Colorless: 2}
		card.ProducedMana = mana.Pool{mana.Green: 1}
		limited(1)(card)
	case "Lotus Petal":
		card.Types = types(TypeArtifact)
		card.ProducedMana = mana.Pool{
			mana.White: 1, mana.Blue: 1, mana.Black: 1, mana.Red: 1, mana.Green: 1,
		}
		limited(1)(card)

	// Combo pieces and business spells
	case "Aluren":
		card.Types = types(TypeEnchantment)
		card.Cost = mana.Cost{mana.Green: 2, mana.Colorless: 2}
		card.CostReduction = &mana.Reduction{Kind: mana.FreeCreatures}
	case "Cavern Harpy":
		card.Types = types(TypeCreature)
		card.SubTypes = subTypes(SubTypeHarpy, SubTypeBeast)
		card.Cost = mana.Cost{mana.Blue: 1, mana.Black: 1}
		card.OnResolve = &Effect{Kind: EffectCavernHarpy}
	case "Cloud of Faeries":
		card.Types = types(TypeCreature)
		card.Cost = mana.Cost{mana.Blue: 1, mana.Colorless: 1}
		card.OnResolve = &Effect{Kind: EffectUntapLands, Amount: 2}
	case "Raven Familiar":
		card.Types = types(TypeCreature)
		card.Cost = mana.Cost{mana.Blue: 1, mana.Colorless: 2}
		card.OnResolve = &Effect{Kind: EffectImpulse, Amount: 3}
	case "Wirewood Savage":
		card.Types = types(TypeCreature)
		card.Cost = mana.Cost{mana.Green: 1, mana.Colorless: 2}
	case "Soul Warden":
		card.Types = types(TypeCreature)
		card.Cost = mana.Cost{mana.White: 1}
	case "Maggot Carrier":
		card.Types = types(TypeCreature)
		card.Cost = mana.Cost{mana.Black: 1, mana.Colorless: 2}
		card.OnResolve = &Effect{Kind: EffectDamageEach, Amount: 1}
	case "Unearth":
		card.Types = types(TypeSorcery)
		card.Cost = mana.Cost{mana.Black: 1}
		card.OnResolve = &Effect{Kind: EffectUnearth}
	case "Impulse":
		card.Types = types(TypeInstant)
		card.Cost = mana.Cost{mana.Blue: 1, mana.Colorless: 1}
		card.OnResolve = &Effect{Kind: EffectImpulse, Amount: 4}
	case "Intuition":
		card.Types = types(TypeInstant)
		card.Cost = mana.Cost{mana.Blue: 1, mana.Colorless: 2}
		card.OnResolve = &Effect{Kind: EffectIntuition}
	case "Living Wish":
		card.Types = types(TypeInstant)
		card.Cost = mana.Cost{mana.Green: 1, mana.Colorless: 1}
		card.OnResolve = &Effect{
			Kind:   EffectSearchAndPutHand,
			Filter: &SearchFilter{Kind: FilterWish, Types: []CardType{TypeCreature, TypeLand}},
		}
	case "Cunning Wish":
		card.Types = types(TypeInstant)
		card.Cost = mana.Cost{mana.Blue: 1, mana.Colorless: 2}
		card.OnResolve = &Effect{
			Kind:   EffectSearchAndPutHand,
			Filter: &SearchFilter{Kind: FilterWish, Types: []CardType{TypeInstant}},
		}
	case "Worldly Tutor":
		card.Types = types(TypeInstant)
		card.Cost = mana.Cost{mana.Green: 1}
		card.OnResolve = &Effect{
			Kind:   EffectSearchAndPutTopOfLibrary,
			Filter: &SearchFilter{Kind: FilterCreature},
		}
	case "Enlightened Tutor":
		card.Types = types(TypeInstant)
		card.Cost = mana.Cost{mana.White: 1}
		card.OnResolve = &Effect{
			Kind:   EffectSearchAndPutTopOfLibrary,
			Filter: &SearchFilter{Kind: FilterEnchantmentArtifact},
		}
	case "Eladamri's Call":
		card.Types = types(TypeInstant)
		card.Cost = mana.Cost{mana.White: 1, mana.Green: 1}
		card.OnResolve = &Effect{
			Kind:   EffectSearchAndPutHand,
			Filter: &SearchFilter{Kind: FilterCreature},
		}
	case "Merchant Scroll":
		card.Types = types(TypeSorcery)
		card.Cost = mana.Cost{mana.Blue: 1, mana.Colorless: 1}
		card.OnResolve = &Effect{
			Kind:   EffectSearchAndPutHand,
			Filter: &SearchFilter{Kind: FilterBlueInstant},
		}
	case "Sleight of Hand":
		card.Types = types(TypeSorcery)
		card.Cost = mana.Cost{mana.Blue: 1}
		card.OnResolve = &Effect{Kind: EffectImpulse, Amount: 2}
	case "Words of Wisdom":
		card.Types = types(TypeInstant)
		card.Cost = mana.Cost{mana.Blue: 1, mana.Colorless: 1}
		card.OnResolve = &Effect{Kind: EffectWordsOfWisdom}
	case "Snap":
		card.Types = types(TypeInstant)
		card.Cost = mana.Cost{mana.Blue: 1, mana.Colorless: 1}
		card.OnResolve = &Effect{Kind: EffectSnap}
	case "Brain Freeze":
		card.Types = types(TypeInstant)
		card.Cost = mana.Cost{mana.Blue: 1, mana.Colorless: 1}
		card.OnResolve = &Effect{Kind: EffectBrainFreeze}
	case "Frantic Search":
		card.Types = types(TypeInstant)
		card.Cost = mana.Cost{mana.Blue: 1, mana.Colorless: 2}
		card.OnResolve = &Effect{Kind: EffectFranticSearch}
	case "Meditate":
		card.Types = types(TypeInstant)
		card.Cost = mana.Cost{mana.Blue: 1, mana.Colorless: 2}
		card.OnResolve = &Effect{Kind: EffectMeditate}
	case "Turnabout":
		card.Types = types(TypeInstant)
		card.Cost = mana.Cost{mana.Blue: 2, mana.Colorless: 2}
		card.OnResolve = &Effect{Kind: EffectUntapLands} // all lands
	case "Helm of Awakening":
		card.Types = types(TypeArtifact)
		card.Cost = mana.Cost{mana.Colorless: 2}
		card.CostReduction = &mana.Reduction{
			Kind: mana.ReduceAll, Color: mana.Colorless, Amount: 1,
		}
	case "Sapphire Medallion":
		card.Types = types(TypeArtifact)
		card.Cost = mana.Cost{mana.Colorless: 2}
		card.CostReduction = &mana.Reduction{
			Kind: mana.ReduceColor, Gate: mana.Blue, Color: mana.Colorless, Amount: 1,
		}

	// Sac outlets
	case "Carrion Feeder", "Viscera Seer":
		card.Types = types(TypeCreature)
		card.Cost = mana.Cost{mana.Black: 1}
		card.SacOutlet = true
	case "Nantuko Husk":
		card.Types = types(TypeCreature)
		card.Cost = mana.Cost{mana.Black: 1, mana.Colorless: 2}
		card.SacOutlet = true
	case "Altar of Dementia":
		card.Types = types(TypeArtifact)
		card.Cost = mana.Cost{mana.Colorless: 2}
		card.SacOutlet = true

	// Sideboard and interaction
	case "Uktabi Orangutan":
		card.Types = types(TypeCreature)
		card.Cost = mana.Cost{mana.Green: 1, mana.Colorless: 2}
	case "Bone Shredder":
		card.Types = types(TypeCreature)
		card.Cost = mana.Cost{mana.Black: 1, mana.Colorless: 2}
	case "Ravenous Baloth":
		card.Types = types(TypeCreature)
		card.SubTypes = subTypes(SubTypeBeast)
		card.Cost = mana.Cost{mana.Green: 2, mana.Colorless: 2}
	case "Naturalize":
		card.Types = types(TypeInstant)
		card.Cost = mana.Cost{mana.Green: 1, mana.Colorless: 1}
	case "Hydroblast", "Blue Elemental Blast", "Chain of Vapor":
		card.Types = types(TypeInstant)
		card.Cost = mana.Cost{mana.Blue: 1}
	case "Hurkyl's Recall":
		card.Types = types(TypeInstant)
		card.Cost = mana.Cost{mana.Blue: 1, mana.Colorless: 1}
	case "Mana Short":
		card.Types = types(TypeInstant)
		card.Cost = mana.Cost{mana.Blue: 1, mana.Colorless: 2}

	// Basic lands
	case "Plains":
		card.Types = types(TypeLand)
		card.SubTypes = subTypes(SubTypePlains)
		card.ProducedMana = mana.Pool{mana.White: 1}
	case "Island":
		card.Types = types(TypeLand)
		card.SubTypes = subTypes(SubTypeIsland)
		card.ProducedMana = mana.Pool{mana.Blue: 1}
	case "Swamp":
		card.Types = types(TypeLand)
		card.SubTypes = subTypes(SubTypeSwamp)
		card.ProducedMana = mana.Pool{mana.Black: 1}
	case "Mountain":
		card.Types = types(TypeLand)
		card.SubTypes = subTypes(SubTypeMountain)
		card.ProducedMana = mana.Pool{mana.Red: 1}
	case "Forest":
		card.Types = types(TypeLand)
		card.SubTypes = subTypes(SubTypeForest)
		card.ProducedMana = mana.Pool{mana.Green: 1}

	// Nonbasic lands
	case "City of Brass":
		card.Types = types(TypeLand)
		card.ProducedMana = mana.Pool{
			mana.White: 1, mana.Blue: 1, mana.Black: 1, mana.Red: 1, mana.Green: 1,
		}
	case "Gemstone Mine":
		card.Types = types(TypeLand)
		card.ProducedMana = mana.Pool{
			mana.White: 1, mana.Blue: 1, mana.Black: 1, mana.Red: 1, mana.Green: 1,
		}
		limited(3)(card)
	case "Llanowar Wastes":
		card.Types = types(TypeLand)
		card.ProducedMana = mana.Pool{mana.Black: 1, mana.Green: 1, mana.Colorless: 1}
	case "Yavimaya Coast":
		card.Types = types(TypeLand)
		card.ProducedMana = mana.Pool{mana.Blue: 1, mana.Green: 1, mana.Colorless: 1}
	case "Brushland":
		card.Types = types(TypeLand)
		card.ProducedMana = mana.Pool{mana.White: 1, mana.Green: 1, mana.Colorless: 1}
	case "Caves of Koilos":
		card.Types = types(TypeLand)
		card.ProducedMana = mana.Pool{mana.White: 1, mana.Black: 1, mana.Colorless: 1}
	case "Underground River":
		card.Types = types(TypeLand)
		card.ProducedMana = mana.Pool{mana.Blue: 1, mana.Black: 1, mana.Colorless: 1}
	case "Ancient Tomb":
		card.Types = types(TypeLand)
		card.ProducedMana = mana.Pool{mana.Colorless: 2}
	case "Hickory Woodlot":
		card.Types = types(TypeLand)
		card.ProducedMana = mana.Pool{mana.Green: 2}
		card.Tapped = true
		limited(2)(card)
	case "Dryad Arbor":
		card.Types = types(TypeLand, TypeCreature)
		card.SubTypes = subTypes(SubTypeForest)
		card.SummoningSick = true
		card.ProducedMana = mana.Pool{mana.Green: 1}

	// Dual lands
	case "Tundra":
		card.Types = types(TypeLand)
		card.SubTypes = subTypes(SubTypePlains, SubTypeIsland)
		card.ProducedMana = mana.Pool{mana.White: 1, mana.Blue: 1}
	case "Underground Sea":
		card.Types = types(TypeLand)
		card.SubTypes = subTypes(SubTypeIsland, SubTypeSwamp)
		card.ProducedMana = mana.Pool{mana.Blue: 1, mana.Black: 1}
	case "Tropical Island":
		card.Types = types(TypeLand)
		card.SubTypes = subTypes(SubTypeIsland, SubTypeForest)
		card.ProducedMana = mana.Pool{mana.Blue: 1, mana.Green: 1}
	case "Scrubland":
		card.Types = types(TypeLand)
		card.SubTypes = subTypes(SubTypePlains, SubTypeSwamp)
		card.ProducedMana = mana.Pool{mana.White: 1, mana.Black: 1}
	case "Bayou":
		card.Types = types(TypeLand)
		card.SubTypes = subTypes(SubTypeSwamp, SubTypeForest)
		card.ProducedMana = mana.Pool{mana.Black: 1, mana.Green: 1}
	case "Savannah":
		card.Types = types(TypeLand)
		card.SubTypes = subTypes(SubTypePlains, SubTypeForest)
		card.ProducedMana = mana.Pool{mana.White: 1, mana.Green: 1}
	case "Taiga":
		card.Types = types(TypeLand)
		card.SubTypes = subTypes(SubTypeForest, SubTypeMountain)
		card.ProducedMana = mana.Pool{mana.Green: 1, mana.Red: 1}
	case "Volcanic Island":
		card.Types = types(TypeLand)
		card.SubTypes = subTypes(SubTypeIsland, SubTypeMountain)
		card.ProducedMana = mana.Pool{mana.Blue: 1, mana.Red: 1}
	case "Badlands":
		card.Types = types(TypeLand)
		card.SubTypes = subTypes(SubTypeSwamp, SubTypeMountain)
		card.ProducedMana = mana.Pool{mana.Black: 1, mana.Red: 1}

	// Fetch lands
	case "Flooded Strand":
		card.Types = types(TypeLand)
		card.OnResolve = fetchEffect(SubTypePlains, SubTypeIsland)
	case "Polluted Delta":
		card.Types = types(TypeLand)
		card.OnResolve = fetchEffect(SubTypeIsland, SubTypeSwamp)
	case "Windswept Heath":
		card.Types = types(TypeLand)
		card.OnResolve = fetchEffect(SubTypePlains, SubTypeForest)
	case "Misty Rainforest":
		card.Types = types(TypeLand)
		card.OnResolve = fetchEffect(SubTypeIsland, SubTypeForest)
	case "Wooded Foothills":
		card.Types = types(TypeLand)
		card.OnResolve = fetchEffect(SubTypeForest, SubTypeMountain)

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCard, name)
	}

	if card.Types == nil {
		card.Types = types()
	}
	if card.SubTypes == nil {
		card.SubTypes = subTypes()
	}
	if card.Cost == nil {
		card.Cost = mana.Cost{}
	}
	if card.ProducedMana == nil {
		card.ProducedMana = mana.Pool{}
	}
	return card, nil
}

func fetchEffect(lands ...SubType) *Effect {
	return &Effect{
		Kind:   EffectSearchAndPutBattlefield,
		Filter: &SearchFilter{Kind: FilterLand, Lands: lands},
	}
}
