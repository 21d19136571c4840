package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDecklist(t *testing.T) {
	list, err := ParseDecklist(`// Creatures
4 Birds of Paradise
1 Rofellos, Llanowar Emissary

// Lands
20 Forest

Sideboard
2 Naturalize`)
	require.NoError(t, err)

	assert.Equal(t, []DeckEntry{
		{Name: "Birds of Paradise", Count: 4},
		{Name: "Rofellos, Llanowar Emissary", Count: 1},
		{Name: "Forest", Count: 20},
	}, list.Maindeck)
	assert.Equal(t, []DeckEntry{{Name: "Naturalize", Count: 2}}, list.Sideboard)
	assert.Equal(t, 25, list.Size())
}

func TestParseDecklistErrors(t *testing.T) {
	for _, text := range []string{
		"Forest",
		"four Forest",
		"0 Forest",
		"-1 Forest",
	} {
		_, err := ParseDecklist(text)
		assert.ErrorIs(t, err, ErrMalformedLine, "input %q", text)
	}
}

func TestDeckDrawOrder(t *testing.T) {
	a := &Card{Name: "a"}
	b := &Card{Name: "b"}
	d := &Deck{rng: rand.New(rand.NewSource(1))}

	d.PutTop(a)
	d.PutTop(b)

	assert.Equal(t, 2, d.Len())
	assert.Same(t, b, d.Draw(), "the last card put on top comes off first")
	assert.Same(t, a, d.Draw())
	assert.Nil(t, d.Draw())
}

func TestDeckPutBottom(t *testing.T) {
	a := &Card{Name: "a"}
	b := &Card{Name: "b"}
	d := &Deck{rng: rand.New(rand.NewSource(1))}

	d.PutTop(a)
	d.PutBottom(b)

	assert.Same(t, a, d.Draw())
	assert.Same(t, b, d.Draw())
}

func TestDeckRemoveByIdentity(t *testing.T) {
	a := &Card{Name: "twin"}
	b := &Card{Name: "twin"}
	d := &Deck{rng: rand.New(rand.NewSource(1))}

	d.PutTop(a)
	d.PutTop(b)
	d.Remove(a)

	assert.Equal(t, 1, d.Len())
	assert.Same(t, b, d.Draw(), "removal matches the exact copy, not the name")
}

func TestDeckShuffleIsSeeded(t *testing.T) {
	build := func(seed int64) []string {
		d := &Deck{rng: rand.New(rand.NewSource(seed))}
		for _, name := range []string{"a", "b", "c", "d", "e", "f", "g", "h"} {
			d.PutTop(&Card{Name: name})
		}
		d.Shuffle()

		var names []string
		for card := d.Draw(); card != nil; card = d.Draw() {
			names = append(names, card.Name)
		}
		return names
	}

	assert.Equal(t, build(7), build(7), "same seed, same order")
}
