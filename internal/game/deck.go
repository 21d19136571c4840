package game

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
)

// ErrMalformedLine is returned when a decklist line cannot be parsed.
var ErrMalformedLine = errors.New("malformed decklist line")

// DeckEntry is one decklist line: a card name and how many copies.
type DeckEntry struct {
	Name  string
	Count int
}

// Decklist is the maindeck and sideboard of a deck, by name and count.
type Decklist struct {
	Maindeck  []DeckEntry
	Sideboard []DeckEntry
}

// ParseDecklist parses a plain text decklist. Each line is "<count>
// <card name>"; blank lines and lines starting with "//" are skipped; a
// line reading "Sideboard" switches to the sideboard section.
func ParseDecklist(text string) (*Decklist, error) {
	decklist := &Decklist{}
	sideboard := false

	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		if strings.EqualFold(line, "Sideboard") || strings.EqualFold(line, "Sideboard:") {
			sideboard = true
			continue
		}

		count, name, ok := strings.Cut(line, " ")
		if !ok {
			return nil, fmt.Errorf("%w %d: %q", ErrMalformedLine, i+1, line)
		}
		n, err := strconv.Atoi(count)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("%w %d: %q", ErrMalformedLine, i+1, line)
		}

		entry := DeckEntry{Name: strings.TrimSpace(name), Count: n}
		if sideboard {
			decklist.Sideboard = append(decklist.Sideboard, entry)
		} else {
			decklist.Maindeck = append(decklist.Maindeck, entry)
		}
	}

	return decklist, nil
}

// Size returns the number of maindeck cards.
func (d *Decklist) Size() int {
	total := 0
	for _, entry := range d.Maindeck {
		total += entry.Count
	}
	return total
}

// Deck is the ordered library plus the sideboard. The last element of
// the library slice is the top card.
type Deck struct {
	library   []*Card
	sideboard []*Card
	rng       *rand.Rand
}

// Len returns the number of cards left in the library.
func (d *Deck) Len() int {
	return len(d.library)
}

// SideboardCards returns the cards in the sideboard.
func (d *Deck) SideboardCards() []*Card {
	return d.sideboard
}

// Draw removes and returns the top card, or nil if the library is empty.
func (d *Deck) Draw() *Card {
	if len(d.library) == 0 {
		return nil
	}
	top := d.library[len(d.library)-1]
	d.library = d.library[:len(d.library)-1]
	return top
}

// Shuffle randomizes the library order using the deck's own stream.
func (d *Deck) Shuffle() {
	d.rng.Shuffle(len(d.library), func(i, j int) {
		d.library[i], d.library[j] = d.library[j], d.library[i]
	})
}

// PutTop places the card on top of the library.
func (d *Deck) PutTop(card *Card) {
	d.library = append(d.library, card)
}

// PutBottom places the card at the bottom of the library.
func (d *Deck) PutBottom(card *Card) {
	d.library = append([]*Card{card}, d.library...)
}

// Remove takes the card out of the library, wherever it is.
func (d *Deck) Remove(card *Card) {
	for i, c := range d.library {
		if c == card {
			d.library = append(d.library[:i], d.library[i+1:]...)
			return
		}
	}
}

// RemoveSideboard takes the card out of the sideboard.
func (d *Deck) RemoveSideboard(card *Card) {
	for i, c := range d.sideboard {
		if c == card {
			d.sideboard = append(d.sideboard[:i], d.sideboard[i+1:]...)
			return
		}
	}
}
