package cards

import (
	"errors"
	"math/rand"
	"time"
)

// ErrEmptyDeck is returned when drawing from a deck with no cards left
var ErrEmptyDeck = errors.New("deck is empty")

// AllCards returns the 52 cards of a standard deck, suit by suit from Ace to King
func AllCards() Stack {
	var all Stack
	for _, suit := range Suits() {
		for _, rank := range Ranks() {
			all.Push(Card{Rank: rank, Suit: suit})
		}
	}
	return all
}

// Deck is an ordered pile of cards drawn from the top.
// The top of the deck is the end of the slice.
type Deck struct {
	cards Stack
	rand  *rand.Rand
}

// DeckOption configures a new deck
type DeckOption func(*Deck)

// WithSeed makes shuffles of the deck reproducible
func WithSeed(seed int64) DeckOption {
	return func(d *Deck) {
		d.rand = rand.New(rand.NewSource(seed))
	}
}

// NewDeck creates a standard deck of 52 cards in canonical order
func NewDeck(opts ...DeckOption) *Deck {
	d := &Deck{cards: AllCards()}
	for _, opt := range opts {
		opt(d)
	}
	if d.rand == nil {
		d.rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return d
}

// Shuffle gathers all 52 cards back into the deck and shuffles them
func (d *Deck) Shuffle() {
	d.cards = AllCards()
	d.rand.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Draw removes the top card from the deck and returns it
func (d *Deck) Draw() (Card, error) {
	card, ok := d.cards.Pop()
	if !ok {
		return Card{}, ErrEmptyDeck
	}
	return card, nil
}

// Size returns the number of cards left in the deck
func (d *Deck) Size() int {
	return len(d.cards)
}

// IsEmpty checks if no cards are left
func (d *Deck) IsEmpty() bool {
	return len(d.cards) == 0
}

// Cards returns a copy of the remaining cards, bottom first
func (d *Deck) Cards() Stack {
	return d.cards.Clone()
}
