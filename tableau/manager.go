package tableau

import (
	"errors"
	"fmt"

	"github.com/lazharichir/solitaire/cards"
)

var (
	ErrNotEnoughCards = errors.New("not enough cards in deck to deal the tableau")
	ErrCardNotVisible = errors.New("card is not face up in the origin stack")
	ErrIllegalMove    = errors.New("card cannot be moved onto the destination stack")
	ErrInvalidStack   = errors.New("invalid stack index")
)

// Dealer is anything cards can be drawn from
type Dealer interface {
	Draw() (cards.Card, error)
}

// Manager keeps the seven working stacks of the tableau and enforces the
// placement rules on them: a King onto an empty stack, otherwise a card one
// rank below and of the opposite color to the top card.
//
// Methods taking a StackIndex panic if it is not Valid.
type Manager struct {
	stacks [NumStacks]pile
}

// NewManager creates a tableau with seven empty stacks
func NewManager() *Manager {
	return &Manager{}
}

// Reset empties all stacks
func (m *Manager) Reset() {
	for i := range m.stacks {
		m.stacks[i] = nil
	}
}

// Initialize clears the stacks and deals a fresh tableau from the dealer:
// stack i receives i cards, only the top one face up.
// On error the stacks are left empty.
func (m *Manager) Initialize(dealer Dealer) error {
	m.Reset()
	var dealt [NumStacks]pile
	for _, index := range StackIndices() {
		for n := 0; n <= int(index); n++ {
			card, err := dealer.Draw()
			if err != nil {
				return fmt.Errorf("%w: dealing %s stack: %v", ErrNotEnoughCards, index, err)
			}
			dealt[index] = append(dealt[index], NewCardView(card, n == int(index)))
		}
	}
	m.stacks = dealt
	return nil
}

// Stack returns a copy of the stack at index, bottom card first
func (m *Manager) Stack(index StackIndex) []CardView {
	p := m.pile(index)
	out := make([]CardView, len(p))
	copy(out, p)
	return out
}

// CanMoveTo checks if card may be placed on top of the stack at index
func (m *Manager) CanMoveTo(card cards.Card, index StackIndex) bool {
	top, ok := m.pile(index).top()
	if !ok {
		return card.IsKing()
	}
	return !top.SameColorAs(card) && top.Rank == card.Rank+1
}

// Sequence returns card and every card above it in the stack at index.
// It is empty when card is not in that stack.
func (m *Manager) Sequence(card cards.Card, index StackIndex) cards.Stack {
	p := m.pile(index)
	i := p.indexOf(card)
	if i < 0 {
		return cards.Stack{}
	}
	return p[i:].cards()
}

// MovableSequence returns the sequence starting at card if it is face up and
// forms a valid run up to the top of the stack, or an empty stack otherwise.
func (m *Manager) MovableSequence(card cards.Card, index StackIndex) cards.Stack {
	if !m.isVisibleIn(card, index) {
		return cards.Stack{}
	}
	seq := m.Sequence(card, index)
	if !IsValidSequence(seq) {
		return cards.Stack{}
	}
	return seq
}

// IsValidSequence reports whether each card is one rank below and of the
// opposite color to the card before it. Empty and single card sequences are valid.
func IsValidSequence(seq cards.Stack) bool {
	for i := 1; i < len(seq); i++ {
		if seq[i].SameColorAs(seq[i-1]) || seq[i].Rank+1 != seq[i-1].Rank {
			return false
		}
	}
	return true
}

// IsInStacks checks if card is in any of the working stacks
func (m *Manager) IsInStacks(card cards.Card) bool {
	_, ok := m.find(card)
	return ok
}

// StackOf returns the index of the stack holding card
func (m *Manager) StackOf(card cards.Card) (StackIndex, bool) {
	return m.find(card)
}

// IsVisible checks if card is face up in one of the stacks
func (m *Manager) IsVisible(card cards.Card) bool {
	index, ok := m.find(card)
	return ok && m.isVisibleIn(card, index)
}

// IsLowestVisible checks if card is the deepest face up card of the stack at index
func (m *Manager) IsLowestVisible(card cards.Card, index StackIndex) bool {
	p := m.pile(index)
	i := p.indexOf(card)
	if i < 0 || !p[i].Visible {
		return false
	}
	return i == 0 || !p[i-1].Visible
}

// IsBottomKing checks if card is a King sitting at the bottom of a stack
func (m *Manager) IsBottomKing(card cards.Card) bool {
	if !card.IsKing() {
		return false
	}
	for _, p := range m.stacks {
		if len(p) > 0 && p[0].Card.Equals(card) {
			return true
		}
	}
	return false
}

// PreviousCard returns the card directly under card, if any
func (m *Manager) PreviousCard(card cards.Card) (cards.Card, bool) {
	index, ok := m.find(card)
	if !ok {
		return cards.Card{}, false
	}
	p := m.stacks[index]
	i := p.indexOf(card)
	if i == 0 {
		return cards.Card{}, false
	}
	return p[i-1].Card, true
}

// Push puts card face up on top of the stack at index. It does not check
// CanMoveTo; callers moving cards under the game rules must.
func (m *Manager) Push(card cards.Card, index StackIndex) {
	m.pile(index)
	m.stacks[index] = append(m.stacks[index], NewCardView(card, true))
}

// Pop removes card and every card above it from the stack holding it, then
// turns the new top card face up. The removed cards are returned bottom
// first. Popping a card that is not in the tableau does nothing.
func (m *Manager) Pop(card cards.Card) cards.Stack {
	index, ok := m.find(card)
	if !ok {
		return nil
	}
	p := m.stacks[index]
	i := p.indexOf(card)
	removed := p[i:].cards()
	m.stacks[index] = p[:i:i]
	m.stacks[index].revealTop()
	return removed
}

// MoveWithin moves card and everything above it from origin to destination.
// The card must start a movable sequence in origin and be legal on destination.
func (m *Manager) MoveWithin(card cards.Card, origin, destination StackIndex) error {
	if !origin.Valid() || !destination.Valid() {
		return ErrInvalidStack
	}
	if origin == destination {
		return fmt.Errorf("%w: %s onto its own stack", ErrIllegalMove, card)
	}
	if !m.isVisibleIn(card, origin) {
		return fmt.Errorf("%w: %s in %s stack", ErrCardNotVisible, card, origin)
	}
	if len(m.MovableSequence(card, origin)) == 0 {
		return fmt.Errorf("%w: cards above %s are out of sequence", ErrIllegalMove, card)
	}
	if !m.CanMoveTo(card, destination) {
		return fmt.Errorf("%w: %s onto %s stack", ErrIllegalMove, card, destination)
	}

	for _, c := range m.Pop(card) {
		m.Push(c, destination)
	}
	return nil
}

func (m *Manager) isVisibleIn(card cards.Card, index StackIndex) bool {
	p := m.pile(index)
	i := p.indexOf(card)
	return i >= 0 && p[i].Visible
}

func (m *Manager) find(card cards.Card) (StackIndex, bool) {
	for _, index := range StackIndices() {
		if m.stacks[index].indexOf(card) >= 0 {
			return index, true
		}
	}
	return 0, false
}

func (m *Manager) pile(index StackIndex) pile {
	if !index.Valid() {
		panic(fmt.Sprintf("tableau: %s", index))
	}
	return m.stacks[index]
}
