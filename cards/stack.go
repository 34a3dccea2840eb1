package cards

import "strings"

// Stack represents an ordered pile of cards, index 0 at the bottom
type Stack []Card

// NewStack creates a new stack with the given cards, the last one on top
func NewStack(cards ...Card) Stack {
	return Stack(cards)
}

// Push puts a card on top of the stack
func (s *Stack) Push(card Card) {
	*s = append(*s, card)
}

// Pop removes the top card. ok is false when the stack is empty.
func (s *Stack) Pop() (card Card, ok bool) {
	if len(*s) == 0 {
		return Card{}, false
	}
	card = (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return card, true
}

// Top returns the top card without removing it
func (s Stack) Top() (Card, bool) {
	if len(s) == 0 {
		return Card{}, false
	}
	return s[len(s)-1], true
}

// IndexOf returns the position of card in the stack, or -1
func (s Stack) IndexOf(card Card) int {
	for i, c := range s {
		if c.Equals(card) {
			return i
		}
	}
	return -1
}

// Contains checks if card is in the stack
func (s Stack) Contains(card Card) bool {
	return s.IndexOf(card) >= 0
}

// Clone returns a copy that does not share memory with s
func (s Stack) Clone() Stack {
	if s == nil {
		return nil
	}
	out := make(Stack, len(s))
	copy(out, s)
	return out
}

// String returns the cards separated by spaces, bottom first
func (s Stack) String() string {
	parts := make([]string, len(s))
	for i, c := range s {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
