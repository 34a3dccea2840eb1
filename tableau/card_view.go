package tableau

import "github.com/lazharichir/solitaire/cards"

// CardView represents a card as it sits in a working stack, face up or face down
type CardView struct {
	cards.Card
	Visible bool
}

// NewCardView creates a new card view with the specified visibility
func NewCardView(card cards.Card, visible bool) CardView {
	return CardView{
		Card:    card,
		Visible: visible,
	}
}

// String shows face down cards as "▒▒"
func (v CardView) String() string {
	if !v.Visible {
		return "▒▒"
	}
	return v.Card.String()
}

// pile is a working stack with the visibility of each card
type pile []CardView

func (p pile) indexOf(card cards.Card) int {
	for i, v := range p {
		if v.Card.Equals(card) {
			return i
		}
	}
	return -1
}

func (p pile) top() (CardView, bool) {
	if len(p) == 0 {
		return CardView{}, false
	}
	return p[len(p)-1], true
}

func (p pile) cards() cards.Stack {
	out := make(cards.Stack, len(p))
	for i, v := range p {
		out[i] = v.Card
	}
	return out
}

// revealTop turns the top card face up and reports whether it was face down
func (p pile) revealTop() (cards.Card, bool) {
	if len(p) == 0 || p[len(p)-1].Visible {
		return cards.Card{}, false
	}
	p[len(p)-1].Visible = true
	return p[len(p)-1].Card, true
}
