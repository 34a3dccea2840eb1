package game

import (
	"fmt"

	"github.com/lazharichir/solitaire/cards"
	"github.com/lazharichir/solitaire/tableau"
)

// Move is a sequence move the tableau rules allow
type Move struct {
	Card cards.Card
	From tableau.StackIndex
	To   tableau.StackIndex
}

func (m Move) String() string {
	return fmt.Sprintf("%s: %s -> %s", m.Card, m.From, m.To)
}

// LegalMoves lists every sequence that can be moved to another stack.
// Moving a King that already sits at the bottom of a stack onto an empty
// stack changes nothing and is left out.
func (g *Game) LegalMoves() []Move {
	if g.Phase != PhaseInProgress {
		return nil
	}

	var moves []Move
	for _, from := range tableau.StackIndices() {
		for _, view := range g.tableau.Stack(from) {
			if len(g.tableau.MovableSequence(view.Card, from)) == 0 {
				continue
			}
			for _, to := range tableau.StackIndices() {
				if to == from || !g.tableau.CanMoveTo(view.Card, to) {
					continue
				}
				if g.tableau.IsBottomKing(view.Card) && len(g.tableau.Stack(to)) == 0 {
					continue
				}
				moves = append(moves, Move{Card: view.Card, From: from, To: to})
			}
		}
	}
	return moves
}
