package events

import (
	"time"

	"github.com/lazharichir/solitaire/cards"
	"github.com/lazharichir/solitaire/tableau"
)

type GameStarted struct {
	GameID string
	Seed   int64
	At     time.Time
}

func (e GameStarted) Name() string { return "GAME_STARTED" }

// TableauDealt follows GameStarted once the seven stacks are dealt
type TableauDealt struct {
	GameID    string
	Remaining int // cards left in the deck
}

func (e TableauDealt) Name() string { return "TABLEAU_DEALT" }

type SequenceMoved struct {
	GameID string
	Cards  cards.Stack
	From   tableau.StackIndex
	To     tableau.StackIndex
	At     time.Time
}

func (e SequenceMoved) Name() string { return "SEQUENCE_MOVED" }

// CardRevealed is emitted when a move uncovers a face down card
type CardRevealed struct {
	GameID string
	Card   cards.Card
	Stack  tableau.StackIndex
}

func (e CardRevealed) Name() string { return "CARD_REVEALED" }
