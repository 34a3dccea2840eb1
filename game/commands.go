package game

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lazharichir/solitaire/cards"
	"github.com/lazharichir/solitaire/tableau"
)

// Command represents a game action that can be performed
type Command interface {
	CommandName() string
}

// StartCommand deals a new game
type StartCommand struct{}

func (c StartCommand) CommandName() string { return "start" }

// MoveCommand moves the sequence starting at a card between two stacks.
// Stacks are numbered 1 to 7 from the left.
type MoveCommand struct {
	CardShorthand string
	From          int
	To            int
}

func (c MoveCommand) CommandName() string { return "move" }

// ParseMoveCommand reads a move written as card:from:to, e.g. "4C:1:3"
func ParseMoveCommand(s string) (MoveCommand, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return MoveCommand{}, fmt.Errorf("invalid move %q: want card:from:to", s)
	}

	from, err := strconv.Atoi(parts[1])
	if err != nil {
		return MoveCommand{}, fmt.Errorf("invalid move %q: origin stack: %w", s, err)
	}
	to, err := strconv.Atoi(parts[2])
	if err != nil {
		return MoveCommand{}, fmt.Errorf("invalid move %q: destination stack: %w", s, err)
	}

	return MoveCommand{CardShorthand: parts[0], From: from, To: to}, nil
}

// Handle runs a command against the game
func (g *Game) Handle(cmd Command) error {
	switch c := cmd.(type) {
	case nil:
		return fmt.Errorf("nil command")
	case StartCommand:
		return g.Start()
	case MoveCommand:
		card, err := cards.CardFromString(c.CardShorthand)
		if err != nil {
			return err
		}
		from, err := tableau.StackIndexFromNumber(c.From)
		if err != nil {
			return err
		}
		to, err := tableau.StackIndexFromNumber(c.To)
		if err != nil {
			return err
		}
		return g.Move(card, from, to)
	default:
		return fmt.Errorf("unknown command type: %s", cmd.CommandName())
	}
}
