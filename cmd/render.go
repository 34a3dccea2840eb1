package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/lazharichir/solitaire/cards"
	"github.com/lazharichir/solitaire/game"
	"github.com/lazharichir/solitaire/tableau"
)

const cellWidth = 5

func formatCard(c cards.Card, useColor bool) string {
	return paint(c.String(), c.Color(), useColor)
}

func paint(s string, c cards.Color, useColor bool) string {
	var painter *color.Color
	if c == cards.Red {
		painter = color.New(color.FgHiRed)
	} else {
		painter = color.New(color.FgHiWhite)
	}
	if !useColor {
		painter.DisableColor()
	} else {
		painter.EnableColor()
	}
	return painter.Sprint(s)
}

// formatTableau lays the stacks out as columns, bottom card on the first row
func formatTableau(view [tableau.NumStacks][]tableau.CardView, useColor bool) string {
	var b strings.Builder

	depth := 0
	for _, index := range tableau.StackIndices() {
		fmt.Fprintf(&b, "%-*d", cellWidth, int(index)+1)
		if len(view[index]) > depth {
			depth = len(view[index])
		}
	}
	b.WriteString("\n")

	for row := 0; row < depth; row++ {
		for _, index := range tableau.StackIndices() {
			stack := view[index]
			switch {
			case row >= len(stack):
				b.WriteString(strings.Repeat(" ", cellWidth))
			case !stack[row].Visible:
				fmt.Fprintf(&b, "%-*s", cellWidth, stack[row].String())
			default:
				cell := fmt.Sprintf("%-*s", cellWidth, stack[row].String())
				b.WriteString(paint(cell, stack[row].Color(), useColor))
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}

func printGame(w io.Writer, g *game.Game, useColor bool) {
	fmt.Fprintf(w, "seed %d, %d cards left in the deck\n\n", g.Seed, g.DeckSize())
	fmt.Fprint(w, formatTableau(g.View(), useColor))

	moves := g.LegalMoves()
	if len(moves) == 0 {
		fmt.Fprintln(w, "\nno legal moves")
		return
	}
	fmt.Fprintln(w, "\nlegal moves:")
	for _, m := range moves {
		fmt.Fprintf(w, "  %s %d -> %d\n", formatCard(m.Card, useColor), int(m.From)+1, int(m.To)+1)
	}
}
