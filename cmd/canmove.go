package cmd

import (
	"fmt"

	"github.com/lazharichir/solitaire/cards"
	"github.com/lazharichir/solitaire/tableau"
	"github.com/spf13/cobra"
)

// canMoveCmd checks a single placement without dealing a game
var canMoveCmd = &cobra.Command{
	Use:   "canmove card [onto]",
	Short: "Check whether a card may be placed onto another, or onto an empty stack",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		card, err := cards.CardFromString(args[0])
		if err != nil {
			return err
		}

		m := tableau.NewManager()
		target := "an empty stack"
		if len(args) == 2 {
			onto, err := cards.CardFromString(args[1])
			if err != nil {
				return err
			}
			m.Push(onto, tableau.First)
			target = formatCard(onto, cfg.Color)
		}

		verdict := "no"
		if m.CanMoveTo(card, tableau.First) {
			verdict = "yes"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s onto %s: %s\n", formatCard(card, cfg.Color), target, verdict)
		return nil
	},
}
