package cmd

import (
	"fmt"

	"github.com/lazharichir/solitaire/game"
	"github.com/spf13/cobra"
)

// dealCmd represents the deal command
var dealCmd = &cobra.Command{
	Use:   "deal",
	Short: "Deal a tableau and list the legal moves",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		g := game.New(logger, game.WithSeed(cfg.Seed))
		if err := g.Start(); err != nil {
			return err
		}

		printGame(cmd.OutOrStdout(), g, cfg.Color)
		return nil
	},
}

// moveCmd replays moves on a seeded deal
var moveCmd = &cobra.Command{
	Use:   "move card:from:to...",
	Short: "Deal a seeded tableau and apply moves to it",
	Long: `Deal the tableau for --seed and apply each move in order.
Stacks are numbered 1 to 7 from the left, e.g. "solitaire move --seed 42 4C:2:1 KS:7:3".`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.Seed == 0 {
			return fmt.Errorf("move needs a fixed deal: set --seed or seed in the config file")
		}

		g := game.New(logger, game.WithSeed(cfg.Seed))
		if err := g.Handle(game.StartCommand{}); err != nil {
			return err
		}

		for i, arg := range args {
			move, err := game.ParseMoveCommand(arg)
			if err != nil {
				return err
			}
			if err := g.Handle(move); err != nil {
				return fmt.Errorf("move %d (%s): %w", i+1, arg, err)
			}
		}

		printGame(cmd.OutOrStdout(), g, cfg.Color)
		return nil
	},
}
