package main

import (
	"os/signal"
	"syscall"

	"github.com/milk9111/platformer/sim"
	"github.com/milk9111/platformer/term"
	"github.com/spf13/cobra"
)

var termCmd = &cobra.Command{
	Use:   "term",
	Short: "Play in the terminal",
	Long: `Play the level in the terminal, one character per tile.

Controls:
  A/D, Left/Right   - Move
  W/S, Up/Down      - Move vertically in top-down mode
  Space             - Jump
  Tab               - Toggle top-down movement
  Enter             - Restart
  Q/Esc/Ctrl+C      - Quit`,
	Args: cobra.NoArgs,
	RunE: runTerm,
}

func runTerm(cmd *cobra.Command, args []string) error {
	w, err := sim.Load(flagProfile, flagLevel)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGTERM)
	defer stop()

	res, err := term.Run(ctx, w)
	if err != nil {
		return err
	}
	logger.Info("bye", "score", res.Score, "coins", res.Coins, "frames", res.Frames, "won", res.Won)
	return nil
}
