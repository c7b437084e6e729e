package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/platformer/prefabs"
	"github.com/milk9111/platformer/sim"
	"github.com/spf13/cobra"
)

const windowScale = 3

var flagWatch bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in a window",
	Long: `Open a window and play the level.

Controls:
  A/D, Left/Right   - Move
  W/S, Up/Down      - Move vertically in top-down mode
  Space             - Jump
  Tab               - Toggle top-down movement
  Enter             - Restart
  Esc/F12           - Quit

With --watch, edits to prefabs/*.yaml on disk are applied while playing.`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload body specs from ./prefabs when they change")
}

func runPlay(cmd *cobra.Command, args []string) error {
	w, err := sim.Load(flagProfile, flagLevel)
	if err != nil {
		return err
	}

	var watcher *prefabs.Watcher
	if flagWatch {
		watcher, err = prefabs.NewWatcher("prefabs")
		if err != nil {
			logger.Warn("hot reload disabled", "err", err)
		} else {
			defer watcher.Close()
			logger.Info("watching prefabs", "dir", "prefabs")
		}
	}

	b := w.Grid.Bounds()
	ebiten.SetWindowSize(b.W*windowScale, b.H*windowScale)
	ebiten.SetWindowTitle("platformer - " + w.Level.Name)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(tps)

	logger.Info("playing", "level", w.Level.Name, "profile", w.Spec.Name, "coins", w.CoinCount())
	game := NewGame(w, watcher, logger)
	if err := ebiten.RunGame(game); err != nil && !isTermination(err) {
		return err
	}
	logger.Info("bye", "score", w.Score(), "frames", game.frames)
	return nil
}
