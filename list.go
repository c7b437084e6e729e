package main

import (
	"fmt"

	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/prefabs"
	"github.com/spf13/cobra"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List levels and body profiles",
	Args:  cobra.NoArgs,
	RunE:  runLevels,
}

func runLevels(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	names, err := levels.List()
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "Levels:")
	for _, name := range names {
		lvl, err := levels.Load(name)
		if err != nil {
			logger.Warn("skipping level", "level", name, "err", err)
			continue
		}
		fmt.Fprintf(out, "  %-12s %dx%d cells of %dpx, %d coins\n", name, lvl.Width, lvl.Height, lvl.CellSize, len(lvl.Coins()))
	}

	profiles, err := prefabs.Profiles()
	if err != nil {
		return err
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Profiles:")
	for _, name := range profiles {
		spec, err := prefabs.LoadBodySpec(name)
		if err != nil {
			logger.Warn("skipping profile", "profile", name, "err", err)
			continue
		}
		fmt.Fprintf(out, "  %-12s %dx%d body, %s sweep, level %s\n", name, spec.Width, spec.Height, spec.Options.Sweep, spec.Level)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'platformer play --profile <name>' to play.")
	return nil
}
