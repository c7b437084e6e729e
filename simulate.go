package main

import (
	"fmt"

	"github.com/milk9111/platformer/sim"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	flagDT    float64
	flagYAML  bool
	flagQuiet bool
)

var simCmd = &cobra.Command{
	Use:   "sim <script>",
	Short: "Replay an input script and print each frame",
	Long: `Replay a recorded input script without a window and print the body
after every frame. The script names its own profile and level; --profile and
--level override them when given.

Examples:
  platformer sim walk_and_jump
  platformer sim climb --dt 0.0069444
  platformer sim ./my_script.yaml --yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runSim,
}

func init() {
	simCmd.Flags().Float64Var(&flagDT, "dt", 0, "Frame delta in seconds (default: the script's)")
	simCmd.Flags().BoolVar(&flagYAML, "yaml", false, "Print frames as a YAML stream")
	simCmd.Flags().BoolVarP(&flagQuiet, "quiet", "q", false, "Print only the last frame")
}

func runSim(cmd *cobra.Command, args []string) error {
	script, err := sim.LoadScript(args[0])
	if err != nil {
		return err
	}
	if flagDT > 0 {
		script.DT = flagDT
	}

	profile, level := script.Profile, script.Level
	if cmd.Flags().Changed("profile") || profile == "" {
		profile = flagProfile
	}
	if cmd.Flags().Changed("level") {
		level = flagLevel
	}

	w, err := sim.Load(profile, level)
	if err != nil {
		return err
	}
	logger.Debug("replaying", "script", script.Name, "profile", w.Spec.Name, "level", w.Level.Name, "frames", script.Frames(), "dt", script.DT)

	out := cmd.OutOrStdout()
	var enc *yaml.Encoder
	if flagYAML {
		enc = yaml.NewEncoder(out)
		defer enc.Close()
	}
	printFrame := func(f sim.Frame) bool {
		if enc != nil {
			if err := enc.Encode(f); err != nil {
				logger.Error("encode frame", "frame", f.Index, "err", err)
				return false
			}
			return true
		}
		fmt.Fprintf(out, "%5d  pos=(%g,%g) vel=(%.2f,%.2f) %-8s floor=%t ceil=%t wall=%d coins=%d\n",
			f.Index, f.Position.X, f.Position.Y, f.Velocity.X, f.Velocity.Y, f.State,
			f.Contacts.HitFloor, f.Contacts.HitCeiling, f.Contacts.WallSide, f.Score)
		return true
	}

	var emit func(sim.Frame) bool
	if !flagQuiet {
		emit = printFrame
	}
	last := w.Run(script, emit)
	if flagQuiet {
		printFrame(last)
	}
	logger.Info("replayed", "script", script.Name, "frames", last.Index, "coins", fmt.Sprintf("%d/%d", w.Score(), w.CoinCount()))
	return nil
}
