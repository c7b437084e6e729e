// platformer moves a box through tile levels.
//
// Usage:
//
//	platformer play            - Play in a window
//	platformer term            - Play in the terminal
//	platformer sim <script>    - Replay an input script and print each frame
//	platformer levels          - List levels and body profiles
//
// Global flags:
//
//	--profile <name>    - Body profile under prefabs/ (default: classic)
//	--level <name>      - Level under levels/ (default: the profile's level)
//	--log-level <lvl>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	flagProfile  string
	flagLevel    string
	flagLogLevel string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "platformer",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "platformer",
	Short: "A tile platformer with a kinematic body",
	Long: `platformer moves a box through tile levels with either a probing or a
swept-box collision resolver, picked by the body profile.

Examples:
  platformer play
  platformer play --profile classic32 --watch
  platformer term
  platformer sim walk_and_jump
  platformer levels`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		lvl, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
		}
		logger.SetLevel(lvl)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagProfile, "profile", "classic", "Body profile under prefabs/")
	rootCmd.PersistentFlags().StringVar(&flagLevel, "level", "", "Level under levels/ (default: the profile's level)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(termCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(levelsCmd)
}
