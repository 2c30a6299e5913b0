// kaya is a single-screen rocket arcade game for the terminal.
//
// Usage:
//
//	kaya              - Play (same as kaya play)
//	kaya play         - Play the rocket scene
//	kaya config       - Print the effective game configuration as YAML
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--config <path>     - Use a custom game config YAML
//	--log-file <path>   - Write logs here (default: $XDG_STATE_HOME/kaya/kaya.log)
//	--debug             - Log at debug level
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS     int
	flagConfig  string
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "kaya",
	Short: "Kaya - steer a rocket through the gaps",
	Long: `Kaya is a single-screen arcade game played in the terminal.

Tap to fire the rocket's thruster and keep it inside the gap of the
obstacles scrolling in from the right. Every pair cleared scores a point;
touching a bar or the edge of the scene ends the run.

Available commands:
  play     - Play the game (default)
  config   - Print the effective game configuration

Examples:
  kaya
  kaya play --fps 30
  kaya config > ~/.config/kaya/rocket.yaml
  kaya play --config ./low-gravity.yaml --debug`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file path (default: XDG state dir)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
}
