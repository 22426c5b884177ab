package main

import (
	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/maisem/keypad"
	"github.com/maisem/keypad/internal/config"
)

// app carries state shared by all commands.
type app struct {
	configPath string
	verbose    bool

	cfg config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "keypad",
		Short: "Count the button presses needed to type codes through robot keypads",
		Long: `keypad computes the minimum number of button presses a human must make
so that a chain of robots, each operating a directional keypad that steers
the next one, types door codes on a numeric keypad.

Pads:
` + keypad.NumericPad.String() + `

` + keypad.DirectionalPad.String(),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.InfoLevel
			if a.verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(cmd.ErrOrStderr(), level)))

			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			a.cfg = cfg
			return nil
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to YAML config")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newScoreCmd(a))
	root.AddCommand(newCostCmd(a))
	root.AddCommand(newSampleCmd(a))
	return root
}
