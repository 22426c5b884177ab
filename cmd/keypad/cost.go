package main

import (
	"fmt"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/maisem/keypad"
)

func newCostCmd(a *app) *cobra.Command {
	var (
		levels int
		robots int
		pad    string
	)
	cmd := &cobra.Command{
		Use:   "cost <from> <to>",
		Short: "Presses needed to move a pad from one button to another and press it",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := keypad.ParsePadKind(pad)
			if err != nil {
				return err
			}
			from, err := button(args[0])
			if err != nil {
				return err
			}
			to, err := button(args[1])
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("robots") {
				levels = keypad.LevelsForRobots(robots)
			}
			o := keypad.NewOracle(nil)
			o.Logf = debugLogf(loggerFromContext(cmd.Context()))
			v, err := o.Cost(from, to, levels, kind)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), v)
			return nil
		},
	}
	cmd.Flags().IntVar(&levels, "levels", keypad.LevelsForRobots(2), "levels of indirection between the human and the pad")
	cmd.Flags().IntVar(&robots, "robots", 0, "robots between the human and the pad's robot; overrides --levels")
	cmd.Flags().StringVar(&pad, "pad", "numeric", "pad to operate: numeric or directional")
	cmd.MarkFlagsMutuallyExclusive("levels", "robots")
	return cmd
}

func button(s string) (rune, error) {
	r, n := utf8.DecodeRuneInString(s)
	if n == 0 || n != len(s) {
		return 0, fmt.Errorf("want a single button, got %q", s)
	}
	return r, nil
}
