package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/maisem/keypad"
)

func newSampleCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "sample",
		Short: "Check the built-in samples against their expected scores",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			o := keypad.NewOracle(nil)
			o.Logf = debugLogf(loggerFromContext(cmd.Context()))
			failed := false
			for _, s := range keypad.Samples() {
				ok, err := keypad.CheckSample(cmd.OutOrStdout(), o, s)
				if err != nil {
					return err
				}
				failed = failed || !ok
			}
			if failed {
				return errors.New("sample mismatch")
			}
			return nil
		},
	}
}
