package main

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/brachistochrone/descent"
	"github.com/spf13/cobra"
)

func newHorizonCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "horizon <resolution>",
		Short: "Print the stage count derived for a grid resolution",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 1 {
				return fmt.Errorf("%w: %q", descent.ErrBadResolution, args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), descent.Horizon(n))

			return nil
		},
	}
}
