package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "build a tree and print it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, term, err := newVisualizer(cmd)
			if err != nil {
				return err
			}
			tr := v.Tree()

			out := cmd.OutOrStdout()
			fmt.Fprint(out, term.Frame())
			fmt.Fprintln(out)
			fmt.Fprint(out, tr.String())
			fmt.Fprintln(out, "nodes:", tr.Len(), "height:", tr.Height())

			return tr.Check()
		},
	}
	addValuesFlag(cmd.Flags())

	return cmd
}
