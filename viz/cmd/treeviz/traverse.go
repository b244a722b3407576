package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"go.lepak.sg/treeviz/tree/binary"
	"go.lepak.sg/treeviz/tree/traverse"
)

func newTraverseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "traverse",
		Short: "build a tree and print its traversal orders side by side",
		Long:  "Prints every traversal order, or only the one given with --order.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, _, err := newVisualizer(cmd)
			if err != nil {
				return err
			}

			orders := traverse.Orders
			if cmd.Flags().Changed("order") {
				orders = []traverse.Order{cfg.Order}
			}

			header := table.Row{"#"}
			for _, o := range orders {
				header = append(header, o.String())
			}

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.SetStyle(table.StyleRounded)
			t.AppendHeader(header)
			t.AppendRows(traversalRows(v.Tree(), orders))
			t.Render()

			return nil
		},
	}
	addValuesFlag(cmd.Flags())

	return cmd
}

// traversalRows returns one row per step: the step number, then the
// node visited at that step in each order, as "value (id)".
func traversalRows(tr *binary.Tree, orders []traverse.Order) []table.Row {
	rows := make([]table.Row, tr.Len())
	for i := range rows {
		rows[i] = table.Row{i + 1}
	}

	for _, o := range orders {
		it := traverse.NewIterator(tr, o, tr.Height())
		for i := 0; it.Next(); i++ {
			n, _ := tr.Node(it.Item())
			rows[i] = append(rows[i], fmt.Sprintf("%d (%s)", n.Value, n.ID))
		}
	}

	return rows
}
