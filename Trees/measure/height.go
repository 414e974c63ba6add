package main

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/dustin/go-humanize"
	"github.com/g-m-twostay/go-multiset/Trees"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var ErrHeightBound = errors.New("height exceeds AVL bound")

func newHeightCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "height",
		Short: "Insert n keys and check the height against 1.45*log2(n+2)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return runHeight(cmd, cfg)
		},
	}
	cmd.Flags().String("order", defaultOrder, "insertion order: sorted, reverse, random")
	return cmd
}

// keys of length n in the configured insertion order.
func keys(cfg *Config) []int {
	all := make([]int, cfg.N)
	switch cfg.Order {
	case "sorted":
		for i := range all {
			all[i] = i
		}
	case "reverse":
		for i := range all {
			all[i] = len(all) - 1 - i
		}
	default:
		r := rand.New(rand.NewSource(cfg.Seed))
		for i := range all {
			all[i] = r.Intn(len(all))
		}
	}
	return all
}

func runHeight(cmd *cobra.Command, cfg *Config) error {
	log := cfg.logger(cmd)
	tree := Trees.New[int, uint32](cfg.N)
	for _, v := range keys(cfg) {
		tree.Insert(v)
	}
	log.Debug("inserted", "n", cfg.N, "order", cfg.Order, "distinct", tree.Len())
	if err := tree.Check(); err != nil {
		return err
	}

	h, bound := tree.Height(), Trees.HeightBound(uint64(cfg.N))
	tbl := table.NewWriter()
	tbl.SetOutputMirror(cmd.OutOrStdout())
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"n", "order", "distinct", "height", "bound"})
	tbl.AppendRow(table.Row{humanize.Comma(int64(cfg.N)), cfg.Order, humanize.Comma(int64(tree.Len())), h, fmt.Sprintf("%.2f", bound)})
	tbl.Render()

	if float64(h) > bound {
		return fmt.Errorf("%w: %d > %.2f", ErrHeightBound, h, bound)
	}
	return nil
}
