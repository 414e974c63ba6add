package main

import (
	"flag"
	"fmt"
	"math/rand"
	"testing"

	"github.com/dustin/go-humanize"
	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/g-m-twostay/go-multiset/Trees"
	"github.com/google/btree"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/petar/GoLLRB/llrb"
	"github.com/spf13/cobra"
)

func newCompareCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Benchmark the multiset against btree, llrb and gods red-black trees",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return runCompare(cmd, cfg)
		},
	}
	cmd.Flags().String("ops", defaultOps, "workload: query, insert, remove")
	cmd.Flags().String("benchtime", defaultBenchTime, "run time or iteration count (Nx) per container")
	return cmd
}

// container is one ordered structure under test. Each method runs the
// workload over all keys once.
type container interface {
	name() string
	reset()
	insert(all []int)
	query(all []int) int
	remove(all []int)
}

var sideEff int

func runCompare(cmd *cobra.Command, cfg *Config) error {
	log := cfg.logger(cmd)
	if err := flag.Set("test.benchtime", cfg.BenchTime); err != nil {
		return fmt.Errorf("benchtime %q: %w", cfg.BenchTime, err)
	}
	r := rand.New(rand.NewSource(cfg.Seed))
	all := make([]int, cfg.N)
	for i := range all {
		all[i] = r.Intn(len(all))
	}

	tbl := table.NewWriter()
	tbl.SetOutputMirror(cmd.OutOrStdout())
	tbl.SetStyle(table.StyleLight)
	tbl.SetTitle(fmt.Sprintf("%s, n=%s", cfg.Ops, humanize.Comma(int64(cfg.N))))
	tbl.AppendHeader(table.Row{"container", "iterations", "ns/key", "allocs/op", "bytes/op"})
	for _, c := range containers(cfg.N) {
		br := testing.Benchmark(workload(c, cfg.Ops, all))
		if br.N == 0 {
			return fmt.Errorf("%s: benchmark failed", c.name())
		}
		log.Debug("benchmarked", "container", c.name(), "n", br.N, "elapsed", br.T)
		perKey := float64(br.NsPerOp()) / float64(len(all))
		tbl.AppendRow(table.Row{
			c.name(),
			humanize.Comma(int64(br.N)),
			humanize.CommafWithDigits(perKey, 1),
			humanize.Comma(br.AllocsPerOp()),
			humanize.Bytes(uint64(br.AllocedBytesPerOp())),
		})
	}
	tbl.Render()
	return nil
}

func workload(c container, ops string, all []int) func(*testing.B) {
	return func(b *testing.B) {
		b.ReportAllocs()
		switch ops {
		case "insert":
			for range b.N {
				c.reset()
				c.insert(all)
			}
		case "remove":
			for range b.N {
				b.StopTimer()
				c.reset()
				c.insert(all)
				b.StartTimer()
				c.remove(all)
			}
		default:
			c.reset()
			c.insert(all)
			b.ResetTimer()
			for range b.N {
				sideEff += c.query(all)
			}
		}
	}
}

func containers(n uint32) []container {
	return []container{&avl{hint: n}, &bt{}, &rb{}, &gods{}}
}

type avl struct {
	hint uint32
	t    *Trees.AVLTree[int, uint32]
}

func (c *avl) name() string { return "avl" }
func (c *avl) reset()       { c.t = Trees.New[int, uint32](c.hint) }

func (c *avl) insert(all []int) {
	for _, v := range all {
		c.t.Insert(v)
	}
}

func (c *avl) query(all []int) (s int) {
	for _, v := range all {
		p, _ := c.t.Predecessor(v)
		s += p
	}
	return
}

func (c *avl) remove(all []int) {
	for _, v := range all {
		c.t.Remove(v)
	}
}

// bt is a set; duplicate keys collapse.
type bt struct {
	t *btree.BTreeG[int]
}

func (c *bt) name() string { return "btree" }
func (c *bt) reset()       { c.t = btree.NewOrderedG[int](32) }

func (c *bt) insert(all []int) {
	for _, v := range all {
		c.t.ReplaceOrInsert(v)
	}
}

func (c *bt) query(all []int) (s int) {
	for _, v := range all {
		c.t.DescendLessOrEqual(v-1, func(p int) bool {
			s += p
			return false
		})
	}
	return
}

func (c *bt) remove(all []int) {
	for _, v := range all {
		c.t.Delete(v)
	}
}

// rb is a set; duplicate keys collapse.
type rb struct {
	t *llrb.LLRB
}

func (c *rb) name() string { return "llrb" }
func (c *rb) reset()       { c.t = llrb.New() }

func (c *rb) insert(all []int) {
	for _, v := range all {
		c.t.ReplaceOrInsert(llrb.Int(v))
	}
}

func (c *rb) query(all []int) (s int) {
	for _, v := range all {
		c.t.DescendLessOrEqual(llrb.Int(v-1), func(p llrb.Item) bool {
			s += int(p.(llrb.Int))
			return false
		})
	}
	return
}

func (c *rb) remove(all []int) {
	for _, v := range all {
		c.t.Delete(llrb.Int(v))
	}
}

// gods keeps a count per key, like the multiset.
type gods struct {
	t *redblacktree.Tree
}

func (c *gods) name() string { return "gods" }
func (c *gods) reset()       { c.t = redblacktree.NewWithIntComparator() }

func (c *gods) insert(all []int) {
	for _, v := range all {
		if cnt, ok := c.t.Get(v); ok {
			c.t.Put(v, cnt.(int)+1)
		} else {
			c.t.Put(v, 1)
		}
	}
}

func (c *gods) query(all []int) (s int) {
	for _, v := range all {
		if p, ok := c.t.Floor(v - 1); ok {
			s += p.Key.(int)
		}
	}
	return
}

func (c *gods) remove(all []int) {
	for _, v := range all {
		cnt, ok := c.t.Get(v)
		switch {
		case !ok:
		case cnt.(int) == 1:
			c.t.Remove(v)
		default:
			c.t.Put(v, cnt.(int)-1)
		}
	}
}
