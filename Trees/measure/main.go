// Command measure checks the AVL height bound and compares the multiset
// against other ordered containers.
package main

import (
	"fmt"
	"os"
	"testing"

	"github.com/spf13/cobra"
)

var version = "dev"

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "measure",
		Short:         "Measure the AVL multiset",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("config", "", "yaml config file")
	root.PersistentFlags().BoolP("verbose", "v", false, "debug logging")
	root.PersistentFlags().Uint32("n", defaultN, "number of keys")
	root.PersistentFlags().Int64("seed", 0, "random seed")

	root.AddCommand(newHeightCommand())
	root.AddCommand(newCompareCommand())
	root.AddCommand(versionCmd())
	return root
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "measure %s\n", version)
		},
	}
}

func main() {
	testing.Init()
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
