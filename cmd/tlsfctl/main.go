// Command tlsfctl exercises the tlsf allocator from the shell: each
// subcommand admits one anonymous pool and drives either a randomized
// allocation benchmark or a pool-walking dump against it.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var logger *zap.Logger

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "tlsfctl",
		Short: "Drive a tlsf allocator instance from the command line",
	}
	root.AddCommand(benchCmd(), walkCmd())
	return root
}

func main() {
	var err error
	logger, err = zap.NewDevelopment()
	if err != nil {
		fmt.Fprintln(os.Stderr, "tlsfctl: logger init:", err)
		os.Exit(1)
	}
	defer logger.Sync() //nolint:errcheck

	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
