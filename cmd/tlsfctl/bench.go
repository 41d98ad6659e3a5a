package main

import (
	"math/rand"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/go-tlsf/tlsf"
)

func benchCmd() *cobra.Command {
	var poolBytes int
	var ops int
	var maxAlloc int
	var seed int64

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Run a randomized malloc/free workload against one pool",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(poolBytes, ops, maxAlloc, seed)
		},
	}

	cmd.Flags().IntVar(&poolBytes, "pool-bytes", 4<<20, "size of the backing pool, in bytes")
	cmd.Flags().IntVar(&ops, "ops", 200000, "number of malloc/free operations to perform")
	cmd.Flags().IntVar(&maxAlloc, "max-alloc", 4096, "largest single allocation request, in bytes")
	cmd.Flags().Int64Var(&seed, "seed", 1, "PRNG seed, for reproducible runs")

	return cmd
}

func runBench(poolBytes, ops, maxAlloc int, seed int64) error {
	mem, err := tlsf.NewAnonymousPool(poolBytes)
	if err != nil {
		return errors.Wrap(err, "allocate backing pool")
	}
	defer tlsf.ReleasePool(mem) //nolint:errcheck

	ctl := tlsf.New()
	if _, err := ctl.AddPool(mem); err != nil {
		return errors.Wrap(err, "admit pool")
	}

	rng := rand.New(rand.NewSource(seed))
	live := make([]uintptr, 0, ops)
	var allocs, frees, failures int

	for i := 0; i < ops; i++ {
		if len(live) > 0 && rng.Intn(2) == 0 {
			idx := rng.Intn(len(live))
			ctl.Free(asPointer(live[idx]))
			live[idx] = live[len(live)-1]
			live = live[:len(live)-1]
			frees++
			continue
		}
		n := uintptr(1 + rng.Intn(maxAlloc))
		ptr := ctl.Malloc(n)
		if ptr == nil {
			failures++
			continue
		}
		live = append(live, asUintptr(ptr))
		allocs++
	}

	logger.Info("bench complete",
		zap.Int("allocs", allocs),
		zap.Int("frees", frees),
		zap.Int("failures", failures),
		zap.Int("still_live", len(live)),
	)
	return nil
}
