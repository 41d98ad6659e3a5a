package main

import (
	"unsafe"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/go-tlsf/tlsf"
)

func walkCmd() *cobra.Command {
	var poolBytes int

	cmd := &cobra.Command{
		Use:   "walk",
		Short: "Admit a pool, run a short scripted malloc/free sequence, and dump its block layout",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWalk(poolBytes)
		},
	}
	cmd.Flags().IntVar(&poolBytes, "pool-bytes", 64<<10, "size of the backing pool, in bytes")
	return cmd
}

func runWalk(poolBytes int) error {
	mem, err := tlsf.NewAnonymousPool(poolBytes)
	if err != nil {
		return errors.Wrap(err, "allocate backing pool")
	}
	defer tlsf.ReleasePool(mem) //nolint:errcheck

	ctl := tlsf.New()
	pool, err := ctl.AddPool(mem)
	if err != nil {
		return errors.Wrap(err, "admit pool")
	}

	a := ctl.Malloc(256)
	b := ctl.Malloc(64)
	_ = ctl.Malloc(1024)
	ctl.Free(b)
	_ = a

	ctl.WalkPool(pool, func(payload unsafe.Pointer, size uintptr, used bool) {
		logger.Info("block",
			zap.Uintptr("payload", uintptr(payload)),
			zap.Uint64("size", uint64(size)),
			zap.Bool("used", used),
		)
	})
	return nil
}
