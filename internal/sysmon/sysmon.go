// Package sysmon samples host-wide CPU and memory usage for the run summary.
package sysmon

import (
	"context"
	"errors"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// Stats is one host-wide resource snapshot.
type Stats struct {
	CPUPercent float64 // 0.0 .. 100.0
	MemPercent float64 // 0.0 .. 100.0
	MemUsed    uint64
	MemTotal   uint64
}

// Sample collects a snapshot. CPU usage is the delta since the previous call
// in this process, so the first sample may read 0. Fields whose probe failed
// are left zero and the failures are returned joined.
func Sample(ctx context.Context) (Stats, error) {
	var (
		s    Stats
		errs []error
	)
	pcts, err := cpu.PercentWithContext(ctx, 0, false)
	switch {
	case err != nil:
		errs = append(errs, err)
	case len(pcts) > 0:
		s.CPUPercent = pcts[0]
	}

	vmem, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		errs = append(errs, err)
	} else if vmem != nil {
		s.MemPercent = vmem.UsedPercent
		s.MemUsed = vmem.Used
		s.MemTotal = vmem.Total
	}
	return s, errors.Join(errs...)
}
