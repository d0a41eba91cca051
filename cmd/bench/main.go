// Command bench measures arena allocation latency against the Go heap.
//
// Each workload is run -repeat times; the best and worst runs are dropped
// and the rest averaged, to keep scheduler noise out of the numbers.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"time"

	units "github.com/docker/go-units"
	"go.uber.org/zap"

	"github.com/vcthuster/armel"
)

var (
	capacityStr = flag.String("capacity", "1MB", "Arena capacity (e.g. 64KB, 4MB)")
	alignment   = flag.Int("alignment", armel.DefaultAlignment, "Arena alignment in bytes")
	allocSize   = flag.Int("alloc-size", 64, "Size of each allocation in bytes")
	repeat      = flag.Int("repeat", 20, "Runs per workload (best and worst are discarded)")
	zeros       = flag.Bool("zeros", false, "Benchmark with the ZEROS flag set")
	baseline    = flag.Bool("baseline", true, "Also benchmark the Go heap for comparison")
)

func main() {
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to set up logging: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Sugar()

	capacity, err := units.RAMInBytes(*capacityStr)
	if err != nil {
		log.Fatalf("invalid -capacity %q: %v", *capacityStr, err)
	}
	if *repeat < 3 {
		log.Fatalf("-repeat must be at least 3, got %d", *repeat)
	}
	if *allocSize <= 0 {
		log.Fatalf("-alloc-size must be positive, got %d", *allocSize)
	}

	flags := armel.NoFlag
	if *zeros {
		flags |= armel.Zeros
	}

	log.Infof("arena bench: capacity=%s alignment=%d alloc-size=%d flags=%v",
		units.BytesSize(float64(capacity)), *alignment, *allocSize, flags)

	a := armel.New(int(capacity), *alignment, flags)
	defer a.Free()

	perRound := a.Cap() / armel.AlignUp(*allocSize, *alignment)
	if perRound == 0 {
		log.Fatalf("alloc size %d does not fit in capacity %d", *allocSize, a.Cap())
	}

	report(log, "arena alloc", *repeat, func() time.Duration {
		start := time.Now()
		for i := 0; i < perRound; i++ {
			if _, err := a.Alloc(*allocSize); err != nil {
				log.Fatalf("allocation failed: %v", err)
			}
		}
		elapsed := time.Since(start)
		a.Reset()
		return elapsed / time.Duration(perRound)
	})

	report(log, "arena alloc+reset cycle", *repeat, func() time.Duration {
		start := time.Now()
		for i := 0; i < perRound; i++ {
			if _, err := a.Alloc(*allocSize); err != nil {
				log.Fatalf("allocation failed: %v", err)
			}
			a.Reset()
		}
		return time.Since(start) / time.Duration(perRound)
	})

	if *baseline {
		var sink []byte
		report(log, "go heap make", *repeat, func() time.Duration {
			start := time.Now()
			for i := 0; i < perRound; i++ {
				sink = make([]byte, *allocSize)
			}
			elapsed := time.Since(start)
			_ = sink
			return elapsed / time.Duration(perRound)
		})
	}
}

// report runs fn repeat times and logs the trimmed mean per-op latency.
func report(log *zap.SugaredLogger, label string, repeat int, fn func() time.Duration) {
	results := make([]time.Duration, repeat)
	for i := range results {
		results[i] = fn()
	}
	sort.Slice(results, func(i, j int) bool { return results[i] < results[j] })

	var total time.Duration
	for _, r := range results[1 : len(results)-1] {
		total += r
	}
	avg := total / time.Duration(len(results)-2)
	log.Infof("%-24s avg over %d runs: %v/op", label, len(results)-2, avg)
}
