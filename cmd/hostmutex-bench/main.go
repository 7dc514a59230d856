package main

import (
	"flag"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/mirkobrombin/go-hostmutex/v1/mutex"
	"golang.org/x/sync/errgroup"
)

var (
	concurrency = flag.Int("c", 8, "Concurrency")
	iterations  = flag.Int("n", 1000000, "Locked increments per worker")
	target      = flag.String("target", "all", "Target: native, sync, instrumented")
)

func main() {
	flag.Parse()

	targets := strings.Split(*target, ",")
	if *target == "all" {
		targets = []string{"native", "sync", "instrumented"}
	}

	fmt.Printf("| %-20s | %-12s | %-12s |\n", "Lock", "Ops/sec", "Avg Latency")
	fmt.Println("|:---|:---|:---|")

	for _, t := range targets {
		runBenchmark(strings.TrimSpace(t))
	}
}

func runBenchmark(name string) {
	var (
		lockFn   func()
		unlockFn func()
		cleanup  func()
	)

	label := name
	switch name {
	case "native":
		m := mutex.New()
		lockFn, unlockFn, cleanup = m.Lock, m.Unlock, m.Close
		label = fmt.Sprintf("native(%s)", mutex.Backend)
	case "instrumented":
		m := mutex.New()
		im := mutex.NewInstrumented(m)
		lockFn, unlockFn, cleanup = im.Lock, im.Unlock, m.Close
	case "sync":
		var m sync.Mutex
		lockFn, unlockFn = m.Lock, m.Unlock
	default:
		fmt.Printf("unknown target %q\n", name)
		return
	}

	counter := 0
	total := *concurrency * *iterations
	start := time.Now()

	var g errgroup.Group
	for w := 0; w < *concurrency; w++ {
		g.Go(func() error {
			for i := 0; i < *iterations; i++ {
				lockFn()
				counter++
				unlockFn()
			}
			return nil
		})
	}
	_ = g.Wait()
	elapsed := time.Since(start)

	if cleanup != nil {
		cleanup()
	}
	if counter != total {
		fmt.Printf("%s: lost updates (%d != %d)\n", label, counter, total)
		return
	}

	fmt.Printf("| %-20s | %-12.0f | %-12v |\n",
		label, float64(total)/elapsed.Seconds(), elapsed/time.Duration(total))
}
