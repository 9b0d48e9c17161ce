package main

import (
	"fmt"
	"io"
	"time"

	cpuid "github.com/klauspost/cpuid/v2"

	streebog "github.com/Flowneee/streebog-hash"
)

const (
	benchChunk    = 1 << 20
	benchDuration = time.Second
)

// runBench hashes a 1 MiB buffer repeatedly for each variant and prints
// the throughput together with the CPU it ran on.
func runBench(out io.Writer) {
	fmt.Fprintf(out, "cpu: %s (%d physical cores, %d logical)\n",
		cpuid.CPU.BrandName, cpuid.CPU.PhysicalCores, cpuid.CPU.LogicalCores)

	data := make([]byte, benchChunk)
	for i := range data {
		data[i] = byte(i)
	}
	for _, v := range []streebog.Variant{streebog.Streebog256, streebog.Streebog512} {
		n, elapsed := measure(v, data, benchDuration)
		fmt.Fprintf(out, "%s: %.2f MB/s\n", v, float64(n)/elapsed.Seconds()/1e6)
	}
}

// measure hashes data until d has passed and returns the bytes hashed.
func measure(v streebog.Variant, data []byte, d time.Duration) (int64, time.Duration) {
	h := streebog.NewHasher(v)
	var n int64
	start := time.Now()
	for time.Since(start) < d {
		h.Write(data)
		n += int64(len(data))
	}
	h.Finish()
	return n, time.Since(start)
}
