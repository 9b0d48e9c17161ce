package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/paulbellamy/ratecounter"

	streebog "github.com/Flowneee/streebog-hash"
)

type job struct {
	path    string
	variant streebog.Variant
}

type result struct {
	digest string
	err    error
}

// meter counts hashed bytes for the progress line.
type meter struct {
	rate  *ratecounter.RateCounter
	files atomic.Int64
}

func newMeter() *meter {
	return &meter{rate: ratecounter.NewRateCounter(time.Second)}
}

// countingWriter feeds a hasher and reports every write to the meter.
type countingWriter struct {
	w io.Writer
	m *meter
}

func (c countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.m.rate.Incr(int64(n))
	return n, err
}

func hashFile(path string, v streebog.Variant, o options, m *meter) (string, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return "", err
		}
		defer f.Close()
		r = f
	}

	h := streebog.NewHasher(v)
	var w io.Writer = h
	if m != nil {
		w = countingWriter{w: h, m: m}
	}
	if _, err := io.Copy(w, r); err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	h.Finish()
	return o.format(h.Result()), nil
}

// hashAll hashes jobs with o.workers goroutines. Results keep the order of jobs.
func hashAll(jobs []job, o options) []result {
	results := make([]result, len(jobs))
	var m *meter
	if o.progress {
		m = newMeter()
		ticker := time.NewTicker(time.Second)
		done := make(chan struct{})
		defer func() {
			close(done)
			ticker.Stop()
			fmt.Fprintf(os.Stderr, "%d/%d\n", m.files.Load(), len(jobs))
		}()
		go func() {
			for {
				select {
				case <-ticker.C:
					fmt.Fprintf(os.Stderr, "%d/%d %d B/s\n", m.files.Load(), len(jobs), m.rate.Rate())
				case <-done:
					return
				}
			}
		}()
	}

	next := make(chan int)
	wg := sync.WaitGroup{}
	for i := 0; i < o.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range next {
				j := jobs[idx]
				d, err := hashFile(j.path, j.variant, o, m)
				results[idx] = result{digest: d, err: err}
				if m != nil {
					m.files.Add(1)
				}
			}
		}()
	}
	for i := range jobs {
		next <- i
	}
	close(next)
	wg.Wait()
	return results
}

// sumFiles writes one "digest\tpath" line per readable path. Unreadable
// paths are logged and make the call fail after all others are printed.
func sumFiles(paths []string, o options, out io.Writer) error {
	jobs := make([]job, len(paths))
	for i, p := range paths {
		jobs[i] = job{path: p, variant: o.variant}
	}
	var failed int
	for i, r := range hashAll(jobs, o) {
		if r.err != nil {
			log.Printf("%v", r.err)
			failed++
			continue
		}
		fmt.Fprintf(out, "%s\t%s\n", r.digest, paths[i])
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files could not be read", failed, len(paths))
	}
	return nil
}
