package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	streebog "github.com/Flowneee/streebog-hash"
)

type entry struct {
	digest string
	path   string
}

// readList parses "digest\tpath" lines. The digest length selects the
// variant of each entry.
func readList(r io.Reader) ([]entry, []job, error) {
	var (
		entries []entry
		jobs    []job
	)
	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		text := scanner.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		parts := strings.SplitN(text, "\t", 2)
		if len(parts) != 2 {
			return nil, nil, fmt.Errorf("line %d: missing tab separator", line)
		}
		digest := strings.ToLower(strings.TrimPrefix(parts[0], "0x"))
		var v streebog.Variant
		switch len(digest) {
		case 2 * streebog.Size256:
			v = streebog.Streebog256
		case 2 * streebog.Size512:
			v = streebog.Streebog512
		default:
			return nil, nil, fmt.Errorf("line %d: digest has %d hex digits", line, len(digest))
		}
		entries = append(entries, entry{digest: digest, path: parts[1]})
		jobs = append(jobs, job{path: parts[1], variant: v})
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}
	return entries, jobs, nil
}

// checkList re-hashes every file named in listfile and reports mismatches.
// It returns the number of entries that failed.
func checkList(listfile string, o options, out io.Writer) (int, error) {
	f, err := os.Open(listfile)
	if err != nil {
		return 0, err
	}
	entries, jobs, err := readList(f)
	f.Close()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", listfile, err)
	}

	var match, mismatch int
	for i, r := range hashAll(jobs, o) {
		e := entries[i]
		switch {
		case r.err != nil:
			log.Printf("%v", r.err)
			fmt.Fprintf(out, "%s FAILED\n", e.path)
			mismatch++
		case r.digest != e.digest:
			fmt.Fprintf(out, "%s MISMATCH\n", e.path)
			mismatch++
		default:
			if o.verbose {
				fmt.Fprintf(out, "%s OK\n", e.path)
			}
			match++
		}
	}
	if !o.verbose && mismatch == 0 {
		fmt.Fprintln(out, "All files match")
	}
	fmt.Fprintf(out, "Total:%d Match:%d Mismatch:%d\n", len(entries), match, mismatch)
	return mismatch, nil
}
