// Command streebogsum prints or checks GOST R 34.11-2012 (Streebog) digests.
//
//	streebogsum [-a 256|512] [-le] [file ...]   print "digest\tpath" lines
//	streebogsum -c list [-v]                    verify a list written by the above
//	streebogsum -bench                          report hashing throughput
//
// With no files, or with "-", standard input is hashed.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"

	streebog "github.com/Flowneee/streebog-hash"
)

type options struct {
	variant  streebog.Variant
	le       bool
	workers  int
	progress bool
	verbose  bool
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("streebogsum: ")

	bits := flag.Int("a", 256, "digest size in bits: 256 or 512")
	check := flag.String("c", "", "verify digests listed in this file")
	le := flag.Bool("le", false, "print digests least significant byte first")
	workers := flag.Int("workers", runtime.NumCPU(), "number of files hashed in parallel")
	progress := flag.Bool("progress", false, "show progress and throughput on stderr")
	verbose := flag.Bool("v", false, "print every file in verify mode, not only failures")
	bench := flag.Bool("bench", false, "measure hashing throughput and exit")
	flag.Parse()

	o := options{
		variant:  streebog.Variant(*bits),
		le:       *le,
		workers:  *workers,
		progress: *progress,
		verbose:  *verbose,
	}
	if *bits != 256 && *bits != 512 {
		log.Fatalf("-a must be 256 or 512, got %d", *bits)
	}
	if o.workers < 1 {
		o.workers = 1
	}

	switch {
	case *bench:
		runBench(os.Stdout)
	case *check != "":
		failed, err := checkList(*check, o, os.Stdout)
		if err != nil {
			log.Fatal(err)
		}
		if failed > 0 {
			os.Exit(1)
		}
	default:
		paths := flag.Args()
		if len(paths) == 0 {
			paths = []string{"-"}
		}
		if err := sumFiles(paths, o, os.Stdout); err != nil {
			log.Fatal(err)
		}
	}
}

func (o options) format(digest []byte) string {
	if o.le {
		r := make([]byte, len(digest))
		for i := range digest {
			r[i] = digest[len(digest)-1-i]
		}
		digest = r
	}
	return fmt.Sprintf("%x", digest)
}
