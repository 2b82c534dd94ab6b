// Package main provides a command-line harness for querying an Annoy
// index file: it parses arguments, opens the engine, prints the query
// vector, and prints the top-10 nearest neighbors with their scores.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	annoy "github.com/go-annoy/annoygo"
)

func main() {
	blockNodes := flag.Int("block-nodes", 0, "override mmap block size, in whole nodes (0 = default)")
	flag.Parse()

	args := flag.Args()
	if len(args) != 4 {
		fmt.Fprintln(os.Stderr, "Usage: annoyquery [flags] <index-path> <dimension> <metric:angular|euclidean|dot> <queryItemId>")
		flag.PrintDefaults()
		os.Exit(1)
	}

	path := args[0]

	dimension, err := strconv.Atoi(args[1])
	if err != nil {
		log.Fatalf("invalid dimension %q: %v", args[1], err)
	}

	metric, err := annoy.ParseMetric(args[2])
	if err != nil {
		log.Fatalf("%v", err)
	}

	queryItemID, err := strconv.ParseInt(args[3], 10, 32)
	if err != nil {
		log.Fatalf("invalid item id %q: %v", args[3], err)
	}

	var opts []annoy.OpenOption
	if *blockNodes > 0 {
		opts = append(opts, annoy.WithBlockSize(*blockNodes))
	}

	engine, err := annoy.Open(path, dimension, metric, opts...)
	if err != nil {
		log.Fatalf("failed to open %s: %v", path, err)
	}
	defer func() {
		if err := engine.Close(); err != nil {
			log.Printf("failed to close engine: %v", err)
		}
	}()

	query, err := engine.ItemVector(int32(queryItemID))
	if err != nil {
		log.Fatalf("failed to read item %d: %v", queryItemID, err)
	}

	fmt.Println(query)

	neighbors, err := engine.NearestWithScores(query, 10)
	if err != nil {
		log.Fatalf("nearest-neighbor query failed: %v", err)
	}

	for _, n := range neighbors {
		fmt.Printf("%d %d %g\n", queryItemID, n.ID, n.Score)
	}
}
