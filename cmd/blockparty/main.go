// blockparty.go - a solver for the Block Party look-around puzzle.
// Copyright (C) 2026 Daniel C. Brotsky.
//
// This program is free software; you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation; either version 2 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License along
// with this program; if not, write to the Free Software Foundation, Inc.,
// 51 Franklin Street, Fifth Floor, Boston, MA 02110-1301 USA.
// Licensed under the LGPL v3.  See the LICENSE file for details

// Command-line driver for Block Party boards: prints and solves
// the bundled example layouts.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ancientHacker/blockparty.go/puzzle"
	"github.com/ancientHacker/blockparty.go/storage"
)

var (
	boardName = flag.String("board", "all", "which example to run: 1x1, 2x2, 5x5, or all")
	timeout   = flag.Duration("timeout", 30*time.Second, "time allowed per solve")
	unique    = flag.Bool("unique", false, "also check whether the solution is unique")
	cache     = flag.Bool("cache", false, "cache and archive solves in Redis/Postgres")
)

func main() {
	flag.Parse()
	boards, err := selectBoards(*boardName)
	if err != nil {
		log.Printf("%v", err)
		flag.Usage()
		os.Exit(2)
	}

	useStorage := false
	if *cache {
		if cacheId, databaseId, err := storage.Connect(); err != nil {
			log.Printf("Storage unavailable, solving without it: %v", err)
			storage.Close()
		} else {
			log.Printf("Connected to cache %s and database %s", cacheId, databaseId)
			useStorage = true
			defer storage.Close()
		}
	}

	failures := 0
	for _, nb := range boards {
		if !runBoard(nb.name, nb.board, useStorage) {
			failures++
		}
	}
	if failures > 0 {
		os.Exit(1)
	}
}

/*

example selection

*/

type namedBoard struct {
	name  string
	board *puzzle.Board
}

// selectBoards builds the example boards matching the -board
// flag.
func selectBoards(name string) ([]namedBoard, error) {
	builders := []struct {
		name  string
		build func() (*puzzle.Board, error)
	}{
		{"1x1", puzzle.Example1x1},
		{"2x2", puzzle.Example2x2},
		{"5x5", puzzle.Example5x5},
	}
	var boards []namedBoard
	for _, builder := range builders {
		if name != "all" && name != builder.name {
			continue
		}
		b, err := builder.build()
		if err != nil {
			return nil, fmt.Errorf("Couldn't build the %s example: %v", builder.name, err)
		}
		boards = append(boards, namedBoard{builder.name, b})
	}
	if len(boards) == 0 {
		return nil, fmt.Errorf("No example named %q", name)
	}
	return boards, nil
}

/*

solving

*/

// runBoard prints, solves, and reports on one board.  Returns
// false when the solve failed.
func runBoard(name string, b *puzzle.Board, useStorage bool) bool {
	fmt.Printf("%s unsolved:\n%s\n", name, b)
	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if useStorage {
		if hit, err := storage.CachedSolution(b); err != nil {
			log.Printf("Cache lookup failed for %s: %v", name, err)
		} else if hit != nil {
			fmt.Printf("%s solved (cached):\n%s\n", name, hit)
			return true
		}
	}

	start := time.Now()
	_, err := b.Solve(ctx)
	elapsed := time.Since(start)
	switch {
	case puzzle.IsInfeasibleError(err):
		fmt.Printf("%s has no solution (proved in %v)\n", name, elapsed.Round(time.Millisecond))
		return true
	case puzzle.IsTimeoutError(err):
		log.Printf("Solving %s did not finish within %v", name, *timeout)
		return false
	case err != nil:
		log.Printf("Solving %s failed: %v", name, err)
		return false
	}
	fmt.Printf("%s solved in %v:\n%s\n", name, elapsed.Round(time.Millisecond), b)

	if *unique {
		switch count, err := b.CountSolutions(ctx, 2); {
		case err != nil:
			log.Printf("Uniqueness check for %s failed: %v", name, err)
		case count == 1:
			fmt.Printf("%s has a unique solution\n", name)
		default:
			fmt.Printf("%s has more than one solution\n", name)
		}
	}

	if useStorage {
		if err := storage.CacheSolution(b); err != nil {
			log.Printf("Couldn't cache the %s solution: %v", name, err)
		}
		if err := storage.RecordSolve(b, elapsed); err != nil {
			log.Printf("Couldn't archive the %s solve: %v", name, err)
		}
	}
	return true
}
