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

package storage

import (
	"fmt"

	"github.com/gomodule/redigo/redis"

	"github.com/ancientHacker/blockparty.go/puzzle"
)

/*

solution cache

Solved boards are cached under their signature, which covers the
geometry and givens but not the solution, so any board with the
same puzzle input hits the same entry.

*/

const solutionKeyPrefix = "blockparty:solution:"

func solutionKey(b *puzzle.Board) string {
	return solutionKeyPrefix + b.Signature()
}

// CacheSolution stores a solved board's summary under its
// signature, replacing any earlier entry.
func CacheSolution(b *puzzle.Board) (err error) {
	defer protect(&err)
	if !b.Solved() {
		return fmt.Errorf("Can't cache an unsolved board")
	}
	data, err := b.Summary().Marshal()
	if err != nil {
		return err
	}
	rdExecute(func(tx redis.Conn) error {
		_, err := tx.Do("SET", solutionKey(b), data)
		return err
	})
	return nil
}

// CachedSolution looks for a cached solve of the same puzzle
// input.  A cache miss returns nil with no error; a hit returns
// a solved board rebuilt from the cached summary.
func CachedSolution(b *puzzle.Board) (solved *puzzle.Board, err error) {
	defer protect(&err)
	var data []byte
	rdExecute(func(tx redis.Conn) error {
		reply, err := tx.Do("GET", solutionKey(b))
		if err != nil {
			return err
		}
		if reply == nil {
			return nil
		}
		data, err = redis.Bytes(reply, nil)
		return err
	})
	if data == nil {
		return nil, nil
	}
	summary, err := puzzle.UnmarshalSummary(data)
	if err != nil {
		return nil, err
	}
	return summary.Board()
}

// DropSolution removes the cache entry for a board's puzzle
// input, if there is one.
func DropSolution(b *puzzle.Board) (err error) {
	defer protect(&err)
	rdExecute(func(tx redis.Conn) error {
		_, err := tx.Do("DEL", solutionKey(b))
		return err
	})
	return nil
}

// ClearSolutions removes every cached solution.  Returns how
// many entries were dropped.
func ClearSolutions() (dropped int, err error) {
	defer protect(&err)
	rdExecute(func(tx redis.Conn) error {
		cursor := 0
		for {
			values, err := redis.Values(tx.Do("SCAN", cursor, "MATCH", solutionKeyPrefix+"*"))
			if err != nil {
				return err
			}
			var keys []string
			if _, err := redis.Scan(values, &cursor, &keys); err != nil {
				return err
			}
			for _, key := range keys {
				if _, err := tx.Do("DEL", key); err != nil {
					return err
				}
				dropped++
			}
			if cursor == 0 {
				return nil
			}
		}
	})
	return dropped, nil
}
