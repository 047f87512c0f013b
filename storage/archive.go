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
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/ancientHacker/blockparty.go/puzzle"
)

/*

solve archive

Every successful solve can be appended to the archive, one row
per solve, so solve times and solution shapes can be looked at after
the fact.  The table is append-only; nothing in this package
updates or deletes rows.

*/

// A SolveRecord is one archived solve.
type SolveRecord struct {
	Signature string          // puzzle input the solve was for
	Summary   *puzzle.Summary // solved board, portable form
	SolveTime time.Duration   // how long the solve took
	SolvedAt  time.Time       // when the solve was recorded
}

// RecordSolve appends a solved board and its solve time to the
// archive.
func RecordSolve(b *puzzle.Board, elapsed time.Duration) (err error) {
	defer protect(&err)
	if !b.Solved() {
		return fmt.Errorf("Can't archive an unsolved board")
	}
	data, err := b.Summary().Marshal()
	if err != nil {
		return err
	}
	pgExecute(func(tx pgx.Tx) error {
		_, err := tx.Exec(context.Background(),
			`INSERT INTO solves (signature, summary, solve_millis) VALUES ($1, $2, $3)`,
			b.Signature(), data, elapsed.Milliseconds())
		return err
	})
	return nil
}

// RecentSolves lists the most recent archive entries, newest
// first.
func RecentSolves(limit int) (records []SolveRecord, err error) {
	defer protect(&err)
	pgExecute(func(tx pgx.Tx) error {
		rows, err := tx.Query(context.Background(),
			`SELECT signature, summary, solve_millis, solved_at
			 FROM solves ORDER BY solved_at DESC, id DESC LIMIT $1`, limit)
		if err != nil {
			return err
		}
		defer rows.Close()
		for rows.Next() {
			var record SolveRecord
			var data []byte
			var millis int64
			if err := rows.Scan(&record.Signature, &data, &millis, &record.SolvedAt); err != nil {
				return err
			}
			summary, err := puzzle.UnmarshalSummary(data)
			if err != nil {
				return err
			}
			record.Summary = summary
			record.SolveTime = time.Duration(millis) * time.Millisecond
			records = append(records, record)
		}
		return rows.Err()
	})
	return records, nil
}

// ClearArchive removes every archived solve.
func ClearArchive() (err error) {
	defer protect(&err)
	pgExecute(func(tx pgx.Tx) error {
		_, err := tx.Exec(context.Background(), `TRUNCATE TABLE solves`)
		return err
	})
	return nil
}
