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

package puzzle

import (
	"context"
	"strings"
	"testing"
)

/*

Value strings

*/

func TestVstr(t *testing.T) {
	inputs := []int{-1, 0, 1, 9, 10, 35, 36, 100}
	outputs := []string{"?", " ", "1", "9", "A", "Z", "!", "!"}
	for i, v := range inputs {
		if got := vstr(v); got != outputs[i] {
			t.Errorf("vstr(%d) = %q but expected %q", v, got, outputs[i])
		}
	}
}

/*

Board pictures

*/

func TestString1x1(t *testing.T) {
	b, err := Example1x1()
	if err != nil {
		t.Fatalf("Example board failed to construct: %v", err)
	}
	expected := "▓▓▓\n" +
		"▓ ▓\n" +
		"▓▓▓"
	if got := b.String(); got != expected {
		t.Errorf("1x1 picture:\n%s\nbut expected:\n%s", got, expected)
	}
}

func TestString2x2(t *testing.T) {
	b, err := Example2x2()
	if err != nil {
		t.Fatalf("Example board failed to construct: %v", err)
	}
	expected := "▓▓▓▓▓\n" +
		"▓   ▓\n" +
		"▓   ▓\n" +
		"▓   ▓\n" +
		"▓▓▓▓▓"
	if got := b.String(); got != expected {
		t.Errorf("2x2 picture:\n%s\nbut expected:\n%s", got, expected)
	}
}

func TestString5x5(t *testing.T) {
	b, err := Example5x5()
	if err != nil {
		t.Fatalf("Example board failed to construct: %v", err)
	}
	expected := "▓▓▓▓▓▓▓▓▓▓▓\n" +
		"▓ ▓     ▓ ▓\n" +
		"▓ ▓▓▓▓▓▓▓ ▓\n" +
		"▓   ▓   ▓ ▓\n" +
		"▓ ▓▓▓ ▓▓▓ ▓\n" +
		"▓ ▓ ▓ ▓   ▓\n" +
		"▓▓▓ ▓▓▓▓▓▓▓\n" +
		"▓   ▓ ▓   ▓\n" +
		"▓ ▓▓▓ ▓   ▓\n" +
		"▓ ▓   ▓   ▓\n" +
		"▓▓▓▓▓▓▓▓▓▓▓"
	if got := b.String(); got != expected {
		t.Errorf("5x5 picture:\n%s\nbut expected:\n%s", got, expected)
	}
}

func TestStringShowsGivens(t *testing.T) {
	b, err := New(5, 5, testSegments5x5(), map[Position]int{{2, 4}: 3})
	if err != nil {
		t.Fatalf("Board with a given failed to construct: %v", err)
	}
	expected := "▓▓▓▓▓▓▓▓▓▓▓\n" +
		"▓ ▓  3  ▓ ▓\n" +
		"▓ ▓▓▓▓▓▓▓ ▓\n" +
		"▓   ▓   ▓ ▓\n" +
		"▓ ▓▓▓ ▓▓▓ ▓\n" +
		"▓ ▓ ▓ ▓   ▓\n" +
		"▓▓▓ ▓▓▓▓▓▓▓\n" +
		"▓   ▓ ▓   ▓\n" +
		"▓ ▓▓▓ ▓   ▓\n" +
		"▓ ▓   ▓   ▓\n" +
		"▓▓▓▓▓▓▓▓▓▓▓"
	if got := b.String(); got != expected {
		t.Errorf("5x5 picture with given:\n%s\nbut expected:\n%s", got, expected)
	}
}

func TestStringShowsSolution(t *testing.T) {
	b, err := Example2x2()
	if err != nil {
		t.Fatalf("Example board failed to construct: %v", err)
	}
	b.solution = Solution{{0, 0}: 3, {1, 0}: 4, {0, 1}: 2, {1, 1}: 1}
	expected := "▓▓▓▓▓\n" +
		"▓2 1▓\n" +
		"▓   ▓\n" +
		"▓3 4▓\n" +
		"▓▓▓▓▓"
	if got := b.String(); got != expected {
		t.Errorf("Solved 2x2 picture:\n%s\nbut expected:\n%s", got, expected)
	}
}

// Solving fills in cell centers and touches nothing else: wall
// placement depends only on the geometry.
func TestStringWallsStable(t *testing.T) {
	b, err := Example5x5()
	if err != nil {
		t.Fatalf("Example board failed to construct: %v", err)
	}
	before := strings.Split(b.String(), "\n")
	if _, err := b.Solve(context.Background()); err != nil {
		t.Fatalf("Solving the 5x5 board failed: %v", err)
	}
	after := strings.Split(b.String(), "\n")
	if len(before) != len(after) {
		t.Fatalf("Picture changed height from %d to %d lines", len(before), len(after))
	}
	for i := range before {
		brow, arow := []rune(before[i]), []rune(after[i])
		if len(brow) != len(arow) {
			t.Fatalf("Line %d changed width from %d to %d", i, len(brow), len(arow))
		}
		y := len(before) - 1 - i
		for x := range brow {
			if x%2 == 1 && y%2 == 1 {
				continue // cell center
			}
			if brow[x] != arow[x] {
				t.Errorf("Wall character at (%d, %d) changed from %q to %q",
					x, y, brow[x], arow[x])
			}
		}
	}
}

/*

Signatures

*/

func TestSignature(t *testing.T) {
	plain, err := Example5x5()
	if err != nil {
		t.Fatalf("Example board failed to construct: %v", err)
	}
	same, err := Example5x5()
	if err != nil {
		t.Fatalf("Example board failed to construct: %v", err)
	}
	if plain.Signature() != same.Signature() {
		t.Errorf("Identical boards produced different signatures:\n%s\n%s",
			plain.Signature(), same.Signature())
	}
	if !strings.HasPrefix(plain.Signature(), "5x5|") {
		t.Errorf("Signature %q doesn't lead with the grid extent", plain.Signature())
	}
	withGiven, err := New(5, 5, testSegments5x5(), map[Position]int{{2, 4}: 3})
	if err != nil {
		t.Fatalf("Board with a given failed to construct: %v", err)
	}
	if plain.Signature() == withGiven.Signature() {
		t.Errorf("Adding a given did not change the signature.")
	}
	if !strings.Contains(withGiven.Signature(), "givens:(2,4)=3") {
		t.Errorf("Signature %q doesn't record the given", withGiven.Signature())
	}
	// solving must not change the signature
	if _, err := plain.Solve(context.Background()); err != nil {
		t.Fatalf("Solving the 5x5 board failed: %v", err)
	}
	if plain.Signature() != same.Signature() {
		t.Errorf("Solving changed the signature.")
	}
}
