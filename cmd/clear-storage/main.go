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

// Clear the blockparty storage system: drop all cached
// solutions and empty the solve archive.
package main

import (
	"fmt"
	"log"

	"github.com/ancientHacker/blockparty.go/storage"
)

func main() {
	log.Printf("Clearing solution cache and solve archive...")
	if err := clearStorage(); err != nil {
		log.Fatalf("Couldn't clear storage: %v", err)
	}
	log.Printf("Storage cleared.")
}

func clearStorage() error {
	cacheId, databaseId, err := storage.Connect()
	if err != nil {
		return fmt.Errorf("Couldn't connect to storage: %v", err)
	}
	defer storage.Close()
	log.Printf("Connected to cache at %q", cacheId)
	log.Printf("Connected to database at %q", databaseId)

	dropped, err := storage.ClearSolutions()
	if err != nil {
		return fmt.Errorf("Couldn't clear the solution cache: %v", err)
	}
	log.Printf("Dropped %d cached solutions.", dropped)

	if err := storage.ClearArchive(); err != nil {
		return fmt.Errorf("Couldn't clear the solve archive: %v", err)
	}
	log.Printf("Emptied the solve archive.")
	return nil
}
