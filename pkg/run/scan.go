/*
   ccd2iso - CloneCD to ISO 9660 image converter

   This file is part of ccd2iso.

   This Source Code Form is subject to the terms of the Mozilla Public
   License, v. 2.0. If a copy of the MPL was not distributed with this
   file, You can obtain one at https://mozilla.org/MPL/2.0/.
*/

package run

import (
	"bufio"
	"fmt"
	"os"

	"github.com/jkmartindale/ccd2iso/pkg/clonecd"
)

//
func NewScan() *Scan {

	s := &Scan{}
	s.Command = *NewCommand(
		"scan {img}",
		"inspect a CloneCD image without converting it",
		"\nUse the scan command to check a CloneCD .img file and report its sector modes, sync state, and projected ISO size.",
		"", s.Run)

	return s
}

//
type Scan struct {
	Command
}

//
func (s *Scan) Run() error {

	s.ParseSettings()

	if len(s.Args) < 1 {
		return fmt.Errorf("no image file given")
	}

	f, err := os.Open(s.Args[0])
	if err != nil {
		return fmt.Errorf("couldn't open %s: %w", s.Args[0], err)
	}
	defer f.Close()

	rep, err := clonecd.Scan(bufio.NewReader(f))
	if err != nil {
		return err
	}

	fmt.Printf(`
sectors:         %d
  mode 0:        %d
  mode 1:        %d
  mode 2:        %d
sync mismatches: %d
projected size:  %d bytes
`, rep.Sectors, rep.Mode0, rep.Mode1, rep.Mode2,
		rep.SyncMismatches, rep.ISOSize)

	if rep.Sectors > 0 {
		fmt.Printf("address range:   %s - %s\n",
			rep.FirstAddress, rep.LastAddress)
	}
	if rep.Multisession {
		fmt.Println("multisession image; only the first session was scanned")
	}
	fmt.Println()

	return nil
}
