/*
   ccd2iso - CloneCD to ISO 9660 image converter

   This file is part of ccd2iso.

   This Source Code Form is subject to the terms of the Mozilla Public
   License, v. 2.0. If a copy of the MPL was not distributed with this
   file, You can obtain one at https://mozilla.org/MPL/2.0/.
*/

package clonecd

import (
	"fmt"
	"io"
)

// Report describes the contents of a CloneCD image, without converting it.
type Report struct {
	Sectors        int64
	Mode0          int64
	Mode1          int64
	Mode2          int64
	SyncMismatches int64
	// projected size of the ISO image the sectors would convert into
	ISOSize int64
	// addresses of the first & last sector, in MM:SS.FF notation
	FirstAddress string
	LastAddress  string
	// a session marker was found; only sectors before it are reported
	Multisession bool
}

/*
	Scan makes a dry run over a CloneCD image, tallying sector modes and sync
	pattern mismatches, and projecting the size of the resulting ISO image.
	It applies the same alignment rules as Convert, so a clean scan means the
	image will convert. A session marker ends the scan without error, with
	Multisession set on the report.
*/
func Scan(src io.Reader) (*Report, error) {

	rep := &Report{}
	buf := make([]byte, SectorSize)

	for ix := 0; ; ix++ {

		read, err := io.ReadFull(src, buf)

		if err == io.EOF {
			return rep, nil
		}
		if err == io.ErrUnexpectedEOF {
			return rep, &IncompleteSectorError{Sector: ix, Size: read}
		}
		if err != nil {
			return rep, fmt.Errorf("reading sector %d: %w", ix, err)
		}

		sec, err := NewSector(ix, buf)
		if err != nil {
			return rep, err
		}

		switch sec.Mode() {

		case Mode0:
			rep.Mode0++
			rep.ISOSize += DataSize

		case Mode1:
			rep.Mode1++
			rep.ISOSize += DataSize

		case Mode2:
			rep.Mode2++
			rep.ISOSize += DataSizeXA

		case ModeSessionMarker:
			rep.Multisession = true
			return rep, nil

		default:
			return rep, &UnrecognizedModeError{Sector: ix, Mode: sec.Mode()}
		}

		if !sec.SyncOK() {
			rep.SyncMismatches++
		}

		if rep.Sectors == 0 {
			rep.FirstAddress = sec.MSF()
		}
		rep.LastAddress = sec.MSF()
		rep.Sectors++
	}
}
