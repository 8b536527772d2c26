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
)

// IncompleteSectorError indicates that the image ended in the middle of a
// sector. Sector is the index of the offending sector, Size the number of
// bytes it actually had.
type IncompleteSectorError struct {
	Sector int
	Size   int
}

//
func (e *IncompleteSectorError) Error() string {
	return fmt.Sprintf(
		"sector %d is incomplete, with only %d bytes instead of %d",
		e.Sector, e.Size, SectorSize)
}

// UnrecognizedModeError indicates a sector mode this converter does not
// support. Once an unknown mode shows up, sector alignment can no longer be
// trusted, so conversion stops rather than skipping the sector.
type UnrecognizedModeError struct {
	Sector int
	Mode   byte
}

//
func (e *UnrecognizedModeError) Error() string {
	return fmt.Sprintf(
		"unrecognized sector mode (%x) at sector %d", e.Mode, e.Sector)
}

// SessionMarkerError indicates a session marker sector. The image might
// contain multisession data, of which only the first session was exported.
type SessionMarkerError struct {
	Sector int
}

//
func (e *SessionMarkerError) Error() string {
	return fmt.Sprintf("found a session marker at sector %d, the image "+
		"might contain multisession data; only the first session was exported",
		e.Sector)
}

// SyncMismatchError indicates a sector whose sync pattern does not match the
// standard pattern. Only raised in strict mode; the default is to count and
// move on, since burners routinely produce images with bent sync bytes that
// still carry valid data.
type SyncMismatchError struct {
	Sector int
}

//
func (e *SyncMismatchError) Error() string {
	return fmt.Sprintf("invalid sync pattern at sector %d", e.Sector)
}
