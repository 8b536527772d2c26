/*
   ccd2iso - CloneCD to ISO 9660 image converter

   This file is part of ccd2iso.

   This Source Code Form is subject to the terms of the Mozilla Public
   License, v. 2.0. If a copy of the MPL was not distributed with this
   file, You can obtain one at https://mozilla.org/MPL/2.0/.
*/

package clonecd

import (
	"bytes"
	"fmt"
)

//
var sectorIndex = map[string][2]int{
	"sync":    {0, SyncSize},
	"address": {SyncSize, 3},
	"mode":    {SyncSize + 3, 1},
	"data":    {PayloadOffset, DataSize},
	"dataXA":  {PayloadOffset, DataSizeXA},
}

// Sector is one raw 2352 byte sector of a CloneCD image. It references the
// data slice it was created from, so it stays valid only as long as that
// slice is not reused.
type Sector struct {
	index int
	block *block
}

/*
	NewSector creates a sector from raw data. index is the zero based position
	of the sector within the image, used for error context. The data must be
	exactly one full sector.
*/
func NewSector(index int, data []byte) (*Sector, error) {
	if len(data) != SectorSize {
		return nil, &IncompleteSectorError{Sector: index, Size: len(data)}
	}
	return &Sector{index: index, block: newBlock(sectorIndex, data)}, nil
}

//
func (s *Sector) Index() int {
	return s.index
}

//
func (s *Sector) Mode() byte {
	return s.block.getByte("mode")
}

// Address returns the sector address decoded from its BCD minutes, seconds
// & frame fields.
func (s *Sector) Address() (min, sec, frame int) {
	a := s.block.getSlice("address")
	return fromBCD(a[0]), fromBCD(a[1]), fromBCD(a[2])
}

//
func (s *Sector) MSF() string {
	min, sec, frame := s.Address()
	return fmt.Sprintf("%02d:%02d.%02d", min, sec, frame)
}

// SyncOK reports whether the sector starts with the standard sync pattern.
func (s *Sector) SyncOK() bool {
	return bytes.Equal(s.block.getSlice("sync"), syncPattern)
}

//
func (s *Sector) ValidateSync() error {
	if !s.SyncOK() {
		return &SyncMismatchError{Sector: s.index}
	}
	return nil
}

/*
	Payload returns the user data region of the sector, selected by its mode:
	2048 bytes for modes 0 & 1, 2336 bytes for mode 2. The sync pattern,
	address & mode header, and the error correction trailer are never part of
	the payload. Session marker and unknown mode sectors carry no payload and
	return an error instead.
*/
func (s *Sector) Payload() ([]byte, error) {

	switch s.Mode() {

	case Mode0, Mode1:
		return s.block.getSlice("data"), nil

	case Mode2:
		return s.block.getSlice("dataXA"), nil

	case ModeSessionMarker:
		return nil, &SessionMarkerError{Sector: s.index}

	default:
		return nil, &UnrecognizedModeError{Sector: s.index, Mode: s.Mode()}
	}
}
