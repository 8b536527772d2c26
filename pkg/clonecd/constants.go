/*
   ccd2iso - CloneCD to ISO 9660 image converter

   This file is part of ccd2iso.

   This Source Code Form is subject to the terms of the Mozilla Public
   License, v. 2.0. If a copy of the MPL was not distributed with this
   file, You can obtain one at https://mozilla.org/MPL/2.0/.
*/

package clonecd

// SectorSize is the size of one raw CD sector in a CloneCD image
const SectorSize = 2352

//
const SyncSize = 12
const HeaderSize = 4
const PayloadOffset = SyncSize + HeaderSize

// payload sizes; mode 2 keeps the sub-header, EDC & ECC regions
const DataSize = 2048
const DataSizeXA = 2336

// sector modes
const (
	Mode0 = 0x00
	Mode1 = 0x01
	Mode2 = 0x02
	// written by CloneCD at the start of a second session
	ModeSessionMarker = 0xe2
)

// standard sync pattern of a raw data sector
var syncPattern = []byte{
	0x00, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x00,
}
