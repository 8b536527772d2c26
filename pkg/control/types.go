/*
   ccd2iso - CloneCD to ISO 9660 image converter

   This file is part of ccd2iso.

   This Source Code Form is subject to the terms of the Mozilla Public
   License, v. 2.0. If a copy of the MPL was not distributed with this
   file, You can obtain one at https://mozilla.org/MPL/2.0/.
*/

package control

// Info describes the converter to API clients.
type Info struct {
	Version     string         `json:"version"`
	SectorSize  int            `json:"sectorSize"`
	Modes       []int          `json:"modes"`
	PayloadSize map[string]int `json:"payloadSize"`
}
