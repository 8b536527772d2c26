/*
   ccd2iso - CloneCD to ISO 9660 image converter

   This file is part of ccd2iso.

   This Source Code Form is subject to the terms of the Mozilla Public
   License, v. 2.0. If a copy of the MPL was not distributed with this
   file, You can obtain one at https://mozilla.org/MPL/2.0/.
*/

package clonecd

//
func newBlock(index map[string][2]int, data []byte) *block {
	return &block{index: index, data: data}
}

// block gives named access to the fields of a raw byte block. The index maps
// field names to offset & length pairs within the block.
type block struct {
	index map[string][2]int
	data  []byte
}

//
func (b *block) getByte(key string) byte {
	if ix, ok := b.index[key]; ok {
		if 0 <= ix[0] && ix[0] < len(b.data) && ix[1] == 1 {
			return b.data[ix[0]]
		}
	}
	return 0
}

//
func (b *block) getSlice(key string) []byte {
	if ix, ok := b.index[key]; ok {
		start := ix[0]
		end := start + ix[1]
		if 0 <= start && end <= len(b.data) {
			return b.data[start:end]
		}
	}
	return []byte{}
}

// fromBCD decodes a binary coded decimal byte, as used in the sector address
// fields. Invalid digits are passed through undecoded.
func fromBCD(b byte) int {
	hi := int(b >> 4)
	lo := int(b & 0x0f)
	if hi > 9 || lo > 9 {
		return int(b)
	}
	return hi*10 + lo
}
