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

// Options control a single conversion run.
type Options struct {
	// Strict makes sync pattern mismatches fatal. Off by default, since
	// real world images frequently contain sectors with damaged sync bytes.
	Strict bool
	// KnownSize is the total size of the source in bytes, when known. Only
	// used for estimating the total sector count reported to Progress.
	KnownSize int64
	// Progress, when set, is invoked after every converted sector with the
	// number of sectors done so far and the estimated total. The total is 0
	// when KnownSize was not provided.
	Progress func(sectors, total int64)
}

// Stats describe what a conversion run did.
type Stats struct {
	Sectors        int64
	BytesRead      int64
	BytesWritten   int64
	SyncMismatches int64
}

/*
	Convert turns a CloneCD disc image byte stream into an ISO 9660 byte
	stream. It reads src one raw sector at a time and writes each sector's
	user data region to dst, until src is exhausted. A source ending exactly
	at a sector boundary is normal completion; ending mid-sector is an
	IncompleteSectorError. Sectors with an unknown mode or a session marker
	stop the conversion with an error carrying the sector index. Output
	written before a failure is left in dst untouched; whether to discard it
	is the caller's call.

	Convert never logs or prints. Everything it has to say is in the returned
	stats and error.
*/
func Convert(src io.Reader, dst io.Writer, opts Options) (*Stats, error) {

	stats := &Stats{}

	var total int64
	if opts.KnownSize > 0 {
		total = opts.KnownSize / SectorSize
	}

	buf := make([]byte, SectorSize)

	for ix := 0; ; ix++ {

		read, err := io.ReadFull(src, buf)
		stats.BytesRead += int64(read)

		if err == io.EOF {
			return stats, nil
		}
		if err == io.ErrUnexpectedEOF {
			return stats, &IncompleteSectorError{Sector: ix, Size: read}
		}
		if err != nil {
			return stats, fmt.Errorf("reading sector %d: %w", ix, err)
		}

		sec, err := NewSector(ix, buf)
		if err != nil {
			return stats, err
		}

		if !sec.SyncOK() {
			if opts.Strict {
				return stats, sec.ValidateSync()
			}
			stats.SyncMismatches++
		}

		data, err := sec.Payload()
		if err != nil {
			return stats, err
		}

		written, err := dst.Write(data)
		stats.BytesWritten += int64(written)
		if err != nil {
			return stats, fmt.Errorf("writing sector %d: %w", ix, err)
		}

		stats.Sectors++
		if opts.Progress != nil {
			opts.Progress(stats.Sectors, total)
		}
	}
}
