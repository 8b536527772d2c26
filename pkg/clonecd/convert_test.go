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
	"errors"
	"testing"
)

// testSector builds one raw sector with a valid sync pattern, the address
// set to 00:02.00, the given mode, and the region after the header filled
// with fill.
func testSector(mode byte, fill byte) []byte {
	data := make([]byte, SectorSize)
	copy(data, syncPattern)
	data[SyncSize+1] = 0x02
	data[SyncSize+3] = mode
	for ix := PayloadOffset; ix < SectorSize; ix++ {
		data[ix] = fill
	}
	return data
}

func repeated(b byte, n int) []byte {
	return bytes.Repeat([]byte{b}, n)
}

func TestEmptyInput(t *testing.T) {
	var out bytes.Buffer
	stats, err := Convert(bytes.NewReader(nil), &out, Options{})
	if err != nil {
		t.Fatalf("empty input should convert cleanly, got: %v", err)
	}
	if stats.Sectors != 0 || out.Len() != 0 {
		t.Errorf("expected no output, got %d sectors, %d bytes",
			stats.Sectors, out.Len())
	}
}

func TestModeDispatch(t *testing.T) {

	sizes := map[byte]int{Mode0: DataSize, Mode1: DataSize, Mode2: DataSizeXA}

	for mode, size := range sizes {
		sec := testSector(mode, 0)
		// position dependent content, so a shifted window would show
		for ix := PayloadOffset; ix < SectorSize; ix++ {
			sec[ix] = byte(ix % 251)
		}

		var out bytes.Buffer
		stats, err := Convert(bytes.NewReader(sec), &out, Options{})
		if err != nil {
			t.Fatalf("mode %d: %v", mode, err)
		}
		if out.Len() != size {
			t.Errorf("mode %d: expected %d payload bytes, got %d",
				mode, size, out.Len())
		}
		if !bytes.Equal(out.Bytes(), sec[PayloadOffset:PayloadOffset+size]) {
			t.Errorf("mode %d: payload window misses its mark", mode)
		}
		if stats.BytesRead != SectorSize {
			t.Errorf("mode %d: expected full sector consumed, got %d bytes",
				mode, stats.BytesRead)
		}
	}
}

func TestSequentialAssembly(t *testing.T) {

	var in bytes.Buffer
	in.Write(testSector(Mode1, 0xaa))
	in.Write(testSector(Mode2, 0xbb))
	in.Write(testSector(Mode1, 0xcc))

	var out bytes.Buffer
	stats, err := Convert(bytes.NewReader(in.Bytes()), &out, Options{})
	if err != nil {
		t.Fatalf("conversion failed: %v", err)
	}

	want := append(repeated(0xaa, DataSize),
		append(repeated(0xbb, DataSizeXA), repeated(0xcc, DataSize)...)...)

	if out.Len() != 6432 {
		t.Errorf("expected 6432 output bytes, got %d", out.Len())
	}
	if !bytes.Equal(out.Bytes(), want) {
		t.Error("output is not the in-order concatenation of the payloads")
	}
	if stats.Sectors != 3 {
		t.Errorf("expected 3 sectors, got %d", stats.Sectors)
	}
}

func TestDeterminism(t *testing.T) {

	var in bytes.Buffer
	in.Write(testSector(Mode1, 0x11))
	in.Write(testSector(Mode2, 0x22))

	var first, second bytes.Buffer
	if _, err := Convert(
		bytes.NewReader(in.Bytes()), &first, Options{}); err != nil {
		t.Fatalf("first conversion failed: %v", err)
	}
	if _, err := Convert(
		bytes.NewReader(in.Bytes()), &second, Options{}); err != nil {
		t.Fatalf("second conversion failed: %v", err)
	}

	if !bytes.Equal(first.Bytes(), second.Bytes()) {
		t.Error("two conversions of the same input differ")
	}
}

func TestUnrecognizedModeHalts(t *testing.T) {

	var in bytes.Buffer
	for ix := 0; ix < 3; ix++ {
		in.Write(testSector(Mode1, byte(ix)))
	}
	in.Write(testSector(5, 0xff))

	var out bytes.Buffer
	_, err := Convert(bytes.NewReader(in.Bytes()), &out, Options{})

	var modeErr *UnrecognizedModeError
	if !errors.As(err, &modeErr) {
		t.Fatalf("expected UnrecognizedModeError, got: %v", err)
	}
	if modeErr.Sector != 3 || modeErr.Mode != 5 {
		t.Errorf("expected mode 5 at sector 3, got mode %d at sector %d",
			modeErr.Mode, modeErr.Sector)
	}
	if out.Len() != 3*DataSize {
		t.Errorf("sectors before the failure must be kept, got %d bytes",
			out.Len())
	}
}

func TestTruncatedInput(t *testing.T) {

	for _, remainder := range []int{1, 15, 100, SectorSize - 1} {

		var in bytes.Buffer
		in.Write(testSector(Mode1, 0xaa))
		in.Write(testSector(Mode1, 0xbb)[:remainder])

		var out bytes.Buffer
		stats, err := Convert(bytes.NewReader(in.Bytes()), &out, Options{})

		var incErr *IncompleteSectorError
		if !errors.As(err, &incErr) {
			t.Fatalf("remainder %d: expected IncompleteSectorError, got: %v",
				remainder, err)
		}
		if incErr.Sector != 1 || incErr.Size != remainder {
			t.Errorf("remainder %d: got sector %d with %d bytes",
				remainder, incErr.Sector, incErr.Size)
		}
		if (stats.BytesRead-int64(incErr.Size))%SectorSize != 0 {
			t.Errorf("remainder %d: complete sectors must consume a multiple "+
				"of %d bytes", remainder, SectorSize)
		}
		if out.Len() != DataSize {
			t.Errorf("remainder %d: complete sectors before the truncation "+
				"must be kept, got %d bytes", remainder, out.Len())
		}
	}
}

func TestSessionMarker(t *testing.T) {

	var in bytes.Buffer
	in.Write(testSector(Mode1, 0xaa))
	in.Write(testSector(ModeSessionMarker, 0x00))

	var out bytes.Buffer
	_, err := Convert(bytes.NewReader(in.Bytes()), &out, Options{})

	var sesErr *SessionMarkerError
	if !errors.As(err, &sesErr) {
		t.Fatalf("expected SessionMarkerError, got: %v", err)
	}
	if sesErr.Sector != 1 {
		t.Errorf("expected session marker at sector 1, got %d", sesErr.Sector)
	}
	if out.Len() != DataSize {
		t.Errorf("first session data must be kept, got %d bytes", out.Len())
	}
}

func TestSyncMismatchLenient(t *testing.T) {

	sec := testSector(Mode1, 0xaa)
	sec[3] = 0x42

	var out bytes.Buffer
	stats, err := Convert(bytes.NewReader(sec), &out, Options{})
	if err != nil {
		t.Fatalf("lenient conversion must not fail on bad sync, got: %v", err)
	}
	if stats.SyncMismatches != 1 {
		t.Errorf("expected 1 sync mismatch, got %d", stats.SyncMismatches)
	}
	if out.Len() != DataSize {
		t.Errorf("payload of a bad sync sector must still be written, "+
			"got %d bytes", out.Len())
	}
}

func TestSyncMismatchStrict(t *testing.T) {

	sec := testSector(Mode1, 0xaa)
	sec[3] = 0x42

	var out bytes.Buffer
	_, err := Convert(bytes.NewReader(sec), &out, Options{Strict: true})

	var syncErr *SyncMismatchError
	if !errors.As(err, &syncErr) {
		t.Fatalf("expected SyncMismatchError in strict mode, got: %v", err)
	}
	if syncErr.Sector != 0 {
		t.Errorf("expected mismatch at sector 0, got %d", syncErr.Sector)
	}
	if out.Len() != 0 {
		t.Errorf("strict mode must not write the offending sector, "+
			"got %d bytes", out.Len())
	}
}

func TestProgressReporting(t *testing.T) {

	var in bytes.Buffer
	for ix := 0; ix < 4; ix++ {
		in.Write(testSector(Mode1, byte(ix)))
	}

	var calls []int64
	var reportedTotal int64

	_, err := Convert(bytes.NewReader(in.Bytes()), &bytes.Buffer{}, Options{
		KnownSize: int64(in.Len()),
		Progress: func(sectors, total int64) {
			calls = append(calls, sectors)
			reportedTotal = total
		},
	})
	if err != nil {
		t.Fatalf("conversion failed: %v", err)
	}

	if len(calls) != 4 {
		t.Fatalf("expected 4 progress calls, got %d", len(calls))
	}
	for ix, c := range calls {
		if c != int64(ix+1) {
			t.Errorf("progress call %d reported %d sectors", ix, c)
		}
	}
	if reportedTotal != 4 {
		t.Errorf("expected estimated total of 4, got %d", reportedTotal)
	}
}
