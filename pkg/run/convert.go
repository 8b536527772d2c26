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
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	log "github.com/sirupsen/logrus"

	"github.com/jkmartindale/ccd2iso/pkg/clonecd"
)

//
const convertHelpEpilogue = `- When no {iso} argument is given, the output path is derived from the input
  path by swapping the .img extension for .iso.
- The output is written to a temporary file next to the target and only moved
  into place when the conversion succeeds. On failure, the temporary file is
  kept so nothing already converted is lost.
- When a flag can be set via environment variable, the variable name is given
  in parenthesis at the end of the flag explanation. Note however that a flag,
  when specified, overrides an environment variable.
`

//
func NewConvert() *Convert {

	c := &Convert{}
	c.Command = *NewCommand(
		"convert [-f|--force] [-q|--quiet] [-s|--strict] {img} [iso]",
		"convert a CloneCD image into an ISO 9660 image",
		"\nUse the convert command to turn a CloneCD .img file into an ISO 9660 .iso file.",
		convertHelpEpilogue, c.Run)

	c.BoolSetting(&c.Force, "force", "f", "", false,
		"overwrite the .iso file if it already exists")
	c.BoolSetting(&c.Quiet, "quiet", "q", "CCD2ISO_QUIET", false,
		"don't show a progress bar")
	c.BoolSetting(&c.Strict, "strict", "s", "CCD2ISO_STRICT", false,
		"fail on sectors with an invalid sync pattern")

	return c
}

//
type Convert struct {
	//
	Command
	//
	Force  bool
	Quiet  bool
	Strict bool
}

//
func (c *Convert) Run() error {

	c.ParseSettings()

	if len(c.Args) < 1 {
		return fmt.Errorf("no image file given")
	}

	img := c.Args[0]
	iso := ""
	if len(c.Args) > 1 {
		iso = c.Args[1]
	} else {
		iso = DeriveOutputPath(img)
	}

	if _, err := os.Stat(iso); err == nil && !c.Force {
		if !GetUserConfirmation(
			fmt.Sprintf("%s already exists, overwrite?", iso)) {
			return fmt.Errorf(
				"%s already exists, pass --force if you want to overwrite it",
				iso)
		}
	}

	return convertFile(img, iso, c.Strict, !c.Quiet)
}

/*
	convertFile converts image file img into ISO file iso. The conversion
	runs against a temporary file in the target directory, which gets
	promoted to iso only on success. On failure, the temporary file is kept
	and its location reported in the returned error.
*/
func convertFile(img, iso string, strict, progress bool) error {

	src, err := os.Open(img)
	if err != nil {
		return fmt.Errorf("couldn't open %s: %w", img, err)
	}
	defer src.Close()

	opts := clonecd.Options{Strict: strict}
	if info, err := src.Stat(); err == nil {
		opts.KnownSize = info.Size()
	}

	tmp, err := os.CreateTemp(filepath.Dir(iso), "ccd2iso-*.tmp")
	if err != nil {
		return fmt.Errorf("couldn't create temporary file: %w", err)
	}

	var bar *progressbar.ProgressBar
	if progress && opts.KnownSize > 0 {
		bar = progressbar.Default(
			opts.KnownSize/clonecd.SectorSize, "converting")
		opts.Progress = func(sectors, total int64) {
			bar.Set64(sectors)
		}
	}

	out := bufio.NewWriter(tmp)
	stats, err := clonecd.Convert(bufio.NewReader(src), out, opts)

	if bar != nil {
		bar.Close()
	}

	// flush even after a failure, the partial output is kept
	if ferr := out.Flush(); err == nil {
		err = ferr
	}
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf(
			"conversion failed: %w; the partial output is kept at %s",
			err, tmp.Name())
	}

	if stats.SyncMismatches > 0 {
		log.Warnf("%d of %d sectors had an invalid sync pattern",
			stats.SyncMismatches, stats.Sectors)
	}

	if err := os.Rename(tmp.Name(), iso); err != nil {
		return fmt.Errorf("couldn't overwrite %s, the file might be mounted "+
			"or marked read-only; the converted image is kept at %s: %w",
			iso, tmp.Name(), err)
	}

	log.Debugf("%d sectors converted, %d bytes written",
		stats.Sectors, stats.BytesWritten)
	fmt.Println("Done.")

	return nil
}

// DeriveOutputPath swaps the extension of the input path for .iso. An input
// without extension simply gets .iso appended.
func DeriveOutputPath(img string) string {
	return img[:len(img)-len(filepath.Ext(img))] + ".iso"
}
