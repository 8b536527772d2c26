/*
   ccd2iso - CloneCD to ISO 9660 image converter

   This file is part of ccd2iso.

   This Source Code Form is subject to the terms of the Mozilla Public
   License, v. 2.0. If a copy of the MPL was not distributed with this
   file, You can obtain one at https://mozilla.org/MPL/2.0/.
*/

package main

import (
	"fmt"
	"os"

	"github.com/jkmartindale/ccd2iso/pkg/run"
)

//
var Ccd2IsoVersion string

//
func synopsis() {
	fmt.Print(`
synopsis: ccd2iso {convert|scan|serve|version} ...

run 'ccd2iso {action} -h|--help' to see detailed info

For convenience, 'ccd2iso {img} [iso]' is shorthand for
'ccd2iso convert {img} [iso]'.

`)
}

//
func version() {
	fmt.Printf("\nccd2iso %s\n\n", Ccd2IsoVersion)
}

//
func main() {

	var action string
	var args []string

	if len(os.Args) > 1 {
		action = os.Args[1]
	}

	if len(os.Args) > 2 {
		args = os.Args[2:]
	}

	switch action {

	case "convert":
		run.DieOnError(run.NewConvert().Execute(args))

	case "scan":
		run.DieOnError(run.NewScan().Execute(args))

	case "serve":
		version()
		run.DieOnError(run.NewServe(Ccd2IsoVersion).Execute(args))

	case "version":
		version()

	case "":
		fallthrough
	case "-h":
		fallthrough
	case "--help":
		synopsis()

	default:
		// keep the classic 'ccd2iso [-f] {img} [iso]' invocation working
		run.DieOnError(run.NewConvert().Execute(os.Args[1:]))
	}
}
