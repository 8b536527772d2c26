/*
   ccd2iso - CloneCD to ISO 9660 image converter

   This file is part of ccd2iso.

   This Source Code Form is subject to the terms of the Mozilla Public
   License, v. 2.0. If a copy of the MPL was not distributed with this
   file, You can obtain one at https://mozilla.org/MPL/2.0/.
*/

package run

import (
	"github.com/jkmartindale/ccd2iso/pkg/control"
)

//
const serveHelpEpilogue = `- When a flag can be set via environment variable, the variable name is given
  in parenthesis at the end of the flag explanation. Note however that a flag,
  when specified, overrides an environment variable.
`

//
func NewServe(version string) *Serve {

	s := &Serve{version: version}
	s.Command = *NewCommand(
		"serve [-a|--address {address}]",
		"run the conversion HTTP API",
		"\nUse the serve command to run an HTTP API that converts CloneCD image streams into ISO 9660 streams.",
		serveHelpEpilogue, s.Run)

	s.StringSetting(&s.Address, "address", "a", "CCD2ISO_ADDRESS",
		"localhost:8590", "listen address for the API server")

	return s
}

//
type Serve struct {
	//
	Command
	//
	Address string
	//
	version string
}

//
func (s *Serve) Run() error {
	s.ParseSettings()
	return control.NewAPIServer(s.Address, s.version).Serve()
}
